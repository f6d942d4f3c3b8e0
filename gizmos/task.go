// vi: sw=4 ts=4:

/*

	Mnemonic:	task
	Abstract:	A single-shot unit of manufacturing work: a capability tag, a
				nominal duration for accounting, and a recipe that reserves
				inputs, simulates work, and releases outputs against a
				ResourceStore.
	Date:		31 July 2026
	Author:		E. Scott Daniels
*/

package gizmos

import (
	"time"

	"github.com/google/uuid"
)

/*
	Reservation names one input a recipe reserves, in order. Order is part of
	the recipe's observable behaviour: it determines which agents block on
	which shortage when several recipes compete for the same inputs.
*/
type Reservation struct {
	Name   string
	Amount int
}

/*
	Output names the one thing a recipe produces on success.
*/
type Output struct {
	Name   string
	Amount int
}

/*
	Task is an immutable descriptor of one piece of work. Name is the
	capability tag an agent must advertise to accept it (e.g. IGW_Task).
	NominalTime is the simulated work duration; it is also what a recipe
	actually sleeps for, so reported and observed durations agree.
	Tasks are discarded after Execute returns; they are not reusable.
*/
type Task struct {
	ID          uuid.UUID
	Name        string
	NominalTime time.Duration
	Inputs      []Reservation
	Output      Output
}

/*
	Mk_task builds a task from a named recipe: an ordered reservation list,
	a nominal duration, and a single output. The four worked recipes in
	recipes.go are built this way.
*/
func Mk_task(name string, nominal time.Duration, inputs []Reservation, output Output) *Task {
	return &Task{
		ID:          uuid.New(),
		Name:        name,
		NominalTime: nominal,
		Inputs:      inputs,
		Output:      output,
	}
}

/*
	Execute runs the recipe against store: reserve every input in order,
	sleep for NominalTime, release the output. If a reservation fails (which,
	absent shutdown, cannot happen since Reserve blocks rather than failing
	for lack of stock) every input reserved so far is released back to the
	store in the same quantities, and the task is abandoned silently --
	Execute returns false and produces no output. A reserve that fails
	because of shutdown is the one failure path recipes are built to survive;
	Execute returns false in that case too, having left the store exactly as
	it found it.
*/
func (t *Task) Execute(store *ResourceStore) bool {
	reserved := make([]Reservation, 0, len(t.Inputs))

	for _, in := range t.Inputs {
		if !store.Reserve(in.Name, in.Amount) {
			obj_sheep.Baa(2, "task %s (%s): reserve of %s failed, compensating %d prior input(s)", t.ID, t.Name, in.Name, len(reserved))
			for _, done := range reserved {
				store.Release(done.Name, done.Amount)
			}
			return false
		}
		reserved = append(reserved, in)
	}

	time.Sleep(t.NominalTime)

	store.Release(t.Output.Name, t.Output.Amount)
	obj_sheep.Baa(2, "task %s (%s): completed, released %d %s", t.ID, t.Name, t.Output.Amount, t.Output.Name)

	return true
}
