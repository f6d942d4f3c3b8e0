// vi: sw=4 ts=4:

/*

	Mnemonic:	recipes
	Abstract:	The four worked recipes used for testable properties. Each
				constructor builds one fresh, single-shot Task; recipes
				themselves hold no state between tasks.
	Date:		31 July 2026
	Author:		E. Scott Daniels
*/

package gizmos

import "time"

// Capability tags, shared between the recipe constructors below and the
// agents/scenarios that advertise or submit them.
const (
	IGW_Task = "IGW_Task"
	CC_Task  = "CC_Task"
	EC_Task  = "EC_Task"
	AC_Task  = "AC_Task"
)

/*
	Mk_igw_task builds one iron_gear_wheel: iron_plate x2 -> iron_gear_wheel x1, 0.5s.
*/
func Mk_igw_task() *Task {
	return Mk_task(
		IGW_Task,
		500*time.Millisecond,
		[]Reservation{{Name: "iron_plate", Amount: 2}},
		Output{Name: "iron_gear_wheel", Amount: 1},
	)
}

/*
	Mk_cc_task builds copper cable: copper_plate x1 -> copper_cable x2, 0.5s.
*/
func Mk_cc_task() *Task {
	return Mk_task(
		CC_Task,
		500*time.Millisecond,
		[]Reservation{{Name: "copper_plate", Amount: 1}},
		Output{Name: "copper_cable", Amount: 2},
	)
}

/*
	Mk_ec_task builds one electronic_circuit: iron_plate x1, copper_cable x3 ->
	electronic_circuit x1, 0.5s. Inputs are reserved in the order listed, which
	is what determines which shortage an EC task blocks on first.
*/
func Mk_ec_task() *Task {
	return Mk_task(
		EC_Task,
		500*time.Millisecond,
		[]Reservation{
			{Name: "iron_plate", Amount: 1},
			{Name: "copper_cable", Amount: 3},
		},
		Output{Name: "electronic_circuit", Amount: 1},
	)
}

/*
	Mk_ac_task builds one advanced_circuit: plastic_bar x2, copper_cable x4,
	electronic_circuit x2 -> advanced_circuit x1, 6.0s.
*/
func Mk_ac_task() *Task {
	return Mk_task(
		AC_Task,
		6000*time.Millisecond,
		[]Reservation{
			{Name: "plastic_bar", Amount: 2},
			{Name: "copper_cable", Amount: 4},
			{Name: "electronic_circuit", Amount: 2},
		},
		Output{Name: "advanced_circuit", Amount: 1},
	)
}

// task_ctors maps a capability tag to its recipe constructor, used by the
// scenario/CLI layer to build a batch of tasks from a name parsed out of a
// submission string.
var task_ctors = map[string]func() *Task{
	IGW_Task: Mk_igw_task,
	CC_Task:  Mk_cc_task,
	EC_Task:  Mk_ec_task,
	AC_Task:  Mk_ac_task,
}

/*
	Mk_task_by_name builds one task of the named recipe, or nil if name is not
	one of the four worked recipes.
*/
func Mk_task_by_name(name string) *Task {
	ctor, ok := task_ctors[name]
	if !ok {
		return nil
	}
	return ctor()
}
