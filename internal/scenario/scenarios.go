// vi: sw=4 ts=4:

/*

	Mnemonic:	scenarios
	Abstract:	The six bundled end-to-end scenarios (S0, the S0
				extension, S1, S2, S3, and the shutdown-unblock
				property), each built from Topology so the CLI and the
				tests share one definition of what each scenario means.
	Date:		31 July 2026
	Author:		E. Scott Daniels
*/

package scenario

import (
	"time"

	"github.com/sunfl0w/SFCS-Sim/gizmos"
)

/*
	Result is what a scenario hands back to a caller: the final store
	snapshot and how long the goal took to reach, for CLI reporting.
*/
type Result struct {
	Store   map[string]int
	Elapsed time.Duration
	Reached bool
}

const goal_timeout = 60 * time.Second

/*
	RunS0 runs the IGW mass-production scenario: ten agents capable of
	IGW_Task and CC_Task, 100 IGW_Task submitted, goal iron_gear_wheel==100.
*/
func RunS0() Result {
	topo := Mk_flat_topology(
		map[string]int{"iron_plate": 200, "copper_plate": 50, "iron_gear_wheel": 0, "copper_cable": 0},
		10,
		[]string{gizmos.IGW_Task, gizmos.CC_Task},
	)
	defer topo.Teardown()

	start := time.Now()
	topo.Submit_batch(gizmos.IGW_Task, 100)
	reached := Wait_for(topo.Store, "iron_gear_wheel", 100, goal_timeout)

	return Result{Store: topo.Store.Snapshot(), Elapsed: time.Since(start), Reached: reached}
}

/*
	RunS0Extension runs S0's topology, but 2.5s after the IGW batch also
	submits 50 CC_Task; at goal copper_cable should be 100 and
	copper_plate 0, alongside S0's own iron_gear_wheel==100.
*/
func RunS0Extension() Result {
	topo := Mk_flat_topology(
		map[string]int{"iron_plate": 200, "copper_plate": 50, "iron_gear_wheel": 0, "copper_cable": 0},
		10,
		[]string{gizmos.IGW_Task, gizmos.CC_Task},
	)
	defer topo.Teardown()

	start := time.Now()
	go topo.Submit_batch(gizmos.IGW_Task, 100)

	time.Sleep(2500 * time.Millisecond)
	topo.Submit_batch(gizmos.CC_Task, 50)

	reached := Wait_for(topo.Store, "iron_gear_wheel", 100, goal_timeout) &&
		Wait_for(topo.Store, "copper_cable", 100, goal_timeout)

	return Result{Store: topo.Store.Snapshot(), Elapsed: time.Since(start), Reached: reached}
}

func s1_topology() *Topology {
	return Mk_flat_topology(
		map[string]int{
			"iron_plate": 40, "copper_plate": 100, "plastic_bar": 40,
			"iron_gear_wheel": 0, "copper_cable": 0, "electronic_circuit": 0, "advanced_circuit": 0,
		},
		10,
		[]string{gizmos.EC_Task, gizmos.AC_Task, gizmos.CC_Task},
	)
}

/*
	RunS1 runs the AC pipeline: ten agents capable of EC, AC and CC;
	submitted in order CC, EC, AC. Goal advanced_circuit==20, a conservation
	check across the whole chain.
*/
func RunS1() Result {
	topo := s1_topology()
	defer topo.Teardown()

	start := time.Now()
	topo.Submit_batch(gizmos.CC_Task, 100)
	topo.Submit_batch(gizmos.EC_Task, 40)
	topo.Submit_batch(gizmos.AC_Task, 20)

	reached := Wait_for(topo.Store, "advanced_circuit", 20, goal_timeout)

	return Result{Store: topo.Store.Snapshot(), Elapsed: time.Since(start), Reached: reached}
}

/*
	RunS2 is S1 with submission reordered to CC, AC, EC. Final counts must
	match S1 exactly; only completion time may differ, since AC now blocks
	on copper_cable until CC has produced enough.
*/
func RunS2() Result {
	topo := s1_topology()
	defer topo.Teardown()

	start := time.Now()
	topo.Submit_batch(gizmos.CC_Task, 100)
	topo.Submit_batch(gizmos.AC_Task, 20)
	topo.Submit_batch(gizmos.EC_Task, 40)

	reached := Wait_for(topo.Store, "advanced_circuit", 20, goal_timeout)

	return Result{Store: topo.Store.Snapshot(), Elapsed: time.Since(start), Reached: reached}
}

/*
	RunS3 is S1's resource mix again, but the outer manager has 19 agents
	capable of EC+AC plus one RecursiveResourceAgent (capability CC)
	delegating into a one-agent child manager capable of CC. Final counts
	must match S1, verifying that recursive delegation terminates and that
	the outer queue-length heuristic load-balances correctly even when one
	"agent" is a delegator.
*/
func RunS3() Result {
	topo := Mk_flat_topology(
		map[string]int{
			"iron_plate": 40, "copper_plate": 100, "plastic_bar": 40,
			"iron_gear_wheel": 0, "copper_cable": 0, "electronic_circuit": 0, "advanced_circuit": 0,
		},
		19,
		[]string{gizmos.EC_Task, gizmos.AC_Task},
	)
	topo.Add_holon([]string{gizmos.CC_Task}, 1, []string{gizmos.CC_Task})
	defer topo.Teardown()

	start := time.Now()
	topo.Submit_batch(gizmos.CC_Task, 100)
	topo.Submit_batch(gizmos.EC_Task, 40)
	topo.Submit_batch(gizmos.AC_Task, 20)

	reached := Wait_for(topo.Store, "advanced_circuit", 20, goal_timeout)

	return Result{Store: topo.Store.Snapshot(), Elapsed: time.Since(start), Reached: reached}
}

/*
	RunShutdownUnblock starts S1's setup but never stocks plastic_bar,
	submits a single AC_Task (which blocks reserving plastic_bar), then
	shuts the store down. The property under test: the blocked recipe
	returns within the back-off interval, the store is left unchanged by
	the abandoned task, and Stop on every agent returns cleanly.
*/
func RunShutdownUnblock() Result {
	topo := Mk_flat_topology(
		map[string]int{
			"iron_plate": 40, "copper_plate": 100, "plastic_bar": 0,
			"electronic_circuit": 0, "advanced_circuit": 0,
		},
		10,
		[]string{gizmos.EC_Task, gizmos.AC_Task, gizmos.CC_Task},
	)

	start := time.Now()
	before := topo.Store.Snapshot()

	topo.Manager.Schedule_task(gizmos.Mk_task_by_name(gizmos.AC_Task))

	time.Sleep(100 * time.Millisecond) // let the AC task block in Reserve(plastic_bar)
	topo.Teardown()                    // Shutdown then Stop, the order that unblocks every worker

	after := Wait_and_snapshot(topo, 2*time.Second)

	return Result{Store: after, Elapsed: time.Since(start), Reached: equal_snapshots(before, after)}
}

// Wait_and_snapshot gives the torn-down worker a moment to observe shutdown
// and compensate before taking the final snapshot.
func Wait_and_snapshot(topo *Topology, settle time.Duration) map[string]int {
	time.Sleep(settle)
	return topo.Store.Snapshot()
}

/*
	RunBatch builds a flat topology from initial/count/caps and submits each
	parsed Batch_entry in order, returning the final snapshot once every
	submission has been awarded. It does not wait on any particular goal
	count, since a free-form batch has none.
*/
func RunBatch(initial map[string]int, count int, caps []string, entries []Batch_entry) Result {
	topo := Mk_flat_topology(initial, count, caps)
	defer topo.Teardown()

	start := time.Now()
	for _, e := range entries {
		topo.Submit_batch(e.Name, e.Count)
	}

	return Result{Store: topo.Store.Snapshot(), Elapsed: time.Since(start), Reached: true}
}

func equal_snapshots(a, b map[string]int) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}
