// vi: sw=4 ts=4:

/*

	Mnemonic:	topology
	Abstract:	Scenario-building helpers: construct a ResourceStore, a
				BiddingManager, a flock of ResourceAgents sharing a common
				capability set, and (for the holonic scenario) a nested
				child manager behind a RecursiveResourceAgent. This is the
				out-of-core scenario driver -- it exists here only so the
				bundled demo scenarios and their tests have something
				concrete to build against.
	Date:		31 July 2026
	Author:		E. Scott Daniels
*/

package scenario

import (
	"time"

	"github.com/sunfl0w/SFCS-Sim/gizmos"
	"github.com/sunfl0w/SFCS-Sim/managers"
)

// poll_interval is how often Wait_for re-checks the store while waiting for
// a scenario's goal count to be reached.
const poll_interval = 5 * time.Millisecond

/*
	Topology bundles everything a scenario needs torn down at the end: the
	store, the top-level manager, and every agent across every manager
	(including any nested child manager's agents) so Teardown can stop them
	all.
*/
type Topology struct {
	Store   *gizmos.ResourceStore
	Manager *managers.BiddingManager
	agents  []*managers.ResourceAgent
}

/*
	Mk_flat_topology builds one store seeded with initial, one manager, and
	count agents, each advertising caps, registered with the manager and
	started.
*/
func Mk_flat_topology(initial map[string]int, count int, caps []string) *Topology {
	store := gizmos.Mk_resource_store(initial)
	mgr := managers.Mk_bidding_manager(store)

	topo := &Topology{Store: store, Manager: mgr}
	for i := 0; i < count; i++ {
		a := managers.Mk_resource_agent(caps, store)
		a.Start()
		mgr.Add_resource(a)
		topo.agents = append(topo.agents, a)
	}

	return topo
}

/*
	Add_holon extends topo with a RecursiveResourceAgent registered with the
	top-level manager, backed by a freshly built child manager with
	child_count agents advertising child_caps. The outer agent advertises
	outer_caps (typically the capability it delegates, e.g. CC_Task).
*/
func (topo *Topology) Add_holon(outer_caps []string, child_count int, child_caps []string) {
	child := managers.Mk_bidding_manager(topo.Store)

	for i := 0; i < child_count; i++ {
		a := managers.Mk_resource_agent(child_caps, topo.Store)
		a.Start()
		child.Add_resource(a)
		topo.agents = append(topo.agents, a)
	}

	recursive := managers.Mk_recursive_resource_agent(outer_caps, child)
	recursive.Start()
	topo.Manager.Add_resource(recursive)
	topo.agents = append(topo.agents, recursive)
}

/*
	Submit_batch submits count tasks of the named recipe, in order, blocking
	on each award before submitting the next -- exactly what a single
	scenario-driver goroutine calling schedule_task in a loop does. It does
	not wait for execution.
*/
func (topo *Topology) Submit_batch(name string, count int) {
	for i := 0; i < count; i++ {
		topo.Manager.Schedule_task(gizmos.Mk_task_by_name(name))
	}
}

/*
	Teardown shuts the store down first so any in-flight reserve
	fails-and-compensates, then stops every agent so every worker exits
	even if it was blocked in reserve.
*/
func (topo *Topology) Teardown() {
	topo.Store.Shutdown()
	for _, a := range topo.agents {
		a.Stop()
	}
}

/*
	Wait_for polls store for name to reach at least target, returning true
	if it did before timeout elapsed.
*/
func Wait_for(store *gizmos.ResourceStore, name string, target int, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if store.Count(name) >= target {
			return true
		}
		time.Sleep(poll_interval)
	}
	return store.Count(name) >= target
}
