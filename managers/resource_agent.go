// vi: sw=4 ts=4:

/*

	Mnemonic:	resource_agent
	Abstract:	A manufacturing resource agent: a set of capability tags, a
				FIFO queue of awarded tasks, and a background worker that
				executes them one at a time in award order.

				The recursive ("holonic") variant is not a subclass: it is
				the same agent type parameterised by its on-dequeue action,
				which keeps the worker loop a single implementation. The default
				action executes the task against a ResourceStore; the
				recursive action re-submits the task to a child
				BiddingManager instead, so Mk_recursive_resource_agent below
				is the only thing that distinguishes a supervisor agent from
				a worker agent.
	Date:		31 July 2026
	Author:		E. Scott Daniels
*/

package managers

import (
	"sync/atomic"

	"github.com/att/gopkgs/ipc"

	"github.com/sunfl0w/SFCS-Sim/gizmos"
)

// queue_depth bounds the number of awarded-but-not-started tasks an agent
// will buffer. Scenarios in this project never approach it; it exists so
// Enqueue never has to block the negotiation that awarded the task.
const queue_depth = 4096

/*
	ResourceAgent owns a FIFO queue of awarded tasks and a worker goroutine
	that drains it serially. Index is assigned by the owning BiddingManager
	and must stay dense and stable (member[i].Index == i).
*/
type ResourceAgent struct {
	Index        int
	capabilities map[string]struct{}
	queue        chan *gizmos.Task
	stop_ch      chan struct{}
	stopped      atomic.Bool
	on_dequeue   func(*gizmos.Task)
}

/*
	Mk_resource_agent builds a worker agent whose execution is to run each
	awarded task's recipe directly against store.
*/
func Mk_resource_agent(caps []string, store *gizmos.ResourceStore) *ResourceAgent {
	ra := mk_bare_agent(caps)
	ra.on_dequeue = func(t *gizmos.Task) {
		t.Execute(store)
	}
	return ra
}

/*
	Mk_recursive_resource_agent builds a supervisor agent: on dequeue, it
	re-submits the task to child instead of executing it. Because
	schedule_task on the child returns as soon as the task is awarded (not
	when it finishes), this agent is "busy" only for the scheduling call,
	not for the sub-holon's execution time -- the intended delegator
	semantics: a supervisor delegates work downward, it does not
	serialize the sub-holon.
*/
func Mk_recursive_resource_agent(caps []string, child *BiddingManager) *ResourceAgent {
	ra := mk_bare_agent(caps)
	ra.on_dequeue = func(t *gizmos.Task) {
		reply_ch := make(chan *ipc.Chmsg)
		msg := ipc.Mk_chmsg()
		msg.Send_req(child.Mailbox(), reply_ch, REQ_SCHEDULE, t, nil)
		<-reply_ch // blocks only until the child awards it, not until it executes
	}
	return ra
}

func mk_bare_agent(caps []string) *ResourceAgent {
	capset := make(map[string]struct{}, len(caps))
	for _, c := range caps {
		capset[c] = struct{}{}
	}

	return &ResourceAgent{
		Index:        -1, // assigned by BiddingManager.Add_resource
		capabilities: capset,
		queue:        make(chan *gizmos.Task, queue_depth),
		stop_ch:      make(chan struct{}),
	}
}

/*
	Supports reports whether this agent advertises the given capability tag.
*/
func (ra *ResourceAgent) Supports(name string) bool {
	_, ok := ra.capabilities[name]
	return ok
}

/*
	Queue_len returns the number of awarded-but-not-yet-started tasks. This
	is exactly the "queue length" the negotiation's bid formula uses; it
	does not count a task currently being executed, which has already been
	popped off the queue.
*/
func (ra *ResourceAgent) Queue_len() int {
	return len(ra.queue)
}

/*
	Enqueue appends task to the tail of the FIFO. No capability check is
	performed here; the BiddingManager is responsible for only awarding
	compatible tasks to this agent.
*/
func (ra *ResourceAgent) Enqueue(task *gizmos.Task) {
	ra.queue <- task
}

/*
	Start launches the background worker. Callers start an agent exactly
	once; Start is not required to be idempotent.
*/
func (ra *ResourceAgent) Start() {
	go ra.run()
}

/*
	Stop requests graceful termination: it does not join, and it does not
	interrupt a task that is already executing -- that task runs to
	completion. Any task still sitting in the queue when the worker next
	checks for stop is abandoned, never executed. Stop is idempotent.
*/
func (ra *ResourceAgent) Stop() {
	if ra.stopped.CompareAndSwap(false, true) {
		close(ra.stop_ch)
	}
}

func (ra *ResourceAgent) run() {
	for {
		select {
		case <-ra.stop_ch:
			return
		default:
		}

		select {
		case <-ra.stop_ch:
			return
		case task := <-ra.queue:
			ra.on_dequeue(task)
		}
	}
}
