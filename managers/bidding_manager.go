// vi: sw=4 ts=4:

/*

	Mnemonic:	bidding_manager
	Abstract:	Admits tasks, selects capable+idle member agents as bid
				candidates, runs a one-shot negotiation that awards the task
				to the best bidder, and releases every candidate (including
				the winner) back to available. Also exposes a mailbox so a
				RecursiveResourceAgent in a parent manager can delegate a
				task to this manager the same way managers/res_mgr.go in the
				teacher sends a cross-manager ipc.Chmsg request and blocks
				for the (cheap, synchronous) reply.
	Date:		31 July 2026
	Author:		E. Scott Daniels
*/

package managers

import (
	"fmt"
	"sync"
	"time"

	"github.com/att/gopkgs/ipc"

	"github.com/sunfl0w/SFCS-Sim/gizmos"
)

// schedule_backoff is the re-scan interval used while Schedule_task's
// candidate-collection loop finds no capable, available member.
const schedule_backoff = 10 * time.Millisecond

// mailbox_depth sizes the channel a RecursiveResourceAgent uses to delegate
// into this manager from a parent holon.
const mailbox_depth = 64

/*
	BiddingManager owns an ordered, dense, stably-indexed sequence of member
	agents and a parallel availability vector guarded by amu. Indices are
	assigned by Add_resource and never reused.
*/
type BiddingManager struct {
	store   *gizmos.ResourceStore
	amu     sync.Mutex
	members []*ResourceAgent
	avail   []bool
	mailbox chan *ipc.Chmsg
}

/*
	TaskAgent is the ephemeral object created per Schedule_task call: it owns
	the task being scheduled and the candidate snapshot collected for it. It
	is discarded once the task is awarded.
*/
type TaskAgent struct {
	task       *gizmos.Task
	candidates []*ResourceAgent
}

/*
	NegotiationAgent runs the one-shot bid comparison for a TaskAgent's
	candidate set. Ties are broken by scan order: the comparator is a strict
	">" against an initial max_bid of 0, so an agent with an empty queue
	(bid == 1.0) always beats one with any queue at all, and the first
	candidate found keeps the prize against any later candidate with an
	equal bid.
*/
type NegotiationAgent struct {
	ta *TaskAgent
}

/*
	Mk_bidding_manager builds a manager bound to store and starts its
	delegation mailbox.
*/
func Mk_bidding_manager(store *gizmos.ResourceStore) *BiddingManager {
	bm := &BiddingManager{
		store:   store,
		mailbox: make(chan *ipc.Chmsg, mailbox_depth),
	}
	go bm.mailbox_loop()
	return bm
}

/*
	Mailbox exposes the manager's ipc.Chmsg request channel so a
	RecursiveResourceAgent in a parent holon can delegate a task here
	without a direct method-call coupling across the holon boundary.
*/
func (bm *BiddingManager) Mailbox() chan *ipc.Chmsg {
	return bm.mailbox
}

/*
	Add_resource assigns agent the next dense index, appends it to the
	member sequence, and marks it available.
*/
func (bm *BiddingManager) Add_resource(agent *ResourceAgent) {
	bm.amu.Lock()
	agent.Index = len(bm.members)
	bm.members = append(bm.members, agent)
	bm.avail = append(bm.avail, true)
	bm.amu.Unlock()
}

/*
	Schedule_task is synchronous from the caller's perspective only up to
	award: it returns once the task has been handed to some agent's queue,
	not once that agent has executed it. If no member ever supports the
	task, this call blocks forever -- a misconfiguration, not a runtime
	error.
*/
func (bm *BiddingManager) Schedule_task(task *gizmos.Task) {
	candidates := bm.collect_candidates(task.Name)

	ta := &TaskAgent{task: task, candidates: candidates}
	na := &NegotiationAgent{ta: ta}
	winner := na.award()

	mgr_sheep.Baa(2, "schedule_task: %s awarded to agent %d among %d candidate(s)", task.Name, winner.Index, len(candidates))
	winner.Enqueue(task)

	bm.release_all(candidates)
}

/*
	collect_candidates repeats a full scan of the member/availability
	vectors until it gathers at least one member that is both available and
	capable of task_name. Each true->false availability toggle happens
	inside the same critical section that observed the value true, which
	forbids two concurrent scans from claiming the same member.
*/
func (bm *BiddingManager) collect_candidates(task_name string) []*ResourceAgent {
	for {
		bm.amu.Lock()
		var found []*ResourceAgent
		for i, m := range bm.members {
			if bm.avail[i] && m.Supports(task_name) {
				bm.avail[i] = false
				found = append(found, m)
			}
		}
		bm.amu.Unlock()

		if len(found) > 0 {
			return found
		}

		time.Sleep(schedule_backoff)
	}
}

/*
	release_all marks every candidate (winner included) available again.
	The winner is immediately free to bid on the next negotiation even
	though it still has the just-awarded task queued: bids reflect queue
	length, not instantaneous busyness, which is the load-spreading
	property the heuristic is designed for.
*/
func (bm *BiddingManager) release_all(candidates []*ResourceAgent) {
	bm.amu.Lock()
	for _, c := range candidates {
		bm.avail[c.Index] = true
	}
	bm.amu.Unlock()
}

/*
	award computes bid = 1/(1+queue_length) for every candidate and returns
	the highest bidder, first-found winning ties.
*/
func (na *NegotiationAgent) award() *ResourceAgent {
	var winner *ResourceAgent
	max_bid := 0.0

	for _, cand := range na.ta.candidates {
		bid := 1.0 / (1.0 + float64(cand.Queue_len()))
		if bid > max_bid {
			max_bid = bid
			winner = cand
		}
	}

	return winner
}

/*
	mailbox_loop is this manager's ipc.Chmsg request loop. Each request is
	handled in its own goroutine so one slow or blocked Schedule_task (e.g.
	waiting on a scarce capability) never stalls a sibling RecursiveResourceAgent
	delegating concurrently into the same child manager.
*/
func (bm *BiddingManager) mailbox_loop() {
	for msg := range bm.mailbox {
		go bm.handle_mailbox_msg(msg)
	}
}

func (bm *BiddingManager) handle_mailbox_msg(msg *ipc.Chmsg) {
	switch msg.Msg_type {
	case REQ_SCHEDULE:
		task := msg.Req_data.(*gizmos.Task)
		bm.Schedule_task(task)
		msg.State = nil
		msg.Response_data = nil

	default:
		msg.State = fmt.Errorf("bidding_manager: unknown message type %d", msg.Msg_type)
	}

	if msg.Response_ch != nil {
		msg.Response_ch <- msg
	}
}
