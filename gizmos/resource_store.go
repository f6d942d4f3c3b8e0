// vi: sw=4 ts=4:

/*

	Mnemonic:	resource_store
	Abstract:	Shared inventory of raw stock and finished goods. Reserve blocks
				(with a short back-off) until enough stock is on hand or the store
				is shut down; release is an unconditional, non-blocking increment.
	Date:		31 July 2026
	Author:		E. Scott Daniels

	Mods:		none yet.
*/

package gizmos

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// Reserve_backoff is the poll interval used while a reserve waits for stock to
// arrive. The design assumes coarse simulation time dominated by task sleeps,
// so polling rather than condition variables is intentional (see design notes).
const Reserve_backoff = 10 * time.Millisecond

/*
	ResourceStore is the shared integer inventory, one count per resource name.
	Counts never go negative at any externally observable instant; a shutdown
	is a one-shot, idempotent flag that unblocks any reserver waiting for stock
	that will never arrive.
*/
type ResourceStore struct {
	mu       sync.Mutex
	counts   map[string]int
	shutdown atomic.Bool
}

/*
	Mk_resource_store builds a store seeded with the given initial counts.
	The caller owns the map that is passed in only for the duration of the
	call; Mk_resource_store copies it.
*/
func Mk_resource_store(initial map[string]int) (rs *ResourceStore) {
	rs = &ResourceStore{
		counts: make(map[string]int, len(initial)),
	}
	for name, n := range initial {
		if n < 0 {
			panic(fmt.Sprintf("resource_store: negative initial count for %s: %d", name, n))
		}
		rs.counts[name] = n
	}

	return
}

/*
	Available is a snapshot test only; there is an unavoidable TOCTOU window
	between this call and any subsequent Reserve, so it is not meant as an
	external pre-check. Reserve is the only race-free path to stock -- it
	uses the same locked comparison internally, just without releasing the
	lock between the check and the decrement.
*/
func (rs *ResourceStore) Available(name string, amount int) bool {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	return rs.available_locked(name, amount)
}

func (rs *ResourceStore) available_locked(name string, amount int) bool {
	return rs.counts[name] >= amount
}

/*
	Reserve blocks, polling every Reserve_backoff, until the store holds at
	least amount of name, then atomically decrements and returns true. It
	returns false immediately once Shutdown has been signalled while waiting;
	a false return always means shutdown, never insufficient stock.
*/
func (rs *ResourceStore) Reserve(name string, amount int) bool {
	for {
		if rs.shutdown.Load() {
			return false
		}

		rs.mu.Lock()
		if rs.available_locked(name, amount) {
			rs.counts[name] -= amount
			rs.mu.Unlock()
			return true
		}
		rs.mu.Unlock()

		time.Sleep(Reserve_backoff)
	}
}

/*
	Release atomically increments the count for name. It never fails, never
	blocks, and the new count is observable to any subsequent Reserve as soon
	as this call returns.
*/
func (rs *ResourceStore) Release(name string, amount int) {
	rs.mu.Lock()
	rs.counts[name] += amount
	rs.mu.Unlock()
}

/*
	Shutdown idempotently raises the shutdown flag, unblocking any Reserve
	waiting on stock that will now never arrive.
*/
func (rs *ResourceStore) Shutdown() {
	rs.shutdown.Store(true)
}

/*
	Is_shutdown reports whether Shutdown has been called.
*/
func (rs *ResourceStore) Is_shutdown() bool {
	return rs.shutdown.Load()
}

/*
	Snapshot returns a point-in-time copy of every resource count, useful for
	scenario reporting and for tests asserting conservation properties.
*/
func (rs *ResourceStore) Snapshot() map[string]int {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	out := make(map[string]int, len(rs.counts))
	for name, n := range rs.counts {
		out[name] = n
	}

	return out
}

/*
	Count returns the current count for a single resource, 0 if the name has
	never been seen. Like Available, this is a snapshot and not a pre-check.
*/
func (rs *ResourceStore) Count(name string) int {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	return rs.counts[name]
}
