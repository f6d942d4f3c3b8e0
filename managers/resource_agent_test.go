package managers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sunfl0w/SFCS-Sim/gizmos"
)

func TestAgentExecutesInAwardOrder(t *testing.T) {
	store := gizmos.Mk_resource_store(map[string]int{"iron_plate": 100, "iron_gear_wheel": 0, "copper_plate": 100, "copper_cable": 0})
	agent := Mk_resource_agent([]string{gizmos.IGW_Task, gizmos.CC_Task}, store)
	agent.Start()
	defer agent.Stop()

	for i := 0; i < 5; i++ {
		agent.Enqueue(gizmos.Mk_task_by_name(gizmos.IGW_Task))
	}
	agent.Enqueue(gizmos.Mk_task_by_name(gizmos.CC_Task))

	// six 0.5s tasks run serially; the CC_Task was awarded last, so when its
	// cable first shows up every gear must already be in the store
	var snap map[string]int
	require.Eventually(t, func() bool {
		snap = store.Snapshot()
		return snap["copper_cable"] == 2
	}, 5*time.Second, 5*time.Millisecond)
	require.Equal(t, 5, snap["iron_gear_wheel"])
}

func TestAgentStopAbandonsQueuedNotInFlight(t *testing.T) {
	store := gizmos.Mk_resource_store(map[string]int{"iron_plate": 1000, "iron_gear_wheel": 0})
	agent := Mk_resource_agent([]string{gizmos.IGW_Task}, store)
	agent.Start()

	for i := 0; i < 50; i++ {
		agent.Enqueue(gizmos.Mk_task_by_name(gizmos.IGW_Task))
	}

	agent.Stop()
	agent.Stop() // idempotent

	time.Sleep(200 * time.Millisecond)
	produced := store.Count("iron_gear_wheel")
	require.Less(t, produced, 50)
}

func TestAgentSupports(t *testing.T) {
	store := gizmos.Mk_resource_store(nil)
	agent := Mk_resource_agent([]string{gizmos.IGW_Task, gizmos.CC_Task}, store)

	require.True(t, agent.Supports(gizmos.IGW_Task))
	require.True(t, agent.Supports(gizmos.CC_Task))
	require.False(t, agent.Supports(gizmos.AC_Task))
}

func TestQueueLenReflectsAwaitingNotInFlight(t *testing.T) {
	store := gizmos.Mk_resource_store(map[string]int{"iron_plate": 100, "iron_gear_wheel": 0})
	agent := Mk_resource_agent([]string{gizmos.IGW_Task}, store)
	agent.Start()
	defer agent.Stop()

	require.Equal(t, 0, agent.Queue_len())

	agent.Enqueue(gizmos.Mk_task_by_name(gizmos.IGW_Task))
	agent.Enqueue(gizmos.Mk_task_by_name(gizmos.IGW_Task))

	// while the first task is in flight (0.5s) only the second one is queued
	require.Eventually(t, func() bool {
		return agent.Queue_len() == 1
	}, 400*time.Millisecond, time.Millisecond)

	require.Eventually(t, func() bool {
		return store.Count("iron_gear_wheel") == 2
	}, 2*time.Second, 5*time.Millisecond)
}
