package gizmos

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTaskExecuteSuccess(t *testing.T) {
	rs := Mk_resource_store(map[string]int{"iron_plate": 2, "iron_gear_wheel": 0})

	task := Mk_task("IGW_Task", 5*time.Millisecond,
		[]Reservation{{Name: "iron_plate", Amount: 2}},
		Output{Name: "iron_gear_wheel", Amount: 1})

	require.True(t, task.Execute(rs))
	require.Equal(t, 0, rs.Count("iron_plate"))
	require.Equal(t, 1, rs.Count("iron_gear_wheel"))
}

func TestTaskExecuteCompensatesOnShutdown(t *testing.T) {
	rs := Mk_resource_store(map[string]int{"iron_plate": 5, "copper_cable": 0, "electronic_circuit": 0})

	task := Mk_task("EC_Task", 5*time.Millisecond,
		[]Reservation{
			{Name: "iron_plate", Amount: 1},
			{Name: "copper_cable", Amount: 3}, // never available; store shuts down while blocked here
		},
		Output{Name: "electronic_circuit", Amount: 1})

	go func() {
		time.Sleep(20 * time.Millisecond)
		rs.Shutdown()
	}()

	ok := task.Execute(rs)
	require.False(t, ok)

	// the first reservation (iron_plate) must have been released back
	require.Equal(t, 5, rs.Count("iron_plate"))
	require.Equal(t, 0, rs.Count("electronic_circuit"))
}

func TestRecipeCatalogNames(t *testing.T) {
	for _, name := range []string{IGW_Task, CC_Task, EC_Task, AC_Task} {
		task := Mk_task_by_name(name)
		require.NotNil(t, task)
		require.Equal(t, name, task.Name)
	}

	require.Nil(t, Mk_task_by_name("not_a_recipe"))
}
