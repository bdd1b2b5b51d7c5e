package planner

import (
	"reflect"
	"testing"
)

func TestMarkTaskComplete_SetsCompleted(t *testing.T) {
	plan := mustGenerate(t, exampleRequest())
	target := plan.Days[0].Tasks[0]

	updated := MarkTaskComplete(plan, plan.Days[0].DateISO, target.ID)

	if !updated.Days[0].Tasks[0].Completed {
		t.Errorf("expected task %s to be marked complete", target.ID)
	}
	if plan.Days[0].Tasks[0].Completed {
		t.Errorf("input plan was mutated")
	}
}

func TestMarkTaskComplete_MatchesOnDayPrefix(t *testing.T) {
	plan := mustGenerate(t, exampleRequest())
	target := plan.Days[0].Tasks[0]

	// A bare YYYY-MM-DD date must match the day's full ISO timestamp.
	updated := MarkTaskComplete(plan, "2025-01-06", target.ID)

	if !updated.Days[0].Tasks[0].Completed {
		t.Errorf("expected day-prefix match to find the task")
	}
}

func TestMarkTaskComplete_UnknownTaskIsNoOp(t *testing.T) {
	plan := mustGenerate(t, exampleRequest())

	updated := MarkTaskComplete(plan, plan.Days[0].DateISO, "no-such-task")

	if !reflect.DeepEqual(plan, updated) {
		t.Errorf("expected an equivalent plan for an unknown task id")
	}
}

func TestMarkTaskComplete_UnknownDateIsNoOp(t *testing.T) {
	plan := mustGenerate(t, exampleRequest())

	updated := MarkTaskComplete(plan, "1999-01-01", plan.Days[0].Tasks[0].ID)

	if !reflect.DeepEqual(plan, updated) {
		t.Errorf("expected an equivalent plan for an unknown date")
	}
}

func TestMarkTaskComplete_Idempotent(t *testing.T) {
	plan := mustGenerate(t, exampleRequest())
	target := plan.Days[0].Tasks[0]

	once := MarkTaskComplete(plan, plan.Days[0].DateISO, target.ID)
	twice := MarkTaskComplete(once, plan.Days[0].DateISO, target.ID)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("marking the same task twice changed the plan")
	}
}

func TestToggleTaskComplete_RoundTrips(t *testing.T) {
	plan := mustGenerate(t, exampleRequest())
	target := plan.Days[0].Tasks[0]

	on := ToggleTaskComplete(plan, plan.Days[0].DateISO, target.ID)
	off := ToggleTaskComplete(on, plan.Days[0].DateISO, target.ID)

	if !on.Days[0].Tasks[0].Completed {
		t.Errorf("first toggle should complete the task")
	}
	if off.Days[0].Tasks[0].Completed {
		t.Errorf("second toggle should clear the task")
	}
	if !reflect.DeepEqual(plan, off) {
		t.Errorf("double toggle should restore the original plan")
	}
}

func TestClone_IsDeep(t *testing.T) {
	plan := mustGenerate(t, exampleRequest())

	clone := plan.Clone()
	clone.Days[0].Tasks[0].Completed = true
	clone.Weaknesses[0] = "changed"

	if plan.Days[0].Tasks[0].Completed {
		t.Errorf("mutating a clone's task leaked into the original")
	}
	if plan.Weaknesses[0] != "grammar" {
		t.Errorf("mutating a clone's weaknesses leaked into the original")
	}
}
