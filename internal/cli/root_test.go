package cli

import (
	"reflect"
	"testing"

	"github.com/shoaibmiaan/gramorx-planner/internal/models"
)

func TestParseAvailability(t *testing.T) {
	got, err := ParseAvailability("monday=60, wed=45,sat=80")
	if err != nil {
		t.Fatalf("ParseAvailability: %v", err)
	}
	want := []models.AvailabilitySlot{
		{Day: "monday", Minutes: 60},
		{Day: "wed", Minutes: 45},
		{Day: "sat", Minutes: 80},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestParseAvailability_Errors(t *testing.T) {
	for _, in := range []string{"", "  ,  ", "monday", "monday=abc"} {
		if _, err := ParseAvailability(in); err == nil {
			t.Errorf("ParseAvailability(%q): expected error", in)
		}
	}
}

func TestExpandPath(t *testing.T) {
	if got := ExpandPath("/tmp/plans.db"); got != "/tmp/plans.db" {
		t.Errorf("absolute path changed: %q", got)
	}
	if got := ExpandPath("~/plans.db"); got == "~/plans.db" {
		t.Errorf("tilde not expanded: %q", got)
	}
}
