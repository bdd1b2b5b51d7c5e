package planner

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/shoaibmiaan/gramorx-planner/internal/models"
)

// exampleRequest is the canonical four-week scenario: start on a Monday,
// exam four weeks later on a Sunday, four available weekdays.
func exampleRequest() models.PlanRequest {
	return models.PlanRequest{
		UserID:      "user-1",
		StartISO:    "2025-01-06", // Monday
		ExamDateISO: "2025-02-02", // Sunday, 4 weeks later
		TargetBand:  7.5,
		Availability: []models.AvailabilitySlot{
			{Day: "monday", Minutes: 60},
			{Day: "wednesday", Minutes: 45},
			{Day: "friday", Minutes: 70},
			{Day: "saturday", Minutes: 80},
		},
		Weaknesses: []string{"grammar", "spelling"},
	}
}

func mustGenerate(t *testing.T, req models.PlanRequest) models.StudyPlan {
	t.Helper()
	plan, err := Generate(req)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return plan
}

func TestGenerate_Deterministic(t *testing.T) {
	first := mustGenerate(t, exampleRequest())
	second := mustGenerate(t, exampleRequest())

	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical plans from identical requests")
	}
}

func TestGenerate_DateCoverage(t *testing.T) {
	plan := mustGenerate(t, exampleRequest())

	if len(plan.Days) != 28 {
		t.Fatalf("expected 28 days, got %d", len(plan.Days))
	}
	if !strings.HasPrefix(plan.Days[0].DateISO, "2025-01-06") {
		t.Errorf("expected plan to start 2025-01-06, got %s", plan.Days[0].DateISO)
	}
	if !strings.HasPrefix(plan.Days[27].DateISO, "2025-02-02") {
		t.Errorf("expected plan to end 2025-02-02, got %s", plan.Days[27].DateISO)
	}
	if plan.StartISO != plan.Days[0].DateISO {
		t.Errorf("StartISO %s does not match first day %s", plan.StartISO, plan.Days[0].DateISO)
	}
	if plan.Weeks != 4 {
		t.Errorf("expected 4 weeks, got %d", plan.Weeks)
	}
}

func TestGenerate_RespectsAvailability(t *testing.T) {
	req := exampleRequest()
	plan := mustGenerate(t, req)

	budgets := map[time.Weekday]int{
		time.Monday:    60,
		time.Wednesday: 45,
		time.Friday:    70,
		time.Saturday:  80,
	}

	for _, day := range plan.Days {
		date, err := time.Parse(time.RFC3339, day.DateISO)
		if err != nil {
			t.Fatalf("unparseable day date %q: %v", day.DateISO, err)
		}

		total := 0
		for _, task := range day.Tasks {
			total += task.EstMinutes
		}

		if total > budgets[date.Weekday()] {
			t.Errorf("%s: %d minutes allocated exceeds %d available", day.DateISO, total, budgets[date.Weekday()])
		}
		if budgets[date.Weekday()] == 0 && len(day.Tasks) != 0 {
			t.Errorf("%s: expected rest day, got %d tasks", day.DateISO, len(day.Tasks))
		}
	}
}

func TestGenerate_ActiveDaysIncludeCoreSkill(t *testing.T) {
	plan := mustGenerate(t, exampleRequest())

	for _, day := range plan.Days {
		if len(day.Tasks) == 0 {
			continue
		}
		found := false
		for _, task := range day.Tasks {
			if models.IsCoreSkill(task.Type) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("%s: active day has no core-skill task", day.DateISO)
		}
	}
}

func TestGenerate_MockCadence(t *testing.T) {
	plan := mustGenerate(t, exampleRequest())

	mocksPerWeek := make(map[int]int)
	for i, day := range plan.Days {
		for _, task := range day.Tasks {
			if task.Type == models.TaskMock {
				mocksPerWeek[i/7]++
			}
		}
	}

	for week := 0; week < 4; week++ {
		if mocksPerWeek[week] != 1 {
			t.Errorf("week %d: expected exactly 1 mock task, got %d", week, mocksPerWeek[week])
		}
	}

	// The mock lands on the last available day of the week, the Saturday.
	for _, idx := range []int{5, 12, 19, 26} {
		day := plan.Days[idx]
		hasMock := false
		for _, task := range day.Tasks {
			if task.Type == models.TaskMock {
				hasMock = true
			}
		}
		if !hasMock {
			t.Errorf("expected mock on %s (last active day of its week)", day.DateISO)
		}
	}
}

func TestGenerate_MockDayWithOddMinutesStaysWithinBudget(t *testing.T) {
	// A single 27-minute day is its week's mock day; after the focus tier
	// takes the practice budget, only 5 minutes remain for the mock and the
	// day must not overrun its availability.
	plan := mustGenerate(t, models.PlanRequest{
		UserID:      "user-1",
		StartISO:    "2025-01-06", // Monday
		ExamDateISO: "2025-01-06",
		TargetBand:  6.0,
		Availability: []models.AvailabilitySlot{
			{Day: "monday", Minutes: 27},
		},
	})

	if len(plan.Days) != 1 {
		t.Fatalf("expected single-day plan, got %d days", len(plan.Days))
	}

	total := 0
	mockMinutes := 0
	for _, task := range plan.Days[0].Tasks {
		total += task.EstMinutes
		if task.Type == models.TaskMock {
			mockMinutes = task.EstMinutes
		}
	}
	if total > 27 {
		t.Errorf("day total %d exceeds the 27-minute availability", total)
	}
	if mockMinutes != 5 {
		t.Errorf("expected a 5-minute mock, got %d", mockMinutes)
	}
}

func TestGenerate_FloorSizedMockDayStillHostsWeeklyMock(t *testing.T) {
	// The week's last active day has exactly 25 minutes, the practice floor.
	// The mock shrinks to its 5-minute minimum instead of disappearing, so
	// the week keeps its one mock checkpoint.
	plan := mustGenerate(t, models.PlanRequest{
		UserID:      "user-1",
		StartISO:    "2025-01-06", // Monday
		ExamDateISO: "2025-01-12", // Sunday, same week
		TargetBand:  6.0,
		Availability: []models.AvailabilitySlot{
			{Day: "monday", Minutes: 60},
			{Day: "saturday", Minutes: 25},
		},
	})

	var mocks []models.StudyTask
	for _, day := range plan.Days {
		for _, task := range day.Tasks {
			if task.Type == models.TaskMock {
				mocks = append(mocks, task)
			}
		}
	}
	if len(mocks) != 1 {
		t.Fatalf("expected exactly 1 mock task in the week, got %d", len(mocks))
	}
	if mocks[0].EstMinutes != 5 {
		t.Errorf("expected the minimum 5-minute mock, got %d", mocks[0].EstMinutes)
	}

	// And it sits on the Saturday without overrunning its 25 minutes.
	saturday := plan.Days[5]
	total := 0
	hasMock := false
	for _, task := range saturday.Tasks {
		total += task.EstMinutes
		if task.Type == models.TaskMock {
			hasMock = true
		}
	}
	if !hasMock {
		t.Errorf("expected the mock on %s, the week's last active day", saturday.DateISO)
	}
	if total > 25 {
		t.Errorf("saturday total %d exceeds its 25-minute availability", total)
	}
}

func TestGenerate_MinutesAreMultiplesOfFive(t *testing.T) {
	plan := mustGenerate(t, exampleRequest())

	for _, day := range plan.Days {
		for _, task := range day.Tasks {
			if task.EstMinutes <= 0 || task.EstMinutes%5 != 0 {
				t.Errorf("%s task %s: est minutes %d is not a positive multiple of 5", day.DateISO, task.ID, task.EstMinutes)
			}
		}
	}
}

func TestGenerate_SkillRotationAdvancesOnActiveDaysOnly(t *testing.T) {
	plan := mustGenerate(t, exampleRequest())

	// Active days are Mon, Wed, Fri, Sat; rest days in between must not
	// advance the rotation, so focus cycles L, R, W, S each week.
	wantFocus := []models.TaskType{
		models.TaskListening, models.TaskReading, models.TaskWriting, models.TaskSpeaking,
	}
	active := 0
	for _, day := range plan.Days {
		if len(day.Tasks) == 0 {
			continue
		}
		if got := day.Tasks[0].Type; got != wantFocus[active%4] {
			t.Errorf("active day %d (%s): focus %s, want %s", active, day.DateISO, got, wantFocus[active%4])
		}
		active++
	}
	if active != 16 {
		t.Errorf("expected 16 active days, got %d", active)
	}
}

func TestGenerate_ExamBeforeStartClampsToSingleDay(t *testing.T) {
	req := exampleRequest()
	req.StartISO = "2025-03-10"
	req.ExamDateISO = "2025-02-01"

	plan := mustGenerate(t, req)

	if len(plan.Days) != 1 {
		t.Fatalf("expected single-day plan, got %d days", len(plan.Days))
	}
	if !strings.HasPrefix(plan.Days[0].DateISO, "2025-03-10") {
		t.Errorf("expected the single day to be the start date, got %s", plan.Days[0].DateISO)
	}
	if plan.Weeks != 1 {
		t.Errorf("expected 1 week, got %d", plan.Weeks)
	}
}

func TestGenerate_WeeksMetadataClampedAtTwelve(t *testing.T) {
	req := exampleRequest()
	req.StartISO = "2025-01-06"
	req.ExamDateISO = "2025-06-30" // just under 26 weeks out

	plan := mustGenerate(t, req)

	if plan.Weeks != 12 {
		t.Errorf("expected weeks metadata clamped to 12, got %d", plan.Weeks)
	}
	// Days is never clamped.
	if len(plan.Days) != 176 {
		t.Errorf("expected 176 days, got %d", len(plan.Days))
	}
}

func TestGenerate_WeaknessesEchoedOnlyWhenPresent(t *testing.T) {
	withWeaknesses := mustGenerate(t, exampleRequest())
	if !reflect.DeepEqual(withWeaknesses.Weaknesses, []string{"grammar", "spelling"}) {
		t.Errorf("expected weaknesses echoed, got %v", withWeaknesses.Weaknesses)
	}

	req := exampleRequest()
	req.Weaknesses = nil
	without := mustGenerate(t, req)
	if without.Weaknesses != nil {
		t.Errorf("expected no weaknesses echo, got %v", without.Weaknesses)
	}
}

func TestGenerate_ReviewTitlesCycleWeaknesses(t *testing.T) {
	plan := mustGenerate(t, exampleRequest())

	found := false
	for _, day := range plan.Days {
		for _, task := range day.Tasks {
			if task.Type != models.TaskReview {
				continue
			}
			found = true
			if !strings.Contains(task.Title, "grammar") && !strings.Contains(task.Title, "spelling") {
				t.Errorf("review task title %q does not name a weakness", task.Title)
			}
		}
	}
	if !found {
		t.Fatalf("expected at least one review task in the plan")
	}
}

func TestGenerate_BandScalingBoundaries(t *testing.T) {
	wide := func(band float64) models.PlanRequest {
		req := exampleRequest()
		req.TargetBand = band
		req.Availability = []models.AvailabilitySlot{{Day: "monday", Minutes: 240}}
		return req
	}

	focusMinutes := func(plan models.StudyPlan) int {
		for _, day := range plan.Days {
			if len(day.Tasks) > 0 {
				return day.Tasks[0].EstMinutes
			}
		}
		return 0
	}

	low := focusMinutes(mustGenerate(t, wide(4.0)))
	base := focusMinutes(mustGenerate(t, wide(6.0)))
	high := focusMinutes(mustGenerate(t, wide(9.0)))

	// Listening base is 35: capped multipliers give 30 / 35 / 45.
	if low != 30 {
		t.Errorf("band 4.0 focus: got %d, want 30", low)
	}
	if base != 35 {
		t.Errorf("band 6.0 focus: got %d, want 35", base)
	}
	if high != 45 {
		t.Errorf("band 9.0 focus: got %d, want 45", high)
	}
	for _, m := range []int{low, base, high} {
		if m < 20 || m > 240 {
			t.Errorf("focus minutes %d outside [20, 240]", m)
		}
	}
}

func TestGenerate_ExampleScenarioDayShapes(t *testing.T) {
	plan := mustGenerate(t, exampleRequest())

	// Week one, worked by hand at intensity 1.225 (band 7.5):
	// Monday 60m  -> listening 45 + review 15
	// Wednesday 45m -> reading 45
	// Friday 70m -> writing 55 + review 15
	// Saturday 80m (mock day) -> speaking 25 + mock 55
	cases := []struct {
		idx     int
		types   []models.TaskType
		minutes []int
	}{
		{0, []models.TaskType{models.TaskListening, models.TaskReview}, []int{45, 15}},
		{2, []models.TaskType{models.TaskReading}, []int{45}},
		{4, []models.TaskType{models.TaskWriting, models.TaskReview}, []int{55, 15}},
		{5, []models.TaskType{models.TaskSpeaking, models.TaskMock}, []int{25, 55}},
	}

	for _, tc := range cases {
		day := plan.Days[tc.idx]
		if len(day.Tasks) != len(tc.types) {
			t.Fatalf("day %d: got %d tasks, want %d (%v)", tc.idx, len(day.Tasks), len(tc.types), day.Tasks)
		}
		for i := range tc.types {
			if day.Tasks[i].Type != tc.types[i] {
				t.Errorf("day %d task %d: type %s, want %s", tc.idx, i, day.Tasks[i].Type, tc.types[i])
			}
			if day.Tasks[i].EstMinutes != tc.minutes[i] {
				t.Errorf("day %d task %d: %d minutes, want %d", tc.idx, i, day.Tasks[i].EstMinutes, tc.minutes[i])
			}
		}
	}
}

func TestGenerate_TaskIDsUniqueWithinPlan(t *testing.T) {
	plan := mustGenerate(t, exampleRequest())

	seen := make(map[string]bool)
	for _, day := range plan.Days {
		for _, task := range day.Tasks {
			if seen[task.ID] {
				t.Errorf("duplicate task id %s", task.ID)
			}
			seen[task.ID] = true
		}
	}
}

func TestGenerate_RestDaysSerializeAsEmptyLists(t *testing.T) {
	plan := mustGenerate(t, exampleRequest())

	for _, day := range plan.Days {
		if day.Tasks == nil {
			t.Errorf("%s: rest day tasks should be an empty list, not nil", day.DateISO)
		}
	}
}
