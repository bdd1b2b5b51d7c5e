package models

// StudyDay holds the tasks allocated to one calendar day. An empty task list
// is a rest day.
type StudyDay struct {
	DateISO string      `json:"date_iso"` // midnight-UTC timestamp
	Tasks   []StudyTask `json:"tasks"`
}

// StudyPlan is the full generated plan for one user, covering every calendar
// day from start to exam date inclusive.
type StudyPlan struct {
	UserID   string `json:"user_id"`
	StartISO string `json:"start_iso"`
	// Weeks is display metadata clamped to [1, 12]; Days always holds the
	// full unclamped range.
	Weeks      int        `json:"weeks"`
	GoalBand   float64    `json:"goal_band"`
	Weaknesses []string   `json:"weaknesses,omitempty"`
	Days       []StudyDay `json:"days"`
}

// TotalMinutes sums the estimated minutes of every task in the plan.
func (p StudyPlan) TotalMinutes() int {
	total := 0
	for _, d := range p.Days {
		for _, t := range d.Tasks {
			total += t.EstMinutes
		}
	}
	return total
}

// ActiveDays counts days with at least one task.
func (p StudyPlan) ActiveDays() int {
	n := 0
	for _, d := range p.Days {
		if len(d.Tasks) > 0 {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the plan.
func (p StudyPlan) Clone() StudyPlan {
	out := p
	if p.Weaknesses != nil {
		out.Weaknesses = append([]string(nil), p.Weaknesses...)
	}
	out.Days = make([]StudyDay, len(p.Days))
	for i, d := range p.Days {
		day := d
		// make, not append: rest days keep an empty (non-nil) task list so
		// clones stay deep-equal to their source.
		day.Tasks = make([]StudyTask, len(d.Tasks))
		copy(day.Tasks, d.Tasks)
		out.Days[i] = day
	}
	return out
}
