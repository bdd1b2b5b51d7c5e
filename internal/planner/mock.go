package planner

// selectMockDays picks the day hosting each week's full mock exam: the last
// day with nonzero availability in that week. Weeks with no available day get
// no mock.
func selectMockDays(grid []dayBlueprint) map[string]bool {
	latestActiveDayPerWeek := make(map[int]string)
	for _, bp := range grid {
		if bp.minutes > 0 {
			latestActiveDayPerWeek[bp.weekIndex] = bp.dateISO
		}
	}

	mockDays := make(map[string]bool, len(latestActiveDayPerWeek))
	for _, iso := range latestActiveDayPerWeek {
		mockDays[iso] = true
	}
	return mockDays
}
