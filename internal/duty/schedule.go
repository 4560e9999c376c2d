package duty

import "sort"

// PrepareSchedule sorts rows by (Room, Date, Period) — stable, so rows that
// already tie on all three keep their relative input order — then drops
// exact full-row duplicates, mirroring the source's sort-then-drop_duplicates
// pipeline.
func PrepareSchedule(rows []*DutyRow) []*DutyRow {
	sorted := make([]*DutyRow, len(rows))
	copy(sorted, rows)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Room != b.Room {
			return a.Room < b.Room
		}
		if !sameDate(a.Date, b.Date) {
			return a.Date.Before(b.Date)
		}
		return a.Period < b.Period
	})

	seen := make(map[string]bool, len(sorted))
	result := make([]*DutyRow, 0, len(sorted))
	for _, r := range sorted {
		key := r.Room + "|" + dateKey(r.Date) + "|" + r.Start + "|" + r.End + "|" + r.Period + "|" + r.Floor
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, r)
	}
	return result
}

// BranchTotals counts captains per branch once per run (design note: must
// not be re-derived per row), scoped to the given role so room-captain and
// group-captain fairness caps are computed against their own populations.
func BranchTotals(staff []*StaffMember, role Role) map[string]int {
	totals := make(map[string]int)
	for _, s := range staff {
		if s.Role == role {
			totals[s.Branch]++
		}
	}
	return totals
}

// GroupByFloor returns the distinct floor values of rows in first-seen
// order. It does not partition the rows themselves; callers walk rows once
// per floor, which keeps the relative order of rows within each floor.
func GroupByFloor(rows []*DutyRow) []string {
	var floors []string
	seen := make(map[string]bool)
	for _, r := range rows {
		if !seen[r.Floor] {
			seen[r.Floor] = true
			floors = append(floors, r.Floor)
		}
	}
	return floors
}
