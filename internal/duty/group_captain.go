package duty

// AssignGroupCaptains runs the per-floor greedy group-captain assignment.
// Unlike AssignRoomCaptains it assigns exactly one captain per row (no
// double-staffed-room exception) and exits on the first successful match.
func AssignGroupCaptains(rows []*DutyRow, captains []*StaffMember, branchTotals map[string]int) []Diagnostic {
	duties := make(map[string][]dutyEntry, len(captains))
	branchDutyCount := make(map[string]int)
	var diagnostics []Diagnostic

	for _, floor := range GroupByFloor(rows) {
		for _, row := range rows {
			if row.Floor != floor {
				continue
			}
			rowDateKey := dateKey(row.Date)
			assignedAny := false

			for _, captain := range captains {
				if captain.EndDate != nil && sameDate(*captain.EndDate, row.Date) {
					continue
				}
				if len(duties[captain.ID]) >= 10 {
					continue
				}
				if hasConflictingPeriod(duties[captain.ID], rowDateKey, row.Period) {
					continue
				}

				branchKey := FormatBranchKey(row.Date, captain.Branch)
				if branchDutyCount[branchKey] >= branchTotals[captain.Branch]/2 {
					continue
				}

				row.GroupCaptain = captain.DisplayName()
				duties[captain.ID] = append(duties[captain.ID], dutyEntry{date: rowDateKey, period: row.Period})
				branchDutyCount[branchKey]++
				assignedAny = true
				break
			}

			if !assignedAny {
				diagnostics = append(diagnostics, Diagnostic{
					Room: row.Room, Date: rowDateKey, Period: row.Period,
					Message: "group captain",
				})
			}
		}
	}

	return diagnostics
}
