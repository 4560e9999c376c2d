package duty

import "fmt"

// Diagnostic is a non-fatal "no captain available" note for one row (spec
// §7: the field is left empty and the run continues).
type Diagnostic struct {
	Room    string
	Date    string
	Period  string
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: no captain available for %s %s room %s", d.Message, d.Date, d.Period, d.Room)
}

type dutyEntry struct {
	date   string
	period string
}

// AssignRoomCaptains runs the per-row greedy room-captain assignment over
// rows already prepared by PrepareSchedule. doubleStaffed names rooms
// (spec §9 note 4: the source hardcodes F102/F105) that demand two
// invigilators rather than one.
func AssignRoomCaptains(rows []*DutyRow, captains []*StaffMember, branchTotals map[string]int, doubleStaffed map[string]bool) []Diagnostic {
	duties := make(map[string][]dutyEntry, len(captains))
	branchDutyCount := make(map[string]int)
	var diagnostics []Diagnostic

	for _, row := range rows {
		rowDateKey := dateKey(row.Date)
		var assigned []string

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

			assigned = append(assigned, captain.DisplayName())
			duties[captain.ID] = append(duties[captain.ID], dutyEntry{date: rowDateKey, period: row.Period})
			branchDutyCount[branchKey]++

			if doubleStaffed[row.Room] && len(assigned) < 2 {
				continue
			}
			break
		}

		row.RoomCaptains = assigned
		if len(assigned) == 0 {
			diagnostics = append(diagnostics, Diagnostic{
				Room: row.Room, Date: rowDateKey, Period: row.Period,
				Message: "room captain",
			})
		}
	}

	return diagnostics
}

func hasConflictingPeriod(duties []dutyEntry, rowDateKey, period string) bool {
	for _, d := range duties {
		if d.date == rowDateKey && d.period != period {
			return true
		}
	}
	return false
}
