package duty

import "examhall/internal/report"

// BuildRoomCaptainSlips groups duty rows by each named room captain.
func BuildRoomCaptainSlips(rows []*DutyRow, staff []*StaffMember) []*report.DutySlip {
	return buildSlips(rows, staff, func(r *DutyRow) []string { return r.RoomCaptains })
}

// BuildGroupCaptainSlips groups duty rows by each named group captain.
func BuildGroupCaptainSlips(rows []*DutyRow, staff []*StaffMember) []*report.DutySlip {
	return buildSlips(rows, staff, func(r *DutyRow) []string {
		if r.GroupCaptain == "" {
			return nil
		}
		return []string{r.GroupCaptain}
	})
}

func buildSlips(rows []*DutyRow, staff []*StaffMember, names func(*DutyRow) []string) []*report.DutySlip {
	byDisplayName := make(map[string]*StaffMember, len(staff))
	for _, s := range staff {
		byDisplayName[s.DisplayName()] = s
	}

	order := make([]string, 0)
	slips := make(map[string]*report.DutySlip)
	for _, row := range rows {
		for _, name := range names(row) {
			if name == "" {
				continue
			}
			slip, ok := slips[name]
			if !ok {
				recipient := report.Recipient{Name: name}
				if s, found := byDisplayName[name]; found {
					recipient.Name = s.Name
					recipient.Email = s.Email
				}
				slip = &report.DutySlip{Recipient: recipient}
				slips[name] = slip
				order = append(order, name)
			}
			slip.Rows = append(slip.Rows, report.DutySlipRow{
				Room:   row.Room,
				Date:   row.Date.Format("02-01-2006"),
				Period: row.Period,
			})
		}
	}

	out := make([]*report.DutySlip, 0, len(order))
	for _, name := range order {
		out = append(out, slips[name])
	}
	return out
}
