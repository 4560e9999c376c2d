package allotment

import (
	"sort"

	"examhall/internal/report"
)

// BuildRoomSlips groups a completed allotment run's rooms into one slip per
// room, rows ordered by slot then course code for stable rendering.
func BuildRoomSlips(rooms []*Room) []*report.RoomSlip {
	slips := make([]*report.RoomSlip, 0, len(rooms))
	for _, room := range rooms {
		if len(room.Allotments) == 0 {
			continue
		}
		slip := &report.RoomSlip{Room: room.Number}
		for _, a := range room.Allotments {
			slip.Rows = append(slip.Rows, report.RoomSlipRow{
				CourseCode: a.Course.Code,
				CourseName: a.Course.Name,
				Slot:       a.Slot.Key(),
				Seats:      a.Seats,
				Remarks:    string(a.Remarks),
			})
		}
		sort.SliceStable(slip.Rows, func(i, j int) bool {
			if slip.Rows[i].Slot != slip.Rows[j].Slot {
				return slip.Rows[i].Slot < slip.Rows[j].Slot
			}
			return slip.Rows[i].CourseCode < slip.Rows[j].CourseCode
		})
		slips = append(slips, slip)
	}
	return slips
}
