package allotment

// Coalesce collapses duplicate allotments for the same course within a
// single room into one entry, summing seats and setting remarks to FULL.
// "Same course" is structural equality on course code (spec §9 note on
// object identity), not pointer identity, so two Course values built from
// separate parses of the same row still coalesce correctly.
//
// Implemented as partition-then-rewrite rather than iterate-and-remove, so
// the room's allotment slice is never mutated while being walked.
func Coalesce(rooms []*Room) {
	for _, room := range rooms {
		room.Allotments = coalesceRoom(room.Allotments)
	}
}

func coalesceRoom(allotments []*Allotment) []*Allotment {
	order := make([]string, 0, len(allotments))
	groups := make(map[string][]*Allotment, len(allotments))

	for _, a := range allotments {
		key := a.Course.Code
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], a)
	}

	result := make([]*Allotment, 0, len(order))
	for _, key := range order {
		group := groups[key]
		head := group[0]
		if len(group) > 1 {
			total := 0
			for _, a := range group {
				total += a.Seats
			}
			head.Seats = total
			head.Remarks = Full
		}
		result = append(result, head)
	}
	return result
}
