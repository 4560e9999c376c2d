package allotment

// PackSingle fills rooms sequentially, in the input order of rooms, with
// FULL allotments. The room cursor advances only once a room is full, so a
// room left partly filled by one course also takes seats of the next course
// in the same slot. Within a slot, courses must already be sorted
// largest-strength-first (see BuildBatches / SortCoursesDescending); the
// packer itself never reorders rooms or courses.
func PackSingle(rooms []*Room, batches []*SlotBatch) []Diagnostic {
	var diagnostics []Diagnostic

	for _, batch := range batches {
		remaining := make(map[string]int, len(rooms))
		for _, r := range rooms {
			remaining[r.Number] = r.Capacity
		}
		roomPointer := 0

		for _, course := range batch.Courses {
			placed := 0

			for placed < course.Strength {
				if roomPointer == len(rooms) {
					diagnostics = append(diagnostics, Diagnostic{
						Course:  course.Code,
						Slot:    batch.Slot,
						Message: "no more rooms remaining for this time slot",
					})
					break
				}

				room := rooms[roomPointer]
				seats := min(remaining[room.Number], course.Strength-placed)

				placed += seats
				remaining[room.Number] -= seats

				room.Allotments = append(room.Allotments, &Allotment{
					Course:  course,
					Slot:    batch.Slot,
					Seats:   seats,
					Remarks: Full,
				})

				if remaining[room.Number] == 0 {
					roomPointer++
				}
			}
		}
	}

	return diagnostics
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
