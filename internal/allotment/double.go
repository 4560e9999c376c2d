package allotment

// PackDouble splits each room into LEFT and RIGHT halves of
// floor(capacity/2) seats each and walks two independent cursors — one per
// half — across the room list, letting up to two courses share a room in
// the same slot. After each course it runs a pair-rebalance pass that pulls
// seats backward into the last shared room to tighten fragmentation, and
// after the whole slot it runs a tail-cleanup pass that merges any trailing
// single-half "tongue" left by an uneven number of half-placements.
func PackDouble(rooms []*Room, batches []*SlotBatch) []Diagnostic {
	var diagnostics []Diagnostic

	for _, batch := range batches {
		pointer := [2]int{0, 0}

		for _, course := range batch.Courses {
			placed := 0
			active := activeCursor(pointer)
			failed := false

			for placed < course.Strength {
				if pointer[0] == len(rooms)-1 && pointer[1] == len(rooms)-1 {
					diagnostics = append(diagnostics, Diagnostic{
						Course:  course.Code,
						Slot:    batch.Slot,
						Message: "no more half-rooms remaining for this time slot",
					})
					failed = true
					break
				}
				if pointer[active] == len(rooms)-1 {
					active = activeCursor(pointer)
				}

				room := rooms[pointer[active]]
				seats := min(room.HalfCapacity(), course.Strength-placed)
				placed += seats

				remark := Left
				if active == 1 {
					remark = Right
				}
				room.Allotments = append(room.Allotments, &Allotment{
					Course:  course,
					Slot:    batch.Slot,
					Seats:   seats,
					Remarks: remark,
				})

				pointer[active]++
			}

			if !failed {
				rebalancePair(rooms, &pointer, batch.Slot)
			}
		}

		cleanupTail(rooms, &pointer, batch.Slot)
	}

	return diagnostics
}

// activeCursor picks the cursor with the smaller index, preferring LEFT (0)
// on a tie, which biases courses toward starting on the LEFT half.
func activeCursor(pointer [2]int) int {
	if pointer[0] <= pointer[1] {
		return 0
	}
	return 1
}

// rebalancePair tries to push seats backward into the last room shared by
// the course just placed and its partner course in the same slot,
// coalescing the common degenerate case where a large course ends with a
// tiny fragment while the room behind it still has room for it.
func rebalancePair(rooms []*Room, pointer *[2]int, slot TimeSlot) {
	if len(rooms) == 0 {
		return
	}

	smaller := 0
	if pointer[0] >= pointer[1] {
		smaller = 1
	}

	var former, later *Room
	laterIdx := 1
	if pointer[0] == pointer[1] {
		if pointer[0] < 2 {
			return
		}
		former = rooms[pointer[0]-2]
		later = rooms[pointer[1]-1]
	} else {
		if pointer[smaller] < 1 || pointer[1-smaller] < 1 {
			return
		}
		former = rooms[pointer[smaller]-1]
		later = rooms[pointer[1-smaller]-1]
		laterIdx = 1 - smaller
	}

	if len(former.Allotments) < 2 || pointer[smaller] == len(rooms)-1 {
		return
	}

	n := len(former.Allotments)
	a1, a2 := former.Allotments[n-2], former.Allotments[n-1]
	if a1.Slot != slot || a2.Slot != slot {
		return
	}
	if len(later.Allotments) == 0 {
		return
	}

	free := former.Capacity - a1.Seats - a2.Seats

	switch {
	case a1.Seats < a2.Seats:
		pullIntoFragment(a2, later, free, pointer, laterIdx)
	case a2.Seats < a1.Seats:
		pullIntoFragment(a1, later, free, pointer, laterIdx)
	}
}

// pullIntoFragment grows grown by pulling seats from later's most recent
// allotment, but only when that allotment belongs to the same course. When
// the tail allotment is fully consumed, later's half-room is vacated, so the
// cursor that advanced past it is decremented for reuse by the next course.
func pullIntoFragment(grown *Allotment, later *Room, free int, pointer *[2]int, laterIdx int) {
	tail := later.Allotments[len(later.Allotments)-1]
	if tail.Course.Code != grown.Course.Code {
		return
	}

	if tail.Seats > free {
		grown.Seats += free
		tail.Seats -= free
		return
	}

	grown.Seats += tail.Seats
	later.Allotments = later.Allotments[:len(later.Allotments)-1]
	pointer[laterIdx]--
}

// cleanupTail handles the end-of-slot case where the two cursors finished
// at different indices, leaving a trailing single-half fragment of one
// course on the ahead cursor's side. It gathers those trailing fragments,
// sums their seats, and re-places the total into the behind cursor's rooms
// as whole-room FULL allotments.
func cleanupTail(rooms []*Room, pointer *[2]int, slot TimeSlot) {
	if pointer[0] == pointer[1] {
		return
	}

	ahead := 0
	if pointer[0] < pointer[1] {
		ahead = 1
	}
	if pointer[ahead] < 1 || pointer[ahead] > len(rooms) {
		return
	}

	lastAllotments := rooms[pointer[ahead]-1].Allotments
	if len(lastAllotments) == 0 {
		return
	}
	course := lastAllotments[len(lastAllotments)-1].Course

	lo, hi := pointer[0], pointer[1]
	if lo > hi {
		lo, hi = hi, lo
	}

	remainingTotal := 0
	for i := lo; i < hi; i++ {
		n := len(rooms[i].Allotments)
		if n == 0 {
			continue
		}
		remainingTotal += rooms[i].Allotments[n-1].Seats
		rooms[i].Allotments = rooms[i].Allotments[:n-1]
	}

	behind := ahead ^ 1
	placed := 0
	for placed < remainingTotal {
		if pointer[behind] >= len(rooms) {
			break
		}
		room := rooms[pointer[behind]]
		seats := min(room.Capacity, remainingTotal-placed)
		placed += seats
		room.Allotments = append(room.Allotments, &Allotment{
			Course:  course,
			Slot:    slot,
			Seats:   seats,
			Remarks: Full,
		})
		pointer[behind]++
	}
}
