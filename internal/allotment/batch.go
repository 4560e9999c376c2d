package allotment

import "sort"

// BuildBatches groups courses by time slot, preserving the first-seen order
// of slots (the source relies on dict insertion order; rows is expected in
// file order). Zero-strength courses are dropped before packing.
func BuildBatches(rows []CourseRow) []*SlotBatch {
	index := make(map[TimeSlot]int)
	var batches []*SlotBatch

	for _, row := range rows {
		if row.Strength <= 0 {
			continue
		}
		course := &Course{Code: row.Code, Name: row.Name, Strength: row.Strength}
		if i, ok := index[row.Slot]; ok {
			batches[i].Courses = append(batches[i].Courses, course)
			continue
		}
		index[row.Slot] = len(batches)
		batches = append(batches, &SlotBatch{Slot: row.Slot, Courses: []*Course{course}})
	}

	for _, b := range batches {
		SortCoursesDescending(b.Courses)
	}
	return batches
}

// SortCoursesDescending orders courses largest-strength-first, stable on
// ties so equal-strength courses retain their input order.
func SortCoursesDescending(courses []*Course) {
	sort.SliceStable(courses, func(i, j int) bool {
		return courses[i].Strength > courses[j].Strength
	})
}

// SortRoomsDescending orders rooms largest-capacity-first, stable on ties.
// The packer never reorders rooms itself (spec §9 note 5) — callers who
// want largest-first throughput call this before packing.
func SortRoomsDescending(rooms []*Room) {
	sort.SliceStable(rooms, func(i, j int) bool {
		return rooms[i].Capacity > rooms[j].Capacity
	})
}
