// Package allotment implements the room-allotment engine: packing course
// strengths into rooms for each exam time slot, in single-course-per-room or
// two-courses-per-room (split seating) mode, followed by a post-pass that
// coalesces fragmented allotments of the same course in the same room.
package allotment

import "fmt"

// Remark identifies what portion of a room an Allotment occupies.
type Remark string

const (
	Full  Remark = "FULL"
	Left  Remark = "LEFT"
	Right Remark = "RIGHT"
)

// Room is an examination room with a fixed seating capacity. Allotments is
// appended to, in packing order, by the packer and the post-processor only;
// ordering is load-bearing for the double-mode rebalance step, which
// inspects the last two entries.
type Room struct {
	Number     string
	Capacity   int
	Allotments []*Allotment
}

func (r *Room) HalfCapacity() int {
	return r.Capacity / 2
}

func (r *Room) String() string {
	return fmt.Sprintf("%s - %d", r.Number, r.Capacity)
}

// Course is an exam course with an enrolled strength for one time slot.
// Courses are immutable after construction.
type Course struct {
	Code     string
	Name     string
	Strength int
}

func (c *Course) String() string {
	return fmt.Sprintf("%s - %d", c.Code, c.Strength)
}

// TimeSlot identifies one examination sitting. Equality is structural.
type TimeSlot struct {
	Date  string // DD-MM-YYYY
	Start string // HH:MM
	End   string // HH:MM
}

// Key renders the slot the way the source format pipe-joins it for the
// "Time" column of the allotment CSV and the duty workbook's ROOM sheet.
func (t TimeSlot) Key() string {
	return t.Date + "|" + t.Start + "|" + t.End
}

// Allotment records that a course was given seats in a room for a slot.
type Allotment struct {
	Course  *Course
	Slot    TimeSlot
	Seats   int
	Remarks Remark
}

// Diagnostic is a non-fatal allocation-time note: a course could not be
// fully seated because the rooms available for its slot ran out.
type Diagnostic struct {
	Course  string
	Slot    TimeSlot
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("could not fully allot %s for %s: %s", d.Course, d.Slot.Key(), d.Message)
}

// SlotBatch groups the courses sitting in one time slot, in the order the
// caller wants them packed (typically largest-strength-first, stable on
// ties — see SortCoursesDescending).
type SlotBatch struct {
	Slot    TimeSlot
	Courses []*Course
}
