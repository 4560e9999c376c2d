package allotment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRoomSlipsSkipsEmptyRoomsAndSortsRows(t *testing.T) {
	csLate := &Course{Code: "CS201", Name: "Algorithms", Strength: 10}
	csEarly := &Course{Code: "CS101", Name: "Intro", Strength: 10}
	rooms := []*Room{
		{Number: "R1", Capacity: 60, Allotments: []*Allotment{
			{Course: csLate, Slot: TimeSlot{Date: "01-01-2025", Start: "09:00", End: "11:00"}, Seats: 10, Remarks: Full},
			{Course: csEarly, Slot: TimeSlot{Date: "01-01-2025", Start: "09:00", End: "11:00"}, Seats: 10, Remarks: Full},
		}},
		{Number: "R2", Capacity: 60},
	}

	slips := BuildRoomSlips(rooms)
	require.Len(t, slips, 1)
	assert.Equal(t, "R1", slips[0].Room)
	require.Len(t, slips[0].Rows, 2)
	assert.Equal(t, "CS101", slips[0].Rows[0].CourseCode)
	assert.Equal(t, "CS201", slips[0].Rows[1].CourseCode)
}
