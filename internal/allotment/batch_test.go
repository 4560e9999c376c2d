package allotment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildBatchesPreservesFirstSeenSlotOrder(t *testing.T) {
	s1 := slot("02-01-2025")
	s2 := slot("01-01-2025")
	rows := []CourseRow{
		{Code: "A", Strength: 10, Slot: s1},
		{Code: "B", Strength: 10, Slot: s2},
		{Code: "C", Strength: 5, Slot: s1},
	}

	batches := BuildBatches(rows)
	require.Len(t, batches, 2)
	assert.Equal(t, s1, batches[0].Slot)
	assert.Equal(t, s2, batches[1].Slot)
	require.Len(t, batches[0].Courses, 2)
}

func TestReadRoomsParsesLineOrientedFormat(t *testing.T) {
	in := "F101,60\nF102,40\n"
	rooms, err := ReadRooms(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "F101", rooms[0].Number)
	assert.Equal(t, 60, rooms[0].Capacity)
}

func TestReadRoomsRejectsBadCapacity(t *testing.T) {
	_, err := ReadRooms(strings.NewReader("F101,abc\n"))
	require.Error(t, err)
	var fmtErr *InputFormatError
	require.ErrorAs(t, err, &fmtErr)
}

func TestReadScheduleValidatesDateFormat(t *testing.T) {
	in := "CS101,Intro,60,29-08-2025,15:00,18:00\n"
	rows, err := ReadSchedule(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "29-08-2025", rows[0].Slot.Date)
}

func TestReadScheduleRejectsBadDate(t *testing.T) {
	in := "CS101,Intro,60,2025-08-29,15:00,18:00\n"
	_, err := ReadSchedule(strings.NewReader(in))
	require.Error(t, err)
	var fmtErr *InputFormatError
	require.ErrorAs(t, err, &fmtErr)
	assert.Equal(t, "CS101", fmtErr.Course)
}

func TestWriteAllotmentCSVFormatsTimeAsPipeJoined(t *testing.T) {
	s := slot("01-01-2025")
	a := &Course{Code: "A", Name: "Algorithms", Strength: 30}
	room := &Room{Number: "R1", Capacity: 60, Allotments: []*Allotment{
		{Course: a, Slot: s, Seats: 30, Remarks: Full},
	}}

	var buf strings.Builder
	require.NoError(t, WriteAllotmentCSV(&buf, []*Room{room}))

	out := buf.String()
	assert.Contains(t, out, "Room,Course Code,Course Name,Room Capacity,Student Count,Course Strength,Time,Remarks")
	assert.Contains(t, out, "R1,A,Algorithms,60,30,30,01-01-2025|09:00|12:00,FULL")
}
