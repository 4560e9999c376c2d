package duty

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildDutyWorkbook(t *testing.T) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", "ROOM")
	require.NoError(t, f.SetCellValue("ROOM", "A1", "Room"))
	require.NoError(t, f.SetCellValue("ROOM", "B1", "Time"))
	require.NoError(t, f.SetCellValue("ROOM", "A2", "F101"))
	require.NoError(t, f.SetCellValue("ROOM", "B2", "01-01-25|09:30|11:30"))
	require.NoError(t, f.SetCellValue("ROOM", "A3", "G001"))
	require.NoError(t, f.SetCellValue("ROOM", "B3", "01-01-25|14:00|16:00"))

	_, err := f.NewSheet("STAFF")
	require.NoError(t, err)
	staffRows := [][]any{
		{1, "A1", "Alice", "CS", "ROOM_CAPTAIN", "111", "alice@x.com"},
		{2, "G1", "Grace", "CS", "GROUP_CAPTAIN", "222", "grace@x.com"},
	}
	for i, row := range staffRows {
		for col, v := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+1)
			require.NoError(t, f.SetCellValue("STAFF", cell, v))
		}
	}
	return f
}

func TestLoadRoomSheetDerivesPeriodAndFloor(t *testing.T) {
	f := buildDutyWorkbook(t)
	rows, err := LoadRoomSheet(f)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "F101", rows[0].Room)
	assert.Equal(t, "AN", rows[0].Period)
	assert.Equal(t, "Ground Floor", rows[0].Floor)

	assert.Equal(t, "G001", rows[1].Room)
	assert.Equal(t, "FN", rows[1].Period)
}

func TestLoadStaffSheetIsHeaderless(t *testing.T) {
	f := buildDutyWorkbook(t)
	staff, err := LoadStaffSheet(f)
	require.NoError(t, err)
	require.Len(t, staff, 2)
	assert.Equal(t, "A1", staff[0].ID)
	assert.Equal(t, RoleRoomCaptain, staff[0].Role)
	assert.Equal(t, "G1", staff[1].ID)
	assert.Equal(t, RoleGroupCaptain, staff[1].Role)
}

func TestLoadRoomSheetMissingSheet(t *testing.T) {
	f := excelize.NewFile()
	_, err := LoadRoomSheet(f)
	require.Error(t, err)
	var missing *MissingSheetError
	require.ErrorAs(t, err, &missing)
}

func TestApplyLeaveJoinsByIDAndName(t *testing.T) {
	staff := []*StaffMember{{ID: "A1", Name: "Alice"}, {ID: "G1", Name: "Grace"}}
	leaveFile := excelize.NewFile()
	leaveFile.SetSheetName("Sheet1", "LEAVE")
	require.NoError(t, leaveFile.SetCellValue("LEAVE", "A1", "ID"))
	require.NoError(t, leaveFile.SetCellValue("LEAVE", "B1", "Name"))
	require.NoError(t, leaveFile.SetCellValue("LEAVE", "C1", "end_date"))
	require.NoError(t, leaveFile.SetCellValue("LEAVE", "A2", "A1"))
	require.NoError(t, leaveFile.SetCellValue("LEAVE", "B2", "Alice"))
	require.NoError(t, leaveFile.SetCellValue("LEAVE", "C2", "05-01-25"))

	leave, err := LoadLeave(leaveFile)
	require.NoError(t, err)

	ApplyLeave(staff, leave)
	require.NotNil(t, staff[0].EndDate)
	assert.Nil(t, staff[1].EndDate)
}

func TestWriteFinalSheetFormatsDateAndJoinsRoomCaptains(t *testing.T) {
	rows := []*DutyRow{
		{Room: "F102", Date: date("2025-01-01"), Start: "09:30", End: "11:30", Period: "AN", Floor: "First Floor",
			RoomCaptains: []string{"A1 - Alice", "B1 - Bob"}, GroupCaptain: "G1 - Grace"},
	}
	f := excelize.NewFile()
	require.NoError(t, WriteFinalSheet(f, rows))

	cell, err := f.GetCellValue("FINAL", "B2")
	require.NoError(t, err)
	assert.Equal(t, "01-01-2025", cell)

	captainsCell, err := f.GetCellValue("FINAL", "G2")
	require.NoError(t, err)
	assert.Equal(t, "A1 - Alice, B1 - Bob", captainsCell)
}
