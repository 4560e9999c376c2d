package duty

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRoomCaptainSlipsGroupsByRecipient(t *testing.T) {
	alice := &StaffMember{ID: "A1", Name: "Alice", Email: "alice@x.com"}
	staff := []*StaffMember{alice}
	d, _ := time.Parse("2006-01-02", "2025-01-01")
	rows := []*DutyRow{
		{Room: "R1", Date: d, Period: "FN", RoomCaptains: []string{"A1 - Alice"}},
		{Room: "R2", Date: d, Period: "AN", RoomCaptains: []string{"A1 - Alice"}},
	}

	slips := BuildRoomCaptainSlips(rows, staff)
	require.Len(t, slips, 1)
	assert.Equal(t, "Alice", slips[0].Recipient.Name)
	assert.Equal(t, "alice@x.com", slips[0].Recipient.Email)
	assert.Len(t, slips[0].Rows, 2)
}

func TestBuildRoomCaptainSlipsFallsBackToDisplayNameWhenStaffUnknown(t *testing.T) {
	d, _ := time.Parse("2006-01-02", "2025-01-01")
	rows := []*DutyRow{{Room: "R1", Date: d, Period: "FN", RoomCaptains: []string{"Z9 - Ghost"}}}

	slips := BuildRoomCaptainSlips(rows, nil)
	require.Len(t, slips, 1)
	assert.Equal(t, "Z9 - Ghost", slips[0].Recipient.Name)
	assert.Empty(t, slips[0].Recipient.Email)
}
