package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderDutySlipPDFProducesNonEmptyOutput(t *testing.T) {
	slip := &DutySlip{
		Recipient: Recipient{Name: "Alice", Email: "alice@x.com"},
		Rows:      []DutySlipRow{{Room: "R1", Date: "01-01-2025", Period: "FN"}},
	}
	pdf, err := RenderDutySlipPDF(slip)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestRenderRoomSlipPDFProducesNonEmptyOutput(t *testing.T) {
	slip := &RoomSlip{
		Room: "R1",
		Rows: []RoomSlipRow{{CourseCode: "CS101", CourseName: "Intro", Slot: "01-01-2025|09:00|11:00", Seats: 30, Remarks: "FULL"}},
	}
	pdf, err := RenderRoomSlipPDF(slip)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}
