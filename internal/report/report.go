// Package report renders per-room seating summaries and per-captain duty
// slips into PDF, and delivers duty slips by email. It is a thin rendering
// and delivery leaf with no allocation logic of its own, grounded on
// original_source/algorithms/InvigilationReports/main.py's
// get_room_captains_report/get_group_captains_report shape: one page per
// recipient, listing the rows naming them. It has no dependency on the
// allotment/duty engines — they build its RoomSlip/DutySlip values from
// their own domain types and hand them in here, so both engines can call
// into this package without an import cycle.
package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// RoomSlip is one room's seating summary for the allotment run: which
// courses sit in it, for which slot, and how many seats each used.
type RoomSlip struct {
	Room string
	Rows []RoomSlipRow
}

type RoomSlipRow struct {
	CourseCode string
	CourseName string
	Slot       string
	Seats      int
	Remarks    string
}

// DutySlip is one staff member's duty slip: every (room, date, period) row
// naming them as room captain or group captain.
type DutySlip struct {
	Recipient Recipient
	Rows      []DutySlipRow
}

// Recipient names who a slip or notice is addressed to. Empty Email means
// the slip is built but never mailed (spec §7's "Empty Email" case).
type Recipient struct {
	Name  string
	Email string
}

type DutySlipRow struct {
	Room   string
	Date   string
	Period string
}

// RenderDutySlipPDF renders a duty slip into a single-page PDF, one row per
// assigned duty.
func RenderDutySlipPDF(slip *DutySlip) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Duty Slip", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Recipient: %s", slip.Recipient.Name), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 11)
	widths := []float64{60, 60, 60}
	headers := []string{"Room", "Date", "Period"}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 11)
	for _, row := range slip.Rows {
		pdf.CellFormat(widths[0], 8, row.Room, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 8, row.Date, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 8, row.Period, "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderRoomSlipPDF renders a room's seating summary into a single-page PDF.
func RenderRoomSlipPDF(slip *RoomSlip) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("Room %s", slip.Room), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 11)
	widths := []float64{30, 60, 70, 60, 20}
	headers := []string{"Course", "Name", "Slot", "Remarks", "Seats"}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 11)
	for _, row := range slip.Rows {
		pdf.CellFormat(widths[0], 8, row.CourseCode, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 8, row.CourseName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 8, row.Slot, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 8, row.Remarks, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[4], 8, fmt.Sprintf("%d", row.Seats), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
