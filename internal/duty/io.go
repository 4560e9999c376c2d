package duty

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// MissingSheetError reports that a required workbook sheet is absent.
type MissingSheetError struct {
	Sheet string
}

func (e *MissingSheetError) Error() string {
	return fmt.Sprintf("sheet %q not found in workbook", e.Sheet)
}

const roomDateLayout = "02-01-06"

// Period labels a slot AN for a 09:30 start and FN for a 14:00 start, else
// empty. Spec §9 note 1: these labels are inverted from their conventional
// meaning (AN usually reads "afternoon", FN "forenoon") but the inversion
// is preserved as-is, flagged for domain review rather than silently fixed.
func Period(start string) string {
	switch start {
	case "09:30":
		return "AN"
	case "14:00":
		return "FN"
	default:
		return ""
	}
}

// Floor derives a room's floor from its trailing digits: if the last three
// characters of the room name are digits, the floor digit is the
// third-from-last character; '1' maps to Ground Floor, anything else to
// First Floor. Rooms without a three-digit numeric tail are "Reserved".
func Floor(room string) string {
	if len(room) < 3 {
		return "Reserved"
	}
	tail := room[len(room)-3:]
	for _, r := range tail {
		if r < '0' || r > '9' {
			return "Reserved"
		}
	}
	if tail[0] == '1' {
		return "Ground Floor"
	}
	return "First Floor"
}

// LoadRoomSheet reads the ROOM sheet: columns Room and Time (pipe-joined
// date|start|end), deriving Period and Floor for each row.
func LoadRoomSheet(f *excelize.File) ([]*DutyRow, error) {
	rowsData, err := f.GetRows("ROOM")
	if err != nil {
		return nil, &MissingSheetError{Sheet: "ROOM"}
	}
	if len(rowsData) == 0 {
		return nil, &MissingSheetError{Sheet: "ROOM"}
	}

	header := rowsData[0]
	roomIdx, timeIdx := indexOf(header, "Room"), indexOf(header, "Time")
	if roomIdx < 0 || timeIdx < 0 {
		return nil, fmt.Errorf("ROOM sheet missing Room/Time column")
	}

	var rows []*DutyRow
	for _, record := range rowsData[1:] {
		if len(record) <= timeIdx || len(record) <= roomIdx {
			continue
		}
		parts := strings.Split(record[timeIdx], "|")
		if len(parts) != 3 {
			return nil, fmt.Errorf("malformed Time column %q, expected date|start|end", record[timeIdx])
		}
		date, err := time.Parse(roomDateLayout, strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("bad date %q in ROOM sheet: %w", parts[0], err)
		}
		room := strings.TrimSpace(record[roomIdx])
		start := strings.TrimSpace(parts[1])
		rows = append(rows, &DutyRow{
			Room:   room,
			Date:   date,
			Start:  start,
			End:    strings.TrimSpace(parts[2]),
			Period: Period(start),
			Floor:  Floor(room),
		})
	}
	return rows, nil
}

// LoadStaffSheet reads the headerless STAFF sheet: serial, id, name,
// branch, role, phone, email.
func LoadStaffSheet(f *excelize.File) ([]*StaffMember, error) {
	rowsData, err := f.GetRows("STAFF")
	if err != nil {
		return nil, &MissingSheetError{Sheet: "STAFF"}
	}

	var staff []*StaffMember
	for _, record := range rowsData {
		if len(record) < 7 {
			continue
		}
		staff = append(staff, &StaffMember{
			ID:     strings.TrimSpace(record[1]),
			Name:   strings.TrimSpace(record[2]),
			Branch: strings.TrimSpace(record[3]),
			Role:   Role(strings.TrimSpace(record[4])),
			Phone:  strings.TrimSpace(record[5]),
			Email:  strings.TrimSpace(record[6]),
		})
	}
	return staff, nil
}

// LoadLeave reads a leave workbook's first sheet (columns including ID,
// Name, end_date) and returns end dates keyed by "ID|Name", left-joined
// onto staff by ApplyLeave. A row whose end_date fails to parse is skipped
// (mirrors the source's errors="coerce", which turns an unparsable date
// into "no leave" rather than aborting the run).
func LoadLeave(f *excelize.File) (map[string]time.Time, error) {
	sheet := f.GetSheetList()
	if len(sheet) == 0 {
		return nil, &MissingSheetError{Sheet: "leave"}
	}
	rowsData, err := f.GetRows(sheet[0])
	if err != nil || len(rowsData) == 0 {
		return nil, &MissingSheetError{Sheet: sheet[0]}
	}

	header := rowsData[0]
	idIdx, nameIdx, endIdx := indexOf(header, "ID"), indexOf(header, "Name"), indexOf(header, "end_date")
	if idIdx < 0 || nameIdx < 0 || endIdx < 0 {
		return nil, fmt.Errorf("leave sheet missing ID/Name/end_date column")
	}

	leave := make(map[string]time.Time)
	for _, record := range rowsData[1:] {
		if len(record) <= endIdx {
			continue
		}
		end, err := time.Parse(roomDateLayout, strings.TrimSpace(record[endIdx]))
		if err != nil {
			continue
		}
		key := strings.TrimSpace(record[idIdx]) + "|" + strings.TrimSpace(record[nameIdx])
		leave[key] = end
	}
	return leave, nil
}

// ApplyLeave left-joins leave end dates onto staff by ID+Name.
func ApplyLeave(staff []*StaffMember, leave map[string]time.Time) {
	for _, s := range staff {
		if end, ok := leave[s.ID+"|"+s.Name]; ok {
			end := end
			s.EndDate = &end
		}
	}
}

func indexOf(header []string, name string) int {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}

// WriteFinalSheet writes the enriched schedule into a FINAL sheet, dates
// re-formatted to DD-MM-YYYY and each row's room captains (two for a
// double-staffed room) comma-joined into the Room Captain column.
func WriteFinalSheet(f *excelize.File, rows []*DutyRow) error {
	const sheet = "FINAL"
	f.NewSheet(sheet)

	header := []string{"Room", "Date", "Start Time", "End Time", "Period", "Floor", "Room Captain", "Group Captain"}
	for col, h := range header {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for i, row := range rows {
		r := i + 2
		values := []any{
			row.Room,
			row.Date.Format("02-01-2006"),
			row.Start,
			row.End,
			row.Period,
			row.Floor,
			strings.Join(row.RoomCaptains, ", "),
			row.GroupCaptain,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, r)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	f.DeleteSheet("Sheet1")
	return nil
}

// FormatBranchKey renders a stable diagnostic/branch-count key.
func FormatBranchKey(date time.Time, branch string) string {
	return dateKey(date) + "|" + branch
}
