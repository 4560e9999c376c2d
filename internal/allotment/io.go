package allotment

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// CourseRow is one parsed line of the exam schedule input:
// course_code,course_name,strength,date,start_time,end_time.
type CourseRow struct {
	Code     string
	Name     string
	Strength int
	Slot     TimeSlot
}

// InputFormatError reports a malformed input row, naming the offending
// value and the expected format, per spec §7's InputFormat taxonomy entry.
type InputFormatError struct {
	Course string
	Detail string
}

func (e *InputFormatError) Error() string {
	return fmt.Sprintf("invalid input for course %s: %s (expected date DD-MM-YYYY, time HH:MM)", e.Course, e.Detail)
}

// ReadRooms parses the line-oriented rooms input: one "room_number,capacity"
// pair per line, no header.
func ReadRooms(r io.Reader) ([]*Room, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rooms []*Room
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) < 2 {
			return nil, &InputFormatError{Course: "", Detail: "room row needs room_number,capacity"}
		}
		capacity, convErr := strconv.Atoi(strings.TrimSpace(record[1]))
		if convErr != nil {
			return nil, &InputFormatError{Course: record[0], Detail: "capacity must be an integer"}
		}
		rooms = append(rooms, &Room{Number: strings.TrimSpace(record[0]), Capacity: capacity})
	}
	return rooms, nil
}

// ReadSchedule parses the exam schedule input:
// course_code,course_name,strength,date,start_time,end_time. Each row's
// date+time pair is validated by attempting to parse it; an invalid row
// aborts with an InputFormatError naming the offending course.
func ReadSchedule(r io.Reader) ([]CourseRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows []CourseRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) < 6 {
			return nil, &InputFormatError{Course: firstOr(record, "?"), Detail: "row needs code,name,strength,date,start,end"}
		}

		code := strings.TrimSpace(record[0])
		name := strings.TrimSpace(record[1])
		strength, convErr := strconv.Atoi(strings.TrimSpace(record[2]))
		if convErr != nil {
			return nil, &InputFormatError{Course: code, Detail: "strength must be an integer"}
		}
		slot := TimeSlot{
			Date:  strings.TrimSpace(record[3]),
			Start: strings.TrimSpace(record[4]),
			End:   strings.TrimSpace(record[5]),
		}
		if err := validateSlot(slot); err != nil {
			return nil, &InputFormatError{Course: code, Detail: err.Error()}
		}

		rows = append(rows, CourseRow{Code: code, Name: name, Strength: strength, Slot: slot})
	}
	return rows, nil
}

func firstOr(record []string, fallback string) string {
	if len(record) > 0 {
		return record[0]
	}
	return fallback
}

func validateSlot(slot TimeSlot) error {
	const layout = "02-01-2006 15:04"
	if _, err := time.Parse(layout, slot.Date+" "+slot.Start); err != nil {
		return fmt.Errorf("bad start time %q: %w", slot.Date+" "+slot.Start, err)
	}
	if _, err := time.Parse(layout, slot.Date+" "+slot.End); err != nil {
		return fmt.Errorf("bad end time %q: %w", slot.Date+" "+slot.End, err)
	}
	return nil
}

// WriteAllotmentCSV emits the room-allotment CSV: one row per (room,
// allotment) pair, after post-processing.
func WriteAllotmentCSV(w io.Writer, rooms []*Room) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := []string{"Room", "Course Code", "Course Name", "Room Capacity", "Student Count", "Course Strength", "Time", "Remarks"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, room := range rooms {
		for _, a := range room.Allotments {
			row := []string{
				room.Number,
				a.Course.Code,
				a.Course.Name,
				strconv.Itoa(room.Capacity),
				strconv.Itoa(a.Seats),
				strconv.Itoa(a.Course.Strength),
				a.Slot.Key(),
				string(a.Remarks),
			}
			if err := writer.Write(row); err != nil {
				return err
			}
		}
	}
	return writer.Error()
}
