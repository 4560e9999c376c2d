package duty

import (
	"bytes"
	"net/http"
	"os"
	"strings"

	"examhall/internal/config"
	"examhall/internal/report"
	"examhall/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Handler exposes the staff-duty-allotment engine over HTTP: upload a
// schedule/staff workbook and an optional leave workbook, receive the
// enriched FINAL sheet plus any no-captain-available diagnostics. On
// success it also builds and mails each captain's duty slip (spec.md §7's
// "Empty Email" case is handled by report.DeliverDutySlips, not here).
type Handler struct {
	runs  *store.RunRepository
	email *config.EmailService
	log   *zap.Logger
}

func NewHandler(runs *store.RunRepository, email *config.EmailService, log *zap.Logger) *Handler {
	return &Handler{runs: runs, email: email, log: log}
}

// Assign handles POST /api/duty/run. Expects multipart form field
// "workbook" (containing ROOM and STAFF sheets) and optional "leave".
func (h *Handler) Assign(c echo.Context) error {
	workbookFH, err := c.FormFile("workbook")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing workbook file"})
	}
	workbookFile, err := workbookFH.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "could not open workbook"})
	}
	defer workbookFile.Close()

	wb, err := excelize.OpenReader(workbookFile)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "not a valid workbook"})
	}

	rows, err := LoadRoomSheet(wb)
	if err != nil {
		return h.badInput(c, err)
	}
	staff, err := LoadStaffSheet(wb)
	if err != nil {
		return h.badInput(c, err)
	}

	if leaveFH, err := c.FormFile("leave"); err == nil {
		leaveFile, openErr := leaveFH.Open()
		if openErr != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "could not open leave workbook"})
		}
		defer leaveFile.Close()
		leaveWB, parseErr := excelize.OpenReader(leaveFile)
		if parseErr != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "not a valid leave workbook"})
		}
		leave, leaveErr := LoadLeave(leaveWB)
		if leaveErr != nil {
			return h.badInput(c, leaveErr)
		}
		ApplyLeave(staff, leave)
	}

	rows = PrepareSchedule(rows)

	doubleStaffed := parseDoubleStaffedRooms(os.Getenv("DOUBLE_STAFFED_ROOMS"))
	roomCaptains := filterByRole(staff, RoleRoomCaptain)
	groupCaptains := filterByRole(staff, RoleGroupCaptain)

	var diags []Diagnostic
	diags = append(diags, AssignRoomCaptains(rows, roomCaptains, BranchTotals(roomCaptains, RoleRoomCaptain), doubleStaffed)...)
	diags = append(diags, AssignGroupCaptains(rows, groupCaptains, BranchTotals(groupCaptains, RoleGroupCaptain))...)

	for _, d := range diags {
		h.log.Warn("duty diagnostic", zap.String("room", d.Room), zap.String("date", d.Date), zap.String("period", d.Period), zap.String("message", d.Message))
	}

	var slips []*report.DutySlip
	slips = append(slips, BuildRoomCaptainSlips(rows, roomCaptains)...)
	slips = append(slips, BuildGroupCaptainSlips(rows, groupCaptains)...)
	_, skipped := report.DeliverDutySlips(h.email, slips)
	diagStrings := diagnosticStrings(diags)
	for _, name := range skipped {
		msg := "Empty Email: " + name + " has no email on file, duty slip not sent"
		diagStrings = append(diagStrings, msg)
		h.log.Warn("duty diagnostic", zap.String("message", msg))
	}

	out := excelize.NewFile()
	if err := WriteFinalSheet(out, rows); err != nil {
		h.log.Error("failed to render FINAL sheet", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to render roster"})
	}

	var buf bytes.Buffer
	if err := out.Write(&buf); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to encode roster"})
	}

	run := &store.Run{
		Kind:        "staff_duty",
		Diagnostics: diagStrings,
	}
	if err := h.runs.Save(c.Request().Context(), run); err != nil {
		h.log.Error("failed to persist run", zap.Error(err))
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="final-roster.xlsx"`)
	for _, d := range diagStrings {
		c.Response().Header().Add("X-Diagnostic", d)
	}
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func (h *Handler) badInput(c echo.Context, err error) error {
	h.log.Info("rejecting malformed duty input", zap.Error(err))
	return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
}

func filterByRole(staff []*StaffMember, role Role) []*StaffMember {
	var out []*StaffMember
	for _, s := range staff {
		if s.Role == role {
			out = append(out, s)
		}
	}
	return out
}

// parseDoubleStaffedRooms reads REDESIGN FLAG #4's generalization of the
// source's hardcoded F102/F105 pair into a configurable comma list.
func parseDoubleStaffedRooms(csv string) map[string]bool {
	rooms := make(map[string]bool)
	for _, r := range strings.Split(csv, ",") {
		r = strings.TrimSpace(r)
		if r != "" {
			rooms[r] = true
		}
	}
	return rooms
}

func diagnosticStrings(diags []Diagnostic) []string {
	out := make([]string, 0, len(diags))
	for _, d := range diags {
		out = append(out, d.String())
	}
	return out
}
