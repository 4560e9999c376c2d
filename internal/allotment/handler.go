package allotment

import (
	"bytes"
	"mime/multipart"
	"net/http"

	"examhall/internal/report"
	"examhall/internal/store"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Handler exposes the room-allotment engine over HTTP: upload a rooms file
// and an exam-schedule file, choose single or double mode, and receive the
// allotment CSV plus any capacity-shortfall diagnostics.
type Handler struct {
	runs *store.RunRepository
	log  *zap.Logger
}

func NewHandler(runs *store.RunRepository, log *zap.Logger) *Handler {
	return &Handler{runs: runs, log: log}
}

// Allot handles POST /api/allotment/run. Expects multipart form fields
// "rooms" and "schedule" (files) and "mode" ("single" or "double").
func (h *Handler) Allot(c echo.Context) error {
	mode := c.FormValue("mode")
	if mode != "single" && mode != "double" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "mode must be 'single' or 'double'"})
	}

	roomsFile, err := c.FormFile("rooms")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing rooms file"})
	}
	scheduleFile, err := c.FormFile("schedule")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing schedule file"})
	}

	rooms, err := readUploadedRooms(roomsFile)
	if err != nil {
		return h.badInput(c, err)
	}
	courseRows, err := readUploadedSchedule(scheduleFile)
	if err != nil {
		return h.badInput(c, err)
	}

	batches := BuildBatches(courseRows)
	for _, b := range batches {
		SortCoursesDescending(b.Courses)
	}
	SortRoomsDescending(rooms)

	var diags []Diagnostic
	if mode == "single" {
		diags = PackSingle(rooms, batches)
	} else {
		diags = PackDouble(rooms, batches)
		Coalesce(rooms)
	}

	for _, d := range diags {
		h.log.Warn("allotment diagnostic", zap.String("course", d.Course), zap.String("slot", d.Slot.Key()), zap.String("message", d.Message))
	}

	slips := BuildRoomSlips(rooms)
	for _, slip := range slips {
		if _, err := report.RenderRoomSlipPDF(slip); err != nil {
			h.log.Warn("failed to render room slip", zap.String("room", slip.Room), zap.Error(err))
		}
	}
	h.log.Info("rendered room slips", zap.Int("count", len(slips)))

	var buf bytes.Buffer
	if err := WriteAllotmentCSV(&buf, rooms); err != nil {
		h.log.Error("failed to render allotment CSV", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to render allotment"})
	}

	run := &store.Run{
		Kind:        "room_allotment",
		Mode:        mode,
		Diagnostics: diagnosticStrings(diags),
	}
	if err := h.runs.Save(c.Request().Context(), run); err != nil {
		h.log.Error("failed to persist run", zap.Error(err))
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="allotment.csv"`)
	c.Response().Header().Set("X-Run-ID", run.ID.Hex())
	for _, d := range diagnosticStrings(diags) {
		c.Response().Header().Add("X-Diagnostic", d)
	}
	return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
}

func (h *Handler) badInput(c echo.Context, err error) error {
	h.log.Info("rejecting malformed allotment input", zap.Error(err))
	return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
}

func readUploadedRooms(fh *multipart.FileHeader) ([]*Room, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadRooms(f)
}

func readUploadedSchedule(fh *multipart.FileHeader) ([]CourseRow, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadSchedule(f)
}

func diagnosticStrings(diags []Diagnostic) []string {
	out := make([]string, 0, len(diags))
	for _, d := range diags {
		out = append(out, d.String())
	}
	return out
}
