package handlers

import (
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Tharushi-Umesha/school-management-system/models"
)

type AttendanceHandler struct {
	DB *gorm.DB
}

func NewAttendanceHandler(db *gorm.DB) *AttendanceHandler { return &AttendanceHandler{DB: db} }

type attendancePayload struct {
	StudentID uint                    `json:"student_id" validate:"required"`
	Date      string                  `json:"date" validate:"required,dateonly"`
	Status    models.AttendanceStatus `json:"status" validate:"required,status"`
}

func today() string { return time.Now().Format("2006-01-02") }

// POST /attendance
//
// Batch mark: one row per (student_id, date). An existing row gets only
// its status overwritten; otherwise a new row is inserted. The whole
// batch commits in a single transaction — all triples or none. Triples
// are validated up front, so nothing is persisted for a bad batch.
func (h *AttendanceHandler) Mark(c echo.Context) error {
	var records []attendancePayload
	if err := c.Bind(&records); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}

	issues := []map[string]any{}
	for i, r := range records {
		if fields := checkPayload(&r); fields != nil {
			issues = append(issues, map[string]any{"index": i, "fields": fields})
		}
	}
	if len(issues) > 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "issues": issues})
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		for _, r := range records {
			var existing models.Attendance
			err := tx.Where("student_id = ? AND date = ?", r.StudentID, r.Date).First(&existing).Error
			switch {
			case err == nil:
				if err := tx.Model(&existing).Update("status", r.Status).Error; err != nil {
					return err
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				rec := models.Attendance{StudentID: r.StudentID, Date: r.Date, Status: r.Status}
				if err := tx.Create(&rec).Error; err != nil {
					return err
				}
			default:
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Attendance recorded successfully"})
}

// GET /attendance/rate
//
// Today's present/total as a percentage, two decimals. A day with no
// records reports a rate of exactly 0 — this guards the division, it is
// not an error.
func (h *AttendanceHandler) Rate(c echo.Context) error {
	day := today()

	var total, present int64
	if err := h.DB.Model(&models.Attendance{}).Where("date = ?", day).Count(&total).Error; err != nil {
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_COUNT_FAILED"})
	}
	if err := h.DB.Model(&models.Attendance{}).
		Where("date = ? AND status = ?", day, models.StatusPresent).
		Count(&present).Error; err != nil {
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_COUNT_FAILED"})
	}

	rate := 0.0
	if total > 0 {
		rate = math.Round(float64(present)/float64(total)*100*100) / 100
	}
	return c.JSON(http.StatusOK, map[string]float64{"rate": rate})
}

// GET /attendance/today
func (h *AttendanceHandler) Today(c echo.Context) error {
	items := []models.Attendance{}
	if err := h.DB.Where("date = ?", today()).Find(&items).Error; err != nil {
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, items)
}
