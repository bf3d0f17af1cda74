package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/Tharushi-Umesha/school-management-system/models"
)

func TestMarkUpsertsOnStudentAndDate(t *testing.T) {
	db := newTestDB(t)
	h := NewAttendanceHandler(db)

	mark := func(status string) {
		t.Helper()
		body := fmt.Sprintf(`[{"student_id":1,"date":"2024-05-01","status":"%s"}]`, status)
		c, rec := request(http.MethodPost, "/attendance", body)
		if err := h.Mark(c); err != nil {
			t.Fatalf("mark: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("mark status = %d: %s", rec.Code, rec.Body.String())
		}
		if msg := decodeMap(t, rec)["message"]; msg != "Attendance recorded successfully" {
			t.Fatalf("message = %v", msg)
		}
	}

	mark("present")
	mark("absent")

	var rows []models.Attendance
	if err := db.Where("student_id = ? AND date = ?", 1, "2024-05-01").Find(&rows).Error; err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows for (1, 2024-05-01) = %d, want exactly 1", len(rows))
	}
	if rows[0].Status != models.StatusAbsent {
		t.Fatalf("status = %s, want latest (absent)", rows[0].Status)
	}
}

func TestMarkAppliesWholeBatch(t *testing.T) {
	db := newTestDB(t)
	h := NewAttendanceHandler(db)

	body := `[
		{"student_id":1,"date":"2024-05-01","status":"present"},
		{"student_id":2,"date":"2024-05-01","status":"absent"},
		{"student_id":3,"date":"2024-05-01","status":"present"}
	]`
	c, rec := request(http.MethodPost, "/attendance", body)
	if err := h.Mark(c); err != nil {
		t.Fatalf("mark: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var total int64
	db.Model(&models.Attendance{}).Count(&total)
	if total != 3 {
		t.Fatalf("rows = %d, want 3", total)
	}
}

func TestMarkRejectsInvalidStatusBeforePersisting(t *testing.T) {
	db := newTestDB(t)
	h := NewAttendanceHandler(db)

	body := `[
		{"student_id":1,"date":"2024-05-01","status":"present"},
		{"student_id":2,"date":"2024-05-01","status":"late"}
	]`
	c, rec := request(http.MethodPost, "/attendance", body)
	if err := h.Mark(c); err != nil {
		t.Fatalf("mark: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	got := decodeMap(t, rec)
	if got["error"] != "VALIDATION_ERROR" {
		t.Fatalf("error = %v", got["error"])
	}
	issues, _ := got["issues"].([]any)
	if len(issues) != 1 {
		t.Fatalf("issues = %v, want exactly the bad entry", got["issues"])
	}
	issue, _ := issues[0].(map[string]any)
	if issue["index"] != float64(1) {
		t.Fatalf("issue index = %v, want 1", issue["index"])
	}
	fields, _ := issue["fields"].(map[string]any)
	if _, ok := fields["status"]; !ok {
		t.Fatalf("expected status field error, got %v", fields)
	}

	// nothing from the batch may be durably applied
	var total int64
	db.Model(&models.Attendance{}).Count(&total)
	if total != 0 {
		t.Fatalf("rows after rejected batch = %d, want 0", total)
	}
}

func TestRateZeroWithoutRecords(t *testing.T) {
	db := newTestDB(t)
	h := NewAttendanceHandler(db)

	c, rec := request(http.MethodGet, "/attendance/rate", "")
	if err := h.Rate(c); err != nil {
		t.Fatalf("rate: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rate := decodeMap(t, rec)["rate"]; rate != float64(0) {
		t.Fatalf("rate = %v, want 0", rate)
	}
}

func TestRateThreePresentOneAbsent(t *testing.T) {
	db := newTestDB(t)
	h := NewAttendanceHandler(db)

	day := today()
	for i, status := range []models.AttendanceStatus{
		models.StatusPresent, models.StatusPresent, models.StatusPresent, models.StatusAbsent,
	} {
		rec := models.Attendance{StudentID: uint(i + 1), Date: day, Status: status}
		if err := db.Create(&rec).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	c, rec := request(http.MethodGet, "/attendance/rate", "")
	if err := h.Rate(c); err != nil {
		t.Fatalf("rate: %v", err)
	}
	if rate := decodeMap(t, rec)["rate"]; rate != float64(75) {
		t.Fatalf("rate = %v, want 75", rate)
	}
}

func TestTodayReturnsOnlyTodaysRows(t *testing.T) {
	db := newTestDB(t)
	h := NewAttendanceHandler(db)

	day := today()
	db.Create(&models.Attendance{StudentID: 1, Date: day, Status: models.StatusPresent})
	db.Create(&models.Attendance{StudentID: 2, Date: day, Status: models.StatusAbsent})
	db.Create(&models.Attendance{StudentID: 1, Date: "2020-01-01", Status: models.StatusPresent})

	c, rec := request(http.MethodGet, "/attendance/today", "")
	if err := h.Today(c); err != nil {
		t.Fatalf("today: %v", err)
	}
	var items []models.Attendance
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len = %d, want 2", len(items))
	}
	for _, it := range items {
		if it.Date != day {
			t.Fatalf("row with date %s leaked into today listing", it.Date)
		}
	}
}
