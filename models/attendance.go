package models

// AttendanceStatus is the daily status recorded for a student.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusAbsent  AttendanceStatus = "absent"
)

// Valid returns true when the status is a supported value.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent:
		return true
	default:
		return false
	}
}

// Attendance holds one row per (student_id, date); marking the same pair
// again overwrites the status. Rows are never deleted.
type Attendance struct {
	ID        uint             `json:"id" gorm:"primaryKey"`
	StudentID uint             `json:"student_id" gorm:"uniqueIndex:idx_attendance_student_date;not null"`
	Date      string           `json:"date" gorm:"size:10;uniqueIndex:idx_attendance_student_date;not null"` // YYYY-MM-DD
	Status    AttendanceStatus `json:"status" gorm:"size:10;not null"`
}
