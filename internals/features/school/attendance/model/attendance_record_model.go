// file: internals/features/school/attendance/model/attendance_record_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================
   Enums (selaras dgn DB)
========================= */

type AttendanceStatus string

const (
	AttendanceStatusAbsent  AttendanceStatus = "absent"
	AttendanceStatusPresent AttendanceStatus = "present"
	AttendanceStatusLate    AttendanceStatus = "late"
	AttendanceStatusSick    AttendanceStatus = "sick"
	AttendanceStatusExcused AttendanceStatus = "excused"
)

/* =========================================
   Model: attendance_records

   Dibuat default "absent" saat generate; di-overwrite oleh
   pengisian manual/self-report (di luar modul ini).
========================================= */

type AttendanceRecordModel struct {
	// PK
	AttendanceRecordID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_record_id" json:"attendance_record_id"`

	AttendanceRecordSessionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_attendance_record_session_student;column:attendance_record_session_id" json:"attendance_record_session_id"`
	AttendanceRecordStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_attendance_record_session_student;column:attendance_record_student_id" json:"attendance_record_student_id"`

	AttendanceRecordStatus AttendanceStatus `gorm:"type:text;not null;default:'absent';column:attendance_record_status" json:"attendance_record_status"`
	AttendanceRecordNote   *string          `gorm:"type:text;column:attendance_record_note" json:"attendance_record_note,omitempty"`

	// Audit
	AttendanceRecordCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:attendance_record_created_at" json:"attendance_record_created_at"`
	AttendanceRecordUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:attendance_record_updated_at" json:"attendance_record_updated_at"`
}

func (AttendanceRecordModel) TableName() string { return "attendance_records" }
