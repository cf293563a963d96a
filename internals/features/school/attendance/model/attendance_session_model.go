// file: internals/features/school/attendance/model/attendance_session_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================
   Model: attendance_sessions
========================================= */

type AttendanceSessionModel struct {
	// PK
	AttendanceSessionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_session_id" json:"attendance_session_id"`

	// Relasi utama
	AttendanceSessionClassID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_attendance_session_class_date;column:attendance_session_class_id" json:"attendance_session_class_id"`
	AttendanceSessionAcademicTermID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_attendance_session_class_date;column:attendance_session_academic_term_id" json:"attendance_session_academic_term_id"`

	// Occurrence: satu sesi per (kelas, term, tanggal)
	AttendanceSessionDate time.Time `gorm:"type:date;not null;uniqueIndex:ux_attendance_session_class_date;column:attendance_session_date" json:"attendance_session_date"`

	// Nomor pertemuan dalam bulan; stabil karena sesi dibuat urut tanggal naik
	AttendanceSessionNumber int `gorm:"type:integer;not null;default:0;column:attendance_session_number" json:"attendance_session_number"`

	AttendanceSessionTitle *string `gorm:"type:text;column:attendance_session_title" json:"attendance_session_title,omitempty"`

	// Audit
	AttendanceSessionCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:attendance_session_created_at" json:"attendance_session_created_at"`
	AttendanceSessionUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:attendance_session_updated_at" json:"attendance_session_updated_at"`
	AttendanceSessionDeletedAt gorm.DeletedAt `gorm:"column:attendance_session_deleted_at;index" json:"attendance_session_deleted_at,omitempty"`
}

func (AttendanceSessionModel) TableName() string { return "attendance_sessions" }
