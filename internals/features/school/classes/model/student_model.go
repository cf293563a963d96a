// file: internals/features/school/classes/model/student_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Enums (selaras dgn DB)
========================= */

type StudentStatus string

const (
	StudentStatusActive    StudentStatus = "active"
	StudentStatusInactive  StudentStatus = "inactive"
	StudentStatusGraduated StudentStatus = "graduated"
	StudentStatusWithdrawn StudentStatus = "withdrawn"
)

// Status siklus kenaikan kelas. "processed" hanya bisa kembali ke
// "eligible" lewat reset eksplisit saat siklus baru dibuka.
type PromotionState string

const (
	PromotionStateEligible  PromotionState = "eligible"
	PromotionStateProcessed PromotionState = "processed"
)

/* =========================================
   Model: students
========================================= */

type StudentModel struct {
	// PK
	StudentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`

	// Identitas
	StudentCode string `gorm:"type:varchar(50);not null;uniqueIndex;column:student_code" json:"student_code"` // NIS
	StudentName string `gorm:"type:varchar(120);not null;column:student_name" json:"student_name"`

	// Enrolment berjalan: maksimal satu kelas pada satu waktu
	StudentClassID *uuid.UUID `gorm:"type:uuid;index;column:student_class_id" json:"student_class_id,omitempty"`

	StudentStatus StudentStatus `gorm:"type:text;not null;default:'active';column:student_status" json:"student_status"`

	// Penanda niat naik kelas (KKM terpenuhi), di-clear saat transisi selesai
	StudentMarkedToAdvance bool `gorm:"not null;default:false;column:student_marked_to_advance" json:"student_marked_to_advance"`

	StudentPromotionState PromotionState `gorm:"type:text;not null;default:'eligible';column:student_promotion_state" json:"student_promotion_state"`

	// Audit
	StudentCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:student_created_at" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:student_updated_at" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }

func (m *StudentModel) BeforeSave(tx *gorm.DB) error {
	m.StudentCode = strings.TrimSpace(m.StudentCode)
	m.StudentName = strings.TrimSpace(m.StudentName)
	return nil
}
