// file: internals/features/school/academics/academic_terms/model/academic_term_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AcademicTermModel struct {
	// ============ PK ============
	AcademicTermID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:academic_term_id" json:"academic_term_id"`

	// ============ Identitas ============
	// Example academic_year: "2025/2026"
	AcademicTermAcademicYear string `gorm:"type:text;not null;column:academic_term_academic_year" json:"academic_term_academic_year"`
	// Example name: "Ganjil" | "Genap" | "Pendek"
	AcademicTermName string `gorm:"type:text;not null;column:academic_term_name" json:"academic_term_name"`

	AcademicTermStartDate time.Time `gorm:"type:date;not null;column:academic_term_start_date" json:"academic_term_start_date"`
	AcademicTermEndDate   time.Time `gorm:"type:date;not null;column:academic_term_end_date" json:"academic_term_end_date"`

	// Tepat satu term yang current; dijaga lewat service.SetCurrentTerm,
	// bukan dibaca/tulis bebas oleh fitur lain.
	AcademicTermIsCurrent bool `gorm:"not null;default:false;column:academic_term_is_current" json:"academic_term_is_current"`

	// Cohort / intake year (opsional), mis. 2025
	AcademicTermAngkatan *int `gorm:"column:academic_term_angkatan" json:"academic_term_angkatan,omitempty"`

	// ============ Audit / Soft delete ============
	AcademicTermCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:academic_term_created_at" json:"academic_term_created_at"`
	AcademicTermUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:academic_term_updated_at" json:"academic_term_updated_at"`
	AcademicTermDeletedAt gorm.DeletedAt `gorm:"column:academic_term_deleted_at;index" json:"academic_term_deleted_at,omitempty"`
}

func (AcademicTermModel) TableName() string { return "academic_terms" }

// ============ Hooks: validation & light normalization ============
func (m *AcademicTermModel) BeforeSave(tx *gorm.DB) error {
	// Mirror CHECK: end >= start
	if m.AcademicTermEndDate.Before(m.AcademicTermStartDate) {
		return errors.New("academic_term_end_date must be >= academic_term_start_date")
	}

	m.AcademicTermAcademicYear = strings.TrimSpace(m.AcademicTermAcademicYear)
	m.AcademicTermName = strings.TrimSpace(m.AcademicTermName)
	return nil
}
