// file: internals/features/school/classes/model/class_model.go
package model

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================
   Model: classes (kelas/rombel per term)
========================================= */

type ClassModel struct {
	// PK
	ClassID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_id" json:"class_id"`

	// Relasi utama
	ClassAcademicTermID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_class_term_program_name;column:class_academic_term_id" json:"class_academic_term_id"`
	ClassProgramID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_class_term_program_name;column:class_program_id" json:"class_program_id"`

	// Identitas
	ClassName string  `gorm:"type:varchar(160);not null;uniqueIndex:ux_class_term_program_name;column:class_name" json:"class_name"`
	ClassSlug *string `gorm:"type:varchar(160);column:class_slug" json:"class_slug,omitempty"`

	// Jenjang eksplisit (mis. 11 untuk "Kelas 11 A"); dipakai resolusi kenaikan
	// kelas, bukan parsing nama saat dibutuhkan.
	ClassLevel int `gorm:"type:integer;not null;default:0;column:class_level" json:"class_level"`

	// Wali kelas (nama snapshot; data guru lengkap di layanan lain)
	ClassHomeroomTeacherName *string `gorm:"type:varchar(120);column:class_homeroom_teacher_name" json:"class_homeroom_teacher_name,omitempty"`

	ClassIsActive bool `gorm:"not null;default:true;column:class_is_active" json:"class_is_active"`

	// Audit
	ClassCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:class_created_at" json:"class_created_at"`
	ClassUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:class_updated_at" json:"class_updated_at"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index" json:"class_deleted_at,omitempty"`
}

func (ClassModel) TableName() string { return "classes" }

var classLevelRe = regexp.MustCompile(`\d+`)

// ExtractLevel mengambil angka jenjang pertama dari nama kelas
// ("Kelas 11 A" → 11). Hanya untuk backfill data lama yang belum
// punya class_level; 0 kalau tidak ketemu.
func ExtractLevel(name string) int {
	s := classLevelRe.FindString(name)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// Level mengembalikan jenjang efektif kelas.
func (m *ClassModel) Level() int {
	if m.ClassLevel > 0 {
		return m.ClassLevel
	}
	return ExtractLevel(m.ClassName)
}

func (m *ClassModel) BeforeSave(tx *gorm.DB) error {
	m.ClassName = strings.TrimSpace(m.ClassName)
	if m.ClassLevel == 0 {
		m.ClassLevel = ExtractLevel(m.ClassName)
	}
	return nil
}
