// file: internals/features/school/enrollments/model/student_enrollment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* ======================================================
   Model: student_enrollments (riwayat per term)

   Append-only: satu baris per (siswa, kelas, term); tidak pernah
   dihapus, dan setelah tertulis hanya final_score yang boleh
   ditempelkan belakangan.
====================================================== */

type StudentEnrollmentModel struct {
	// PK
	StudentEnrollmentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_enrollment_id" json:"student_enrollment_id"`

	// Lineage scope (unik)
	StudentEnrollmentStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_student_enrollment_scope;column:student_enrollment_student_id" json:"student_enrollment_student_id"`
	StudentEnrollmentClassID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_student_enrollment_scope;column:student_enrollment_class_id" json:"student_enrollment_class_id"`
	StudentEnrollmentTermID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_student_enrollment_scope;column:student_enrollment_term_id" json:"student_enrollment_term_id"`

	// true bila baris ini ditulis karena siswa naik dari kelas tsb.
	StudentEnrollmentAdvanced bool `gorm:"not null;default:false;column:student_enrollment_advanced" json:"student_enrollment_advanced"`

	// Nilai akhir term (ditempel belakangan oleh modul penilaian)
	StudentEnrollmentFinalScore *float64 `gorm:"type:numeric(5,2);column:student_enrollment_final_score" json:"student_enrollment_final_score,omitempty"`

	// ===== Caches (denormalized; biar lineage terbaca tanpa join) =====
	StudentEnrollmentClassNameCache string `gorm:"type:varchar(160);not null;default:'';column:student_enrollment_class_name_cache" json:"student_enrollment_class_name_cache"`
	StudentEnrollmentTermYearCache  string `gorm:"type:text;not null;default:'';column:student_enrollment_term_year_cache" json:"student_enrollment_term_year_cache"`
	StudentEnrollmentTermNameCache  string `gorm:"type:text;not null;default:'';column:student_enrollment_term_name_cache" json:"student_enrollment_term_name_cache"`

	// Snapshot ringan data siswa saat baris ditulis
	StudentEnrollmentStudentSnapshot datatypes.JSONMap `gorm:"type:jsonb;column:student_enrollment_student_snapshot" json:"student_enrollment_student_snapshot,omitempty"`

	// Audit (tanpa soft delete: baris riwayat tidak pernah dihapus)
	StudentEnrollmentCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:student_enrollment_created_at" json:"student_enrollment_created_at"`
	StudentEnrollmentUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:student_enrollment_updated_at" json:"student_enrollment_updated_at"`
}

func (StudentEnrollmentModel) TableName() string { return "student_enrollments" }
