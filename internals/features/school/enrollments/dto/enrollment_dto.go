// file: internals/features/school/enrollments/dto/enrollment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "sekolahku_backend/internals/features/school/enrollments/model"
)

/* =======================
   Request DTO
======================= */

// Satu-satunya mutasi yang boleh menyentuh baris riwayat: menempelkan
// nilai akhir term. Field lain immutable setelah tertulis.
type EnrollmentAttachScoreDTO struct {
	StudentEnrollmentFinalScore float64 `json:"student_enrollment_final_score" validate:"min=0,max=100"`
}

/* =======================
   Response DTO
======================= */

type EnrollmentResponseDTO struct {
	StudentEnrollmentID        uuid.UUID `json:"student_enrollment_id"`
	StudentEnrollmentStudentID uuid.UUID `json:"student_enrollment_student_id"`
	StudentEnrollmentClassID   uuid.UUID `json:"student_enrollment_class_id"`
	StudentEnrollmentTermID    uuid.UUID `json:"student_enrollment_term_id"`

	StudentEnrollmentAdvanced   bool     `json:"student_enrollment_advanced"`
	StudentEnrollmentFinalScore *float64 `json:"student_enrollment_final_score,omitempty"`

	StudentEnrollmentClassNameCache string `json:"student_enrollment_class_name_cache"`
	StudentEnrollmentTermYearCache  string `json:"student_enrollment_term_year_cache"`
	StudentEnrollmentTermNameCache  string `json:"student_enrollment_term_name_cache"`

	StudentEnrollmentStudentSnapshot datatypes.JSONMap `json:"student_enrollment_student_snapshot,omitempty"`

	StudentEnrollmentCreatedAt time.Time `json:"student_enrollment_created_at"`
}

func FromModel(ent model.StudentEnrollmentModel) EnrollmentResponseDTO {
	return EnrollmentResponseDTO{
		StudentEnrollmentID:              ent.StudentEnrollmentID,
		StudentEnrollmentStudentID:       ent.StudentEnrollmentStudentID,
		StudentEnrollmentClassID:         ent.StudentEnrollmentClassID,
		StudentEnrollmentTermID:          ent.StudentEnrollmentTermID,
		StudentEnrollmentAdvanced:        ent.StudentEnrollmentAdvanced,
		StudentEnrollmentFinalScore:      ent.StudentEnrollmentFinalScore,
		StudentEnrollmentClassNameCache:  ent.StudentEnrollmentClassNameCache,
		StudentEnrollmentTermYearCache:   ent.StudentEnrollmentTermYearCache,
		StudentEnrollmentTermNameCache:   ent.StudentEnrollmentTermNameCache,
		StudentEnrollmentStudentSnapshot: ent.StudentEnrollmentStudentSnapshot,
		StudentEnrollmentCreatedAt:       ent.StudentEnrollmentCreatedAt,
	}
}

func FromModels(list []model.StudentEnrollmentModel) []EnrollmentResponseDTO {
	out := make([]EnrollmentResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
