// file: internals/features/school/classes/dto/student_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/school/classes/model"
)

/* =======================
   Student
======================= */

type StudentCreateDTO struct {
	// NIS
	StudentCode    string     `json:"student_code" validate:"required,min=3,max=50"`
	StudentName    string     `json:"student_name" validate:"required,min=2,max=120"`
	StudentClassID *uuid.UUID `json:"student_class_id,omitempty"`
}

type StudentUpdateDTO struct {
	StudentName    *string    `json:"student_name,omitempty"   validate:"omitempty,min=2,max=120"`
	StudentClassID *uuid.UUID `json:"student_class_id,omitempty"`
	StudentStatus  *string    `json:"student_status,omitempty" validate:"omitempty,oneof=active inactive graduated withdrawn"`
}

// Penanda niat naik kelas; body opsional {"marked": false} untuk mencabut.
type StudentMarkAdvanceDTO struct {
	Marked *bool `json:"marked,omitempty"`
}

type StudentResponseDTO struct {
	StudentID              uuid.UUID            `json:"student_id"`
	StudentCode            string               `json:"student_code"`
	StudentName            string               `json:"student_name"`
	StudentClassID         *uuid.UUID           `json:"student_class_id,omitempty"`
	StudentStatus          model.StudentStatus  `json:"student_status"`
	StudentMarkedToAdvance bool                 `json:"student_marked_to_advance"`
	StudentPromotionState  model.PromotionState `json:"student_promotion_state"`
	StudentCreatedAt       time.Time            `json:"student_created_at"`
}

func (p *StudentCreateDTO) Normalize() {
	p.StudentCode = strings.TrimSpace(p.StudentCode)
	p.StudentName = strings.TrimSpace(p.StudentName)
}

func (p *StudentCreateDTO) ToModel() model.StudentModel {
	return model.StudentModel{
		StudentCode:    p.StudentCode,
		StudentName:    p.StudentName,
		StudentClassID: p.StudentClassID,
		StudentStatus:  model.StudentStatusActive,
	}
}

func (u *StudentUpdateDTO) ApplyUpdates(ent *model.StudentModel) {
	if u.StudentName != nil {
		ent.StudentName = strings.TrimSpace(*u.StudentName)
	}
	if u.StudentClassID != nil {
		ent.StudentClassID = u.StudentClassID
	}
	if u.StudentStatus != nil {
		ent.StudentStatus = model.StudentStatus(*u.StudentStatus)
	}
}

func FromStudentModel(ent model.StudentModel) StudentResponseDTO {
	return StudentResponseDTO{
		StudentID:              ent.StudentID,
		StudentCode:            ent.StudentCode,
		StudentName:            ent.StudentName,
		StudentClassID:         ent.StudentClassID,
		StudentStatus:          ent.StudentStatus,
		StudentMarkedToAdvance: ent.StudentMarkedToAdvance,
		StudentPromotionState:  ent.StudentPromotionState,
		StudentCreatedAt:       ent.StudentCreatedAt,
	}
}

func FromStudentModels(list []model.StudentModel) []StudentResponseDTO {
	out := make([]StudentResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromStudentModel(it))
	}
	return out
}
