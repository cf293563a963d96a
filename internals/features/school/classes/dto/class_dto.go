// file: internals/features/school/classes/dto/class_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/school/classes/model"
)

/* =======================
   Program
======================= */

type ProgramCreateDTO struct {
	ProgramName string  `json:"program_name" validate:"required,min=2,max=120"`
	ProgramSlug *string `json:"program_slug,omitempty" validate:"omitempty,min=2,max=160"`
}

type ProgramUpdateDTO struct {
	ProgramName     *string `json:"program_name,omitempty" validate:"omitempty,min=2,max=120"`
	ProgramSlug     *string `json:"program_slug,omitempty" validate:"omitempty,min=2,max=160"`
	ProgramIsActive *bool   `json:"program_is_active,omitempty"`
}

type ProgramResponseDTO struct {
	ProgramID        uuid.UUID `json:"program_id"`
	ProgramName      string    `json:"program_name"`
	ProgramSlug      *string   `json:"program_slug,omitempty"`
	ProgramIsActive  bool      `json:"program_is_active"`
	ProgramCreatedAt time.Time `json:"program_created_at"`
}

func (p *ProgramCreateDTO) Normalize() {
	p.ProgramName = strings.TrimSpace(p.ProgramName)
	if p.ProgramSlug != nil {
		s := strings.ToLower(strings.TrimSpace(*p.ProgramSlug))
		p.ProgramSlug = &s
	}
}

func (p *ProgramCreateDTO) ToModel() model.ProgramModel {
	return model.ProgramModel{
		ProgramName:     p.ProgramName,
		ProgramSlug:     p.ProgramSlug,
		ProgramIsActive: true,
	}
}

func (u *ProgramUpdateDTO) ApplyUpdates(ent *model.ProgramModel) {
	if u.ProgramName != nil {
		ent.ProgramName = strings.TrimSpace(*u.ProgramName)
	}
	if u.ProgramSlug != nil {
		s := strings.ToLower(strings.TrimSpace(*u.ProgramSlug))
		ent.ProgramSlug = &s
	}
	if u.ProgramIsActive != nil {
		ent.ProgramIsActive = *u.ProgramIsActive
	}
}

func FromProgramModel(ent model.ProgramModel) ProgramResponseDTO {
	return ProgramResponseDTO{
		ProgramID:        ent.ProgramID,
		ProgramName:      ent.ProgramName,
		ProgramSlug:      ent.ProgramSlug,
		ProgramIsActive:  ent.ProgramIsActive,
		ProgramCreatedAt: ent.ProgramCreatedAt,
	}
}

func FromProgramModels(list []model.ProgramModel) []ProgramResponseDTO {
	out := make([]ProgramResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromProgramModel(it))
	}
	return out
}

/* =======================
   Class
======================= */

type ClassCreateDTO struct {
	ClassAcademicTermID      uuid.UUID `json:"class_academic_term_id" validate:"required"`
	ClassProgramID           uuid.UUID `json:"class_program_id"       validate:"required"`
	ClassName                string    `json:"class_name"             validate:"required,min=2,max=160"`
	// 0 = biarkan backfill dari nama ("Kelas 11 A" → 11)
	ClassLevel               int     `json:"class_level,omitempty" validate:"omitempty,min=0,max=99"`
	ClassHomeroomTeacherName *string `json:"class_homeroom_teacher_name,omitempty" validate:"omitempty,max=120"`
}

type ClassUpdateDTO struct {
	ClassName                *string `json:"class_name,omitempty" validate:"omitempty,min=2,max=160"`
	ClassLevel               *int    `json:"class_level,omitempty" validate:"omitempty,min=1,max=99"`
	ClassHomeroomTeacherName *string `json:"class_homeroom_teacher_name,omitempty" validate:"omitempty,max=120"`
	ClassIsActive            *bool   `json:"class_is_active,omitempty"`
}

type ClassResponseDTO struct {
	ClassID                  uuid.UUID `json:"class_id"`
	ClassAcademicTermID      uuid.UUID `json:"class_academic_term_id"`
	ClassProgramID           uuid.UUID `json:"class_program_id"`
	ClassName                string    `json:"class_name"`
	ClassLevel               int       `json:"class_level"`
	ClassHomeroomTeacherName *string   `json:"class_homeroom_teacher_name,omitempty"`
	ClassIsActive            bool      `json:"class_is_active"`
	ClassCreatedAt           time.Time `json:"class_created_at"`
}

func (p *ClassCreateDTO) Normalize() {
	p.ClassName = strings.TrimSpace(p.ClassName)
}

func (p *ClassCreateDTO) ToModel() model.ClassModel {
	return model.ClassModel{
		ClassAcademicTermID:      p.ClassAcademicTermID,
		ClassProgramID:           p.ClassProgramID,
		ClassName:                p.ClassName,
		ClassLevel:               p.ClassLevel,
		ClassHomeroomTeacherName: p.ClassHomeroomTeacherName,
		ClassIsActive:            true,
	}
}

func (u *ClassUpdateDTO) ApplyUpdates(ent *model.ClassModel) {
	if u.ClassName != nil {
		ent.ClassName = strings.TrimSpace(*u.ClassName)
	}
	if u.ClassLevel != nil {
		ent.ClassLevel = *u.ClassLevel
	}
	if u.ClassHomeroomTeacherName != nil {
		ent.ClassHomeroomTeacherName = u.ClassHomeroomTeacherName
	}
	if u.ClassIsActive != nil {
		ent.ClassIsActive = *u.ClassIsActive
	}
}

func FromClassModel(ent model.ClassModel) ClassResponseDTO {
	return ClassResponseDTO{
		ClassID:                  ent.ClassID,
		ClassAcademicTermID:      ent.ClassAcademicTermID,
		ClassProgramID:           ent.ClassProgramID,
		ClassName:                ent.ClassName,
		ClassLevel:               ent.Level(),
		ClassHomeroomTeacherName: ent.ClassHomeroomTeacherName,
		ClassIsActive:            ent.ClassIsActive,
		ClassCreatedAt:           ent.ClassCreatedAt,
	}
}

func FromClassModels(list []model.ClassModel) []ClassResponseDTO {
	out := make([]ClassResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromClassModel(it))
	}
	return out
}
