// file: internals/features/school/academics/academic_terms/dto/academic_term_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/school/academics/academic_terms/model"
)

// =======================
// Request DTO
// =======================

type AcademicTermCreateDTO struct {
	// Contoh: "2025/2026"
	AcademicTermAcademicYear string `json:"academic_term_academic_year" validate:"required,min=4"`
	// Terima hanya opsi ini
	AcademicTermName      string    `json:"academic_term_name"       validate:"required,oneof=Ganjil Genap Pendek"`
	AcademicTermStartDate time.Time `json:"academic_term_start_date" validate:"required"`
	// gtefield sejalan dg CHECK di DB (end >= start)
	AcademicTermEndDate  time.Time `json:"academic_term_end_date" validate:"required,gtefield=AcademicTermStartDate"`
	AcademicTermAngkatan *int      `json:"academic_term_angkatan,omitempty" validate:"omitempty,min=2000,max=2100"`
}

type AcademicTermUpdateDTO struct {
	AcademicTermAcademicYear *string    `json:"academic_term_academic_year,omitempty" validate:"omitempty,min=4"`
	AcademicTermName         *string    `json:"academic_term_name,omitempty"          validate:"omitempty,oneof=Ganjil Genap Pendek"`
	AcademicTermStartDate    *time.Time `json:"academic_term_start_date,omitempty"`
	AcademicTermEndDate      *time.Time `json:"academic_term_end_date,omitempty"`
	AcademicTermAngkatan     *int       `json:"academic_term_angkatan,omitempty" validate:"omitempty,min=2000,max=2100"`
}

// =======================
// Response DTO
// =======================

type AcademicTermResponseDTO struct {
	AcademicTermID           uuid.UUID `json:"academic_term_id"`
	AcademicTermAcademicYear string    `json:"academic_term_academic_year"`
	AcademicTermName         string    `json:"academic_term_name"`
	AcademicTermStartDate    time.Time `json:"academic_term_start_date"`
	AcademicTermEndDate      time.Time `json:"academic_term_end_date"`
	AcademicTermIsCurrent    bool      `json:"academic_term_is_current"`
	AcademicTermAngkatan     *int      `json:"academic_term_angkatan,omitempty"`
	AcademicTermCreatedAt    time.Time `json:"academic_term_created_at"`
	AcademicTermUpdatedAt    time.Time `json:"academic_term_updated_at"`
}

// =======================
// Helpers
// =======================

func (p *AcademicTermCreateDTO) Normalize() {
	p.AcademicTermAcademicYear = strings.TrimSpace(p.AcademicTermAcademicYear)
	p.AcademicTermName = strings.TrimSpace(p.AcademicTermName)
}

func (p *AcademicTermCreateDTO) ToModel() model.AcademicTermModel {
	return model.AcademicTermModel{
		AcademicTermAcademicYear: p.AcademicTermAcademicYear,
		AcademicTermName:         p.AcademicTermName,
		AcademicTermStartDate:    p.AcademicTermStartDate,
		AcademicTermEndDate:      p.AcademicTermEndDate,
		AcademicTermAngkatan:     p.AcademicTermAngkatan,
	}
}

func (u *AcademicTermUpdateDTO) ApplyUpdates(ent *model.AcademicTermModel) {
	if u.AcademicTermAcademicYear != nil {
		ent.AcademicTermAcademicYear = strings.TrimSpace(*u.AcademicTermAcademicYear)
	}
	if u.AcademicTermName != nil {
		ent.AcademicTermName = strings.TrimSpace(*u.AcademicTermName)
	}
	if u.AcademicTermStartDate != nil {
		ent.AcademicTermStartDate = *u.AcademicTermStartDate
	}
	if u.AcademicTermEndDate != nil {
		ent.AcademicTermEndDate = *u.AcademicTermEndDate
	}
	if u.AcademicTermAngkatan != nil {
		ent.AcademicTermAngkatan = u.AcademicTermAngkatan
	}
}

// Mapper entity -> response
func FromModel(ent model.AcademicTermModel) AcademicTermResponseDTO {
	return AcademicTermResponseDTO{
		AcademicTermID:           ent.AcademicTermID,
		AcademicTermAcademicYear: ent.AcademicTermAcademicYear,
		AcademicTermName:         ent.AcademicTermName,
		AcademicTermStartDate:    ent.AcademicTermStartDate,
		AcademicTermEndDate:      ent.AcademicTermEndDate,
		AcademicTermIsCurrent:    ent.AcademicTermIsCurrent,
		AcademicTermAngkatan:     ent.AcademicTermAngkatan,
		AcademicTermCreatedAt:    ent.AcademicTermCreatedAt,
		AcademicTermUpdatedAt:    ent.AcademicTermUpdatedAt,
	}
}

func FromModels(list []model.AcademicTermModel) []AcademicTermResponseDTO {
	out := make([]AcademicTermResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
