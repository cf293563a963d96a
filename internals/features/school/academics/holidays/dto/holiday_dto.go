// file: internals/features/school/academics/holidays/dto/holiday_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	model "sekolahku_backend/internals/features/school/academics/holidays/model"
)

/* =======================
   Holiday range
======================= */

type HolidayRangeCreateDTO struct {
	HolidayRangeStartDate time.Time `json:"holiday_range_start_date" validate:"required"`
	HolidayRangeEndDate   time.Time `json:"holiday_range_end_date"   validate:"required,gtefield=HolidayRangeStartDate"`
	HolidayRangeTitle     string    `json:"holiday_range_title"      validate:"required,min=3,max=200"`
}

type HolidayRangeUpdateDTO struct {
	HolidayRangeStartDate *time.Time `json:"holiday_range_start_date,omitempty"`
	HolidayRangeEndDate   *time.Time `json:"holiday_range_end_date,omitempty"`
	HolidayRangeTitle     *string    `json:"holiday_range_title,omitempty" validate:"omitempty,min=3,max=200"`
	HolidayRangeIsActive  *bool      `json:"holiday_range_is_active,omitempty"`
}

type HolidayRangeResponseDTO struct {
	HolidayRangeID        uuid.UUID `json:"holiday_range_id"`
	HolidayRangeStartDate time.Time `json:"holiday_range_start_date"`
	HolidayRangeEndDate   time.Time `json:"holiday_range_end_date"`
	HolidayRangeTitle     string    `json:"holiday_range_title"`
	HolidayRangeIsActive  bool      `json:"holiday_range_is_active"`
	HolidayRangeCreatedAt time.Time `json:"holiday_range_created_at"`
}

func (p *HolidayRangeCreateDTO) Normalize() {
	p.HolidayRangeTitle = strings.TrimSpace(p.HolidayRangeTitle)
}

func (p *HolidayRangeCreateDTO) ToModel() model.HolidayRangeModel {
	return model.HolidayRangeModel{
		HolidayRangeStartDate: p.HolidayRangeStartDate,
		HolidayRangeEndDate:   p.HolidayRangeEndDate,
		HolidayRangeTitle:     p.HolidayRangeTitle,
		HolidayRangeIsActive:  true,
	}
}

func (u *HolidayRangeUpdateDTO) ApplyUpdates(ent *model.HolidayRangeModel) {
	if u.HolidayRangeStartDate != nil {
		ent.HolidayRangeStartDate = *u.HolidayRangeStartDate
	}
	if u.HolidayRangeEndDate != nil {
		ent.HolidayRangeEndDate = *u.HolidayRangeEndDate
	}
	if u.HolidayRangeTitle != nil {
		ent.HolidayRangeTitle = strings.TrimSpace(*u.HolidayRangeTitle)
	}
	if u.HolidayRangeIsActive != nil {
		ent.HolidayRangeIsActive = *u.HolidayRangeIsActive
	}
}

func FromRangeModel(ent model.HolidayRangeModel) HolidayRangeResponseDTO {
	return HolidayRangeResponseDTO{
		HolidayRangeID:        ent.HolidayRangeID,
		HolidayRangeStartDate: ent.HolidayRangeStartDate,
		HolidayRangeEndDate:   ent.HolidayRangeEndDate,
		HolidayRangeTitle:     ent.HolidayRangeTitle,
		HolidayRangeIsActive:  ent.HolidayRangeIsActive,
		HolidayRangeCreatedAt: ent.HolidayRangeCreatedAt,
	}
}

func FromRangeModels(list []model.HolidayRangeModel) []HolidayRangeResponseDTO {
	out := make([]HolidayRangeResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromRangeModel(it))
	}
	return out
}

/* =======================
   Single-day holiday
======================= */

type HolidayDayCreateDTO struct {
	HolidayDayDate   time.Time `json:"holiday_day_date"   validate:"required"`
	HolidayDayReason string    `json:"holiday_day_reason" validate:"required,min=3,max=200"`
}

type HolidayDayUpdateDTO struct {
	HolidayDayDate     *time.Time `json:"holiday_day_date,omitempty"`
	HolidayDayReason   *string    `json:"holiday_day_reason,omitempty" validate:"omitempty,min=3,max=200"`
	HolidayDayIsActive *bool      `json:"holiday_day_is_active,omitempty"`
}

type HolidayDayResponseDTO struct {
	HolidayDayID        uuid.UUID `json:"holiday_day_id"`
	HolidayDayDate      time.Time `json:"holiday_day_date"`
	HolidayDayReason    string    `json:"holiday_day_reason"`
	HolidayDayIsActive  bool      `json:"holiday_day_is_active"`
	HolidayDayCreatedAt time.Time `json:"holiday_day_created_at"`
}

func (p *HolidayDayCreateDTO) Normalize() {
	p.HolidayDayReason = strings.TrimSpace(p.HolidayDayReason)
}

func (p *HolidayDayCreateDTO) ToModel() model.HolidayDayModel {
	return model.HolidayDayModel{
		HolidayDayDate:     p.HolidayDayDate,
		HolidayDayReason:   p.HolidayDayReason,
		HolidayDayIsActive: true,
	}
}

func (u *HolidayDayUpdateDTO) ApplyUpdates(ent *model.HolidayDayModel) {
	if u.HolidayDayDate != nil {
		ent.HolidayDayDate = *u.HolidayDayDate
	}
	if u.HolidayDayReason != nil {
		ent.HolidayDayReason = strings.TrimSpace(*u.HolidayDayReason)
	}
	if u.HolidayDayIsActive != nil {
		ent.HolidayDayIsActive = *u.HolidayDayIsActive
	}
}

func FromDayModel(ent model.HolidayDayModel) HolidayDayResponseDTO {
	return HolidayDayResponseDTO{
		HolidayDayID:        ent.HolidayDayID,
		HolidayDayDate:      ent.HolidayDayDate,
		HolidayDayReason:    ent.HolidayDayReason,
		HolidayDayIsActive:  ent.HolidayDayIsActive,
		HolidayDayCreatedAt: ent.HolidayDayCreatedAt,
	}
}

func FromDayModels(list []model.HolidayDayModel) []HolidayDayResponseDTO {
	out := make([]HolidayDayResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromDayModel(it))
	}
	return out
}

/* =======================
   Weekly closure
======================= */

type WeeklyClosureCreateDTO struct {
	// ISO weekday 1..7 (1=Senin)
	WeeklyClosureDays  []int64 `json:"weekly_closure_days"  validate:"required,min=1,dive,min=1,max=7"`
	WeeklyClosureLabel string  `json:"weekly_closure_label" validate:"required,min=3,max=120"`
}

type WeeklyClosureUpdateDTO struct {
	WeeklyClosureDays     []int64 `json:"weekly_closure_days,omitempty" validate:"omitempty,min=1,dive,min=1,max=7"`
	WeeklyClosureLabel    *string `json:"weekly_closure_label,omitempty" validate:"omitempty,min=3,max=120"`
	WeeklyClosureIsActive *bool   `json:"weekly_closure_is_active,omitempty"`
}

type WeeklyClosureResponseDTO struct {
	WeeklyClosureID        uuid.UUID `json:"weekly_closure_id"`
	WeeklyClosureDays      []int64   `json:"weekly_closure_days"`
	WeeklyClosureLabel     string    `json:"weekly_closure_label"`
	WeeklyClosureIsActive  bool      `json:"weekly_closure_is_active"`
	WeeklyClosureCreatedAt time.Time `json:"weekly_closure_created_at"`
}

func (p *WeeklyClosureCreateDTO) Normalize() {
	p.WeeklyClosureLabel = strings.TrimSpace(p.WeeklyClosureLabel)
}

func (p *WeeklyClosureCreateDTO) ToModel() model.WeeklyClosureModel {
	return model.WeeklyClosureModel{
		WeeklyClosureDays:     pq.Int64Array(p.WeeklyClosureDays),
		WeeklyClosureLabel:    p.WeeklyClosureLabel,
		WeeklyClosureIsActive: true,
	}
}

func (u *WeeklyClosureUpdateDTO) ApplyUpdates(ent *model.WeeklyClosureModel) {
	if len(u.WeeklyClosureDays) > 0 {
		ent.WeeklyClosureDays = pq.Int64Array(u.WeeklyClosureDays)
	}
	if u.WeeklyClosureLabel != nil {
		ent.WeeklyClosureLabel = strings.TrimSpace(*u.WeeklyClosureLabel)
	}
	if u.WeeklyClosureIsActive != nil {
		ent.WeeklyClosureIsActive = *u.WeeklyClosureIsActive
	}
}

func FromClosureModel(ent model.WeeklyClosureModel) WeeklyClosureResponseDTO {
	return WeeklyClosureResponseDTO{
		WeeklyClosureID:        ent.WeeklyClosureID,
		WeeklyClosureDays:      []int64(ent.WeeklyClosureDays),
		WeeklyClosureLabel:     ent.WeeklyClosureLabel,
		WeeklyClosureIsActive:  ent.WeeklyClosureIsActive,
		WeeklyClosureCreatedAt: ent.WeeklyClosureCreatedAt,
	}
}

func FromClosureModels(list []model.WeeklyClosureModel) []WeeklyClosureResponseDTO {
	out := make([]WeeklyClosureResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromClosureModel(it))
	}
	return out
}
