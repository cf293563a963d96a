// file: internals/features/school/academics/holidays/model/holiday_day_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HolidayDayModel: satu tanggal non-instruksional yang dideklarasikan admin,
// mis. rapat guru atau acara sekolah.
type HolidayDayModel struct {
	// PK
	HolidayDayID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:holiday_day_id" json:"holiday_day_id"`

	HolidayDayDate   time.Time `gorm:"type:date;not null;column:holiday_day_date" json:"holiday_day_date"`
	HolidayDayReason string    `gorm:"type:varchar(200);not null;column:holiday_day_reason" json:"holiday_day_reason"`

	HolidayDayIsActive bool `gorm:"not null;default:true;column:holiday_day_is_active" json:"holiday_day_is_active"`

	// Audit
	HolidayDayCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:holiday_day_created_at" json:"holiday_day_created_at"`
	HolidayDayUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:holiday_day_updated_at" json:"holiday_day_updated_at"`
	HolidayDayDeletedAt gorm.DeletedAt `gorm:"column:holiday_day_deleted_at;index" json:"holiday_day_deleted_at,omitempty"`
}

func (HolidayDayModel) TableName() string { return "holiday_days" }

func (m *HolidayDayModel) BeforeSave(tx *gorm.DB) error {
	m.HolidayDayReason = strings.TrimSpace(m.HolidayDayReason)
	return nil
}
