// file: internals/features/school/academics/holidays/model/holiday_range_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =====================
   MODEL
   ===================== */

// HolidayRangeModel: libur sekolah berbentuk rentang tanggal tertutup
// (boleh lintas bulan/tahun), mis. "Libur Idul Fitri" 10–12 April.
type HolidayRangeModel struct {
	// PK
	HolidayRangeID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:holiday_range_id" json:"holiday_range_id"`

	// Tanggal rentang (wajib, inklusif dua sisi)
	HolidayRangeStartDate time.Time `gorm:"type:date;not null;column:holiday_range_start_date" json:"holiday_range_start_date"`
	HolidayRangeEndDate   time.Time `gorm:"type:date;not null;column:holiday_range_end_date" json:"holiday_range_end_date"`

	// Judul
	HolidayRangeTitle string `gorm:"type:varchar(200);not null;column:holiday_range_title" json:"holiday_range_title"`

	// Status
	HolidayRangeIsActive bool `gorm:"not null;default:true;column:holiday_range_is_active" json:"holiday_range_is_active"`

	// Audit
	HolidayRangeCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:holiday_range_created_at" json:"holiday_range_created_at"`
	HolidayRangeUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:holiday_range_updated_at" json:"holiday_range_updated_at"`
	HolidayRangeDeletedAt gorm.DeletedAt `gorm:"column:holiday_range_deleted_at;index" json:"holiday_range_deleted_at,omitempty"`
}

func (HolidayRangeModel) TableName() string { return "holiday_ranges" }

func (m *HolidayRangeModel) BeforeSave(tx *gorm.DB) error {
	m.HolidayRangeTitle = strings.TrimSpace(m.HolidayRangeTitle)
	return nil
}
