// file: internals/features/school/academics/holidays/model/weekly_closure_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// WeeklyClosureModel: hari-dalam-minggu yang rutin diliburkan sepanjang tahun,
// mis. pesantren yang libur tiap Jumat. ISO weekday: 1=Senin .. 7=Minggu.
type WeeklyClosureModel struct {
	// PK
	WeeklyClosureID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:weekly_closure_id" json:"weekly_closure_id"`

	WeeklyClosureDays  pq.Int64Array `gorm:"type:integer[];not null;column:weekly_closure_days" json:"weekly_closure_days"`
	WeeklyClosureLabel string        `gorm:"type:varchar(120);not null;column:weekly_closure_label" json:"weekly_closure_label"`

	WeeklyClosureIsActive bool `gorm:"not null;default:true;column:weekly_closure_is_active" json:"weekly_closure_is_active"`

	// Audit
	WeeklyClosureCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:weekly_closure_created_at" json:"weekly_closure_created_at"`
	WeeklyClosureUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:weekly_closure_updated_at" json:"weekly_closure_updated_at"`
	WeeklyClosureDeletedAt gorm.DeletedAt `gorm:"column:weekly_closure_deleted_at;index" json:"weekly_closure_deleted_at,omitempty"`
}

func (WeeklyClosureModel) TableName() string { return "weekly_closures" }

func (m *WeeklyClosureModel) BeforeSave(tx *gorm.DB) error {
	m.WeeklyClosureLabel = strings.TrimSpace(m.WeeklyClosureLabel)
	return nil
}
