// file: internals/features/school/classes/model/program_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProgramModel: jurusan/jenjang yang menaungi kelas, mis. "IPA", "Tahfidz".
type ProgramModel struct {
	// PK
	ProgramID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:program_id" json:"program_id"`

	ProgramName string  `gorm:"type:varchar(120);not null;column:program_name" json:"program_name"`
	ProgramSlug *string `gorm:"type:varchar(160);column:program_slug" json:"program_slug,omitempty"`

	ProgramIsActive bool `gorm:"not null;default:true;column:program_is_active" json:"program_is_active"`

	// Audit
	ProgramCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:program_created_at" json:"program_created_at"`
	ProgramUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:program_updated_at" json:"program_updated_at"`
	ProgramDeletedAt gorm.DeletedAt `gorm:"column:program_deleted_at;index" json:"program_deleted_at,omitempty"`
}

func (ProgramModel) TableName() string { return "programs" }

func (m *ProgramModel) BeforeSave(tx *gorm.DB) error {
	m.ProgramName = strings.TrimSpace(m.ProgramName)
	return nil
}
