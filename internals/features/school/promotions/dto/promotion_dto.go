// file: internals/features/school/promotions/dto/promotion_dto.go
package dto

import (
	"github.com/google/uuid"
)

// Batch kenaikan kelas dijalankan untuk seluruh kelas term berjalan;
// class_id opsional untuk membatasi ke satu kelas saja.
type PromotionRunDTO struct {
	ClassID *uuid.UUID `json:"class_id,omitempty"`
}
