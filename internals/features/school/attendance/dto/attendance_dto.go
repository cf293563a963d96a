// file: internals/features/school/attendance/dto/attendance_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/school/attendance/model"
)

/* =======================
   Request DTO
======================= */

type GenerateMonthDTO struct {
	ClassID uuid.UUID `json:"class_id" validate:"required"`
	Year    int       `json:"year"     validate:"required,min=2000,max=2100"`
	Month   int       `json:"month"    validate:"required,min=1,max=12"`
}

/* =======================
   Response DTO
======================= */

type AttendanceSessionResponseDTO struct {
	AttendanceSessionID             uuid.UUID `json:"attendance_session_id"`
	AttendanceSessionClassID        uuid.UUID `json:"attendance_session_class_id"`
	AttendanceSessionAcademicTermID uuid.UUID `json:"attendance_session_academic_term_id"`
	AttendanceSessionDate           time.Time `json:"attendance_session_date"`
	AttendanceSessionNumber         int       `json:"attendance_session_number"`
	AttendanceSessionTitle          *string   `json:"attendance_session_title,omitempty"`
}

type AttendanceRecordResponseDTO struct {
	AttendanceRecordID        uuid.UUID              `json:"attendance_record_id"`
	AttendanceRecordSessionID uuid.UUID              `json:"attendance_record_session_id"`
	AttendanceRecordStudentID uuid.UUID              `json:"attendance_record_student_id"`
	AttendanceRecordStatus    model.AttendanceStatus `json:"attendance_record_status"`
	AttendanceRecordNote      *string                `json:"attendance_record_note,omitempty"`
}

func FromSessionModel(ent model.AttendanceSessionModel) AttendanceSessionResponseDTO {
	return AttendanceSessionResponseDTO{
		AttendanceSessionID:             ent.AttendanceSessionID,
		AttendanceSessionClassID:        ent.AttendanceSessionClassID,
		AttendanceSessionAcademicTermID: ent.AttendanceSessionAcademicTermID,
		AttendanceSessionDate:           ent.AttendanceSessionDate,
		AttendanceSessionNumber:         ent.AttendanceSessionNumber,
		AttendanceSessionTitle:          ent.AttendanceSessionTitle,
	}
}

func FromSessionModels(list []model.AttendanceSessionModel) []AttendanceSessionResponseDTO {
	out := make([]AttendanceSessionResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromSessionModel(it))
	}
	return out
}

func FromRecordModel(ent model.AttendanceRecordModel) AttendanceRecordResponseDTO {
	return AttendanceRecordResponseDTO{
		AttendanceRecordID:        ent.AttendanceRecordID,
		AttendanceRecordSessionID: ent.AttendanceRecordSessionID,
		AttendanceRecordStudentID: ent.AttendanceRecordStudentID,
		AttendanceRecordStatus:    ent.AttendanceRecordStatus,
		AttendanceRecordNote:      ent.AttendanceRecordNote,
	}
}

func FromRecordModels(list []model.AttendanceRecordModel) []AttendanceRecordResponseDTO {
	out := make([]AttendanceRecordResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromRecordModel(it))
	}
	return out
}
