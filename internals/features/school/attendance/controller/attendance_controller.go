// file: internals/features/school/attendance/controller/attendance_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/school/attendance/dto"
	model "sekolahku_backend/internals/features/school/attendance/model"
	service "sekolahku_backend/internals/features/school/attendance/service"
	helper "sekolahku_backend/internals/helpers"
)

/* ============================================
   Controller
============================================ */

type AttendanceController struct {
	DB        *gorm.DB
	Validate  *validator.Validate
	Generator *service.Generator
}

func NewAttendanceController(db *gorm.DB, v *validator.Validate, g *service.Generator) *AttendanceController {
	if v == nil {
		v = validator.New()
	}
	return &AttendanceController{DB: db, Validate: v, Generator: g}
}

/* ============================================
   GENERATE BULANAN
   POST /attendance/generate-month
============================================ */

// GenerateMonth memicu pembuatan sesi + record absensi satu kelas untuk satu
// bulan. Invokasi kedua untuk (kelas, bulan) yang sama ditolak 409. Gagal di
// tengah jalan mengembalikan 500 BESERTA laporan parsial, supaya admin tahu
// sampai tanggal mana yang sudah jadi.
func (ctl *AttendanceController) GenerateMonth(c *fiber.Ctx) error {
	var p dto.GenerateMonthDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&p); err != nil {
		return helper.ValidationError(c, err)
	}

	report, err := ctl.Generator.GenerateMonth(c.UserContext(), p.ClassID, p.Year, p.Month)
	switch {
	case err == nil:
		log.Printf("[INFO] generate absensi kelas=%s %04d-%02d: %d sesi, %d record",
			p.ClassID, p.Year, p.Month, report.SessionsCreated, report.AttendanceRecordsCreated)
		return helper.JsonOK(c, "Sesi absensi berhasil digenerate", report)

	case errors.Is(err, service.ErrAlreadyGenerated):
		return helper.JsonError(c, fiber.StatusConflict, "Sesi bulan ini sudah pernah digenerate untuk kelas tsb")

	case errors.Is(err, service.ErrClassNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")

	case errors.Is(err, service.ErrClassInactive):
		return helper.JsonError(c, fiber.StatusConflict, "Kelas tidak aktif")

	default:
		log.Printf("[ERROR] generate absensi kelas=%s %04d-%02d gagal: %v", p.ClassID, p.Year, p.Month, err)
		if report != nil {
			return helper.JsonErrorWithData(c, fiber.StatusInternalServerError,
				"Generate terhenti di tengah jalan; lihat laporan parsial", report)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal generate sesi absensi")
	}
}

/* ============================================
   LIST SESSIONS
   GET /attendance/sessions?class_id=&year=&month=
============================================ */

func (ctl *AttendanceController) ListSessions(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 31, 200)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.AttendanceSessionModel{})
	if classID := c.Query("class_id"); classID != "" {
		q = q.Where("attendance_session_class_id = ?", classID)
	}
	if year := c.QueryInt("year", 0); year > 0 {
		month := c.QueryInt("month", 0)
		if month >= 1 && month <= 12 {
			start, end := service.MonthBounds(year, time.Month(month))
			q = q.Where("attendance_session_date >= ? AND attendance_session_date < ?", start, end)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.AttendanceSessionModel
	if err := q.
		Order("attendance_session_date ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "Daftar sesi absensi",
		dto.FromSessionModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ============================================
   LIST RECORDS PER SESI
   GET /attendance/sessions/:id/records
============================================ */

func (ctl *AttendanceController) ListRecords(c *fiber.Ctx) error {
	sessionID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var rows []model.AttendanceRecordModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("attendance_record_session_id = ?", sessionID).
		Order("attendance_record_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonOK(c, "Daftar record absensi", dto.FromRecordModels(rows))
}
