// file: internals/features/school/classes/controller/student_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/school/classes/dto"
	model "sekolahku_backend/internals/features/school/classes/model"
	helper "sekolahku_backend/internals/helpers"
)

/* ============================================
   Controller: students
============================================ */

type StudentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStudentController(db *gorm.DB, v *validator.Validate) *StudentController {
	if v == nil {
		v = validator.New()
	}
	return &StudentController{DB: db, Validate: v}
}

/* ============================================
   LIST
   GET /students?class_id=&status=&q=
============================================ */

func (ctl *StudentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.StudentModel{})
	if classID := c.Query("class_id"); classID != "" {
		q = q.Where("student_class_id = ?", classID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("student_status = ?", status)
	}
	if kw := strings.TrimSpace(c.Query("q")); kw != "" {
		q = q.Where("student_name ILIKE ? OR student_code ILIKE ?", "%"+kw+"%", "%"+kw+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.StudentModel
	if err := q.
		Order("student_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "Daftar siswa",
		dto.FromStudentModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ============================================
   CREATE
   POST /students
============================================ */

func (ctl *StudentController) Create(c *fiber.Ctx) error {
	var p dto.StudentCreateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	p.Normalize()
	if err := ctl.Validate.Struct(&p); err != nil {
		return helper.ValidationError(c, err)
	}

	var cnt int64
	if err := ctl.DB.WithContext(c.UserContext()).Model(&model.StudentModel{}).
		Where("student_code = ?", p.StudentCode).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa NIS")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "NIS sudah terdaftar")
	}

	ent := p.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat siswa")
	}
	return helper.JsonCreated(c, "Siswa terdaftar", dto.FromStudentModel(ent))
}

/* ============================================
   UPDATE
   PATCH /students/:id
============================================ */

func (ctl *StudentController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var ent model.StudentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("student_id = ?", id).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var p dto.StudentUpdateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&p); err != nil {
		return helper.ValidationError(c, err)
	}

	p.ApplyUpdates(&ent)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui data")
	}
	return helper.JsonUpdated(c, "Siswa diperbarui", dto.FromStudentModel(ent))
}

/* ============================================
   MARK ADVANCE
   POST /students/:id/mark-advance
============================================ */

// MarkAdvance menandai siswa layak naik kelas (atau mencabut tanda lewat
// {"marked": false}). Penanda ini yang dibaca mesin kenaikan kelas.
func (ctl *StudentController) MarkAdvance(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var p dto.StudentMarkAdvanceDTO
	_ = c.BodyParser(&p) // body kosong = tandai
	marked := p.Marked == nil || *p.Marked

	var ent model.StudentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("student_id = ?", id).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if ent.StudentStatus != model.StudentStatusActive {
		return helper.JsonError(c, fiber.StatusConflict, "Hanya siswa aktif yang bisa ditandai naik kelas")
	}
	if ent.StudentPromotionState == model.PromotionStateProcessed {
		return helper.JsonError(c, fiber.StatusConflict, "Siswa sudah diproses pada siklus kenaikan ini")
	}

	if err := ctl.DB.WithContext(c.UserContext()).Model(&ent).
		Update("student_marked_to_advance", marked).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui penanda")
	}
	ent.StudentMarkedToAdvance = marked

	msg := "Siswa ditandai naik kelas"
	if !marked {
		msg = "Penanda naik kelas dicabut"
	}
	return helper.JsonUpdated(c, msg, dto.FromStudentModel(ent))
}
