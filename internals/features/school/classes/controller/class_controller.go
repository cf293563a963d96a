// file: internals/features/school/classes/controller/class_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/school/classes/dto"
	model "sekolahku_backend/internals/features/school/classes/model"
	helper "sekolahku_backend/internals/helpers"
)

/* ============================================
   Controller: programs + classes
============================================ */

type ClassController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClassController(db *gorm.DB, v *validator.Validate) *ClassController {
	if v == nil {
		v = validator.New()
	}
	return &ClassController{DB: db, Validate: v}
}

/* ============================================
   PROGRAMS
============================================ */

func (ctl *ClassController) ListPrograms(c *fiber.Ctx) error {
	var rows []model.ProgramModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("program_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "Daftar program", dto.FromProgramModels(rows))
}

func (ctl *ClassController) CreateProgram(c *fiber.Ctx) error {
	var p dto.ProgramCreateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	p.Normalize()
	if err := ctl.Validate.Struct(&p); err != nil {
		return helper.ValidationError(c, err)
	}

	ent := p.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat program")
	}
	return helper.JsonCreated(c, "Program dibuat", dto.FromProgramModel(ent))
}

func (ctl *ClassController) UpdateProgram(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var ent model.ProgramModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("program_id = ?", id).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Program tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var p dto.ProgramUpdateDTO
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
	return helper.JsonUpdated(c, "Program diperbarui", dto.FromProgramModel(ent))
}

/* ============================================
   CLASSES
============================================ */

func (ctl *ClassController) ListClasses(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.ClassModel{})
	if termID := c.Query("term_id"); termID != "" {
		q = q.Where("class_academic_term_id = ?", termID)
	}
	if programID := c.Query("program_id"); programID != "" {
		q = q.Where("class_program_id = ?", programID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.ClassModel
	if err := q.
		Order("class_level ASC, class_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "Daftar kelas",
		dto.FromClassModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctl *ClassController) CreateClass(c *fiber.Ctx) error {
	var p dto.ClassCreateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	p.Normalize()
	if err := ctl.Validate.Struct(&p); err != nil {
		return helper.ValidationError(c, err)
	}

	// Unik per (term, program, nama); cek dini biar pesannya enak dibaca,
	// unique index tetap jadi penjaga terakhir.
	var cnt int64
	if err := ctl.DB.WithContext(c.UserContext()).Model(&model.ClassModel{}).
		Where("class_academic_term_id = ? AND class_program_id = ? AND class_name = ?",
			p.ClassAcademicTermID, p.ClassProgramID, p.ClassName).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa nama kelas")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Nama kelas sudah dipakai pada term & program ini")
	}

	ent := p.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat kelas")
	}
	return helper.JsonCreated(c, "Kelas dibuat", dto.FromClassModel(ent))
}

func (ctl *ClassController) UpdateClass(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var ent model.ClassModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("class_id = ?", id).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var p dto.ClassUpdateDTO
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
	return helper.JsonUpdated(c, "Kelas diperbarui", dto.FromClassModel(ent))
}

func (ctl *ClassController) DeleteClass(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Kelas yang masih ditempati siswa tidak boleh dihapus
	var occupied int64
	if err := ctl.DB.WithContext(c.UserContext()).Model(&model.StudentModel{}).
		Where("student_class_id = ?", id).
		Count(&occupied).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa siswa")
	}
	if occupied > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Kelas masih memiliki siswa")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("class_id = ?", id).
		Delete(&model.ClassModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Kelas dihapus", fiber.Map{"class_id": id})
}
