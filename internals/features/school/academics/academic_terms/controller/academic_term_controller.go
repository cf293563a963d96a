// file: internals/features/school/academics/academic_terms/controller/academic_term_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/school/academics/academic_terms/dto"
	model "sekolahku_backend/internals/features/school/academics/academic_terms/model"
	service "sekolahku_backend/internals/features/school/academics/academic_terms/service"
	helper "sekolahku_backend/internals/helpers"
)

/* ============================================
   Controller
============================================ */

type AcademicTermController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAcademicTermController(db *gorm.DB, v *validator.Validate) *AcademicTermController {
	if v == nil {
		v = validator.New()
	}
	return &AcademicTermController{DB: db, Validate: v}
}

/* ============================================
   LIST
   GET /academic-terms
============================================ */

func (ctl *AcademicTermController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.AcademicTermModel{})
	if year := c.Query("year"); year != "" {
		q = q.Where("academic_term_academic_year = ?", year)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.AcademicTermModel
	if err := q.
		Order("academic_term_start_date ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "Daftar tahun akademik",
		dto.FromModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ============================================
   GET CURRENT
   GET /academic-terms/current
============================================ */

func (ctl *AcademicTermController) GetCurrent(c *fiber.Ctx) error {
	term, err := service.ResolveCurrentTerm(c.UserContext(), ctl.DB)
	if err != nil {
		if errors.Is(err, service.ErrNoCurrentTerm) {
			return helper.JsonError(c, fiber.StatusNotFound, "Belum ada term yang berjalan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "Term berjalan", dto.FromModel(*term))
}

/* ============================================
   CREATE
   POST /academic-terms
============================================ */

func (ctl *AcademicTermController) Create(c *fiber.Ctx) error {
	var p dto.AcademicTermCreateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	p.Normalize()
	if err := ctl.Validate.Struct(&p); err != nil {
		return helper.ValidationError(c, err)
	}

	ent := p.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat tahun akademik")
	}
	return helper.JsonCreated(c, "Berhasil membuat tahun akademik", dto.FromModel(ent))
}

/* ============================================
   UPDATE
   PATCH /academic-terms/:id
============================================ */

func (ctl *AcademicTermController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var ent model.AcademicTermModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("academic_term_id = ?", id).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tahun akademik tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var p dto.AcademicTermUpdateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&p); err != nil {
		return helper.ValidationError(c, err)
	}

	p.ApplyUpdates(&ent)
	if ent.AcademicTermEndDate.Before(ent.AcademicTermStartDate) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal akhir harus >= tanggal mulai")
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui data")
	}
	return helper.JsonUpdated(c, "Berhasil memperbarui tahun akademik", dto.FromModel(ent))
}

/* ============================================
   SET CURRENT
   POST /academic-terms/:id/set-current
============================================ */

func (ctl *AcademicTermController) SetCurrent(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	term, err := service.SetCurrentTerm(c.UserContext(), ctl.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tahun akademik tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengganti term berjalan")
	}
	return helper.JsonUpdated(c, "Term berjalan diganti", dto.FromModel(*term))
}

/* ============================================
   DELETE (soft)
   DELETE /academic-terms/:id
============================================ */

func (ctl *AcademicTermController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("academic_term_id = ?", id).
		Delete(&model.AcademicTermModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Tahun akademik tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Tahun akademik dihapus", fiber.Map{"academic_term_id": id})
}
