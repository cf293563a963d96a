// file: internals/features/school/enrollments/controller/enrollment_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/school/enrollments/dto"
	model "sekolahku_backend/internals/features/school/enrollments/model"
	helper "sekolahku_backend/internals/helpers"
)

/* ============================================
   Controller
============================================ */

type EnrollmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewEnrollmentController(db *gorm.DB, v *validator.Validate) *EnrollmentController {
	if v == nil {
		v = validator.New()
	}
	return &EnrollmentController{DB: db, Validate: v}
}

/* ============================================
   LINEAGE PER SISWA
   GET /students/:student_id/enrollments
============================================ */

// ListByStudent menampilkan riwayat kelas siswa lintas term, term paling
// lama dulu, supaya lineage terbaca runtut.
func (ctl *EnrollmentController) ListByStudent(c *fiber.Ctx) error {
	studentID, err := helper.ParseUUIDParam(c, "student_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var rows []model.StudentEnrollmentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("student_enrollment_student_id = ?", studentID).
		Order("student_enrollment_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat")
	}

	return helper.JsonOK(c, "Riwayat kelas siswa", dto.FromModels(rows))
}

/* ============================================
   LIST PER TERM
   GET /enrollments?term_id=&class_id=
============================================ */

func (ctl *EnrollmentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.StudentEnrollmentModel{})
	if termID := c.Query("term_id"); termID != "" {
		q = q.Where("student_enrollment_term_id = ?", termID)
	}
	if classID := c.Query("class_id"); classID != "" {
		q = q.Where("student_enrollment_class_id = ?", classID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.StudentEnrollmentModel
	if err := q.
		Order("student_enrollment_created_at ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "Daftar enrolment",
		dto.FromModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ============================================
   ATTACH FINAL SCORE
   PATCH /enrollments/:id/final-score
============================================ */

// AttachFinalScore menempelkan nilai akhir ke baris riwayat. Ini satu-satunya
// mutasi yang diizinkan pada riwayat; kolom lain tidak pernah disentuh.
func (ctl *EnrollmentController) AttachFinalScore(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var p dto.EnrollmentAttachScoreDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&p); err != nil {
		return helper.ValidationError(c, err)
	}

	var ent model.StudentEnrollmentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("student_enrollment_id = ?", id).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Riwayat enrolment tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if err := ctl.DB.WithContext(c.UserContext()).Model(&ent).
		Update("student_enrollment_final_score", p.StudentEnrollmentFinalScore).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan nilai akhir")
	}
	ent.StudentEnrollmentFinalScore = &p.StudentEnrollmentFinalScore

	return helper.JsonUpdated(c, "Nilai akhir tersimpan", dto.FromModel(ent))
}
