// file: internals/features/school/promotions/controller/promotion_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	termSvc "sekolahku_backend/internals/features/school/academics/academic_terms/service"
	dto "sekolahku_backend/internals/features/school/promotions/dto"
	service "sekolahku_backend/internals/features/school/promotions/service"
	helper "sekolahku_backend/internals/helpers"
)

/* ============================================
   Controller
============================================ */

type PromotionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Promoter *service.Promoter
}

func NewPromotionController(db *gorm.DB, v *validator.Validate, p *service.Promoter) *PromotionController {
	if v == nil {
		v = validator.New()
	}
	return &PromotionController{DB: db, Validate: v, Promoter: p}
}

/* ============================================
   RUN
   POST /promotions/run
============================================ */

// Run menjalankan batch kenaikan kelas dari term berjalan ke term berikutnya.
// Tanpa term berikutnya (atau term berikutnya tanpa kelas) batch ditolak 409.
// Gagal di tengah batch mengembalikan 500 beserta laporan parsial; run ulang
// melanjutkan siswa yang belum diproses.
func (ctl *PromotionController) Run(c *fiber.Ctx) error {
	var p dto.PromotionRunDTO
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&p); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
		}
	}

	current, err := termSvc.ResolveCurrentTerm(c.UserContext(), ctl.DB)
	if err != nil {
		if errors.Is(err, termSvc.ErrNoCurrentTerm) {
			return helper.JsonError(c, fiber.StatusConflict, "Belum ada term yang berjalan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil term berjalan")
	}

	report, err := ctl.Promoter.Run(c.UserContext(), *current, p.ClassID)
	switch {
	case err == nil:
		log.Printf("[INFO] promosi term=%s: naik=%d, skip_no_target=%d, skip_not_marked=%d, sudah_diproses=%d",
			report.CurrentTermID, report.Advanced, report.SkippedNoTargetClass,
			report.SkippedNotMarked, report.AlreadyProcessed)
		return helper.JsonOK(c, "Kenaikan kelas selesai", report)

	case errors.Is(err, termSvc.ErrNoNextTerm):
		return helper.JsonError(c, fiber.StatusConflict, "Tidak ada term berikutnya; buat term tujuan dulu")

	case errors.Is(err, service.ErrNoNextTermClasses):
		return helper.JsonError(c, fiber.StatusConflict, "Term berikutnya belum punya kelas; buat kelas tujuan dulu")

	default:
		log.Printf("[ERROR] promosi gagal: %v", err)
		if report != nil {
			return helper.JsonErrorWithData(c, fiber.StatusInternalServerError,
				"Promosi terhenti di tengah jalan; lihat laporan parsial", report)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menjalankan kenaikan kelas")
	}
}

/* ============================================
   RESET CYCLE
   POST /promotions/reset
============================================ */

// ResetCycle membuka siklus kenaikan baru: siswa processed kembali eligible.
// Dipanggil setelah term berjalan diganti ke term baru.
func (ctl *PromotionController) ResetCycle(c *fiber.Ctx) error {
	n, err := ctl.Promoter.ResetCycle(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mereset siklus kenaikan")
	}
	log.Printf("[INFO] siklus kenaikan direset: %d siswa kembali eligible", n)
	return helper.JsonOK(c, "Siklus kenaikan direset", fiber.Map{"students_reset": n})
}
