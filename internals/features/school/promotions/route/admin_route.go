// file: internals/features/school/promotions/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	promoCtl "sekolahku_backend/internals/features/school/promotions/controller"
	promoSvc "sekolahku_backend/internals/features/school/promotions/service"
)

// PromotionAdminRoutes: mesin kenaikan kelas (admin/staff TU).
func PromotionAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := promoCtl.NewPromotionController(db, nil, &promoSvc.Promoter{DB: db})

	api.Post("/promotions/run", ctl.Run)
	api.Post("/promotions/reset", ctl.ResetCycle)
}
