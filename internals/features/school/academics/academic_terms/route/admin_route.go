// file: internals/features/school/academics/academic_terms/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	termCtl "sekolahku_backend/internals/features/school/academics/academic_terms/controller"
)

// AcademicTermAdminRoutes: pengelolaan tahun akademik (admin/staff TU).
func AcademicTermAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := termCtl.NewAcademicTermController(db, nil)

	api.Post("/academic-terms", ctl.Create)
	api.Patch("/academic-terms/:id", ctl.Update)
	api.Delete("/academic-terms/:id", ctl.Delete)
	api.Post("/academic-terms/:id/set-current", ctl.SetCurrent)
}

// AcademicTermUserRoutes: read-only untuk semua user login.
func AcademicTermUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := termCtl.NewAcademicTermController(db, nil)

	api.Get("/academic-terms", ctl.List)
	api.Get("/academic-terms/current", ctl.GetCurrent)
}
