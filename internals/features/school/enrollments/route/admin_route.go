// file: internals/features/school/enrollments/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollCtl "sekolahku_backend/internals/features/school/enrollments/controller"
)

// EnrollmentAdminRoutes: mutasi terbatas (hanya nilai akhir).
func EnrollmentAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := enrollCtl.NewEnrollmentController(db, nil)

	api.Patch("/enrollments/:id/final-score", ctl.AttachFinalScore)
}

// EnrollmentUserRoutes: read-only riwayat.
func EnrollmentUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := enrollCtl.NewEnrollmentController(db, nil)

	api.Get("/enrollments", ctl.List)
	api.Get("/students/:student_id/enrollments", ctl.ListByStudent)
}
