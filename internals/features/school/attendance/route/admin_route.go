// file: internals/features/school/attendance/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attCtl "sekolahku_backend/internals/features/school/attendance/controller"
	attSvc "sekolahku_backend/internals/features/school/attendance/service"
)

// AttendanceAdminRoutes: trigger generate bulanan (admin/staff TU).
func AttendanceAdminRoutes(api fiber.Router, db *gorm.DB, gen *attSvc.Generator) {
	ctl := attCtl.NewAttendanceController(db, nil, gen)

	api.Post("/attendance/generate-month", ctl.GenerateMonth)
}

// AttendanceUserRoutes: read-only sesi & record.
func AttendanceUserRoutes(api fiber.Router, db *gorm.DB, gen *attSvc.Generator) {
	ctl := attCtl.NewAttendanceController(db, nil, gen)

	api.Get("/attendance/sessions", ctl.ListSessions)
	api.Get("/attendance/sessions/:id/records", ctl.ListRecords)
}
