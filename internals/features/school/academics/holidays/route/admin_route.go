// file: internals/features/school/academics/holidays/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	holidayCtl "sekolahku_backend/internals/features/school/academics/holidays/controller"
	holidaySvc "sekolahku_backend/internals/features/school/academics/holidays/service"
)

// HolidayAdminRoutes: pengelolaan sumber libur (admin/staff TU).
func HolidayAdminRoutes(api fiber.Router, db *gorm.DB, resolver *holidaySvc.Resolver) {
	ctl := holidayCtl.NewHolidayController(db, nil, resolver)

	api.Post("/holidays/ranges", ctl.CreateRange)
	api.Patch("/holidays/ranges/:id", ctl.UpdateRange)
	api.Delete("/holidays/ranges/:id", ctl.DeleteRange)

	api.Post("/holidays/days", ctl.CreateDay)
	api.Patch("/holidays/days/:id", ctl.UpdateDay)
	api.Delete("/holidays/days/:id", ctl.DeleteDay)

	api.Post("/holidays/weekly-closures", ctl.CreateClosure)
	api.Patch("/holidays/weekly-closures/:id", ctl.UpdateClosure)
	api.Delete("/holidays/weekly-closures/:id", ctl.DeleteClosure)
}

// HolidayUserRoutes: read-only, termasuk hasil resolusi kalender.
func HolidayUserRoutes(api fiber.Router, db *gorm.DB, resolver *holidaySvc.Resolver) {
	ctl := holidayCtl.NewHolidayController(db, nil, resolver)

	api.Get("/holidays/calendar", ctl.Calendar)
	api.Get("/holidays/ranges", ctl.ListRanges)
	api.Get("/holidays/days", ctl.ListDays)
	api.Get("/holidays/weekly-closures", ctl.ListClosures)
}
