// file: internals/features/school/classes/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classCtl "sekolahku_backend/internals/features/school/classes/controller"
)

// ClassAdminRoutes: pengelolaan program, kelas, dan siswa (admin/staff TU).
func ClassAdminRoutes(api fiber.Router, db *gorm.DB) {
	cc := classCtl.NewClassController(db, nil)
	sc := classCtl.NewStudentController(db, nil)

	api.Post("/programs", cc.CreateProgram)
	api.Patch("/programs/:id", cc.UpdateProgram)

	api.Post("/classes", cc.CreateClass)
	api.Patch("/classes/:id", cc.UpdateClass)
	api.Delete("/classes/:id", cc.DeleteClass)

	api.Post("/students", sc.Create)
	api.Patch("/students/:id", sc.Update)
	api.Post("/students/:id/mark-advance", sc.MarkAdvance)
}

// ClassUserRoutes: read-only.
func ClassUserRoutes(api fiber.Router, db *gorm.DB) {
	cc := classCtl.NewClassController(db, nil)
	sc := classCtl.NewStudentController(db, nil)

	api.Get("/programs", cc.ListPrograms)
	api.Get("/classes", cc.ListClasses)
	api.Get("/students", sc.List)
}
