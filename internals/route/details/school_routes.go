// file: internals/route/details/school_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	termRoute "sekolahku_backend/internals/features/school/academics/academic_terms/route"
	holidaySvc "sekolahku_backend/internals/features/school/academics/holidays/service"
	holidayRoute "sekolahku_backend/internals/features/school/academics/holidays/route"
	attSvc "sekolahku_backend/internals/features/school/attendance/service"
	attRoute "sekolahku_backend/internals/features/school/attendance/route"
	classRoute "sekolahku_backend/internals/features/school/classes/route"
	enrollRoute "sekolahku_backend/internals/features/school/enrollments/route"
	promoRoute "sekolahku_backend/internals/features/school/promotions/route"
)

// BuildCalendarResolver merangkai keempat sumber libur. Sumber nasional
// memegang cache per tahun, jadi resolver dibuat SEKALI di SetupRoutes dan
// dibagikan ke grup user & admin.
func BuildCalendarResolver(db *gorm.DB) *holidaySvc.Resolver {
	return holidaySvc.NewResolver(
		holidaySvc.NewNationalSource(configs.HolidayAPIBaseURL),
		holidaySvc.RangeSource{DB: db},
		holidaySvc.DaySource{DB: db},
		holidaySvc.WeeklySource{DB: db},
	)
}

// SchoolUserRoutes: seluruh endpoint read-only untuk user login.
func SchoolUserRoutes(api fiber.Router, db *gorm.DB, resolver *holidaySvc.Resolver) {
	gen := &attSvc.Generator{DB: db, Calendar: resolver}

	termRoute.AcademicTermUserRoutes(api, db)
	holidayRoute.HolidayUserRoutes(api, db, resolver)
	classRoute.ClassUserRoutes(api, db)
	enrollRoute.EnrollmentUserRoutes(api, db)
	attRoute.AttendanceUserRoutes(api, db, gen)
}

// SchoolAdminRoutes: endpoint mutasi + mesin batch (admin/staff TU).
func SchoolAdminRoutes(api fiber.Router, db *gorm.DB, resolver *holidaySvc.Resolver) {
	gen := &attSvc.Generator{DB: db, Calendar: resolver}

	termRoute.AcademicTermAdminRoutes(api, db)
	holidayRoute.HolidayAdminRoutes(api, db, resolver)
	classRoute.ClassAdminRoutes(api, db)
	enrollRoute.EnrollmentAdminRoutes(api, db)
	attRoute.AttendanceAdminRoutes(api, db, gen)
	promoRoute.PromotionAdminRoutes(api, db)
}
