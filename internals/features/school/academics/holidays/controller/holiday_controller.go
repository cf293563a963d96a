// file: internals/features/school/academics/holidays/controller/holiday_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/school/academics/holidays/dto"
	model "sekolahku_backend/internals/features/school/academics/holidays/model"
	service "sekolahku_backend/internals/features/school/academics/holidays/service"
	helper "sekolahku_backend/internals/helpers"
)

/* ============================================
   Controller
============================================ */

type HolidayController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Resolver *service.Resolver
}

func NewHolidayController(db *gorm.DB, v *validator.Validate, r *service.Resolver) *HolidayController {
	if v == nil {
		v = validator.New()
	}
	return &HolidayController{DB: db, Validate: v, Resolver: r}
}

/* ============================================
   CALENDAR (hasil resolusi gabungan)
   GET /holidays/calendar?year=2026&month=4
============================================ */

func (ctl *HolidayController) Calendar(c *fiber.Ctx) error {
	year := c.QueryInt("year", 0)
	month := c.QueryInt("month", 0) // 0 = setahun penuh

	window, err := service.NewWindow(year, month)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter year/month tidak valid")
	}

	result, err := ctl.Resolver.Resolve(c.UserContext(), window)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal meresolusi kalender libur")
	}
	return helper.JsonOK(c, "Kalender hari libur", result)
}

/* ============================================
   HOLIDAY RANGES
============================================ */

func (ctl *HolidayController) ListRanges(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.HolidayRangeModel{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.HolidayRangeModel
	if err := q.
		Order("holiday_range_start_date ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "Daftar libur rentang",
		dto.FromRangeModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctl *HolidayController) CreateRange(c *fiber.Ctx) error {
	var p dto.HolidayRangeCreateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	p.Normalize()
	if err := ctl.Validate.Struct(&p); err != nil {
		return helper.ValidationError(c, err)
	}

	ent := p.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat libur rentang")
	}
	return helper.JsonCreated(c, "Libur rentang dibuat", dto.FromRangeModel(ent))
}

func (ctl *HolidayController) UpdateRange(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var ent model.HolidayRangeModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("holiday_range_id = ?", id).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Libur rentang tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var p dto.HolidayRangeUpdateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&p); err != nil {
		return helper.ValidationError(c, err)
	}

	p.ApplyUpdates(&ent)
	if ent.HolidayRangeEndDate.Before(ent.HolidayRangeStartDate) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal akhir harus >= tanggal mulai")
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui data")
	}
	return helper.JsonUpdated(c, "Libur rentang diperbarui", dto.FromRangeModel(ent))
}

func (ctl *HolidayController) DeleteRange(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("holiday_range_id = ?", id).
		Delete(&model.HolidayRangeModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Libur rentang tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Libur rentang dihapus", fiber.Map{"holiday_range_id": id})
}

/* ============================================
   HOLIDAY DAYS (tanggal tunggal)
============================================ */

func (ctl *HolidayController) ListDays(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.HolidayDayModel{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.HolidayDayModel
	if err := q.
		Order("holiday_day_date ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "Daftar libur harian",
		dto.FromDayModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctl *HolidayController) CreateDay(c *fiber.Ctx) error {
	var p dto.HolidayDayCreateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	p.Normalize()
	if err := ctl.Validate.Struct(&p); err != nil {
		return helper.ValidationError(c, err)
	}

	ent := p.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat libur harian")
	}
	return helper.JsonCreated(c, "Libur harian dibuat", dto.FromDayModel(ent))
}

func (ctl *HolidayController) UpdateDay(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var ent model.HolidayDayModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("holiday_day_id = ?", id).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Libur harian tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var p dto.HolidayDayUpdateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&p); err != nil {
		return helper.ValidationError(c, err)
	}

	p.ApplyUpdates(&ent)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui data")
	}
	return helper.JsonUpdated(c, "Libur harian diperbarui", dto.FromDayModel(ent))
}

func (ctl *HolidayController) DeleteDay(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("holiday_day_id = ?", id).
		Delete(&model.HolidayDayModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Libur harian tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Libur harian dihapus", fiber.Map{"holiday_day_id": id})
}

/* ============================================
   WEEKLY CLOSURES
============================================ */

func (ctl *HolidayController) ListClosures(c *fiber.Ctx) error {
	var rows []model.WeeklyClosureModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("weekly_closure_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "Daftar libur mingguan", dto.FromClosureModels(rows))
}

func (ctl *HolidayController) CreateClosure(c *fiber.Ctx) error {
	var p dto.WeeklyClosureCreateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	p.Normalize()
	if err := ctl.Validate.Struct(&p); err != nil {
		return helper.ValidationError(c, err)
	}

	ent := p.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat libur mingguan")
	}
	return helper.JsonCreated(c, "Libur mingguan dibuat", dto.FromClosureModel(ent))
}

func (ctl *HolidayController) UpdateClosure(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var ent model.WeeklyClosureModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("weekly_closure_id = ?", id).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Libur mingguan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var p dto.WeeklyClosureUpdateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&p); err != nil {
		return helper.ValidationError(c, err)
	}

	p.ApplyUpdates(&ent)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui data")
	}
	return helper.JsonUpdated(c, "Libur mingguan diperbarui", dto.FromClosureModel(ent))
}

func (ctl *HolidayController) DeleteClosure(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("weekly_closure_id = ?", id).
		Delete(&model.WeeklyClosureModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Libur mingguan tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Libur mingguan dihapus", fiber.Map{"weekly_closure_id": id})
}
