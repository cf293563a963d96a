// file: internals/features/school/academics/holidays/service/sources.go
package service

import (
	"context"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	m "sekolahku_backend/internals/features/school/academics/holidays/model"
)

/* =========================
   Range source
========================= */

type RangeSource struct{ DB *gorm.DB }

func (RangeSource) Kind() SourceKind { return SourceRange }

func (s RangeSource) Collect(ctx context.Context, w Window) ([]CalendarEntry, error) {
	start, end := w.Bounds()

	var rows []m.HolidayRangeModel
	if err := s.DB.WithContext(ctx).
		Where("holiday_range_is_active AND holiday_range_start_date < ? AND holiday_range_end_date >= ?", end, start).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	var out []CalendarEntry
	for _, r := range rows {
		lo := DateOnly(r.HolidayRangeStartDate)
		hi := DateOnly(r.HolidayRangeEndDate)

		// Rentang terbalik / rusak: lewati diam-diam, jangan gagalkan resolusi
		if hi.Before(lo) {
			log.Printf("[WARN] holiday_range %s dilewati: end sebelum start", r.HolidayRangeID)
			continue
		}

		// Clip ke window
		if lo.Before(start) {
			lo = start
		}
		last := end.AddDate(0, 0, -1)
		if hi.After(last) {
			hi = last
		}

		for d := lo; !d.After(hi); d = d.AddDate(0, 0, 1) {
			out = append(out, CalendarEntry{Date: d, Label: r.HolidayRangeTitle, Source: SourceRange})
		}
	}
	return out, nil
}

/* =========================
   Single-day source
========================= */

type DaySource struct{ DB *gorm.DB }

func (DaySource) Kind() SourceKind { return SourceDay }

func (s DaySource) Collect(ctx context.Context, w Window) ([]CalendarEntry, error) {
	start, end := w.Bounds()

	var rows []m.HolidayDayModel
	if err := s.DB.WithContext(ctx).
		Where("holiday_day_is_active AND holiday_day_date >= ? AND holiday_day_date < ?", start, end).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	var out []CalendarEntry
	for _, r := range rows {
		if strings.TrimSpace(r.HolidayDayReason) == "" {
			log.Printf("[WARN] holiday_day %s dilewati: reason kosong", r.HolidayDayID)
			continue
		}
		out = append(out, CalendarEntry{Date: DateOnly(r.HolidayDayDate), Label: r.HolidayDayReason, Source: SourceDay})
	}
	return out, nil
}

/* =========================
   Weekly closure source
========================= */

type WeeklySource struct{ DB *gorm.DB }

func (WeeklySource) Kind() SourceKind { return SourceWeekly }

func (s WeeklySource) Collect(ctx context.Context, w Window) ([]CalendarEntry, error) {
	var rows []m.WeeklyClosureModel
	if err := s.DB.WithContext(ctx).
		Where("weekly_closure_is_active").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	start, end := w.Bounds()

	var out []CalendarEntry
	for _, r := range rows {
		for _, dow := range r.WeeklyClosureDays {
			if dow < 1 || dow > 7 {
				log.Printf("[WARN] weekly_closure %s: day %d di luar 1..7, dilewati", r.WeeklyClosureID, dow)
				continue
			}
			for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
				if isoWeekday(d) == int(dow) {
					out = append(out, CalendarEntry{Date: d, Label: r.WeeklyClosureLabel, Source: SourceWeekly})
				}
			}
		}
	}
	return out, nil
}

// ISO weekday: 1=Senin .. 7=Minggu.
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
