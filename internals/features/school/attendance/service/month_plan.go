// file: internals/features/school/attendance/service/month_plan.go
package service

import (
	"time"
)

/* =========================================
   Rencana satu bulan (murni, tanpa DB)
========================================= */

type MonthPlan struct {
	// Hari instruksional, urut tanggal naik (UTC midnight)
	Days []time.Time

	SkippedSundays      int
	SkippedHolidays     int
	SkippedHolidayDates []string // "2006-01-02"
}

// BuildMonthPlan menyisir seluruh tanggal pada (year, month) urut naik.
// Tanggal yang masuk exclusion set dihitung libur lebih dulu; sisanya yang
// jatuh hari Minggu dihitung skip Minggu. Tanggal yang kebetulan libur DAN
// Minggu diatribusikan ke libur, supaya hitungan libur selalu utuh.
func BuildMonthPlan(year int, month time.Month, excluded map[string]string) MonthPlan {
	plan := MonthPlan{}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		if _, ok := excluded[key]; ok {
			plan.SkippedHolidays++
			plan.SkippedHolidayDates = append(plan.SkippedHolidayDates, key)
			continue
		}
		if d.Weekday() == time.Sunday {
			plan.SkippedSundays++
			continue
		}
		plan.Days = append(plan.Days, d)
	}
	return plan
}

// MonthBounds: [start, end) UTC midnight untuk guard & query rentang.
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
