// file: internals/features/school/attendance/service/month_plan_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMonthPlan_April2026(t *testing.T) {
	// Libur: 1 April (Hari Raya Nyepi bergeser), 10-12 April (Idul Fitri).
	// 12 April jatuh hari Minggu; tetap dihitung libur, bukan skip Minggu.
	excluded := map[string]string{
		"2026-04-01": "Libur Sekolah",
		"2026-04-10": "Idul Fitri",
		"2026-04-11": "Idul Fitri",
		"2026-04-12": "Idul Fitri",
	}

	plan := BuildMonthPlan(2026, time.April, excluded)

	assert.Equal(t, 4, plan.SkippedHolidays)
	assert.Equal(t, 3, plan.SkippedSundays) // 5, 19, 26 April
	assert.Len(t, plan.Days, 23)            // 30 - 4 libur - 3 Minggu

	assert.Equal(t, []string{"2026-04-01", "2026-04-10", "2026-04-11", "2026-04-12"}, plan.SkippedHolidayDates)

	// Urut naik dan mulai dari tanggal 2 (tanggal 1 libur)
	require.NotEmpty(t, plan.Days)
	assert.Equal(t, "2026-04-02", plan.Days[0].Format("2006-01-02"))
	for i := 1; i < len(plan.Days); i++ {
		assert.True(t, plan.Days[i].After(plan.Days[i-1]))
	}

	// Tidak ada hari Minggu ataupun tanggal libur yang lolos
	for _, d := range plan.Days {
		assert.NotEqual(t, time.Sunday, d.Weekday(), d.Format("2006-01-02"))
		_, holiday := excluded[d.Format("2006-01-02")]
		assert.False(t, holiday, d.Format("2006-01-02"))
	}
}

func TestBuildMonthPlan_NoExclusions(t *testing.T) {
	plan := BuildMonthPlan(2026, time.April, nil)

	assert.Equal(t, 0, plan.SkippedHolidays)
	assert.Equal(t, 4, plan.SkippedSundays) // 5, 12, 19, 26 April
	assert.Len(t, plan.Days, 26)
	assert.Empty(t, plan.SkippedHolidayDates)
}

func TestBuildMonthPlan_FullMonthHoliday(t *testing.T) {
	excluded := map[string]string{}
	for d := 1; d <= 29; d++ {
		excluded[time.Date(2026, time.June, d, 0, 0, 0, 0, time.UTC).Format("2006-01-02")] = "Libur Kenaikan Kelas"
	}
	excluded["2026-06-30"] = "Libur Kenaikan Kelas"

	plan := BuildMonthPlan(2026, time.June, excluded)

	assert.Empty(t, plan.Days)
	assert.Equal(t, 30, plan.SkippedHolidays)
	assert.Equal(t, 0, plan.SkippedSundays)
}

func TestEnsureMonthOpen(t *testing.T) {
	assert.NoError(t, ensureMonthOpen(0))

	// Satu sesi pun yang sudah ada menolak invokasi kedua utuh-utuh
	assert.ErrorIs(t, ensureMonthOpen(1), ErrAlreadyGenerated)
	assert.ErrorIs(t, ensureMonthOpen(23), ErrAlreadyGenerated)
}

func TestMonthBounds(t *testing.T) {
	start, end := MonthBounds(2026, time.April)
	assert.Equal(t, time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC), end)

	// Lintas akhir tahun
	start, end = MonthBounds(2026, time.December)
	assert.Equal(t, time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC), end)
	assert.True(t, start.Before(end))
}
