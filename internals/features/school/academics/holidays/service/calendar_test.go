// file: internals/features/school/academics/holidays/service/calendar_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/* =========================
   Fake source
========================= */

type fakeSource struct {
	kind    SourceKind
	entries []CalendarEntry
	err     error
}

func (f fakeSource) Kind() SourceKind { return f.kind }

func (f fakeSource) Collect(ctx context.Context, w Window) ([]CalendarEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.entries, nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

/* =========================
   Window
========================= */

func TestNewWindow(t *testing.T) {
	_, err := NewWindow(1999, 4)
	assert.Error(t, err)

	_, err = NewWindow(2026, 13)
	assert.Error(t, err)

	w, err := NewWindow(2026, 0) // setahun penuh
	require.NoError(t, err)
	start, end := w.Bounds()
	assert.Equal(t, day(2026, time.January, 1), start)
	assert.Equal(t, day(2027, time.January, 1), end)

	w, err = NewWindow(2026, 4)
	require.NoError(t, err)
	start, end = w.Bounds()
	assert.Equal(t, day(2026, time.April, 1), start)
	assert.Equal(t, day(2026, time.May, 1), end)

	assert.True(t, w.Contains(day(2026, time.April, 30)))
	assert.False(t, w.Contains(day(2026, time.May, 1)))
}

/* =========================
   Resolve: merge & dedupe
========================= */

func TestResolve_MergeSortDedupe(t *testing.T) {
	w, _ := NewWindow(2026, 4)

	r := NewResolver(
		fakeSource{kind: SourceNational, entries: []CalendarEntry{
			{Date: day(2026, time.April, 10), Label: "Idul Fitri", Source: SourceNational},
		}},
		fakeSource{kind: SourceRange, entries: []CalendarEntry{
			{Date: day(2026, time.April, 10), Label: "Libur Idul Fitri", Source: SourceRange},
			{Date: day(2026, time.April, 11), Label: "Libur Idul Fitri", Source: SourceRange},
			// Duplikat persis: harus terbuang
			{Date: day(2026, time.April, 11), Label: "Libur Idul Fitri", Source: SourceRange},
		}},
		fakeSource{kind: SourceDay, entries: []CalendarEntry{
			{Date: day(2026, time.April, 1), Label: "Rapat Guru", Source: SourceDay},
		}},
	)

	res, err := r.Resolve(context.Background(), w)
	require.NoError(t, err)
	assert.Empty(t, res.Degraded)

	// 1 April + (10 April dua label) + 11 April = 4 entri
	require.Len(t, res.Entries, 4)

	// Urut tanggal naik
	assert.Equal(t, day(2026, time.April, 1), res.Entries[0].Date)
	assert.Equal(t, "Rapat Guru", res.Entries[0].Label)

	// Tanggal sama, label beda: keduanya tampil
	assert.Equal(t, day(2026, time.April, 10), res.Entries[1].Date)
	assert.Equal(t, day(2026, time.April, 10), res.Entries[2].Date)
	assert.NotEqual(t, res.Entries[1].Label, res.Entries[2].Label)

	assert.Equal(t, day(2026, time.April, 11), res.Entries[3].Date)

	// Exclusion set: satu key per tanggal
	excluded := res.ExcludedDates()
	assert.Len(t, excluded, 3)
	assert.Contains(t, excluded, "2026-04-10")
	assert.Contains(t, excluded, "2026-04-01")
}

func TestResolve_DegradedSourceSkipped(t *testing.T) {
	w, _ := NewWindow(2026, 4)

	r := NewResolver(
		fakeSource{kind: SourceNational, err: errors.New("api timeout")},
		fakeSource{kind: SourceDay, entries: []CalendarEntry{
			{Date: day(2026, time.April, 3), Label: "Acara Sekolah", Source: SourceDay},
		}},
	)

	res, err := r.Resolve(context.Background(), w)
	require.NoError(t, err) // degradasi bukan error fatal

	assert.Equal(t, []SourceKind{SourceNational}, res.Degraded)
	require.Len(t, res.Entries, 1)
	assert.Equal(t, "Acara Sekolah", res.Entries[0].Label)
}

func TestResolve_AllSourcesEmpty(t *testing.T) {
	w, _ := NewWindow(2026, 4)

	res, err := NewResolver(fakeSource{kind: SourceDay}).Resolve(context.Background(), w)
	require.NoError(t, err)
	assert.Empty(t, res.Entries)
	assert.Empty(t, res.ExcludedDates())
}

func TestMergeEntries_NormalizesTime(t *testing.T) {
	// Entry dengan jam non-midnight dinormalkan dulu sebelum dibandingkan
	entries := []CalendarEntry{
		{Date: time.Date(2026, time.April, 10, 15, 30, 0, 0, time.UTC), Label: "Idul Fitri", Source: SourceNational},
		{Date: day(2026, time.April, 10), Label: "Idul Fitri", Source: SourceNational},
	}

	out := mergeEntries(entries)
	require.Len(t, out, 1)
	assert.Equal(t, day(2026, time.April, 10), out[0].Date)
}

func TestIsoWeekday(t *testing.T) {
	// 6 April 2026 = Senin
	assert.Equal(t, 1, isoWeekday(day(2026, time.April, 6)))
	// 12 April 2026 = Minggu
	assert.Equal(t, 7, isoWeekday(day(2026, time.April, 12)))
}
