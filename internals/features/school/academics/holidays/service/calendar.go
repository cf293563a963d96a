// file: internals/features/school/academics/holidays/service/calendar.go
package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"
)

/* =========================
   Entry & Window
========================= */

type SourceKind string

const (
	SourceNational SourceKind = "national"
	SourceRange    SourceKind = "range"
	SourceDay      SourceKind = "day"
	SourceWeekly   SourceKind = "weekly"
)

// CalendarEntry: satu tanggal non-instruksional hasil resolusi.
// Tanggal selalu UTC midnight (date-only).
type CalendarEntry struct {
	Date   time.Time  `json:"date"`
	Label  string     `json:"label"`
	Source SourceKind `json:"source"`
}

func (e CalendarEntry) DateKey() string { return e.Date.Format("2006-01-02") }

// Window: jendela resolusi — satu tahun penuh, atau tahun+bulan.
type Window struct {
	Year  int
	Month int // 0 = setahun penuh, 1..12 = satu bulan
}

func NewWindow(year, month int) (Window, error) {
	if year < 2000 || year > 2100 {
		return Window{}, fmt.Errorf("invalid year: %d", year)
	}
	if month < 0 || month > 12 {
		return Window{}, fmt.Errorf("invalid month: %d", month)
	}
	return Window{Year: year, Month: month}, nil
}

// Bounds: [start, end) dalam UTC midnight.
func (w Window) Bounds() (time.Time, time.Time) {
	if w.Month == 0 {
		start := time.Date(w.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(1, 0, 0)
	}
	start := time.Date(w.Year, time.Month(w.Month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

func (w Window) Contains(d time.Time) bool {
	start, end := w.Bounds()
	d = DateOnly(d)
	return !d.Before(start) && d.Before(end)
}

// DateOnly menormalkan ke UTC midnight.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

/* =========================
   Source strategy
========================= */

// HolidaySource: satu implementasi per jenis sumber (national/range/day/weekly).
// Menambah sumber baru (mis. libur daerah) = menambah satu implementasi,
// tanpa menyentuh langkah merge.
type HolidaySource interface {
	Kind() SourceKind
	Collect(ctx context.Context, w Window) ([]CalendarEntry, error)
}

/* =========================
   Resolver
========================= */

type Resolver struct {
	sources []HolidaySource
}

func NewResolver(sources ...HolidaySource) *Resolver {
	return &Resolver{sources: sources}
}

// CalendarResult: daftar tanggal non-instruksional terurut + penanda sumber
// yang gagal (degradasi recoverable, bukan error fatal).
type CalendarResult struct {
	Entries  []CalendarEntry `json:"entries"`
	Degraded []SourceKind    `json:"degraded,omitempty"`
}

// ExcludedDates: peta "2006-01-02" → label, untuk lookup cepat oleh generator.
// Tanggal yang muncul di lebih dari satu entry memakai label pertama (urutan sort).
func (r *CalendarResult) ExcludedDates() map[string]string {
	out := make(map[string]string, len(r.Entries))
	for _, e := range r.Entries {
		if _, ok := out[e.DateKey()]; !ok {
			out[e.DateKey()] = e.Label
		}
	}
	return out
}

// Resolve menggabungkan seluruh sumber ke dalam satu daftar terurut bebas
// duplikat. Sumber yang gagal dicatat sebagai degradasi dan dilewati; resolusi
// tetap jalan dengan sumber sisanya.
func (r *Resolver) Resolve(ctx context.Context, w Window) (*CalendarResult, error) {
	res := &CalendarResult{}

	var all []CalendarEntry
	for _, src := range r.sources {
		entries, err := src.Collect(ctx, w)
		if err != nil {
			log.Printf("[WARN] holiday source %s degraded: %v", src.Kind(), err)
			res.Degraded = append(res.Degraded, src.Kind())
			continue
		}
		all = append(all, entries...)
	}

	res.Entries = mergeEntries(all)
	return res, nil
}

// mergeEntries: sort by (date, label, source) lalu buang duplikat persis.
// Tanggal sama dengan label berbeda sengaja DIBIARKAN dobel: libur nasional
// dan libur sekolah di tanggal yang sama sama-sama layak tampil.
func mergeEntries(entries []CalendarEntry) []CalendarEntry {
	if len(entries) == 0 {
		return []CalendarEntry{}
	}

	for i := range entries {
		entries[i].Date = DateOnly(entries[i].Date)
	}

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.Before(entries[j].Date)
		}
		if entries[i].Label != entries[j].Label {
			return entries[i].Label < entries[j].Label
		}
		return entries[i].Source < entries[j].Source
	})

	out := entries[:1]
	for _, e := range entries[1:] {
		last := out[len(out)-1]
		if e.Date.Equal(last.Date) && e.Label == last.Label && e.Source == last.Source {
			continue
		}
		out = append(out, e)
	}
	return out
}
