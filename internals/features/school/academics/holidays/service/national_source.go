// file: internals/features/school/academics/holidays/service/national_source.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"
)

/* =========================================
   National holiday source (dataset publik)

   Format respon mengikuti API hari-libur Indonesia:
   [{"holiday_date":"2026-04-01","holiday_name":"...","is_national_holiday":true}, ...]

   Entri dengan is_national_holiday=false adalah cuti bersama /
   pengganti; dibuang, hanya libur nasional asli yang dipakai.
========================================= */

type nationalAPIHoliday struct {
	HolidayDate       string `json:"holiday_date"`
	HolidayName       string `json:"holiday_name"`
	IsNationalHoliday bool   `json:"is_national_holiday"`
}

type NationalSource struct {
	BaseURL string
	Client  *http.Client

	mu    sync.Mutex
	cache map[int][]CalendarEntry // per tahun, hanya diisi saat fetch sukses
}

func NewNationalSource(baseURL string) *NationalSource {
	return &NationalSource{
		BaseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		Client:  &http.Client{Timeout: 10 * time.Second},
		cache:   map[int][]CalendarEntry{},
	}
}

func (*NationalSource) Kind() SourceKind { return SourceNational }

func (s *NationalSource) Collect(ctx context.Context, w Window) ([]CalendarEntry, error) {
	year, err := s.fetchYear(ctx, w.Year)
	if err != nil {
		return nil, err
	}

	var out []CalendarEntry
	for _, e := range year {
		if w.Contains(e.Date) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *NationalSource) fetchYear(ctx context.Context, year int) ([]CalendarEntry, error) {
	s.mu.Lock()
	if cached, ok := s.cache[year]; ok {
		s.mu.Unlock()
		return cached, nil
	}
	s.mu.Unlock()

	url := fmt.Sprintf("%s/api?year=%d", s.BaseURL, year)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("holiday API %s: status %d", url, resp.StatusCode)
	}

	var raw []nationalAPIHoliday
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("holiday API decode: %w", err)
	}

	entries := make([]CalendarEntry, 0, len(raw))
	for _, h := range raw {
		if !h.IsNationalHoliday {
			continue // cuti bersama / observed duplicate
		}
		d, err := time.Parse("2006-01-02", strings.TrimSpace(h.HolidayDate))
		if err != nil {
			continue
		}
		name := strings.TrimSpace(h.HolidayName)
		if name == "" {
			continue
		}
		entries = append(entries, CalendarEntry{Date: DateOnly(d), Label: name, Source: SourceNational})
	}

	s.mu.Lock()
	s.cache[year] = entries
	s.mu.Unlock()
	return entries, nil
}
