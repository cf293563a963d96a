// file: internals/features/school/academics/holidays/service/national_source_test.go
package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNationalSource_FilterAndCache(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		assert.Equal(t, "/api", r.URL.Path)
		assert.Equal(t, "2026", r.URL.Query().Get("year"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"holiday_date":"2026-04-10","holiday_name":"Hari Raya Idul Fitri","is_national_holiday":true},
			{"holiday_date":"2026-04-13","holiday_name":"Cuti Bersama Idul Fitri","is_national_holiday":false},
			{"holiday_date":"2026-01-01","holiday_name":"Tahun Baru Masehi","is_national_holiday":true},
			{"holiday_date":"bukan-tanggal","holiday_name":"Rusak","is_national_holiday":true}
		]`))
	}))
	defer srv.Close()

	src := NewNationalSource(srv.URL)

	w, _ := NewWindow(2026, 4)
	entries, err := src.Collect(context.Background(), w)
	require.NoError(t, err)

	// Cuti bersama dan tanggal rusak dibuang; Januari di luar window
	require.Len(t, entries, 1)
	assert.Equal(t, time.Date(2026, time.April, 10, 0, 0, 0, 0, time.UTC), entries[0].Date)
	assert.Equal(t, "Hari Raya Idul Fitri", entries[0].Label)
	assert.Equal(t, SourceNational, entries[0].Source)

	// Window lain di tahun sama: dilayani dari cache
	wJan, _ := NewWindow(2026, 1)
	entries, err = src.Collect(context.Background(), wJan)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Tahun Baru Masehi", entries[0].Label)

	assert.Equal(t, 1, hits)
}

func TestNationalSource_ErrorNotCached(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if hits == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"holiday_date":"2026-04-10","holiday_name":"Idul Fitri","is_national_holiday":true}]`))
	}))
	defer srv.Close()

	src := NewNationalSource(srv.URL)
	w, _ := NewWindow(2026, 4)

	_, err := src.Collect(context.Background(), w)
	require.Error(t, err)

	// Fetch pertama gagal tidak meracuni cache; retry berikutnya sukses
	entries, err := src.Collect(context.Background(), w)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, 2, hits)
}
