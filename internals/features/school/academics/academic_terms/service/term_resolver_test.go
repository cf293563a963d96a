// file: internals/features/school/academics/academic_terms/service/term_resolver_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "sekolahku_backend/internals/features/school/academics/academic_terms/model"
)

func term(year, name string, start, end time.Time) m.AcademicTermModel {
	return m.AcademicTermModel{
		AcademicTermID:           uuid.New(),
		AcademicTermAcademicYear: year,
		AcademicTermName:         name,
		AcademicTermStartDate:    start,
		AcademicTermEndDate:      end,
	}
}

func d(y int, mo time.Month, dd int) time.Time {
	return time.Date(y, mo, dd, 0, 0, 0, 0, time.UTC)
}

func TestPickNext(t *testing.T) {
	current := term("2025/2026", "Ganjil", d(2025, time.July, 14), d(2025, time.December, 20))
	genap := term("2025/2026", "Genap", d(2026, time.January, 5), d(2026, time.June, 20))
	ganjilNext := term("2026/2027", "Ganjil", d(2026, time.July, 13), d(2026, time.December, 19))

	t.Run("pilih start paling awal setelah term berjalan", func(t *testing.T) {
		picked := PickNext([]m.AcademicTermModel{ganjilNext, genap}, current)
		require.NotNil(t, picked)
		assert.Equal(t, genap.AcademicTermID, picked.AcademicTermID)
	})

	t.Run("term yang mulai sebelum end berjalan tidak dilirik", func(t *testing.T) {
		overlap := term("2025/2026", "Pendek", d(2025, time.November, 1), d(2025, time.December, 1))
		picked := PickNext([]m.AcademicTermModel{overlap}, current)
		assert.Nil(t, picked)
	})

	t.Run("term berjalan sendiri tidak pernah jadi kandidat", func(t *testing.T) {
		picked := PickNext([]m.AcademicTermModel{current}, current)
		assert.Nil(t, picked)
	})

	t.Run("tanpa kandidat", func(t *testing.T) {
		assert.Nil(t, PickNext(nil, current))
	})
}

func TestSortByStartDate(t *testing.T) {
	a := term("2026/2027", "Ganjil", d(2026, time.July, 13), d(2026, time.December, 19))
	b := term("2025/2026", "Ganjil", d(2025, time.July, 14), d(2025, time.December, 20))
	c := term("2025/2026", "Genap", d(2026, time.January, 5), d(2026, time.June, 20))

	terms := []m.AcademicTermModel{a, b, c}
	SortByStartDate(terms)

	assert.Equal(t, b.AcademicTermID, terms[0].AcademicTermID)
	assert.Equal(t, c.AcademicTermID, terms[1].AcademicTermID)
	assert.Equal(t, a.AcademicTermID, terms[2].AcademicTermID)
}
