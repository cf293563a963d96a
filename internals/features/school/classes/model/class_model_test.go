// file: internals/features/school/classes/model/class_model_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractLevel(t *testing.T) {
	cases := []struct {
		name string
		want int
	}{
		{"Kelas 11 A", 11},
		{"Kelas 7B", 7},
		{"XII IPA 1", 1}, // angka romawi tidak dikenali; angka pertama yang dipakai
		{"Tahfidz Lanjutan", 0},
		{"", 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ExtractLevel(tc.name), tc.name)
	}
}

func TestClassLevel(t *testing.T) {
	// class_level eksplisit menang atas parsing nama
	c := ClassModel{ClassName: "Kelas 11 A", ClassLevel: 12}
	assert.Equal(t, 12, c.Level())

	// 0 = backfill dari nama
	c = ClassModel{ClassName: "Kelas 11 A"}
	assert.Equal(t, 11, c.Level())

	c = ClassModel{ClassName: "Tahfidz Lanjutan"}
	assert.Equal(t, 0, c.Level())
}
