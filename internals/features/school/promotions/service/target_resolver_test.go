// file: internals/features/school/promotions/service/target_resolver_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	classModel "sekolahku_backend/internals/features/school/classes/model"
)

func cls(termID, programID uuid.UUID, name string, level int) classModel.ClassModel {
	return classModel.ClassModel{
		ClassID:             uuid.New(),
		ClassAcademicTermID: termID,
		ClassProgramID:      programID,
		ClassName:           name,
		ClassLevel:          level,
	}
}

func TestResolveTargetClass(t *testing.T) {
	curTerm := uuid.New()
	nextTerm := uuid.New()
	ipa := uuid.New()
	ips := uuid.New()

	current := cls(curTerm, ipa, "Kelas 11 A", 11)
	nextClasses := []classModel.ClassModel{
		cls(nextTerm, ips, "Kelas 12 A", 12), // program beda
		cls(nextTerm, ipa, "Kelas 11 A", 11), // jenjang sama
		cls(nextTerm, ipa, "Kelas 12 A", 12), // target yang benar
	}

	got := ResolveTargetClass(current, nextClasses)
	require.NotNil(t, got)
	assert.Equal(t, ipa, got.ClassProgramID)
	assert.Equal(t, 12, got.Level())
}

func TestResolveTargetClass_NoTarget(t *testing.T) {
	curTerm := uuid.New()
	nextTerm := uuid.New()
	ipa := uuid.New()

	// Jenjang tertinggi: tidak ada kelas 13
	current := cls(curTerm, ipa, "Kelas 12 A", 12)
	nextClasses := []classModel.ClassModel{
		cls(nextTerm, ipa, "Kelas 12 A", 12),
	}
	assert.Nil(t, ResolveTargetClass(current, nextClasses))
}

func TestResolveTargetClass_LevelFromName(t *testing.T) {
	curTerm := uuid.New()
	nextTerm := uuid.New()
	ipa := uuid.New()

	// class_level belum di-backfill: jenjang diambil dari nama
	current := cls(curTerm, ipa, "Kelas 7 B", 0)
	nextClasses := []classModel.ClassModel{
		cls(nextTerm, ipa, "Kelas 8 B", 0),
	}

	got := ResolveTargetClass(current, nextClasses)
	require.NotNil(t, got)
	assert.Equal(t, "Kelas 8 B", got.ClassName)
}

func TestResolveTargetClass_UnparseableName(t *testing.T) {
	curTerm := uuid.New()
	nextTerm := uuid.New()
	ipa := uuid.New()

	// Nama tanpa jenjang → skip, bukan salah pilih
	current := cls(curTerm, ipa, "Tahfidz Lanjutan", 0)
	nextClasses := []classModel.ClassModel{
		cls(nextTerm, ipa, "Kelas 1 A", 1),
	}
	assert.Nil(t, ResolveTargetClass(current, nextClasses))
}
