// file: internals/features/school/promotions/service/promotion_outcomes_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	classModel "sekolahku_backend/internals/features/school/classes/model"
	enrollModel "sekolahku_backend/internals/features/school/enrollments/model"
)

func TestClassifyStudent(t *testing.T) {
	cases := []struct {
		name      string
		state     classModel.PromotionState
		marked    bool
		hasTarget bool
		want      Outcome
	}{
		{"eligible + marked + target", classModel.PromotionStateEligible, true, true, OutcomeAdvanced},
		{"eligible tanpa penanda", classModel.PromotionStateEligible, false, true, OutcomeSkippedNotMarked},
		{"eligible tanpa kelas tujuan", classModel.PromotionStateEligible, true, false, OutcomeSkippedNoTargetClass},
		{"processed menang atas penanda", classModel.PromotionStateProcessed, true, true, OutcomeAlreadyProcessed},
		{"processed tanpa penanda pun tetap processed", classModel.PromotionStateProcessed, false, false, OutcomeAlreadyProcessed},
		{"tanpa penanda DAN tanpa tujuan: penanda dicek dulu", classModel.PromotionStateEligible, false, false, OutcomeSkippedNotMarked},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyStudent(tc.state, tc.marked, tc.hasTarget))
		})
	}
}

func TestAlreadyProcessedOutcomes(t *testing.T) {
	fromClass := uuid.New()
	toClass := uuid.New()

	hist := func(studentID uuid.UUID) enrollModel.StudentEnrollmentModel {
		return enrollModel.StudentEnrollmentModel{
			StudentEnrollmentStudentID: studentID,
			StudentEnrollmentClassID:   fromClass,
			StudentEnrollmentAdvanced:  true,
		}
	}
	student := func(id uuid.UUID, name string, state classModel.PromotionState) classModel.StudentModel {
		return classModel.StudentModel{
			StudentID:             id,
			StudentName:           name,
			StudentClassID:        &toClass,
			StudentPromotionState: state,
		}
	}

	budi := uuid.New()
	citra := uuid.New()
	dewi := uuid.New()

	t.Run("siswa yang sudah naik dilaporkan already_processed", func(t *testing.T) {
		out := alreadyProcessedOutcomes(
			[]enrollModel.StudentEnrollmentModel{hist(budi)},
			[]classModel.StudentModel{student(budi, "Budi", classModel.PromotionStateProcessed)},
			map[uuid.UUID]bool{},
		)
		require.Len(t, out, 1)
		assert.Equal(t, OutcomeAlreadyProcessed, out[0].Outcome)
		assert.Equal(t, budi, out[0].StudentID)
		assert.Equal(t, fromClass, out[0].FromClassID)
		require.NotNil(t, out[0].ToClassID)
		assert.Equal(t, toClass, *out[0].ToClassID)
	})

	t.Run("siswa yang sudah masuk laporan tidak didobel", func(t *testing.T) {
		out := alreadyProcessedOutcomes(
			[]enrollModel.StudentEnrollmentModel{hist(budi)},
			[]classModel.StudentModel{student(budi, "Budi", classModel.PromotionStateProcessed)},
			map[uuid.UUID]bool{budi: true},
		)
		assert.Empty(t, out)
	})

	t.Run("state eligible (siklus baru dibuka) tidak dilaporkan", func(t *testing.T) {
		out := alreadyProcessedOutcomes(
			[]enrollModel.StudentEnrollmentModel{hist(citra)},
			[]classModel.StudentModel{student(citra, "Citra", classModel.PromotionStateEligible)},
			map[uuid.UUID]bool{},
		)
		assert.Empty(t, out)
	})

	t.Run("tanpa riwayat advanced term berjalan: bukan siswa siklus ini", func(t *testing.T) {
		out := alreadyProcessedOutcomes(
			nil,
			[]classModel.StudentModel{student(dewi, "Dewi", classModel.PromotionStateProcessed)},
			map[uuid.UUID]bool{},
		)
		assert.Empty(t, out)
	})

	t.Run("campuran: hanya yang processed + punya riwayat yang lapor", func(t *testing.T) {
		out := alreadyProcessedOutcomes(
			[]enrollModel.StudentEnrollmentModel{hist(budi), hist(citra)},
			[]classModel.StudentModel{
				student(budi, "Budi", classModel.PromotionStateProcessed),
				student(citra, "Citra", classModel.PromotionStateEligible),
				student(dewi, "Dewi", classModel.PromotionStateProcessed),
			},
			map[uuid.UUID]bool{},
		)
		require.Len(t, out, 1)
		assert.Equal(t, budi, out[0].StudentID)
	})
}
