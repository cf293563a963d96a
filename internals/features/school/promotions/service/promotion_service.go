// file: internals/features/school/promotions/service/promotion_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	termModel "sekolahku_backend/internals/features/school/academics/academic_terms/model"
	termSvc "sekolahku_backend/internals/features/school/academics/academic_terms/service"
	classModel "sekolahku_backend/internals/features/school/classes/model"
	enrollModel "sekolahku_backend/internals/features/school/enrollments/model"
)

var (
	// ErrNoNextTermClasses: term berikutnya ada tapi belum punya kelas sama
	// sekali — batch ditolak utuh, tidak ada gunanya jalan.
	ErrNoNextTermClasses = errors.New("term berikutnya belum punya kelas")
)

/* =========================
   Outcome per siswa
========================= */

type Outcome string

const (
	OutcomeAdvanced             Outcome = "advanced"
	OutcomeSkippedNoTargetClass Outcome = "skipped_no_target_class"
	OutcomeSkippedNotMarked     Outcome = "skipped_not_marked"
	OutcomeAlreadyProcessed     Outcome = "already_processed"
)

type StudentOutcome struct {
	StudentID   uuid.UUID  `json:"student_id"`
	StudentName string     `json:"student_name"`
	FromClassID uuid.UUID  `json:"from_class_id"`
	ToClassID   *uuid.UUID `json:"to_class_id,omitempty"`
	Outcome     Outcome    `json:"outcome"`
}

type PromotionReport struct {
	CurrentTermID uuid.UUID `json:"current_term_id"`
	NextTermID    uuid.UUID `json:"next_term_id"`

	Outcomes []StudentOutcome `json:"outcomes"`

	Advanced             int `json:"advanced"`
	SkippedNoTargetClass int `json:"skipped_no_target_class"`
	SkippedNotMarked     int `json:"skipped_not_marked"`
	AlreadyProcessed     int `json:"already_processed"`
}

func (r *PromotionReport) add(o StudentOutcome) {
	r.Outcomes = append(r.Outcomes, o)
	switch o.Outcome {
	case OutcomeAdvanced:
		r.Advanced++
	case OutcomeSkippedNoTargetClass:
		r.SkippedNoTargetClass++
	case OutcomeSkippedNotMarked:
		r.SkippedNotMarked++
	case OutcomeAlreadyProcessed:
		r.AlreadyProcessed++
	}
}

// ClassifyStudent menentukan hasil transisi satu siswa dari state yang
// terbaca di bawah lock. Urutan cek: processed menang atas segalanya,
// lalu penanda niat, baru ketersediaan kelas tujuan.
func ClassifyStudent(state classModel.PromotionState, marked bool, hasTarget bool) Outcome {
	switch {
	case state == classModel.PromotionStateProcessed:
		return OutcomeAlreadyProcessed
	case !marked:
		return OutcomeSkippedNotMarked
	case !hasTarget:
		return OutcomeSkippedNoTargetClass
	default:
		return OutcomeAdvanced
	}
}

// alreadyProcessedOutcomes menyusun laporan untuk siswa yang sudah naik pada
// siklus ini. Pointer kelas mereka telah pindah ke term tujuan sehingga tidak
// terjaring lewat kelas term berjalan; riwayat advanced term berjalan + state
// processed yang mengidentifikasi mereka. Siswa yang sudah masuk laporan
// (seen) tidak didobel.
func alreadyProcessedOutcomes(history []enrollModel.StudentEnrollmentModel, students []classModel.StudentModel, seen map[uuid.UUID]bool) []StudentOutcome {
	fromByStudent := make(map[uuid.UUID]uuid.UUID, len(history))
	for _, h := range history {
		fromByStudent[h.StudentEnrollmentStudentID] = h.StudentEnrollmentClassID
	}

	out := make([]StudentOutcome, 0, len(students))
	for _, st := range students {
		if seen[st.StudentID] {
			continue
		}
		if st.StudentPromotionState != classModel.PromotionStateProcessed {
			continue
		}
		from, ok := fromByStudent[st.StudentID]
		if !ok {
			continue
		}
		out = append(out, StudentOutcome{
			StudentID:   st.StudentID,
			StudentName: st.StudentName,
			FromClassID: from,
			ToClassID:   st.StudentClassID,
			Outcome:     OutcomeAlreadyProcessed,
		})
	}
	return out
}

/* =========================
   Promoter
========================= */

type Promoter struct{ DB *gorm.DB }

// Run menjalankan kenaikan kelas untuk seluruh siswa aktif pada kelas-kelas
// term berjalan (opsional dibatasi satu kelas lewat onlyClassID).
//
// Tiap siswa adalah satu unit atomik: tiga langkah (riwayat term lama →
// pindah kelas → riwayat term baru) jalan dalam satu transaksi dengan baris
// siswa di-lock; batch keseluruhan TIDAK satu transaksi dan aman di-retrigger
// karena promotion_state + unique index riwayat menahan duplikasi.
func (p *Promoter) Run(ctx context.Context, current termModel.AcademicTermModel, onlyClassID *uuid.UUID) (*PromotionReport, error) {
	// Term tujuan: tidak ada → tolak keras
	next, err := termSvc.ResolveNextTerm(ctx, p.DB, current)
	if err != nil {
		return nil, err
	}

	// Kelas-kelas term tujuan
	var nextClasses []classModel.ClassModel
	if err := p.DB.WithContext(ctx).
		Where("class_academic_term_id = ? AND class_is_active", next.AcademicTermID).
		Find(&nextClasses).Error; err != nil {
		return nil, err
	}
	if len(nextClasses) == 0 {
		return nil, ErrNoNextTermClasses
	}

	// Kelas-kelas term berjalan
	classQuery := p.DB.WithContext(ctx).
		Where("class_academic_term_id = ?", current.AcademicTermID)
	if onlyClassID != nil {
		classQuery = classQuery.Where("class_id = ?", *onlyClassID)
	}
	var currentClasses []classModel.ClassModel
	if err := classQuery.Find(&currentClasses).Error; err != nil {
		return nil, err
	}

	report := &PromotionReport{
		CurrentTermID: current.AcademicTermID,
		NextTermID:    next.AcademicTermID,
	}
	if len(currentClasses) == 0 {
		return report, nil
	}

	classByID := make(map[uuid.UUID]*classModel.ClassModel, len(currentClasses))
	classIDs := make([]uuid.UUID, 0, len(currentClasses))
	targetByClass := make(map[uuid.UUID]*classModel.ClassModel, len(currentClasses))
	for i := range currentClasses {
		c := &currentClasses[i]
		classByID[c.ClassID] = c
		classIDs = append(classIDs, c.ClassID)
		targetByClass[c.ClassID] = ResolveTargetClass(*c, nextClasses)
	}

	// Batch siswa: seluruh siswa aktif kelas-kelas tsb; klasifikasi
	// (processed / not-marked / no-target) dilakukan per siswa di bawah.
	var students []classModel.StudentModel
	if err := p.DB.WithContext(ctx).
		Where("student_class_id IN ? AND student_status = ?", classIDs, classModel.StudentStatusActive).
		Order("student_name ASC").
		Find(&students).Error; err != nil {
		return nil, err
	}

	for _, st := range students {
		cur := classByID[*st.StudentClassID]
		target := targetByClass[cur.ClassID]

		outcome, err := p.promoteOne(ctx, st.StudentID, cur, target, current, *next)
		if err != nil {
			// Gagal persistence di tengah batch: laporkan hasil parsial;
			// run berikutnya melanjutkan siswa yang tersisa.
			return report, fmt.Errorf("promosi berhenti di siswa %s: %w", st.StudentID, err)
		}
		report.add(outcome)
	}

	// Run ulang tetap melaporkan siswa yang sudah naik, bukan diam: mereka
	// sudah tidak terjaring lewat kelas term berjalan karena pointer kelasnya
	// pindah, jadi dijaring lewat riwayat advanced term berjalan.
	seen := make(map[uuid.UUID]bool, len(report.Outcomes))
	for _, o := range report.Outcomes {
		seen[o.StudentID] = true
	}

	histQ := p.DB.WithContext(ctx).
		Where("student_enrollment_term_id = ? AND student_enrollment_advanced", current.AcademicTermID)
	if onlyClassID != nil {
		histQ = histQ.Where("student_enrollment_class_id = ?", *onlyClassID)
	}
	var history []enrollModel.StudentEnrollmentModel
	if err := histQ.Find(&history).Error; err != nil {
		return report, err
	}

	if len(history) > 0 {
		ids := make([]uuid.UUID, 0, len(history))
		for _, h := range history {
			ids = append(ids, h.StudentEnrollmentStudentID)
		}
		var processed []classModel.StudentModel
		if err := p.DB.WithContext(ctx).
			Where("student_id IN ? AND student_promotion_state = ?", ids, classModel.PromotionStateProcessed).
			Order("student_name ASC").
			Find(&processed).Error; err != nil {
			return report, err
		}
		for _, o := range alreadyProcessedOutcomes(history, processed, seen) {
			report.add(o)
		}
	}

	return report, nil
}

// promoteOne: transisi satu siswa. State dicek ulang SETELAH baris siswa
// di-lock (compare-and-set), jadi retrigger paralel tidak bisa memproses
// siswa yang sama dua kali.
func (p *Promoter) promoteOne(
	ctx context.Context,
	studentID uuid.UUID,
	cur *classModel.ClassModel,
	target *classModel.ClassModel,
	current termModel.AcademicTermModel,
	next termModel.AcademicTermModel,
) (StudentOutcome, error) {
	out := StudentOutcome{StudentID: studentID, FromClassID: cur.ClassID}

	err := p.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var st classModel.StudentModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("student_id = ?", studentID).
			Take(&st).Error; err != nil {
			return err
		}
		out.StudentName = st.StudentName

		// Guard idempotensi + klasifikasi ulang di bawah lock (compare-and-set)
		outcome := ClassifyStudent(st.StudentPromotionState, st.StudentMarkedToAdvance, target != nil)
		if outcome != OutcomeAdvanced {
			out.Outcome = outcome
			return nil
		}

		snapshot := datatypes.JSONMap{
			"student_code": st.StudentCode,
			"student_name": st.StudentName,
		}

		// 1) Riwayat term lama (advanced=true). OnConflict DoNothing:
		//    run sebelumnya yang keburu mati setelah langkah ini tidak
		//    meninggalkan baris dobel.
		prior := enrollModel.StudentEnrollmentModel{
			StudentEnrollmentStudentID:       st.StudentID,
			StudentEnrollmentClassID:         cur.ClassID,
			StudentEnrollmentTermID:          current.AcademicTermID,
			StudentEnrollmentAdvanced:        true,
			StudentEnrollmentClassNameCache:  cur.ClassName,
			StudentEnrollmentTermYearCache:   current.AcademicTermAcademicYear,
			StudentEnrollmentTermNameCache:   current.AcademicTermName,
			StudentEnrollmentStudentSnapshot: snapshot,
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&prior).Error; err != nil {
			return err
		}

		// 2) Pindahkan pointer kelas + clear flag + tandai processed
		if err := tx.Model(&classModel.StudentModel{}).
			Where("student_id = ?", st.StudentID).
			Updates(map[string]any{
				"student_class_id":          target.ClassID,
				"student_marked_to_advance": false,
				"student_promotion_state":   classModel.PromotionStateProcessed,
			}).Error; err != nil {
			return err
		}

		// 3) Riwayat enrolment baru di term tujuan (belum ada nilai akhir)
		fresh := enrollModel.StudentEnrollmentModel{
			StudentEnrollmentStudentID:       st.StudentID,
			StudentEnrollmentClassID:         target.ClassID,
			StudentEnrollmentTermID:          next.AcademicTermID,
			StudentEnrollmentAdvanced:        false,
			StudentEnrollmentClassNameCache:  target.ClassName,
			StudentEnrollmentTermYearCache:   next.AcademicTermAcademicYear,
			StudentEnrollmentTermNameCache:   next.AcademicTermName,
			StudentEnrollmentStudentSnapshot: snapshot,
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&fresh).Error; err != nil {
			return err
		}

		tid := target.ClassID
		out.ToClassID = &tid
		out.Outcome = OutcomeAdvanced
		return nil
	})
	if err != nil {
		return out, err
	}
	return out, nil
}

// ResetCycle membuka siklus kenaikan kelas baru: seluruh siswa processed
// dikembalikan ke eligible. Reset eksplisit, bukan flip diam-diam.
func (p *Promoter) ResetCycle(ctx context.Context) (int64, error) {
	res := p.DB.WithContext(ctx).
		Model(&classModel.StudentModel{}).
		Where("student_promotion_state = ?", classModel.PromotionStateProcessed).
		Update("student_promotion_state", classModel.PromotionStateEligible)
	return res.RowsAffected, res.Error
}
