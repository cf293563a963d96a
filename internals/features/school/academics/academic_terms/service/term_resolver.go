// file: internals/features/school/academics/academic_terms/service/term_resolver.go
package service

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	m "sekolahku_backend/internals/features/school/academics/academic_terms/model"
)

var (
	ErrNoCurrentTerm = errors.New("tidak ada academic term yang current")
	ErrNoNextTerm    = errors.New("tidak ada academic term setelah term berjalan")
)

// ResolveCurrentTerm mengambil satu-satunya term dengan is_current=true.
func ResolveCurrentTerm(ctx context.Context, db *gorm.DB) (*m.AcademicTermModel, error) {
	var term m.AcademicTermModel
	err := db.WithContext(ctx).
		Where("academic_term_is_current").
		Take(&term).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoCurrentTerm
	}
	if err != nil {
		return nil, err
	}
	return &term, nil
}

// ResolveNextTerm mencari term tujuan kenaikan kelas: term dengan start date
// paling awal yang masih sesudah end date term berjalan.
func ResolveNextTerm(ctx context.Context, db *gorm.DB, current m.AcademicTermModel) (*m.AcademicTermModel, error) {
	var candidates []m.AcademicTermModel
	if err := db.WithContext(ctx).
		Where("academic_term_start_date > ?", current.AcademicTermEndDate).
		Find(&candidates).Error; err != nil {
		return nil, err
	}

	next := PickNext(candidates, current)
	if next == nil {
		return nil, ErrNoNextTerm
	}
	return next, nil
}

// PickNext memilih kandidat dengan start date paling awal.
func PickNext(candidates []m.AcademicTermModel, current m.AcademicTermModel) *m.AcademicTermModel {
	var picked *m.AcademicTermModel
	for i := range candidates {
		c := &candidates[i]
		if c.AcademicTermID == current.AcademicTermID {
			continue
		}
		if !c.AcademicTermStartDate.After(current.AcademicTermEndDate) {
			continue
		}
		if picked == nil || c.AcademicTermStartDate.Before(picked.AcademicTermStartDate) {
			picked = c
		}
	}
	return picked
}

// SortByStartDate untuk tampilan list yang deterministik.
func SortByStartDate(terms []m.AcademicTermModel) {
	sort.Slice(terms, func(i, j int) bool {
		return terms[i].AcademicTermStartDate.Before(terms[j].AcademicTermStartDate)
	})
}

// SetCurrentTerm menjadikan satu term current dan mematikan flag term lain
// dalam satu transaksi, supaya invariant "tepat satu current" tidak pernah
// bocor di tengah jalan.
func SetCurrentTerm(ctx context.Context, db *gorm.DB, termID uuid.UUID) (*m.AcademicTermModel, error) {
	var term m.AcademicTermModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("academic_term_id = ?", termID).Take(&term).Error; err != nil {
			return err
		}
		if err := tx.Model(&m.AcademicTermModel{}).
			Where("academic_term_is_current AND academic_term_id <> ?", termID).
			Update("academic_term_is_current", false).Error; err != nil {
			return err
		}
		if err := tx.Model(&m.AcademicTermModel{}).
			Where("academic_term_id = ?", termID).
			Update("academic_term_is_current", true).Error; err != nil {
			return err
		}
		term.AcademicTermIsCurrent = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &term, nil
}
