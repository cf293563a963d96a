// file: internals/features/school/attendance/service/generate_month_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	termModel "sekolahku_backend/internals/features/school/academics/academic_terms/model"
	holidaySvc "sekolahku_backend/internals/features/school/academics/holidays/service"
	sessModel "sekolahku_backend/internals/features/school/attendance/model"
	classModel "sekolahku_backend/internals/features/school/classes/model"
)

var (
	// ErrAlreadyGenerated: guard "sekali per kelas per bulan" menolak ulang.
	ErrAlreadyGenerated = errors.New("sesi absensi untuk bulan ini sudah pernah digenerate")

	ErrClassNotFound = errors.New("kelas tidak ditemukan")
	ErrClassInactive = errors.New("kelas tidak aktif")
)

/* =========================
   Generator + report
========================= */

type Generator struct {
	DB       *gorm.DB
	Calendar *holidaySvc.Resolver
}

type SkipCounts struct {
	Sundays  int `json:"sundays"`
	Holidays int `json:"holidays"`
}

type GenerateReport struct {
	ClassID   uuid.UUID `json:"class_id"`
	ClassName string    `json:"class_name"`
	Year      int       `json:"year"`
	Month     int       `json:"month"`

	SessionsCreated          int `json:"sessions_created"`
	AttendanceRecordsCreated int `json:"attendance_records_created"`

	Skipped             SkipCounts `json:"skipped"`
	SkippedHolidayDates []string   `json:"skipped_holiday_dates,omitempty"`

	// Sumber kalender yang gagal saat resolusi (degradasi, bukan fatal)
	CalendarDegraded []holidaySvc.SourceKind `json:"calendar_degraded,omitempty"`

	RosterSize int `json:"roster_size"`
}

// ensureMonthOpen: keputusan guard generate-once — satu sesi saja yang sudah
// ada pada bulan target menolak invokasi ulang seutuhnya.
func ensureMonthOpen(existingSessions int64) error {
	if existingSessions > 0 {
		return ErrAlreadyGenerated
	}
	return nil
}

/* =========================
   Public API
========================= */

// GenerateMonth membuat satu sesi absensi per hari instruksional pada
// (year, month) untuk satu kelas, plus satu record "absent" per siswa aktif
// per sesi. Sesi dibuat urut tanggal naik sehingga nomor pertemuan stabil.
//
// Gagal di tengah iterasi TIDAK membatalkan hari-hari yang sudah tercipta:
// report tetap dikembalikan dengan hitungan parsial bersama error-nya, dan
// guard bulan menolak invokasi ulang sampai admin membereskannya.
func (g *Generator) GenerateMonth(ctx context.Context, classID uuid.UUID, year, month int) (*GenerateReport, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("bulan tidak valid: %d", month)
	}
	if year < 2000 || year > 2100 {
		return nil, fmt.Errorf("tahun tidak valid: %d", year)
	}

	start, end := MonthBounds(year, time.Month(month))

	// 1) Kelas + term konteksnya
	var cls classModel.ClassModel
	if err := g.DB.WithContext(ctx).
		Where("class_id = ?", classID).
		Take(&cls).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}
	if !cls.ClassIsActive {
		return nil, ErrClassInactive
	}

	var term termModel.AcademicTermModel
	if err := g.DB.WithContext(ctx).
		Where("academic_term_id = ?", cls.ClassAcademicTermID).
		Take(&term).Error; err != nil {
		return nil, fmt.Errorf("academic term kelas tidak ditemukan: %w", err)
	}

	report := &GenerateReport{
		ClassID:   cls.ClassID,
		ClassName: cls.ClassName,
		Year:      year,
		Month:     month,
	}

	// 2) Roster aktif, urut nama supaya deterministik
	var roster []classModel.StudentModel
	if err := g.DB.WithContext(ctx).
		Where("student_class_id = ? AND student_status = ?", cls.ClassID, classModel.StudentStatusActive).
		Order("student_name ASC").
		Find(&roster).Error; err != nil {
		return nil, err
	}
	report.RosterSize = len(roster)

	// 3) Guard generate-once: lock baris kelas, lalu hitung sesi existing di
	//    bulan target. Check-then-act satu transaksi; unique index
	//    (class, term, date) jadi jaring pengaman terakhir terhadap balapan
	//    yang lolos dari lock.
	if err := g.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var locked classModel.ClassModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("class_id = ?", cls.ClassID).
			Take(&locked).Error; err != nil {
			return err
		}

		var n int64
		if err := tx.Model(&sessModel.AttendanceSessionModel{}).
			Where("attendance_session_class_id = ? AND attendance_session_date >= ? AND attendance_session_date < ?",
				cls.ClassID, start, end).
			Count(&n).Error; err != nil {
			return err
		}
		return ensureMonthOpen(n)
	}); err != nil {
		return nil, err
	}

	// 4) Exclusion set dari resolver kalender (degradasi ikut dilaporkan)
	window, err := holidaySvc.NewWindow(year, month)
	if err != nil {
		return nil, err
	}
	cal, err := g.Calendar.Resolve(ctx, window)
	if err != nil {
		return nil, err
	}
	report.CalendarDegraded = cal.Degraded

	excluded := cal.ExcludedDates()
	plan := BuildMonthPlan(year, time.Month(month), excluded)
	report.Skipped = SkipCounts{Sundays: plan.SkippedSundays, Holidays: plan.SkippedHolidays}
	report.SkippedHolidayDates = plan.SkippedHolidayDates

	// 5) Buat sesi + record per hari, urut naik; tiap hari satu transaksi.
	for i, day := range plan.Days {
		number := i + 1
		recs, err := g.createDay(ctx, &cls, &term, day, number, roster)
		if err != nil {
			return report, fmt.Errorf("generate berhenti di %s: %w", day.Format("2006-01-02"), err)
		}
		report.SessionsCreated++
		report.AttendanceRecordsCreated += recs
	}

	return report, nil
}

// createDay: satu sesi + record seluruh roster untuk satu tanggal, atomik.
// Return jumlah record yang benar-benar tertulis.
func (g *Generator) createDay(
	ctx context.Context,
	cls *classModel.ClassModel,
	term *termModel.AcademicTermModel,
	day time.Time,
	number int,
	roster []classModel.StudentModel,
) (int, error) {
	created := 0
	err := g.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		title := fmt.Sprintf("Pertemuan ke-%d", number)
		sess := sessModel.AttendanceSessionModel{
			AttendanceSessionClassID:        cls.ClassID,
			AttendanceSessionAcademicTermID: term.AcademicTermID,
			AttendanceSessionDate:           day,
			AttendanceSessionNumber:         number,
			AttendanceSessionTitle:          &title,
		}

		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&sess)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Invokasi lain menang balapan untuk tanggal ini
			return ErrAlreadyGenerated
		}

		if len(roster) == 0 {
			return nil
		}

		records := make([]sessModel.AttendanceRecordModel, 0, len(roster))
		for _, st := range roster {
			records = append(records, sessModel.AttendanceRecordModel{
				AttendanceRecordSessionID: sess.AttendanceSessionID,
				AttendanceRecordStudentID: st.StudentID,
				AttendanceRecordStatus:    sessModel.AttendanceStatusAbsent,
			})
		}

		res = tx.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(records, 200)
		if res.Error != nil {
			return res.Error
		}
		created = int(res.RowsAffected)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}
