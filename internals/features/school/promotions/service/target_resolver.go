// file: internals/features/school/promotions/service/target_resolver.go
package service

import (
	classModel "sekolahku_backend/internals/features/school/classes/model"
)

// ResolveTargetClass memilih kelas tujuan kenaikan: kelas term berikutnya,
// program sama, jenjang = jenjang sekarang + 1. Nil kalau tidak ada —
// pemanggil melaporkan siswa tsb sebagai skipped, bukan menggagalkan batch.
func ResolveTargetClass(current classModel.ClassModel, nextTermClasses []classModel.ClassModel) *classModel.ClassModel {
	level := current.Level()
	if level <= 0 {
		return nil
	}

	for i := range nextTermClasses {
		c := &nextTermClasses[i]
		if c.ClassProgramID != current.ClassProgramID {
			continue
		}
		if c.Level() == level+1 {
			return c
		}
	}
	return nil
}
