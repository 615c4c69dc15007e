package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	anakModel "posyanduku_backend/internals/features/posyandu/anak/model"
	logModel "posyanduku_backend/internals/features/posyandu/log_pengukuran/model"
	"posyanduku_backend/internals/features/posyandu/pengukuran/model"
	posyanduModel "posyanduku_backend/internals/features/posyandu/posyandu/model"
)

// Store adalah kontrak storage untuk service pengukuran: baca/tulis
// snapshot nilai, bukan handle hidup ke row. Semua Find* mengembalikan
// (nil, nil) bila baris tidak ada.
type Store interface {
	// WithinTx menjalankan fn dalam satu transaksi; commit bila nil,
	// rollback bila error.
	WithinTx(ctx context.Context, fn func(tx Store) error) error

	FindAnakByID(id uuid.UUID) (*anakModel.AnakModel, error)
	PosyanduExists(id uuid.UUID) (bool, error)

	// FindByAnakID mengambil baris pengukuran live milik anak (maks. satu),
	// dengan row lock saat dipanggil di dalam transaksi.
	FindByAnakID(anakID uuid.UUID) (*model.PengukuranModel, error)
	FindByID(id uuid.UUID) (*model.PengukuranModel, error)

	Insert(p *model.PengukuranModel) error
	// Replace menimpa seluruh field mutable; pengukuran_id tidak berubah.
	Replace(p *model.PengukuranModel) error
	DeleteByID(id uuid.UUID) (int64, error)
	DeleteByAnakID(anakID uuid.UUID) (int64, error)

	InsertLog(l *logModel.LogPengukuranModel) error
}

type gormStore struct {
	db   *gorm.DB
	inTx bool
}

func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) WithinTx(ctx context.Context, fn func(tx Store) error) error {
	if s.inTx {
		return fn(s) // transaksi sudah berjalan, jangan nested
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx, inTx: true})
	})
}

func (s *gormStore) FindAnakByID(id uuid.UUID) (*anakModel.AnakModel, error) {
	var anak anakModel.AnakModel
	if err := s.db.First(&anak, "anak_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &anak, nil
}

func (s *gormStore) PosyanduExists(id uuid.UUID) (bool, error) {
	var count int64
	if err := s.db.Model(&posyanduModel.PosyanduModel{}).
		Where("posyandu_id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *gormStore) FindByAnakID(anakID uuid.UUID) (*model.PengukuranModel, error) {
	tx := s.db
	if s.inTx {
		// serialisasi per-anak: dua upsert konkuren utk anak yang sama
		// antre di sini (SELECT ... FOR UPDATE)
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var p model.PengukuranModel
	if err := tx.First(&p, "pengukuran_anak_id = ?", anakID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *gormStore) FindByID(id uuid.UUID) (*model.PengukuranModel, error) {
	tx := s.db
	if s.inTx {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var p model.PengukuranModel
	if err := tx.First(&p, "pengukuran_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *gormStore) Insert(p *model.PengukuranModel) error {
	return s.db.Create(p).Error
}

func (s *gormStore) Replace(p *model.PengukuranModel) error {
	// Save dengan primary key terisi = full update seluruh kolom
	return s.db.Save(p).Error
}

func (s *gormStore) DeleteByID(id uuid.UUID) (int64, error) {
	res := s.db.Delete(&model.PengukuranModel{}, "pengukuran_id = ?", id)
	return res.RowsAffected, res.Error
}

func (s *gormStore) DeleteByAnakID(anakID uuid.UUID) (int64, error) {
	res := s.db.Delete(&model.PengukuranModel{}, "pengukuran_anak_id = ?", anakID)
	return res.RowsAffected, res.Error
}

func (s *gormStore) InsertLog(l *logModel.LogPengukuranModel) error {
	return s.db.Create(l).Error
}
