package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	anakModel "posyanduku_backend/internals/features/posyandu/anak/model"
	d "posyanduku_backend/internals/features/posyandu/pengukuran/dto"
	"posyanduku_backend/internals/features/posyandu/pengukuran/model"
	repo "posyanduku_backend/internals/features/posyandu/pengukuran/repository"
)

var (
	// ErrAnakNotFound: anak referensi tidak ada; service tidak pernah
	// membuat anak sebagai efek samping.
	ErrAnakNotFound = errors.New("anak tidak ditemukan")
	// ErrPengukuranNotFound: baris pengukuran yang diminta tidak ada.
	ErrPengukuranNotFound = errors.New("data pengukuran tidak ditemukan")
	// ErrPosyanduNotFound: referensi posyandu pada payload tidak ada.
	ErrPosyanduNotFound = errors.New("posyandu tidak ditemukan")
	// ErrConflict: kalah race unique(pengukuran_anak_id) dan retry tunggal
	// juga gagal.
	ErrConflict = errors.New("data pengukuran sedang diubah oleh proses lain")
)

// UpsertResult membawa disposisi sebagai hasil first-class, bukan efek
// samping yang harus ditebak caller.
type UpsertResult struct {
	Disposition string // dto.DispositionCreated | dto.DispositionUpdated
	Pengukuran  *model.PengukuranModel
}

// PengukuranService adalah mesin upsert pengukuran: memutuskan create vs
// update (dengan pengarsipan nilai lama) dan mengeksekusinya atomik.
type PengukuranService struct {
	store repo.Store
	now   func() time.Time
}

func NewPengukuranService(store repo.Store) *PengukuranService {
	return &PengukuranService{store: store, now: time.Now}
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "23505")
}

// ResolveAnak me-lookup anak by id internal; dipakai entry point by-anak-id.
func (s *PengukuranService) ResolveAnak(anakID uuid.UUID) (*anakModel.AnakModel, error) {
	anak, err := s.store.FindAnakByID(anakID)
	if err != nil {
		return nil, err
	}
	if anak == nil {
		return nil, ErrAnakNotFound
	}
	return anak, nil
}

// checkPosyanduRef memastikan referensi posyandu pada payload valid.
// Validasi field lain (tanggal, berat, cara ukur, dst.) dilakukan
// controller lewat tag validator sebelum sampai ke sini.
func (s *PengukuranService) checkPosyanduRef(in *d.PengukuranInput) error {
	if in.PengukuranPosyanduID == nil {
		return nil
	}
	ok, err := s.store.PosyanduExists(*in.PengukuranPosyanduID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrPosyanduNotFound
	}
	return nil
}

// Upsert: maksimal satu baris pengukuran live per anak. Bila sudah ada,
// nilai lama diarsipkan ke log lalu baris ditimpa in place (id baris
// dipertahankan); bila belum, baris baru dibuat. Arsip + timpa berjalan
// dalam SATU transaksi: gagal di tengah berarti keduanya batal.
func (s *PengukuranService) Upsert(ctx context.Context, anak *anakModel.AnakModel, in *d.PengukuranInput) (*UpsertResult, error) {
	if err := s.checkPosyanduRef(in); err != nil {
		return nil, err
	}

	res, err := s.upsertOnce(ctx, anak, in)
	if err != nil && isUniqueViolation(err) {
		// kalah race "belum ada baris → insert": baris live keburu dibuat
		// proses lain. Ulangi sekali; kali ini masuk jalur update+arsip.
		res, err = s.upsertOnce(ctx, anak, in)
		if err != nil {
			if isUniqueViolation(err) {
				return nil, ErrConflict
			}
			return nil, err
		}
	}
	return res, err
}

func (s *PengukuranService) upsertOnce(ctx context.Context, anak *anakModel.AnakModel, in *d.PengukuranInput) (*UpsertResult, error) {
	var out *UpsertResult
	err := s.store.WithinTx(ctx, func(tx repo.Store) error {
		existing, err := tx.FindByAnakID(anak.AnakID)
		if err != nil {
			return err
		}

		if existing != nil {
			// arsip dulu, baru timpa — urutan ini bagian dari kontrak
			if err := tx.InsertLog(SnapshotLog(anak, existing, s.now())); err != nil {
				return fmt.Errorf("arsip log pengukuran: %w", err)
			}
			in.ApplyToModel(existing)
			if err := tx.Replace(existing); err != nil {
				return err
			}
			out = &UpsertResult{Disposition: d.DispositionUpdated, Pengukuran: existing}
			return nil
		}

		baru := in.ToModel(anak.AnakID)
		if err := tx.Insert(baru); err != nil {
			return err
		}
		out = &UpsertResult{Disposition: d.DispositionCreated, Pengukuran: baru}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateByID: jalur update langsung by id baris (tanpa cabang create).
// Kontrak arsip-sebelum-timpa dan atomisitasnya sama dengan Upsert.
func (s *PengukuranService) UpdateByID(ctx context.Context, id uuid.UUID, in *d.PengukuranInput) (*model.PengukuranModel, error) {
	if err := s.checkPosyanduRef(in); err != nil {
		return nil, err
	}

	var out *model.PengukuranModel
	err := s.store.WithinTx(ctx, func(tx repo.Store) error {
		existing, err := tx.FindByID(id)
		if err != nil {
			return err
		}
		if existing == nil {
			return ErrPengukuranNotFound
		}

		anak, err := tx.FindAnakByID(existing.PengukuranAnakID)
		if err != nil {
			return err
		}
		if anak == nil {
			return ErrAnakNotFound
		}

		if err := tx.InsertLog(SnapshotLog(anak, existing, s.now())); err != nil {
			return fmt.Errorf("arsip log pengukuran: %w", err)
		}
		in.ApplyToModel(existing)
		if err := tx.Replace(existing); err != nil {
			return err
		}
		out = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteAllForAnak menghapus seluruh pengukuran milik anak, mengembalikan
// jumlah baris terhapus.
func (s *PengukuranService) DeleteAllForAnak(ctx context.Context, anakID uuid.UUID) (int64, error) {
	var count int64
	err := s.store.WithinTx(ctx, func(tx repo.Store) error {
		n, err := tx.DeleteByAnakID(anakID)
		count = n
		return err
	})
	return count, err
}
