package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	anakModel "posyanduku_backend/internals/features/posyandu/anak/model"
	logModel "posyanduku_backend/internals/features/posyandu/log_pengukuran/model"
	d "posyanduku_backend/internals/features/posyandu/pengukuran/dto"
	"posyanduku_backend/internals/features/posyandu/pengukuran/model"
	repo "posyanduku_backend/internals/features/posyandu/pengukuran/repository"
)

/* ===========================
   Fake store (in-memory, rollback on error)
   =========================== */

type fakeStore struct {
	anak     map[uuid.UUID]*anakModel.AnakModel
	posyandu map[uuid.UUID]bool
	rows     map[uuid.UUID]*model.PengukuranModel // keyed by anak_id
	logs     []*logModel.LogPengukuranModel

	// external mensimulasikan baris yang di-commit transaksi lain:
	// tetap ada walau transaksi kita sendiri rollback.
	external map[uuid.UUID]*model.PengukuranModel

	onInsert     func(f *fakeStore, p *model.PengukuranModel) error
	insertLogErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		anak:     map[uuid.UUID]*anakModel.AnakModel{},
		posyandu: map[uuid.UUID]bool{},
		rows:     map[uuid.UUID]*model.PengukuranModel{},
	}
}

func (f *fakeStore) WithinTx(_ context.Context, fn func(tx repo.Store) error) error {
	savedRows := make(map[uuid.UUID]*model.PengukuranModel, len(f.rows))
	for k, v := range f.rows {
		cp := *v
		savedRows[k] = &cp
	}
	savedLogs := append([]*logModel.LogPengukuranModel(nil), f.logs...)

	err := fn(f)
	if err != nil {
		f.rows = savedRows
		f.logs = savedLogs
	}
	for k, v := range f.external {
		f.rows[k] = v
	}
	f.external = nil
	return err
}

func (f *fakeStore) FindAnakByID(id uuid.UUID) (*anakModel.AnakModel, error) {
	a, ok := f.anak[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (f *fakeStore) PosyanduExists(id uuid.UUID) (bool, error) {
	return f.posyandu[id], nil
}

func (f *fakeStore) FindByAnakID(anakID uuid.UUID) (*model.PengukuranModel, error) {
	p, ok := f.rows[anakID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeStore) FindByID(id uuid.UUID) (*model.PengukuranModel, error) {
	for _, p := range f.rows {
		if p.PengukuranID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) Insert(p *model.PengukuranModel) error {
	if f.onInsert != nil {
		if err := f.onInsert(f, p); err != nil {
			return err
		}
	}
	if _, exists := f.rows[p.PengukuranAnakID]; exists {
		return errors.New(`duplicate key value violates unique constraint "idx_anak_pengukuran_anak_id" (SQLSTATE 23505)`)
	}
	if p.PengukuranID == uuid.Nil {
		p.PengukuranID = uuid.New()
	}
	cp := *p
	f.rows[p.PengukuranAnakID] = &cp
	return nil
}

func (f *fakeStore) Replace(p *model.PengukuranModel) error {
	cp := *p
	f.rows[p.PengukuranAnakID] = &cp
	return nil
}

func (f *fakeStore) DeleteByID(id uuid.UUID) (int64, error) {
	for anakID, p := range f.rows {
		if p.PengukuranID == id {
			delete(f.rows, anakID)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeStore) DeleteByAnakID(anakID uuid.UUID) (int64, error) {
	if _, ok := f.rows[anakID]; ok {
		delete(f.rows, anakID)
		return 1, nil
	}
	return 0, nil
}

func (f *fakeStore) InsertLog(l *logModel.LogPengukuranModel) error {
	if f.insertLogErr != nil {
		return f.insertLogErr
	}
	cp := *l
	f.logs = append(f.logs, &cp)
	return nil
}

/* ===========================
   Fixtures
   =========================== */

var frozenNow = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

func newService(f *fakeStore) *PengukuranService {
	s := NewPengukuranService(f)
	s.now = func() time.Time { return frozenNow }
	return s
}

func seedAnak(f *fakeStore) *anakModel.AnakModel {
	anak := &anakModel.AnakModel{
		AnakID:           uuid.New(),
		AnakNIK:          "3579021201200001",
		AnakNama:         "Siti Rahma",
		AnakJenisKelamin: "P",
		AnakTglLahir:     time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC),
	}
	f.anak[anak.AnakID] = anak
	return anak
}

func validInput(berat, tinggi float64) *d.PengukuranInput {
	b, t := berat, tinggi
	return &d.PengukuranInput{
		PengukuranTanggalUkur: "2026-03-10",
		PengukuranBerat:       &b,
		PengukuranTinggi:      &t,
		PengukuranCaraUkur:    model.CaraUkurTerlentang,
	}
}

func seedExisting(f *fakeStore, anak *anakModel.AnakModel) *model.PengukuranModel {
	lila := 14.5
	existing := &model.PengukuranModel{
		PengukuranID:          uuid.New(),
		PengukuranAnakID:      anak.AnakID,
		PengukuranTanggalUkur: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		PengukuranBerat:       7.2,
		PengukuranTinggi:      66.0,
		PengukuranLila:        &lila,
		PengukuranCaraUkur:    model.CaraUkurTerlentang,
		PengukuranAsiBulan0:   true,
		PengukuranAsiBulan1:   true,
	}
	f.rows[anak.AnakID] = existing
	return existing
}

/* ===========================
   Upsert
   =========================== */

func TestUpsertCreatesWhenNoLiveRow(t *testing.T) {
	f := newFakeStore()
	anak := seedAnak(f)
	svc := newService(f)

	res, err := svc.Upsert(context.Background(), anak, validInput(8.1, 70.5))
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, d.DispositionCreated, res.Disposition)
	assert.Equal(t, anak.AnakID, res.Pengukuran.PengukuranAnakID)
	assert.Equal(t, 8.1, res.Pengukuran.PengukuranBerat)

	// baris live tersimpan, tidak ada arsip
	require.Contains(t, f.rows, anak.AnakID)
	assert.Empty(t, f.logs)
}

func TestUpsertArchivesOldValuesThenOverwrites(t *testing.T) {
	f := newFakeStore()
	anak := seedAnak(f)
	existing := seedExisting(f, anak)
	svc := newService(f)

	res, err := svc.Upsert(context.Background(), anak, validInput(8.4, 71.0))
	require.NoError(t, err)

	assert.Equal(t, d.DispositionUpdated, res.Disposition)
	// identitas baris dipertahankan
	assert.Equal(t, existing.PengukuranID, res.Pengukuran.PengukuranID)

	live := f.rows[anak.AnakID]
	assert.Equal(t, 8.4, live.PengukuranBerat)
	assert.Equal(t, 71.0, live.PengukuranTinggi)
	// ASI tidak dikirim di payload baru: full replace, bukan merge
	assert.False(t, live.PengukuranAsiBulan0)

	// arsip memuat nilai LAMA, bukan nilai baru
	require.Len(t, f.logs, 1)
	entry := f.logs[0]
	assert.Equal(t, anak.AnakID, entry.LogAnakID)
	assert.Equal(t, anak.AnakNIK, entry.LogAnakNIK)
	assert.Equal(t, 7.2, entry.LogBeratLama)
	assert.Equal(t, 66.0, entry.LogTinggiLama)
	assert.True(t, entry.LogAsiBulan0Lama)
	assert.Equal(t, frozenNow, entry.LogDiubahPada)
}

func TestUpsertRepeatedOverwritesAccumulateLogs(t *testing.T) {
	f := newFakeStore()
	anak := seedAnak(f)
	svc := newService(f)

	for i, berat := range []float64{7.0, 7.5, 8.0} {
		res, err := svc.Upsert(context.Background(), anak, validInput(berat, 65.0+float64(i)))
		require.NoError(t, err)
		if i == 0 {
			assert.Equal(t, d.DispositionCreated, res.Disposition)
		} else {
			assert.Equal(t, d.DispositionUpdated, res.Disposition)
		}
	}

	// satu baris live, dua jejak arsip
	assert.Len(t, f.rows, 1)
	require.Len(t, f.logs, 2)
	assert.Equal(t, 7.0, f.logs[0].LogBeratLama)
	assert.Equal(t, 7.5, f.logs[1].LogBeratLama)
}

func TestUpsertPosyanduRefMissing(t *testing.T) {
	f := newFakeStore()
	anak := seedAnak(f)
	svc := newService(f)

	in := validInput(8.0, 70.0)
	ref := uuid.New()
	in.PengukuranPosyanduID = &ref

	_, err := svc.Upsert(context.Background(), anak, in)
	assert.ErrorIs(t, err, ErrPosyanduNotFound)
	assert.Empty(t, f.rows)
}

func TestUpsertArchiveFailureRollsBackEverything(t *testing.T) {
	f := newFakeStore()
	anak := seedAnak(f)
	seedExisting(f, anak)
	f.insertLogErr = errors.New("disk penuh")
	svc := newService(f)

	_, err := svc.Upsert(context.Background(), anak, validInput(9.9, 80.0))
	require.Error(t, err)

	// gagal arsip = baris live tidak boleh ikut berubah
	live := f.rows[anak.AnakID]
	assert.Equal(t, 7.2, live.PengukuranBerat)
	assert.Empty(t, f.logs)
}

func TestUpsertRetriesAfterLosingInsertRace(t *testing.T) {
	f := newFakeStore()
	anak := seedAnak(f)
	svc := newService(f)

	raced := false
	f.onInsert = func(f *fakeStore, _ *model.PengukuranModel) error {
		if raced {
			return nil
		}
		raced = true
		// proses lain menang: baris live-nya ter-commit walau tx kita rollback
		f.external = map[uuid.UUID]*model.PengukuranModel{}
		f.external[anak.AnakID] = &model.PengukuranModel{
			PengukuranID:          uuid.New(),
			PengukuranAnakID:      anak.AnakID,
			PengukuranTanggalUkur: time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
			PengukuranBerat:       6.8,
			PengukuranTinggi:      64.0,
			PengukuranCaraUkur:    model.CaraUkurTerlentang,
		}
		return errors.New(`duplicate key value violates unique constraint "idx_anak_pengukuran_anak_id" (SQLSTATE 23505)`)
	}

	res, err := svc.Upsert(context.Background(), anak, validInput(8.2, 70.0))
	require.NoError(t, err)

	// retry masuk jalur update: nilai pemenang race ikut terarsip
	assert.Equal(t, d.DispositionUpdated, res.Disposition)
	require.Len(t, f.logs, 1)
	assert.Equal(t, 6.8, f.logs[0].LogBeratLama)
	assert.Equal(t, 8.2, f.rows[anak.AnakID].PengukuranBerat)
}

func TestUpsertSecondUniqueViolationIsConflict(t *testing.T) {
	f := newFakeStore()
	anak := seedAnak(f)
	svc := newService(f)

	f.onInsert = func(_ *fakeStore, _ *model.PengukuranModel) error {
		return errors.New("ERROR: duplicate key value (SQLSTATE 23505)")
	}

	_, err := svc.Upsert(context.Background(), anak, validInput(8.2, 70.0))
	assert.ErrorIs(t, err, ErrConflict)
}

/* ===========================
   ResolveAnak / UpdateByID / Delete
   =========================== */

func TestResolveAnakNotFound(t *testing.T) {
	f := newFakeStore()
	svc := newService(f)

	_, err := svc.ResolveAnak(uuid.New())
	assert.ErrorIs(t, err, ErrAnakNotFound)
	// lookup tidak pernah membuat anak
	assert.Empty(t, f.anak)
}

func TestUpdateByIDNotFound(t *testing.T) {
	f := newFakeStore()
	svc := newService(f)

	_, err := svc.UpdateByID(context.Background(), uuid.New(), validInput(8.0, 70.0))
	assert.ErrorIs(t, err, ErrPengukuranNotFound)
}

func TestUpdateByIDArchivesBeforeReplace(t *testing.T) {
	f := newFakeStore()
	anak := seedAnak(f)
	existing := seedExisting(f, anak)
	svc := newService(f)

	out, err := svc.UpdateByID(context.Background(), existing.PengukuranID, validInput(8.8, 72.0))
	require.NoError(t, err)

	assert.Equal(t, existing.PengukuranID, out.PengukuranID)
	assert.Equal(t, 8.8, out.PengukuranBerat)
	require.Len(t, f.logs, 1)
	assert.Equal(t, 7.2, f.logs[0].LogBeratLama)
}

func TestDeleteAllForAnak(t *testing.T) {
	f := newFakeStore()
	anak := seedAnak(f)
	seedExisting(f, anak)
	svc := newService(f)

	count, err := svc.DeleteAllForAnak(context.Background(), anak.AnakID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = svc.DeleteAllForAnak(context.Background(), anak.AnakID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
