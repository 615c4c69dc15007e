package dto

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"posyanduku_backend/internals/features/posyandu/pengukuran/model"
)

func f64(v float64) *float64 { return &v }

func baseInput() PengukuranInput {
	return PengukuranInput{
		PengukuranTanggalUkur: "2026-03-10",
		PengukuranBerat:       f64(8.1),
		PengukuranTinggi:      f64(70.5),
		PengukuranCaraUkur:    "Terlentang",
	}
}

func TestPengukuranInputValidation(t *testing.T) {
	v := validator.New()

	t.Run("payload lengkap valid", func(t *testing.T) {
		in := baseInput()
		assert.NoError(t, v.Struct(&in))
	})

	t.Run("berat wajib diisi", func(t *testing.T) {
		in := baseInput()
		in.PengukuranBerat = nil
		assert.Error(t, v.Struct(&in))
	})

	t.Run("berat nol ditolak", func(t *testing.T) {
		in := baseInput()
		in.PengukuranBerat = f64(0)
		assert.Error(t, v.Struct(&in))
	})

	t.Run("tanggal format salah", func(t *testing.T) {
		in := baseInput()
		in.PengukuranTanggalUkur = "10-03-2026"
		assert.Error(t, v.Struct(&in))
	})

	t.Run("cara ukur di luar enum", func(t *testing.T) {
		in := baseInput()
		in.PengukuranCaraUkur = "Duduk"
		assert.Error(t, v.Struct(&in))
	})

	t.Run("vit_a opsional tapi harus Biru/Merah", func(t *testing.T) {
		in := baseInput()
		salah := "Hijau"
		in.PengukuranVitA = &salah
		assert.Error(t, v.Struct(&in))

		benar := model.VitAMerah
		in.PengukuranVitA = &benar
		assert.NoError(t, v.Struct(&in))
	})
}

func TestNormalizeMenyeragamkanKapitalisasi(t *testing.T) {
	in := baseInput()
	in.PengukuranCaraUkur = "  terlentang "
	biru := "bIRU"
	in.PengukuranVitA = &biru

	in.Normalize()

	assert.Equal(t, model.CaraUkurTerlentang, in.PengukuranCaraUkur)
	require.NotNil(t, in.PengukuranVitA)
	assert.Equal(t, model.VitABiru, *in.PengukuranVitA)
}

func TestApplyToModelMempertahankanIdentitasBaris(t *testing.T) {
	id := uuid.New()
	anakID := uuid.New()
	m := &model.PengukuranModel{
		PengukuranID:        id,
		PengukuranAnakID:    anakID,
		PengukuranBerat:     7.0,
		PengukuranAsiBulan0: true,
	}

	in := baseInput()
	in.ApplyToModel(m)

	assert.Equal(t, id, m.PengukuranID)
	assert.Equal(t, anakID, m.PengukuranAnakID)
	assert.Equal(t, 8.1, m.PengukuranBerat)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), m.PengukuranTanggalUkur)
	// full replace: field yang tidak dikirim kembali ke default
	assert.False(t, m.PengukuranAsiBulan0)
}

func TestToModelMengisiAnakID(t *testing.T) {
	anakID := uuid.New()
	in := baseInput()

	m := in.ToModel(anakID)

	assert.Equal(t, anakID, m.PengukuranAnakID)
	assert.Equal(t, uuid.Nil, m.PengukuranID)
}
