package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func validRequest() CreateAnakRequest {
	return CreateAnakRequest{
		AnakNIK:          "3579021201200001",
		AnakTglLahir:     "2025-01-12",
		AnakJenisKelamin: "P",
		AnakNama:         "Siti Rahma",
	}
}

func TestCreateAnakRequestValidation(t *testing.T) {
	v := validator.New()

	t.Run("payload minimal valid", func(t *testing.T) {
		req := validRequest()
		assert.NoError(t, v.Struct(&req))
	})

	t.Run("nik harus 16 digit", func(t *testing.T) {
		req := validRequest()
		req.AnakNIK = "12345"
		assert.Error(t, v.Struct(&req))
	})

	t.Run("nik harus numerik", func(t *testing.T) {
		req := validRequest()
		req.AnakNIK = "35790212012000AB"
		assert.Error(t, v.Struct(&req))
	})

	t.Run("jenis kelamin hanya L atau P", func(t *testing.T) {
		req := validRequest()
		req.AnakJenisKelamin = "X"
		assert.Error(t, v.Struct(&req))
	})

	t.Run("tanggal lahir harus yyyy-mm-dd", func(t *testing.T) {
		req := validRequest()
		req.AnakTglLahir = "12/01/2025"
		assert.Error(t, v.Struct(&req))
	})

	t.Run("nik ortu opsional tapi tetap 16 digit", func(t *testing.T) {
		req := validRequest()
		pendek := "123"
		req.AnakNIKOrtu = &pendek
		assert.Error(t, v.Struct(&req))
	})
}

func TestNormalizeMerapikanInput(t *testing.T) {
	req := CreateAnakRequest{
		AnakNIK:          " 3579021201200001 ",
		AnakTglLahir:     " 2025-01-12 ",
		AnakJenisKelamin: " p ",
		AnakNama:         "  Siti Rahma ",
	}
	req.Normalize()

	assert.Equal(t, "3579021201200001", req.AnakNIK)
	assert.Equal(t, "2025-01-12", req.AnakTglLahir)
	assert.Equal(t, "P", req.AnakJenisKelamin)
	assert.Equal(t, "Siti Rahma", req.AnakNama)
}

func TestToModelMengisiFieldBoolean(t *testing.T) {
	kia := true
	req := validRequest()
	req.AnakKIA = &kia

	m := req.ToModel()

	assert.Equal(t, req.AnakNIK, m.AnakNIK)
	assert.True(t, m.AnakKIA)
	assert.False(t, m.AnakIMD)
	assert.Equal(t, 2025, m.AnakTglLahir.Year())
}
