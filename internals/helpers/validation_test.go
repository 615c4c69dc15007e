package helper

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contohForm struct {
	Nama       string `validate:"required"`
	Nik        string `validate:"len=16,numeric"`
	Jenis      string `validate:"oneof=L P"`
	Password   string `validate:"min=6"`
	Konfirmasi string `validate:"eqfield=Password"`
}

func TestValidationMessages(t *testing.T) {
	v := validator.New()

	err := v.Struct(&contohForm{
		Nama:       "",
		Nik:        "abc",
		Jenis:      "X",
		Password:   "123",
		Konfirmasi: "456",
	})
	require.Error(t, err)

	msgs := ValidationMessages(err)

	assert.Contains(t, msgs["nama"], "nama wajib diisi.")
	assert.Contains(t, msgs["nik"], "nik harus tepat 16 karakter.")
	assert.Contains(t, msgs["jenis"], "jenis harus salah satu dari: L P.")
	assert.Contains(t, msgs["password"], "password harus minimal 6 karakter.")
	assert.Contains(t, msgs["konfirmasi"], "konfirmasi harus sama dengan password.")
}

func TestValidationMessagesNonValidatorError(t *testing.T) {
	msgs := ValidationMessages(errors.New("body kosong"))
	assert.Equal(t, []string{"body kosong"}, msgs["_"])
}

func TestToSnakeCase(t *testing.T) {
	assert.Equal(t, "anak_nama", toSnakeCase("AnakNama"))
	assert.Equal(t, "user_name", toSnakeCase("UserName"))
	assert.Equal(t, "nama", toSnakeCase("Nama"))
}
