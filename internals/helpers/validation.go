package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationMessages mengubah error validator menjadi map field → pesan,
// siap dipakai JsonValidationError.
func ValidationMessages(err error) map[string][]string {
	out := map[string][]string{}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{err.Error()}
		return out
	}
	for _, fe := range verrs {
		field := toSnakeCase(fe.Field())
		var msg string
		switch fe.Tag() {
		case "required":
			msg = field + " wajib diisi."
		case "min":
			msg = field + " harus minimal " + fe.Param() + " karakter."
		case "max":
			msg = field + " harus kurang dari " + fe.Param() + " karakter."
		case "oneof":
			msg = field + " harus salah satu dari: " + fe.Param() + "."
		case "len":
			msg = field + " harus tepat " + fe.Param() + " karakter."
		case "numeric":
			msg = field + " harus berupa angka."
		case "datetime":
			msg = field + " harus berupa tanggal yang valid (" + fe.Param() + ")."
		case "email":
			msg = "Format email tidak valid."
		case "eqfield":
			msg = field + " harus sama dengan " + toSnakeCase(fe.Param()) + "."
		default:
			msg = field + " tidak valid."
		}
		out[field] = append(out[field], msg)
	}
	return out
}

func toSnakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
