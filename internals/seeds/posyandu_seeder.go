package seeds

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"posyanduku_backend/internals/constants"
	posyanduModel "posyanduku_backend/internals/features/posyandu/posyandu/model"
	userModel "posyanduku_backend/internals/features/users/user/model"
)

type posyanduRow struct {
	Desa string
	Nama string
}

func posyanduData() []posyanduRow {
	rows := []posyanduRow{}
	for i := 1; i <= 7; i++ {
		rows = append(rows, posyanduRow{"Oro-oro Ombo", fmt.Sprintf("Melati %d", i)})
	}
	for _, nama := range []string{
		"Azalea 1", "Azalea 2", "Azalea 3A", "Azalea 3B", "Azalea 4",
		"Azalea 5", "Azalea 6", "Azalea 7", "Azalea 8", "Azalea 9",
		"Azalea 10", "Azalea 11", "Azalea 12", "Azalea 13", "Azalea 14",
		"Azalea 15",
	} {
		rows = append(rows, posyanduRow{"Ngaglik", nama})
	}
	for _, nama := range []string{
		"Kelengkeng 1", "Kelengkeng 2", "Mawar", "Anggrek", "Gladiol",
		"Seruni", "Elbra", "Bougenville", "Flamboyan", "Lely", "Melati",
		"Cempaka", "Teratai",
	} {
		rows = append(rows, posyanduRow{"Pesanggrahan", nama})
	}
	for i := 1; i <= 9; i++ {
		rows = append(rows, posyanduRow{"Songgokerto", fmt.Sprintf("Harmoni %d", i)})
	}
	for i := 1; i <= 6; i++ {
		rows = append(rows, posyanduRow{"Sumberejo", fmt.Sprintf("Anggrek %d", i)})
	}
	return rows
}

// SeedPosyandu mengisi daftar pos posyandu per desa. Aman dipanggil berulang:
// baris yang sudah ada dilewati berdasar pasangan (desa, nama).
func SeedPosyandu(db *gorm.DB) error {
	for _, row := range posyanduData() {
		var count int64
		if err := db.Model(&posyanduModel.PosyanduModel{}).
			Where("posyandu_desa = ? AND posyandu_nama = ?", row.Desa, row.Nama).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		p := posyanduModel.PosyanduModel{
			PosyanduDesa: row.Desa,
			PosyanduNama: row.Nama,
		}
		if err := db.Create(&p).Error; err != nil {
			return err
		}
	}
	log.Println("[SEED] Data posyandu siap")
	return nil
}

// SeedDefaultAdmin membuat akun admin awal bila belum ada.
func SeedDefaultAdmin(db *gorm.DB, username, password string) error {
	if username == "" || password == "" {
		return nil
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u := userModel.UserModel{
		UserName: username,
		Password: string(hashed),
		Role:     constants.RoleAdmin,
		IsActive: true,
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_name"}},
		DoNothing: true,
	}).Create(&u).Error; err != nil {
		return err
	}
	log.Printf("[SEED] Akun admin '%s' siap", username)
	return nil
}
