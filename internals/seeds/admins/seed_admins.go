package admins

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"gorm.io/gorm"

	"academy_backend/internals/features/admins/dto"
	"academy_backend/internals/features/admins/model"
	helper "academy_backend/internals/helpers"
	helperAuth "academy_backend/internals/helpers/auth"
)

var ErrAdminExists = errors.New("admin already exists")

// CreateAdmin hashes password and inserts one admin. A duplicate username is
// reported as ErrAdminExists.
func CreateAdmin(db *gorm.DB, username, password string) (*model.AdminModel, error) {
	seed := dto.AdminSeed{Username: helper.Clean(username), Password: password}
	if err := helper.Validate.Struct(&seed); err != nil {
		field, tag := helper.FirstInvalidField(err)
		return nil, fmt.Errorf("invalid admin %q: %s (%s)", seed.Username, strings.ToLower(field), tag)
	}

	hash, err := helperAuth.HashPassword(seed.Password)
	if err != nil {
		return nil, err
	}
	admin := model.AdminModel{Username: seed.Username, PasswordHash: hash}
	if err := db.Create(&admin).Error; err != nil {
		if helper.IsUniqueErr(err) {
			return nil, ErrAdminExists
		}
		return nil, err
	}
	return &admin, nil
}

// SeedAdminsFromJSON reads [{username, password}] and inserts the missing
// admins. Existing usernames are skipped, never overwritten.
func SeedAdminsFromJSON(db *gorm.DB, filePath string) (int, error) {
	log.Println("📥 Reading admin seed file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", filePath, err)
	}
	var inputs []dto.AdminSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		return 0, fmt.Errorf("decode %s: %w", filePath, err)
	}

	created := 0
	for _, in := range inputs {
		_, err := CreateAdmin(db, in.Username, in.Password)
		switch {
		case errors.Is(err, ErrAdminExists):
			log.Printf("ℹ️ admin '%s' already exists, skipped.", in.Username)
		case err != nil:
			log.Printf("❌ admin '%s': %v", in.Username, err)
		default:
			created++
			log.Printf("✅ admin '%s' created", in.Username)
		}
	}
	return created, nil
}
