package seeds

import (
	"log"

	"gorm.io/gorm"

	"academy_backend/internals/configs"
	"academy_backend/internals/seeds/admins"
)

func RunAllSeeds(db *gorm.DB, cfg configs.Config) error {
	//* Admins
	n, err := admins.SeedAdminsFromJSON(db, cfg.AdminSeedFile)
	if err != nil {
		return err
	}
	log.Printf("✅ seeding done (%d admins created)", n)
	return nil
}
