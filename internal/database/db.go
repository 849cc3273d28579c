package database

import (
	"log"

	"timecard-backend/internal/config"
	"timecard-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Veritabanına bağlanılamadı: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.UserData{},
		&models.AccountingCode{},
		&models.Project{},
		&models.ReportingPeriod{},
		&models.Timecard{},
		&models.TimecardObject{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate hatası: %v", err)
	}

	// Timecard silinince satır kalemleri de silinmeli. AutoMigrate bazen
	// CASCADE constraint'i eklemiyor, kontrol et ve gerekirse elle ekle.
	if DB.Migrator().HasTable(&models.TimecardObject{}) {
		var constraintExists bool
		DB.Raw(`
			SELECT EXISTS (
				SELECT 1
				FROM information_schema.table_constraints
				WHERE table_name = 'timecard_objects'
				AND constraint_name = 'fk_timecard_objects_timecard'
			)
		`).Scan(&constraintExists)

		if !constraintExists {
			log.Println("TimecardObject için CASCADE foreign key constraint ekleniyor...")
			if fkErr := DB.Exec(`
				ALTER TABLE timecard_objects
				ADD CONSTRAINT fk_timecard_objects_timecard
				FOREIGN KEY (timecard_id) REFERENCES timecards(id) ON DELETE CASCADE
			`).Error; fkErr != nil {
				log.Printf("Foreign key constraint eklenirken hata: %v", fkErr)
			} else {
				log.Println("TimecardObject foreign key constraint başarıyla eklendi")
			}
		}
	}

	log.Println("Veritabanı bağlantısı başarılı. Migration tamamlandı.")
}
