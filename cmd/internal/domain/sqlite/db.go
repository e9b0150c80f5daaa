package sqlite

import (
	"docbook/cmd/internal/domain/entity"
	"gorm.io/driver/sqlite"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Init opens (creating if needed) the store database at path, migrates the
// schema and seeds the doctor directory when it is empty.
func Init(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(&entity.Doctor{}, &entity.Appointment{})
	if err != nil {
		return nil, err
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := SeedDoctors(db); err != nil {
		return nil, err
	}
	return db, nil
}

var defaultDoctors = []entity.Doctor{
	{Name: "Dr. Vali Karimov", Specialty: "Cardiologist", Experience: "12 years experience", Image: "https://i.pravatar.cc/150?img=11"},
	{Name: "Dr. Malika Yusupova", Specialty: "Pediatrician", Experience: "8 years experience", Image: "https://i.pravatar.cc/150?img=47"},
	{Name: "Dr. Jasur Rahimov", Specialty: "Neurologist", Experience: "15 years experience", Image: "https://i.pravatar.cc/150?img=12"},
	{Name: "Dr. Nodira Aliyeva", Specialty: "Dermatologist", Experience: "6 years experience", Image: "https://i.pravatar.cc/150?img=45"},
}

// SeedDoctors inserts the default directory unless doctors already exist.
func SeedDoctors(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Doctor{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seed := make([]entity.Doctor, len(defaultDoctors))
	copy(seed, defaultDoctors)
	return db.Create(&seed).Error
}
