package database

import (
	"github.com/luhambo/maintenance/internal/common/config"

	"gorm.io/gorm"
)

// initDefaultAccounts creates the seed admin and sample student if they don't exist
func initDefaultAccounts(db *gorm.DB, seed config.SeedConfig) error {
	var count int64
	if err := db.Model(&Admin{}).Where("username = ?", seed.Admin.Username).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		admin := &Admin{
			Username: seed.Admin.Username,
			Email:    seed.Admin.Email,
			Password: seed.Admin.Password,
			FullName: seed.Admin.FullName,
		}
		if err := db.Create(admin).Error; err != nil {
			return err
		}
	}

	if err := db.Model(&User{}).Where("student_no = ?", seed.Student.StudentNo).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Create(&User{
		StudentNo:    seed.Student.StudentNo,
		FullName:     seed.Student.FullName,
		Email:        seed.Student.Email,
		Password:     seed.Student.Password,
		BuildingName: seed.Student.BuildingName,
		RoomNumber:   seed.Student.RoomNumber,
		Floor:        seed.Student.Floor,
	}).Error
}
