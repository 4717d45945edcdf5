package database

import (
	"campaign-backend/internal/config"
	"campaign-backend/internal/models"
	"campaign-backend/internal/utils"

	"github.com/sirupsen/logrus"
)

// SeedAdmin creates the initial admin account when no admin exists yet.
// Without it a fresh deployment has no way to log into the dashboard.
func (d *Database) SeedAdmin(cfg config.AuthConfig) error {
	var count int64
	if err := d.DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	password := cfg.AdminPassword
	if password == "" {
		logrus.Warn("ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:     cfg.AdminName,
		Email:    cfg.AdminEmail,
		Password: hashed,
		Role:     models.RoleAdmin,
	}
	if err := d.DB.Create(&admin).Error; err != nil {
		return err
	}

	logrus.WithField("email", admin.Email).Info("Seeded initial admin user")
	return nil
}
