// Package seed provisions the bootstrap admin account at startup.
package seed

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"sociality/internal/common"
	"sociality/internal/config"
	"sociality/internal/dbmysql"
)

// EnsureAdmin upserts the account named by ADMIN_EMAIL/ADMIN_PASSWORD with
// the ADMIN role. A missing config pair means no admin is provisioned, which
// is fine for development.
func EnsureAdmin(ctx context.Context, db *gorm.DB, cnf *config.Config, logger *zap.Logger) error {
	email := cnf.Admin.Email
	password := cnf.Admin.Password
	if email == "" || password == "" {
		logger.Info("admin seed skipped, ADMIN_EMAIL/ADMIN_PASSWORD not set")
		return nil
	}

	var existing dbmysql.User
	err := db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	switch {
	case err == nil:
		if existing.Role == dbmysql.RoleAdmin {
			return nil
		}
		err = db.WithContext(ctx).
			Model(&existing).
			Update("role", dbmysql.RoleAdmin).Error
		if err != nil {
			return err
		}
		logger.Info("admin role granted", zap.String("email", email))
		return nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		hash, err := common.HashPassword(password)
		if err != nil {
			return err
		}
		admin := dbmysql.User{
			Username:     "admin",
			Email:        email,
			PasswordHash: hash,
			Name:         "Admin",
			Role:         dbmysql.RoleAdmin,
		}
		if err := db.WithContext(ctx).Create(&admin).Error; err != nil {
			return err
		}
		logger.Info("admin account created", zap.String("email", email))
		return nil

	default:
		return err
	}
}
