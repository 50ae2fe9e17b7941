package database

import (
	"lawdesk/internal/models"
	"lawdesk/pkg/logger"
)

// Migrate 执行数据库迁移
func Migrate() error {
	appLogger := logger.GetLogger()
	appLogger.Info("Starting database migration...")

	err := DB.AutoMigrate(
		&models.Tenant{},
		&models.User{},
		&models.Permission{},
		&models.Role{},
		&models.RolePermission{},
		&models.UserRole{},
		// 后台管理实体
		&models.AuditType{},
		&models.RiskCategory{},
		&models.CompanySetting{},
		&models.Contact{},
		&models.Country{},
		&models.Plan{},
		&models.PlanRequest{},
		&models.EmailTemplate{},
		&models.UserEmailTemplate{},
		&models.Invoice{},
	)

	if err != nil {
		appLogger.Errorf("Database migration failed: %v", err)
		return err
	}

	appLogger.Info("Database migration completed successfully")

	// 种子数据初始化将在 main.go 中单独调用，避免循环依赖

	return nil
}
