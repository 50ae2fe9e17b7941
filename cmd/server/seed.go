package main

import (
	"fmt"

	"lawdesk/internal/database"
	"lawdesk/internal/models"
	"lawdesk/pkg/logger"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// seedData 初始化种子数据
func seedData() error {
	appLogger := logger.GetLogger()
	appLogger.Info("Starting seed data initialization...")

	db := database.GetDB()

	// 1. 创建默认租户
	if err := createDefaultTenant(db); err != nil {
		return fmt.Errorf("创建默认租户失败: %v", err)
	}

	// 2. 初始化权限
	if err := initializePermissions(db); err != nil {
		return fmt.Errorf("初始化权限失败: %v", err)
	}

	// 3. 创建平台管理员角色
	if err := createPlatformAdminRole(db); err != nil {
		return fmt.Errorf("创建平台管理员角色失败: %v", err)
	}

	// 4. 创建默认管理员用户
	if err := createDefaultAdmin(db); err != nil {
		return fmt.Errorf("创建默认管理员失败: %v", err)
	}

	// 5. 初始化套餐
	if err := initializePlans(db); err != nil {
		return fmt.Errorf("初始化套餐失败: %v", err)
	}

	// 6. 初始化国家基础数据
	if err := initializeCountries(db); err != nil {
		return fmt.Errorf("初始化国家数据失败: %v", err)
	}

	// 7. 初始化邮件模板目录
	if err := initializeEmailTemplates(db); err != nil {
		return fmt.Errorf("初始化邮件模板失败: %v", err)
	}

	// 8. 初始化默认租户的公司设置
	if err := initializeCompanySettings(db); err != nil {
		return fmt.Errorf("初始化公司设置失败: %v", err)
	}

	appLogger.Info("Seed data initialization completed successfully")
	return nil
}

// createDefaultTenant 创建默认租户
func createDefaultTenant(db *gorm.DB) error {
	var count int64
	db.Model(&models.Tenant{}).Where("code = ?", "default").Count(&count)
	if count > 0 {
		logger.GetLogger().Info("默认租户已存在，跳过创建")
		return nil
	}

	tenant := &models.Tenant{
		Name:   "默认租户",
		Code:   "default",
		Status: models.TenantStatusActive,
	}

	if err := db.Create(tenant).Error; err != nil {
		return err
	}

	logger.GetLogger().Info("默认租户创建成功")
	return nil
}

// initializePermissions 初始化权限
func initializePermissions(db *gorm.DB) error {
	// 定义默认权限
	defaultPermissions := []models.Permission{
		// 租户管理权限
		{Code: "tenant:create", Name: "创建租户", Module: models.ModuleTenant, Action: models.ActionCreate, Description: "创建新租户"},
		{Code: "tenant:read", Name: "查看租户", Module: models.ModuleTenant, Action: models.ActionRead, Description: "查看租户信息"},
		{Code: "tenant:update", Name: "更新租户", Module: models.ModuleTenant, Action: models.ActionUpdate, Description: "更新租户信息"},
		{Code: "tenant:delete", Name: "删除租户", Module: models.ModuleTenant, Action: models.ActionDelete, Description: "删除租户"},
		{Code: "tenant:list", Name: "租户列表", Module: models.ModuleTenant, Action: models.ActionList, Description: "查看租户列表"},

		// 用户管理权限
		{Code: "user:create", Name: "创建用户", Module: models.ModuleUser, Action: models.ActionCreate, Description: "创建新用户"},
		{Code: "user:read", Name: "查看用户", Module: models.ModuleUser, Action: models.ActionRead, Description: "查看用户信息"},
		{Code: "user:update", Name: "更新用户", Module: models.ModuleUser, Action: models.ActionUpdate, Description: "更新用户信息"},
		{Code: "user:delete", Name: "删除用户", Module: models.ModuleUser, Action: models.ActionDelete, Description: "删除用户"},
		{Code: "user:list", Name: "用户列表", Module: models.ModuleUser, Action: models.ActionList, Description: "查看用户列表"},

		// 角色管理权限
		{Code: "role:create", Name: "创建角色", Module: models.ModuleRole, Action: models.ActionCreate, Description: "创建新角色"},
		{Code: "role:read", Name: "查看角色", Module: models.ModuleRole, Action: models.ActionRead, Description: "查看角色信息"},
		{Code: "role:update", Name: "更新角色", Module: models.ModuleRole, Action: models.ActionUpdate, Description: "更新角色信息"},
		{Code: "role:delete", Name: "删除角色", Module: models.ModuleRole, Action: models.ActionDelete, Description: "删除角色"},
		{Code: "role:list", Name: "角色列表", Module: models.ModuleRole, Action: models.ActionList, Description: "查看角色列表"},

		// 审计类型权限
		{Code: "audit_type:create", Name: "创建审计类型", Module: models.ModuleAuditType, Action: models.ActionCreate, Description: "创建审计类型"},
		{Code: "audit_type:read", Name: "查看审计类型", Module: models.ModuleAuditType, Action: models.ActionRead, Description: "查看审计类型详情"},
		{Code: "audit_type:update", Name: "更新审计类型", Module: models.ModuleAuditType, Action: models.ActionUpdate, Description: "更新审计类型"},
		{Code: "audit_type:delete", Name: "删除审计类型", Module: models.ModuleAuditType, Action: models.ActionDelete, Description: "删除审计类型"},
		{Code: "audit_type:list", Name: "审计类型列表", Module: models.ModuleAuditType, Action: models.ActionList, Description: "查看审计类型列表"},

		// 风险分类权限
		{Code: "risk_category:create", Name: "创建风险分类", Module: models.ModuleRiskCategory, Action: models.ActionCreate, Description: "创建风险分类"},
		{Code: "risk_category:read", Name: "查看风险分类", Module: models.ModuleRiskCategory, Action: models.ActionRead, Description: "查看风险分类详情"},
		{Code: "risk_category:update", Name: "更新风险分类", Module: models.ModuleRiskCategory, Action: models.ActionUpdate, Description: "更新风险分类"},
		{Code: "risk_category:delete", Name: "删除风险分类", Module: models.ModuleRiskCategory, Action: models.ActionDelete, Description: "删除风险分类"},
		{Code: "risk_category:list", Name: "风险分类列表", Module: models.ModuleRiskCategory, Action: models.ActionList, Description: "查看风险分类列表"},

		// 公司设置权限
		{Code: "company_setting:read", Name: "查看公司设置", Module: models.ModuleCompanySetting, Action: models.ActionRead, Description: "查看公司设置详情"},
		{Code: "company_setting:update", Name: "更新公司设置", Module: models.ModuleCompanySetting, Action: models.ActionUpdate, Description: "更新公司设置值"},
		{Code: "company_setting:list", Name: "公司设置列表", Module: models.ModuleCompanySetting, Action: models.ActionList, Description: "查看公司设置列表"},

		// 联系消息权限
		{Code: "contact:read", Name: "查看联系消息", Module: models.ModuleContact, Action: models.ActionRead, Description: "查看联系消息详情"},
		{Code: "contact:delete", Name: "删除联系消息", Module: models.ModuleContact, Action: models.ActionDelete, Description: "删除联系消息"},
		{Code: "contact:list", Name: "联系消息列表", Module: models.ModuleContact, Action: models.ActionList, Description: "查看联系消息列表"},

		// 套餐申请权限
		{Code: "plan_request:read", Name: "查看套餐申请", Module: models.ModulePlanRequest, Action: models.ActionRead, Description: "查看套餐申请详情"},
		{Code: "plan_request:update", Name: "审批套餐申请", Module: models.ModulePlanRequest, Action: models.ActionUpdate, Description: "批准或拒绝套餐申请"},
		{Code: "plan_request:list", Name: "套餐申请列表", Module: models.ModulePlanRequest, Action: models.ActionList, Description: "查看套餐申请列表"},

		// 发票权限
		{Code: "invoice:read", Name: "查看发票", Module: models.ModuleInvoice, Action: models.ActionRead, Description: "查看及下载发票"},
		{Code: "invoice:list", Name: "发票列表", Module: models.ModuleInvoice, Action: models.ActionList, Description: "查看发票列表"},
	}

	for _, perm := range defaultPermissions {
		var count int64
		db.Model(&models.Permission{}).Where("code = ?", perm.Code).Count(&count)
		if count == 0 {
			if err := db.Create(&perm).Error; err != nil {
				return err
			}
		}
	}

	logger.GetLogger().Infof("权限初始化完成，共 %d 项", len(defaultPermissions))
	return nil
}

// createPlatformAdminRole 创建平台管理员角色并授予全部权限
func createPlatformAdminRole(db *gorm.DB) error {
	var count int64
	db.Model(&models.Role{}).Where("code = ?", models.RolePlatformAdmin).Count(&count)
	if count > 0 {
		logger.GetLogger().Info("平台管理员角色已存在，跳过创建")
		return nil
	}

	role := &models.Role{
		TenantID:    0,
		Code:        models.RolePlatformAdmin,
		Name:        "平台管理员",
		Description: "拥有全部权限的系统角色",
		IsSystem:    true,
		Status:      models.RoleStatusActive,
	}
	if err := db.Create(role).Error; err != nil {
		return err
	}

	var permissions []models.Permission
	db.Find(&permissions)

	var rolePermissions []models.RolePermission
	for _, perm := range permissions {
		rolePermissions = append(rolePermissions, models.RolePermission{
			RoleID:       role.ID,
			PermissionID: perm.ID,
		})
	}

	if len(rolePermissions) > 0 {
		if err := db.Create(&rolePermissions).Error; err != nil {
			return err
		}
	}

	logger.GetLogger().Info("平台管理员角色创建成功")
	return nil
}

// createDefaultAdmin 创建默认管理员用户
func createDefaultAdmin(db *gorm.DB) error {
	var count int64
	db.Model(&models.User{}).Where("username = ?", "admin").Count(&count)
	if count > 0 {
		logger.GetLogger().Info("管理员用户已存在，跳过创建")
		return nil
	}

	// 获取默认租户
	var tenant models.Tenant
	if err := db.Where("code = ?", "default").First(&tenant).Error; err != nil {
		return fmt.Errorf("获取默认租户失败: %v", err)
	}

	// 创建用户
	user := &models.User{
		TenantID:        tenant.ID,
		Username:        "admin",
		Email:           "admin@example.com",
		Name:            "系统管理员",
		Status:          models.UserStatusActive,
		IsPlatformAdmin: true,
		IsTenantAdmin:   true,
	}

	// 设置密码
	if err := user.SetPassword("Admin@123"); err != nil {
		return fmt.Errorf("设置密码失败: %v", err)
	}

	if err := db.Create(user).Error; err != nil {
		return err
	}

	// 分配平台管理员角色
	var role models.Role
	if err := db.Where("code = ?", models.RolePlatformAdmin).First(&role).Error; err == nil {
		userRole := &models.UserRole{
			UserID:    user.ID,
			RoleID:    role.ID,
			CreatedBy: user.ID,
		}
		db.Create(userRole)
	}

	logger.GetLogger().Infof("默认管理员创建成功 - 用户名: admin, 密码: Admin@123")
	return nil
}

// initializePlans 初始化套餐
func initializePlans(db *gorm.DB) error {
	defaultPlans := []models.Plan{
		{
			Name:            "基础版",
			Slug:            "basic",
			Price:           0,
			BillingInterval: "monthly",
			Features:        datatypes.JSON([]byte(`{"cases": 10, "users": 3, "ai_summary": false}`)),
			Status:          "active",
		},
		{
			Name:            "专业版",
			Slug:            "professional",
			Price:           49.90,
			BillingInterval: "monthly",
			Features:        datatypes.JSON([]byte(`{"cases": 200, "users": 20, "ai_summary": true}`)),
			Status:          "active",
		},
		{
			Name:            "旗舰版",
			Slug:            "enterprise",
			Price:           199.90,
			BillingInterval: "monthly",
			Features:        datatypes.JSON([]byte(`{"cases": -1, "users": -1, "ai_summary": true}`)),
			Status:          "active",
		},
	}

	for _, plan := range defaultPlans {
		var count int64
		db.Model(&models.Plan{}).Where("slug = ?", plan.Slug).Count(&count)
		if count == 0 {
			if err := db.Create(&plan).Error; err != nil {
				return err
			}
		}
	}

	logger.GetLogger().Info("套餐初始化完成")
	return nil
}

// initializeCountries 初始化国家基础数据
func initializeCountries(db *gorm.DB) error {
	var count int64
	db.Model(&models.Country{}).Count(&count)
	if count > 0 {
		return nil
	}

	countries := []models.Country{
		{Name: "中国", Code: "CN", Status: "active"},
		{Name: "美国", Code: "US", Status: "active"},
		{Name: "英国", Code: "GB", Status: "active"},
		{Name: "德国", Code: "DE", Status: "active"},
		{Name: "法国", Code: "FR", Status: "active"},
		{Name: "日本", Code: "JP", Status: "active"},
		{Name: "新加坡", Code: "SG", Status: "active"},
		{Name: "澳大利亚", Code: "AU", Status: "active"},
	}

	if err := db.Create(&countries).Error; err != nil {
		return err
	}

	logger.GetLogger().Infof("国家基础数据初始化完成，共 %d 条", len(countries))
	return nil
}

// initializeEmailTemplates 初始化邮件模板目录
func initializeEmailTemplates(db *gorm.DB) error {
	defaultTemplates := []models.EmailTemplate{
		{Name: "欢迎邮件", Slug: "welcome", Subject: "欢迎加入", FromName: "LawDesk", FromEmail: "noreply@lawdesk.example.com"},
		{Name: "套餐审批通知", Slug: "plan-approved", Subject: "您的套餐申请已通过", FromName: "LawDesk", FromEmail: "noreply@lawdesk.example.com"},
		{Name: "套餐拒绝通知", Slug: "plan-rejected", Subject: "您的套餐申请未通过", FromName: "LawDesk", FromEmail: "noreply@lawdesk.example.com"},
		{Name: "发票已生成", Slug: "invoice-created", Subject: "您有一张新发票", FromName: "LawDesk", FromEmail: "billing@lawdesk.example.com"},
		{Name: "密码重置", Slug: "password-reset", Subject: "密码重置确认", FromName: "LawDesk", FromEmail: "noreply@lawdesk.example.com"},
	}

	for _, tmpl := range defaultTemplates {
		var count int64
		db.Model(&models.EmailTemplate{}).Where("slug = ?", tmpl.Slug).Count(&count)
		if count == 0 {
			if err := db.Create(&tmpl).Error; err != nil {
				return err
			}
		}
	}

	logger.GetLogger().Info("邮件模板目录初始化完成")
	return nil
}

// initializeCompanySettings 初始化默认租户的公司设置
func initializeCompanySettings(db *gorm.DB) error {
	var tenant models.Tenant
	if err := db.Where("code = ?", "default").First(&tenant).Error; err != nil {
		return fmt.Errorf("获取默认租户失败: %v", err)
	}

	defaultSettings := []models.CompanySetting{
		{TenantID: tenant.ID, SettingKey: "company_name", SettingValue: "LawDesk Demo", Description: "公司名称", Category: models.SettingCategoryGeneral, SettingType: "text"},
		{TenantID: tenant.ID, SettingKey: "company_email", SettingValue: "contact@lawdesk.example.com", Description: "联系邮箱", Category: models.SettingCategoryGeneral, SettingType: "text"},
		{TenantID: tenant.ID, SettingKey: "invoice_prefix", SettingValue: "INV", Description: "发票号前缀", Category: models.SettingCategoryBilling, SettingType: "text"},
		{TenantID: tenant.ID, SettingKey: "tax_rate", SettingValue: "0.13", Description: "默认税率", Category: models.SettingCategoryBilling, SettingType: "number"},
		{TenantID: tenant.ID, SettingKey: "retention_notice", SettingValue: "true", Description: "是否展示数据保留提示", Category: models.SettingCategoryLegal, SettingType: "boolean"},
		{TenantID: tenant.ID, SettingKey: "notify_on_plan_request", SettingValue: "true", Description: "收到套餐申请时通知管理员", Category: models.SettingCategoryNotify, SettingType: "boolean"},
	}

	for _, setting := range defaultSettings {
		var count int64
		db.Model(&models.CompanySetting{}).
			Where("tenant_id = ? AND setting_key = ?", setting.TenantID, setting.SettingKey).
			Count(&count)
		if count == 0 {
			if err := db.Create(&setting).Error; err != nil {
				return err
			}
		}
	}

	logger.GetLogger().Info("公司设置初始化完成")
	return nil
}
