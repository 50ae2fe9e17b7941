package router

import (
	"time"

	"lawdesk/internal/handlers"
	"lawdesk/internal/middleware"
	"lawdesk/internal/services"
	"lawdesk/pkg/response"

	"github.com/gin-gonic/gin"
)

// SetupRouter 设置路由
func SetupRouter() *gin.Engine {
	router := gin.New()

	// 中间件
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.SetupCORS())

	// 自定义校验规则
	handlers.RegisterValidators()

	// 注册路由
	registerRoutes(router)
	return router
}

// 注册所有路由
func registerRoutes(router *gin.Engine) {

	auth := middleware.NewAuthMiddleware()

	// API路由组
	api := router.Group("/api/v1")
	{
		// 健康检查接口
		api.GET("/health", healthCheck)
		api.GET("/ping", ping)

		// JWT认证路由（无需认证）
		authHandler := handlers.NewAuthHandler(services.NewUserService())
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/refresh", authHandler.RefreshToken)
			authGroup.GET("/me", auth.RequireLogin(), authHandler.Me)
		}

		// 用户路由（添加权限保护）
		userHandler := handlers.NewUserHandler()
		users := api.Group("/users")
		{
			users.POST("", auth.RequireLogin(), auth.RequirePermission("user:create"), userHandler.Create)
			users.GET("", auth.RequireLogin(), auth.RequirePermission("user:list"), userHandler.List)
			users.GET("/:id", auth.RequireLogin(), auth.RequirePermission("user:read"), userHandler.GetByID)
			users.PUT("/:id", auth.RequireLogin(), auth.RequirePermission("user:update"), userHandler.Update)
			users.DELETE("/:id", auth.RequireLogin(), auth.RequirePermission("user:delete"), userHandler.Delete)

			// 快捷操作
			users.POST("/:id/activate", auth.RequireLogin(), auth.RequirePermission("user:update"), userHandler.Activate)
			users.POST("/:id/deactivate", auth.RequireLogin(), auth.RequirePermission("user:update"), userHandler.Deactivate)
			users.POST("/:id/reset-password", auth.RequireLogin(), auth.RequirePermission("user:update"), userHandler.ResetPassword)

			// 角色与权限
			users.POST("/:id/roles", auth.RequireLogin(), auth.RequireTenantAdmin(), userHandler.AssignRoles)
			users.GET("/:id/roles", auth.RequireLogin(), auth.RequirePermission("user:read"), userHandler.GetUserRoles)
			users.GET("/:id/permissions", auth.RequireLogin(), auth.RequirePermission("user:read"), userHandler.GetUserPermissions)
		}

		// 租户路由（平台管理员专用）
		tenantHandler := handlers.NewTenantHandler()
		tenants := api.Group("/tenants")
		tenants.Use(auth.RequireLogin(), auth.RequirePlatformAdmin())
		{
			tenants.POST("", tenantHandler.Create)
			tenants.GET("", tenantHandler.List)
			tenants.GET("/:id", tenantHandler.GetByID)
			tenants.PUT("/:id", tenantHandler.Update)
			tenants.DELETE("/:id", tenantHandler.Delete)
		}

		// 角色路由
		roleHandler := handlers.NewRoleHandler()
		roles := api.Group("/roles")
		{
			roles.POST("", auth.RequireLogin(), auth.RequirePermission("role:create"), roleHandler.Create)
			roles.GET("", auth.RequireLogin(), auth.RequirePermission("role:list"), roleHandler.List)
			roles.GET("/:id", auth.RequireLogin(), auth.RequirePermission("role:read"), roleHandler.GetByID)
			roles.PUT("/:id", auth.RequireLogin(), auth.RequirePermission("role:update"), roleHandler.Update)
			roles.DELETE("/:id", auth.RequireLogin(), auth.RequirePermission("role:delete"), roleHandler.Delete)

			roles.POST("/:id/permissions", auth.RequireLogin(), auth.RequirePermission("role:update"), roleHandler.AssignPermissions)
			roles.GET("/:id/permissions", auth.RequireLogin(), auth.RequirePermission("role:read"), roleHandler.GetPermissions)
		}

		// 权限路由（只读）
		permissionHandler := handlers.NewPermissionHandler()
		api.GET("/permissions", auth.RequireLogin(), auth.RequirePermission("role:read"), permissionHandler.List)

		// 审计类型路由
		auditTypeHandler := handlers.NewAuditTypeHandler(services.NewAuditTypeService())
		auditTypes := api.Group("/audit-types")
		{
			auditTypes.POST("", auth.RequireLogin(), auth.RequirePermission("audit_type:create"), auditTypeHandler.Create)
			auditTypes.GET("", auth.RequireLogin(), auth.RequirePermission("audit_type:list"), auditTypeHandler.List)
			auditTypes.GET("/:id", auth.RequireLogin(), auth.RequirePermission("audit_type:read"), auditTypeHandler.GetByID)
			auditTypes.PUT("/:id", auth.RequireLogin(), auth.RequirePermission("audit_type:update"), auditTypeHandler.Update)
			auditTypes.DELETE("/:id", auth.RequireLogin(), auth.RequirePermission("audit_type:delete"), auditTypeHandler.Delete)
			auditTypes.POST("/:id/toggle-status", auth.RequireLogin(), auth.RequirePermission("audit_type:update"), auditTypeHandler.ToggleStatus)
		}

		// 风险分类路由
		riskCategoryHandler := handlers.NewRiskCategoryHandler(services.NewRiskCategoryService())
		riskCategories := api.Group("/risk-categories")
		{
			riskCategories.POST("", auth.RequireLogin(), auth.RequirePermission("risk_category:create"), riskCategoryHandler.Create)
			riskCategories.GET("", auth.RequireLogin(), auth.RequirePermission("risk_category:list"), riskCategoryHandler.List)
			riskCategories.GET("/:id", auth.RequireLogin(), auth.RequirePermission("risk_category:read"), riskCategoryHandler.GetByID)
			riskCategories.PUT("/:id", auth.RequireLogin(), auth.RequirePermission("risk_category:update"), riskCategoryHandler.Update)
			riskCategories.DELETE("/:id", auth.RequireLogin(), auth.RequirePermission("risk_category:delete"), riskCategoryHandler.Delete)
			riskCategories.POST("/:id/toggle-status", auth.RequireLogin(), auth.RequirePermission("risk_category:update"), riskCategoryHandler.ToggleStatus)
		}

		// 公司设置路由（仅查询和更新，设置项由种子数据创建）
		companySettingHandler := handlers.NewCompanySettingHandler(services.NewCompanySettingService())
		companySettings := api.Group("/company-settings")
		{
			companySettings.GET("", auth.RequireLogin(), auth.RequirePermission("company_setting:list"), companySettingHandler.List)
			companySettings.GET("/:id", auth.RequireLogin(), auth.RequirePermission("company_setting:read"), companySettingHandler.GetByID)
			companySettings.PUT("/:id", auth.RequireLogin(), auth.RequirePermission("company_setting:update"), companySettingHandler.Update)
		}

		// 联系请求路由（全局数据，仅查看和删除）
		contactHandler := handlers.NewContactHandler(services.NewContactService())
		contacts := api.Group("/contacts")
		{
			contacts.GET("", auth.RequireLogin(), auth.RequirePermission("contact:list"), contactHandler.List)
			contacts.GET("/:id", auth.RequireLogin(), auth.RequirePermission("contact:read"), contactHandler.GetByID)
			contacts.DELETE("/:id", auth.RequireLogin(), auth.RequirePermission("contact:delete"), contactHandler.Delete)
		}

		// 套餐路由（只读）
		planHandler := handlers.NewPlanHandler(services.NewPlanService())
		api.GET("/plans", auth.RequireLogin(), planHandler.List)

		// 套餐变更请求路由
		planRequestHandler := handlers.NewPlanRequestHandler(services.NewPlanRequestService())
		planRequests := api.Group("/plan-requests")
		{
			planRequests.POST("", auth.RequireLogin(), planRequestHandler.Create)
			planRequests.GET("", auth.RequireLogin(), auth.RequirePermission("plan_request:list"), planRequestHandler.List)
			planRequests.GET("/:id", auth.RequireLogin(), auth.RequirePermission("plan_request:read"), planRequestHandler.GetByID)
			planRequests.POST("/:id/approve", auth.RequireLogin(), auth.RequirePermission("plan_request:update"), planRequestHandler.Approve)
			planRequests.POST("/:id/reject", auth.RequireLogin(), auth.RequirePermission("plan_request:update"), planRequestHandler.Reject)
			planRequests.POST("/:id/cancel", auth.RequireLogin(), planRequestHandler.Cancel)
		}

		// 邮件模板路由（按用户启停）
		emailTemplateHandler := handlers.NewEmailTemplateHandler(services.NewEmailTemplateService())
		emailTemplates := api.Group("/email-templates")
		emailTemplates.Use(auth.RequireLogin())
		{
			emailTemplates.GET("", emailTemplateHandler.List)
			emailTemplates.POST("/:id/toggle", emailTemplateHandler.Toggle)
		}

		// 国家路由（只读）
		countryHandler := handlers.NewCountryHandler(services.NewCountryService())
		api.GET("/countries", auth.RequireLogin(), countryHandler.List)

		// 发票路由
		invoiceHandler := handlers.NewInvoiceHandler(services.NewInvoiceService(), services.NewPDFService())
		invoices := api.Group("/invoices")
		{
			invoices.GET("", auth.RequireLogin(), auth.RequirePermission("invoice:list"), invoiceHandler.List)
			invoices.GET("/:id/pdf", auth.RequireLogin(), auth.RequirePermission("invoice:read"), invoiceHandler.DownloadPDF)
		}

		// 快捷操作表单数据
		quickActionHandler := handlers.NewQuickActionHandler(
			services.NewAuditTypeService(),
			services.NewRiskCategoryService(),
			services.NewCountryService(),
			services.NewPlanService(),
		)
		api.GET("/quick-actions/form-data", auth.RequireLogin(), quickActionHandler.FormData)

		// AI摘要
		aiHandler := handlers.NewAIHandler(services.NewAIService())
		api.POST("/ai/summarize", auth.RequireLogin(), aiHandler.Summarize)
	}
}

func healthCheck(c *gin.Context) {
	data := map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now(),
		"service":   "LawDesk",
		"version":   "1.0.0",
	}
	response.Success(c, data)
}

func ping(c *gin.Context) {
	response.SuccessWithMessage(c, "pong", nil)
}
