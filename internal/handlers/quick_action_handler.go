package handlers

import (
	"lawdesk/internal/services"
	"lawdesk/pkg/jwt"
	"lawdesk/pkg/response"

	"github.com/gin-gonic/gin"
)

// QuickActionHandler 快捷操作表单数据
// 一次性下发快捷创建弹窗需要的全部下拉数据
type QuickActionHandler struct {
	auditTypeService    *services.AuditTypeService
	riskCategoryService *services.RiskCategoryService
	countryService      *services.CountryService
	planService         *services.PlanService
}

func NewQuickActionHandler(
	auditTypeService *services.AuditTypeService,
	riskCategoryService *services.RiskCategoryService,
	countryService *services.CountryService,
	planService *services.PlanService,
) *QuickActionHandler {
	return &QuickActionHandler{
		auditTypeService:    auditTypeService,
		riskCategoryService: riskCategoryService,
		countryService:      countryService,
		planService:         planService,
	}
}

// FormData 获取快捷操作表单数据
func (h *QuickActionHandler) FormData(c *gin.Context) {
	claims, _ := c.Get("claims")
	tenantID := claims.(*jwt.JWTClaims).CurrentTenantID

	auditTypes, err := h.auditTypeService.GetActive(tenantID)
	if err != nil {
		response.ServerError(c, "查询审计类型失败")
		return
	}

	riskCategories, err := h.riskCategoryService.GetActive(tenantID)
	if err != nil {
		response.ServerError(c, "查询风险分类失败")
		return
	}

	countries, err := h.countryService.GetActive()
	if err != nil {
		response.ServerError(c, "查询国家列表失败")
		return
	}

	plans, err := h.planService.GetActive()
	if err != nil {
		response.ServerError(c, "查询套餐列表失败")
		return
	}

	response.Success(c, gin.H{
		"audit_types":     auditTypes,
		"risk_categories": riskCategories,
		"countries":       countries,
		"plans":           plans,
	})
}
