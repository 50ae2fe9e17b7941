package handlers

import (
	"errors"
	"strconv"

	"lawdesk/internal/services"
	"lawdesk/pkg/jwt"
	"lawdesk/pkg/pagination"
	"lawdesk/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CompanySettingHandler struct {
	service *services.CompanySettingService
}

func NewCompanySettingHandler(service *services.CompanySettingService) *CompanySettingHandler {
	return &CompanySettingHandler{
		service: service,
	}
}

// UpdateCompanySettingRequest 更新设置请求
// 只允许修改设置值与描述，键与分类由种子数据维护
type UpdateCompanySettingRequest struct {
	SettingValue string  `json:"setting_value" binding:"required"`
	Description  *string `json:"description" binding:"omitempty,max=500"`
}

// List 获取公司设置列表
func (h *CompanySettingHandler) List(c *gin.Context) {
	claims, _ := c.Get("claims")
	tenantID := claims.(*jwt.JWTClaims).CurrentTenantID

	params := pagination.ParsePageParams(c)
	settings, total, err := h.service.List(
		tenantID,
		c.Query("search"),
		c.Query("category"),
		c.Query("setting_type"),
		c.Query("sort_field"),
		c.Query("sort_direction"),
		params,
	)
	if err != nil {
		response.ServerError(c, "查询失败")
		return
	}

	pageInfo := pagination.NewPageInfo(params.Page, params.PageSize, total)
	response.SuccessWithPage(c, settings, pageInfo)
}

// GetByID 获取设置详情
func (h *CompanySettingHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	claims, _ := c.Get("claims")
	tenantID := claims.(*jwt.JWTClaims).CurrentTenantID

	setting, err := h.service.GetByID(uint(id), tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "设置不存在")
			return
		}
		response.ServerError(c, "查询失败")
		return
	}

	response.Success(c, setting)
}

// Update 更新设置
func (h *CompanySettingHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	claims, _ := c.Get("claims")
	tenantID := claims.(*jwt.JWTClaims).CurrentTenantID

	var req UpdateCompanySettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: 设置值不能为空")
		return
	}

	setting, err := h.service.Update(c.Request.Context(), uint(id), tenantID, req.SettingValue, req.Description)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "设置不存在")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	response.SuccessWithMessage(c, "设置更新成功", setting)
}
