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

type RiskCategoryHandler struct {
	service *services.RiskCategoryService
}

func NewRiskCategoryHandler(service *services.RiskCategoryService) *RiskCategoryHandler {
	return &RiskCategoryHandler{
		service: service,
	}
}

// CreateRiskCategoryRequest 创建风险分类请求
type CreateRiskCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
	Color       string `json:"color" binding:"omitempty,len=7"`
}

// UpdateRiskCategoryRequest 更新风险分类请求
type UpdateRiskCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	Color       *string `json:"color" binding:"omitempty,len=7"`
}

// List 获取风险分类列表
func (h *RiskCategoryHandler) List(c *gin.Context) {
	claims, _ := c.Get("claims")
	tenantID := claims.(*jwt.JWTClaims).CurrentTenantID

	params := pagination.ParsePageParams(c)
	categories, total, err := h.service.List(
		tenantID,
		c.Query("search"),
		c.Query("status"),
		c.Query("sort_field"),
		c.Query("sort_direction"),
		params,
	)
	if err != nil {
		response.ServerError(c, "查询失败")
		return
	}

	pageInfo := pagination.NewPageInfo(params.Page, params.PageSize, total)
	response.SuccessWithPage(c, categories, pageInfo)
}

// GetByID 获取风险分类详情
func (h *RiskCategoryHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	claims, _ := c.Get("claims")
	tenantID := claims.(*jwt.JWTClaims).CurrentTenantID

	category, err := h.service.GetByID(uint(id), tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "风险分类不存在")
			return
		}
		response.ServerError(c, "查询失败")
		return
	}

	response.Success(c, category)
}

// Create 创建风险分类
func (h *RiskCategoryHandler) Create(c *gin.Context) {
	claims, _ := c.Get("claims")
	tenantID := claims.(*jwt.JWTClaims).CurrentTenantID

	var req CreateRiskCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	category, err := h.service.Create(tenantID, req.Name, req.Description, req.Color)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.SuccessWithMessage(c, "风险分类创建成功", category)
}

// Update 更新风险分类
func (h *RiskCategoryHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	claims, _ := c.Get("claims")
	tenantID := claims.(*jwt.JWTClaims).CurrentTenantID

	var req UpdateRiskCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	category, err := h.service.Update(uint(id), tenantID, req.Name, req.Description, req.Color)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "风险分类不存在")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	response.SuccessWithMessage(c, "风险分类更新成功", category)
}

// Delete 删除风险分类
func (h *RiskCategoryHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	claims, _ := c.Get("claims")
	tenantID := claims.(*jwt.JWTClaims).CurrentTenantID

	if err := h.service.Delete(uint(id), tenantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "风险分类不存在")
			return
		}
		response.ServerError(c, "删除失败")
		return
	}

	response.SuccessWithMessage(c, "风险分类删除成功", nil)
}

// ToggleStatus 切换启用状态
func (h *RiskCategoryHandler) ToggleStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	claims, _ := c.Get("claims")
	tenantID := claims.(*jwt.JWTClaims).CurrentTenantID

	category, err := h.service.ToggleStatus(uint(id), tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "风险分类不存在")
			return
		}
		response.ServerError(c, "状态切换失败")
		return
	}

	response.SuccessWithMessage(c, "状态切换成功", category)
}
