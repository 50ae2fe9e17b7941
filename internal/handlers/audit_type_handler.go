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

type AuditTypeHandler struct {
	service *services.AuditTypeService
}

func NewAuditTypeHandler(service *services.AuditTypeService) *AuditTypeHandler {
	return &AuditTypeHandler{
		service: service,
	}
}

// CreateAuditTypeRequest 创建审计类型请求
type CreateAuditTypeRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
	Color       string `json:"color" binding:"omitempty,hexcolor6"`
}

// UpdateAuditTypeRequest 更新审计类型请求
type UpdateAuditTypeRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	Color       *string `json:"color" binding:"omitempty,hexcolor6"`
}

// List 获取审计类型列表
func (h *AuditTypeHandler) List(c *gin.Context) {
	claims, _ := c.Get("claims")
	tenantID := claims.(*jwt.JWTClaims).CurrentTenantID

	params := pagination.ParsePageParams(c)
	auditTypes, total, err := h.service.List(
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
	response.SuccessWithPage(c, auditTypes, pageInfo)
}

// GetByID 获取审计类型详情
func (h *AuditTypeHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	claims, _ := c.Get("claims")
	tenantID := claims.(*jwt.JWTClaims).CurrentTenantID

	auditType, err := h.service.GetByID(uint(id), tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "审计类型不存在")
			return
		}
		response.ServerError(c, "查询失败")
		return
	}

	response.Success(c, auditType)
}

// Create 创建审计类型
func (h *AuditTypeHandler) Create(c *gin.Context) {
	claims, _ := c.Get("claims")
	tenantID := claims.(*jwt.JWTClaims).CurrentTenantID

	var req CreateAuditTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	auditType, err := h.service.Create(tenantID, req.Name, req.Description, req.Color)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.SuccessWithMessage(c, "审计类型创建成功", auditType)
}

// Update 更新审计类型
func (h *AuditTypeHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	claims, _ := c.Get("claims")
	tenantID := claims.(*jwt.JWTClaims).CurrentTenantID

	var req UpdateAuditTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	auditType, err := h.service.Update(uint(id), tenantID, req.Name, req.Description, req.Color)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "审计类型不存在")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	response.SuccessWithMessage(c, "审计类型更新成功", auditType)
}

// Delete 删除审计类型
func (h *AuditTypeHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	claims, _ := c.Get("claims")
	tenantID := claims.(*jwt.JWTClaims).CurrentTenantID

	if err := h.service.Delete(uint(id), tenantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "审计类型不存在")
			return
		}
		response.ServerError(c, "删除失败")
		return
	}

	response.SuccessWithMessage(c, "审计类型删除成功", nil)
}

// ToggleStatus 切换启用状态
func (h *AuditTypeHandler) ToggleStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	claims, _ := c.Get("claims")
	tenantID := claims.(*jwt.JWTClaims).CurrentTenantID

	auditType, err := h.service.ToggleStatus(uint(id), tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "审计类型不存在")
			return
		}
		response.ServerError(c, "状态切换失败")
		return
	}

	response.SuccessWithMessage(c, "状态切换成功", auditType)
}
