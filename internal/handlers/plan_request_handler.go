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

type PlanRequestHandler struct {
	service *services.PlanRequestService
}

func NewPlanRequestHandler(service *services.PlanRequestService) *PlanRequestHandler {
	return &PlanRequestHandler{
		service: service,
	}
}

// CreatePlanRequestRequest 提交套餐申请请求
type CreatePlanRequestRequest struct {
	PlanID uint   `json:"plan_id" binding:"required"`
	Note   string `json:"note" binding:"max=500"`
}

// List 获取套餐申请列表
func (h *PlanRequestHandler) List(c *gin.Context) {
	claims, _ := c.Get("claims")
	tenantID := claims.(*jwt.JWTClaims).CurrentTenantID

	params := pagination.ParsePageParams(c)
	requests, total, err := h.service.List(
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
	response.SuccessWithPage(c, requests, pageInfo)
}

// GetByID 获取套餐申请详情
func (h *PlanRequestHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	claims, _ := c.Get("claims")
	tenantID := claims.(*jwt.JWTClaims).CurrentTenantID

	request, err := h.service.GetByID(uint(id), tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "套餐申请不存在")
			return
		}
		response.ServerError(c, "查询失败")
		return
	}

	response.Success(c, request)
}

// Create 提交套餐申请
func (h *PlanRequestHandler) Create(c *gin.Context) {
	claims, _ := c.Get("claims")
	userClaims := claims.(*jwt.JWTClaims)

	var req CreatePlanRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	request, err := h.service.Create(userClaims.CurrentTenantID, userClaims.UserID, req.PlanID, req.Note)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.SuccessWithMessage(c, "套餐申请已提交", request)
}

// Approve 审批通过
func (h *PlanRequestHandler) Approve(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	claims, _ := c.Get("claims")
	userClaims := claims.(*jwt.JWTClaims)

	request, err := h.service.Approve(uint(id), userClaims.CurrentTenantID, userClaims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "套餐申请不存在")
			return
		}
		if errors.Is(err, services.ErrRequestNotPending) {
			response.BusinessError(c, err.Error())
			return
		}
		response.ServerError(c, "审批失败")
		return
	}

	response.SuccessWithMessage(c, "套餐申请已批准", request)
}

// Reject 审批拒绝
func (h *PlanRequestHandler) Reject(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	claims, _ := c.Get("claims")
	userClaims := claims.(*jwt.JWTClaims)

	request, err := h.service.Reject(uint(id), userClaims.CurrentTenantID, userClaims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "套餐申请不存在")
			return
		}
		if errors.Is(err, services.ErrRequestNotPending) {
			response.BusinessError(c, err.Error())
			return
		}
		response.ServerError(c, "审批失败")
		return
	}

	response.SuccessWithMessage(c, "套餐申请已拒绝", request)
}

// Cancel 取消申请（仅限申请人本人在待审批状态下操作）
func (h *PlanRequestHandler) Cancel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	claims, _ := c.Get("claims")
	userClaims := claims.(*jwt.JWTClaims)

	if err := h.service.Cancel(uint(id), userClaims.CurrentTenantID, userClaims.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "套餐申请不存在")
			return
		}
		if errors.Is(err, services.ErrRequestNotPending) || errors.Is(err, services.ErrNotRequestOwner) {
			response.BusinessError(c, err.Error())
			return
		}
		response.ServerError(c, "取消失败")
		return
	}

	response.SuccessWithMessage(c, "套餐申请已取消", nil)
}
