package handlers

import (
	"errors"
	"strconv"

	"lawdesk/internal/services"
	"lawdesk/pkg/pagination"
	"lawdesk/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ContactHandler struct {
	service *services.ContactService
}

func NewContactHandler(service *services.ContactService) *ContactHandler {
	return &ContactHandler{
		service: service,
	}
}

// List 获取联系消息列表
func (h *ContactHandler) List(c *gin.Context) {
	params := pagination.ParsePageParams(c)
	contacts, total, err := h.service.List(
		c.Query("search"),
		c.Query("sort_field"),
		c.Query("sort_direction"),
		params,
	)
	if err != nil {
		response.ServerError(c, "查询失败")
		return
	}

	pageInfo := pagination.NewPageInfo(params.Page, params.PageSize, total)
	response.SuccessWithPage(c, contacts, pageInfo)
}

// GetByID 获取联系消息详情
func (h *ContactHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	contact, err := h.service.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "联系消息不存在")
			return
		}
		response.ServerError(c, "查询失败")
		return
	}

	response.Success(c, contact)
}

// Delete 删除联系消息
func (h *ContactHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	if err := h.service.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "联系消息不存在")
			return
		}
		response.ServerError(c, "删除失败")
		return
	}

	response.SuccessWithMessage(c, "联系消息删除成功", nil)
}
