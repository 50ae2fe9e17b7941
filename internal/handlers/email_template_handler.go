package handlers

import (
	"errors"
	"strconv"

	"lawdesk/internal/services"
	"lawdesk/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type EmailTemplateHandler struct {
	service *services.EmailTemplateService
}

func NewEmailTemplateHandler(service *services.EmailTemplateService) *EmailTemplateHandler {
	return &EmailTemplateHandler{
		service: service,
	}
}

// List 获取模板目录及当前用户的启用状态
func (h *EmailTemplateHandler) List(c *gin.Context) {
	userID := c.GetUint("user_id")

	templates, err := h.service.ListForUser(userID)
	if err != nil {
		response.ServerError(c, "查询失败")
		return
	}

	response.Success(c, templates)
}

// Toggle 切换当前用户的模板启用状态
func (h *EmailTemplateHandler) Toggle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	userID := c.GetUint("user_id")

	record, err := h.service.Toggle(userID, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "邮件模板不存在")
			return
		}
		response.ServerError(c, "状态切换失败")
		return
	}

	response.SuccessWithMessage(c, "模板状态切换成功", record)
}
