package handlers

import (
	"lawdesk/internal/services"
	"lawdesk/pkg/response"

	"github.com/gin-gonic/gin"
)

type PermissionHandler struct {
	service *services.PermissionService
}

func NewPermissionHandler() *PermissionHandler {
	return &PermissionHandler{
		service: services.NewPermissionService(),
	}
}

// List 获取权限列表（支持按模块过滤）
func (h *PermissionHandler) List(c *gin.Context) {
	module := c.Query("module")

	var (
		permissions interface{}
		err         error
	)
	if module != "" {
		permissions, err = h.service.GetByModule(module)
	} else {
		permissions, err = h.service.GetAll()
	}
	if err != nil {
		response.ServerError(c, "查询失败")
		return
	}

	response.Success(c, permissions)
}
