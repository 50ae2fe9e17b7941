package handlers

import (
	"lawdesk/internal/services"
	"lawdesk/pkg/response"

	"github.com/gin-gonic/gin"
)

type PlanHandler struct {
	service *services.PlanService
}

func NewPlanHandler(service *services.PlanService) *PlanHandler {
	return &PlanHandler{
		service: service,
	}
}

// List 获取所有启用的套餐
func (h *PlanHandler) List(c *gin.Context) {
	plans, err := h.service.GetActive()
	if err != nil {
		response.ServerError(c, "查询失败")
		return
	}

	response.Success(c, plans)
}
