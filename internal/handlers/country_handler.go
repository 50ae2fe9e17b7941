package handlers

import (
	"lawdesk/internal/services"
	"lawdesk/pkg/pagination"
	"lawdesk/pkg/response"

	"github.com/gin-gonic/gin"
)

type CountryHandler struct {
	service *services.CountryService
}

func NewCountryHandler(service *services.CountryService) *CountryHandler {
	return &CountryHandler{
		service: service,
	}
}

// List 获取国家列表
func (h *CountryHandler) List(c *gin.Context) {
	params := pagination.ParsePageParams(c)
	countries, total, err := h.service.List(
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
	response.SuccessWithPage(c, countries, pageInfo)
}
