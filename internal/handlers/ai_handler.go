package handlers

import (
	"lawdesk/internal/services"
	apperrors "lawdesk/pkg/errors"
	"lawdesk/pkg/response"

	"github.com/gin-gonic/gin"
)

// AIHandler AI摘要测试台
// 仅用于后台在线验证摘要服务，不做任何持久化
type AIHandler struct {
	service *services.AIService
}

func NewAIHandler(service *services.AIService) *AIHandler {
	return &AIHandler{
		service: service,
	}
}

// SummarizeRequest 摘要请求
type SummarizeRequest struct {
	Text      string `json:"text" binding:"required"`
	MaxLength int    `json:"max_length" binding:"omitempty,min=10,max=2000"`
	Focus     string `json:"focus" binding:"omitempty,max=200"`
}

// Summarize 执行文本摘要
// 失败时回显原始输入，便于调整后重试
func (h *AIHandler) Summarize(c *gin.Context) {
	var req SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	maxLength := services.ClampSummaryLength(req.MaxLength)

	summary, err := h.service.Summarize(req.Text, maxLength, req.Focus)
	if err != nil {
		response.ErrorWithData(c, apperrors.CodeExternalError, err.Error(), gin.H{
			"text":       req.Text,
			"max_length": maxLength,
			"focus":      req.Focus,
		})
		return
	}

	response.Success(c, gin.H{
		"summary":    summary,
		"text":       req.Text,
		"max_length": maxLength,
		"focus":      req.Focus,
	})
}
