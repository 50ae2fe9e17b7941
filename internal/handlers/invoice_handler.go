package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"lawdesk/internal/models"
	"lawdesk/internal/services"
	apperrors "lawdesk/pkg/errors"
	"lawdesk/pkg/jwt"
	"lawdesk/pkg/pagination"
	"lawdesk/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type InvoiceHandler struct {
	invoiceService *services.InvoiceService
	pdfService     *services.PDFService
}

func NewInvoiceHandler(invoiceService *services.InvoiceService, pdfService *services.PDFService) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		pdfService:     pdfService,
	}
}

// List 获取发票列表
func (h *InvoiceHandler) List(c *gin.Context) {
	claims, _ := c.Get("claims")
	tenantID := claims.(*jwt.JWTClaims).CurrentTenantID

	params := pagination.ParsePageParams(c)
	invoices, total, err := h.invoiceService.List(
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
	response.SuccessWithPage(c, invoices, pageInfo)
}

// DownloadPDF 下载发票PDF
// type: tax | simplified（默认 tax）
// disposition: inline | attachment（默认 attachment）
func (h *InvoiceHandler) DownloadPDF(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	pdfType := c.DefaultQuery("type", models.InvoicePDFTypeTax)
	if pdfType != models.InvoicePDFTypeTax && pdfType != models.InvoicePDFTypeSimplified {
		response.BadRequest(c, "发票类型必须为 tax 或 simplified")
		return
	}

	disposition := c.DefaultQuery("disposition", "attachment")
	if disposition != "inline" && disposition != "attachment" {
		disposition = "attachment"
	}

	claims, _ := c.Get("claims")
	tenantID := claims.(*jwt.JWTClaims).CurrentTenantID

	invoice, err := h.invoiceService.GetByID(uint(id), tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "发票不存在")
			return
		}
		response.ServerError(c, "查询失败")
		return
	}

	pdf, err := h.pdfService.RenderInvoice(invoice, pdfType)
	if err != nil {
		response.Error(c, apperrors.CodeExternalError, err.Error())
		return
	}

	filename := fmt.Sprintf("invoice-%s-%s.pdf", pdfType, invoice.Number)
	c.Header("Content-Disposition", fmt.Sprintf(`%s; filename="%s"`, disposition, filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
