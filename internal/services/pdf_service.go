package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"lawdesk/internal/models"
	"lawdesk/pkg/config"
)

// PDFService 外部PDF渲染服务客户端
// 渲染内部对本服务不可见，只负责传参与收取二进制结果
type PDFService struct {
	baseURL string
	client  *http.Client
}

func NewPDFService() *PDFService {
	cfg := config.GetConfig()
	return &PDFService{
		baseURL: cfg.PDF.BaseURL,
		client: &http.Client{
			Timeout: time.Duration(cfg.PDF.Timeout) * time.Second,
		},
	}
}

// NewPDFServiceWith 注入地址与客户端创建实例（测试用）
func NewPDFServiceWith(baseURL string, client *http.Client) *PDFService {
	return &PDFService{baseURL: baseURL, client: client}
}

// renderRequest 渲染服务入参
type renderRequest struct {
	Type     string  `json:"type"` // tax 或 simplified
	Number   string  `json:"number"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	IssuedAt string  `json:"issued_at"`
	Customer string  `json:"customer"`
}

// RenderInvoice 渲染发票PDF，返回PDF字节
func (s *PDFService) RenderInvoice(invoice *models.Invoice, pdfType string) ([]byte, error) {
	customer := ""
	if invoice.User != nil {
		customer = invoice.User.Name
	}

	payload := renderRequest{
		Type:     pdfType,
		Number:   invoice.Number,
		Amount:   invoice.Amount,
		Currency: invoice.Currency,
		IssuedAt: invoice.IssuedAt.Format("2006-01-02"),
		Customer: customer,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/render/invoice", s.baseURL)
	req, err := http.NewRequest("POST", url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("创建请求失败: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("PDF渲染服务不可用: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("PDF渲染失败，响应状态码: %d", resp.StatusCode)
	}

	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取渲染结果失败: %v", err)
	}
	return pdf, nil
}
