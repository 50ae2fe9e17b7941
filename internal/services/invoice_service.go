package services

import (
	"strings"
	"time"

	"lawdesk/internal/database"
	"lawdesk/internal/models"
	"lawdesk/pkg/pagination"
	"lawdesk/pkg/query"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvoiceService struct {
	db *gorm.DB
}

func NewInvoiceService() *InvoiceService {
	return &InvoiceService{
		db: database.GetDB(),
	}
}

// Create 创建发票（发票号使用UUID，保证全局唯一）
func (s *InvoiceService) Create(tenantID, userID uint, amount float64, currency string) (*models.Invoice, error) {
	if currency == "" {
		currency = "SAR"
	}

	invoice := &models.Invoice{
		TenantID: tenantID,
		UserID:   userID,
		Number:   uuid.New().String(),
		Amount:   amount,
		Currency: currency,
		Status:   models.InvoiceStatusIssued,
		IssuedAt: time.Now(),
	}

	if err := s.db.Create(invoice).Error; err != nil {
		return nil, err
	}
	return invoice, nil
}

// GetByID 根据ID获取发票（租户范围内）
func (s *InvoiceService) GetByID(id uint, tenantID uint) (*models.Invoice, error) {
	var invoice models.Invoice
	err := s.db.Preload("User").Where("id = ? AND tenant_id = ?", id, tenantID).First(&invoice).Error
	return &invoice, err
}

// List 获取发票列表
func (s *InvoiceService) List(tenantID uint, search, status, sortField, sortDir string, params *pagination.PageParams) ([]models.Invoice, int64, error) {
	spec := &query.Spec{
		TenantID:      query.TenantScope(tenantID),
		Search:        search,
		SearchColumns: []string{"number"},
		Filters: []query.Filter{
			{Column: "status", Value: query.FilterValue(status)},
		},
		SortColumn:  sortField,
		SortDesc:    strings.EqualFold(sortDir, "desc"),
		Sortable:    []string{"number", "amount", "status", "issued_at"},
		DefaultSort: []query.Sort{{Column: "issued_at", Desc: true}},
	}

	var invoices []models.Invoice
	total, err := query.Find(s.db.Model(&models.Invoice{}), spec, params, &invoices)
	return invoices, total, err
}
