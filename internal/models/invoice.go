package models

import "time"

// Invoice 发票模型
// PDF渲染由外部服务完成，本服务只负责取数与转发
type Invoice struct {
	BaseModel
	TenantID uint      `gorm:"not null;index" json:"tenant_id"`
	UserID   uint      `gorm:"not null;index" json:"user_id"`
	Number   string    `gorm:"size:64;unique;not null" json:"number"`
	Amount   float64   `gorm:"not null" json:"amount"`
	Currency string    `gorm:"size:3;default:'SAR'" json:"currency"`
	Status   string    `gorm:"size:20;default:'issued'" json:"status"`
	IssuedAt time.Time `json:"issued_at"`

	// 关联
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName 指定表名
func (Invoice) TableName() string {
	return "invoices"
}

// 发票PDF类型常量
const (
	InvoicePDFTypeTax        = "tax"        // 完税发票
	InvoicePDFTypeSimplified = "simplified" // 简化发票
)

// 发票状态常量
const (
	InvoiceStatusIssued = "issued"
	InvoiceStatusPaid   = "paid"
	InvoiceStatusVoid   = "void"
)
