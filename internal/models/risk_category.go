package models

// RiskCategory 风险分类模型
type RiskCategory struct {
	BaseModel
	TenantID    uint   `gorm:"not null;index" json:"tenant_id"`
	Name        string `gorm:"size:100;not null;index" json:"name"`
	Description string `gorm:"size:500" json:"description"`
	Color       string `gorm:"size:7;default:'#FF9800'" json:"color"` // 固定7位，如 #FF9800
	Status      string `gorm:"size:20;default:'active'" json:"status"`

	// 关联
	Tenant *Tenant `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
}

// TableName 指定表名
func (RiskCategory) TableName() string {
	return "risk_categories"
}

// 风险分类状态常量
const (
	RiskCategoryStatusActive   = "active"
	RiskCategoryStatusInactive = "inactive"
)
