package models

// AuditType 审计类型模型
type AuditType struct {
	BaseModel
	TenantID    uint   `gorm:"not null;index" json:"tenant_id"`
	Name        string `gorm:"size:100;not null;index" json:"name"`
	Description string `gorm:"size:500" json:"description"`
	Color       string `gorm:"size:7;default:'#2196F3'" json:"color"` // #RRGGBB
	Status      string `gorm:"size:20;default:'active'" json:"status"`

	// 关联
	Tenant *Tenant `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
}

// TableName 指定表名
func (AuditType) TableName() string {
	return "audit_types"
}

// 审计类型状态常量
const (
	AuditTypeStatusActive   = "active"
	AuditTypeStatusInactive = "inactive"
)
