package models

// CompanySetting 公司设置模型
// setting_key 与 category 仅用于筛选，不通过本管理面修改
type CompanySetting struct {
	BaseModel
	TenantID     uint   `gorm:"not null;index;uniqueIndex:idx_tenant_setting_key" json:"tenant_id"`
	SettingKey   string `gorm:"size:100;not null;uniqueIndex:idx_tenant_setting_key" json:"setting_key"`
	SettingValue string `gorm:"type:text;not null" json:"setting_value"`
	Description  string `gorm:"size:500" json:"description"`
	Category     string `gorm:"size:50;not null;index" json:"category"`
	SettingType  string `gorm:"size:20;default:'text'" json:"setting_type"` // text, number, boolean, json

	// 关联
	Tenant *Tenant `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
}

// TableName 指定表名
func (CompanySetting) TableName() string {
	return "company_settings"
}

// 设置分类常量
const (
	SettingCategoryGeneral = "general"
	SettingCategoryBilling = "billing"
	SettingCategoryLegal   = "legal"
	SettingCategoryNotify  = "notification"
)
