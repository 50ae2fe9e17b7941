package models

// EmailTemplate 邮件模板目录（全局数据）
type EmailTemplate struct {
	BaseModel
	Name      string `gorm:"size:100;not null" json:"name"`
	Slug      string `gorm:"size:100;unique;not null" json:"slug"`
	Subject   string `gorm:"size:200;not null" json:"subject"`
	FromName  string `gorm:"size:100" json:"from_name"`
	FromEmail string `gorm:"size:100" json:"from_email"`
}

// TableName 指定表名
func (EmailTemplate) TableName() string {
	return "email_templates"
}

// UserEmailTemplate 用户级模板启用记录
// 按 (用户, 模板) 记录开关；无记录时默认启用（默认行为由服务层实现，
// 列上不设默认值，保证首次切换写入的 false 原样落库）
type UserEmailTemplate struct {
	BaseModel
	UserID          uint `gorm:"not null;index;uniqueIndex:idx_user_template" json:"user_id"`
	EmailTemplateID uint `gorm:"not null;index;uniqueIndex:idx_user_template" json:"email_template_id"`
	IsActive        bool `json:"is_active"`

	// 关联
	EmailTemplate *EmailTemplate `gorm:"foreignKey:EmailTemplateID" json:"email_template,omitempty"`
}

// TableName 指定表名
func (UserEmailTemplate) TableName() string {
	return "user_email_templates"
}
