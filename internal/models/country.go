package models

// Country 国家模型（全局基础数据，供快捷表单下拉使用）
type Country struct {
	BaseModel
	Name   string `gorm:"size:100;not null;index" json:"name"`
	Code   string `gorm:"size:2;unique;not null" json:"code"` // ISO-3166 alpha-2
	Status string `gorm:"size:20;default:'active'" json:"status"`
}

// TableName 指定表名
func (Country) TableName() string {
	return "countries"
}
