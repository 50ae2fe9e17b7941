package models

import "time"

// Contact 联系消息模型（官网表单提交，全局数据，只读+删除）
type Contact struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100;not null;index" json:"email"`
	Subject   string    `gorm:"size:200" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName 指定表名
func (Contact) TableName() string {
	return "contacts"
}
