package models

import (
	"time"

	"gorm.io/datatypes"
)

// Plan 套餐模型（全局数据，由平台维护）
type Plan struct {
	BaseModel
	Name            string         `gorm:"size:100;not null" json:"name"`
	Slug            string         `gorm:"size:100;unique;not null" json:"slug"`
	Price           float64        `gorm:"not null;default:0" json:"price"`
	BillingInterval string         `gorm:"size:16;default:'monthly'" json:"billing_interval"` // monthly, yearly
	Features        datatypes.JSON `gorm:"type:jsonb" json:"features"`                        // 套餐能力项
	Status          string         `gorm:"size:20;default:'active'" json:"status"`
}

// TableName 指定表名
func (Plan) TableName() string {
	return "plans"
}

// PlanRequest 套餐申请模型
// 状态单向流转：pending → approved / rejected；取消仅限申请人在 pending 时操作
type PlanRequest struct {
	BaseModel
	TenantID   uint       `gorm:"not null;index" json:"tenant_id"`
	UserID     uint       `gorm:"not null;index" json:"user_id"`
	PlanID     uint       `gorm:"not null;index" json:"plan_id"`
	Status     string     `gorm:"size:20;default:'pending';index" json:"status"`
	Note       string     `gorm:"size:500" json:"note"`
	ApprovedAt *time.Time `json:"approved_at"`
	ApprovedBy *uint      `json:"approved_by"`
	RejectedAt *time.Time `json:"rejected_at"`
	RejectedBy *uint      `json:"rejected_by"`

	// 关联
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Plan *Plan `gorm:"foreignKey:PlanID" json:"plan,omitempty"`
}

// TableName 指定表名
func (PlanRequest) TableName() string {
	return "plan_requests"
}

// 套餐申请状态常量
const (
	PlanRequestStatusPending  = "pending"
	PlanRequestStatusApproved = "approved"
	PlanRequestStatusRejected = "rejected"
)
