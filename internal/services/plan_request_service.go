package services

import (
	"fmt"
	"strings"
	"time"

	"lawdesk/internal/database"
	"lawdesk/internal/models"
	"lawdesk/pkg/pagination"
	"lawdesk/pkg/query"

	"gorm.io/gorm"
)

// 业务规则错误（区别于系统错误，前端以提示形式展示）
var (
	ErrRequestNotPending = fmt.Errorf("该申请不在待审批状态")
	ErrNotRequestOwner   = fmt.Errorf("只能取消本人提交的申请")
)

type PlanRequestService struct {
	db *gorm.DB
}

func NewPlanRequestService() *PlanRequestService {
	return &PlanRequestService{
		db: database.GetDB(),
	}
}

// NewPlanRequestServiceWith 注入数据库创建实例（测试用）
func NewPlanRequestServiceWith(db *gorm.DB) *PlanRequestService {
	return &PlanRequestService{db: db}
}

// Create 提交套餐申请（申请人为当前用户，初始状态 pending）
func (s *PlanRequestService) Create(tenantID, userID, planID uint, note string) (*models.PlanRequest, error) {
	// 校验套餐存在且启用
	var plan models.Plan
	if err := s.db.Where("id = ? AND status = ?", planID, "active").First(&plan).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("套餐不存在或已停用")
		}
		return nil, err
	}

	// 同一用户同一套餐不允许重复的待审批申请
	var count int64
	s.db.Model(&models.PlanRequest{}).
		Where("user_id = ? AND plan_id = ? AND status = ?", userID, planID, models.PlanRequestStatusPending).
		Count(&count)
	if count > 0 {
		return nil, fmt.Errorf("已存在相同套餐的待审批申请")
	}

	request := &models.PlanRequest{
		TenantID: tenantID,
		UserID:   userID,
		PlanID:   planID,
		Status:   models.PlanRequestStatusPending,
		Note:     note,
	}

	if err := s.db.Create(request).Error; err != nil {
		return nil, err
	}
	return request, nil
}

// GetByID 根据ID获取申请（租户范围内）
func (s *PlanRequestService) GetByID(id uint, tenantID uint) (*models.PlanRequest, error) {
	var request models.PlanRequest
	err := s.db.Preload("User").Preload("Plan").
		Where("id = ? AND tenant_id = ?", id, tenantID).First(&request).Error
	return &request, err
}

// List 获取套餐申请列表
func (s *PlanRequestService) List(tenantID uint, search, status, sortField, sortDir string, params *pagination.PageParams) ([]models.PlanRequest, int64, error) {
	spec := &query.Spec{
		TenantID:      query.TenantScope(tenantID),
		Search:        search,
		SearchColumns: []string{"note"},
		Filters: []query.Filter{
			{Column: "status", Value: query.FilterValue(status)},
		},
		SortColumn:  sortField,
		SortDesc:    strings.EqualFold(sortDir, "desc"),
		Sortable:    []string{"status", "created_at"},
		DefaultSort: []query.Sort{{Column: "created_at", Desc: true}},
	}

	var requests []models.PlanRequest
	total, err := query.Find(s.db.Model(&models.PlanRequest{}).Preload("User").Preload("Plan"), spec, params, &requests)
	return requests, total, err
}

// Approve 审批通过
// 状态变更与用户套餐更新在同一事务内完成，避免出现"已批准但套餐未生效"的中间态
func (s *PlanRequestService) Approve(id uint, tenantID uint, operatorID uint) (*models.PlanRequest, error) {
	var request models.PlanRequest
	if err := s.db.Where("id = ? AND tenant_id = ?", id, tenantID).First(&request).Error; err != nil {
		return nil, err
	}

	if request.Status != models.PlanRequestStatusPending {
		return nil, ErrRequestNotPending
	}

	now := time.Now()
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.PlanRequest{}).Where("id = ?", request.ID).
			Updates(map[string]interface{}{
				"status":      models.PlanRequestStatusApproved,
				"approved_at": now,
				"approved_by": operatorID,
			}).Error; err != nil {
			return err
		}

		// 申请人的当前套餐同步更新
		if err := tx.Model(&models.User{}).Where("id = ?", request.UserID).
			Update("plan_id", request.PlanID).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	request.Status = models.PlanRequestStatusApproved
	request.ApprovedAt = &now
	request.ApprovedBy = &operatorID
	return &request, nil
}

// Reject 审批拒绝
func (s *PlanRequestService) Reject(id uint, tenantID uint, operatorID uint) (*models.PlanRequest, error) {
	var request models.PlanRequest
	if err := s.db.Where("id = ? AND tenant_id = ?", id, tenantID).First(&request).Error; err != nil {
		return nil, err
	}

	if request.Status != models.PlanRequestStatusPending {
		return nil, ErrRequestNotPending
	}

	now := time.Now()
	if err := s.db.Model(&models.PlanRequest{}).Where("id = ?", request.ID).
		Updates(map[string]interface{}{
			"status":      models.PlanRequestStatusRejected,
			"rejected_at": now,
			"rejected_by": operatorID,
		}).Error; err != nil {
		return nil, err
	}

	request.Status = models.PlanRequestStatusRejected
	request.RejectedAt = &now
	request.RejectedBy = &operatorID
	return &request, nil
}

// Cancel 取消申请
// 仅限申请人本人在待审批状态下操作，取消即删除记录
func (s *PlanRequestService) Cancel(id uint, tenantID uint, actorID uint) error {
	var request models.PlanRequest
	if err := s.db.Where("id = ? AND tenant_id = ?", id, tenantID).First(&request).Error; err != nil {
		return err
	}

	if request.Status != models.PlanRequestStatusPending {
		return ErrRequestNotPending
	}
	if request.UserID != actorID {
		return ErrNotRequestOwner
	}

	return s.db.Delete(&request).Error
}
