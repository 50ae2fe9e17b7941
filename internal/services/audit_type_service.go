package services

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"lawdesk/internal/database"
	"lawdesk/internal/models"
	"lawdesk/pkg/pagination"
	"lawdesk/pkg/query"

	"gorm.io/gorm"
)

// 颜色必须为 #RRGGBB
var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

type AuditTypeService struct {
	db *gorm.DB
}

func NewAuditTypeService() *AuditTypeService {
	return &AuditTypeService{
		db: database.GetDB(),
	}
}

// ValidateAuditType 校验审计类型参数
func (s *AuditTypeService) ValidateAuditType(name, color string) error {
	length := utf8.RuneCountInString(name)
	if length < 1 || length > 100 {
		return fmt.Errorf("名称长度必须在1-100个字符之间")
	}
	if color != "" && !hexColorPattern.MatchString(color) {
		return fmt.Errorf("颜色格式错误，必须为 #RRGGBB")
	}
	return nil
}

// Create 创建审计类型
func (s *AuditTypeService) Create(tenantID uint, name, description, color string) (*models.AuditType, error) {
	if err := s.ValidateAuditType(name, color); err != nil {
		return nil, err
	}

	// 如果没有指定颜色，使用默认值
	if color == "" {
		color = "#2196F3"
	}

	auditType := &models.AuditType{
		TenantID:    tenantID,
		Name:        name,
		Description: description,
		Color:       color,
		Status:      models.AuditTypeStatusActive,
	}

	if err := s.db.Create(auditType).Error; err != nil {
		return nil, err
	}
	return auditType, nil
}

// GetByID 根据ID获取审计类型（租户范围内）
func (s *AuditTypeService) GetByID(id uint, tenantID uint) (*models.AuditType, error) {
	var auditType models.AuditType
	err := s.db.Where("id = ? AND tenant_id = ?", id, tenantID).First(&auditType).Error
	return &auditType, err
}

// List 获取审计类型列表
func (s *AuditTypeService) List(tenantID uint, search, status, sortField, sortDir string, params *pagination.PageParams) ([]models.AuditType, int64, error) {
	spec := &query.Spec{
		TenantID:      query.TenantScope(tenantID),
		Search:        search,
		SearchColumns: []string{"name", "description"},
		Filters: []query.Filter{
			{Column: "status", Value: query.FilterValue(status)},
		},
		SortColumn:  sortField,
		SortDesc:    strings.EqualFold(sortDir, "desc"),
		Sortable:    []string{"name", "status", "created_at"},
		DefaultSort: []query.Sort{{Column: "name"}},
	}

	var auditTypes []models.AuditType
	total, err := query.Find(s.db.Model(&models.AuditType{}), spec, params, &auditTypes)
	return auditTypes, total, err
}

// Update 更新审计类型
func (s *AuditTypeService) Update(id uint, tenantID uint, name, description, color *string) (*models.AuditType, error) {
	var auditType models.AuditType
	if err := s.db.Where("id = ? AND tenant_id = ?", id, tenantID).First(&auditType).Error; err != nil {
		return nil, err
	}

	if name != nil {
		auditType.Name = *name
	}
	if description != nil {
		auditType.Description = *description
	}
	if color != nil {
		auditType.Color = *color
	}

	if err := s.ValidateAuditType(auditType.Name, auditType.Color); err != nil {
		return nil, err
	}

	if err := s.db.Save(&auditType).Error; err != nil {
		return nil, err
	}
	return &auditType, nil
}

// Delete 删除审计类型（硬删除）
func (s *AuditTypeService) Delete(id uint, tenantID uint) error {
	result := s.db.Where("id = ? AND tenant_id = ?", id, tenantID).Delete(&models.AuditType{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ToggleStatus 切换启用状态（active ⇄ inactive）
func (s *AuditTypeService) ToggleStatus(id uint, tenantID uint) (*models.AuditType, error) {
	var auditType models.AuditType
	if err := s.db.Where("id = ? AND tenant_id = ?", id, tenantID).First(&auditType).Error; err != nil {
		return nil, err
	}

	if auditType.Status == models.AuditTypeStatusActive {
		auditType.Status = models.AuditTypeStatusInactive
	} else {
		auditType.Status = models.AuditTypeStatusActive
	}

	if err := s.db.Save(&auditType).Error; err != nil {
		return nil, err
	}
	return &auditType, nil
}

// GetActive 获取租户下所有启用的审计类型（快捷表单用）
func (s *AuditTypeService) GetActive(tenantID uint) ([]models.AuditType, error) {
	var auditTypes []models.AuditType
	err := s.db.Where("tenant_id = ? AND status = ?", tenantID, models.AuditTypeStatusActive).
		Order("name").Find(&auditTypes).Error
	return auditTypes, err
}
