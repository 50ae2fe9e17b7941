package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lawdesk/internal/database"
	"lawdesk/internal/models"
	"lawdesk/pkg/cache"
	"lawdesk/pkg/pagination"
	"lawdesk/pkg/query"

	"gorm.io/gorm"
)

// 设置缓存有效期
const settingCacheTTL = 10 * time.Minute

type CompanySettingService struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewCompanySettingService() *CompanySettingService {
	return &CompanySettingService{
		db:    database.GetDB(),
		cache: database.GetCache(),
	}
}

// NewCompanySettingServiceWith 注入依赖创建实例（测试用）
func NewCompanySettingServiceWith(db *gorm.DB, c *cache.Cache) *CompanySettingService {
	return &CompanySettingService{db: db, cache: c}
}

// List 获取公司设置列表
// 默认排序：分类升序 + 设置键升序
func (s *CompanySettingService) List(tenantID uint, search, category, settingType, sortField, sortDir string, params *pagination.PageParams) ([]models.CompanySetting, int64, error) {
	spec := &query.Spec{
		TenantID:      query.TenantScope(tenantID),
		Search:        search,
		SearchColumns: []string{"setting_key", "description"},
		Filters: []query.Filter{
			{Column: "category", Value: query.FilterValue(category)},
			{Column: "setting_type", Value: query.FilterValue(settingType)},
		},
		SortColumn: sortField,
		SortDesc:   strings.EqualFold(sortDir, "desc"),
		Sortable:   []string{"setting_key", "category", "created_at"},
		DefaultSort: []query.Sort{
			{Column: "category"},
			{Column: "setting_key"},
		},
	}

	var settings []models.CompanySetting
	total, err := query.Find(s.db.Model(&models.CompanySetting{}), spec, params, &settings)
	return settings, total, err
}

// GetByID 根据ID获取设置（租户范围内）
func (s *CompanySettingService) GetByID(id uint, tenantID uint) (*models.CompanySetting, error) {
	var setting models.CompanySetting
	err := s.db.Where("id = ? AND tenant_id = ?", id, tenantID).First(&setting).Error
	return &setting, err
}

// GetValue 按键读取设置值，走读穿缓存
func (s *CompanySettingService) GetValue(ctx context.Context, tenantID uint, key string) (string, error) {
	cacheKey := s.cacheKey(tenantID, key)

	if s.cache != nil {
		if value, err := s.cache.Get(ctx, cacheKey); err == nil {
			return value, nil
		}
	}

	var setting models.CompanySetting
	if err := s.db.Where("tenant_id = ? AND setting_key = ?", tenantID, key).First(&setting).Error; err != nil {
		return "", err
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, cacheKey, setting.SettingValue, settingCacheTTL)
	}
	return setting.SettingValue, nil
}

// Update 更新设置值与描述
// setting_key / category / setting_type 不通过本管理面修改
func (s *CompanySettingService) Update(ctx context.Context, id uint, tenantID uint, value string, description *string) (*models.CompanySetting, error) {
	if value == "" {
		return nil, fmt.Errorf("设置值不能为空")
	}

	var setting models.CompanySetting
	if err := s.db.Where("id = ? AND tenant_id = ?", id, tenantID).First(&setting).Error; err != nil {
		return nil, err
	}

	setting.SettingValue = value
	if description != nil {
		setting.Description = *description
	}

	if err := s.db.Save(&setting).Error; err != nil {
		return nil, err
	}

	// 更新后失效缓存
	if s.cache != nil {
		_ = s.cache.Delete(ctx, s.cacheKey(tenantID, setting.SettingKey))
	}
	return &setting, nil
}

func (s *CompanySettingService) cacheKey(tenantID uint, key string) string {
	return fmt.Sprintf("setting:%d:%s", tenantID, key)
}
