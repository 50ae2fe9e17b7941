package services

import (
	"strings"

	"lawdesk/internal/database"
	"lawdesk/internal/models"
	"lawdesk/pkg/pagination"
	"lawdesk/pkg/query"

	"gorm.io/gorm"
)

// CountryService 国家服务（全局基础数据，只读）
type CountryService struct {
	db *gorm.DB
}

func NewCountryService() *CountryService {
	return &CountryService{
		db: database.GetDB(),
	}
}

// List 获取国家列表
func (s *CountryService) List(search, status, sortField, sortDir string, params *pagination.PageParams) ([]models.Country, int64, error) {
	spec := &query.Spec{
		Search:        search,
		SearchColumns: []string{"name", "code"},
		Filters: []query.Filter{
			{Column: "status", Value: query.FilterValue(status)},
		},
		SortColumn:  sortField,
		SortDesc:    strings.EqualFold(sortDir, "desc"),
		Sortable:    []string{"name", "code"},
		DefaultSort: []query.Sort{{Column: "name"}},
	}

	var countries []models.Country
	total, err := query.Find(s.db.Model(&models.Country{}), spec, params, &countries)
	return countries, total, err
}

// GetActive 获取所有启用的国家（快捷表单用）
func (s *CountryService) GetActive() ([]models.Country, error) {
	var countries []models.Country
	err := s.db.Where("status = ?", "active").Order("name").Find(&countries).Error
	return countries, err
}
