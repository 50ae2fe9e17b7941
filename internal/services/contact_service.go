package services

import (
	"strings"
	"time"

	"lawdesk/internal/database"
	"lawdesk/internal/models"
	"lawdesk/pkg/pagination"
	"lawdesk/pkg/query"

	"gorm.io/gorm"
)

// ContactService 联系消息服务
// 联系消息为全局数据（官网表单），仅支持查询与删除
type ContactService struct {
	db *gorm.DB
}

func NewContactService() *ContactService {
	return &ContactService{
		db: database.GetDB(),
	}
}

// List 获取联系消息列表
func (s *ContactService) List(search, sortField, sortDir string, params *pagination.PageParams) ([]models.Contact, int64, error) {
	spec := &query.Spec{
		Search:        search,
		SearchColumns: []string{"name", "email", "subject", "message"},
		SortColumn:    sortField,
		SortDesc:      strings.EqualFold(sortDir, "desc"),
		Sortable:      []string{"name", "email", "created_at"},
		DefaultSort:   []query.Sort{{Column: "created_at", Desc: true}},
	}

	var contacts []models.Contact
	total, err := query.Find(s.db.Model(&models.Contact{}), spec, params, &contacts)
	return contacts, total, err
}

// GetByID 根据ID获取联系消息
func (s *ContactService) GetByID(id uint) (*models.Contact, error) {
	var contact models.Contact
	err := s.db.First(&contact, id).Error
	return &contact, err
}

// Delete 删除联系消息（硬删除）
func (s *ContactService) Delete(id uint) error {
	result := s.db.Delete(&models.Contact{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// PurgeOlderThan 清理早于保留期的联系消息，返回删除条数
func (s *ContactService) PurgeOlderThan(days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)
	result := s.db.Where("created_at < ?", cutoff).Delete(&models.Contact{})
	return result.RowsAffected, result.Error
}
