package services

import (
	"lawdesk/internal/database"
	"lawdesk/internal/models"

	"gorm.io/gorm"
)

// EmailTemplateService 邮件模板服务
// 模板目录为全局数据；启用状态按 (用户, 模板) 单独记录，无记录时默认启用
type EmailTemplateService struct {
	db *gorm.DB
}

func NewEmailTemplateService() *EmailTemplateService {
	return &EmailTemplateService{
		db: database.GetDB(),
	}
}

// NewEmailTemplateServiceWith 注入数据库创建实例（测试用）
func NewEmailTemplateServiceWith(db *gorm.DB) *EmailTemplateService {
	return &EmailTemplateService{db: db}
}

// TemplateWithStatus 模板及当前用户的生效状态
type TemplateWithStatus struct {
	models.EmailTemplate
	IsActive bool `json:"is_active"`
}

// ListForUser 获取模板目录及用户级启用状态
func (s *EmailTemplateService) ListForUser(userID uint) ([]TemplateWithStatus, error) {
	var templates []models.EmailTemplate
	if err := s.db.Order("name").Find(&templates).Error; err != nil {
		return nil, err
	}

	var overrides []models.UserEmailTemplate
	if err := s.db.Where("user_id = ?", userID).Find(&overrides).Error; err != nil {
		return nil, err
	}

	// 无记录时默认启用
	active := make(map[uint]bool, len(overrides))
	for _, o := range overrides {
		active[o.EmailTemplateID] = o.IsActive
	}

	result := make([]TemplateWithStatus, 0, len(templates))
	for _, t := range templates {
		isActive, ok := active[t.ID]
		if !ok {
			isActive = true
		}
		result = append(result, TemplateWithStatus{EmailTemplate: t, IsActive: isActive})
	}
	return result, nil
}

// Toggle 切换用户级模板启用状态
// 首次切换时创建启用记录（默认启用，故首次切换即停用）
func (s *EmailTemplateService) Toggle(userID, templateID uint) (*models.UserEmailTemplate, error) {
	var template models.EmailTemplate
	if err := s.db.First(&template, templateID).Error; err != nil {
		return nil, err
	}

	var record models.UserEmailTemplate
	err := s.db.Where("user_id = ? AND email_template_id = ?", userID, templateID).First(&record).Error
	if err == gorm.ErrRecordNotFound {
		record = models.UserEmailTemplate{
			UserID:          userID,
			EmailTemplateID: templateID,
			IsActive:        false,
		}
		if err := s.db.Create(&record).Error; err != nil {
			return nil, err
		}
		return &record, nil
	}
	if err != nil {
		return nil, err
	}

	record.IsActive = !record.IsActive
	if err := s.db.Save(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}
