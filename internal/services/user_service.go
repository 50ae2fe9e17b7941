package services

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"lawdesk/internal/database"
	"lawdesk/internal/models"
	"lawdesk/pkg/pagination"
	"lawdesk/pkg/query"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService() *UserService {
	return &UserService{
		db: database.GetDB(),
	}
}

// Create 创建用户
func (s *UserService) Create(tenantID uint, username, email, password, name string, phone *string) (*models.User, error) {
	if err := s.ValidateCreateParams(username, email, password, name); err != nil {
		return nil, err
	}

	// 检查用户名与邮箱唯一性
	var count int64
	s.db.Model(&models.User{}).Where("username = ? OR email = ?", username, email).Count(&count)
	if count > 0 {
		return nil, fmt.Errorf("用户名或邮箱已存在")
	}

	user := &models.User{
		TenantID: tenantID,
		Username: username,
		Email:    email,
		Name:     name,
		Phone:    phone,
		Status:   models.UserStatusActive,
	}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// GetByID 根据ID获取用户
func (s *UserService) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := s.db.Preload("Plan").First(&user, id).Error
	return &user, err
}

// GetByUsername 根据用户名获取用户
func (s *UserService) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := s.db.Where("username = ?", username).First(&user).Error
	return &user, err
}

// List 获取租户用户列表
func (s *UserService) List(tenantID uint, search, status, sortField, sortDir string, params *pagination.PageParams) ([]models.User, int64, error) {
	spec := &query.Spec{
		TenantID:      query.TenantScope(tenantID),
		Search:        search,
		SearchColumns: []string{"username", "email", "name"},
		Filters: []query.Filter{
			{Column: "status", Value: query.FilterValue(status)},
		},
		SortColumn:  sortField,
		SortDesc:    strings.EqualFold(sortDir, "desc"),
		Sortable:    []string{"username", "email", "name", "status", "created_at"},
		DefaultSort: []query.Sort{{Column: "username"}},
	}

	var users []models.User
	total, err := query.Find(s.db.Model(&models.User{}), spec, params, &users)
	return users, total, err
}

// Update 更新用户
func (s *UserService) Update(id uint, tenantID uint, name, email string, phone *string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ? AND tenant_id = ?", id, tenantID).First(&user).Error; err != nil {
		return nil, err
	}

	if name != "" {
		if !s.ValidateName(name) {
			return nil, fmt.Errorf("姓名长度必须在1-100个字符之间")
		}
		user.Name = name
	}
	if email != "" {
		user.Email = email
	}
	if phone != nil {
		user.Phone = phone
	}

	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete 删除用户（硬删除）
func (s *UserService) Delete(id uint, tenantID uint) error {
	var user models.User
	if err := s.db.Where("id = ? AND tenant_id = ?", id, tenantID).First(&user).Error; err != nil {
		return err
	}
	return s.db.Delete(&user).Error
}

// Activate 启用用户
func (s *UserService) Activate(id uint) (*models.User, error) {
	return s.setStatus(id, models.UserStatusActive)
}

// Deactivate 禁用用户
func (s *UserService) Deactivate(id uint) (*models.User, error) {
	return s.setStatus(id, models.UserStatusInactive)
}

func (s *UserService) setStatus(id uint, status string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	user.Status = status
	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateLastLogin 更新最后登录时间
func (s *UserService) UpdateLastLogin(id uint) error {
	return s.db.Model(&models.User{}).Where("id = ?", id).
		Update("last_login_at", gorm.Expr("NOW()")).Error
}

// ResetPassword 重置密码
func (s *UserService) ResetPassword(id uint, newPassword string) error {
	if err := s.ValidatePassword(newPassword); err != nil {
		return err
	}

	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return err
	}
	if err := user.SetPassword(newPassword); err != nil {
		return err
	}
	return s.db.Save(&user).Error
}

// IsActive 用户是否可用
func (s *UserService) IsActive(user *models.User) bool {
	return user.Status == models.UserStatusActive
}

// ========== 参数校验 ==========

// ValidateUsername 用户名：3-50位，字母数字下划线
func (s *UserService) ValidateUsername(username string) bool {
	length := utf8.RuneCountInString(username)
	if length < 3 || length > 50 {
		return false
	}
	for _, r := range username {
		if !(r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9')) {
			return false
		}
	}
	return true
}

// ValidatePassword 密码至少8位
func (s *UserService) ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("密码长度不能少于8位")
	}
	return nil
}

// ValidateName 姓名长度校验
func (s *UserService) ValidateName(name string) bool {
	length := utf8.RuneCountInString(name)
	return length >= 1 && length <= 100
}

// ValidateCreateParams 创建参数校验
func (s *UserService) ValidateCreateParams(username, email, password, name string) error {
	if !s.ValidateUsername(username) {
		return fmt.Errorf("用户名必须为3-50位字母、数字或下划线")
	}
	if !strings.Contains(email, "@") {
		return fmt.Errorf("邮箱格式错误")
	}
	if err := s.ValidatePassword(password); err != nil {
		return err
	}
	if !s.ValidateName(name) {
		return fmt.Errorf("姓名长度必须在1-100个字符之间")
	}
	return nil
}

// ========== 角色与权限 ==========

// AssignRoles 全量分配角色
func (s *UserService) AssignRoles(userID uint, roleIDs []uint, operatorID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserRole{}).Error; err != nil {
			return err
		}
		for _, roleID := range roleIDs {
			ur := models.UserRole{UserID: userID, RoleID: roleID, CreatedBy: operatorID}
			if err := tx.Create(&ur).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetUserRoles 获取用户角色
func (s *UserService) GetUserRoles(userID uint) ([]models.Role, error) {
	var user models.User
	if err := s.db.Preload("Roles").First(&user, userID).Error; err != nil {
		return nil, err
	}
	return user.Roles, nil
}

// GetUserPermissions 获取用户全部权限（按角色汇总去重）
func (s *UserService) GetUserPermissions(userID uint) ([]models.Permission, error) {
	var user models.User
	if err := s.db.Preload("Roles.Permissions").First(&user, userID).Error; err != nil {
		return nil, err
	}

	seen := make(map[uint]bool)
	var permissions []models.Permission
	for _, role := range user.Roles {
		if role.Status != models.RoleStatusActive {
			continue
		}
		for _, p := range role.Permissions {
			if !seen[p.ID] {
				seen[p.ID] = true
				permissions = append(permissions, p)
			}
		}
	}
	return permissions, nil
}

// HasPermission 检查用户是否拥有指定权限
func (s *UserService) HasPermission(userID uint, permissionCode string) (bool, error) {
	var user models.User
	err := s.db.Preload("Roles.Permissions").First(&user, userID).Error
	if err != nil {
		return false, err
	}

	// 平台管理员拥有所有权限
	if user.IsPlatformAdmin {
		return true, nil
	}

	// 租户管理员拥有本租户内的管理权限，但不含平台级权限
	if user.IsTenantAdmin {
		if strings.HasPrefix(permissionCode, "tenant:") {
			return false, nil
		}
		return true, nil
	}

	for _, role := range user.Roles {
		if role.Status != models.RoleStatusActive {
			continue
		}
		for _, p := range role.Permissions {
			if p.Code == permissionCode {
				return true, nil
			}
		}
	}
	return false, nil
}

// HasRole 检查用户是否拥有指定角色
func (s *UserService) HasRole(userID uint, roleCode string) (bool, error) {
	var user models.User
	err := s.db.Preload("Roles").First(&user, userID).Error
	if err != nil {
		return false, err
	}
	for _, role := range user.Roles {
		if role.Code == roleCode && role.Status == models.RoleStatusActive {
			return true, nil
		}
	}
	return false, nil
}
