package query

import (
	"strings"

	"lawdesk/pkg/pagination"

	"gorm.io/gorm"
)

// Filter 精确匹配过滤条件
// Value 为 nil 表示未提供该过滤（列表接口约定 "all" 与空串均视为未提供）
type Filter struct {
	Column string
	Value  *string
}

// Sort 排序键
type Sort struct {
	Column string
	Desc   bool
}

// Spec 列表查询规格
// 各条件按固定顺序组合：租户范围 → 权限范围 → 模糊搜索 → 精确过滤 → 排序 → 分页。
// 租户范围对租户资源强制生效，与其余条件均为 AND 关系，任何参数组合都不能绕过。
type Spec struct {
	// TenantID 租户范围，nil 表示全局资源（如联系消息、国家）
	TenantID *uint
	// TenantColumn 租户列名，默认 tenant_id
	TenantColumn string
	// Scope 可选的权限范围谓词（如仅本人创建的数据）
	Scope func(*gorm.DB) *gorm.DB

	// Search 模糊搜索关键字，空串表示不搜索
	// 在 SearchColumns 声明的所有列上做大小写不敏感的子串匹配，列之间为 OR
	Search        string
	SearchColumns []string

	// Filters 精确过滤条件，Value 为 nil 的条目被忽略
	Filters []Filter

	// SortColumn 调用方指定的排序字段，必须在 Sortable 白名单内，否则回退默认排序
	SortColumn string
	SortDesc   bool
	Sortable   []string
	// DefaultSort 实体默认排序键（可多列，如 设置分类 + 设置键）
	DefaultSort []Sort
}

// 搜索关键字按字面子串匹配，LIKE 通配符需转义
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// FilterValue 将请求参数转换为可选过滤值
// 空串与哨兵值 "all" 均表示未过滤，统一在此收敛，查询规格内部不再出现魔法值
func FilterValue(s string) *string {
	if s == "" || s == "all" {
		return nil
	}
	return &s
}

// TenantScope 构造租户范围
func TenantScope(tenantID uint) *uint {
	return &tenantID
}

// conditions 应用范围、搜索与过滤条件（不含排序与分页）
func (s *Spec) conditions(db *gorm.DB) *gorm.DB {
	// 租户范围必须最先应用
	if s.TenantID != nil {
		col := s.TenantColumn
		if col == "" {
			col = "tenant_id"
		}
		db = db.Where(col+" = ?", *s.TenantID)
	}

	if s.Scope != nil {
		db = s.Scope(db)
	}

	if s.Search != "" && len(s.SearchColumns) > 0 {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(s.Search)) + "%"
		clauses := make([]string, 0, len(s.SearchColumns))
		args := make([]interface{}, 0, len(s.SearchColumns))
		for _, col := range s.SearchColumns {
			clauses = append(clauses, "LOWER("+col+") LIKE ? ESCAPE '\\'")
			args = append(args, pattern)
		}
		db = db.Where(strings.Join(clauses, " OR "), args...)
	}

	for _, f := range s.Filters {
		if f.Value == nil {
			continue
		}
		db = db.Where(f.Column+" = ?", *f.Value)
	}

	return db
}

// order 应用排序
// 调用方字段必须命中白名单，拼入 SQL 的始终是白名单中的字符串
func (s *Spec) order(db *gorm.DB) *gorm.DB {
	if s.SortColumn != "" {
		for _, col := range s.Sortable {
			if col == s.SortColumn {
				dir := "ASC"
				if s.SortDesc {
					dir = "DESC"
				}
				return db.Order(col + " " + dir)
			}
		}
	}

	for _, def := range s.DefaultSort {
		dir := "ASC"
		if def.Desc {
			dir = "DESC"
		}
		db = db.Order(def.Column + " " + dir)
	}
	return db
}

// Find 执行查询规格：先统计总数，再取当前页
// db 需由调用方绑定好 Model；dest 为目标切片指针。只读操作，无副作用。
func Find(db *gorm.DB, spec *Spec, params *pagination.PageParams, dest interface{}) (int64, error) {
	q := spec.conditions(db)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return 0, err
	}

	q = spec.order(q)
	if err := q.Offset(params.GetOffset()).Limit(params.GetLimit()).Find(dest).Error; err != nil {
		return 0, err
	}

	return total, nil
}
