package query

import (
	"testing"

	"lawdesk/pkg/pagination"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type auditRecord struct {
	ID       uint
	TenantID uint
	Name     string
	Status   string
}

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: conn, PreferSimpleProtocol: true}), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	return gdb, mock
}

func defaultParams() *pagination.PageParams {
	return &pagination.PageParams{Page: 1, PageSize: 10}
}

func TestFilterValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *string
	}{
		{"empty means no filter", "", nil},
		{"all sentinel means no filter", "all", nil},
		{"concrete value kept", "active", strPtr("active")},
		{"All is case sensitive", "All", strPtr("All")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterValue(tt.input)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("FilterValue(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Fatalf("FilterValue(%q) = %q, want %q", tt.input, *got, *tt.want)
			}
		})
	}
}

func strPtr(s string) *string { return &s }

func TestFindAppliesTenantScope(t *testing.T) {
	db, mock := newTestDB(t)

	// 仅租户条件：count 与 select 都只能出现一个参数
	mock.ExpectQuery(`SELECT count\(\*\) FROM "audit_records" WHERE tenant_id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT \* FROM "audit_records" WHERE tenant_id = \$1 ORDER BY name ASC LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "name", "status"}).
			AddRow(1, 7, "Tax Audit", "active").
			AddRow(2, 7, "Compliance", "active"))

	spec := &Spec{
		TenantID:    TenantScope(7),
		DefaultSort: []Sort{{Column: "name"}},
	}

	var records []auditRecord
	total, err := Find(db.Model(&auditRecord{}), spec, defaultParams(), &records)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if total != 2 || len(records) != 2 {
		t.Fatalf("expected total=2 with 2 rows, got total=%d rows=%d", total, len(records))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFindSearchIsCaseInsensitiveAcrossColumns(t *testing.T) {
	db, mock := newTestDB(t)

	// 关键字被统一小写，列之间以 OR 组合
	mock.ExpectQuery(`SELECT count\(\*\) FROM "audit_records" WHERE tenant_id = \$1 AND \(LOWER\(name\) LIKE \$2 ESCAPE '\\' OR LOWER\(description\) LIKE \$3 ESCAPE '\\'\)`).
		WithArgs(int64(7), "%tax%", "%tax%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "audit_records" WHERE tenant_id = \$1 AND \(LOWER\(name\) LIKE \$2 ESCAPE '\\' OR LOWER\(description\) LIKE \$3 ESCAPE '\\'\) ORDER BY name ASC LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "name", "status"}).
			AddRow(1, 7, "Tax Audit", "active"))

	spec := &Spec{
		TenantID:      TenantScope(7),
		Search:        "TAX",
		SearchColumns: []string{"name", "description"},
		DefaultSort:   []Sort{{Column: "name"}},
	}

	var records []auditRecord
	if _, err := Find(db.Model(&auditRecord{}), spec, defaultParams(), &records); err != nil {
		t.Fatalf("Find: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFindSearchEscapesLikeWildcards(t *testing.T) {
	db, mock := newTestDB(t)

	// % 和 _ 按字面匹配，不作为通配符
	mock.ExpectQuery(`SELECT count\(\*\) FROM "audit_records"`).
		WithArgs(int64(7), `%100\% a\_b%`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT \* FROM "audit_records" WHERE tenant_id = \$1 AND LOWER\(name\) LIKE \$2 ESCAPE '\\' ORDER BY name ASC LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "name", "status"}))

	spec := &Spec{
		TenantID:      TenantScope(7),
		Search:        "100% A_b",
		SearchColumns: []string{"name"},
		DefaultSort:   []Sort{{Column: "name"}},
	}

	var records []auditRecord
	if _, err := Find(db.Model(&auditRecord{}), spec, defaultParams(), &records); err != nil {
		t.Fatalf("Find: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFindSentinelFilterIsIgnored(t *testing.T) {
	db, mock := newTestDB(t)

	// 哨兵值过滤被忽略：参数个数只剩租户ID一个
	mock.ExpectQuery(`SELECT count\(\*\) FROM "audit_records" WHERE tenant_id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT \* FROM "audit_records" WHERE tenant_id = \$1 ORDER BY name ASC LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "name", "status"}))

	spec := &Spec{
		TenantID: TenantScope(7),
		Filters: []Filter{
			{Column: "status", Value: FilterValue("all")},
		},
		DefaultSort: []Sort{{Column: "name"}},
	}

	var records []auditRecord
	if _, err := Find(db.Model(&auditRecord{}), spec, defaultParams(), &records); err != nil {
		t.Fatalf("Find: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFindConcreteFilterApplied(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "audit_records" WHERE tenant_id = \$1 AND status = \$2`).
		WithArgs(int64(7), "active").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "audit_records" WHERE tenant_id = \$1 AND status = \$2 ORDER BY name ASC LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "name", "status"}).
			AddRow(1, 7, "Tax Audit", "active"))

	spec := &Spec{
		TenantID: TenantScope(7),
		Filters: []Filter{
			{Column: "status", Value: FilterValue("active")},
		},
		DefaultSort: []Sort{{Column: "name"}},
	}

	var records []auditRecord
	if _, err := Find(db.Model(&auditRecord{}), spec, defaultParams(), &records); err != nil {
		t.Fatalf("Find: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFindSortOutsideWhitelistFallsBackToDefault(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "audit_records"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	// 白名单外的字段不得进入 ORDER BY
	mock.ExpectQuery(`SELECT \* FROM "audit_records" WHERE tenant_id = \$1 ORDER BY created_at DESC LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "name", "status"}))

	spec := &Spec{
		TenantID:    TenantScope(7),
		SortColumn:  "password_hash; DROP TABLE users",
		Sortable:    []string{"name", "created_at"},
		DefaultSort: []Sort{{Column: "created_at", Desc: true}},
	}

	var records []auditRecord
	if _, err := Find(db.Model(&auditRecord{}), spec, defaultParams(), &records); err != nil {
		t.Fatalf("Find: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFindSortWhitelistedColumnWithDirection(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "audit_records"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT \* FROM "audit_records" WHERE tenant_id = \$1 ORDER BY name DESC LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "name", "status"}))

	spec := &Spec{
		TenantID:    TenantScope(7),
		SortColumn:  "name",
		SortDesc:    true,
		Sortable:    []string{"name", "created_at"},
		DefaultSort: []Sort{{Column: "created_at", Desc: true}},
	}

	var records []auditRecord
	if _, err := Find(db.Model(&auditRecord{}), spec, defaultParams(), &records); err != nil {
		t.Fatalf("Find: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFindPaginatesWithOffset(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "audit_records"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery(`SELECT \* FROM "audit_records" WHERE tenant_id = \$1 ORDER BY name ASC LIMIT \$2 OFFSET \$3`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "name", "status"}))

	spec := &Spec{
		TenantID:    TenantScope(7),
		DefaultSort: []Sort{{Column: "name"}},
	}
	params := &pagination.PageParams{Page: 3, PageSize: 5}

	var records []auditRecord
	total, err := Find(db.Model(&auditRecord{}), spec, params, &records)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if total != 12 {
		t.Fatalf("expected total=12, got %d", total)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFindGlobalResourceSkipsTenantScope(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "audit_records"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT \* FROM "audit_records" ORDER BY name ASC LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "name", "status"}))

	spec := &Spec{
		DefaultSort: []Sort{{Column: "name"}},
	}

	var records []auditRecord
	if _, err := Find(db.Model(&auditRecord{}), spec, defaultParams(), &records); err != nil {
		t.Fatalf("Find: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
