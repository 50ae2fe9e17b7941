package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/gorm"
)

func TestValidateAuditType(t *testing.T) {
	svc := &AuditTypeService{}

	tests := []struct {
		name    string
		typName string
		color   string
		wantErr bool
	}{
		{"valid with color", "税务审计", "#FF5722", false},
		{"valid without color", "合规审计", "", false},
		{"lowercase hex ok", "内控审计", "#a1b2c3", false},
		{"empty name", "", "#FF5722", true},
		{"name too long", strings.Repeat("长", 101), "", true},
		{"name at max length", strings.Repeat("长", 100), "", false},
		{"missing hash prefix", "税务审计", "FF5722", true},
		{"short hex", "税务审计", "#FFF", true},
		{"non hex chars", "税务审计", "#GGGGGG", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.ValidateAuditType(tt.typName, tt.color)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateAuditType(%q, %q) err = %v, wantErr %v", tt.typName, tt.color, err, tt.wantErr)
			}
		})
	}
}

func TestAuditTypeCreateRejectsInvalidColorBeforeInsert(t *testing.T) {
	db, mock := newTestDB(t)
	svc := &AuditTypeService{db: db}

	// 校验失败时不应触达数据库
	if _, err := svc.Create(7, "税务审计", "", "not-a-color"); err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected database access: %v", err)
	}
}

func TestAuditTypeCreateAppliesDefaultColor(t *testing.T) {
	db, mock := newTestDB(t)
	svc := &AuditTypeService{db: db}

	mock.ExpectQuery(`INSERT INTO "audit_types"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	auditType, err := svc.Create(7, "税务审计", "年度税务检查", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if auditType.Color != "#2196F3" {
		t.Fatalf("color = %q, want default #2196F3", auditType.Color)
	}
	if auditType.TenantID != 7 {
		t.Fatalf("tenant_id = %d, want 7", auditType.TenantID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAuditTypeDeleteMissingRowReturnsNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	svc := &AuditTypeService{db: db}

	// 租户不匹配或ID不存在时影响行数为0
	mock.ExpectExec(`DELETE FROM "audit_types" WHERE id = \$1 AND tenant_id = \$2`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := svc.Delete(1, 7)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want gorm.ErrRecordNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
