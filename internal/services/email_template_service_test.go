package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func emailTemplateRows() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "created_at", "updated_at", "name", "slug", "subject"}).
		AddRow(1, now, now, "欢迎邮件", "welcome", "欢迎加入").
		AddRow(2, now, now, "密码重置", "password-reset", "密码重置确认")
}

func TestListForUserDefaultsToActive(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewEmailTemplateServiceWith(db)

	mock.ExpectQuery(`SELECT \* FROM "email_templates" ORDER BY name`).
		WillReturnRows(emailTemplateRows())
	// 用户没有任何启停记录
	mock.ExpectQuery(`SELECT \* FROM "user_email_templates" WHERE user_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "email_template_id", "is_active"}))

	templates, err := svc.ListForUser(9)
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if len(templates) != 2 {
		t.Fatalf("got %d templates, want 2", len(templates))
	}
	for _, tmpl := range templates {
		if !tmpl.IsActive {
			t.Fatalf("template %q should default to active", tmpl.Name)
		}
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListForUserAppliesOverrides(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewEmailTemplateServiceWith(db)

	mock.ExpectQuery(`SELECT \* FROM "email_templates" ORDER BY name`).
		WillReturnRows(emailTemplateRows())
	mock.ExpectQuery(`SELECT \* FROM "user_email_templates" WHERE user_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "email_template_id", "is_active"}).
			AddRow(10, 9, 1, false))

	templates, err := svc.ListForUser(9)
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}

	byID := make(map[uint]bool, len(templates))
	for _, tmpl := range templates {
		byID[tmpl.ID] = tmpl.IsActive
	}
	if byID[1] {
		t.Fatal("template 1 has an inactive override, should not be active")
	}
	if !byID[2] {
		t.Fatal("template 2 has no override, should stay active")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestToggleCreatesInactiveRecordOnFirstUse(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewEmailTemplateServiceWith(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "email_templates" WHERE "email_templates"\."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at", "name", "slug", "subject"}).
			AddRow(2, now, now, "密码重置", "password-reset", "密码重置确认"))
	mock.ExpectQuery(`SELECT \* FROM "user_email_templates" WHERE user_id = \$1 AND email_template_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "email_template_id", "is_active"}))
	// 默认启用，首次切换即停用：落库的必须是 false，不能被列默认值顶掉
	mock.ExpectQuery(`INSERT INTO "user_email_templates"`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), int64(9), int64(2), false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	record, err := svc.Toggle(9, 2)
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if record.IsActive {
		t.Fatal("first toggle should deactivate the template")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestToggleFlipsExistingRecord(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewEmailTemplateServiceWith(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "email_templates" WHERE "email_templates"\."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at", "name", "slug", "subject"}).
			AddRow(2, now, now, "密码重置", "password-reset", "密码重置确认"))
	mock.ExpectQuery(`SELECT \* FROM "user_email_templates" WHERE user_id = \$1 AND email_template_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at", "user_id", "email_template_id", "is_active"}).
			AddRow(11, now, now, 9, 2, false))
	mock.ExpectExec(`UPDATE "user_email_templates" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	record, err := svc.Toggle(9, 2)
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if !record.IsActive {
		t.Fatal("toggle of inactive record should activate it")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
