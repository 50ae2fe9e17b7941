package services

import (
	"errors"
	"testing"
	"time"

	"lawdesk/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

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

func planRequestRow(id, tenantID, userID, planID uint, status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "created_at", "updated_at", "tenant_id", "user_id", "plan_id", "status", "note"}).
		AddRow(id, time.Now(), time.Now(), tenantID, userID, planID, status, "")
}

func TestApproveUpdatesRequestAndUserTogether(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewPlanRequestServiceWith(db)

	mock.ExpectQuery(`SELECT \* FROM "plan_requests" WHERE id = \$1 AND tenant_id = \$2`).
		WillReturnRows(planRequestRow(1, 7, 9, 3, models.PlanRequestStatusPending))

	// 状态变更与套餐生效在同一事务内
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "plan_requests" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "users" SET "plan_id"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	request, err := svc.Approve(1, 7, 99)
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if request.Status != models.PlanRequestStatusApproved {
		t.Fatalf("status = %q, want approved", request.Status)
	}
	if request.ApprovedBy == nil || *request.ApprovedBy != 99 {
		t.Fatalf("approved_by = %v, want 99", request.ApprovedBy)
	}
	if request.ApprovedAt == nil {
		t.Fatal("approved_at not set")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestApproveRollsBackWhenUserUpdateFails(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewPlanRequestServiceWith(db)

	mock.ExpectQuery(`SELECT \* FROM "plan_requests" WHERE id = \$1 AND tenant_id = \$2`).
		WillReturnRows(planRequestRow(1, 7, 9, 3, models.PlanRequestStatusPending))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "plan_requests" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "users" SET "plan_id"`).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	if _, err := svc.Approve(1, 7, 99); err == nil {
		t.Fatal("expected error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestApproveRejectsNonPendingRequest(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewPlanRequestServiceWith(db)

	mock.ExpectQuery(`SELECT \* FROM "plan_requests" WHERE id = \$1 AND tenant_id = \$2`).
		WillReturnRows(planRequestRow(1, 7, 9, 3, models.PlanRequestStatusApproved))

	_, err := svc.Approve(1, 7, 99)
	if !errors.Is(err, ErrRequestNotPending) {
		t.Fatalf("err = %v, want ErrRequestNotPending", err)
	}
	// 非待审批状态不得产生任何写操作
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRejectRecordsOperatorAndTime(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewPlanRequestServiceWith(db)

	mock.ExpectQuery(`SELECT \* FROM "plan_requests" WHERE id = \$1 AND tenant_id = \$2`).
		WillReturnRows(planRequestRow(2, 7, 9, 3, models.PlanRequestStatusPending))
	mock.ExpectExec(`UPDATE "plan_requests" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	request, err := svc.Reject(2, 7, 42)
	if err != nil {
		t.Fatalf("Reject: %v", err)
	}
	if request.Status != models.PlanRequestStatusRejected {
		t.Fatalf("status = %q, want rejected", request.Status)
	}
	if request.RejectedBy == nil || *request.RejectedBy != 42 {
		t.Fatalf("rejected_by = %v, want 42", request.RejectedBy)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCancelRequiresOwner(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewPlanRequestServiceWith(db)

	mock.ExpectQuery(`SELECT \* FROM "plan_requests" WHERE id = \$1 AND tenant_id = \$2`).
		WillReturnRows(planRequestRow(1, 7, 9, 3, models.PlanRequestStatusPending))

	err := svc.Cancel(1, 7, 8)
	if !errors.Is(err, ErrNotRequestOwner) {
		t.Fatalf("err = %v, want ErrNotRequestOwner", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCancelRequiresPendingStatus(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewPlanRequestServiceWith(db)

	mock.ExpectQuery(`SELECT \* FROM "plan_requests" WHERE id = \$1 AND tenant_id = \$2`).
		WillReturnRows(planRequestRow(1, 7, 9, 3, models.PlanRequestStatusApproved))

	err := svc.Cancel(1, 7, 9)
	if !errors.Is(err, ErrRequestNotPending) {
		t.Fatalf("err = %v, want ErrRequestNotPending", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCancelDeletesOwnPendingRequest(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewPlanRequestServiceWith(db)

	mock.ExpectQuery(`SELECT \* FROM "plan_requests" WHERE id = \$1 AND tenant_id = \$2`).
		WillReturnRows(planRequestRow(1, 7, 9, 3, models.PlanRequestStatusPending))
	mock.ExpectExec(`DELETE FROM "plan_requests"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := svc.Cancel(1, 7, 9); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
