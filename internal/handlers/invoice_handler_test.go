package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lawdesk/internal/database"
	"lawdesk/internal/services"
	"lawdesk/pkg/jwt"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupInvoiceTest(t *testing.T, upstream *httptest.Server) (*gin.Engine, sqlmock.Sqlmock) {
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
	database.SetDB(gdb)

	gin.SetMode(gin.TestMode)
	handler := NewInvoiceHandler(services.NewInvoiceService(), services.NewPDFServiceWith(upstream.URL, upstream.Client()))

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("claims", &jwt.JWTClaims{UserID: 9, TenantID: 7, CurrentTenantID: 7})
	})
	r.GET("/invoices/:id/pdf", handler.DownloadPDF)
	return r, mock
}

func expectInvoiceLookup(mock sqlmock.Sqlmock) {
	mock.ExpectQuery(`SELECT \* FROM "invoices" WHERE id = \$1 AND tenant_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "user_id", "number", "amount", "currency", "status", "issued_at"}).
			AddRow(1, 7, 9, "5f1c2d3e", 1250.50, "SAR", "issued", time.Now()))
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"\."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "name"}).AddRow(9, 7, "张律师"))
}

func TestDownloadPDFDefaultsToAttachment(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("%PDF-1.7"))
	}))
	defer upstream.Close()

	r, mock := setupInvoiceTest(t, upstream)
	expectInvoiceLookup(mock)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/invoices/1/pdf", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (body=%s)", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("content-type = %q", ct)
	}
	want := `attachment; filename="invoice-tax-5f1c2d3e.pdf"`
	if cd := w.Header().Get("Content-Disposition"); cd != want {
		t.Fatalf("content-disposition = %q, want %q", cd, want)
	}
	if w.Body.String() != "%PDF-1.7" {
		t.Fatalf("body = %q", w.Body.String())
	}
}

func TestDownloadPDFInlineDisposition(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("%PDF"))
	}))
	defer upstream.Close()

	r, mock := setupInvoiceTest(t, upstream)
	expectInvoiceLookup(mock)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/invoices/1/pdf?type=simplified&disposition=inline", nil))

	want := `inline; filename="invoice-simplified-5f1c2d3e.pdf"`
	if cd := w.Header().Get("Content-Disposition"); cd != want {
		t.Fatalf("content-disposition = %q, want %q", cd, want)
	}
}

func TestDownloadPDFUnknownDispositionFallsBack(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("%PDF"))
	}))
	defer upstream.Close()

	r, mock := setupInvoiceTest(t, upstream)
	expectInvoiceLookup(mock)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/invoices/1/pdf?disposition=evil", nil))

	// 未知的展示方式静默回退到 attachment
	want := `attachment; filename="invoice-tax-5f1c2d3e.pdf"`
	if cd := w.Header().Get("Content-Disposition"); cd != want {
		t.Fatalf("content-disposition = %q, want %q", cd, want)
	}
}

func TestDownloadPDFRejectsUnknownType(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("renderer should not be called for invalid type")
	}))
	defer upstream.Close()

	r, _ := setupInvoiceTest(t, upstream)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/invoices/1/pdf?type=fancy", nil))

	// 统一信封：HTTP 200，code 字段表达错误
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if body := w.Body.String(); !strings.Contains(body, `"code":400`) {
		t.Fatalf("body = %s", body)
	}
}

func TestDownloadPDFRendererFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer upstream.Close()

	r, mock := setupInvoiceTest(t, upstream)
	expectInvoiceLookup(mock)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/invoices/1/pdf", nil))

	if body := w.Body.String(); !strings.Contains(body, `"code":1001`) {
		t.Fatalf("body = %s", body)
	}
}
