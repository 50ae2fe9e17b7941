package services

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lawdesk/internal/models"
)

func testInvoice() *models.Invoice {
	return &models.Invoice{
		TenantID: 7,
		UserID:   9,
		Number:   "5f1c2d3e",
		Amount:   1250.50,
		Currency: "SAR",
		Status:   models.InvoiceStatusIssued,
		IssuedAt: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		User:     &models.User{Name: "张律师"},
	}
}

func TestRenderInvoiceForwardsInvoiceFields(t *testing.T) {
	var gotPath string
	var gotBody map[string]interface{}

	pdfBytes := []byte("%PDF-1.7 fake")
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write(pdfBytes)
	}))
	defer ts.Close()

	svc := NewPDFServiceWith(ts.URL, ts.Client())

	pdf, err := svc.RenderInvoice(testInvoice(), models.InvoicePDFTypeTax)
	if err != nil {
		t.Fatalf("RenderInvoice: %v", err)
	}
	if !bytes.Equal(pdf, pdfBytes) {
		t.Fatalf("pdf bytes mismatch: %q", pdf)
	}
	if gotPath != "/render/invoice" {
		t.Fatalf("path = %q, want /render/invoice", gotPath)
	}
	if gotBody["type"] != "tax" || gotBody["number"] != "5f1c2d3e" {
		t.Fatalf("payload = %v", gotBody)
	}
	if gotBody["issued_at"] != "2026-03-15" {
		t.Fatalf("issued_at = %v, want 2026-03-15", gotBody["issued_at"])
	}
	if gotBody["customer"] != "张律师" {
		t.Fatalf("customer = %v", gotBody["customer"])
	}
}

func TestRenderInvoiceUpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	svc := NewPDFServiceWith(ts.URL, ts.Client())

	if _, err := svc.RenderInvoice(testInvoice(), models.InvoicePDFTypeSimplified); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestRenderInvoiceWithoutPreloadedUser(t *testing.T) {
	var gotBody map[string]interface{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte("%PDF"))
	}))
	defer ts.Close()

	invoice := testInvoice()
	invoice.User = nil

	svc := NewPDFServiceWith(ts.URL, ts.Client())
	if _, err := svc.RenderInvoice(invoice, models.InvoicePDFTypeTax); err != nil {
		t.Fatalf("RenderInvoice: %v", err)
	}
	if gotBody["customer"] != "" {
		t.Fatalf("customer = %v, want empty", gotBody["customer"])
	}
}
