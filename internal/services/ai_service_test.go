package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClampSummaryLength(t *testing.T) {
	tests := []struct {
		name  string
		input int
		want  int
	}{
		{"zero falls back to default", 0, SummaryDefaultLength},
		{"below minimum clamped up", 3, SummaryMinLength},
		{"above maximum clamped down", 99999, SummaryMaxLength},
		{"valid value kept", 300, 300},
		{"minimum boundary", SummaryMinLength, SummaryMinLength},
		{"maximum boundary", SummaryMaxLength, SummaryMaxLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampSummaryLength(tt.input); got != tt.want {
				t.Fatalf("ClampSummaryLength(%d) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestSummarizeSendsClampedLengthAndAuth(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]interface{}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]string{"summary": "案件要点摘要"})
	}))
	defer ts.Close()

	svc := NewAIServiceWith(ts.URL, "secret-key", ts.Client())

	summary, err := svc.Summarize("这是一段很长的案件描述", 5, "风险点")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if summary != "案件要点摘要" {
		t.Fatalf("summary = %q", summary)
	}
	if gotPath != "/v1/summarize" {
		t.Fatalf("path = %q, want /v1/summarize", gotPath)
	}
	if gotAuth != "Bearer secret-key" {
		t.Fatalf("auth = %q", gotAuth)
	}
	// 低于下限的长度在出站前被收敛
	if gotBody["max_length"] != float64(SummaryMinLength) {
		t.Fatalf("max_length = %v, want %d", gotBody["max_length"], SummaryMinLength)
	}
	if gotBody["focus"] != "风险点" {
		t.Fatalf("focus = %v", gotBody["focus"])
	}
}

func TestSummarizeUpstreamFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantSub string
	}{
		{
			"non-200 status",
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			"502",
		},
		{
			"error field in body",
			func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]string{"error": "model overloaded"})
			},
			"model overloaded",
		},
		{
			"malformed body",
			func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("not json"))
			},
			"解析",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(tt.handler)
			defer ts.Close()

			svc := NewAIServiceWith(ts.URL, "", ts.Client())
			_, err := svc.Summarize("文本", 100, "")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Fatalf("err = %v, want substring %q", err, tt.wantSub)
			}
		})
	}
}
