package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lawdesk/internal/services"
	apperrors "lawdesk/pkg/errors"

	"github.com/gin-gonic/gin"
)

func newSummarizeRouter(upstream *httptest.Server) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewAIHandler(services.NewAIServiceWith(upstream.URL, "test-key", upstream.Client()))

	r := gin.New()
	r.POST("/ai/summarize", handler.Summarize)
	return r
}

func doSummarize(t *testing.T, r *gin.Engine, body string) (int, map[string]interface{}) {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/ai/summarize", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v (body=%s)", err, w.Body.String())
	}
	return w.Code, resp
}

func TestSummarizeHandlerSuccess(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"summary": "争议焦点为合同解除条件"})
	}))
	defer upstream.Close()

	r := newSummarizeRouter(upstream)
	status, resp := doSummarize(t, r, `{"text":"原告主张……","max_length":200,"focus":"争议焦点"}`)

	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if resp["code"].(float64) != float64(apperrors.CodeSuccess) {
		t.Fatalf("code = %v", resp["code"])
	}

	data := resp["data"].(map[string]interface{})
	if data["summary"] != "争议焦点为合同解除条件" {
		t.Fatalf("summary = %v", data["summary"])
	}
	// 成功时同样回显输入，便于前端保持表单状态
	if data["text"] != "原告主张……" || data["focus"] != "争议焦点" {
		t.Fatalf("echoed input mismatch: %v", data)
	}
}

func TestSummarizeHandlerEchoesInputOnUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer upstream.Close()

	r := newSummarizeRouter(upstream)
	status, resp := doSummarize(t, r, `{"text":"待摘要文本","max_length":120}`)

	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if resp["code"].(float64) != float64(apperrors.CodeExternalError) {
		t.Fatalf("code = %v, want %d", resp["code"], apperrors.CodeExternalError)
	}

	// 失败时原始输入必须原样返回
	data := resp["data"].(map[string]interface{})
	if data["text"] != "待摘要文本" {
		t.Fatalf("text = %v", data["text"])
	}
	if data["max_length"].(float64) != 120 {
		t.Fatalf("max_length = %v", data["max_length"])
	}
}

func TestSummarizeHandlerValidation(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("upstream should not be called for invalid input")
	}))
	defer upstream.Close()

	r := newSummarizeRouter(upstream)

	tests := []struct {
		name string
		body string
	}{
		{"missing text", `{"max_length":100}`},
		{"max_length below minimum", `{"text":"abc","max_length":5}`},
		{"max_length above maximum", `{"text":"abc","max_length":5000}`},
		{"focus too long", `{"text":"abc","focus":"` + strings.Repeat("f", 201) + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, resp := doSummarize(t, r, tt.body)
			if resp["code"].(float64) != float64(apperrors.CodeInvalidParam) {
				t.Fatalf("code = %v, want %d", resp["code"], apperrors.CodeInvalidParam)
			}
		})
	}
}
