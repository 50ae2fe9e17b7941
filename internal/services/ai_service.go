package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"lawdesk/pkg/config"
)

// AI摘要长度约束
const (
	SummaryMinLength     = 10
	SummaryMaxLength     = 2000
	SummaryDefaultLength = 150
)

// AIService 外部AI摘要服务客户端
type AIService struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewAIService() *AIService {
	cfg := config.GetConfig()
	return &AIService{
		baseURL: cfg.AI.BaseURL,
		apiKey:  cfg.AI.APIKey,
		client: &http.Client{
			Timeout: time.Duration(cfg.AI.Timeout) * time.Second,
		},
	}
}

// NewAIServiceWith 注入地址与客户端创建实例（测试用）
func NewAIServiceWith(baseURL, apiKey string, client *http.Client) *AIService {
	return &AIService{baseURL: baseURL, apiKey: apiKey, client: client}
}

// summarizeRequest 摘要服务入参
type summarizeRequest struct {
	Text      string `json:"text"`
	MaxLength int    `json:"max_length"`
	Focus     string `json:"focus,omitempty"`
}

// summarizeResponse 摘要服务出参
type summarizeResponse struct {
	Summary string `json:"summary"`
	Error   string `json:"error,omitempty"`
}

// ClampSummaryLength 收敛摘要长度到合法区间，非法值回退默认
func ClampSummaryLength(maxLength int) int {
	if maxLength == 0 {
		return SummaryDefaultLength
	}
	if maxLength < SummaryMinLength {
		return SummaryMinLength
	}
	if maxLength > SummaryMaxLength {
		return SummaryMaxLength
	}
	return maxLength
}

// Summarize 调用摘要服务
func (s *AIService) Summarize(text string, maxLength int, focus string) (string, error) {
	payload := summarizeRequest{
		Text:      text,
		MaxLength: ClampSummaryLength(maxLength),
		Focus:     focus,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1/summarize", s.baseURL)
	req, err := http.NewRequest("POST", url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("创建请求失败: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("AI摘要服务不可用: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("AI摘要失败，响应状态码: %d", resp.StatusCode)
	}

	var result summarizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("解析摘要结果失败: %v", err)
	}
	if result.Error != "" {
		return "", fmt.Errorf("AI摘要失败: %s", result.Error)
	}
	return result.Summary, nil
}
