package ollamaclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"social-spark/cmd/web/httpclient"
	"social-spark/config"
	"social-spark/spark"
)

// Client 는 로컬 Ollama 서버의 HTTP API 를 호출하는 얇은 클라이언트다.
// 재시도나 스트리밍 없이 요청 하나에 응답 하나만 다룬다.
type Client struct {
	base  *httpclient.BaseClient
	model string
}

type GenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// GenerateResponse 는 /api/generate 응답 중 사용하는 필드만 담는다.
// Response 가 nil 이면 응답에 필드가 없었던 것이다.
type GenerateResponse struct {
	Model    string  `json:"model"`
	Response *string `json:"response"`
	Done     bool    `json:"done"`
}

type ModelInfo struct {
	Name  string `json:"name"`
	Model string `json:"model"`
	Size  int64  `json:"size"`
}

type TagsResponse struct {
	Models []ModelInfo `json:"models"`
}

// ErrUnreachable 은 Ollama 에 연결 자체를 못 했을 때 감싸지는 에러다.
var ErrUnreachable = errors.New("ollama unreachable")

type HTTPError struct {
	StatusCode int
	Body       string
	// Message 는 Ollama 가 {"error": "..."} 로 돌려준 값이다. 없으면 빈 문자열.
	Message string
}

// Error 는 사용자 화면까지 전달되므로 바디와 메시지를 스니펫 길이로 자른다.
func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("ollama request failed: status=%d error=%s", e.StatusCode, httpclient.Snippet(e.Message))
	}
	return fmt.Sprintf("ollama request failed: status=%d body=%s", e.StatusCode, httpclient.Snippet(e.Body))
}

const maxBodySize = 5 * 1024 * 1024

func New(cfg config.OllamaConfig) *Client {
	httpClient := httpclient.New(httpclient.Config{Timeout: cfg.Timeout})
	return &Client{
		base:  httpclient.NewBaseClientWithClient(httpClient, cfg.BaseURL),
		model: cfg.Model,
	}
}

func (c *Client) Model() string {
	return c.model
}

// Generate 는 prompt 를 /api/generate 로 보내고 생성된 텍스트를 돌려준다.
// 응답에 response 필드가 없으면 spark.NoResponsePlaceholder 를 돌려준다.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	payload := GenerateRequest{Model: c.model, Prompt: prompt, Stream: false}
	buf, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := c.base.NewRequest(ctx, http.MethodPost, "/api/generate", nil, bytes.NewReader(buf))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req)
	if err != nil {
		return "", err
	}

	var out GenerateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("ollama generate: decode response: %w", err)
	}
	if out.Response == nil {
		return spark.NoResponsePlaceholder, nil
	}
	return *out.Response, nil
}

// ListModels 는 /api/tags 로 로컬에 받아둔 모델 이름 목록을 조회한다.
func (c *Client) ListModels(ctx context.Context) ([]string, error) {
	req, err := c.base.NewRequest(ctx, http.MethodGet, "/api/tags", nil, nil)
	if err != nil {
		return nil, err
	}

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var out TagsResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("ollama tags: decode response: %w", err)
	}
	names := make([]string, 0, len(out.Models))
	for _, m := range out.Models {
		names = append(names, m.Name)
	}
	return names, nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.base.Do(req)
	if err != nil {
		if httpclient.IsConnectError(err) {
			return nil, fmt.Errorf("%w: %w", ErrUnreachable, err)
		}
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("ollama response read failed: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newHTTPError(resp.StatusCode, body)
	}
	return body, nil
}

func newHTTPError(status int, body []byte) *HTTPError {
	e := &HTTPError{StatusCode: status, Body: string(body)}
	var payload struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &payload) == nil {
		e.Message = payload.Error
	}
	return e
}

// MatchesModel 은 설정된 모델 이름이 /api/tags 의 이름과 같은지 본다.
// 태그가 없는 이름은 ":latest" 로 간주한다.
func MatchesModel(configured, listed string) bool {
	if configured == listed {
		return true
	}
	if !strings.Contains(configured, ":") {
		return configured+":latest" == listed
	}
	return false
}
