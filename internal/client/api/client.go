package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/iudanet/ecoestate/internal/models"
	"github.com/iudanet/ecoestate/pkg/api"
)

// ErrNetworkFailure classifies any failed request: transport error,
// timeout or non-2xx status. Routine on the write path — it triggers
// the offline-queue fallback, never a hard user error.
var ErrNetworkFailure = errors.New("network request failed")

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient создает новый API клиент.
// Таймаут обязателен: сетевой слой должен падать, а не висеть.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовок Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// SetAccessToken устанавливает токен для агентских endpoint-ов
func (c *Client) SetAccessToken(token string) {
	c.token = token
}

// Health проверяет достижимость сервера.
// Используется монитором связности как probe.
func (c *Client) Health(ctx context.Context) error {
	return c.doRequest(ctx, http.MethodGet, "/api/v1/health", nil, nil)
}

// Login выполняет аутентификацию агента
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// GetProperties загружает полный каталог объектов
func (c *Client) GetProperties(ctx context.Context) ([]models.Property, error) {
	var resp api.PropertiesResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/catalog/properties", nil, &resp); err != nil {
		return nil, fmt.Errorf("get properties request failed: %w", err)
	}
	return resp.Properties, nil
}

// GetRegions загружает список регионов
func (c *Client) GetRegions(ctx context.Context) ([]models.Region, error) {
	var resp api.RegionsResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/catalog/regions", nil, &resp); err != nil {
		return nil, fmt.Errorf("get regions request failed: %w", err)
	}
	return resp.Regions, nil
}

// GetEcoFeatures загружает список эко-характеристик
func (c *Client) GetEcoFeatures(ctx context.Context) ([]models.EcoFeature, error) {
	var resp api.EcoFeaturesResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/catalog/eco-features", nil, &resp); err != nil {
		return nil, fmt.Errorf("get eco features request failed: %w", err)
	}
	return resp.Features, nil
}

// GetProjects загружает проекты агента (требует токен)
func (c *Client) GetProjects(ctx context.Context) ([]models.Project, error) {
	var resp api.ProjectsResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/projects", nil, &resp); err != nil {
		return nil, fmt.Errorf("get projects request failed: %w", err)
	}
	return resp.Projects, nil
}

// Replay replays a queued action against its recorded endpoint.
// Payload отправляется как есть: форма проверена на границе enqueue.
func (c *Client) Replay(ctx context.Context, action *models.PendingAction) error {
	if err := c.doRequest(ctx, action.Method, action.Endpoint, json.RawMessage(action.Payload), nil); err != nil {
		return fmt.Errorf("replay %s failed: %w", action.Kind, err)
	}
	return nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Транспортная ошибка или таймаут
		return fmt.Errorf("%w: %v", ErrNetworkFailure, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response body: %v", ErrNetworkFailure, err)
	}

	// Не-2xx — отказ
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			return fmt.Errorf("%w: server error (%d): %s", ErrNetworkFailure, resp.StatusCode, errResp.Message)
		}
		return fmt.Errorf("%w: status %d: %s", ErrNetworkFailure, resp.StatusCode, string(respBody))
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
