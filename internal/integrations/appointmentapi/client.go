package appointmentapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics интерфейс учёта запросов к внешнему сервису; может быть nil
type Metrics interface {
	ObserveUpstreamRequest(upstream, operation, status string)
}

const upstreamName = "appointment-store"

// Client клиент удалённого хранилища записей на приём.
// Оба метода требуют bearer-токен, полученный от внешнего сессионного
// коллаборатора; клиент сам токены не добывает и не обновляет.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    Metrics
}

// NewClient создает новый экземпляр клиента хранилища записей
func NewClient(baseURL string, timeout time.Duration, log Logger, m Metrics) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: m,
	}
}

// List возвращает полный список записей, доступных по токену.
// Фильтрация по диетологу выполняется вызывающей стороной после получения.
func (c *Client) List(ctx context.Context, token string) ([]AppointmentRecord, error) {
	url := fmt.Sprintf("%s/api/appointments/", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	c.setHeaders(req, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe("list", "network_error")
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	c.observe("list", fmt.Sprintf("%d", resp.StatusCode))

	if err := c.checkStatus(resp); err != nil {
		return nil, err
	}

	var records []AppointmentRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return records, nil
}

// Create создает запись на приём; id присваивается на стороне хранилища
func (c *Client) Create(ctx context.Context, token string, createReq CreateRequest) (*AppointmentRecord, error) {
	url := fmt.Sprintf("%s/api/appointments/", c.baseURL)

	body, err := json.Marshal(createReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	c.setHeaders(req, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe("create", "network_error")
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	c.observe("create", fmt.Sprintf("%d", resp.StatusCode))

	if err := c.checkStatus(resp); err != nil {
		return nil, err
	}

	var record AppointmentRecord
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &record, nil
}

func (c *Client) setHeaders(req *http.Request, token string) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Request-ID", uuid.NewString())
}

// checkStatus транслирует статус-коды хранилища в типизированные ошибки
func (c *Client) checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil

	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized

	case resp.StatusCode == http.StatusConflict || resp.StatusCode == http.StatusBadRequest:
		detail := c.readDetail(resp.Body)
		if detail == "" {
			return ErrConflict
		}
		return fmt.Errorf("%w: %s", ErrConflict, detail)

	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: status %d", ErrServer, resp.StatusCode)

	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}

// readDetail извлекает человекочитаемое поле detail из тела ошибки
func (c *Client) readDetail(r io.Reader) string {
	var errResp ErrorResponse
	if err := json.NewDecoder(r).Decode(&errResp); err != nil {
		return ""
	}
	return errResp.Detail
}

func (c *Client) observe(operation, status string) {
	if c.metrics != nil {
		c.metrics.ObserveUpstreamRequest(upstreamName, operation, status)
	}
}
