package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/bizsuite/backend/internal/domain/finance"
	"github.com/bizsuite/backend/internal/domain/shared"
)

// maxResponseSize is the maximum allowed response size from the staff directory (10MB)
const maxResponseSize = 10 * 1024 * 1024

// StaffClient implements finance.StaffDirectory against the identity
// service's HTTP API.
type StaffClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewStaffClient creates a new StaffClient
func NewStaffClient(baseURL string, timeout time.Duration, logger *zap.Logger) *StaffClient {
	return &StaffClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger.Named("staff_client"),
	}
}

type staffPayload struct {
	Username      string          `json:"username"`
	FullName      string          `json:"full_name"`
	Role          string          `json:"role"`
	PaymentType   string          `json:"payment_type"`
	PaymentAmount decimal.Decimal `json:"payment_amount"`
}

func (p staffPayload) toDomain() finance.StaffMember {
	return finance.StaffMember{
		Username:      p.Username,
		FullName:      p.FullName,
		Role:          finance.StaffRole(p.Role),
		PaymentType:   finance.PaymentType(p.PaymentType),
		PaymentAmount: p.PaymentAmount,
	}
}

type staffListResponse struct {
	Success bool           `json:"success"`
	Data    []staffPayload `json:"data"`
}

type staffResponse struct {
	Success bool         `json:"success"`
	Data    staffPayload `json:"data"`
}

// FindAll fetches every staff account, administrators included. Payroll
// filtering happens in the caller.
func (c *StaffClient) FindAll(ctx context.Context) ([]finance.StaffMember, error) {
	endpoint := fmt.Sprintf("%s/api/v1/staff", c.baseURL)

	body, status, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		c.logger.Warn("staff directory returned unexpected status", zap.Int("status", status))
		return nil, shared.ErrUpstreamUnavailable
	}

	var payload staffListResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		c.logger.Warn("staff directory returned malformed body", zap.Error(err))
		return nil, shared.ErrUpstreamUnavailable
	}

	members := make([]finance.StaffMember, 0, len(payload.Data))
	for _, item := range payload.Data {
		members = append(members, item.toDomain())
	}
	return members, nil
}

// FindByUsername fetches one staff account. A directory 404 maps to
// STAFF_NOT_FOUND; any other failure to UPSTREAM_UNAVAILABLE.
func (c *StaffClient) FindByUsername(ctx context.Context, username string) (*finance.StaffMember, error) {
	endpoint := fmt.Sprintf("%s/api/v1/staff/%s", c.baseURL, url.PathEscape(username))

	body, status, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	switch status {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, shared.ErrStaffNotFound
	default:
		c.logger.Warn("staff directory returned unexpected status", zap.Int("status", status))
		return nil, shared.ErrUpstreamUnavailable
	}

	var payload staffResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		c.logger.Warn("staff directory returned malformed body", zap.Error(err))
		return nil, shared.ErrUpstreamUnavailable
	}

	member := payload.Data.toDomain()
	return &member, nil
}

func (c *StaffClient) get(ctx context.Context, endpoint string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, shared.ErrUpstreamUnavailable
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("staff directory request failed", zap.Error(err))
		return nil, 0, shared.ErrUpstreamUnavailable
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, 0, shared.ErrUpstreamUnavailable
	}
	return body, resp.StatusCode, nil
}
