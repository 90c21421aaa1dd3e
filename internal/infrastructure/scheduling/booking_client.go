package scheduling

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

// maxResponseSize is the maximum allowed response size from the booking service (10MB)
const maxResponseSize = 10 * 1024 * 1024

const dateLayout = "2006-01-02"

// BookingClient implements finance.AppointmentSource against the booking
// service's HTTP API.
type BookingClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewBookingClient creates a new BookingClient
func NewBookingClient(baseURL string, timeout time.Duration, logger *zap.Logger) *BookingClient {
	return &BookingClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger.Named("booking_client"),
	}
}

type appointmentPayload struct {
	ServicePrice  decimal.Decimal `json:"service_price"`
	StaffUsername string          `json:"staff_username"`
	CompletedAt   time.Time       `json:"completed_at"`
}

type appointmentListResponse struct {
	Success bool                 `json:"success"`
	Data    []appointmentPayload `json:"data"`
}

// FindCompleted fetches appointments completed inside the window. The
// upstream query uses the same half-open date range the window carries.
func (c *BookingClient) FindCompleted(ctx context.Context, window finance.PeriodWindow) ([]finance.CompletedAppointment, error) {
	query := url.Values{}
	query.Set("status", "COMPLETED")
	query.Set("from", window.Start.Format(dateLayout))
	query.Set("to", window.End.Format(dateLayout))

	endpoint := fmt.Sprintf("%s/api/v1/appointments?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, shared.ErrUpstreamUnavailable
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("booking service request failed", zap.Error(err))
		return nil, shared.ErrUpstreamUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("booking service returned unexpected status", zap.Int("status", resp.StatusCode))
		return nil, shared.ErrUpstreamUnavailable
	}

	var payload appointmentListResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&payload); err != nil {
		c.logger.Warn("booking service returned malformed body", zap.Error(err))
		return nil, shared.ErrUpstreamUnavailable
	}

	appointments := make([]finance.CompletedAppointment, 0, len(payload.Data))
	for _, item := range payload.Data {
		appointments = append(appointments, finance.CompletedAppointment{
			ServicePrice:  item.ServicePrice,
			StaffUsername: item.StaffUsername,
			CompletedAt:   item.CompletedAt,
		})
	}
	return appointments, nil
}
