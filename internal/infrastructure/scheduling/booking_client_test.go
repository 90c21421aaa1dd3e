package scheduling

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bizsuite/backend/internal/domain/finance"
	"github.com/bizsuite/backend/internal/domain/shared"
)

func marchWindow() finance.PeriodWindow {
	return finance.PeriodWindow{
		Start: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestBookingClient_FindCompleted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/appointments", r.URL.Path)
		assert.Equal(t, "COMPLETED", r.URL.Query().Get("status"))
		assert.Equal(t, "2024-03-01", r.URL.Query().Get("from"))
		assert.Equal(t, "2024-04-01", r.URL.Query().Get("to"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"success": true,
			"data": [
				{"service_price": "150.00", "staff_username": "ana", "completed_at": "2024-03-10T14:00:00Z"},
				{"service_price": "49.99", "staff_username": "", "completed_at": "2024-03-11T09:30:00Z"}
			]
		}`))
	}))
	defer server.Close()

	client := NewBookingClient(server.URL, 5*time.Second, zap.NewNop())

	appointments, err := client.FindCompleted(context.Background(), marchWindow())
	require.NoError(t, err)

	require.Len(t, appointments, 2)
	assert.True(t, decimal.NewFromInt(150).Equal(appointments[0].ServicePrice))
	assert.Equal(t, "ana", appointments[0].StaffUsername)
	assert.Empty(t, appointments[1].StaffUsername)
}

func TestBookingClient_FindCompleted_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewBookingClient(server.URL, 5*time.Second, zap.NewNop())

	_, err := client.FindCompleted(context.Background(), marchWindow())

	assert.ErrorIs(t, err, shared.ErrUpstreamUnavailable)
}

func TestBookingClient_FindCompleted_Unreachable(t *testing.T) {
	client := NewBookingClient("http://127.0.0.1:1", time.Second, zap.NewNop())

	_, err := client.FindCompleted(context.Background(), marchWindow())

	assert.ErrorIs(t, err, shared.ErrUpstreamUnavailable)
}

func TestBookingClient_FindCompleted_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := NewBookingClient(server.URL, 5*time.Second, zap.NewNop())

	_, err := client.FindCompleted(context.Background(), marchWindow())

	assert.ErrorIs(t, err, shared.ErrUpstreamUnavailable)
}
