package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/food-delivery-analytics/pkg/log"
)

func TestLoggingMiddleware(t *testing.T) {
	log.SetupTestLogger()

	var correlationID string
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusAccepted)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tabs/overview", nil))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.NotEmpty(t, correlationID)
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falha inesperada")
	}))

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tabs/menu", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		in   time.Duration
		want string
	}{
		{name: "microssegundos", in: 250 * time.Microsecond, want: "250 µs"},
		{name: "milissegundos", in: 42 * time.Millisecond, want: "42 ms"},
		{name: "segundos", in: 1500 * time.Millisecond, want: "1.50 s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatDuration(tt.in))
		})
	}
}
