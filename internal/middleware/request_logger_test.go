package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ScriptVenture/checkout-service/internal/domain/model"
	"github.com/ScriptVenture/checkout-service/internal/mocks"
)

func TestStatusLogLevel(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{http.StatusOK, "info"},
		{http.StatusCreated, "info"},
		{http.StatusBadRequest, "warn"},
		{http.StatusNotFound, "warn"},
		{http.StatusInternalServerError, "error"},
		{http.StatusBadGateway, "error"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, statusLogLevel(tt.status))
	}
}

func TestRequestLoggerPersistsEntry(t *testing.T) {
	StopAsyncLogger()

	mockService := new(mocks.MockLoggingService)
	logged := make(chan *model.LogEntry, 1)
	mockService.On("CreateLog", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			select {
			case logged <- args.Get(1).(*model.LogEntry):
			default:
			}
		}).
		Return(nil)

	router := gin.New()
	router.Use(RequestID())
	router.Use(RequestLogger(mockService))
	router.GET("/api/rates", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/rates", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	select {
	case entry := <-logged:
		assert.Equal(t, "GET", entry.Method)
		assert.Equal(t, "/api/rates", entry.Path)
		assert.Equal(t, http.StatusOK, entry.StatusCode)
		assert.Equal(t, "info", entry.Level)
		assert.NotEmpty(t, entry.RequestID)
	case <-time.After(2 * time.Second):
		t.Fatal("log entry was not persisted")
	}
}

func TestRequestLoggerNilServiceDoesNotPanic(t *testing.T) {
	router := gin.New()
	router.Use(RequestLogger(nil))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	assert.NotPanics(t, func() {
		router.ServeHTTP(w, req)
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestLoggerUsesAsyncLogger(t *testing.T) {
	mockService := new(mocks.MockLoggingService)
	mockService.On("CreateLog", mock.Anything, mock.Anything).Return(nil)

	InitAsyncLogger(mockService, DefaultAsyncLoggerConfig())
	defer StopAsyncLogger()

	router := gin.New()
	router.Use(RequestID())
	router.Use(RequestLogger(mockService))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	enqueued, _, _, _ := GetAsyncLogger().Stats()
	assert.Equal(t, int64(1), enqueued)
}
