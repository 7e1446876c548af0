package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ScriptVenture/checkout-service/internal/domain/model"
	"github.com/ScriptVenture/checkout-service/internal/mocks"
)

func TestNewAsyncLoggerNilService(t *testing.T) {
	al := NewAsyncLogger(nil, DefaultAsyncLoggerConfig())
	assert.Nil(t, al)
}

func TestAsyncLoggerWritesEntries(t *testing.T) {
	mockService := new(mocks.MockLoggingService)
	mockService.On("CreateLog", mock.Anything, mock.Anything).Return(nil)

	al := NewAsyncLogger(mockService, AsyncLoggerConfig{
		BufferSize:   10,
		Workers:      2,
		WriteTimeout: time.Second,
	})

	for i := 0; i < 5; i++ {
		ok := al.Log(&model.LogEntry{Message: "HTTP request"})
		assert.True(t, ok)
	}

	al.Stop()

	enqueued, dropped, written, errs := al.Stats()
	assert.Equal(t, int64(5), enqueued)
	assert.Equal(t, int64(0), dropped)
	assert.Equal(t, int64(5), written)
	assert.Equal(t, int64(0), errs)
}

func TestAsyncLoggerDropsWhenFull(t *testing.T) {
	mockService := new(mocks.MockLoggingService)
	blocked := make(chan struct{})
	mockService.On("CreateLog", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { <-blocked }).
		Return(nil)

	al := NewAsyncLogger(mockService, AsyncLoggerConfig{
		BufferSize:   1,
		Workers:      1,
		WriteTimeout: time.Second,
	})

	// First entry goes to the worker, second fills the buffer, the rest drop.
	for i := 0; i < 5; i++ {
		al.Log(&model.LogEntry{Message: "HTTP request"})
	}

	_, dropped, _, _ := al.Stats()
	assert.Greater(t, dropped, int64(0))

	close(blocked)
	al.Stop()
}

func TestAsyncLoggerCountsWriteErrors(t *testing.T) {
	mockService := new(mocks.MockLoggingService)
	mockService.On("CreateLog", mock.Anything, mock.Anything).Return(assert.AnError)

	al := NewAsyncLogger(mockService, AsyncLoggerConfig{
		BufferSize:   10,
		Workers:      1,
		WriteTimeout: time.Second,
	})

	al.Log(&model.LogEntry{Message: "HTTP request"})
	al.Stop()

	_, _, written, errs := al.Stats()
	assert.Equal(t, int64(0), written)
	assert.Equal(t, int64(1), errs)
}

func TestGlobalAsyncLoggerLifecycle(t *testing.T) {
	mockService := new(mocks.MockLoggingService)
	mockService.On("CreateLog", mock.Anything, mock.Anything).Return(nil)

	InitAsyncLogger(mockService, DefaultAsyncLoggerConfig())
	assert.NotNil(t, GetAsyncLogger())

	StopAsyncLogger()
	assert.Nil(t, GetAsyncLogger())
}
