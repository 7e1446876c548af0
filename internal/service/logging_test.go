package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ScriptVenture/checkout-service/internal/domain/model"
	"github.com/ScriptVenture/checkout-service/internal/mocks"
	"github.com/ScriptVenture/checkout-service/internal/repository"
	"github.com/ScriptVenture/checkout-service/internal/service"
)

func TestLoggingService_CreateLog(t *testing.T) {
	repo := &mocks.MockLogsRepositoryInterface{}
	repo.On("Create", mock.Anything, mock.MatchedBy(func(doc *repository.LogEntryDocument) bool {
		return doc.Level == "info" && doc.Message == "Payment initiated" && doc.ActionType == "create_payment"
	})).Return(nil)

	svc := service.NewLoggingService(repo)

	entry := &model.LogEntry{Level: "info", Message: "Payment initiated", ActionType: "create_payment"}
	require.NoError(t, svc.CreateLog(context.Background(), entry))
	repo.AssertExpectations(t)
}

func TestLoggingService_CreateLogs(t *testing.T) {
	t.Run("bulk insert", func(t *testing.T) {
		repo := &mocks.MockLogsRepositoryInterface{}
		repo.On("CreateMany", mock.Anything, mock.MatchedBy(func(docs []*repository.LogEntryDocument) bool {
			return len(docs) == 2
		})).Return(nil)

		svc := service.NewLoggingService(repo)
		entries := []*model.LogEntry{
			{Level: "info", Message: "first"},
			{Level: "warn", Message: "second"},
		}
		require.NoError(t, svc.CreateLogs(context.Background(), entries))
		repo.AssertExpectations(t)
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		repo := &mocks.MockLogsRepositoryInterface{}

		svc := service.NewLoggingService(repo)
		require.NoError(t, svc.CreateLogs(context.Background(), nil))
		repo.AssertNotCalled(t, "CreateMany")
	})
}

func TestLoggingService_QueryLogs(t *testing.T) {
	repo := &mocks.MockLogsRepositoryInterface{}
	repo.On("Query", mock.Anything, mock.MatchedBy(func(opts repository.LogQueryOptions) bool {
		return opts.RequestID == "req-1" && opts.Limit == 10
	})).Return([]*repository.LogEntryDocument{
		{Level: "info", Message: "hello", RequestID: "req-1"},
	}, nil)

	svc := service.NewLoggingService(repo)

	entries, err := svc.QueryLogs(context.Background(), model.LogQueryOptions{RequestID: "req-1", Limit: 10})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "hello", entries[0].Message)
}

func TestLoggingService_CountLogs(t *testing.T) {
	repo := &mocks.MockLogsRepositoryInterface{}
	repo.On("Count", mock.Anything, mock.Anything).Return(int64(7), nil)

	svc := service.NewLoggingService(repo)

	count, err := svc.CountLogs(context.Background(), model.LogQueryOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
}
