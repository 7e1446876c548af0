package repository

import "context"

// PaymentsRepositoryInterface defines payment record operations.
type PaymentsRepositoryInterface interface {
	Create(ctx context.Context, doc *PaymentDocument) error
	UpdateStatus(ctx context.Context, orderID, status string, raw map[string]string) error
	GetByOrderID(ctx context.Context, orderID string) (*PaymentDocument, error)
	ListByStatus(ctx context.Context, status string, limit int) ([]PaymentDocument, error)
}

// LogsRepositoryInterface defines log entry operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
