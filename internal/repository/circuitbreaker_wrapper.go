package repository

import (
	"context"
	"errors"

	"github.com/ScriptVenture/checkout-service/internal/circuitbreaker"
)

// PaymentsRepositoryWithCircuitBreaker wraps PaymentsRepository with
// circuit breaker protection.
type PaymentsRepositoryWithCircuitBreaker struct {
	repo           *PaymentsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewPaymentsRepositoryWithCircuitBreaker wraps a payments repository.
func NewPaymentsRepositoryWithCircuitBreaker(repo *PaymentsRepository, cb *circuitbreaker.CircuitBreaker) *PaymentsRepositoryWithCircuitBreaker {
	return &PaymentsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create inserts a payment record. When the circuit is open the write
// is dropped so payment initiation still succeeds without persistence.
func (r *PaymentsRepositoryWithCircuitBreaker) Create(ctx context.Context, doc *PaymentDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, doc)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// UpdateStatus records a callback outcome under breaker protection.
// Like Create, an open circuit degrades to stateless operation.
func (r *PaymentsRepositoryWithCircuitBreaker) UpdateStatus(ctx context.Context, orderID, status string, raw map[string]string) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.UpdateStatus(ctx, orderID, status, raw)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// GetByOrderID looks up a payment record under breaker protection.
func (r *PaymentsRepositoryWithCircuitBreaker) GetByOrderID(ctx context.Context, orderID string) (*PaymentDocument, error) {
	var result *PaymentDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetByOrderID(ctx, orderID)
		return cbErr
	})
	return result, err
}

// ListByStatus lists payment records under breaker protection.
func (r *PaymentsRepositoryWithCircuitBreaker) ListByStatus(ctx context.Context, status string, limit int) ([]PaymentDocument, error) {
	var result []PaymentDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.ListByStatus(ctx, status, limit)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker exposes the breaker for health reporting.
func (r *PaymentsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit
// breaker protection. Log writes fail silently on an open circuit
// since logging is non-critical.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker wraps a logs repository.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a log entry, silently dropping it when the circuit is open.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// CreateMany stores a batch of log entries, silently dropping them
// when the circuit is open.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Query retrieves log entries under breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count counts log entries under breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker exposes the breaker for health reporting.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
