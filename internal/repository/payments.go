package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrPaymentNotFound is returned when no payment matches the lookup.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentDocument is a payment record as stored in MongoDB. One
// document tracks a payment from initiation through the gateway
// callback.
type PaymentDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderID     string             `bson:"order_id" json:"order_id"`
	PaymentID   string             `bson:"payment_id" json:"payment_id"`
	Status      string             `bson:"status" json:"status"`
	AmountCents int64              `bson:"amount_cents" json:"amount_cents"`
	Currency    string             `bson:"currency" json:"currency"`
	Test        bool               `bson:"test,omitempty" json:"test,omitempty"`
	// RawCallback keeps the gateway's decoded callback fields for
	// reconciliation.
	RawCallback map[string]string `bson:"raw_callback,omitempty" json:"raw_callback,omitempty"`
	CreatedAt   time.Time         `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time         `bson:"updated_at" json:"updated_at"`
}

// PaymentsRepository stores payment records.
type PaymentsRepository struct {
	collection *mongo.Collection
}

// NewPaymentsRepository creates a payments repository.
func NewPaymentsRepository(db *MongoDB) *PaymentsRepository {
	return &PaymentsRepository{collection: db.Payments}
}

// Create inserts a pending payment record at initiation time.
func (r *PaymentsRepository) Create(ctx context.Context, doc *PaymentDocument) error {
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	now := time.Now()
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = now
	}
	doc.UpdatedAt = now
	if doc.Status == "" {
		doc.Status = "pending"
	}

	_, err := r.collection.InsertOne(ctx, doc)
	return err
}

// UpdateStatus records the callback outcome for an order. The raw
// decoded callback fields are stored alongside the status transition.
func (r *PaymentsRepository) UpdateStatus(ctx context.Context, orderID, status string, raw map[string]string) error {
	update := bson.M{
		"$set": bson.M{
			"status":       status,
			"raw_callback": raw,
			"updated_at":   time.Now(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"order_id": orderID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrPaymentNotFound
	}
	return nil
}

// GetByOrderID returns the most recent payment record for an order.
func (r *PaymentsRepository) GetByOrderID(ctx context.Context, orderID string) (*PaymentDocument, error) {
	opts := options.FindOne().SetSort(bson.M{"created_at": -1})

	var doc PaymentDocument
	err := r.collection.FindOne(ctx, bson.M{"order_id": orderID}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// ListByStatus returns payment records in a given status, newest first.
func (r *PaymentsRepository) ListByStatus(ctx context.Context, status string, limit int) ([]PaymentDocument, error) {
	findOpts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		findOpts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{"status": status}, findOpts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []PaymentDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
