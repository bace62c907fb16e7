package paymentRepo

import (
	"context"
	"fmt"
	"time"

	"decorly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RecordOnce upserts a ledger row keyed by transaction id. The $setOnInsert
// update never overwrites an existing row, so a replayed confirmation keeps
// the originally recorded amount and tracking code.
func (r *mongoPaymentRepo) RecordOnce(ctx context.Context, payment *models.Payment) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"transactionId": payment.TransactionID}
	update := bson.M{"$setOnInsert": payment}
	opts := options.Update().SetUpsert(true)

	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		// A duplicate-key race between two upserts for the same transaction
		// means the row already exists, which is the desired end state.
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		return fmt.Errorf("failed to record payment %s: %w", payment.TransactionID, err)
	}
	return nil
}

// GetByTransactionID returns the ledger row for a transaction, or nil when
// none has been recorded.
func (r *mongoPaymentRepo) GetByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var payment models.Payment
	if err := r.coll.FindOne(ctx, bson.M{"transactionId": transactionID}).Decode(&payment); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch payment %s: %w", transactionID, err)
	}
	return &payment, nil
}

// GetByEmail returns payments for a customer, newest first. An empty email
// returns the full ledger.
func (r *mongoPaymentRepo) GetByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if email != "" {
		filter["customerEmail"] = email
	}
	opts := options.Find().SetSort(bson.D{{Key: "paidAt", Value: -1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve payments: %w", err)
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("failed to decode payments: %w", err)
	}
	return payments, nil
}
