package transactor

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

type mongoTransactor struct {
	client *mongo.Client
}

// NewMongoTransactor builds transactor on top of mongo sessions, requires replica set deployment.
// Session context is passed to the function, so collection calls made with it join the transaction.
func NewMongoTransactor(c *mongo.Client) Transactor {
	return &mongoTransactor{client: c}
}

func (t *mongoTransactor) WithinTransaction(ctx context.Context, txFunc func(context.Context) error) error {
	if mongo.SessionFromContext(ctx) != nil {
		return txFunc(ctx)
	}

	sess, err := t.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start mongo session - %w", err)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (any, error) {
		return nil, txFunc(sessCtx)
	})
	return err
}
