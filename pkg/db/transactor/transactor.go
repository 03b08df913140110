package transactor

import (
	"context"
)

// Transactor represents behavior for transactors
type Transactor interface {
	WithinTransaction(context.Context, func(context.Context) error) error
}

type passthroughTransactor struct{}

// NewPassthroughTransactor builds transactor which runs function without transaction,
// used for storages which can't provide transactions (e.g. standalone mongo)
func NewPassthroughTransactor() Transactor {
	return passthroughTransactor{}
}

func (passthroughTransactor) WithinTransaction(ctx context.Context, txFunc func(context.Context) error) error {
	return txFunc(ctx)
}
