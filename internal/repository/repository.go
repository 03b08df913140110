package repository

import (
	"errors"

	"github.com/jackc/pgconn"
	"go.mongodb.org/mongo-driver/mongo"
)

const pgUniqueViolationCode = "23505"

// ErrDuplicate is returned when entry violates unique constraint of the storage
var ErrDuplicate = errors.New("entry with the same unique key already exists")

func duplicateOr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
		return ErrDuplicate
	}

	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}
