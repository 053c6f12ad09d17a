package repository

import (
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/anishanishy81-byte/poverse-sub003/services"
)

func updateReturnAfter() *options.FindOneAndUpdateOptionsBuilder {
	return options.FindOneAndUpdate().SetReturnDocument(options.After)
}

// insertErr translates a unique-index violation into the duplicate sentinel
// so two writers racing past a service-level existence check get a 409, not
// a 500.
func insertErr(op string, err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %s", services.ErrDuplicate, op)
	}
	return fmt.Errorf("%s: %w", op, err)
}
