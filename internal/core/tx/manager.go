// Package tx declares the transaction boundary domain services run behind.
// The Postgres implementation lives in infrastructure/storage/postgres.
package tx

import "context"

// Manager runs a function inside a database transaction: rolled back when fn
// errors, committed otherwise. Nested calls join the transaction already
// carried by the context instead of opening a new one.
type Manager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ReadOnlyManager additionally runs read-only transactions. Writes inside
// ReadOnly fail at the database.
type ReadOnlyManager interface {
	Manager

	ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}
