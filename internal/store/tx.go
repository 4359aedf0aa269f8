// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-kb-sync/internal/logger"
)

type txCtxKey struct{}

// txState is carried in the context of a running transaction. Hooks are
// collected while it runs and fired once it commits.
type txState struct {
	tx    *sql.Tx
	hooks []func(ctx context.Context)
}

// WithinTransaction runs fn in a transaction. Repository calls made with the
// context passed to fn join that transaction. Nested calls reuse the outer
// transaction.
//
// The transaction is rolled back when fn returns an error or panics. Hooks
// registered with [AfterCommit] run, in registration order, only after a
// successful commit and receive the caller's ctx.
func (db *DB) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(txCtxKey{}).(*txState); ok {
		return fn(ctx)
	}

	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*DB.WithinTransaction").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	state := &txState{tx: tx}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err = fn(context.WithValue(ctx, txCtxKey{}, state)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Err(rbErr).Str("func", "*DB.WithinTransaction").Msg("error rolling back transaction")
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*DB.WithinTransaction").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	for _, hook := range state.hooks {
		hook(ctx)
	}

	return nil
}

// AfterCommit defers hook until the transaction carried by ctx commits. The
// hook is dropped on rollback. Without a transaction in ctx it runs at once.
func AfterCommit(ctx context.Context, hook func(ctx context.Context)) {
	if state, ok := ctx.Value(txCtxKey{}).(*txState); ok {
		state.hooks = append(state.hooks, hook)
		return
	}

	hook(ctx)
}

// querier is the subset shared by *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// conn returns the transaction carried by ctx or the pool.
func (db *DB) conn(ctx context.Context) querier {
	if state, ok := ctx.Value(txCtxKey{}).(*txState); ok {
		return state.tx
	}

	return db.DB
}
