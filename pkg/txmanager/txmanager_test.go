package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/NutriCare-BookingEngine/pkg/dbmetrics"
)

type fakeTx struct {
	committed  bool
	rolledBack bool
}

func (f *fakeTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

func (f *fakeTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (f *fakeTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (f *fakeTx) Commit() error   { f.committed = true; return nil }
func (f *fakeTx) Rollback() error { f.rolledBack = true; return nil }

type fakeBeginner struct {
	begun    int
	beginErr error
	lastOpts *sql.TxOptions
	lastTx   *fakeTx
}

func (f *fakeBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	f.begun++
	f.lastOpts = opts
	if f.beginErr != nil {
		return nil, f.beginErr
	}
	f.lastTx = &fakeTx{}
	return f.lastTx, nil
}

func TestDoSerializable_CommitsOnSuccess(t *testing.T) {
	db := &fakeBeginner{}
	mgr := NewTransactionManager(db)

	var sawTx bool
	err := mgr.DoSerializable(context.Background(), func(ctx context.Context) error {
		sawTx = dbmetrics.IsInTransaction(ctx)
		return nil
	})
	require.NoError(t, err)

	assert.True(t, sawTx)
	assert.Equal(t, sql.LevelSerializable, db.lastOpts.Isolation)
	assert.True(t, db.lastTx.committed)
	assert.False(t, db.lastTx.rolledBack)
}

func TestDoSerializable_RollsBackOnError(t *testing.T) {
	db := &fakeBeginner{}
	mgr := NewTransactionManager(db)

	fnErr := errors.New("insert failed")
	err := mgr.DoSerializable(context.Background(), func(ctx context.Context) error {
		return fnErr
	})
	require.ErrorIs(t, err, fnErr)

	assert.True(t, db.lastTx.rolledBack)
	assert.False(t, db.lastTx.committed)
}

func TestDoSerializable_ReusesAmbientTransaction(t *testing.T) {
	db := &fakeBeginner{}
	mgr := NewTransactionManager(db)

	err := mgr.DoSerializable(context.Background(), func(ctx context.Context) error {
		// вложенный вызов не открывает вторую транзакцию
		return mgr.DoSerializable(ctx, func(ctx context.Context) error { return nil })
	})
	require.NoError(t, err)

	assert.Equal(t, 1, db.begun)
	assert.True(t, db.lastTx.committed)
}

func TestDoSerializable_BeginFailure(t *testing.T) {
	db := &fakeBeginner{beginErr: errors.New("connection refused")}
	mgr := NewTransactionManager(db)

	err := mgr.DoSerializable(context.Background(), func(ctx context.Context) error { return nil })
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to begin transaction")
}
