package blockeddates

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLogger struct{}

func (fakeLogger) Info(format string, v ...interface{})  {}
func (fakeLogger) Warn(format string, v ...interface{})  {}
func (fakeLogger) Error(format string, v ...interface{}) {}

type fakeRepo struct {
	listFn  func(ctx context.Context, providerID int64) ([]string, error)
	added   []string
	deleted []int64
}

func (f *fakeRepo) ListByProvider(ctx context.Context, providerID int64) ([]string, error) {
	if f.listFn == nil {
		return nil, nil
	}
	return f.listFn(ctx, providerID)
}

func (f *fakeRepo) AddMany(ctx context.Context, providerID int64, dates []string) error {
	f.added = append(f.added, dates...)
	return nil
}

func (f *fakeRepo) DeleteByProvider(ctx context.Context, providerID int64) error {
	f.deleted = append(f.deleted, providerID)
	return nil
}

// passthroughTx выполняет функцию без реальной транзакции
type passthroughTx struct {
	calls int
}

func (m *passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type fakeInvalidator struct {
	invalidated []int64
}

func (f *fakeInvalidator) Invalidate(providerID int64) {
	f.invalidated = append(f.invalidated, providerID)
}

func TestList(t *testing.T) {
	repo := &fakeRepo{
		listFn: func(ctx context.Context, providerID int64) ([]string, error) {
			return []string{"2024-07-01", "2024-07-04"}, nil
		},
	}
	svc := NewService(repo, &passthroughTx{}, &fakeInvalidator{}, fakeLogger{})

	dates, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-07-01", "2024-07-04"}, dates)
}

func TestList_RepoError(t *testing.T) {
	repo := &fakeRepo{
		listFn: func(ctx context.Context, providerID int64) ([]string, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := NewService(repo, &passthroughTx{}, &fakeInvalidator{}, fakeLogger{})

	_, err := svc.List(context.Background(), 1)
	require.ErrorIs(t, err, ErrInternal)
}

func TestReplace_DeletesThenInsertsInOneTransaction(t *testing.T) {
	repo := &fakeRepo{}
	tx := &passthroughTx{}
	invalidator := &fakeInvalidator{}
	svc := NewService(repo, tx, invalidator, fakeLogger{})

	saved, err := svc.Replace(context.Background(), 1, []string{"2024-07-04", "2024-07-01", "2024-07-04"})
	require.NoError(t, err)

	// дубликаты убраны, результат отсортирован
	assert.Equal(t, []string{"2024-07-01", "2024-07-04"}, saved)
	assert.Equal(t, []int64{1}, repo.deleted)
	assert.Equal(t, []string{"2024-07-01", "2024-07-04"}, repo.added)
	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, []int64{1}, invalidator.invalidated)
}

func TestReplace_EmptyListClearsDates(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, &passthroughTx{}, &fakeInvalidator{}, fakeLogger{})

	saved, err := svc.Replace(context.Background(), 1, nil)
	require.NoError(t, err)
	assert.Empty(t, saved)
	assert.Equal(t, []int64{1}, repo.deleted)
	assert.Empty(t, repo.added)
}

func TestReplace_InvalidDateFormat(t *testing.T) {
	repo := &fakeRepo{}
	invalidator := &fakeInvalidator{}
	svc := NewService(repo, &passthroughTx{}, invalidator, fakeLogger{})

	for _, bad := range []string{"01-07-2024", "2024/07/01", "2024-13-01", "tomorrow"} {
		_, err := svc.Replace(context.Background(), 1, []string{bad})
		require.ErrorIs(t, err, ErrInvalidInput, "input %q", bad)
	}

	assert.Empty(t, repo.deleted)
	assert.Empty(t, invalidator.invalidated)
}
