package get_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/NutriCare-BookingEngine/internal/domain"
	"github.com/m04kA/NutriCare-BookingEngine/internal/integrations/appointmentapi"
	"github.com/m04kA/NutriCare-BookingEngine/internal/orchestrator"
)

type fakeLogger struct{}

func (fakeLogger) Debug(format string, v ...interface{}) {}
func (fakeLogger) Info(format string, v ...interface{})  {}
func (fakeLogger) Warn(format string, v ...interface{})  {}
func (fakeLogger) Error(format string, v ...interface{}) {}

type fakeClient struct {
	listFn func(ctx context.Context, token string) ([]appointmentapi.AppointmentRecord, error)
}

func (f *fakeClient) List(ctx context.Context, token string) ([]appointmentapi.AppointmentRecord, error) {
	if f.listFn == nil {
		return nil, nil
	}
	return f.listFn(ctx, token)
}

func (f *fakeClient) Create(ctx context.Context, token string, req appointmentapi.CreateRequest) (*appointmentapi.AppointmentRecord, error) {
	return nil, errors.New("not implemented")
}

type fakeTokens struct {
	token string
	ok    bool
}

func (f fakeTokens) Token(ctx context.Context) (string, bool) { return f.token, f.ok }

type fakeBlockedDates struct{}

func (fakeBlockedDates) ListByProvider(ctx context.Context, providerID int64) ([]string, error) {
	return nil, nil
}

type staticRegistry struct {
	orch *orchestrator.Orchestrator
	err  error
}

func (r *staticRegistry) Get(ctx context.Context, providerID int64) (*orchestrator.Orchestrator, error) {
	return r.orch, r.err
}

func allWeekPolicy(t *testing.T) *domain.WorkingHoursPolicy {
	t.Helper()
	policy, err := domain.NewWorkingHoursPolicy(1, 9, 17, 60,
		domain.MaskMonday|domain.MaskTuesday|domain.MaskWednesday|domain.MaskThursday|
			domain.MaskFriday|domain.MaskSaturday|domain.MaskSunday)
	require.NoError(t, err)
	return policy
}

func TestExecute_Success(t *testing.T) {
	orch := orchestrator.New(1, allWeekPolicy(t), &fakeClient{}, fakeTokens{token: "t", ok: true},
		fakeBlockedDates{}, fakeLogger{})
	uc := NewUseCase(&staticRegistry{orch: orch}, fakeLogger{})

	// дата в будущем, чтобы слоты не попали в прошедшие
	date := time.Now().AddDate(0, 0, 2)
	date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.Local)

	resp, err := uc.Execute(context.Background(), &Request{ProviderID: 1, Date: date})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 8)
	assert.Equal(t, "09:00", resp.Slots[0].Start)
	assert.Equal(t, "10:00", resp.Slots[0].End)
	assert.Equal(t, "available", resp.Slots[0].State)
	assert.True(t, resp.Slots[0].Bookable)
	assert.Equal(t, 8, resp.Summary.TotalSlots)
	assert.Equal(t, 0, resp.Summary.BookedSlots)
	assert.True(t, resp.Summary.IsSelectable)
	assert.Equal(t, uint64(1), resp.Generation)
}

func TestExecute_NoCredential(t *testing.T) {
	orch := orchestrator.New(1, allWeekPolicy(t), &fakeClient{}, fakeTokens{ok: false},
		fakeBlockedDates{}, fakeLogger{})
	uc := NewUseCase(&staticRegistry{orch: orch}, fakeLogger{})

	_, err := uc.Execute(context.Background(), &Request{ProviderID: 1, Date: time.Now().AddDate(0, 0, 1)})
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestExecute_UpstreamFailure(t *testing.T) {
	client := &fakeClient{
		listFn: func(ctx context.Context, token string) ([]appointmentapi.AppointmentRecord, error) {
			return nil, appointmentapi.ErrNetwork
		},
	}
	orch := orchestrator.New(1, allWeekPolicy(t), client, fakeTokens{token: "t", ok: true},
		fakeBlockedDates{}, fakeLogger{})
	uc := NewUseCase(&staticRegistry{orch: orch}, fakeLogger{})

	_, err := uc.Execute(context.Background(), &Request{ProviderID: 1, Date: time.Now().AddDate(0, 0, 1)})
	require.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&staticRegistry{}, fakeLogger{})

	_, err := uc.Execute(context.Background(), &Request{ProviderID: 0, Date: time.Now()})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ProviderID: 1})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RegistryFailure(t *testing.T) {
	uc := NewUseCase(&staticRegistry{err: errors.New("db down")}, fakeLogger{})

	_, err := uc.Execute(context.Background(), &Request{ProviderID: 1, Date: time.Now().AddDate(0, 0, 1)})
	require.ErrorIs(t, err, ErrInternal)
}
