package orchestrator

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/NutriCare-BookingEngine/internal/domain"
	"github.com/m04kA/NutriCare-BookingEngine/internal/integrations/appointmentapi"
)

type fakeLogger struct{}

func (fakeLogger) Debug(format string, v ...interface{}) {}
func (fakeLogger) Info(format string, v ...interface{})  {}
func (fakeLogger) Warn(format string, v ...interface{})  {}
func (fakeLogger) Error(format string, v ...interface{}) {}

type fakeClient struct {
	mu          sync.Mutex
	listCalls   int
	createCalls int
	listFn      func(ctx context.Context, token string) ([]appointmentapi.AppointmentRecord, error)
	createFn    func(ctx context.Context, token string, req appointmentapi.CreateRequest) (*appointmentapi.AppointmentRecord, error)
}

func (f *fakeClient) List(ctx context.Context, token string) ([]appointmentapi.AppointmentRecord, error) {
	f.mu.Lock()
	f.listCalls++
	fn := f.listFn
	f.mu.Unlock()
	if fn == nil {
		return nil, nil
	}
	return fn(ctx, token)
}

func (f *fakeClient) Create(ctx context.Context, token string, req appointmentapi.CreateRequest) (*appointmentapi.AppointmentRecord, error) {
	f.mu.Lock()
	f.createCalls++
	fn := f.createFn
	f.mu.Unlock()
	if fn == nil {
		return &appointmentapi.AppointmentRecord{ID: 1, Dietician: req.Dietician, DateTime: req.DateTime, IsActive: true}, nil
	}
	return fn(ctx, token, req)
}

func (f *fakeClient) counts() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls, f.createCalls
}

type fakeTokens struct {
	token string
	ok    bool
}

func (f fakeTokens) Token(ctx context.Context) (string, bool) {
	return f.token, f.ok
}

type fakeBlockedDates struct {
	dates []string
	err   error
}

func (f fakeBlockedDates) ListByProvider(ctx context.Context, providerID int64) ([]string, error) {
	return f.dates, f.err
}

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

// 2024-06-10 - понедельник
var testNow = time.Date(2024, 6, 10, 8, 0, 0, 0, time.Local)

func testPolicy(t *testing.T) *domain.WorkingHoursPolicy {
	t.Helper()
	policy, err := domain.NewWorkingHoursPolicy(1, 9, 17, 60,
		domain.MaskMonday|domain.MaskTuesday|domain.MaskWednesday|domain.MaskThursday|domain.MaskFriday)
	require.NoError(t, err)
	return policy
}

func newTestOrchestrator(t *testing.T, client *fakeClient, tokens TokenSource) *Orchestrator {
	t.Helper()
	o := New(1, testPolicy(t), client, tokens, fakeBlockedDates{}, fakeLogger{})
	o.timeProvider = &fakeClock{now: testNow}
	return o
}

func record(id, dietician int64, dateTime string) appointmentapi.AppointmentRecord {
	return appointmentapi.AppointmentRecord{
		ID:        id,
		Patient:   7,
		Dietician: dietician,
		DateTime:  dateTime,
		IsActive:  true,
	}
}

func TestRefresh_ReplacesSnapshotWholesale(t *testing.T) {
	client := &fakeClient{
		listFn: func(ctx context.Context, token string) ([]appointmentapi.AppointmentRecord, error) {
			return []appointmentapi.AppointmentRecord{
				record(1, 1, "2024-06-10T10:00:00"),
				record(2, 1, "2024-06-10T11:00:00"),
				record(3, 2, "2024-06-10T10:00:00"), // чужой диетолог
			}, nil
		},
	}
	o := newTestOrchestrator(t, client, fakeTokens{token: "t", ok: true})

	require.NoError(t, o.Refresh(context.Background()))

	state := o.GetSnapshotState()
	require.Len(t, state.Appointments, 2)
	assert.Equal(t, uint64(1), state.Generation)

	// следующее обновление целиком замещает снапшот, а не дополняет его
	client.listFn = func(ctx context.Context, token string) ([]appointmentapi.AppointmentRecord, error) {
		return []appointmentapi.AppointmentRecord{record(2, 1, "2024-06-10T11:00:00")}, nil
	}
	require.NoError(t, o.Refresh(context.Background()))

	state = o.GetSnapshotState()
	require.Len(t, state.Appointments, 1)
	assert.Equal(t, int64(2), state.Appointments[0].ID)
	assert.Equal(t, uint64(2), state.Generation)
}

func TestRefresh_NoCredential(t *testing.T) {
	client := &fakeClient{}
	o := newTestOrchestrator(t, client, fakeTokens{ok: false})

	err := o.Refresh(context.Background())
	require.ErrorIs(t, err, ErrNoCredential)

	listCalls, _ := client.counts()
	assert.Equal(t, 0, listCalls)
}

func TestRefresh_ListFailure(t *testing.T) {
	client := &fakeClient{
		listFn: func(ctx context.Context, token string) ([]appointmentapi.AppointmentRecord, error) {
			return nil, appointmentapi.ErrNetwork
		},
	}
	o := newTestOrchestrator(t, client, fakeTokens{token: "t", ok: true})

	err := o.Refresh(context.Background())
	require.ErrorIs(t, err, ErrRefresh)
	assert.Empty(t, o.GetSnapshotState().Appointments)
}

func TestRefresh_StaleResponseDiscarded(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	client := &fakeClient{}
	client.listFn = func(ctx context.Context, token string) ([]appointmentapi.AppointmentRecord, error) {
		client.mu.Lock()
		calls := client.listCalls
		client.mu.Unlock()
		if calls == 1 {
			close(started)
			<-release
			return []appointmentapi.AppointmentRecord{record(1, 1, "2024-06-10T10:00:00")}, nil
		}
		return []appointmentapi.AppointmentRecord{record(2, 1, "2024-06-10T11:00:00")}, nil
	}
	o := newTestOrchestrator(t, client, fakeTokens{token: "t", ok: true})

	done := make(chan error)
	go func() {
		done <- o.Refresh(context.Background())
	}()
	<-started

	// второе обновление выдаёт более новое поколение и завершается первым
	require.NoError(t, o.Refresh(context.Background()))
	close(release)
	require.NoError(t, <-done)

	// ответ первого (устаревшего) поколения отброшен
	state := o.GetSnapshotState()
	require.Len(t, state.Appointments, 1)
	assert.Equal(t, int64(2), state.Appointments[0].ID)
	assert.Equal(t, uint64(2), state.Generation)
}

func TestSubmitBooking_InvalidFormat(t *testing.T) {
	client := &fakeClient{}
	o := newTestOrchestrator(t, client, fakeTokens{token: "t", ok: true})

	result := o.SubmitBooking(context.Background(), "10:00 tomorrow")
	require.False(t, result.OK)
	assert.Equal(t, KindValidation, result.Kind)

	listCalls, createCalls := client.counts()
	assert.Equal(t, 0, listCalls)
	assert.Equal(t, 0, createCalls)
}

func TestSubmitBooking_PastSlot(t *testing.T) {
	client := &fakeClient{}
	o := newTestOrchestrator(t, client, fakeTokens{token: "t", ok: true})

	result := o.SubmitBooking(context.Background(), "2024-06-10T07:00:00")
	require.False(t, result.OK)
	assert.Equal(t, KindValidation, result.Kind)

	_, createCalls := client.counts()
	assert.Equal(t, 0, createCalls)
}

func TestSubmitBooking_SlotStartingNowIsPast(t *testing.T) {
	client := &fakeClient{}
	o := newTestOrchestrator(t, client, fakeTokens{token: "t", ok: true})

	// слот, начинающийся ровно сейчас, бронировать уже нельзя
	result := o.SubmitBooking(context.Background(), "2024-06-10T08:00:00")
	require.False(t, result.OK)
	assert.Equal(t, KindValidation, result.Kind)
}

func TestSubmitBooking_LocalConflict(t *testing.T) {
	client := &fakeClient{
		listFn: func(ctx context.Context, token string) ([]appointmentapi.AppointmentRecord, error) {
			return []appointmentapi.AppointmentRecord{record(1, 1, "2024-06-10T10:00:00")}, nil
		},
	}
	o := newTestOrchestrator(t, client, fakeTokens{token: "t", ok: true})
	require.NoError(t, o.Refresh(context.Background()))

	result := o.SubmitBooking(context.Background(), "2024-06-10T10:00:00")
	require.False(t, result.OK)
	assert.Equal(t, KindConflict, result.Kind)

	_, createCalls := client.counts()
	assert.Equal(t, 0, createCalls)
}

func TestSubmitBooking_NoCredential(t *testing.T) {
	client := &fakeClient{}
	o := newTestOrchestrator(t, client, fakeTokens{ok: false})

	result := o.SubmitBooking(context.Background(), "2024-06-10T10:00:00")
	require.False(t, result.OK)
	assert.Equal(t, KindUnauthorized, result.Kind)

	_, createCalls := client.counts()
	assert.Equal(t, 0, createCalls)
}

func TestSubmitBooking_Success(t *testing.T) {
	client := &fakeClient{
		listFn: func(ctx context.Context, token string) ([]appointmentapi.AppointmentRecord, error) {
			return []appointmentapi.AppointmentRecord{record(5, 1, "2024-06-10T10:00:00")}, nil
		},
	}
	o := newTestOrchestrator(t, client, fakeTokens{token: "t", ok: true})

	result := o.SubmitBooking(context.Background(), "2024-06-10T10:00:00")
	require.True(t, result.OK)

	// после создания выполняется ровно одно полное обновление снапшота
	listCalls, createCalls := client.counts()
	assert.Equal(t, 1, createCalls)
	assert.Equal(t, 1, listCalls)

	state := o.GetSnapshotState()
	assert.Equal(t, StateIdle, state.State)
	require.Len(t, state.Appointments, 1)
	assert.Equal(t, int64(5), state.Appointments[0].ID)
}

func TestSubmitBooking_SucceedsEvenIfPostCreateRefreshFails(t *testing.T) {
	client := &fakeClient{
		listFn: func(ctx context.Context, token string) ([]appointmentapi.AppointmentRecord, error) {
			return nil, appointmentapi.ErrNetwork
		},
	}
	o := newTestOrchestrator(t, client, fakeTokens{token: "t", ok: true})

	result := o.SubmitBooking(context.Background(), "2024-06-10T10:00:00")
	assert.True(t, result.OK)
}

func TestSubmitBooking_CreateErrorMapping(t *testing.T) {
	tests := []struct {
		name      string
		clientErr error
		wantKind  FailureKind
	}{
		{"conflict", appointmentapi.ErrConflict, KindConflict},
		{"unauthorized", appointmentapi.ErrUnauthorized, KindUnauthorized},
		{"server", appointmentapi.ErrServer, KindServer},
		{"invalid response", appointmentapi.ErrInvalidResponse, KindServer},
		{"network", appointmentapi.ErrNetwork, KindNetwork},
		{"unknown", errors.New("connection reset"), KindNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{
				createFn: func(ctx context.Context, token string, req appointmentapi.CreateRequest) (*appointmentapi.AppointmentRecord, error) {
					return nil, tt.clientErr
				},
			}
			o := newTestOrchestrator(t, client, fakeTokens{token: "t", ok: true})

			result := o.SubmitBooking(context.Background(), "2024-06-10T10:00:00")
			require.False(t, result.OK)
			assert.Equal(t, tt.wantKind, result.Kind)

			// неуспешное создание не трогает снапшот
			assert.Empty(t, o.GetSnapshotState().Appointments)
			assert.Equal(t, StateIdle, o.GetSnapshotState().State)
		})
	}
}

func TestSubmitBooking_Busy(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})

	client := &fakeClient{
		createFn: func(ctx context.Context, token string, req appointmentapi.CreateRequest) (*appointmentapi.AppointmentRecord, error) {
			close(entered)
			<-release
			return &appointmentapi.AppointmentRecord{ID: 1, Dietician: req.Dietician, DateTime: req.DateTime, IsActive: true}, nil
		},
	}
	o := newTestOrchestrator(t, client, fakeTokens{token: "t", ok: true})

	done := make(chan Result)
	go func() {
		done <- o.SubmitBooking(context.Background(), "2024-06-10T10:00:00")
	}()
	<-entered

	// вторая отправка отклоняется сразу, не дожидаясь первой
	busy := o.SubmitBooking(context.Background(), "2024-06-10T11:00:00")
	require.False(t, busy.OK)
	assert.Equal(t, KindBusy, busy.Kind)

	close(release)
	first := <-done
	assert.True(t, first.OK)
	assert.Equal(t, StateIdle, o.GetSnapshotState().State)
}

func TestSubscribe(t *testing.T) {
	client := &fakeClient{}
	o := newTestOrchestrator(t, client, fakeTokens{token: "t", ok: true})

	var mu sync.Mutex
	var states []State
	unsubscribe := o.Subscribe(func(s SnapshotState) {
		mu.Lock()
		states = append(states, s.State)
		mu.Unlock()
	})

	o.SubmitBooking(context.Background(), "2024-06-10T10:00:00")

	// переход в Submitting, обновление снапшота после создания, возврат в Idle
	mu.Lock()
	require.Len(t, states, 3)
	assert.Equal(t, StateSubmitting, states[0])
	assert.Equal(t, StateSubmitting, states[1])
	assert.Equal(t, StateIdle, states[2])
	mu.Unlock()

	unsubscribe()
	require.NoError(t, o.Refresh(context.Background()))

	mu.Lock()
	assert.Len(t, states, 3)
	mu.Unlock()
}

func TestComputeDayAvailability_UsesBlockedDates(t *testing.T) {
	client := &fakeClient{}
	o := New(1, testPolicy(t), client, fakeTokens{token: "t", ok: true},
		fakeBlockedDates{dates: []string{"2024-06-10"}}, fakeLogger{})
	o.timeProvider = &fakeClock{now: testNow}

	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local)
	summary, err := o.ComputeDayAvailability(context.Background(), date)
	require.NoError(t, err)
	assert.False(t, summary.IsSelectable)
}
