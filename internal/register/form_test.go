package register

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nachofazah/Ciu-RedSocial/internal/api"
	"github.com/nachofazah/Ciu-RedSocial/internal/models"
)

type fakeRegistrar struct {
	calls   atomic.Int32
	err     error
	release chan struct{}
}

func (f *fakeRegistrar) CreateUser(ctx context.Context, nickName, email string) (*models.User, error) {
	f.calls.Add(1)
	if f.release != nil {
		<-f.release
	}
	if f.err != nil {
		return nil, f.err
	}
	return &models.User{ID: 7, NickName: nickName, Email: email}, nil
}

func TestValidateNickName(t *testing.T) {
	for _, nick := range []string{"ab", strings.Repeat("a", 21), "ana maria", "ana_1", "ñandu", ""} {
		assert.False(t, ValidateNickName(nick), nick)
	}
	for _, nick := range []string{"abc", strings.Repeat("a", 20), "Ana123", "007"} {
		assert.True(t, ValidateNickName(nick), nick)
	}
}

func TestValidateEmail(t *testing.T) {
	for _, email := range []string{"", "plain", "a@b", "@b.com", "a@.com", "a b@c.com", "a@b@c.com"} {
		assert.False(t, ValidateEmail(email), email)
	}
	for _, email := range []string{"a@b.co", "ana@unahur.edu.ar"} {
		assert.True(t, ValidateEmail(email), email)
	}
}

func TestSubmitSuccessResetsFormAndNotifiesOnce(t *testing.T) {
	reg := &fakeRegistrar{}
	var got []models.User
	var mu sync.Mutex
	form := NewForm(reg, WithOnSuccess(func(u models.User) {
		mu.Lock()
		got = append(got, u)
		mu.Unlock()
	}))
	defer form.Close()

	err := form.Submit(context.Background(), Values{NickName: "ana123", Email: "ana@mail.com"})
	require.NoError(t, err)

	snap := form.Snapshot()
	assert.Equal(t, Values{}, snap.Values)
	assert.True(t, snap.Errors.Empty())
	assert.Empty(t, snap.APIError)
	assert.Equal(t, "success", snap.State)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 1)
	assert.Equal(t, "ana123", got[0].NickName)
	assert.Equal(t, 7, got[0].ID)
}

func TestSubmitInvalidSkipsRegistrar(t *testing.T) {
	reg := &fakeRegistrar{}
	form := NewForm(reg)
	defer form.Close()

	err := form.Submit(context.Background(), Values{NickName: "a!", Email: "nope"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, NickNameMessage, verr.Fields["nickName"])
	assert.Equal(t, EmailMessage, verr.Fields["email"])
	assert.Zero(t, reg.calls.Load())

	snap := form.Snapshot()
	assert.Equal(t, "invalid", snap.State)
	assert.Equal(t, NickNameMessage, snap.Errors.NickName)
	assert.Equal(t, "a!", snap.Values.NickName)
}

func TestFieldErrorsClearAfterDelay(t *testing.T) {
	form := NewForm(&fakeRegistrar{}, WithClearDelays(50*time.Millisecond, 50*time.Millisecond))
	defer form.Close()

	_ = form.Submit(context.Background(), Values{NickName: "x", Email: "ok@mail.com"})
	require.False(t, form.Snapshot().Errors.Empty())

	assert.Eventually(t, func() bool {
		return form.Snapshot().Errors.Empty() && form.State() == Editing
	}, time.Second, 10*time.Millisecond)
}

func TestResubmitCancelsPendingClear(t *testing.T) {
	form := NewForm(&fakeRegistrar{}, WithClearDelays(200*time.Millisecond, 200*time.Millisecond))
	defer form.Close()

	_ = form.Submit(context.Background(), Values{NickName: "x", Email: "ok@mail.com"})
	time.Sleep(120 * time.Millisecond)
	_ = form.Submit(context.Background(), Values{NickName: "y", Email: "ok@mail.com"})
	time.Sleep(120 * time.Millisecond)

	// The first timer would have fired by now; the second one has not.
	assert.Equal(t, NickNameMessage, form.Snapshot().Errors.NickName)
}

func TestAPIErrorShownThenCleared(t *testing.T) {
	reg := &fakeRegistrar{err: &api.RequestError{Op: "create user", Status: 409, Message: "Nickname already taken"}}
	form := NewForm(reg, WithClearDelays(50*time.Millisecond, 50*time.Millisecond))
	defer form.Close()

	err := form.Submit(context.Background(), Values{NickName: "ana123", Email: "ana@mail.com"})
	require.Error(t, err)

	snap := form.Snapshot()
	assert.Equal(t, "api_error", snap.State)
	assert.Equal(t, "Nickname already taken", snap.APIError)
	assert.Equal(t, "ana123", snap.Values.NickName)

	assert.Eventually(t, func() bool {
		return form.Snapshot().APIError == ""
	}, time.Second, 10*time.Millisecond)
}

func TestInvalidResubmitDropsStaleAPIError(t *testing.T) {
	reg := &fakeRegistrar{err: &api.RequestError{Op: "create user", Status: 409, Message: "Nickname already taken"}}
	form := NewForm(reg, WithClearDelays(time.Second, time.Second))
	defer form.Close()

	require.Error(t, form.Submit(context.Background(), Values{NickName: "ana123", Email: "ana@mail.com"}))
	require.Equal(t, "Nickname already taken", form.Snapshot().APIError)

	err := form.Submit(context.Background(), Values{NickName: "a!", Email: "ana@mail.com"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	snap := form.Snapshot()
	assert.Equal(t, "invalid", snap.State)
	assert.Empty(t, snap.APIError)
	assert.Equal(t, NickNameMessage, snap.Errors.NickName)
}

func TestSubmitWhileSubmittingIsIgnored(t *testing.T) {
	reg := &fakeRegistrar{release: make(chan struct{})}
	form := NewForm(reg)
	defer form.Close()

	done := make(chan error, 1)
	go func() {
		done <- form.Submit(context.Background(), Values{NickName: "ana123", Email: "ana@mail.com"})
	}()

	require.Eventually(t, func() bool { return form.State() == Submitting }, time.Second, 5*time.Millisecond)
	err := form.Submit(context.Background(), Values{NickName: "bob123", Email: "bob@mail.com"})
	assert.True(t, errors.Is(err, ErrBusy))

	close(reg.release)
	require.NoError(t, <-done)
	assert.Equal(t, int32(1), reg.calls.Load())
}

func TestCloseCancelsTimers(t *testing.T) {
	form := NewForm(&fakeRegistrar{}, WithClearDelays(30*time.Millisecond, 30*time.Millisecond))
	_ = form.Submit(context.Background(), Values{NickName: "x", Email: "ok@mail.com"})
	form.Close()

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, NickNameMessage, form.Snapshot().Errors.NickName)
	assert.ErrorIs(t, form.Submit(context.Background(), Values{}), ErrClosed)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "editing", Editing.String())
	assert.Equal(t, "submitting", Submitting.String())
	assert.Equal(t, "unknown", State(42).String())
}
