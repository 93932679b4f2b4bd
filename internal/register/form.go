package register

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/nachofazah/Ciu-RedSocial/internal/api"
	"github.com/nachofazah/Ciu-RedSocial/internal/models"
	"github.com/nachofazah/Ciu-RedSocial/internal/utils"
)

const (
	DefaultErrorClearDelay    = 3 * time.Second
	DefaultAPIErrorClearDelay = 3 * time.Second
)

var (
	ErrBusy   = errors.New("register: submission already in progress")
	ErrClosed = errors.New("register: form closed")
)

type State int

const (
	Editing State = iota
	Validating
	Invalid
	Submitting
	Success
	APIError
)

func (s State) String() string {
	switch s {
	case Editing:
		return "editing"
	case Validating:
		return "validating"
	case Invalid:
		return "invalid"
	case Submitting:
		return "submitting"
	case Success:
		return "success"
	case APIError:
		return "api_error"
	}
	return "unknown"
}

// Registrar creates users on the backend.
type Registrar interface {
	CreateUser(ctx context.Context, nickName, email string) (*models.User, error)
}

type Values struct {
	NickName string `json:"nickName"`
	Email    string `json:"email"`
}

type FieldErrors struct {
	NickName string `json:"nickName,omitempty"`
	Email    string `json:"email,omitempty"`
}

func (e FieldErrors) Empty() bool { return e.NickName == "" && e.Email == "" }

// Snapshot is what a page renders.
type Snapshot struct {
	State    string      `json:"state"`
	Values   Values      `json:"values"`
	Errors   FieldErrors `json:"errors"`
	APIError string      `json:"apiError,omitempty"`
}

// Form is the registration form of one visitor. Field errors and the API error
// clear themselves after a delay; every new submission cancels a pending clear
// before validating again.
type Form struct {
	mu sync.Mutex

	registrar          Registrar
	onSuccess          func(models.User)
	errorClearDelay    time.Duration
	apiErrorClearDelay time.Duration

	state    State
	values   Values
	errors   FieldErrors
	apiError string
	closed   bool

	errorTimer    *utils.Timer
	apiErrorTimer *utils.Timer
}

type Option func(*Form)

// WithOnSuccess sets the parent notification, called once per created user.
func WithOnSuccess(fn func(models.User)) Option {
	return func(f *Form) { f.onSuccess = fn }
}

func WithClearDelays(fieldErrors, apiError time.Duration) Option {
	return func(f *Form) {
		if fieldErrors > 0 {
			f.errorClearDelay = fieldErrors
		}
		if apiError > 0 {
			f.apiErrorClearDelay = apiError
		}
	}
}

func NewForm(r Registrar, opts ...Option) *Form {
	f := &Form{
		registrar:          r,
		errorClearDelay:    DefaultErrorClearDelay,
		apiErrorClearDelay: DefaultAPIErrorClearDelay,
	}
	f.errorTimer = utils.NewTimer(&f.mu)
	f.apiErrorTimer = utils.NewTimer(&f.mu)
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Submit validates v and, when valid, registers the user. It returns a
// *ValidationError, the gateway error, ErrBusy or nil.
func (f *Form) Submit(ctx context.Context, v Values) error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return ErrClosed
	}
	if f.state == Submitting {
		f.mu.Unlock()
		return ErrBusy
	}

	f.errorTimer.Stop()
	f.apiErrorTimer.Stop()
	f.apiError = ""
	f.values = v
	f.state = Validating

	if err := Validate(v); err != nil {
		var verr *ValidationError
		errors.As(err, &verr)
		f.errors = FieldErrors{NickName: verr.Fields["nickName"], Email: verr.Fields["email"]}
		f.state = Invalid
		f.errorTimer.Schedule(f.errorClearDelay, f.clearErrorsLocked)
		f.mu.Unlock()
		return err
	}

	f.errors = FieldErrors{}
	f.state = Submitting
	f.mu.Unlock()

	user, err := f.registrar.CreateUser(ctx, v.NickName, v.Email)

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return ErrClosed
	}
	if err != nil {
		f.state = APIError
		f.apiError = api.UserMessage(err)
		f.apiErrorTimer.Schedule(f.apiErrorClearDelay, f.clearAPIErrorLocked)
		f.mu.Unlock()
		return err
	}

	f.errorTimer.Stop()
	f.apiErrorTimer.Stop()
	f.values = Values{}
	f.errors = FieldErrors{}
	f.apiError = ""
	f.state = Success
	onSuccess := f.onSuccess
	f.mu.Unlock()

	if onSuccess != nil {
		onSuccess(*user)
	}
	return nil
}

func (f *Form) clearErrorsLocked() {
	f.errors = FieldErrors{}
	if f.state == Invalid {
		f.state = Editing
	}
}

func (f *Form) clearAPIErrorLocked() {
	f.apiError = ""
	if f.state == APIError {
		f.state = Editing
	}
}

func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Snapshot{
		State:    f.state.String(),
		Values:   f.values,
		Errors:   f.errors,
		APIError: f.apiError,
	}
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Close cancels pending timers. Later submissions fail with ErrClosed.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	f.errorTimer.Stop()
	f.apiErrorTimer.Stop()
}
