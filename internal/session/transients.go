package session

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nachofazah/Ciu-RedSocial/internal/notify"
	"github.com/nachofazah/Ciu-RedSocial/internal/register"
)

// FormFactory builds the registration form of a visitor.
type FormFactory func(visitorID string) *register.Form

type transient struct {
	form     *register.Form
	banner   *notify.Banner
	lastSeen time.Time
}

// Transients owns the timer-driven state of every visitor: the registration
// form and the notification banner. Entries idle for longer than the idle
// window are released by Sweep.
type Transients struct {
	mu        sync.Mutex
	newForm   FormFactory
	bannerTTL time.Duration
	idle      time.Duration
	entries   map[string]*transient
	now       func() time.Time
}

func NewTransients(newForm FormFactory, bannerTTL, idle time.Duration) *Transients {
	return &Transients{
		newForm:   newForm,
		bannerTTL: bannerTTL,
		idle:      idle,
		entries:   make(map[string]*transient),
		now:       time.Now,
	}
}

func (t *Transients) entry(visitorID string) *transient {
	e, ok := t.entries[visitorID]
	if !ok {
		e = &transient{}
		t.entries[visitorID] = e
	}
	e.lastSeen = t.now()
	return e
}

func (t *Transients) Form(visitorID string) *register.Form {
	t.mu.Lock()
	defer t.mu.Unlock()
	e := t.entry(visitorID)
	if e.form == nil {
		e.form = t.newForm(visitorID)
	}
	return e.form
}

func (t *Transients) Banner(visitorID string) *notify.Banner {
	t.mu.Lock()
	defer t.mu.Unlock()
	e := t.entry(visitorID)
	if e.banner == nil {
		e.banner = notify.NewBanner(t.bannerTTL)
	}
	return e.banner
}

// PeekBanner returns the banner message without creating state.
func (t *Transients) PeekBanner(visitorID string) string {
	t.mu.Lock()
	var banner *notify.Banner
	if e, ok := t.entries[visitorID]; ok {
		banner = e.banner
	}
	t.mu.Unlock()
	if banner == nil {
		return ""
	}
	return banner.Message()
}

// Release cancels every pending timer of the visitor and forgets its state.
func (t *Transients) Release(visitorID string) {
	t.mu.Lock()
	e, ok := t.entries[visitorID]
	delete(t.entries, visitorID)
	t.mu.Unlock()
	if ok {
		e.close()
	}
}

func (e *transient) close() {
	if e.form != nil {
		e.form.Close()
	}
	if e.banner != nil {
		e.banner.Close()
	}
}

func (t *Transients) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// Sweep releases idle entries and returns how many went away.
func (t *Transients) Sweep() int {
	cutoff := t.now().Add(-t.idle)
	var stale []*transient

	t.mu.Lock()
	for id, e := range t.entries {
		if e.lastSeen.Before(cutoff) {
			stale = append(stale, e)
			delete(t.entries, id)
		}
	}
	t.mu.Unlock()

	for _, e := range stale {
		e.close()
	}
	return len(stale)
}

// Run sweeps every interval until ctx is done, then releases everything.
func (t *Transients) Run(ctx context.Context, interval time.Duration, log *logrus.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			t.mu.Lock()
			all := t.entries
			t.entries = make(map[string]*transient)
			t.mu.Unlock()
			for _, e := range all {
				e.close()
			}
			return
		case <-ticker.C:
			if n := t.Sweep(); n > 0 {
				log.WithField("released", n).Debug("swept idle visitor state")
			}
		}
	}
}
