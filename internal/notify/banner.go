package notify

import (
	"sync"
	"time"

	"github.com/nachofazah/Ciu-RedSocial/internal/utils"
)

const DefaultTTL = 4 * time.Second

// Banner holds one transient message that dismisses itself after its TTL.
type Banner struct {
	mu      sync.Mutex
	ttl     time.Duration
	message string
	timer   *utils.Timer
}

func NewBanner(ttl time.Duration) *Banner {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	b := &Banner{ttl: ttl}
	b.timer = utils.NewTimer(&b.mu)
	return b
}

// Show replaces the current message and restarts the countdown.
func (b *Banner) Show(message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.message = message
	b.timer.Schedule(b.ttl, func() { b.message = "" })
}

func (b *Banner) Dismiss() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.message = ""
	b.timer.Stop()
}

func (b *Banner) Message() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.message
}

// Close stops the countdown and leaves the message as is.
func (b *Banner) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.timer.Stop()
}
