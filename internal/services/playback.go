package services

import (
	"context"
	"sync"
	"time"
)

// Playback tracks one utterance being played. It completes once its
// duration has elapsed or Stop is called, whichever comes first.
type Playback struct {
	duration time.Duration
	started  time.Time
	done     chan struct{}
	timer    *time.Timer
	once     sync.Once
}

// StartPlayback begins timing an utterance of the given length.
func StartPlayback(duration time.Duration) *Playback {
	if duration < 0 {
		duration = 0
	}

	p := &Playback{
		duration: duration,
		started:  time.Now(),
		done:     make(chan struct{}),
	}
	p.timer = time.AfterFunc(duration, p.finish)
	return p
}

func (p *Playback) finish() {
	p.once.Do(func() { close(p.done) })
}

// Done is closed when playback has completed.
func (p *Playback) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until playback completes or ctx ends.
func (p *Playback) Wait(ctx context.Context) error {
	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop ends playback early.
func (p *Playback) Stop() {
	p.timer.Stop()
	p.finish()
}

func (p *Playback) Duration() time.Duration {
	return p.duration
}

// Remaining is the time left before playback completes.
func (p *Playback) Remaining() time.Duration {
	select {
	case <-p.done:
		return 0
	default:
	}
	left := p.duration - time.Since(p.started)
	if left < 0 {
		return 0
	}
	return left
}
