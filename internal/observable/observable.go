// Package observable provides publish/subscribe state cells
package observable

import (
	"context"
	"sync"
)

// Value holds a value of type T and notifies subscribers whenever it changes.
// Subscribers always see the latest value: a subscriber that falls behind
// skips intermediate values rather than blocking the writer.
type Value[T comparable] struct {
	subs map[chan T]struct{}
	v    T
	mu   sync.RWMutex
}

// NewValue returns a cell holding initial.
func NewValue[T comparable](initial T) *Value[T] {
	return &Value[T]{
		v:    initial,
		subs: make(map[chan T]struct{}),
	}
}

// Get returns the current value.
func (c *Value[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.v
}

// Set stores v and publishes it to every subscriber. Setting the value
// already held is a no-op.
func (c *Value[T]) Set(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.v == v {
		return
	}

	c.v = v

	for ch := range c.subs {
		publish(ch, v)
	}
}

// Update applies fn to the current value atomically and publishes the result.
func (c *Value[T]) Update(fn func(T) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := fn(c.v)
	if v == c.v {
		return v
	}

	c.v = v

	for ch := range c.subs {
		publish(ch, c.v)
	}

	return c.v
}

// Subscribe returns a channel that first receives the current value and then
// every subsequent one. The channel is closed once ctx is done.
func (c *Value[T]) Subscribe(ctx context.Context) <-chan T {
	ch := make(chan T, 1)

	c.mu.Lock()
	ch <- c.v
	c.subs[ch] = struct{}{}
	c.mu.Unlock()

	go func() {
		<-ctx.Done()

		c.mu.Lock()
		delete(c.subs, ch)
		close(ch)
		c.mu.Unlock()
	}()

	return ch
}

// publish replaces any unread value in ch with v.
func publish[T any](ch chan T, v T) {
	select {
	case ch <- v:
		return
	default:
	}

	select {
	case <-ch:
	default:
	}

	select {
	case ch <- v:
	default:
	}
}
