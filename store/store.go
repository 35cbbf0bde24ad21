// Package store persists focusflow records as whole JSON lists in a keyed
// document store and allocates record ids
package store

import (
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
	"sync"
)

// Keys of the persisted lists and id counters.
const (
	KeyFocusModels   = "focus_models"
	KeyCategories    = "categories"
	KeyAmbientSounds = "ambient_sounds"
	KeyFocusSessions = "focus_sessions"
	KeyNextFocusID   = "next_focus_id"
	KeyNextSessionID = "next_session_id"
)

// Drivers accepted by Open.
const (
	DriverBolt   = "bolt"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Client reads and replaces whole record lists on top of a Backend.
type Client struct {
	backend Backend
	locks   map[string]*sync.Mutex
	subs    map[string]map[chan struct{}]struct{}
	mu      sync.Mutex
}

// New returns a client over the given backend.
func New(b Backend) *Client {
	return &Client{
		backend: b,
		locks:   make(map[string]*sync.Mutex),
		subs:    make(map[string]map[chan struct{}]struct{}),
	}
}

// Open opens the backend identified by driver at path.
func Open(driver, path string) (*Client, error) {
	var (
		b   Backend
		err error
	)

	switch driver {
	case DriverBolt, "":
		b, err = OpenBolt(path)
	case DriverSQLite:
		b, err = OpenSQLite(path)
	case DriverMemory:
		b = NewMemory()
	default:
		return nil, errUnknownDriver.Fmt(driver)
	}

	if err != nil {
		return nil, err
	}

	slog.Debug("store opened", "driver", driver, "path", path)

	return New(b), nil
}

func (c *Client) Close() error {
	return c.backend.Close()
}

// Lock serialises read-modify-write cycles on key within this process and
// returns the function that releases it.
func (c *Client) Lock(key string) func() {
	c.mu.Lock()

	l, ok := c.locks[key]
	if !ok {
		l = &sync.Mutex{}
		c.locks[key] = l
	}

	c.mu.Unlock()

	l.Lock()

	return l.Unlock
}

// Subscribe returns a channel that receives a signal every time the value
// stored under key changes, and a function that ends the subscription.
// Signals are coalesced: a slow reader sees at most one pending signal.
func (c *Client) Subscribe(key string) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	c.mu.Lock()

	if c.subs[key] == nil {
		c.subs[key] = make(map[chan struct{}]struct{})
	}

	c.subs[key][ch] = struct{}{}

	c.mu.Unlock()

	var once sync.Once

	return ch, func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subs[key], ch)
			c.mu.Unlock()
		})
	}
}

func (c *Client) notify(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for ch := range c.subs[key] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Load returns the list stored under key. A missing or undecodable value is
// replaced by the key's default list without an error; only a failure to
// read from the backend is reported, alongside the default list.
func Load[T any](c *Client, key string) ([]T, error) {
	b, err := c.backend.Get(key)
	if err != nil {
		return defaultList[T](key), errReadList.Fmt(key).Wrap(err)
	}

	if b == nil {
		return defaultList[T](key), nil
	}

	var list []T

	err = json.Unmarshal(b, &list)
	if err != nil {
		slog.Warn(
			"discarding unreadable record list",
			slog.String("key", key),
			slog.Any("error", err),
		)

		return defaultList[T](key), nil
	}

	if list == nil {
		list = []T{}
	}

	return list, nil
}

// Save replaces the entire list stored under key.
func Save[T any](c *Client, key string, list []T) error {
	if list == nil {
		list = []T{}
	}

	b, err := json.Marshal(list)
	if err != nil {
		return errWriteList.Fmt(key).Wrap(err)
	}

	err = c.backend.Put(key, b)
	if err != nil {
		return errWriteList.Fmt(key).Wrap(err)
	}

	c.notify(key)

	return nil
}

// NextID returns the id the counter stored under counterKey will hand out
// next, without changing it.
func (c *Client) NextID(counterKey string) (int, error) {
	b, err := c.backend.Get(counterKey)
	if err != nil {
		return 1, errReadCounter.Fmt(counterKey).Wrap(err)
	}

	return parseCounter(b), nil
}

// IncrementID advances the counter stored under counterKey by one.
func (c *Client) IncrementID(counterKey string) error {
	err := c.backend.Update(counterKey, func(old []byte) ([]byte, error) {
		return []byte(strconv.Itoa(parseCounter(old) + 1)), nil
	})
	if err != nil {
		return errWriteCounter.Fmt(counterKey).Wrap(err)
	}

	c.notify(counterKey)

	return nil
}

// AllocateID reads and advances the counter stored under counterKey in a
// single backend update and returns the id it held.
func (c *Client) AllocateID(counterKey string) (int, error) {
	var id int

	err := c.backend.Update(counterKey, func(old []byte) ([]byte, error) {
		id = parseCounter(old)
		return []byte(strconv.Itoa(id + 1)), nil
	})
	if err != nil {
		return 0, errWriteCounter.Fmt(counterKey).Wrap(err)
	}

	c.notify(counterKey)

	slog.Debug("id allocated", slog.String("counter", counterKey), slog.Int("id", id))

	return id, nil
}

// ValidateIntegrity reports whether every record list can be read from the
// backend.
func (c *Client) ValidateIntegrity() bool {
	for _, key := range []string{
		KeyFocusModels,
		KeyCategories,
		KeyAmbientSounds,
		KeyFocusSessions,
	} {
		if _, err := c.backend.Get(key); err != nil {
			slog.Error(
				"integrity check failed",
				slog.String("key", key),
				slog.Any("error", err),
			)

			return false
		}
	}

	return true
}

// parseCounter decodes a stored counter. Absent or malformed counters start
// at 1.
func parseCounter(b []byte) int {
	n, err := strconv.Atoi(strings.TrimSpace(string(b)))
	if err != nil || n < 1 {
		return 1
	}

	return n
}
