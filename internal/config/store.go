package config

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/NikitaCOEUR/texcomplete/internal/derrors"
)

// Keys accepted by Store.Set
const (
	KeyLogLevel            = "log_level"
	KeyLatexPath           = "latex_path"
	KeyWelcome             = "welcome"
	KeyAutoCompleteEnabled = "autocomplete.enabled"
	KeyAutoCompleteDelay   = "autocomplete.delay"
)

const subscriberBuffer = 16

// Change describes one updated setting
type Change struct {
	Key string
	Old string
	New string
}

type subscriber struct {
	ch   chan Change
	done chan struct{}
}

// Store holds the live settings and notifies subscribers when a key changes
type Store struct {
	mu       sync.RWMutex
	settings *Settings
	subs     map[int]*subscriber
	nextID   int
}

// NewStore wraps settings; a nil value starts from Defaults()
func NewStore(settings *Settings) *Store {
	if settings == nil {
		settings = Defaults()
	}
	return &Store{
		settings: settings.Clone(),
		subs:     make(map[int]*subscriber),
	}
}

// Settings returns a copy of the current settings
func (s *Store) Settings() *Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.Clone()
}

// Get returns the string form of one key
func (s *Store) Get(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return getKey(s.settings, key)
}

// Subscribe returns a channel receiving every later Change and a cancel func.
// After cancel no more values are delivered; the channel itself is left open.
func (s *Store) Subscribe() (<-chan Change, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	sub := &subscriber{
		ch:   make(chan Change, subscriberBuffer),
		done: make(chan struct{}),
	}
	s.subs[id] = sub

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
			close(sub.done)
		})
	}
	return sub.ch, cancel
}

// Set updates one key and notifies subscribers when the value changed.
// Delivery blocks while a subscriber's buffer is full until it reads or cancels.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	old, err := getKey(s.settings, key)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if err := setKey(s.settings, key, value); err != nil {
		s.mu.Unlock()
		return err
	}
	current, _ := getKey(s.settings, key)
	subs := make([]*subscriber, 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	s.mu.Unlock()

	if current == old {
		return nil
	}

	change := Change{Key: key, Old: old, New: current}
	for _, sub := range subs {
		select {
		case sub.ch <- change:
		case <-sub.done:
		}
	}
	return nil
}

func getKey(s *Settings, key string) (string, error) {
	switch key {
	case KeyLogLevel:
		return s.LogLevel, nil
	case KeyLatexPath:
		return s.LatexPath, nil
	case KeyWelcome:
		return s.Welcome, nil
	case KeyAutoCompleteEnabled:
		return strconv.FormatBool(s.AutoComplete.Enabled), nil
	case KeyAutoCompleteDelay:
		return s.AutoComplete.Delay.String(), nil
	default:
		return "", derrors.NewNotFoundError(key, fmt.Sprintf("unknown setting %q", key))
	}
}

func setKey(s *Settings, key, value string) error {
	switch key {
	case KeyLogLevel:
		s.LogLevel = value
	case KeyLatexPath:
		s.LatexPath = value
	case KeyWelcome:
		s.Welcome = value
	case KeyAutoCompleteEnabled:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return derrors.NewValidationError(key, "expected a boolean", err)
		}
		s.AutoComplete.Enabled = b
	case KeyAutoCompleteDelay:
		d, err := time.ParseDuration(value)
		if err != nil {
			return derrors.NewValidationError(key, "expected a duration", err)
		}
		if d < 0 {
			return derrors.NewValidationError(key, "delay must not be negative", nil)
		}
		s.AutoComplete.Delay = d
	default:
		return derrors.NewNotFoundError(key, fmt.Sprintf("unknown setting %q", key))
	}
	return nil
}
