package models

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Subscriber is one entry on the notification list. The normalized email is
// the storage key; the stored value is the token and creation timestamp.
// Records are immutable after creation except for deletion.
type Subscriber struct {
	Email        string    `json:"email"`
	Token        string    `json:"token"`
	SubscribedAt time.Time `json:"subscribed_at"`
}

// subscriberStore is the interface for the key-value mapping holding one
// record per normalized email.
type subscriberStore interface {
	Get(key string) (string, bool, error)
	Put(key string, value string) error
	Delete(key string) error
	List() ([]string, error)
}

// ErrInvalidEmail is returned by Subscribe for missing or malformed addresses.
var ErrInvalidEmail = errors.New("invalid email address")

// Deliberately loose: just local@domain.tld with no whitespace.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// NormalizeEmail lowercases and trims an address into its storage-key form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail reports whether a normalized address looks like an email.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// record is the persisted value under the email key.
type record struct {
	Token        string    `json:"token"`
	SubscribedAt time.Time `json:"subscribed_at"`
}

// Subscribe creates a subscriber record for email unless one already exists.
// Returns created=false (with no error) when the normalized address is
// already on the list; re-subscribing is not an error.
func Subscribe(store subscriberStore, email string) (Subscriber, bool, error) {
	normalized := NormalizeEmail(email)
	if !ValidEmail(normalized) {
		return Subscriber{}, false, ErrInvalidEmail
	}
	_, exists, err := store.Get(normalized)
	if err != nil {
		return Subscriber{}, false, err
	}
	if exists {
		return Subscriber{Email: normalized}, false, nil
	}
	sub := Subscriber{
		Email:        normalized,
		Token:        uuid.New().String(),
		SubscribedAt: time.Now().UTC(),
	}
	value, err := json.Marshal(record{Token: sub.Token, SubscribedAt: sub.SubscribedAt})
	if err != nil {
		return Subscriber{}, false, err
	}
	if err := store.Put(normalized, string(value)); err != nil {
		return Subscriber{}, false, err
	}
	return sub, true, nil
}

// Unsubscribe scans the list for the record whose token matches and deletes
// it. At most one record is deleted per call. Stored values that fail to
// parse are skipped, not fatal. Linear in the number of subscribers; fine at
// this list's size.
func Unsubscribe(store subscriberStore, token string) (string, bool, error) {
	keys, err := store.List()
	if err != nil {
		return "", false, err
	}
	for _, key := range keys {
		value, ok, err := store.Get(key)
		if err != nil {
			return "", false, err
		}
		if !ok {
			// Deleted while we were scanning.
			continue
		}
		var rec record
		if err := json.Unmarshal([]byte(value), &rec); err != nil {
			continue
		}
		if rec.Token == token {
			return key, true, store.Delete(key)
		}
	}
	return "", false, nil
}

// GetSubscribers returns every parseable record on the list. No pagination;
// the whole list comes back in one call.
func GetSubscribers(store subscriberStore) ([]Subscriber, error) {
	keys, err := store.List()
	if err != nil {
		return nil, err
	}
	subscribers := make([]Subscriber, 0, len(keys))
	for _, key := range keys {
		value, ok, err := store.Get(key)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		var rec record
		if err := json.Unmarshal([]byte(value), &rec); err != nil {
			continue
		}
		subscribers = append(subscribers, Subscriber{
			Email:        key,
			Token:        rec.Token,
			SubscribedAt: rec.SubscribedAt,
		})
	}
	return subscribers, nil
}
