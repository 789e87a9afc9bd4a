package service

import (
	"errors"
	"fmt"

	"github.com/geniusdynamics/alumate-sub010/internal/store"
	"github.com/geniusdynamics/alumate-sub010/internal/transition"
)

// ErrResourceNotFound is wrapped by every "target does not exist" error so the
// edge can tell a missing resource apart from a missing relationship.
var ErrResourceNotFound = errors.New("not found")

var (
	ErrUserNotFound        = fmt.Errorf("user %w", ErrResourceNotFound)
	ErrConnectionNotFound  = fmt.Errorf("connection %w", ErrResourceNotFound)
	ErrEventNotFound       = fmt.Errorf("event %w", ErrResourceNotFound)
	ErrJobNotFound         = fmt.Errorf("job %w", ErrResourceNotFound)
	ErrCelebrationNotFound = fmt.Errorf("celebration %w", ErrResourceNotFound)
	ErrCampaignNotFound    = fmt.Errorf("campaign %w", ErrResourceNotFound)
	ErrFundraiserNotFound  = fmt.Errorf("fundraiser %w", ErrResourceNotFound)
	ErrDonationNotFound    = fmt.Errorf("donation %w", ErrResourceNotFound)
	ErrPostNotFound        = fmt.Errorf("post %w", ErrResourceNotFound)
)

// notFound swaps store.ErrNotFound for the given sentinel and wraps anything else.
func notFound(err error, sentinel error, op string) error {
	if errors.Is(err, store.ErrNotFound) {
		return sentinel
	}
	return fmt.Errorf("%s: %w", op, err)
}

// duplicate turns a unique-key race lost at insert time into the same
// violation the engine would have returned had it seen the row.
func duplicate(err error, kind transition.Kind, op string) error {
	if errors.Is(err, store.ErrDuplicate) {
		return transition.Deny(kind, "")
	}
	return fmt.Errorf("%s: %w", op, err)
}

// lookup returns nil, nil for a missing row.
func lookup[T any](v *T, err error) (*T, error) {
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	return v, err
}
