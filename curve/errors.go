package curve

import "github.com/pkg/errors"

var (
	// ErrKeyNotFound is returned by an exact lookup on a period that is not stored.
	ErrKeyNotFound = errors.New("period not found")
	// ErrEmptyStore is returned when a rate is interpolated from a store with no entries.
	ErrEmptyStore = errors.New("empty curve store")
)

// ErrInvalidWindow is returned for a forward window whose end does not follow its start.
var ErrInvalidWindow = errors.New("invalid forward window")
