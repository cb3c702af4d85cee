package policy

import (
	"time"

	"github.com/Andriyshkoy/BurNote/internal/domain/entity"
)

// State is the availability state of a note.
type State int

const (
	StateActive State = iota

	// StateExpiredByTime: the expiration date has passed. When the
	// stored record has not been wiped yet (lazy expiry), the caller
	// must apply and commit the expiry before answering.
	StateExpiredByTime

	// StateExpiredByBurn: the note was destroyed by its first
	// successful read. Externally indistinguishable from time expiry.
	StateExpiredByBurn
)

// NotePolicy encapsulates the availability rules for notes. Evaluation
// is pure; any storage side effects it implies are performed by the
// service layer.
type NotePolicy struct{}

func NewNotePolicy() *NotePolicy {
	return &NotePolicy{}
}

// Evaluate returns the availability state of the note at the given
// instant. A note whose deadline has passed reports StateExpiredByTime
// even before the wipe has been committed; callers must treat that
// state as unavailable and apply the wipe.
func (p *NotePolicy) Evaluate(note *entity.Note, now time.Time) State {
	if note.IsExpired {
		if note.BurnAfterReading {
			return StateExpiredByBurn
		}
		return StateExpiredByTime
	}

	if note.ExpirationDate != nil && now.After(*note.ExpirationDate) {
		return StateExpiredByTime
	}
	return StateActive
}

// IsAvailable reports whether the note can still be read at the given
// instant.
func (p *NotePolicy) IsAvailable(note *entity.Note, now time.Time) bool {
	return p.Evaluate(note, now) == StateActive
}
