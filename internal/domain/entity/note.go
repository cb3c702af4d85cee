package entity

import "time"

// Note is the sole persisted entity. Title and Text hold ciphertext
// once the note has been encrypted; plaintext never reaches storage.
// The external key itself is never stored, only its SHA-256 hash.
type Note struct {
	ID               int64      `gorm:"primaryKey"`
	Hash             string     `gorm:"size:64;not null;uniqueIndex"`
	IsExpired        bool       `gorm:"not null"`
	Title            []byte     `gorm:"type:blob"`
	Text             []byte     `gorm:"type:blob;not null"`
	Timestamp        time.Time  `gorm:"not null"`
	ExpirationDate   *time.Time // nil means no time-based expiry
	BurnAfterReading bool       `gorm:"not null"`
}

// Copy returns a detached value copy of the note, including its current
// content. Used to snapshot the pre-expiry state during Expire.
func (n *Note) Copy() *Note {
	c := *n
	c.Title = append([]byte(nil), n.Title...)
	c.Text = append([]byte(nil), n.Text...)
	if n.ExpirationDate != nil {
		d := *n.ExpirationDate
		c.ExpirationDate = &d
	}
	return &c
}

// Expire marks the note expired as of now and wipes its content,
// returning a snapshot carrying the pre-expiry content for the
// immediate caller. Expiring an already expired note is a no-op and
// returns an already-empty snapshot.
//
// Expire only mutates the in-memory value; committing the wipe to
// storage is the caller's responsibility.
func (n *Note) Expire(now time.Time) *Note {
	if n.IsExpired {
		return n.Copy()
	}

	n.IsExpired = true
	n.ExpirationDate = &now

	snapshot := n.Copy()
	n.Title = []byte{}
	n.Text = []byte{}
	return snapshot
}
