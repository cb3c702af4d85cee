package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Andriyshkoy/BurNote/internal/domain/entity"
	"github.com/Andriyshkoy/BurNote/internal/utils/uid"
)

type DefaultNoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *DefaultNoteRepository {
	return &DefaultNoteRepository{db: db}
}

func (d *DefaultNoteRepository) FindByHash(hash string) (*entity.Note, error) {
	var note entity.Note
	err := d.db.Where("hash = ?", hash).First(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (d *DefaultNoteRepository) ExistsByHash(hash string) (bool, error) {
	var count int64
	err := d.db.Model(&entity.Note{}).Where("hash = ?", hash).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save inserts or updates the note. Storage IDs are assigned here, not
// by the caller.
func (d *DefaultNoteRepository) Save(note *entity.Note) error {
	if note.ID == 0 {
		note.ID = uid.Generate()
	}
	return d.db.Save(note).Error
}

// ExpireByHash wipes the note's content and marks it expired in a
// single conditional update. It reports whether this call performed the
// transition: a false result means another reader already burned the
// note (or it was already expired), so the caller lost the race and
// must not reveal content.
func (d *DefaultNoteRepository) ExpireByHash(hash string, now time.Time) (bool, error) {
	res := d.db.Model(&entity.Note{}).
		Where("hash = ? AND is_expired = ?", hash, false).
		Updates(map[string]any{
			"is_expired":      true,
			"title":           []byte{},
			"text":            []byte{},
			"expiration_date": now,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
