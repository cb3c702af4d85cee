package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"

	"github.com/Andriyshkoy/BurNote/internal/contract"
	"github.com/Andriyshkoy/BurNote/internal/crypto"
	"github.com/Andriyshkoy/BurNote/internal/domain/entity"
	"github.com/Andriyshkoy/BurNote/internal/domain/policy"
	"github.com/Andriyshkoy/BurNote/internal/utils/apierror"
)

// NoteRepository is the keyed record store the lifecycle runs against.
// Find methods return (nil, nil) when no record matches.
type NoteRepository interface {
	FindByHash(hash string) (*entity.Note, error)
	ExistsByHash(hash string) (bool, error)
	Save(note *entity.Note) error
	ExpireByHash(hash string, now time.Time) (bool, error)
}

type DefaultNoteService struct {
	NoteRepo NoteRepository
	Policy   *policy.NotePolicy
	Validate *validator.Validate
	Domain   string
}

func NewNoteService(
	noteRepo NoteRepository,
	notePolicy *policy.NotePolicy,
	validate *validator.Validate,
	domain string,
) *DefaultNoteService {
	return &DefaultNoteService{
		NoteRepo: noteRepo,
		Policy:   notePolicy,
		Validate: validate,
		Domain:   domain,
	}
}

// CreateNote encrypts and stores a new note and returns its external
// key plus the share link. The key exists in plaintext only inside this
// response; losing it makes the note permanently unreadable.
func (s *DefaultNoteService) CreateNote(req *contract.CreateNoteRequest) (*contract.CreateNoteResponse, apierror.ErrorResponse) {
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	offset, ok := ParseExpiration(req.Expiration)
	if !ok {
		serr := apierror.NewStructured(400)
		serr.Add("expiration", "Unknown expiration preset")
		return nil, serr
	}

	key, err := crypto.GenerateKey(s.NoteRepo.ExistsByHash)
	if err != nil {
		log.Errorf("failed to generate note key: %v", err)
		return nil, apierror.InternalServerError
	}

	title, err := crypto.Encrypt([]byte(req.Title), req.Password, key)
	if err != nil {
		log.Errorf("failed to encrypt title: %v", err)
		return nil, apierror.InternalServerError
	}
	text, err := crypto.Encrypt([]byte(req.Text), req.Password, key)
	if err != nil {
		log.Errorf("failed to encrypt text: %v", err)
		return nil, apierror.InternalServerError
	}

	now := NowUTC()
	note := &entity.Note{
		Hash:             crypto.HashKey(key),
		Title:            title,
		Text:             text,
		Timestamp:        now,
		BurnAfterReading: req.BurnAfterReading,
	}
	if offset != 0 {
		deadline := now.Add(offset)
		note.ExpirationDate = &deadline
	}

	if err := s.NoteRepo.Save(note); err != nil {
		log.Errorf("failed to save note: %v", err)
		return nil, apierror.InternalServerError
	}

	return &contract.CreateNoteResponse{
		Key:  key,
		Link: fmt.Sprintf("%s/%s", s.Domain, key),
	}, nil
}

// AccessNote looks up a note by its key, decrypts it and applies the
// lifecycle policy. Burn-after-reading notes are destroyed as part of
// the same call; at most one reader ever receives their content.
func (s *DefaultNoteService) AccessNote(req *contract.NoteAccessRequest) (*contract.NoteResponse, apierror.ErrorResponse) {
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	hash := crypto.HashKey(req.Key)
	note, err := s.NoteRepo.FindByHash(hash)
	if err != nil {
		log.Errorf("failed to fetch note: %v", err)
		return nil, apierror.InternalServerError
	}

	// A wrong key and a missing note are the same thing here: the hash
	// matched nothing.
	if note == nil {
		return nil, apierror.NoteNotFoundError
	}

	now := NowUTC()
	if st := s.Policy.Evaluate(note, now); st != policy.StateActive {
		// Lazy expiry: the deadline passed but the row still holds
		// ciphertext. Wipe it before answering.
		if !note.IsExpired {
			note.Expire(now)
			if _, err := s.NoteRepo.ExpireByHash(hash, now); err != nil {
				log.Errorf("failed to expire note: %v", err)
				return nil, apierror.InternalServerError
			}
		}
		return nil, apierror.NoteExpiredError
	}

	title, text, derr := s.decryptContent(note, req.Key, req.Password)
	if derr != nil {
		if errors.Is(derr, crypto.ErrDecryption) {
			return nil, apierror.InvalidPasswordError
		}
		log.Errorf("failed to decrypt note: %v", derr)
		return nil, apierror.InternalServerError
	}

	note.Title = title
	note.Text = text

	if note.BurnAfterReading {
		snapshot := note.Expire(now)

		// The conditional update is the real burn: whoever flips
		// is_expired first wins. A loser must not reveal content even
		// though it decrypted successfully.
		burned, err := s.NoteRepo.ExpireByHash(hash, now)
		if err != nil {
			log.Errorf("failed to burn note: %v", err)
			return nil, apierror.InternalServerError
		}
		if !burned {
			return nil, apierror.NoteExpiredError
		}
		note = snapshot
	}

	return toNoteResponse(note), nil
}

func (s *DefaultNoteService) decryptContent(note *entity.Note, key, password string) (title, text []byte, err error) {
	title, err = crypto.Decrypt(note.Title, password, key)
	if err != nil {
		return nil, nil, err
	}
	text, err = crypto.Decrypt(note.Text, password, key)
	if err != nil {
		return nil, nil, err
	}
	return title, text, nil
}

func toNoteResponse(note *entity.Note) *contract.NoteResponse {
	resp := &contract.NoteResponse{
		Title:            string(note.Title),
		Text:             string(note.Text),
		Timestamp:        FormatTime(note.Timestamp),
		BurnAfterReading: note.BurnAfterReading,
	}
	if note.ExpirationDate != nil {
		resp.ExpirationDate = FormatTime(*note.ExpirationDate)
	}
	return resp
}
