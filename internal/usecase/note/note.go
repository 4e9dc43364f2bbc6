package usecase_note

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/kinomatch/internal/model"
)

var (
	ErrInternal       = errors.New("internal error")
	ErrNoteNotFound   = errors.New("note not found")
	ErrEmptyNote      = errors.New("note is empty")
	ErrMatchNotFound  = errors.New("match not found")
	ErrNotParticipant = errors.New("not a participant of this match")
)

//go:generate mockery --name=NoteRepository --output=./mocks/note/repository --filename=repository.go
type NoteRepository interface {
	List(ctx context.Context, matchID uuid.UUID, movieID *int) ([]model.Note, error)
	ByID(ctx context.Context, id uuid.UUID) (model.Note, error)
	Create(ctx context.Context, n model.Note) error
	Delete(ctx context.Context, id uuid.UUID) error
}

//go:generate mockery --name=MatchLookup --output=./mocks/note/matches --filename=matches.go
type MatchLookup interface {
	ByID(ctx context.Context, id uuid.UUID) (model.Match, error)
}

type Usecase struct {
	notes   NoteRepository
	matches MatchLookup
	now     func() time.Time
}

func New(notes NoteRepository, matches MatchLookup) *Usecase {
	return &Usecase{
		notes:   notes,
		matches: matches,
		now:     time.Now,
	}
}

// List returns the notes of a match, optionally only those about movieID.
func (u *Usecase) List(ctx context.Context, callerID, matchID uuid.UUID, movieID *int) ([]model.Note, error) {
	if err := u.authorize(ctx, matchID, callerID); err != nil {
		return nil, err
	}
	notes, err := u.notes.List(ctx, matchID, movieID)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}
	return notes, nil
}

func (u *Usecase) Create(ctx context.Context, callerID, matchID uuid.UUID, movieID int, text string) (model.Note, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Note{}, ErrEmptyNote
	}
	if err := u.authorize(ctx, matchID, callerID); err != nil {
		return model.Note{}, err
	}

	note := model.Note{
		ID:        uuid.New(),
		MatchID:   matchID,
		MovieID:   movieID,
		Note:      text,
		CreatedAt: u.now().UTC(),
	}
	if err := u.notes.Create(ctx, note); err != nil {
		return model.Note{}, errors.Join(ErrInternal, err)
	}
	return note, nil
}

func (u *Usecase) Delete(ctx context.Context, callerID, id uuid.UUID) error {
	note, err := u.notes.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return ErrNoteNotFound
		}
		return errors.Join(ErrInternal, err)
	}
	if err := u.authorize(ctx, note.MatchID, callerID); err != nil {
		return err
	}
	if err := u.notes.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return ErrNoteNotFound
		}
		return errors.Join(ErrInternal, err)
	}
	return nil
}

func (u *Usecase) authorize(ctx context.Context, matchID, callerID uuid.UUID) error {
	match, err := u.matches.ByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return ErrMatchNotFound
		}
		return errors.Join(ErrInternal, err)
	}
	if !match.HasParticipant(callerID) {
		return ErrNotParticipant
	}
	return nil
}
