package service

import (
	"context"
	"errors"

	"github.com/smartcards/backend/internal/db"
	"github.com/smartcards/backend/internal/model"
)

type FlashcardStore interface {
	ListFlashcardsByGroup(ctx context.Context, groupID, userID string) ([]model.Flashcard, error)
	GetFlashcard(ctx context.Context, id string) (*model.Flashcard, error)
	UpdateFlashcard(ctx context.Context, card *model.Flashcard) error
	DeleteFlashcard(ctx context.Context, id string) error
}

type FlashcardService struct {
	store FlashcardStore
}

func NewFlashcardService(store FlashcardStore) *FlashcardService {
	return &FlashcardService{store: store}
}

func (s *FlashcardService) ListByGroup(ctx context.Context, userID, groupID string) ([]model.Flashcard, error) {
	return s.store.ListFlashcardsByGroup(ctx, groupID, userID)
}

// Update applies a partial edit to the caller's card. Missing and foreign
// cards fail identically.
func (s *FlashcardService) Update(ctx context.Context, userID, cardID string, upd model.FlashcardUpdate) (*model.Flashcard, error) {
	card, err := s.ownedCard(ctx, userID, cardID)
	if err != nil {
		return nil, err
	}

	if upd.Question != nil {
		card.Question = *upd.Question
	}
	if upd.Answer != nil {
		card.Answer = *upd.Answer
	}

	if err := s.store.UpdateFlashcard(ctx, card); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return card, nil
}

func (s *FlashcardService) Delete(ctx context.Context, userID, cardID string) error {
	if _, err := s.ownedCard(ctx, userID, cardID); err != nil {
		return err
	}

	if err := s.store.DeleteFlashcard(ctx, cardID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *FlashcardService) ownedCard(ctx context.Context, userID, cardID string) (*model.Flashcard, error) {
	card, err := s.store.GetFlashcard(ctx, cardID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if card.UserID != userID {
		return nil, ErrNotFound
	}
	return card, nil
}
