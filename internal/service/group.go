package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/smartcards/backend/internal/db"
	"github.com/smartcards/backend/internal/model"
)

type GroupStore interface {
	CreateGroupWithCards(ctx context.Context, group model.Group, cards []model.Flashcard) error
	ListGroupsByUser(ctx context.Context, userID string) ([]model.GroupResponse, error)
	GetGroup(ctx context.Context, id string) (*model.Group, error)
	DeleteGroup(ctx context.Context, id string) error
}

type GroupService struct {
	store     GroupStore
	generator CardGenerator
}

func NewGroupService(store GroupStore, generator CardGenerator) *GroupService {
	return &GroupService{store: store, generator: generator}
}

func (s *GroupService) List(ctx context.Context, userID string) ([]model.GroupResponse, error) {
	return s.store.ListGroupsByUser(ctx, userID)
}

// CreateFromUpload makes a group named after the uploaded file and fills it
// with generated cards in one store write.
func (s *GroupService) CreateFromUpload(ctx context.Context, userID, filename string) (*model.FileUploadResponse, error) {
	if filename == "" {
		return nil, ErrInvalidInput
	}

	drafts, err := s.generator.Generate(ctx, filename)
	if err != nil {
		return nil, err
	}

	group := model.Group{
		ID:        uuid.NewString(),
		Filename:  filename,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}

	cards := make([]model.Flashcard, 0, len(drafts))
	for _, draft := range drafts {
		cards = append(cards, model.Flashcard{
			ID:       uuid.NewString(),
			Question: draft.Question,
			Answer:   draft.Answer,
			UserID:   userID,
			GroupID:  group.ID,
		})
	}

	if err := s.store.CreateGroupWithCards(ctx, group, cards); err != nil {
		return nil, err
	}

	return &model.FileUploadResponse{
		GroupID:  group.ID,
		Filename: filename,
		Message:  "File processed successfully",
	}, nil
}

// Delete removes the caller's group and its cards. A group that does not
// exist and a group owned by someone else fail the same way.
func (s *GroupService) Delete(ctx context.Context, userID, groupID string) error {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if group.UserID != userID {
		return ErrNotFound
	}
	return s.store.DeleteGroup(ctx, groupID)
}
