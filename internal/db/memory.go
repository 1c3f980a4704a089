package db

import (
	"context"
	"sync"
	"time"

	"github.com/smartcards/backend/internal/model"
)

// Memory is the in-memory store variant. It implements the same method set
// as Postgres and is selected at startup when no database is configured;
// tests use it directly. All access is serialized by a single mutex so a
// concurrent duplicate registration still surfaces as ErrEmailTaken rather
// than a second row.
type Memory struct {
	mu     sync.RWMutex
	users  map[string]model.User      // by id
	emails map[string]string          // email -> user id
	groups map[string]model.Group     // by id
	cards  map[string]model.Flashcard // by id
}

func NewMemory() *Memory {
	return &Memory{
		users:  make(map[string]model.User),
		emails: make(map[string]string),
		groups: make(map[string]model.Group),
		cards:  make(map[string]model.Flashcard),
	}
}

func (m *Memory) CreateUser(ctx context.Context, id, email, passwordHash, fullName string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.emails[email]; exists {
		return nil, ErrEmailTaken
	}

	user := model.User{
		ID:           id,
		Email:        email,
		PasswordHash: passwordHash,
		FullName:     fullName,
		CreatedAt:    time.Now().UTC(),
	}
	m.users[id] = user
	m.emails[email] = id
	return &user, nil
}

func (m *Memory) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.emails[email]
	if !ok {
		return nil, ErrNotFound
	}
	user := m.users[id]
	return &user, nil
}

func (m *Memory) CreateGroupWithCards(ctx context.Context, group model.Group, cards []model.Flashcard) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.groups[group.ID] = group
	for _, card := range cards {
		m.cards[card.ID] = card
	}
	return nil
}

func (m *Memory) ListGroupsByUser(ctx context.Context, userID string) ([]model.GroupResponse, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	groups := []model.GroupResponse{}
	for _, g := range m.groups {
		if g.UserID != userID {
			continue
		}
		count := 0
		for _, card := range m.cards {
			if card.GroupID == g.ID {
				count++
			}
		}
		groups = append(groups, model.GroupResponse{
			ID:              g.ID,
			Filename:        g.Filename,
			CreatedAt:       g.CreatedAt,
			FlashcardsCount: count,
		})
	}
	return groups, nil
}

func (m *Memory) GetGroup(ctx context.Context, id string) (*model.Group, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	group, ok := m.groups[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &group, nil
}

func (m *Memory) DeleteGroup(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for cardID, card := range m.cards {
		if card.GroupID == id {
			delete(m.cards, cardID)
		}
	}
	delete(m.groups, id)
	return nil
}

func (m *Memory) ListFlashcardsByGroup(ctx context.Context, groupID, userID string) ([]model.Flashcard, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cards := []model.Flashcard{}
	for _, card := range m.cards {
		if card.GroupID == groupID && card.UserID == userID {
			cards = append(cards, card)
		}
	}
	return cards, nil
}

func (m *Memory) GetFlashcard(ctx context.Context, id string) (*model.Flashcard, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	card, ok := m.cards[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &card, nil
}

func (m *Memory) UpdateFlashcard(ctx context.Context, card *model.Flashcard) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.cards[card.ID]; !ok {
		return ErrNotFound
	}
	m.cards[card.ID] = *card
	return nil
}

func (m *Memory) DeleteFlashcard(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.cards[id]; !ok {
		return ErrNotFound
	}
	delete(m.cards, id)
	return nil
}
