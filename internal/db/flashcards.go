package db

import (
	"context"

	"github.com/smartcards/backend/internal/model"
)

func (db *Postgres) ListFlashcardsByGroup(ctx context.Context, groupID, userID string) ([]model.Flashcard, error) {
	query := `
		SELECT id, question, answer, user_id, group_id
		FROM flashcards
		WHERE group_id = $1 AND user_id = $2
	`
	rows, err := db.Pool.Query(ctx, query, groupID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cards := []model.Flashcard{}
	for rows.Next() {
		var card model.Flashcard
		if err := rows.Scan(&card.ID, &card.Question, &card.Answer, &card.UserID, &card.GroupID); err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, rows.Err()
}

func (db *Postgres) GetFlashcard(ctx context.Context, id string) (*model.Flashcard, error) {
	query := `
		SELECT id, question, answer, user_id, group_id
		FROM flashcards
		WHERE id = $1
	`
	var card model.Flashcard
	err := db.Pool.QueryRow(ctx, query, id).Scan(
		&card.ID,
		&card.Question,
		&card.Answer,
		&card.UserID,
		&card.GroupID,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &card, nil
}

func (db *Postgres) UpdateFlashcard(ctx context.Context, card *model.Flashcard) error {
	tag, err := db.Pool.Exec(ctx, `
		UPDATE flashcards
		SET question = $2, answer = $3
		WHERE id = $1
	`, card.ID, card.Question, card.Answer)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (db *Postgres) DeleteFlashcard(ctx context.Context, id string) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM flashcards WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
