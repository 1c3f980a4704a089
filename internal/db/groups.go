package db

import (
	"context"

	"github.com/smartcards/backend/internal/model"
)

func (db *Postgres) CreateGroupWithCards(ctx context.Context, group model.Group, cards []model.Flashcard) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err = tx.Exec(ctx, `
		INSERT INTO groups (id, filename, user_id, created_at)
		VALUES ($1, $2, $3, $4)
	`, group.ID, group.Filename, group.UserID, group.CreatedAt); err != nil {
		return err
	}

	for _, card := range cards {
		if _, err = tx.Exec(ctx, `
			INSERT INTO flashcards (id, question, answer, user_id, group_id)
			VALUES ($1, $2, $3, $4, $5)
		`, card.ID, card.Question, card.Answer, card.UserID, card.GroupID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (db *Postgres) ListGroupsByUser(ctx context.Context, userID string) ([]model.GroupResponse, error) {
	query := `
		SELECT g.id, g.filename, g.created_at, COUNT(f.id)
		FROM groups g
		LEFT JOIN flashcards f ON f.group_id = g.id
		WHERE g.user_id = $1
		GROUP BY g.id, g.filename, g.created_at
		ORDER BY g.created_at DESC
	`
	rows, err := db.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := []model.GroupResponse{}
	for rows.Next() {
		var g model.GroupResponse
		if err := rows.Scan(&g.ID, &g.Filename, &g.CreatedAt, &g.FlashcardsCount); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func (db *Postgres) GetGroup(ctx context.Context, id string) (*model.Group, error) {
	query := `
		SELECT id, filename, user_id, created_at
		FROM groups
		WHERE id = $1
	`
	var group model.Group
	err := db.Pool.QueryRow(ctx, query, id).Scan(
		&group.ID,
		&group.Filename,
		&group.UserID,
		&group.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &group, nil
}

func (db *Postgres) DeleteGroup(ctx context.Context, id string) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err = tx.Exec(ctx, `DELETE FROM flashcards WHERE group_id = $1`, id); err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, `DELETE FROM groups WHERE id = $1`, id); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
