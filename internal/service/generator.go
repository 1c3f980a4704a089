package service

import (
	"context"
	"fmt"
)

// CardDraft is a question/answer pair produced by a generator, before it is
// assigned ids and an owner.
type CardDraft struct {
	Question string
	Answer   string
}

// CardGenerator turns an uploaded file into flashcard drafts.
type CardGenerator interface {
	Generate(ctx context.Context, filename string) ([]CardDraft, error)
}

// PlaceholderGenerator emits fixed numbered cards instead of reading the
// file. It stands in until a real generation pipeline exists.
type PlaceholderGenerator struct {
	Count int
}

func NewPlaceholderGenerator() *PlaceholderGenerator {
	return &PlaceholderGenerator{Count: 3}
}

func (g *PlaceholderGenerator) Generate(ctx context.Context, filename string) ([]CardDraft, error) {
	drafts := make([]CardDraft, 0, g.Count)
	for i := 1; i <= g.Count; i++ {
		drafts = append(drafts, CardDraft{
			Question: fmt.Sprintf("Question %d for %s", i, filename),
			Answer:   fmt.Sprintf("Answer %d", i),
		})
	}
	return drafts, nil
}
