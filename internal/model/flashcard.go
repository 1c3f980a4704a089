package model

type Flashcard struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	UserID   string `json:"user_id"`
	GroupID  string `json:"group_id"`
}

// FlashcardUpdate carries a partial edit; nil fields are left untouched.
type FlashcardUpdate struct {
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
}
