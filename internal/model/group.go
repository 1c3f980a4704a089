package model

import "time"

type Group struct {
	ID        string
	Filename  string
	UserID    string
	CreatedAt time.Time
}

type GroupResponse struct {
	ID              string    `json:"id"`
	Filename        string    `json:"filename"`
	CreatedAt       time.Time `json:"created_at"`
	FlashcardsCount int       `json:"flashcards_count"`
}

type FileUploadResponse struct {
	GroupID  string `json:"group_id"`
	Filename string `json:"filename"`
	Message  string `json:"message"`
}
