package handler

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestUploadCreatesGroupAndCards(t *testing.T) {
	r := newTestRouter(t)
	_, token := registerAndLogin(t, r, "a@x.com", "pw1")

	w := doUpload(r, "notes.pdf", token)
	if w.Code != http.StatusOK {
		t.Fatalf("upload: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var up struct {
		GroupID  string `json:"group_id"`
		Filename string `json:"filename"`
		Message  string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &up); err != nil {
		t.Fatalf("body: %v", err)
	}
	if up.GroupID == "" || up.Filename != "notes.pdf" {
		t.Fatalf("unexpected upload response: %+v", up)
	}

	w = doJSON(r, http.MethodGet, "/groups", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("list groups: %d", w.Code)
	}
	var groups []struct {
		ID              string `json:"id"`
		Filename        string `json:"filename"`
		FlashcardsCount int    `json:"flashcards_count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &groups); err != nil {
		t.Fatalf("body: %v", err)
	}
	if len(groups) != 1 || groups[0].ID != up.GroupID || groups[0].FlashcardsCount != 3 {
		t.Fatalf("unexpected listing: %+v", groups)
	}

	w = doJSON(r, http.MethodGet, "/flashcards/group/"+up.GroupID, nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("list cards: %d", w.Code)
	}
	var cards []struct {
		ID       string `json:"id"`
		Question string `json:"question"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &cards); err != nil {
		t.Fatalf("body: %v", err)
	}
	if len(cards) != 3 {
		t.Fatalf("expected 3 placeholder cards, got %d", len(cards))
	}
}

func TestUploadWithoutFile(t *testing.T) {
	r := newTestRouter(t)
	_, token := registerAndLogin(t, r, "a@x.com", "pw1")

	w := doJSON(r, http.MethodPost, "/groups/upload", nil, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGroupIsolationBetweenUsers(t *testing.T) {
	r := newTestRouter(t)
	_, aliceToken := registerAndLogin(t, r, "alice@x.com", "pw1")
	_, bobToken := registerAndLogin(t, r, "bob@x.com", "pw2")

	w := doUpload(r, "alice.pdf", aliceToken)
	if w.Code != http.StatusOK {
		t.Fatalf("upload: %d", w.Code)
	}
	var up struct {
		GroupID string `json:"group_id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &up); err != nil {
		t.Fatalf("body: %v", err)
	}

	// Bob sees no groups and cannot touch Alice's.
	w = doJSON(r, http.MethodGet, "/groups", nil, bobToken)
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("bob's listing: %d %s", w.Code, w.Body.String())
	}
	w = doJSON(r, http.MethodDelete, "/groups/"+up.GroupID, nil, bobToken)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign delete, got %d", w.Code)
	}

	// Alice still owns it and can delete it.
	w = doJSON(r, http.MethodDelete, "/groups/"+up.GroupID, nil, aliceToken)
	if w.Code != http.StatusOK {
		t.Fatalf("owner delete: %d: %s", w.Code, w.Body.String())
	}
	w = doJSON(r, http.MethodGet, "/groups", nil, aliceToken)
	if w.Body.String() != "[]" {
		t.Fatalf("expected empty listing after delete, got %s", w.Body.String())
	}
}

func TestFlashcardUpdateOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	_, token := registerAndLogin(t, r, "a@x.com", "pw1")

	w := doUpload(r, "notes.pdf", token)
	var up struct {
		GroupID string `json:"group_id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &up); err != nil {
		t.Fatalf("body: %v", err)
	}

	w = doJSON(r, http.MethodGet, "/flashcards/group/"+up.GroupID, nil, token)
	var cards []struct {
		ID     string `json:"id"`
		Answer string `json:"answer"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &cards); err != nil {
		t.Fatalf("body: %v", err)
	}

	w = doJSON(r, http.MethodPut, "/flashcards/"+cards[0].ID, map[string]string{
		"question": "What is 2+2?",
	}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("update: %d: %s", w.Code, w.Body.String())
	}
	var updated struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("body: %v", err)
	}
	if updated.Question != "What is 2+2?" || updated.Answer != cards[0].Answer {
		t.Fatalf("unexpected card: %+v", updated)
	}

	w = doJSON(r, http.MethodDelete, "/flashcards/"+cards[0].ID, nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: %d", w.Code)
	}
	w = doJSON(r, http.MethodDelete, "/flashcards/"+cards[0].ID, nil, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete: expected 404, got %d", w.Code)
	}
}
