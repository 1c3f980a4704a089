package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/smartcards/backend/internal/config"
	"github.com/smartcards/backend/internal/db"
	"github.com/smartcards/backend/internal/service"
)

const testSecret = "handler-test-secret"

// newTestRouter wires the full route table over the in-memory store, the
// same shape main() builds for production.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := service.NewTokenService(config.AuthConfig{JWTSecret: testSecret, JWTAccessTTL: "60m"})
	if err != nil {
		t.Fatalf("token service: %v", err)
	}

	store := db.NewMemory()
	authSvc := service.NewAuthService(store, tokens)
	groupSvc := service.NewGroupService(store, service.NewPlaceholderGenerator())
	cardSvc := service.NewFlashcardService(store)

	r := gin.New()
	authHandler := NewAuthHandler(authSvc)
	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)
	r.GET("/auth/me", AuthMiddleware(authSvc), authHandler.Me)

	groupHandler := NewGroupHandler(groupSvc)
	groups := r.Group("/groups", AuthMiddleware(authSvc))
	groups.GET("", groupHandler.List)
	groups.POST("/upload", groupHandler.Upload)
	groups.DELETE("/:group_id", groupHandler.Delete)

	cardHandler := NewFlashcardHandler(cardSvc)
	cards := r.Group("/flashcards", AuthMiddleware(authSvc))
	cards.GET("/group/:group_id", cardHandler.ListByGroup)
	cards.PUT("/:card_id", cardHandler.Update)
	cards.DELETE("/:card_id", cardHandler.Delete)

	return r
}

func doJSON(r *gin.Engine, method, path string, body any, bearer string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doLogin(r *gin.Engine, email, password string) *httptest.ResponseRecorder {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doUpload(r *gin.Engine, filename, bearer string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, _ := mw.CreateFormFile("file", filename)
	_, _ = part.Write([]byte("file contents"))
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/groups/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+bearer)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerAndLogin(t *testing.T, r *gin.Engine, email, password string) (id, token string) {
	t.Helper()

	w := doJSON(r, http.MethodPost, "/auth/register", map[string]string{
		"email":    email,
		"password": password,
	}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: got %d: %s", email, w.Code, w.Body.String())
	}
	var user struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &user); err != nil {
		t.Fatalf("register body: %v", err)
	}

	w = doLogin(r, email, password)
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: got %d: %s", email, w.Code, w.Body.String())
	}
	var tok struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &tok); err != nil {
		t.Fatalf("login body: %v", err)
	}
	return user.ID, tok.AccessToken
}
