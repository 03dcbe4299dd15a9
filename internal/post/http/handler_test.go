package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AlibekovAA/feedboard/backend/internal/common/clock"
	"github.com/AlibekovAA/feedboard/backend/internal/common/logger"
	"github.com/AlibekovAA/feedboard/backend/internal/post/domain"
	"github.com/AlibekovAA/feedboard/backend/internal/post/repository"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New(t.TempDir(), "test", "CRITICAL")
	if err != nil {
		t.Fatalf("failed to create test logger: %v", err)
	}
	return log
}

func newTestRouter(t *testing.T) (*http.ServeMux, *repository.InMemoryRepository) {
	t.Helper()

	clk := clock.NewMockClock(time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC))
	repo := repository.NewInMemoryRepository(clk)
	handler := NewHandler(repo, newTestLogger(t))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /posts", handler.List)
	mux.HandleFunc("GET /posts/{id}", handler.Get)
	mux.HandleFunc("POST /posts", handler.Create)
	mux.HandleFunc("PUT /posts/{id}", handler.Update)
	mux.HandleFunc("DELETE /posts/{id}", handler.Delete)

	return mux, repo
}

func TestCreateThenGetPost(t *testing.T) {
	mux, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/posts", bytes.NewBufferString(`{"content":"x"}`))
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/posts/1", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var envelope struct {
		Post *domain.Post `json:"post"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if envelope.Post == nil {
		t.Fatal("expected post in envelope")
	}
	if envelope.Post.Content != "x" {
		t.Errorf("expected content x, got %q", envelope.Post.Content)
	}
	if envelope.Post.Created.IsZero() {
		t.Error("expected server-assigned created timestamp")
	}
}

func TestGetPost_MissingIDReturnsEmptyEnvelope(t *testing.T) {
	mux, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/posts/999", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if _, present := body["post"]; present {
		t.Errorf("expected post key omitted, got %s", rec.Body.String())
	}
}

func TestGetPost_NonNumericIDReturnsEmptyEnvelope(t *testing.T) {
	mux, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/posts/abc", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestListPosts(t *testing.T) {
	mux, repo := newTestRouter(t)

	content := "hello"
	repo.Create(domain.Fields{Content: &content})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/posts", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var posts []domain.Post
	if err := json.Unmarshal(rec.Body.Bytes(), &posts); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("expected 1 post, got %d", len(posts))
	}
	if posts[0].Content != "hello" {
		t.Errorf("expected content hello, got %q", posts[0].Content)
	}
}

func TestListPosts_EmptyRepositoryReturnsArray(t *testing.T) {
	mux, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/posts", nil))

	if body := rec.Body.String(); body != "[]\n" {
		t.Errorf("expected empty JSON array, got %q", body)
	}
}

func TestUpdatePost_SoftSuccessOnMissingID(t *testing.T) {
	mux, repo := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/posts/999", bytes.NewBufferString(`{"content":"ghost"}`))
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if len(repo.List()) != 0 {
		t.Error("expected repository unchanged")
	}
}

func TestUpdatePost_MergesFields(t *testing.T) {
	mux, repo := newTestRouter(t)

	content := "before"
	created := repo.Create(domain.Fields{Content: &content})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/posts/1", bytes.NewBufferString(`{"content":"after"}`))
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	post, ok := repo.FindByID(created.ID)
	if !ok {
		t.Fatal("expected post to exist")
	}
	if post.Content != "after" {
		t.Errorf("expected content after, got %q", post.Content)
	}
	if post.ID != created.ID {
		t.Errorf("expected ID %d preserved, got %d", created.ID, post.ID)
	}
}

func TestDeletePost_SoftSuccessOnMissingID(t *testing.T) {
	mux, repo := newTestRouter(t)

	content := "keep me"
	repo.Create(domain.Fields{Content: &content})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/posts/999", nil))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if len(repo.List()) != 1 {
		t.Error("expected repository unchanged")
	}
}

func TestDeletePost_RemovesPost(t *testing.T) {
	mux, repo := newTestRouter(t)

	content := "bye"
	post := repo.Create(domain.Fields{Content: &content})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/posts/1", nil))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if _, ok := repo.FindByID(post.ID); ok {
		t.Error("expected post removed")
	}
}
