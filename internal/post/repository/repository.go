package repository

import (
	"sync"

	"github.com/AlibekovAA/feedboard/backend/internal/common/clock"
	"github.com/AlibekovAA/feedboard/backend/internal/post/domain"
)

type Repository interface {
	List() []domain.Post
	FindByID(id int64) (domain.Post, bool)
	Create(fields domain.Fields) domain.Post
	Replace(id int64, fields domain.Fields)
	Delete(id int64)
}

// InMemoryRepository keeps posts in insertion order and hands out IDs from a
// monotonic counter. IDs are never reused, even after deletion.
type InMemoryRepository struct {
	mu     sync.RWMutex
	posts  []domain.Post
	nextID int64
	clock  clock.Clock
}

func NewInMemoryRepository(clk clock.Clock, seed ...domain.Post) *InMemoryRepository {
	r := &InMemoryRepository{
		posts: append([]domain.Post(nil), seed...),
		clock: clk,
	}
	var maxID int64
	for _, p := range seed {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	r.nextID = maxID + 1
	return r
}

func (r *InMemoryRepository) List() []domain.Post {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Post, len(r.posts))
	copy(out, r.posts)
	return out
}

func (r *InMemoryRepository) FindByID(id int64) (domain.Post, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.posts {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Post{}, false
}

// Create stores a new post. The ID and creation timestamp are always
// server-assigned; a client-supplied created value is ignored here and only
// honored by Replace.
func (r *InMemoryRepository) Create(fields domain.Fields) domain.Post {
	r.mu.Lock()
	defer r.mu.Unlock()

	post := domain.Post{
		ID:      r.nextID,
		Created: r.clock.Now(),
	}
	r.nextID++

	if fields.Content != nil {
		post.Content = *fields.Content
	}

	r.posts = append(r.posts, post)
	return post
}

// Replace merges the supplied fields into the post with the given ID, always
// keeping the stored ID. A missing ID is a silent no-op: the HTTP surface
// reports success either way, matching the API contract this service has
// always had.
func (r *InMemoryRepository) Replace(id int64, fields domain.Fields) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.posts {
		if p.ID != id {
			continue
		}
		if fields.Content != nil {
			p.Content = *fields.Content
		}
		if fields.Created != nil {
			p.Created = *fields.Created
		}
		r.posts[i] = p
		return
	}
}

// Delete removes the first post with the given ID. A missing ID is a silent
// no-op, same contract as Replace.
func (r *InMemoryRepository) Delete(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.posts {
		if p.ID == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return
		}
	}
}
