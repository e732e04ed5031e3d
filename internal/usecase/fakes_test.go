package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"careergps/internal/catalog"
	"careergps/internal/domain/user"
	"careergps/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func loadCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Load()
	require.NoError(t, err)
	return c
}

type memUsers struct {
	mu   sync.Mutex
	byID map[uuid.UUID]user.User
}

func newMemUsers() *memUsers {
	return &memUsers{byID: map[uuid.UUID]user.User{}}
}

func (m *memUsers) Create(_ context.Context, u user.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.byID {
		if existing.Email == u.Email {
			return user.ErrEmailTaken
		}
	}
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt
	m.byID[u.ID] = u
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

type memCache struct {
	data map[string][]byte
	gets int
	sets int
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}}
}

func (c *memCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.gets++
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *memCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	c.sets++
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = b
	return nil
}

type fakeArchive struct {
	key   string
	err   error
	calls int
}

func (a *fakeArchive) Put(context.Context, string, string, []byte) (string, error) {
	a.calls++
	return a.key, a.err
}

type fakeCounter struct {
	n   int64
	err error
}

func (c *fakeCounter) Incr(context.Context, string) (int64, error) {
	if c.err != nil {
		return 0, c.err
	}
	c.n++
	return c.n, nil
}

func (c *fakeCounter) GetInt(context.Context, string) (int64, error) {
	if c.err != nil {
		return 0, c.err
	}
	return c.n, nil
}

type recordingHub struct {
	counts []int64
}

func (h *recordingHub) BroadcastCount(n int64) {
	h.counts = append(h.counts, n)
}

type memAssessments struct {
	saved []repository.Assessment
	err   error
	limit int
}

func (m *memAssessments) Create(_ context.Context, a repository.Assessment) (repository.Assessment, error) {
	if m.err != nil {
		return repository.Assessment{}, m.err
	}
	a.CreatedAt = time.Now().UTC()
	m.saved = append(m.saved, a)
	return a, nil
}

func (m *memAssessments) ListByUser(_ context.Context, userID uuid.UUID, limit int) ([]repository.Assessment, error) {
	m.limit = limit
	if m.err != nil {
		return nil, m.err
	}
	out := []repository.Assessment{}
	for _, a := range m.saved {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

type memProgress struct {
	rows map[string]repository.CourseProgress
}

func newMemProgress() *memProgress {
	return &memProgress{rows: map[string]repository.CourseProgress{}}
}

func progressKey(userID uuid.UUID, career, title string) string {
	return userID.String() + "|" + career + "|" + title
}

func (m *memProgress) Enroll(_ context.Context, userID uuid.UUID, career, title string) (repository.CourseProgress, error) {
	k := progressKey(userID, career, title)
	if p, ok := m.rows[k]; ok {
		return p, nil
	}
	p := repository.CourseProgress{UserID: userID, Career: career, CourseTitle: title, Status: repository.StatusEnrolled, EnrolledAt: time.Now().UTC()}
	m.rows[k] = p
	return p, nil
}

func (m *memProgress) Complete(ctx context.Context, userID uuid.UUID, career, title string) (repository.CourseProgress, error) {
	p, _ := m.Enroll(ctx, userID, career, title)
	if p.CompletedAt == nil {
		now := time.Now().UTC()
		p.CompletedAt = &now
	}
	p.Status = repository.StatusCompleted
	m.rows[progressKey(userID, career, title)] = p
	return p, nil
}

func (m *memProgress) ListByUser(_ context.Context, userID uuid.UUID) ([]repository.CourseProgress, error) {
	out := []repository.CourseProgress{}
	for _, p := range m.rows {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

var errBoom = errors.New("boom")
