package testutil

import (
	"career-advisor/internal/catalog"
	"career-advisor/internal/identity"
	"career-advisor/internal/service/llm"
	"career-advisor/internal/store"
	"context"
	"errors"
	"time"
)

// MockIdentityProvider is a mock implementation of identity.Provider for testing
type MockIdentityProvider struct {
	CreateUserFunc     func(ctx context.Context, email, password, displayName string) (*identity.User, error)
	GetUserByEmailFunc func(ctx context.Context, email string) (*identity.User, error)
	VerifyPasswordFunc func(ctx context.Context, email, password string) (*identity.User, error)
}

func (m *MockIdentityProvider) CreateUser(ctx context.Context, email, password, displayName string) (*identity.User, error) {
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(ctx, email, password, displayName)
	}
	return nil, errors.New("not implemented")
}

func (m *MockIdentityProvider) GetUserByEmail(ctx context.Context, email string) (*identity.User, error) {
	if m.GetUserByEmailFunc != nil {
		return m.GetUserByEmailFunc(ctx, email)
	}
	return nil, errors.New("not implemented")
}

func (m *MockIdentityProvider) VerifyPassword(ctx context.Context, email, password string) (*identity.User, error) {
	if m.VerifyPasswordFunc != nil {
		return m.VerifyPasswordFunc(ctx, email, password)
	}
	return nil, errors.New("not implemented")
}

// MockStore is a mock implementation of store.Store for testing
type MockStore struct {
	CreateProfileFunc func(ctx context.Context, uid, email, username string) (*store.Profile, error)
	GetProfileFunc    func(ctx context.Context, uid string) (*store.Profile, error)
	AppendTurnFunc    func(ctx context.Context, uid, role, content string) (*store.Turn, error)
	LoadHistoryFunc   func(ctx context.Context, uid string) ([]store.Turn, error)
	ListCoursesFunc   func(ctx context.Context) ([]catalog.Course, error)
	SeedCoursesFunc   func(ctx context.Context, courses []catalog.Course) (int, error)
}

func (m *MockStore) CreateProfile(ctx context.Context, uid, email, username string) (*store.Profile, error) {
	if m.CreateProfileFunc != nil {
		return m.CreateProfileFunc(ctx, uid, email, username)
	}
	return nil, errors.New("not implemented")
}

func (m *MockStore) GetProfile(ctx context.Context, uid string) (*store.Profile, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, uid)
	}
	return nil, errors.New("not implemented")
}

func (m *MockStore) AppendTurn(ctx context.Context, uid, role, content string) (*store.Turn, error) {
	if m.AppendTurnFunc != nil {
		return m.AppendTurnFunc(ctx, uid, role, content)
	}
	return nil, errors.New("not implemented")
}

func (m *MockStore) LoadHistory(ctx context.Context, uid string) ([]store.Turn, error) {
	if m.LoadHistoryFunc != nil {
		return m.LoadHistoryFunc(ctx, uid)
	}
	return nil, errors.New("not implemented")
}

func (m *MockStore) ListCourses(ctx context.Context) ([]catalog.Course, error) {
	if m.ListCoursesFunc != nil {
		return m.ListCoursesFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *MockStore) SeedCourses(ctx context.Context, courses []catalog.Course) (int, error) {
	if m.SeedCoursesFunc != nil {
		return m.SeedCoursesFunc(ctx, courses)
	}
	return 0, errors.New("not implemented")
}

func (m *MockStore) Close() error {
	return nil
}

// MockGateway is a mock implementation of llm.Gateway for testing
type MockGateway struct {
	ReplyFunc func(ctx context.Context, history []llm.Message) (string, error)
}

func (m *MockGateway) Reply(ctx context.Context, history []llm.Message) (string, error) {
	if m.ReplyFunc != nil {
		return m.ReplyFunc(ctx, history)
	}
	return "", errors.New("not implemented")
}

// MemoryStore is an in-memory store.Store used by flow tests that need
// real append/load semantics rather than per-call stubs
type MemoryStore struct {
	Profiles map[string]*store.Profile
	Turns    map[string][]store.Turn
	Courses  []catalog.Course

	clock time.Time
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		Profiles: make(map[string]*store.Profile),
		Turns:    make(map[string][]store.Turn),
		clock:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (m *MemoryStore) CreateProfile(ctx context.Context, uid, email, username string) (*store.Profile, error) {
	profile := &store.Profile{Email: email, Username: username, CreatedAt: m.tick()}
	m.Profiles[uid] = profile
	return profile, nil
}

func (m *MemoryStore) GetProfile(ctx context.Context, uid string) (*store.Profile, error) {
	profile, ok := m.Profiles[uid]
	if !ok {
		return nil, store.ErrProfileNotFound
	}
	return profile, nil
}

func (m *MemoryStore) AppendTurn(ctx context.Context, uid, role, content string) (*store.Turn, error) {
	turn := store.Turn{Role: role, Content: content, Timestamp: m.tick()}
	m.Turns[uid] = append(m.Turns[uid], turn)
	return &turn, nil
}

func (m *MemoryStore) LoadHistory(ctx context.Context, uid string) ([]store.Turn, error) {
	return append([]store.Turn(nil), m.Turns[uid]...), nil
}

func (m *MemoryStore) ListCourses(ctx context.Context) ([]catalog.Course, error) {
	return append([]catalog.Course(nil), m.Courses...), nil
}

func (m *MemoryStore) SeedCourses(ctx context.Context, courses []catalog.Course) (int, error) {
	if len(m.Courses) > 0 {
		return 0, nil
	}
	m.Courses = append(m.Courses, courses...)
	return len(courses), nil
}

func (m *MemoryStore) Close() error {
	return nil
}

// tick emulates server-assigned, strictly increasing timestamps
func (m *MemoryStore) tick() time.Time {
	m.clock = m.clock.Add(time.Millisecond)
	return m.clock
}
