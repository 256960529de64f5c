package store

import (
	"career-advisor/internal/catalog"
	"context"
	"errors"
	"time"
)

// ErrProfileNotFound is returned when no profile document exists for a user
var ErrProfileNotFound = errors.New("profile not found")

// Turn roles. Persisted turns only ever carry user or assistant; the system
// preamble lives in memory and is never written.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Profile is the durable record describing a registered user beyond their
// identity-provider account
type Profile struct {
	Email     string    `firestore:"email"`
	Username  string    `firestore:"username"`
	CreatedAt time.Time `firestore:"created_at,serverTimestamp"`
}

// Turn is one immutable message in a user's transcript, ordered by its
// server-assigned timestamp
type Turn struct {
	Role      string    `firestore:"role" json:"role"`
	Content   string    `firestore:"content" json:"content"`
	Timestamp time.Time `firestore:"timestamp,serverTimestamp" json:"timestamp"`
}

// Store defines the interface for all document-store operations.
// This allows the services to be tested against fakes and decouples them
// from the Firestore implementation.
type Store interface {
	// Profiles
	CreateProfile(ctx context.Context, uid, email, username string) (*Profile, error)
	GetProfile(ctx context.Context, uid string) (*Profile, error)

	// Chat turns
	AppendTurn(ctx context.Context, uid, role, content string) (*Turn, error)
	LoadHistory(ctx context.Context, uid string) ([]Turn, error)

	// Courses
	ListCourses(ctx context.Context) ([]catalog.Course, error)
	SeedCourses(ctx context.Context, courses []catalog.Course) (int, error)

	Close() error
}
