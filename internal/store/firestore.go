package store

import (
	"career-advisor/internal/catalog"
	"career-advisor/internal/config"
	"career-advisor/internal/logger"
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

const (
	usersCollection   = "users"
	chatsCollection   = "chats"
	coursesCollection = "courses"
)

var log = logger.WithComponent("store")

// Ensure FirestoreStore implements the Store interface
var _ Store = (*FirestoreStore)(nil)

// FirestoreStore implements Store on Google Cloud Firestore. Profiles live at
// users/{uid}; turns are an append-only subcollection users/{uid}/chats
// ordered by server-assigned timestamp.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a new FirestoreStore with a fresh client
func NewFirestoreStore(ctx context.Context, cfg config.FirebaseConfig) (*FirestoreStore, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := firestore.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("error creating firestore client: %w", err)
	}

	log.WithField("project_id", cfg.ProjectID).Info("Connected to Firestore")

	return &FirestoreStore{client: client}, nil
}

// Close closes the underlying Firestore client
func (s *FirestoreStore) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}

// CreateProfile writes the profile document keyed by the identity-provider UID
func (s *FirestoreStore) CreateProfile(ctx context.Context, uid, email, username string) (*Profile, error) {
	profile := Profile{
		Email:    email,
		Username: username,
	}

	wr, err := s.client.Collection(usersCollection).Doc(uid).Set(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("error creating profile: %w", err)
	}

	log.WithFields(logrus.Fields{"uid": uid, "username": username}).Info("Created profile document")

	profile.CreatedAt = wr.UpdateTime
	return &profile, nil
}

// GetProfile reads the profile document for a user
func (s *FirestoreStore) GetProfile(ctx context.Context, uid string) (*Profile, error) {
	snap, err := s.client.Collection(usersCollection).Doc(uid).Get(ctx)
	if err != nil {
		if snap != nil && !snap.Exists() {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving profile: %w", err)
	}

	var profile Profile
	if err := snap.DataTo(&profile); err != nil {
		return nil, fmt.Errorf("error decoding profile: %w", err)
	}

	return &profile, nil
}

// AppendTurn appends one immutable turn document with a server-assigned
// timestamp to the user's ordered log. Turns are never updated or deleted.
func (s *FirestoreStore) AppendTurn(ctx context.Context, uid, role, content string) (*Turn, error) {
	turn := Turn{
		Role:    role,
		Content: content,
	}

	ref, wr, err := s.client.Collection(usersCollection).Doc(uid).Collection(chatsCollection).Add(ctx, turn)
	if err != nil {
		return nil, fmt.Errorf("error appending turn: %w", err)
	}

	log.WithFields(logrus.Fields{
		"uid":           uid,
		"role":          role,
		"turn_id":       ref.ID,
		"content_chars": len(content),
	}).Debug("Appended chat turn")

	turn.Timestamp = wr.UpdateTime
	return &turn, nil
}

// LoadHistory returns all persisted turns for a user in ascending timestamp order
func (s *FirestoreStore) LoadHistory(ctx context.Context, uid string) ([]Turn, error) {
	iter := s.client.Collection(usersCollection).Doc(uid).Collection(chatsCollection).
		OrderBy("timestamp", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var turns []Turn
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error loading history: %w", err)
		}

		var turn Turn
		if err := snap.DataTo(&turn); err != nil {
			return nil, fmt.Errorf("error decoding turn: %w", err)
		}
		turns = append(turns, turn)
	}

	log.WithFields(logrus.Fields{"uid": uid, "turn_count": len(turns)}).Debug("Loaded chat history")

	return turns, nil
}

// ListCourses returns all recommended course documents
func (s *FirestoreStore) ListCourses(ctx context.Context) ([]catalog.Course, error) {
	iter := s.client.Collection(coursesCollection).Documents(ctx)
	defer iter.Stop()

	var courses []catalog.Course
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error listing courses: %w", err)
		}

		var course catalog.Course
		if err := snap.DataTo(&course); err != nil {
			return nil, fmt.Errorf("error decoding course: %w", err)
		}
		courses = append(courses, course)
	}

	return courses, nil
}

// SeedCourses writes the given courses if the collection is empty and returns
// the number written. Subsequent boots are no-ops.
func (s *FirestoreStore) SeedCourses(ctx context.Context, courses []catalog.Course) (int, error) {
	iter := s.client.Collection(coursesCollection).Limit(1).Documents(ctx)
	defer iter.Stop()

	if _, err := iter.Next(); err != iterator.Done {
		if err != nil {
			return 0, fmt.Errorf("error checking courses collection: %w", err)
		}
		log.Info("Courses already seeded, skipping")
		return 0, nil
	}

	for _, course := range courses {
		id := uuid.New().String()
		if _, err := s.client.Collection(coursesCollection).Doc(id).Set(ctx, course); err != nil {
			return 0, fmt.Errorf("error seeding course %q: %w", course.Title, err)
		}
	}

	log.WithField("course_count", len(courses)).Info("Seeded course recommendations")

	return len(courses), nil
}
