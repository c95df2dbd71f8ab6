package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/teamdebug/quizard/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ListActive(ctx context.Context) ([]*domain.User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	Exists(ctx context.Context, token string) (bool, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) error
}

type ReviewerRepository interface {
	Create(ctx context.Context, reviewer *domain.Reviewer) error
	GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*domain.Reviewer, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Reviewer, error)
}

type FlashcardRepository interface {
	CreateMany(ctx context.Context, cards []*domain.Flashcard) error
	ListByReviewer(ctx context.Context, reviewerID uuid.UUID) ([]*domain.Flashcard, error)
}

type QuizRepository interface {
	CreateItems(ctx context.Context, items []*domain.QuizItem) error
	ListItemsByReviewer(ctx context.Context, reviewerID uuid.UUID) ([]*domain.QuizItem, error)
	CreateAttempt(ctx context.Context, attempt *domain.QuizAttempt) error
	ListAttemptsByReviewer(ctx context.Context, reviewerID, userID uuid.UUID) ([]*domain.QuizAttempt, error)
}

// TransactionManager runs fn with a set of repositories bound to a single
// database transaction.
type TransactionManager interface {
	Transaction(ctx context.Context, fn func(repos *Repositories) error) error
}

type Repositories struct {
	User      UserRepository
	Session   SessionRepository
	Reviewer  ReviewerRepository
	Flashcard FlashcardRepository
	Quiz      QuizRepository
	Tx        TransactionManager
}
