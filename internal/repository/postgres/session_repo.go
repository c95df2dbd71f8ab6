package postgres

import (
	"context"
	"time"

	"github.com/teamdebug/quizard/internal/domain"
	"gorm.io/gorm"
)

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *sessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *domain.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

// Exists reports whether an unexpired session row holds the token. Expired
// rows are ignored rather than swept, so expiry takes effect lazily.
func (r *sessionRepository) Exists(ctx context.Context, token string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Session{}).
		Where("token = ? AND expires_at > ?", token, time.Now()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete is idempotent; deleting an absent token is not an error.
func (r *sessionRepository) Delete(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Delete(&domain.Session{}, "token = ?", token).Error
}

func (r *sessionRepository) DeleteExpired(ctx context.Context) error {
	return r.db.WithContext(ctx).Delete(&domain.Session{}, "expires_at <= ?", time.Now()).Error
}
