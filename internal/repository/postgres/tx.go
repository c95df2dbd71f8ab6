package postgres

import (
	"context"

	"github.com/teamdebug/quizard/internal/repository"
	"gorm.io/gorm"
)

type txManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) *txManager {
	return &txManager{db: db}
}

// Transaction rebinds the repositories onto a single gorm transaction so a
// multi-repo sequence commits or rolls back as one unit.
func (m *txManager) Transaction(ctx context.Context, fn func(repos *repository.Repositories) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
