package postgres

import (
	"github.com/teamdebug/quizard/internal/domain"
	"github.com/teamdebug/quizard/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Info),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate tables. The unique index on users.email is what enforces
	// duplicate rejection under concurrent signups.
	err = db.AutoMigrate(
		&domain.User{},
		&domain.Session{},
		&domain.Reviewer{},
		&domain.Flashcard{},
		&domain.QuizItem{},
		&domain.QuizAttempt{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User:      NewUserRepository(db),
		Session:   NewSessionRepository(db),
		Reviewer:  NewReviewerRepository(db),
		Flashcard: NewFlashcardRepository(db),
		Quiz:      NewQuizRepository(db),
		Tx:        NewTransactionManager(db),
	}
}
