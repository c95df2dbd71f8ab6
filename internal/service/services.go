package service

import (
	"github.com/teamdebug/quizard/internal/config"
	"github.com/teamdebug/quizard/internal/repository"
)

type Services struct {
	Auth     *AuthService
	Reviewer *ReviewerService
	Quiz     *QuizService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:     NewAuthService(repos.User, repos.Session, repos.Tx, cfg),
		Reviewer: NewReviewerService(repos.Reviewer, repos.Flashcard, repos.Quiz, repos.Tx),
		Quiz:     NewQuizService(repos.Quiz, repos.Reviewer),
	}
}
