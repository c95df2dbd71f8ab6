package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/teamdebug/quizard/internal/domain"
	"github.com/teamdebug/quizard/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type QuizService struct {
	quizRepo     repository.QuizRepository
	reviewerRepo repository.ReviewerRepository
}

func NewQuizService(quizRepo repository.QuizRepository, reviewerRepo repository.ReviewerRepository) *QuizService {
	return &QuizService{
		quizRepo:     quizRepo,
		reviewerRepo: reviewerRepo,
	}
}

func (s *QuizService) Items(ctx context.Context, userID, reviewerID uuid.UUID) ([]*domain.QuizItem, error) {
	if err := s.checkOwned(ctx, userID, reviewerID); err != nil {
		return nil, err
	}
	return s.quizRepo.ListItemsByReviewer(ctx, reviewerID)
}

// SubmitAttempt scores an answer set against the stored quiz items and
// records the attempt. Answers map quiz item id to the chosen answer;
// unanswered items count as wrong.
func (s *QuizService) SubmitAttempt(ctx context.Context, userID, reviewerID uuid.UUID, answers map[string]string) (*domain.QuizAttempt, error) {
	if err := s.checkOwned(ctx, userID, reviewerID); err != nil {
		return nil, err
	}

	items, err := s.quizRepo.ListItemsByReviewer(ctx, reviewerID)
	if err != nil {
		return nil, err
	}

	score := 0
	stored := make(datatypes.JSONMap, len(answers))
	for _, item := range items {
		answer, ok := answers[item.ID.String()]
		if !ok {
			continue
		}
		stored[item.ID.String()] = answer
		if answer == item.CorrectAnswer {
			score++
		}
	}

	attempt := &domain.QuizAttempt{
		ID:         uuid.New(),
		ReviewerID: reviewerID,
		UserID:     userID,
		Answers:    stored,
		Score:      score,
		Total:      len(items),
		CreatedAt:  time.Now(),
	}

	if err := s.quizRepo.CreateAttempt(ctx, attempt); err != nil {
		return nil, err
	}

	return attempt, nil
}

func (s *QuizService) checkOwned(ctx context.Context, userID, reviewerID uuid.UUID) error {
	_, err := s.reviewerRepo.GetByIDForUser(ctx, reviewerID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrReviewerNotFound
		}
		return err
	}
	return nil
}
