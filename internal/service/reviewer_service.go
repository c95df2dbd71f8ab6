package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/teamdebug/quizard/internal/domain"
	"github.com/teamdebug/quizard/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ReviewerService struct {
	reviewerRepo  repository.ReviewerRepository
	flashcardRepo repository.FlashcardRepository
	quizRepo      repository.QuizRepository
	tx            repository.TransactionManager
}

func NewReviewerService(reviewerRepo repository.ReviewerRepository, flashcardRepo repository.FlashcardRepository, quizRepo repository.QuizRepository, tx repository.TransactionManager) *ReviewerService {
	return &ReviewerService{
		reviewerRepo:  reviewerRepo,
		flashcardRepo: flashcardRepo,
		quizRepo:      quizRepo,
		tx:            tx,
	}
}

// ReviewerDetail is a reviewer with its generated study material.
type ReviewerDetail struct {
	Reviewer   *domain.Reviewer
	Flashcards []*domain.Flashcard
	QuizItems  []*domain.QuizItem
}

// Upload parses the file, generates the summary, flashcards and quiz items,
// and persists everything in one transaction.
func (s *ReviewerService) Upload(ctx context.Context, userID uuid.UUID, fileName string, data []byte) (*domain.Reviewer, error) {
	text, err := extractText(fileName, data)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, domain.ErrEmptyDocument
	}

	reviewer := &domain.Reviewer{
		ID:           uuid.New(),
		UserID:       userID,
		FileName:     fileName,
		OriginalText: text,
		Summary:      GenerateSummary(text),
		CreatedAt:    time.Now(),
	}

	cards := make([]*domain.Flashcard, 0)
	for i, draft := range GenerateFlashcards(text) {
		cards = append(cards, &domain.Flashcard{
			ID:         uuid.New(),
			ReviewerID: reviewer.ID,
			Term:       draft.Term,
			Definition: draft.Definition,
			Position:   i,
		})
	}

	items := make([]*domain.QuizItem, 0)
	for i, draft := range GenerateQuizItems(text) {
		choicesJSON, err := json.Marshal(draft.Choices)
		if err != nil {
			return nil, err
		}
		items = append(items, &domain.QuizItem{
			ID:            uuid.New(),
			ReviewerID:    reviewer.ID,
			Question:      draft.Question,
			Choices:       datatypes.JSON(choicesJSON),
			CorrectAnswer: draft.CorrectAnswer,
			Type:          domain.QuizTypeMCQ,
			Position:      i,
		})
	}

	err = s.tx.Transaction(ctx, func(repos *repository.Repositories) error {
		if err := repos.Reviewer.Create(ctx, reviewer); err != nil {
			return err
		}
		if err := repos.Flashcard.CreateMany(ctx, cards); err != nil {
			return err
		}
		return repos.Quiz.CreateItems(ctx, items)
	})
	if err != nil {
		return nil, err
	}

	return reviewer, nil
}

func (s *ReviewerService) Get(ctx context.Context, userID, reviewerID uuid.UUID) (*ReviewerDetail, error) {
	reviewer, err := s.getOwned(ctx, userID, reviewerID)
	if err != nil {
		return nil, err
	}

	cards, err := s.flashcardRepo.ListByReviewer(ctx, reviewer.ID)
	if err != nil {
		return nil, err
	}

	items, err := s.quizRepo.ListItemsByReviewer(ctx, reviewer.ID)
	if err != nil {
		return nil, err
	}

	return &ReviewerDetail{Reviewer: reviewer, Flashcards: cards, QuizItems: items}, nil
}

func (s *ReviewerService) Summary(ctx context.Context, userID, reviewerID uuid.UUID) (string, error) {
	reviewer, err := s.getOwned(ctx, userID, reviewerID)
	if err != nil {
		return "", err
	}
	return reviewer.Summary, nil
}

func (s *ReviewerService) Flashcards(ctx context.Context, userID, reviewerID uuid.UUID) ([]*domain.Flashcard, error) {
	reviewer, err := s.getOwned(ctx, userID, reviewerID)
	if err != nil {
		return nil, err
	}
	return s.flashcardRepo.ListByReviewer(ctx, reviewer.ID)
}

func (s *ReviewerService) getOwned(ctx context.Context, userID, reviewerID uuid.UUID) (*domain.Reviewer, error) {
	reviewer, err := s.reviewerRepo.GetByIDForUser(ctx, reviewerID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReviewerNotFound
		}
		return nil, err
	}
	return reviewer, nil
}
