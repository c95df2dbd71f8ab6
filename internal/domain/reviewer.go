package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Reviewer is an uploaded study document. Only the extracted text is kept;
// the raw file bytes are discarded after parsing.
type Reviewer struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID       uuid.UUID `json:"userId" gorm:"type:uuid;not null;index"`
	FileName     string    `json:"fileName" gorm:"not null"`
	OriginalText string    `json:"-" gorm:"not null"`
	Summary      string    `json:"summary" gorm:"not null"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Flashcard struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ReviewerID uuid.UUID `json:"reviewerId" gorm:"type:uuid;not null;index"`
	Term       string    `json:"term" gorm:"not null"`
	Definition string    `json:"definition" gorm:"not null"`
	Position   int       `json:"position" gorm:"not null"`
}

const QuizTypeMCQ = "MCQ"

type QuizItem struct {
	ID            uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ReviewerID    uuid.UUID      `json:"reviewerId" gorm:"type:uuid;not null;index"`
	Question      string         `json:"question" gorm:"not null"`
	Choices       datatypes.JSON `json:"choices" gorm:"not null"`
	CorrectAnswer string         `json:"correctAnswer" gorm:"not null"`
	Type          string         `json:"type" gorm:"not null"`
	Position      int            `json:"position" gorm:"not null"`
}

// QuizAttempt records one scored submission. Answers maps quiz item id to
// the answer the user gave.
type QuizAttempt struct {
	ID         uuid.UUID         `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ReviewerID uuid.UUID         `json:"reviewerId" gorm:"type:uuid;not null;index"`
	UserID     uuid.UUID         `json:"userId" gorm:"type:uuid;not null;index"`
	Answers    datatypes.JSONMap `json:"answers"`
	Score      int               `json:"score" gorm:"not null"`
	Total      int               `json:"total" gorm:"not null"`
	CreatedAt  time.Time         `json:"createdAt"`
}
