package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/teamdebug/quizard/internal/api/middleware"
	"github.com/teamdebug/quizard/internal/domain"
	"github.com/teamdebug/quizard/internal/service"
)

const maxUploadBytes = 10 << 20 // 10 MiB

type ReviewerHandler struct {
	reviewerService *service.ReviewerService
	quizService     *service.QuizService
}

func NewReviewerHandler(reviewerService *service.ReviewerService, quizService *service.QuizService) *ReviewerHandler {
	return &ReviewerHandler{
		reviewerService: reviewerService,
		quizService:     quizService,
	}
}

type UploadResponse struct {
	Success  bool   `json:"success"`
	ID       string `json:"id"`
	FileName string `json:"fileName"`
	Message  string `json:"message"`
}

type ReviewerResponse struct {
	ID         string              `json:"id"`
	FileName   string              `json:"fileName"`
	Summary    string              `json:"summary"`
	Flashcards []*domain.Flashcard `json:"flashcards"`
	QuizItems  []*domain.QuizItem  `json:"quizItems"`
}

type AttemptRequest struct {
	Answers map[string]string `json:"answers"`
}

type AttemptResponse struct {
	Success bool `json:"success"`
	Score   int  `json:"score"`
	Total   int  `json:"total"`
}

func (h *ReviewerHandler) Upload(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondResult(w, http.StatusUnauthorized, false, "Unauthorized")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondResult(w, http.StatusBadRequest, false, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondResult(w, http.StatusBadRequest, false, "A file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondResult(w, http.StatusBadRequest, false, "Failed to read file")
		return
	}

	reviewer, err := h.reviewerService.Upload(r.Context(), userID, header.Filename, data)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnsupportedFileType):
			respondResult(w, http.StatusBadRequest, false, "Unsupported file type. Supported types: TXT, TEXT, MD")
		case errors.Is(err, domain.ErrEmptyDocument):
			respondResult(w, http.StatusBadRequest, false, "Document contains no text")
		default:
			log.Printf("ERROR [reviewer.Upload] %v", err)
			respondResult(w, http.StatusInternalServerError, false, serverErrorMessage)
		}
		return
	}

	respondJSON(w, http.StatusOK, UploadResponse{
		Success:  true,
		ID:       reviewer.ID.String(),
		FileName: reviewer.FileName,
		Message:  "File uploaded successfully",
	})
}

func (h *ReviewerHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, reviewerID, ok := h.requestIDs(w, r)
	if !ok {
		return
	}

	detail, err := h.reviewerService.Get(r.Context(), userID, reviewerID)
	if err != nil {
		h.respondReviewerError(w, "reviewer.Get", err)
		return
	}

	respondJSON(w, http.StatusOK, ReviewerResponse{
		ID:         detail.Reviewer.ID.String(),
		FileName:   detail.Reviewer.FileName,
		Summary:    detail.Reviewer.Summary,
		Flashcards: detail.Flashcards,
		QuizItems:  detail.QuizItems,
	})
}

func (h *ReviewerHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID, reviewerID, ok := h.requestIDs(w, r)
	if !ok {
		return
	}

	summary, err := h.reviewerService.Summary(r.Context(), userID, reviewerID)
	if err != nil {
		h.respondReviewerError(w, "reviewer.Summary", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"summary": summary})
}

func (h *ReviewerHandler) Flashcards(w http.ResponseWriter, r *http.Request) {
	userID, reviewerID, ok := h.requestIDs(w, r)
	if !ok {
		return
	}

	cards, err := h.reviewerService.Flashcards(r.Context(), userID, reviewerID)
	if err != nil {
		h.respondReviewerError(w, "reviewer.Flashcards", err)
		return
	}

	respondJSON(w, http.StatusOK, cards)
}

func (h *ReviewerHandler) Quiz(w http.ResponseWriter, r *http.Request) {
	userID, reviewerID, ok := h.requestIDs(w, r)
	if !ok {
		return
	}

	items, err := h.quizService.Items(r.Context(), userID, reviewerID)
	if err != nil {
		h.respondReviewerError(w, "reviewer.Quiz", err)
		return
	}

	respondJSON(w, http.StatusOK, items)
}

func (h *ReviewerHandler) SubmitAttempt(w http.ResponseWriter, r *http.Request) {
	userID, reviewerID, ok := h.requestIDs(w, r)
	if !ok {
		return
	}

	var req AttemptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondResult(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	attempt, err := h.quizService.SubmitAttempt(r.Context(), userID, reviewerID, req.Answers)
	if err != nil {
		h.respondReviewerError(w, "reviewer.SubmitAttempt", err)
		return
	}

	respondJSON(w, http.StatusOK, AttemptResponse{
		Success: true,
		Score:   attempt.Score,
		Total:   attempt.Total,
	})
}

func (h *ReviewerHandler) requestIDs(w http.ResponseWriter, r *http.Request) (userID, reviewerID uuid.UUID, ok bool) {
	userID, ok = middleware.GetUserID(r.Context())
	if !ok {
		respondResult(w, http.StatusUnauthorized, false, "Unauthorized")
		return uuid.Nil, uuid.Nil, false
	}

	reviewerID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondResult(w, http.StatusNotFound, false, "Reviewer not found")
		return uuid.Nil, uuid.Nil, false
	}

	return userID, reviewerID, true
}

func (h *ReviewerHandler) respondReviewerError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, domain.ErrReviewerNotFound) {
		respondResult(w, http.StatusNotFound, false, "Reviewer not found")
		return
	}
	log.Printf("ERROR [%s] %v", op, err)
	respondResult(w, http.StatusInternalServerError, false, serverErrorMessage)
}
