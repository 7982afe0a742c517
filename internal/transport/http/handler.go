package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"carv-arcade-service/internal/app"
	"carv-arcade-service/internal/domain"
)

// Handler exposes the arcade use cases over JSON endpoints.
type Handler struct {
	service *app.ArcadeService
}

func NewHandler(service *app.ArcadeService) *Handler {
	return &Handler{service: service}
}

type nonceRequest struct {
	Address string `json:"address"`
}

type nonceResponse struct {
	Nonce string `json:"nonce"`
}

type checkAnswerRequest struct {
	QuestionID  int `json:"questionId"`
	AnswerIndex int `json:"answerIndex"`
}

type checkAnswerResponse struct {
	Correct bool `json:"correct"`
}

type submitQuizRequest struct {
	Address        string                        `json:"address"`
	Signature      string                        `json:"signature"`
	Nonce          string                        `json:"nonce"`
	Score          int                           `json:"score"`
	TotalQuestions int                           `json:"totalQuestions"`
	Details        []domain.QuizSubmissionDetail `json:"details"`
}

type submitQuizResponse struct {
	Success       bool   `json:"success"`
	PointsAwarded int    `json:"pointsAwarded,omitempty"`
	TotalPoints   int    `json:"totalPoints,omitempty"`
	Message       string `json:"message,omitempty"`
}

type spinRequest struct {
	Address   string `json:"address"`
	Signature string `json:"signature"`
	Nonce     string `json:"nonce"`
}

type spinResponse struct {
	Multiplier  int    `json:"multiplier"`
	PointsDelta int    `json:"pointsDelta"`
	TotalPoints int    `json:"totalPoints"`
	Error       string `json:"error,omitempty"`
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	w.Write([]byte("ok"))
}

func (h *Handler) issueNonce(w http.ResponseWriter, r *http.Request) {
	var req nonceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Address == "" {
		writeError(w, http.StatusBadRequest, "address required")
		return
	}
	nonce, err := h.service.IssueNonce(r.Context(), req.Address)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not issue nonce")
		return
	}
	writeJSON(w, http.StatusOK, nonceResponse{Nonce: nonce})
}

func (h *Handler) listQuestions(w http.ResponseWriter, r *http.Request) {
	topic := domain.Topic(r.URL.Query().Get("topic"))
	difficulty := domain.Difficulty(r.URL.Query().Get("difficulty"))
	count, err := strconv.Atoi(r.URL.Query().Get("count"))
	if err != nil || count <= 0 {
		writeError(w, http.StatusBadRequest, "count must be a positive integer")
		return
	}

	questions, err := h.service.FetchQuestions(r.Context(), topic, difficulty, count)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not load questions")
		return
	}
	if questions == nil {
		questions = []domain.Question{}
	}
	writeJSON(w, http.StatusOK, questions)
}

func (h *Handler) checkAnswer(w http.ResponseWriter, r *http.Request) {
	var req checkAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	correct, err := h.service.CheckAnswer(r.Context(), req.QuestionID, req.AnswerIndex)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not check answer")
		return
	}
	writeJSON(w, http.StatusOK, checkAnswerResponse{Correct: correct})
}

func (h *Handler) submitQuiz(w http.ResponseWriter, r *http.Request) {
	var req submitQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Address == "" {
		writeJSON(w, http.StatusBadRequest, submitQuizResponse{Success: false, Message: "invalid payload"})
		return
	}

	result, err := h.service.SubmitQuiz(r.Context(), app.SubmitQuizRequest{
		Address:        req.Address,
		Signature:      req.Signature,
		Nonce:          req.Nonce,
		Score:          req.Score,
		TotalQuestions: req.TotalQuestions,
		Details:        req.Details,
	})
	if err != nil {
		status, message := mapError(err)
		writeJSON(w, status, submitQuizResponse{Success: false, Message: message})
		return
	}
	writeJSON(w, http.StatusOK, submitQuizResponse{
		Success:       true,
		PointsAwarded: result.PointsAwarded,
		TotalPoints:   result.TotalPoints,
	})
}

func (h *Handler) spin(w http.ResponseWriter, r *http.Request) {
	var req spinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Address == "" {
		writeJSON(w, http.StatusBadRequest, spinResponse{Error: "invalid payload"})
		return
	}

	result, err := h.service.Spin(r.Context(), app.SpinRequest{
		Address:   req.Address,
		Signature: req.Signature,
		Nonce:     req.Nonce,
	})
	if err != nil {
		status, message := mapError(err)
		writeJSON(w, status, spinResponse{Error: message})
		return
	}
	writeJSON(w, http.StatusOK, spinResponse{
		Multiplier:  result.Multiplier,
		PointsDelta: result.PointsDelta,
		TotalPoints: result.TotalPoints,
	})
}

func (h *Handler) leaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.Leaderboard(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not load leaderboard")
		return
	}
	if entries == nil {
		entries = []domain.LeaderboardEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	address := r.PathValue("address")
	if address == "" {
		writeError(w, http.StatusBadRequest, "address required")
		return
	}
	profile, err := h.service.Profile(r.Context(), address)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not load profile")
		return
	}
	if profile.Events == nil {
		profile.Events = []domain.Event{}
	}
	writeJSON(w, http.StatusOK, profile)
}

// mapError converts domain failures to a status code plus the user-visible
// message the original client expects.
func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidNonce):
		return http.StatusUnauthorized, "Invalid or expired nonce."
	case errors.Is(err, domain.ErrBadSignature):
		return http.StatusUnauthorized, "Signature verification failed."
	case errors.Is(err, domain.ErrInsufficientPoints):
		return http.StatusConflict, "Not enough points to spin."
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("write response: %v", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
