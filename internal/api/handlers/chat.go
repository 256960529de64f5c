package handlers

import (
	"career-advisor/internal/auth"
	"career-advisor/internal/catalog"
	"career-advisor/internal/logger"
	chatService "career-advisor/internal/service/chat"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Reply    string `json:"reply"`
	Degraded bool   `json:"degraded,omitempty"`
}

type TurnData struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type HistoryResponse struct {
	Turns []TurnData `json:"turns"`
}

type IndustriesResponse struct {
	Industries []catalog.Industry `json:"industries"`
}

type IndustryOverviewRequest struct {
	Industry string `json:"industry"`
}

type CoursesResponse struct {
	Courses []catalog.Course `json:"courses"`
}

// CourseLister is the slice of the store the courses endpoint needs
type CourseLister interface {
	ListCourses(ctx context.Context) ([]catalog.Course, error)
}

// ChatHandlers exposes the conversation flow over HTTP
type ChatHandlers struct {
	chat    *chatService.ChatService
	courses CourseLister
}

// NewChatHandlers creates a new ChatHandlers
func NewChatHandlers(chat *chatService.ChatService, courses CourseLister) *ChatHandlers {
	return &ChatHandlers{
		chat:    chat,
		courses: courses,
	}
}

// ChatHandler processes one user message and returns the assistant's reply
func (h *ChatHandlers) ChatHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		sendError(w, http.StatusUnauthorized, "Missing authentication", nil)
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	logger.Log.WithFields(logrus.Fields{"uid": claims.UID, "message_chars": len(req.Message)}).Info("Chat request received")

	response, err := h.chat.SendMessage(r.Context(), claims.UID, req.Message)
	if err != nil {
		sendAppError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ChatResponse{
		Reply:    response.Reply,
		Degraded: response.Degraded,
	})
}

// HistoryHandler returns the authenticated user's full transcript
func (h *ChatHandlers) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		sendError(w, http.StatusUnauthorized, "Missing authentication", nil)
		return
	}

	turns, err := h.chat.History(r.Context(), claims.UID)
	if err != nil {
		sendAppError(w, err)
		return
	}

	turnData := make([]TurnData, 0, len(turns))
	for _, turn := range turns {
		turnData = append(turnData, TurnData{
			Role:      turn.Role,
			Content:   turn.Content,
			Timestamp: turn.Timestamp,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(HistoryResponse{Turns: turnData})
}

// IndustriesHandler lists the growing-industry cards
func (h *ChatHandlers) IndustriesHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(IndustriesResponse{Industries: catalog.Industries()})
}

// IndustryOverviewHandler appends an industry career overview to the user's
// transcript as an assistant turn
func (h *ChatHandlers) IndustryOverviewHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		sendError(w, http.StatusUnauthorized, "Missing authentication", nil)
		return
	}

	var req IndustryOverviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	turn, err := h.chat.IndustryOverview(r.Context(), claims.UID, req.Industry)
	if err != nil {
		sendAppError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(TurnData{
		Role:      turn.Role,
		Content:   turn.Content,
		Timestamp: turn.Timestamp,
	})
}

// CoursesHandler lists the recommended courses
func (h *ChatHandlers) CoursesHandler(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courses.ListCourses(r.Context())
	if err != nil {
		sendAppError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(CoursesResponse{Courses: courses})
}
