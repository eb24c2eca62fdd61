// Package server maps the game's HTTP surface onto the core: character
// metadata, chat, streaming chat, guess, reveal, and diagnostics.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vasu-2004/Reverse-Akinator-Game/config"
	"github.com/vasu-2004/Reverse-Akinator-Game/game"
	"github.com/vasu-2004/Reverse-Akinator-Game/llm"
)

// genericProviderError is the only detail a backend failure surfaces to
// the player. Provider errors never carry names or biographies, but the
// stable message keeps the public boundary independent of backend detail.
const genericProviderError = "Failed to get a response from the AI."

// Server holds the request-handling dependencies. The gateway registry is
// constructor-injected and read-only, so handlers are safe to run
// concurrently.
type Server struct {
	cfg      *config.Config
	gateway  *llm.Gateway
	sessions *game.Store
	logger   *slog.Logger
}

// New creates a Server around an initialized gateway.
func New(cfg *config.Config, gateway *llm.Gateway, sessions *game.Store, logger *slog.Logger) *Server {
	return &Server{cfg: cfg, gateway: gateway, sessions: sessions, logger: logger}
}

// Routes builds the chi router with the standard middleware stack.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/health"))

	r.Get("/api/characters", s.handleCharacters)
	r.Post("/api/chat", s.handleChat)
	r.Post("/api/chat/stream", s.handleChatStream)
	r.Get("/api/reveal", s.handleReveal)
	r.Post("/api/guess", s.handleGuess)
	r.Get("/api/providers", s.handleProviders)
	r.Get("/api/session", s.handleSessionState)
	r.Post("/api/session/reset", s.handleSessionReset)
	return r
}

func (s *Server) handleCharacters(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, game.CharacterMetadata())
}

type chatRequest struct {
	TabIndex *int          `json:"tabIndex"`
	Messages []llm.Message `json:"messages"`
}

type chatResponse struct {
	Response string `json:"response"`
	IsValid  bool   `json:"isValid"`
}

// prepareChat validates a chat request and resolves its session and the
// full message list (system instruction prepended to the transcript).
func (s *Server) prepareChat(w http.ResponseWriter, r *http.Request) (*game.Session, []llm.Message, string, bool) {
	if err := s.cfg.Validate(); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return nil, nil, "", false
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return nil, nil, "", false
	}
	if req.TabIndex == nil {
		writeError(w, http.StatusBadRequest, "Invalid tab index.")
		return nil, nil, "", false
	}

	session, err := s.sessions.Get(*req.TabIndex)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid tab index.")
		return nil, nil, "", false
	}
	if session.State() != game.StateActive {
		writeError(w, http.StatusConflict, "This game has ended. Start a new game to continue.")
		return nil, nil, "", false
	}

	question := ""
	for i := len(req.Messages) - 1; i >= 0; i-- {
		if req.Messages[i].Role == llm.RoleUser {
			question = req.Messages[i].Content
			break
		}
	}

	messages := make([]llm.Message, 0, len(req.Messages)+1)
	messages = append(messages, llm.Message{
		Role:    llm.RoleSystem,
		Content: game.BuildSystemPrompt(session.Character()),
	})
	messages = append(messages, req.Messages...)

	return session, messages, question, true
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	session, messages, question, ok := s.prepareChat(w, r)
	if !ok {
		return
	}

	resp, err := s.gateway.Invoke(r.Context(), messages, llm.Options{})
	if err != nil {
		s.logger.Error("chat invoke failed", "error", err)
		writeError(w, http.StatusInternalServerError, genericProviderError)
		return
	}

	verdict := game.Classify(resp.Content)
	s.logger.Debug("chat answer",
		"provider", resp.Provider,
		"model", resp.Model,
		"raw", resp.Content,
		"valid", verdict.Valid,
		"metadata", resp.Metadata)

	if _, err := session.RecordExchange(question, resp.Content, verdict.Valid); err != nil &&
		!errors.Is(err, game.ErrSessionOver) {
		s.logger.Error("failed to record exchange", "error", err)
	}

	writeJSON(w, http.StatusOK, chatResponse{Response: resp.Content, IsValid: verdict.Valid})
}

type guessRequest struct {
	TabIndex *int   `json:"tabIndex"`
	Guess    string `json:"guess"`
}

type guessResponse struct {
	Correct       bool   `json:"correct"`
	CharacterName string `json:"characterName,omitempty"`
}

func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if req.TabIndex == nil {
		writeError(w, http.StatusBadRequest, "Invalid tab index.")
		return
	}
	if req.Guess == "" {
		writeError(w, http.StatusBadRequest, "Guess is required.")
		return
	}

	session, err := s.sessions.Get(*req.TabIndex)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid tab index.")
		return
	}

	character := session.Character()
	correct := game.MatchGuess(req.Guess, character)

	if _, err := session.RecordGuess(correct); err != nil {
		writeError(w, http.StatusConflict, "This game has ended. Start a new game to continue.")
		return
	}

	resp := guessResponse{Correct: correct}
	if correct {
		resp.CharacterName = character.Name
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReveal(w http.ResponseWriter, r *http.Request) {
	tab, err := strconv.Atoi(r.URL.Query().Get("tab"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid tab index.")
		return
	}
	character, err := game.CharacterAt(tab)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid tab index.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"characterName": character.Name})
}

func (s *Server) handleProviders(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"default":    s.gateway.DefaultProvider(),
		"registered": s.gateway.RegisteredProviders(),
	})
}

func (s *Server) handleSessionState(w http.ResponseWriter, r *http.Request) {
	tab, err := strconv.Atoi(r.URL.Query().Get("tab"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid tab index.")
		return
	}
	session, err := s.sessions.Get(tab)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid tab index.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"state":         session.State().String(),
		"questionsLeft": session.QuestionsLeft(),
	})
}

type sessionResetRequest struct {
	TabIndex *int `json:"tabIndex"`
}

func (s *Server) handleSessionReset(w http.ResponseWriter, r *http.Request) {
	var req sessionResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.TabIndex == nil {
		writeError(w, http.StatusBadRequest, "Invalid tab index.")
		return
	}
	if err := s.sessions.Reset(*req.TabIndex); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid tab index.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
