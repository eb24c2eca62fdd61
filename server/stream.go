package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/vasu-2004/Reverse-Akinator-Game/game"
	"github.com/vasu-2004/Reverse-Akinator-Game/llm"
)

// handleChatStream answers a chat request over server-sent events. Each
// text fragment arrives as a data event; a final "done" event carries the
// assembled answer and its validity. A client disconnect cancels the
// backend call through the request context, releasing the connection.
func (s *Server) handleChatStream(w http.ResponseWriter, r *http.Request) {
	session, messages, question, ok := s.prepareChat(w, r)
	if !ok {
		return
	}

	flusher, canFlush := w.(http.Flusher)
	if !canFlush {
		writeError(w, http.StatusInternalServerError, "Streaming unsupported.")
		return
	}

	chunks, err := s.gateway.Stream(r.Context(), messages, llm.Options{})
	if err != nil {
		if errors.Is(err, llm.ErrUnsupported) {
			writeError(w, http.StatusBadRequest, "The configured provider does not support streaming.")
			return
		}
		s.logger.Error("chat stream failed", "error", err)
		writeError(w, http.StatusInternalServerError, genericProviderError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	var full strings.Builder
	for chunk := range chunks {
		if chunk.Err != nil {
			s.logger.Error("chat stream interrupted", "error", chunk.Err)
			writeSSE(w, "error", map[string]string{"error": genericProviderError})
			flusher.Flush()
			return
		}
		full.WriteString(chunk.Text)
		writeSSE(w, "", map[string]string{"text": chunk.Text})
		flusher.Flush()
	}

	answer := strings.TrimSpace(full.String())
	verdict := game.Classify(answer)

	if _, err := session.RecordExchange(question, answer, verdict.Valid); err != nil &&
		!errors.Is(err, game.ErrSessionOver) {
		s.logger.Error("failed to record exchange", "error", err)
	}

	writeSSE(w, "done", chatResponse{Response: answer, IsValid: verdict.Valid})
	flusher.Flush()
}

// writeSSE emits one server-sent event with a JSON payload. An empty event
// name sends a plain data event.
func writeSSE(w http.ResponseWriter, event string, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		return
	}
	if event != "" {
		fmt.Fprintf(w, "event: %s\n", event)
	}
	fmt.Fprintf(w, "data: %s\n\n", payload)
}
