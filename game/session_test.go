package game

import (
	"errors"
	"testing"

	"github.com/vasu-2004/Reverse-Akinator-Game/llm"
)

func testCharacter() Character {
	return Character{ID: 0, Name: "Test Subject", Label: "Alpha", Icon: "star", Color: "#fff", Bio: "bio"}
}

func TestSession_ValidAnswerConsumesBudget(t *testing.T) {
	s := NewSession(testCharacter(), 3, DefaultWrongGuessPenalty)

	state, err := s.RecordExchange("Is it a person?", "Yes.", true)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if state != StateActive {
		t.Errorf("Expected active state, got %s", state)
	}
	if s.QuestionsLeft() != 2 {
		t.Errorf("Expected 2 questions left, got %d", s.QuestionsLeft())
	}
}

func TestSession_InvalidAnswerIsFree(t *testing.T) {
	s := NewSession(testCharacter(), 3, DefaultWrongGuessPenalty)

	if _, err := s.RecordExchange("Tell me everything.", "Invalid question — please ask a yes/no question.", false); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if s.QuestionsLeft() != 3 {
		t.Errorf("Expected budget untouched by an invalid answer, got %d", s.QuestionsLeft())
	}
	// The exchange still lands in the transcript.
	if got := len(s.Transcript()); got != 2 {
		t.Errorf("Expected 2 transcript entries, got %d", got)
	}
}

func TestSession_BudgetExhaustionLoses(t *testing.T) {
	s := NewSession(testCharacter(), 2, DefaultWrongGuessPenalty)

	if state, _ := s.RecordExchange("q1", "Yes.", true); state != StateActive {
		t.Fatalf("Expected active after first question, got %s", state)
	}
	state, err := s.RecordExchange("q2", "No.", true)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if state != StateLost {
		t.Errorf("Expected lost on budget exhaustion, got %s", state)
	}

	// Terminal sessions reject further exchanges.
	if _, err := s.RecordExchange("q3", "Yes.", true); !errors.Is(err, ErrSessionOver) {
		t.Errorf("Expected ErrSessionOver, got: %v", err)
	}
}

func TestSession_CorrectGuessWins(t *testing.T) {
	s := NewSession(testCharacter(), 5, DefaultWrongGuessPenalty)

	state, err := s.RecordGuess(true)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if state != StateWon {
		t.Errorf("Expected won, got %s", state)
	}
	if _, err := s.RecordGuess(true); !errors.Is(err, ErrSessionOver) {
		t.Errorf("Expected ErrSessionOver after win, got: %v", err)
	}
}

func TestSession_WrongGuessPenalty(t *testing.T) {
	s := NewSession(testCharacter(), 2, 1)

	state, err := s.RecordGuess(false)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if state != StateActive {
		t.Errorf("Expected active after first wrong guess, got %s", state)
	}
	if s.QuestionsLeft() != 1 {
		t.Errorf("Expected penalty of 1, got %d questions left", s.QuestionsLeft())
	}

	// A wrong guess can lose the game by exhausting the budget.
	state, _ = s.RecordGuess(false)
	if state != StateLost {
		t.Errorf("Expected lost after budget exhaustion, got %s", state)
	}
}

func TestSession_ZeroPenaltyGuessesAreFree(t *testing.T) {
	s := NewSession(testCharacter(), 2, 0)

	for i := 0; i < 5; i++ {
		state, err := s.RecordGuess(false)
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if state != StateActive {
			t.Fatalf("Expected active with zero penalty, got %s", state)
		}
	}
	if s.QuestionsLeft() != 2 {
		t.Errorf("Expected budget untouched, got %d", s.QuestionsLeft())
	}
}

func TestSession_DefaultBudget(t *testing.T) {
	s := NewSession(testCharacter(), 0, DefaultWrongGuessPenalty)
	if s.QuestionsLeft() != BudgetMedium {
		t.Errorf("Expected medium budget fallback, got %d", s.QuestionsLeft())
	}
}

func TestSession_TranscriptIsCopy(t *testing.T) {
	s := NewSession(testCharacter(), 5, DefaultWrongGuessPenalty)
	s.RecordExchange("q", "Yes.", true)

	transcript := s.Transcript()
	transcript[0] = llm.Message{Role: llm.RoleUser, Content: "tampered"}

	if s.Transcript()[0].Content != "q" {
		t.Error("Expected transcript mutation not to affect the session")
	}
}

func TestStore_GetAndReset(t *testing.T) {
	st := NewStore(BudgetMedium, DefaultWrongGuessPenalty)

	first, err := st.Get(0)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	again, err := st.Get(0)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if first != again {
		t.Error("Expected the same session for repeated Get")
	}

	other, err := st.Get(1)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if other == first {
		t.Error("Expected distinct sessions per character index")
	}

	if err := st.Reset(0); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	fresh, err := st.Get(0)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if fresh == first {
		t.Error("Expected a fresh session after reset")
	}
}

func TestStore_InvalidIndex(t *testing.T) {
	st := NewStore(BudgetMedium, DefaultWrongGuessPenalty)

	if _, err := st.Get(-1); err == nil {
		t.Error("Expected error for negative index")
	}
	if _, err := st.Get(len(Characters)); err == nil {
		t.Error("Expected error for out-of-range index")
	}
	if err := st.Reset(-1); err == nil {
		t.Error("Expected error for negative reset index")
	}
}
