package game

import (
	"errors"
	"sync"

	"github.com/vasu-2004/Reverse-Akinator-Game/llm"
)

// State is a session's position in the game state machine.
type State int

const (
	StateActive State = iota
	StateWon
	StateLost
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	}
	return "unknown"
}

// Question budgets per difficulty.
const (
	BudgetEasy   = 20
	BudgetMedium = 15
	BudgetHard   = 10

	// DefaultWrongGuessPenalty is the number of questions a wrong guess
	// costs.
	DefaultWrongGuessPenalty = 1
)

// ErrSessionOver reports a question or guess fed into a terminal session.
var ErrSessionOver = errors.New("game: session has ended")

// Session is the per-game bookkeeping for one hidden character: the
// ordered transcript, the remaining question budget, and the state
// machine Active -> {Active, Won, Lost}. Won and Lost are terminal.
//
// The mutex serializes turns: the gateway layer does not guard against two
// concurrent questions racing to append to one transcript, so the session
// owner allows one in-flight turn at a time.
type Session struct {
	mu sync.Mutex

	character     Character
	transcript    []llm.Message
	questionsLeft int
	penalty       int
	state         State
}

// NewSession starts a session for a character with the given question
// budget and wrong-guess penalty.
func NewSession(c Character, budget, penalty int) *Session {
	if budget <= 0 {
		budget = BudgetMedium
	}
	if penalty < 0 {
		penalty = 0
	}
	return &Session{
		character:     c,
		questionsLeft: budget,
		penalty:       penalty,
	}
}

// Character returns the session's hidden character.
func (s *Session) Character() Character {
	return s.character
}

// State returns the current game state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// QuestionsLeft returns the remaining question budget.
func (s *Session) QuestionsLeft() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.questionsLeft
}

// Transcript returns a copy of the ordered message log.
func (s *Session) Transcript() []llm.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]llm.Message, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// RecordExchange appends a question/answer pair to the transcript. A valid
// answer consumes one unit of budget; exhausting the budget loses the
// game. Terminal sessions reject further exchanges.
func (s *Session) RecordExchange(question, answer string, valid bool) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateActive {
		return s.state, ErrSessionOver
	}

	s.transcript = append(s.transcript,
		llm.Message{Role: llm.RoleUser, Content: question},
		llm.Message{Role: llm.RoleAssistant, Content: answer},
	)
	if valid {
		s.questionsLeft--
		if s.questionsLeft <= 0 {
			s.state = StateLost
		}
	}
	return s.state, nil
}

// RecordGuess applies a guess outcome. A correct guess wins; a wrong guess
// costs the configured penalty and may lose the game by exhausting the
// budget. Terminal sessions reject further guesses.
func (s *Session) RecordGuess(correct bool) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateActive {
		return s.state, ErrSessionOver
	}

	if correct {
		s.state = StateWon
		return s.state, nil
	}
	s.questionsLeft -= s.penalty
	if s.questionsLeft <= 0 {
		s.state = StateLost
	}
	return s.state, nil
}

// Store tracks one session per character index.
type Store struct {
	mu       sync.Mutex
	sessions map[int]*Session
	budget   int
	penalty  int
}

// NewStore creates a session store with the given per-session budget and
// wrong-guess penalty.
func NewStore(budget, penalty int) *Store {
	return &Store{
		sessions: make(map[int]*Session),
		budget:   budget,
		penalty:  penalty,
	}
}

// Get returns the session for a character index, starting one if needed.
func (st *Store) Get(index int) (*Session, error) {
	c, err := CharacterAt(index)
	if err != nil {
		return nil, err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	if s, ok := st.sessions[index]; ok {
		return s, nil
	}
	s := NewSession(c, st.budget, st.penalty)
	st.sessions[index] = s
	return s, nil
}

// Reset discards any session for a character index; the next Get starts a
// fresh one.
func (st *Store) Reset(index int) error {
	if _, err := CharacterAt(index); err != nil {
		return err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, index)
	return nil
}
