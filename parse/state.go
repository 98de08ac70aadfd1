package parse

import (
	"github.com/ef-ds/deque"
)

// State is the stream of tokens which remain to be parsed
type State interface {
	Next() (string, bool)   // Remove and return the next token
	Peek() (string, bool)   // Return the next token without removing it
	PushFront(token string) // Insert a token which is returned by the following call to Next
	Len() int               // Number of tokens left
	Drain() []string        // Remove and return all tokens left
	Consumed() int          // Number of tokens taken from the original input
}

// DefaultState is the default implementation of the State interface
type DefaultState struct {
	tokens   *deque.Deque
	inserted int
	consumed int
}

// NewState creates a new State instance with the given argument list
func NewState(args []string) State {
	s := &DefaultState{
		tokens: deque.New(),
	}
	for _, arg := range args {
		s.tokens.PushBack(arg)
	}

	return s
}

// Next removes and returns the next token
func (s *DefaultState) Next() (string, bool) {
	v, ok := s.tokens.PopFront()
	if !ok {
		return "", false
	}
	if s.inserted > 0 {
		s.inserted--
	} else {
		s.consumed++
	}

	return v.(string), true
}

// Peek returns the next token without advancing
func (s *DefaultState) Peek() (string, bool) {
	v, ok := s.tokens.Front()
	if !ok {
		return "", false
	}

	return v.(string), true
}

// PushFront inserts a synthetic token, e.g. the remainder of stacked short flags
func (s *DefaultState) PushFront(token string) {
	s.tokens.PushFront(token)
	s.inserted++
}

// Len returns the number of tokens left
func (s *DefaultState) Len() int {
	return s.tokens.Len()
}

// Drain removes and returns all tokens left
func (s *DefaultState) Drain() []string {
	out := make([]string, 0, s.tokens.Len())
	for {
		token, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, token)
	}
}

// Consumed returns the number of tokens of the original input which have been taken.
// Synthetic tokens inserted with PushFront are not counted.
func (s *DefaultState) Consumed() int {
	return s.consumed
}
