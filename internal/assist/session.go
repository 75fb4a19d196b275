// Package assist holds the query assistant's state: the query being typed,
// the rephrasings offered for it, the user's pick, and the final answer.
//
// Session is not safe for concurrent use. The UI mutates it from its event
// loop only; completions run elsewhere and come back as Results.
package assist

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/sant0-9/querylens/internal/logx"
)

// Op names an asynchronous operation tracked by a Session.
type Op string

const (
	OpSuggest Op = "suggest"
	OpAnswer  Op = "answer"
)

type Status int

const (
	StatusIdle Status = iota
	StatusPending
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPending:
		return "pending"
	case StatusSucceeded:
		return "done"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

var (
	ErrBusy             = errors.New("answer already in progress")
	ErrEmptyQuery       = errors.New("query is empty")
	ErrNoSuchSuggestion = errors.New("no suggestion at that position")
)

// Ticket identifies one started operation. Only the ticket with the latest
// Seq for its Op may change state when its Result is applied.
type Ticket struct {
	Op   Op
	Seq  uint64
	Text string
}

type Result struct {
	Ticket Ticket
	Text   string
	Err    error
}

type opState struct {
	seq    uint64
	status Status
	err    error
}

type Options struct {
	MinQueryLength int
	MaxSuggestions int
}

type Session struct {
	opts Options

	query       string
	suggestions []string
	selected    int
	answer      string

	// edits counts query changes; a debounce fires only for the latest edit.
	edits uint64

	order []Op
	ops   map[Op]*opState
}

func NewSession(opts Options) *Session {
	s := &Session{
		opts:     opts,
		selected: -1,
		ops:      make(map[Op]*opState),
	}
	s.op(OpSuggest)
	s.op(OpAnswer)
	return s
}

func (s *Session) op(op Op) *opState {
	st, ok := s.ops[op]
	if !ok {
		st = &opState{}
		s.ops[op] = st
		s.order = append(s.order, op)
	}
	return st
}

func (s *Session) Query() string {
	return s.query
}

func (s *Session) Suggestions() []string {
	return append([]string(nil), s.suggestions...)
}

// Selected returns the selected suggestion index, if any.
func (s *Session) Selected() (int, bool) {
	return s.selected, s.selected >= 0
}

func (s *Session) Answer() string {
	return s.answer
}

// Ops lists tracked operations in registration order.
func (s *Session) Ops() []Op {
	return append([]Op(nil), s.order...)
}

func (s *Session) Status(op Op) Status {
	return s.op(op).status
}

// Err returns the error from op's last failed attempt.
func (s *Session) Err(op Op) error {
	return s.op(op).err
}

func (s *Session) Pending(op Op) bool {
	return s.op(op).status == StatusPending
}

// Loading reports whether any operation is in flight.
func (s *Session) Loading() bool {
	for _, st := range s.ops {
		if st.status == StatusPending {
			return true
		}
	}
	return false
}

// CanProcess reports whether Process would start a request.
func (s *Session) CanProcess() bool {
	return !s.Pending(OpAnswer) && strings.TrimSpace(s.EffectiveQuery()) != ""
}

func (s *Session) tooShort(q string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(q)) < s.opts.MinQueryLength
}

// SetQuery records an edit. It returns the edit generation to hand back to
// DebounceElapsed and whether a debounce should be scheduled at all. A query
// below the minimum length clears the suggestions immediately and abandons
// any suggestion request still in flight.
func (s *Session) SetQuery(q string) (uint64, bool) {
	if q == s.query {
		return s.edits, false
	}
	s.query = q
	s.edits++

	if s.selected >= 0 && s.suggestions[s.selected] != q {
		s.selected = -1
	}

	if s.tooShort(q) {
		s.suggestions = nil
		s.selected = -1
		s.abandon(OpSuggest)
		return s.edits, false
	}
	return s.edits, true
}

// DebounceElapsed starts a suggestion request if gen is still the latest edit.
func (s *Session) DebounceElapsed(gen uint64) (Ticket, bool) {
	if gen != s.edits {
		return Ticket{}, false
	}
	if s.tooShort(s.query) {
		s.suggestions = nil
		s.selected = -1
		return Ticket{}, false
	}
	return s.begin(OpSuggest, s.query), true
}

// Select picks suggestion i and copies it into the query, which counts as an edit.
func (s *Session) Select(i int) (uint64, bool, error) {
	if i < 0 || i >= len(s.suggestions) {
		return s.edits, false, ErrNoSuchSuggestion
	}
	s.selected = i
	gen, schedule := s.SetQuery(s.suggestions[i])
	return gen, schedule, nil
}

// EffectiveQuery is the selected suggestion when there is one, else the raw query.
func (s *Session) EffectiveQuery() string {
	if s.selected >= 0 {
		return s.suggestions[s.selected]
	}
	return s.query
}

// Process starts an answer request for the effective query.
func (s *Session) Process() (Ticket, error) {
	if s.Pending(OpAnswer) {
		return Ticket{}, ErrBusy
	}
	q := s.EffectiveQuery()
	if strings.TrimSpace(q) == "" {
		return Ticket{}, ErrEmptyQuery
	}
	return s.begin(OpAnswer, q), nil
}

// Reset clears the query, suggestions, selection and answer. Sequence
// numbers keep counting, so results of requests started before the reset
// are discarded when they arrive.
func (s *Session) Reset() {
	s.query = ""
	s.suggestions = nil
	s.selected = -1
	s.answer = ""
	s.edits++
	for _, op := range s.order {
		st := s.ops[op]
		st.seq++
		st.status = StatusIdle
		st.err = nil
	}
}

func (s *Session) begin(op Op, text string) Ticket {
	st := s.op(op)
	st.seq++
	st.status = StatusPending
	st.err = nil
	return Ticket{Op: op, Seq: st.seq, Text: text}
}

// abandon makes any in-flight request for op stale.
func (s *Session) abandon(op Op) {
	st := s.op(op)
	if st.status == StatusPending {
		st.seq++
		st.status = StatusIdle
	}
}

// Apply folds a finished request into the session. Results from superseded
// tickets are dropped and Apply returns false.
func (s *Session) Apply(r Result) bool {
	st := s.op(r.Ticket.Op)
	if r.Ticket.Seq != st.seq {
		logx.Debug().
			Str("op", string(r.Ticket.Op)).
			Uint64("seq", r.Ticket.Seq).
			Uint64("latest", st.seq).
			Msg("discarding stale result")
		return false
	}

	if r.Err != nil {
		st.status = StatusFailed
		st.err = r.Err
		return true
	}

	st.status = StatusSucceeded
	switch r.Ticket.Op {
	case OpSuggest:
		s.suggestions = ParseSuggestions(r.Text, s.opts.MaxSuggestions)
		s.selected = -1
	case OpAnswer:
		s.answer = r.Text
	}
	return true
}
