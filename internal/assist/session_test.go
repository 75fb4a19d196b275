package assist

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession() *Session {
	return NewSession(Options{MinQueryLength: 3, MaxSuggestions: 5})
}

// withSuggestions drives a session through one successful suggestion round.
func withSuggestions(t *testing.T, s *Session, query, completion string) {
	t.Helper()
	gen, schedule := s.SetQuery(query)
	require.True(t, schedule)
	ticket, ok := s.DebounceElapsed(gen)
	require.True(t, ok)
	require.True(t, s.Apply(Result{Ticket: ticket, Text: completion}))
}

func TestParseSuggestions(t *testing.T) {
	tests := []struct {
		name string
		text string
		max  int
		want []string
	}{
		{"numbered with blank line", "1. Foo\n2. Bar\n\n3. Baz", 0, []string{"Foo", "Bar", "Baz"}},
		{"plain lines", "Foo\nBar", 0, []string{"Foo", "Bar"}},
		{"whitespace only lines dropped", "Foo\n   \n\t\nBar", 0, []string{"Foo", "Bar"}},
		{"crlf", "1. Foo\r\n2. Bar\r\n", 0, []string{"Foo", "Bar"}},
		{"multi digit numbering", "10.Ten\n11.  Eleven", 0, []string{"Ten", "Eleven"}},
		{"inner numbering kept", "Is 1. a number", 0, []string{"Is 1. a number"}},
		{"capped", "a\nb\nc\nd\ne\nf\ng", 5, []string{"a", "b", "c", "d", "e"}},
		{"empty", "", 5, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSuggestions(tt.text, tt.max))
		})
	}
}

func TestShortQueryClearsAndSkips(t *testing.T) {
	s := newTestSession()
	withSuggestions(t, s, "best pizza", "Foo\nBar")
	require.Len(t, s.Suggestions(), 2)

	for _, q := range []string{"ab", "  ab  ", "", "   "} {
		_, schedule := s.SetQuery(q)
		assert.False(t, schedule, "query %q", q)
		assert.Empty(t, s.Suggestions(), "query %q", q)
	}
	assert.Equal(t, StatusSucceeded, s.Status(OpSuggest))
}

func TestDebounceOnlyFiresForLatestEdit(t *testing.T) {
	s := newTestSession()
	first, _ := s.SetQuery("pyth")
	second, _ := s.SetQuery("python")

	_, ok := s.DebounceElapsed(first)
	assert.False(t, ok)
	assert.False(t, s.Loading())

	ticket, ok := s.DebounceElapsed(second)
	require.True(t, ok)
	assert.Equal(t, OpSuggest, ticket.Op)
	assert.Equal(t, "python", ticket.Text)
	assert.True(t, s.Pending(OpSuggest))
	assert.False(t, s.Pending(OpAnswer))
}

func TestDebounceAfterShorteningDoesNothing(t *testing.T) {
	s := newTestSession()
	s.SetQuery("python")
	gen, schedule := s.SetQuery("py")
	assert.False(t, schedule)

	_, ok := s.DebounceElapsed(gen)
	assert.False(t, ok)
	assert.Empty(t, s.Suggestions())
}

func TestUnchangedQueryDoesNotReschedule(t *testing.T) {
	s := newTestSession()
	gen, schedule := s.SetQuery("python")
	require.True(t, schedule)

	again, schedule := s.SetQuery("python")
	assert.False(t, schedule)
	assert.Equal(t, gen, again)
}

func TestStaleSuggestionResultIsDiscarded(t *testing.T) {
	s := newTestSession()
	gen, _ := s.SetQuery("rust")
	older, _ := s.DebounceElapsed(gen)
	gen, _ = s.SetQuery("rust lang")
	newer, _ := s.DebounceElapsed(gen)

	require.True(t, s.Apply(Result{Ticket: newer, Text: "New A\nNew B"}))
	assert.False(t, s.Apply(Result{Ticket: older, Text: "Old"}))
	assert.Equal(t, []string{"New A", "New B"}, s.Suggestions())
}

func TestStaleResultDoesNotClearPending(t *testing.T) {
	s := newTestSession()
	gen, _ := s.SetQuery("rust")
	older, _ := s.DebounceElapsed(gen)
	gen, _ = s.SetQuery("rust lang")
	s.DebounceElapsed(gen)

	assert.False(t, s.Apply(Result{Ticket: older, Err: errors.New("boom")}))
	assert.True(t, s.Pending(OpSuggest))
	assert.NoError(t, s.Err(OpSuggest))
}

func TestShorteningAbandonsInFlightSuggestions(t *testing.T) {
	s := newTestSession()
	gen, _ := s.SetQuery("golang")
	ticket, _ := s.DebounceElapsed(gen)

	s.SetQuery("go")
	assert.False(t, s.Pending(OpSuggest))
	assert.False(t, s.Apply(Result{Ticket: ticket, Text: "Late"}))
	assert.Empty(t, s.Suggestions())
}

func TestSelectThenProcessSendsSuggestion(t *testing.T) {
	s := newTestSession()
	withSuggestions(t, s, "pasta recipe", "1. Easy pasta recipe\n2. Quick weeknight pasta\n3. Classic carbonara")

	_, schedule, err := s.Select(1)
	require.NoError(t, err)
	assert.True(t, schedule)
	assert.Equal(t, "Quick weeknight pasta", s.Query())

	idx, ok := s.Selected()
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	ticket, err := s.Process()
	require.NoError(t, err)
	assert.Equal(t, OpAnswer, ticket.Op)
	assert.Equal(t, "Quick weeknight pasta", ticket.Text)
}

func TestProcessWithoutSelectionSendsRawQuery(t *testing.T) {
	s := newTestSession()
	raw := "  what's the  weather like on Mars?  "
	s.SetQuery(raw)

	ticket, err := s.Process()
	require.NoError(t, err)
	assert.Equal(t, raw, ticket.Text)
}

func TestProcessRefusesBlankAndBusy(t *testing.T) {
	s := newTestSession()
	_, err := s.Process()
	assert.ErrorIs(t, err, ErrEmptyQuery)
	assert.False(t, s.CanProcess())

	s.SetQuery("why is the sky blue")
	assert.True(t, s.CanProcess())
	_, err = s.Process()
	require.NoError(t, err)

	assert.False(t, s.CanProcess())
	_, err = s.Process()
	assert.ErrorIs(t, err, ErrBusy)
}

func TestSuggestPendingDoesNotBlockProcess(t *testing.T) {
	s := newTestSession()
	gen, _ := s.SetQuery("why is the sky blue")
	s.DebounceElapsed(gen)

	require.True(t, s.Pending(OpSuggest))
	_, err := s.Process()
	assert.NoError(t, err)
	assert.True(t, s.Loading())
}

func TestReplacingSuggestionsResetsSelection(t *testing.T) {
	s := newTestSession()
	withSuggestions(t, s, "learn go", "A one\nB two\nC three")
	gen, _, err := s.Select(2)
	require.NoError(t, err)

	ticket, ok := s.DebounceElapsed(gen)
	require.True(t, ok)
	require.True(t, s.Apply(Result{Ticket: ticket, Text: "X\nY"}))

	_, selected := s.Selected()
	assert.False(t, selected)
	assert.Equal(t, "C three", s.EffectiveQuery())
}

func TestEditingAwayFromSelectionClearsIt(t *testing.T) {
	s := newTestSession()
	withSuggestions(t, s, "learn go", "Learn Go fast\nGo tutorial")
	_, _, err := s.Select(0)
	require.NoError(t, err)

	s.SetQuery("Learn Go fast today")
	_, selected := s.Selected()
	assert.False(t, selected)
	assert.Equal(t, "Learn Go fast today", s.EffectiveQuery())
}

func TestSelectOutOfRange(t *testing.T) {
	s := newTestSession()
	withSuggestions(t, s, "learn go", "only one")

	_, _, err := s.Select(1)
	assert.ErrorIs(t, err, ErrNoSuchSuggestion)
	_, _, err = s.Select(-1)
	assert.ErrorIs(t, err, ErrNoSuchSuggestion)
}

func TestFailureLeavesDataAndClearsPending(t *testing.T) {
	s := newTestSession()
	withSuggestions(t, s, "learn go", "Foo\nBar")

	answer, err := s.Process()
	require.NoError(t, err)
	require.True(t, s.Apply(Result{Ticket: answer, Text: "first answer"}))

	gen, _ := s.SetQuery("learn go deeply")
	suggest, _ := s.DebounceElapsed(gen)
	answer, err = s.Process()
	require.NoError(t, err)
	require.True(t, s.Loading())

	boom := errors.New("network down")
	assert.True(t, s.Apply(Result{Ticket: suggest, Err: boom}))
	assert.True(t, s.Apply(Result{Ticket: answer, Err: boom}))

	assert.Equal(t, []string{"Foo", "Bar"}, s.Suggestions())
	assert.Equal(t, "first answer", s.Answer())
	assert.False(t, s.Loading())
	assert.Equal(t, StatusFailed, s.Status(OpSuggest))
	assert.Equal(t, StatusFailed, s.Status(OpAnswer))
	assert.ErrorIs(t, s.Err(OpAnswer), boom)
}

func TestAnswerStoredVerbatim(t *testing.T) {
	s := newTestSession()
	s.SetQuery("tell me a joke")
	ticket, err := s.Process()
	require.NoError(t, err)

	require.True(t, s.Apply(Result{Ticket: ticket, Text: "  Why did...\n\nBecause.  "}))
	assert.Equal(t, "  Why did...\n\nBecause.  ", s.Answer())
	assert.Equal(t, StatusSucceeded, s.Status(OpAnswer))

	ticket, _ = s.Process()
	require.True(t, s.Apply(Result{Ticket: ticket, Text: ""}))
	assert.Equal(t, "", s.Answer())
}

func TestOpsAreKeyed(t *testing.T) {
	s := newTestSession()
	assert.Equal(t, []Op{OpSuggest, OpAnswer}, s.Ops())
	assert.Equal(t, StatusIdle, s.Status(OpSuggest))

	const opTranslate Op = "translate"
	assert.Equal(t, StatusIdle, s.Status(opTranslate))
	assert.Equal(t, []Op{OpSuggest, OpAnswer, opTranslate}, s.Ops())
}

func TestSuggestionsReturnsCopy(t *testing.T) {
	s := newTestSession()
	withSuggestions(t, s, "learn go", "Foo\nBar")

	got := s.Suggestions()
	got[0] = "mutated"
	assert.Equal(t, "Foo", s.Suggestions()[0])
}

func TestResetDiscardsEarlierRequests(t *testing.T) {
	s := newTestSession()
	gen, _ := s.SetQuery("first question")
	suggest, _ := s.DebounceElapsed(gen)
	answer, err := s.Process()
	require.NoError(t, err)

	s.Reset()
	assert.Equal(t, "", s.Query())
	assert.Empty(t, s.Suggestions())
	assert.False(t, s.Loading())
	_, ok := s.Selected()
	assert.False(t, ok)

	s.SetQuery("second question")
	fresh, err := s.Process()
	require.NoError(t, err)
	assert.NotEqual(t, answer.Seq, fresh.Seq)

	assert.False(t, s.Apply(Result{Ticket: answer, Text: "old answer"}))
	assert.False(t, s.Apply(Result{Ticket: suggest, Text: "Old A\nOld B"}))
	assert.True(t, s.Pending(OpAnswer))
	assert.Equal(t, "", s.Answer())
	assert.Empty(t, s.Suggestions())

	require.True(t, s.Apply(Result{Ticket: fresh, Text: "new answer"}))
	assert.Equal(t, "new answer", s.Answer())
}

func TestResetInvalidatesPendingDebounce(t *testing.T) {
	s := newTestSession()
	gen, _ := s.SetQuery("golang")
	s.Reset()

	_, ok := s.DebounceElapsed(gen)
	assert.False(t, ok)
}
