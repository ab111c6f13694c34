package diag

import "nvgtls/internal/source"

// Sessions is a stack of diagnostic bags. Every pipeline run launches its own
// session; a nested run (include resolution) pushes another one on top, so the
// outer run keeps accumulating into its own bag once the nested one completes.
//
// Sessions is owned by the inspector that drives it and is not safe for
// concurrent use.
type Sessions struct {
	stack []*Bag
	max   int
}

// NewSessions creates an empty stack. max limits each session's bag (0 = unlimited).
func NewSessions(max int) *Sessions {
	return &Sessions{max: max}
}

// Launch pushes a new empty session and makes it current.
func (s *Sessions) Launch() {
	s.stack = append(s.stack, NewBag(s.max))
}

// Complete pops the current session and returns its diagnostics. The previous
// session, if any, becomes current again. Completing without a session returns nil.
func (s *Sessions) Complete() []Diagnostic {
	if len(s.stack) == 0 {
		return nil
	}
	top := s.stack[len(s.stack)-1]
	s.stack[len(s.stack)-1] = nil
	s.stack = s.stack[:len(s.stack)-1]
	return top.Items()
}

// Depth returns the number of open sessions.
func (s *Sessions) Depth() int {
	return len(s.stack)
}

// AddError appends an Error diagnostic to the current session.
func (s *Sessions) AddError(loc source.Location, msg string) {
	s.Report(UnknownCode, SevError, loc, msg)
}

// Report implements Reporter. Diagnostics raised outside any session are dropped.
func (s *Sessions) Report(code Code, sev Severity, loc source.Location, msg string) {
	if len(s.stack) == 0 {
		return
	}
	s.stack[len(s.stack)-1].Add(New(sev, code, loc, msg))
}
