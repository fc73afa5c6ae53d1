package client

import (
	"sync"

	"github.com/denoise-ai/denoise/client/internal/types"
)

// State holds the transient per-process UI slices: the chat transcript, the
// last generated report, and the last generated podcast. It is owned by the
// running client instance, starts empty, is never persisted, and is reset by
// SessionSync at every identity boundary.
type State struct {
	mu          sync.Mutex
	chatHistory []types.Message
	report      *types.Report
	podcast     types.Podcast
}

// NewState returns an empty state container.
func NewState() *State {
	return &State{}
}

// ChatHistory returns a copy of the transcript.
func (s *State) ChatHistory() []types.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.Message, len(s.chatHistory))
	copy(out, s.chatHistory)
	return out
}

// AppendMessage adds one turn to the transcript.
func (s *State) AppendMessage(m types.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chatHistory = append(s.chatHistory, m)
}

// SetChatHistory replaces the transcript.
func (s *State) SetChatHistory(ms []types.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chatHistory = make([]types.Message, len(ms))
	copy(s.chatHistory, ms)
}

// Report returns the last generated report, or nil.
func (s *State) Report() *types.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.report == nil {
		return nil
	}
	r := *s.report
	return &r
}

// SetReport stores the last generated report.
func (s *State) SetReport(r *types.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r == nil {
		s.report = nil
		return
	}
	cp := *r
	s.report = &cp
}

// Podcast returns the last generated podcast.
func (s *State) Podcast() types.Podcast {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.podcast
}

// SetPodcast stores the last generated podcast.
func (s *State) SetPodcast(p types.Podcast) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.podcast = p
}

// Reset returns every slice to its initial empty value.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chatHistory = nil
	s.report = nil
	s.podcast = types.Podcast{}
}
