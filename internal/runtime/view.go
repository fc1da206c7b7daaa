package runtime

import (
	"fmt"
	"slices"

	"github.com/aretw0/quill/pkg/domain"
)

// View returns a snapshot of what should be on screen.
func (s *Session) View() domain.View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := domain.View{
		Status:  s.status,
		Loading: s.loading,
		Error:   s.errText,
	}

	page, ok := s.pages.Current()
	if !ok {
		return v
	}

	v.NodeID = page.NodeID
	v.Text = page.Text
	if s.imageURL != nil {
		url := *s.imageURL
		v.ImageURL = &url
	}
	v.PageIndex = s.pages.Cursor()
	v.PageCount = s.pages.Len()
	v.HasPrevious = v.PageIndex > 0
	v.HasNext = v.PageIndex < v.PageCount-1

	if s.pages.IsLastPage() {
		final := s.pages.Final()
		if final.Ending {
			v.Ending = true
			v.EndingType = final.EndingType
			v.Message = final.Message
			v.Won = final.Won()
		} else {
			v.Choices = slices.Clone(final.Choices)
		}
	}
	return v
}

// Timeline lists the rewindable decision points of the furthest path reached.
// Before any choice is made it holds only the root.
func (s *Session) Timeline() []domain.TimelineEntry {
	s.mu.Lock()
	ids := s.history.MaxAchieved()
	pointer := s.pointer
	s.mu.Unlock()

	if len(ids) == 0 {
		ids = []string{s.root}
	}

	entries := make([]domain.TimelineEntry, 0, len(ids))
	for i, id := range ids {
		title := fmt.Sprintf("Scene %d", i+1)
		if node, err := s.graph.Node(id); err == nil && node.Title != "" {
			title = node.Title
		}
		entries = append(entries, domain.TimelineEntry{
			Index:   i,
			NodeID:  id,
			Title:   title,
			Current: id == pointer,
		})
	}
	return entries
}

// Status returns the top-level state.
func (s *Session) Status() domain.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Pointer returns the progression pointer: the scene the player is at or heading to.
func (s *Session) Pointer() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pointer
}

// GameplayHistory returns the decision points of the current playthrough.
func (s *Session) GameplayHistory() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Gameplay()
}

// MaxAchievedHistory returns the furthest path reached in this session.
func (s *Session) MaxAchievedHistory() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.MaxAchieved()
}
