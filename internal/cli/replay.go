package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/quill"
)

// Replay starts a game and takes the given choices (1-based) in order,
// paging through every sequence before choosing.
func Replay(ctx context.Context, s *quill.Session, choices []int) error {
	if err := s.StartGame(ctx); err != nil {
		return err
	}
	for i, choice := range choices {
		for s.NextPage() {
		}
		if err := s.Choose(ctx, choice-1); err != nil {
			return fmt.Errorf("replay step %d (choice %d) at %q: %w", i+1, choice, s.View().NodeID, err)
		}
	}
	return nil
}
