package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/quill/pkg/domain"
)

// Combine fans every event out to each hook set, in order.
func Combine(sets ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnSequenceLoaded: func(ctx context.Context, e *domain.SequenceEvent) {
			for _, h := range sets {
				if h.OnSequenceLoaded != nil {
					h.OnSequenceLoaded(ctx, e)
				}
			}
		},
		OnChoice: func(ctx context.Context, e *domain.ChoiceEvent) {
			for _, h := range sets {
				if h.OnChoice != nil {
					h.OnChoice(ctx, e)
				}
			}
		},
		OnRewind: func(ctx context.Context, e *domain.RewindEvent) {
			for _, h := range sets {
				if h.OnRewind != nil {
					h.OnRewind(ctx, e)
				}
			}
		},
		OnImage: func(ctx context.Context, e *domain.ImageEvent) {
			for _, h := range sets {
				if h.OnImage != nil {
					h.OnImage(ctx, e)
				}
			}
		},
	}
}

// LogHooks writes one debug line per lifecycle event.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnSequenceLoaded: func(ctx context.Context, e *domain.SequenceEvent) {
			logger.DebugContext(ctx, "sequence loaded",
				"session_id", e.SessionID,
				"start_id", e.StartID,
				"final_id", e.FinalID,
				"pages", e.Pages,
				"broken", e.Broken,
				"duration", e.Duration)
		},
		OnChoice: func(ctx context.Context, e *domain.ChoiceEvent) {
			logger.DebugContext(ctx, "choice taken", "session_id", e.SessionID, "from", e.FromID, "index", e.Index, "target", e.Target)
		},
		OnRewind: func(ctx context.Context, e *domain.RewindEvent) {
			logger.DebugContext(ctx, "rewind", "session_id", e.SessionID, "target", e.TargetID, "degraded", e.Degraded)
		},
		OnImage: func(ctx context.Context, e *domain.ImageEvent) {
			logger.DebugContext(ctx, "image settled", "session_id", e.SessionID, "seed", e.Seed, "fallback", e.Fallback, "stale", e.Stale)
		},
	}
}
