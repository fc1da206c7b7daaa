package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/quill/pkg/domain"
	"github.com/aretw0/quill/pkg/ports"
	"github.com/google/uuid"
)

const (
	DefaultRootNode     = "start"
	DefaultImageTimeout = 30 * time.Second
)

// MissingCredentialHint is shown when image generation is enabled without a provider.
const MissingCredentialHint = "API Key not found. This application requires an API Key for AI services to function. " +
	"Set QUILL_API_KEY (or API_KEY) in the environment, or disable image generation."

// Session owns the traversal state of one playthrough.
// All commands are safe for concurrent use; a resolution in flight blocks other
// resolving commands with domain.ErrResolutionInFlight.
type Session struct {
	id            string
	graph         *Graph
	root          string
	images        ports.ImageProvider
	imagesEnabled bool
	imageTimeout  time.Duration
	hooks         domain.LifecycleHooks
	logger        *slog.Logger
	configErr     error

	ctx    context.Context
	cancel context.CancelFunc

	mu         sync.Mutex
	status     domain.Status
	loading    bool
	pointer    string
	history    *History
	pages      Pagination
	generation uint64
	sequenceID string
	imageURL   *string
	imageToken uint64
	errText    string

	// inflight counts image requests; settled closes when it drops to zero.
	inflight int
	settled  chan struct{}
}

var closedChan = func() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()

// SessionOption defines a functional option for configuring a Session.
type SessionOption func(*Session)

// WithRootNode sets the scene a new game starts from.
func WithRootNode(id string) SessionOption {
	return func(s *Session) {
		if id != "" {
			s.root = id
		}
	}
}

// WithImageProvider sets the provider used when image generation is enabled.
func WithImageProvider(p ports.ImageProvider) SessionOption {
	return func(s *Session) {
		s.images = p
	}
}

// WithImageGeneration toggles calls to the image provider.
// When disabled, pages get a deterministic placeholder instead.
func WithImageGeneration(enabled bool) SessionOption {
	return func(s *Session) {
		s.imagesEnabled = enabled
	}
}

// WithImageTimeout bounds each image request.
func WithImageTimeout(d time.Duration) SessionOption {
	return func(s *Session) {
		if d > 0 {
			s.imageTimeout = d
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) SessionOption {
	return func(s *Session) {
		s.hooks = hooks
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSession creates a session in the menu state, or in the error state when
// image generation is enabled without a provider.
func NewSession(g *Graph, opts ...SessionOption) *Session {
	s := &Session{
		id:           uuid.New().String(),
		graph:        g,
		root:         DefaultRootNode,
		imageTimeout: DefaultImageTimeout,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		status:       domain.StatusMenu,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.logger = s.logger.With("session_id", s.id)
	s.history = NewHistory(s.logger)
	s.ctx, s.cancel = context.WithCancel(context.Background())

	if s.imagesEnabled && s.images == nil {
		s.configErr = &domain.ConfigurationError{Setting: "api_key", Hint: MissingCredentialHint}
		s.status = domain.StatusError
		s.errText = s.configErr.Error()
	}
	return s
}

// ID returns the session identifier used in logs and events.
func (s *Session) ID() string { return s.id }

// Root returns the scene a new game starts from.
func (s *Session) Root() string { return s.root }

// StartGame clears all progress and resolves the opening sequence from the root.
func (s *Session) StartGame(ctx context.Context) error {
	s.mu.Lock()
	if s.configErr != nil {
		s.status = domain.StatusError
		s.errText = s.configErr.Error()
		s.mu.Unlock()
		return s.configErr
	}
	if s.loading {
		s.mu.Unlock()
		return domain.ErrResolutionInFlight
	}
	s.history.Reset()
	s.pointer = s.root
	gen := s.beginLoading()
	s.mu.Unlock()

	start := time.Now()
	chain, err := ResolveForward(ctx, s.graph, s.root, s.logger)
	s.finish(ctx, gen, s.root, chain, err, time.Since(start))
	return nil
}

// ResetChapter restarts the story from the root with cleared history.
func (s *Session) ResetChapter(ctx context.Context) error {
	return s.StartGame(ctx)
}

// Choose takes the choice at index from the last page of the current sequence.
func (s *Session) Choose(ctx context.Context, index int) error {
	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return domain.ErrResolutionInFlight
	}
	if s.status != domain.StatusPlaying {
		status := s.status
		s.mu.Unlock()
		return fmt.Errorf("%w: cannot choose while %s", domain.ErrInvalidState, status)
	}
	if !s.pages.IsLastPage() {
		s.mu.Unlock()
		return fmt.Errorf("%w: choices are only offered on the last page", domain.ErrChoiceUnavailable)
	}
	final := s.pages.Final()
	if index < 0 || index >= len(final.Choices) {
		s.mu.Unlock()
		return fmt.Errorf("%w: index %d out of range", domain.ErrChoiceUnavailable, index)
	}
	target := final.Choices[index].Target
	if target == "" {
		s.mu.Unlock()
		return fmt.Errorf("%w: choice %d has no target", domain.ErrChoiceUnavailable, index)
	}

	s.history.RecordChoice(final.ID)
	s.pointer = target
	gen := s.beginLoading()
	s.mu.Unlock()

	if s.hooks.OnChoice != nil {
		s.hooks.OnChoice(ctx, &domain.ChoiceEvent{
			EventBase: s.event(domain.EventChoice),
			FromID:    final.ID,
			Index:     index,
			Target:    target,
		})
	}

	start := time.Now()
	chain, err := ResolveForward(ctx, s.graph, target, s.logger)
	s.finish(ctx, gen, target, chain, err, time.Since(start))
	return nil
}

// RewindTo returns to a previously reached decision point.
// The lead-in pages are reconstructed and the cursor lands on the target.
func (s *Session) RewindTo(ctx context.Context, nodeID string) error {
	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return domain.ErrResolutionInFlight
	}
	if s.status != domain.StatusPlaying && s.status != domain.StatusEnded {
		status := s.status
		s.mu.Unlock()
		return fmt.Errorf("%w: cannot rewind while %s", domain.ErrInvalidState, status)
	}
	s.history.RewindTo(nodeID, s.root)
	maxAchieved := s.history.MaxAchieved()
	s.pointer = nodeID
	gen := s.beginLoading()
	s.mu.Unlock()

	start := time.Now()
	rw, err := ResolveRewind(ctx, s.graph, nodeID, s.root, maxAchieved, s.logger)

	var chain *Chain
	if err == nil {
		chain = &rw.Chain
		if s.hooks.OnRewind != nil {
			s.hooks.OnRewind(ctx, &domain.RewindEvent{
				EventBase: s.event(domain.EventRewind),
				TargetID:  nodeID,
				Degraded:  rw.Degraded,
			})
		}
	}
	s.finish(ctx, gen, nodeID, chain, err, time.Since(start))
	return nil
}

// NextPage advances one page. It reports whether the cursor moved.
func (s *Session) NextPage() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loading || !s.pages.Next() {
		return false
	}
	s.onCursorMoved()
	return true
}

// PreviousPage goes back one page. It reports whether the cursor moved.
func (s *Session) PreviousPage() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loading || !s.pages.Previous() {
		return false
	}
	s.onCursorMoved()
	return true
}

// ReturnToMenu abandons the current sequence from any state.
// In-flight resolutions and image requests are discarded when they settle.
func (s *Session) ReturnToMenu() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.loading = false
	s.status = domain.StatusMenu
	s.errText = ""
	s.pages.Reset()
	s.sequenceID = ""
	s.clearImage()
}

// Close cancels outstanding image requests and waits for them to settle.
func (s *Session) Close() {
	s.cancel()
	<-s.pending()
}

// Wait blocks until outstanding image requests settle or ctx is done.
func (s *Session) Wait(ctx context.Context) error {
	ch := s.pending()
	select {
	case <-ch:
		return nil
	default:
	}
	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// pending returns a channel closed once no image request is in flight.
func (s *Session) pending() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inflight == 0 {
		return closedChan
	}
	return s.settled
}

func (s *Session) settle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight--
	if s.inflight == 0 {
		close(s.settled)
	}
}

// beginLoading enters the loading state and returns the generation the resolution belongs to.
// Callers must hold s.mu.
func (s *Session) beginLoading() uint64 {
	s.generation++
	s.loading = true
	s.status = domain.StatusLoading
	s.errText = ""
	s.pages.Reset()
	s.sequenceID = ""
	s.clearImage()
	return s.generation
}

// finish applies a resolution result unless it was superseded.
func (s *Session) finish(ctx context.Context, gen uint64, startID string, chain *Chain, err error, took time.Duration) {
	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		s.logger.Debug("discarding superseded resolution", "start_id", startID)
		return
	}

	broken := false
	if err != nil {
		broken = true
		missing, ok := missingNodeID(err)
		if !ok {
			missing = startID
		}
		s.logger.Error("sequence resolution failed", "start_id", startID, "error", err)

		final := domain.BrokenSequenceNode(missing)
		chain = &Chain{Pages: []domain.Page{domain.PageOf(final)}, Final: final}
		s.errText = err.Error()
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			s.errText = "resolution cancelled: " + err.Error()
		}
	} else {
		s.pointer = chain.Final.ID
	}

	s.loading = false
	s.pages.Load(chain.Pages, chain.Final, chain.Cursor)
	if chain.Final.Ending {
		s.status = domain.StatusEnded
	} else {
		s.status = domain.StatusPlaying
	}
	s.sequenceID = uuid.New().String()
	s.onCursorMoved()
	event := &domain.SequenceEvent{
		EventBase: s.event(domain.EventSequenceLoaded),
		StartID:   startID,
		FinalID:   chain.Final.ID,
		Pages:     len(chain.Pages),
		Ending:    chain.Final.Ending,
		Broken:    broken,
		Duration:  took,
	}
	s.mu.Unlock()

	s.logger.Debug("sequence loaded", "start_id", startID, "final_id", event.FinalID, "pages", event.Pages)
	if s.hooks.OnSequenceLoaded != nil {
		s.hooks.OnSequenceLoaded(ctx, event)
	}
}

func (s *Session) event(t domain.EventType) domain.EventBase {
	return domain.EventBase{Timestamp: time.Now(), Type: t, SessionID: s.id}
}

// onCursorMoved refreshes the image slot: only the first page of a sequence is illustrated.
// Callers must hold s.mu.
func (s *Session) onCursorMoved() {
	s.clearImage()
	if s.pages.Cursor() != 0 {
		return
	}
	page, ok := s.pages.Current()
	if !ok || page.ImageSeed == "" {
		return
	}

	if !s.imagesEnabled || s.images == nil {
		url := PlaceholderURL(page.ImageSeed)
		s.imageURL = &url
		return
	}
	s.requestImage(page.ImageSeed)
}

// clearImage empties the slot and invalidates any pending request.
// Callers must hold s.mu.
func (s *Session) clearImage() {
	s.imageURL = nil
	s.imageToken++
}

// requestImage fetches an illustration in the background, tagged with the current
// sequence and request token. Callers must hold s.mu.
func (s *Session) requestImage(seed string) {
	seq, token := s.sequenceID, s.imageToken

	if s.inflight == 0 {
		s.settled = make(chan struct{})
	}
	s.inflight++
	go func() {
		defer s.settle()

		start := time.Now()
		ctx, cancel := context.WithTimeout(s.ctx, s.imageTimeout)
		url, err := s.images.Generate(ctx, seed)
		cancel()

		fallback := false
		if err == nil && url == "" {
			err = domain.ErrImageUnavailable
		}
		if err != nil {
			fallback = true
			s.logger.Warn("image generation failed, using placeholder",
				"error", &domain.ImageGenerationError{Seed: seed, Cause: err})
			url = PlaceholderURL(seed)
		}

		s.mu.Lock()
		stale := s.ctx.Err() != nil || s.sequenceID != seq || s.imageToken != token
		if !stale {
			s.imageURL = &url
		}
		s.mu.Unlock()

		if stale {
			s.logger.Debug("discarding stale image", "seed", seed)
		}
		if s.hooks.OnImage != nil {
			s.hooks.OnImage(s.ctx, &domain.ImageEvent{
				EventBase: s.event(domain.EventImage),
				Seed:      seed,
				Fallback:  fallback,
				Stale:     stale,
				Duration:  time.Since(start),
			})
		}
	}()
}
