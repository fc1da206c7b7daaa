package observability_test

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/quill/pkg/domain"
	"github.com/aretw0/quill/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := observability.NewMetrics(reg)
	require.NoError(t, err)

	hooks := m.Hooks()
	ctx := context.Background()

	hooks.OnSequenceLoaded(ctx, &domain.SequenceEvent{Pages: 3, Duration: time.Millisecond})
	hooks.OnSequenceLoaded(ctx, &domain.SequenceEvent{Pages: 1, Ending: true})
	hooks.OnSequenceLoaded(ctx, &domain.SequenceEvent{Pages: 1, Ending: true, Broken: true})
	hooks.OnChoice(ctx, &domain.ChoiceEvent{FromID: "hall"})
	hooks.OnRewind(ctx, &domain.RewindEvent{Degraded: true})
	hooks.OnImage(ctx, &domain.ImageEvent{Fallback: true})
	hooks.OnImage(ctx, &domain.ImageEvent{Stale: true, Fallback: true})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Sequences.WithLabelValues("playing")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Sequences.WithLabelValues("ending")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Sequences.WithLabelValues("broken")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Choices.WithLabelValues("hall")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Rewinds.WithLabelValues("true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Images.WithLabelValues("fallback")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Images.WithLabelValues("stale")))
}

func TestNewMetrics_DoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := observability.NewMetrics(reg)
	require.NoError(t, err)

	_, err = observability.NewMetrics(reg)
	assert.Error(t, err)
}

func TestCombine(t *testing.T) {
	var calls []string
	a := domain.LifecycleHooks{OnChoice: func(context.Context, *domain.ChoiceEvent) { calls = append(calls, "a") }}
	b := domain.LifecycleHooks{OnChoice: func(context.Context, *domain.ChoiceEvent) { calls = append(calls, "b") }}

	hooks := observability.Combine(a, domain.LifecycleHooks{}, b)
	hooks.OnChoice(context.Background(), &domain.ChoiceEvent{})
	hooks.OnRewind(context.Background(), &domain.RewindEvent{})

	assert.Equal(t, []string{"a", "b"}, calls)
}
