package observability_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/aretw0/fundflow"
	"github.com/aretw0/fundflow/pkg/adapters/memory"
	"github.com/aretw0/fundflow/pkg/domain"
	"github.com/aretw0/fundflow/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombine_RunsInOrder(t *testing.T) {
	var calls []string
	a := domain.LifecycleHooks{OnStateEnter: func(context.Context, *domain.StateEvent) { calls = append(calls, "a") }}
	b := domain.LifecycleHooks{
		OnStateEnter: func(context.Context, *domain.StateEvent) { calls = append(calls, "b") },
		OnError:      func(context.Context, *domain.ErrorEvent) { calls = append(calls, "err") },
	}

	h := observability.Combine(a, domain.LifecycleHooks{}, b)
	h.OnStateEnter(context.Background(), &domain.StateEvent{})
	h.OnError(context.Background(), &domain.ErrorEvent{})

	assert.Equal(t, []string{"a", "b", "err"}, calls)
	assert.Nil(t, h.OnStateLeave)
}

func TestMetrics_Interview(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)

	rec := memory.NewRecorder()
	engine, err := fundflow.New(rec, fundflow.WithLifecycleHooks(m.Hooks()))
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, engine.Start(ctx))
	require.NoError(t, engine.Handle(ctx, rec.Choices()[0].Event))
	require.NoError(t, engine.Handle(ctx, domain.InputSubmitted{Key: domain.AnswerGoal, Raw: "  "}))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.StateEntries().WithLabelValues("start")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StateEntries().WithLabelValues("ask_goal")))

	count, err := testutil.GatherAndCount(reg, "fundflow_rejected_inputs_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMetrics_Computation(t *testing.T) {
	reg := prometheus.NewRegistry()
	h := observability.NewMetrics(reg).Hooks()

	h.OnAdvisorReturn(context.Background(), &domain.AdvisorEvent{StateID: domain.StatePlanning, Degraded: true, Duration: 20 * time.Millisecond})
	h.OnError(context.Background(), &domain.ErrorEvent{})

	count, err := testutil.GatherAndCount(reg, "fundflow_computation_duration_seconds", "fundflow_flow_errors_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestLoggingHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	h := observability.LoggingHooks(logger)
	ctx := context.Background()

	h.OnStateEnter(ctx, &domain.StateEvent{StateID: domain.StateStart})
	assert.Empty(t, buf.String(), "transitions log at debug")

	h.OnAdvisorReturn(ctx, &domain.AdvisorEvent{StateID: domain.StatePlanning, Degraded: true})
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "state=ai_planner")

	h.OnError(ctx, &domain.ErrorEvent{Err: domain.ErrUnknownState})
	assert.Contains(t, buf.String(), "level=ERROR")
}
