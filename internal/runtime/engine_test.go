package runtime_test

import (
	"context"
	"testing"

	"github.com/aretw0/fundflow/internal/runtime"
	"github.com/aretw0/fundflow/pkg/adapters/memory"
	"github.com/aretw0/fundflow/pkg/advisor"
	"github.com/aretw0/fundflow/pkg/domain"
	"github.com/aretw0/fundflow/pkg/interview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedAdvisor answers every prompt with reply, or degrades when reply is empty.
type scriptedAdvisor struct {
	reply   string
	prompts []domain.Prompt
}

func (s *scriptedAdvisor) Request(_ context.Context, p domain.Prompt) <-chan domain.Result[string] {
	s.prompts = append(s.prompts, p)
	out := make(chan domain.Result[string], 1)
	if s.reply == "" {
		out <- domain.Degraded(advisor.Fallback(p.Text), domain.ErrTransport)
	} else {
		out <- domain.Ok(s.reply)
	}
	close(out)
	return out
}

func newEngine(t *testing.T, opts ...runtime.EngineOption) (*runtime.Engine, *memory.Recorder) {
	t.Helper()
	rec := memory.NewRecorder()
	eng := runtime.NewEngine(interview.MustFlow(), rec, opts...)
	require.NoError(t, eng.Start(context.Background()))
	return eng, rec
}

func press(t *testing.T, eng *runtime.Engine, rec *memory.Recorder, label string) {
	t.Helper()
	for _, c := range rec.Choices() {
		if c.Label == label {
			require.NoError(t, eng.Handle(context.Background(), c.Event))
			return
		}
	}
	t.Fatalf("no choice %q among %v", label, rec.Choices())
}

func submit(t *testing.T, eng *runtime.Engine, rec *memory.Recorder, value string) {
	t.Helper()
	req, ok := rec.Input()
	require.True(t, ok, "no pending input in %s", eng.Current().ID)
	require.NoError(t, eng.Handle(context.Background(), domain.InputSubmitted{Key: req.Key, Raw: value}))
}

// interviewTo drives the canonical path up to the plan result.
func interviewTo(t *testing.T, eng *runtime.Engine, rec *memory.Recorder, funding string) {
	t.Helper()
	press(t, eng, rec, "Yes, let's do it")
	submit(t, eng, rec, "open a new branch")
	submit(t, eng, rec, "6")
	submit(t, eng, rec, "100000")
	submit(t, eng, rec, "60000")
	submit(t, eng, rec, "50000")
	press(t, eng, rec, funding)
}

func TestEngine_Start(t *testing.T) {
	eng, rec := newEngine(t)

	assert.Equal(t, domain.StateStart, eng.Current().ID)
	assert.Equal(t, 10, rec.LastProgress())
	msgs := rec.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, domain.AuthorBot, msgs[0].Author)
	require.Len(t, rec.Choices(), 1)
	assert.Equal(t, domain.StateAskGoal, rec.Choices()[0].Event.Target)
}

func TestEngine_CanonicalPath(t *testing.T) {
	adv := &scriptedAdvisor{reply: "Build a cash reserve first."}
	eng, rec := newEngine(t, runtime.WithAdvisor(adv))

	interviewTo(t, eng, rec, "Self-funded")

	assert.Equal(t, domain.StatePlanResult, eng.Current().ID)
	assert.Equal(t, "self-funded", eng.Session().Answers.Get(domain.AnswerFunding))
	assert.Equal(t, "open a new branch", eng.Session().Answers.Get(domain.AnswerGoal))

	msgs := rec.Messages()
	result := msgs[len(msgs)-1]
	assert.True(t, result.Markdown)
	assert.Contains(t, result.Text, "🤖 **AI Financial Analysis:**")
	assert.Contains(t, result.Text, "Build a cash reserve first.")
	assert.Contains(t, result.Text, "Estimated Budget:** ₹150,000")
	assert.Contains(t, result.Text, "✅ **ACHIEVABLE**")

	require.Len(t, adv.prompts, 1)
	assert.Equal(t, domain.ComputePlan, adv.prompts[0].Purpose)
	assert.Contains(t, adv.prompts[0].Text, "Business Goal: open a new branch")

	labels := []string{}
	for _, c := range rec.Choices() {
		labels = append(labels, c.Label)
	}
	assert.Equal(t, []string{"Get AI Recommendations", "Ask AI Questions", "Start Over"}, labels)
}

func TestEngine_ProgressNonDecreasing(t *testing.T) {
	eng, rec := newEngine(t)
	interviewTo(t, eng, rec, "Business Loan")

	var seen []int
	for _, op := range rec.OpsOf(memory.OpProgress) {
		seen = append(seen, op.Progress)
	}
	assert.Equal(t, []int{10, 25, 40, 55, 70, 85, 95, 100, 100}, seen)
}

func TestEngine_UserEchoes(t *testing.T) {
	eng, rec := newEngine(t)
	press(t, eng, rec, "Yes, let's do it")
	submit(t, eng, rec, "hire 3 staff")

	var user []string
	for _, m := range rec.Messages() {
		if m.Author == domain.AuthorUser {
			user = append(user, m.Text)
		}
	}
	assert.Equal(t, []string{"Yes, let's do it", "hire 3 staff"}, user)
}

func TestEngine_EmptyInputRejected(t *testing.T) {
	eng, rec := newEngine(t)
	press(t, eng, rec, "Yes, let's do it")
	rec.Reset()

	err := eng.Handle(context.Background(), domain.InputSubmitted{Key: domain.AnswerGoal, Raw: "   "})
	require.NoError(t, err)

	assert.Equal(t, domain.StateAskGoal, eng.Current().ID)
	assert.Empty(t, rec.OpsOf(memory.OpProgress), "progress must not advance")
	assert.Empty(t, rec.Messages(), "no user message is appended")
	_, stored := eng.Session().Answers.Lookup(domain.AnswerGoal)
	assert.False(t, stored)

	verrs := rec.OpsOf(memory.OpValidationError)
	require.Len(t, verrs, 1)
	assert.Equal(t, domain.AnswerGoal, verrs[0].Validation.Key)
	assert.ErrorIs(t, verrs[0].Validation, domain.ErrEmptyInput)

	req, ok := rec.Input()
	require.True(t, ok, "input is rendered again")
	assert.Equal(t, domain.AnswerGoal, req.Key)
}

func TestEngine_TransientLifecycle(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{"success", "fine"},
		{"fallback", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng, rec := newEngine(t, runtime.WithAdvisor(&scriptedAdvisor{reply: tt.reply}))
			interviewTo(t, eng, rec, "Self-funded")

			assert.Zero(t, rec.ActiveTransients())

			var kinds []memory.OpKind
			for _, op := range rec.Ops() {
				switch op.Kind {
				case memory.OpTransient, memory.OpRemoveTransient:
					kinds = append(kinds, op.Kind)
				case memory.OpMessage:
					if op.Message.Markdown {
						kinds = append(kinds, op.Kind)
					}
				}
			}
			assert.Equal(t, []memory.OpKind{memory.OpTransient, memory.OpRemoveTransient, memory.OpMessage}, kinds)
			assert.Equal(t, "AI is analyzing your financial data...", rec.OpsOf(memory.OpTransient)[0].Text)
		})
	}
}

func TestEngine_DegradedPlan(t *testing.T) {
	eng, rec := newEngine(t)
	interviewTo(t, eng, rec, "External Funding")

	msgs := rec.Messages()
	text := msgs[len(msgs)-1].Text
	assert.Contains(t, text, "🤖 **AI Financial Plan:**")
	assert.Contains(t, text, advisor.FallbackText(advisor.FallbackPlan))
	assert.Contains(t, text, "EXTERNAL FUNDING")
	assert.Equal(t, domain.StatePlanResult, eng.Current().ID)
}

func TestEngine_RecommendationsFallback(t *testing.T) {
	eng, rec := newEngine(t)
	interviewTo(t, eng, rec, "Self-funded")
	press(t, eng, rec, "Get AI Recommendations")

	msgs := rec.Messages()
	text := msgs[len(msgs)-1].Text
	assert.Contains(t, text, "🎯 **SMART RECOMMENDATIONS:**")
	assert.Contains(t, text, advisor.FallbackText(advisor.FallbackRecommendation))
	assert.Contains(t, text, "PERSONALIZED ACTION PLAN")
	assert.Equal(t, domain.StatePlanResult, eng.Current().ID)
}

func TestEngine_QuestionLoop(t *testing.T) {
	adv := &scriptedAdvisor{reply: "Keep three months of expenses aside."}
	eng, rec := newEngine(t, runtime.WithAdvisor(adv))
	interviewTo(t, eng, rec, "Self-funded")

	press(t, eng, rec, "Ask AI Questions")
	assert.Equal(t, domain.StateFollowUp, eng.Current().ID)
	submit(t, eng, rec, "How big should my reserve be?")

	assert.Equal(t, domain.StateAIResponse, eng.Current().ID)
	msgs := rec.Messages()
	assert.Equal(t, "🤖 **AI Response:**\n\nKeep three months of expenses aside.", msgs[len(msgs)-1].Text)

	last := adv.prompts[len(adv.prompts)-1]
	assert.Equal(t, domain.ComputeAnswer, last.Purpose)
	assert.Contains(t, last.Text, "Question: How big should my reserve be?")

	press(t, eng, rec, "Ask Another Question")
	assert.Equal(t, domain.StateFollowUp, eng.Current().ID)
	submit(t, eng, rec, "And taxes?")
	press(t, eng, rec, "Back to Plan")
	assert.Equal(t, domain.StatePlanResult, eng.Current().ID)
}

func TestEngine_StartOverClearsAnswers(t *testing.T) {
	eng, rec := newEngine(t)
	interviewTo(t, eng, rec, "Business Loan")
	firstID := eng.Session().ID

	press(t, eng, rec, "Start Over")

	assert.Equal(t, domain.StateStart, eng.Current().ID)
	assert.Zero(t, eng.Session().Answers.Len())
	assert.NotEqual(t, firstID, eng.Session().ID)

	press(t, eng, rec, "Yes, let's do it")
	submit(t, eng, rec, "buy equipment")
	submit(t, eng, rec, "12")
	submit(t, eng, rec, "50000")
	submit(t, eng, rec, "30000")
	submit(t, eng, rec, "0")
	press(t, eng, rec, "Self-funded")

	msgs := rec.Messages()
	text := msgs[len(msgs)-1].Text
	assert.Contains(t, text, "Estimated Budget:** ₹80,000")
	assert.NotContains(t, text, "LOAN CONSIDERATIONS")
}

func TestEngine_UnknownTarget(t *testing.T) {
	ctx := context.Background()
	bogus := domain.ButtonPressed{Target: domain.StateID("nowhere"), Label: "Go"}

	t.Run("lenient", func(t *testing.T) {
		var flowErrors int
		hooks := domain.LifecycleHooks{
			OnError: func(context.Context, *domain.ErrorEvent) { flowErrors++ },
		}
		eng, _ := newEngine(t, runtime.WithLifecycleHooks(hooks))
		require.NoError(t, eng.Handle(ctx, bogus))
		assert.Equal(t, domain.StateStart, eng.Current().ID)
		assert.Equal(t, 1, flowErrors)
	})

	t.Run("strict", func(t *testing.T) {
		eng, _ := newEngine(t, runtime.WithStrict(true))
		err := eng.Handle(ctx, bogus)
		require.ErrorIs(t, err, domain.ErrUnknownState)
		assert.Equal(t, domain.StateStart, eng.Current().ID)
	})
}

func TestEngine_NoMatchingAction(t *testing.T) {
	ctx := context.Background()
	eng, _ := newEngine(t)

	err := eng.Handle(ctx, domain.InputSubmitted{Key: domain.AnswerGoal, Raw: "hire"})
	assert.ErrorIs(t, err, domain.ErrNoAction, "start has no input")

	err = eng.Handle(ctx, domain.ButtonPressed{Target: domain.StatePlanResult, Label: "Skip"})
	assert.ErrorIs(t, err, domain.ErrNoAction, "defined target but not offered")
	assert.Equal(t, domain.StateStart, eng.Current().ID)
}

func TestEngine_LifecycleHooks(t *testing.T) {
	var entered, left []domain.StateID
	var calls, returns, validations int
	hooks := domain.LifecycleHooks{
		OnStateEnter:      func(_ context.Context, e *domain.StateEvent) { entered = append(entered, e.StateID) },
		OnStateLeave:      func(_ context.Context, e *domain.StateEvent) { left = append(left, e.StateID) },
		OnAdvisorCall:     func(context.Context, *domain.AdvisorEvent) { calls++ },
		OnAdvisorReturn:   func(_ context.Context, e *domain.AdvisorEvent) { returns++; assert.True(t, e.Degraded) },
		OnValidationError: func(context.Context, *domain.ErrorEvent) { validations++ },
	}
	eng, rec := newEngine(t, runtime.WithLifecycleHooks(hooks))

	press(t, eng, rec, "Yes, let's do it")
	require.NoError(t, eng.Handle(context.Background(), domain.InputSubmitted{Key: domain.AnswerGoal, Raw: ""}))
	submit(t, eng, rec, "hire 3 staff")
	submit(t, eng, rec, "12")
	submit(t, eng, rec, "80000")
	submit(t, eng, rec, "50000")
	submit(t, eng, rec, "20000")
	press(t, eng, rec, "Self-funded")

	assert.Equal(t, []domain.StateID{
		domain.StateStart, domain.StateAskGoal, domain.StateAskTimeline, domain.StateAskCashflow,
		domain.StateAskExpenses, domain.StateAskSavings, domain.StateAskFunding,
		domain.StatePlanning, domain.StatePlanResult,
	}, entered)
	assert.Len(t, left, len(entered)-1)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, returns)
	assert.Equal(t, 1, validations)
}
