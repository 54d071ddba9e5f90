package runtime

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/aretw0/fundflow/pkg/domain"
	"github.com/aretw0/fundflow/pkg/planner"
)

// Headings prefixed to computed messages. The degraded variants are used
// when the advisor fell back to canned text.
const (
	headingPlan         = "🤖 **AI Financial Analysis:**"
	headingPlanDegraded = "🤖 **AI Financial Plan:**"
	headingRecs         = "🎯 **AI RECOMMENDATIONS:**"
	headingRecsDegraded = "🎯 **SMART RECOMMENDATIONS:**"
	headingAnswer       = "🤖 **AI Response:**"
)

// compute runs the state's computation between a transient indicator and
// the resulting message. The indicator is removed on every path.
func (e *Engine) compute(ctx context.Context, def domain.StateDef) error {
	handle, err := e.presenter.RenderTransient(ctx, def.Working)
	if err != nil {
		return fmt.Errorf("failed to render working indicator: %w", err)
	}

	text := e.computeText(ctx, def)

	if err := e.presenter.RemoveTransient(ctx, handle); err != nil {
		return fmt.Errorf("failed to remove working indicator: %w", err)
	}
	if err := e.presenter.RenderMessage(ctx, domain.BotMarkdown(text)); err != nil {
		return fmt.Errorf("failed to render result: %w", err)
	}
	return nil
}

func (e *Engine) computeText(ctx context.Context, def domain.StateDef) string {
	answers := e.session.Answers
	switch def.Compute {
	case domain.ComputePlan:
		plan := planner.Build(answers)
		e.logDegradation(def.ID, plan)
		reply := e.ask(ctx, def.ID, PlanPrompt(plan.Value().Profile))
		if reply.Degraded() {
			return join(headingPlanDegraded, reply.Value(), plan.Value().Markdown())
		}
		return join(headingPlan, reply.Value(), plan.Value().Markdown())

	case domain.ComputeRecommendations:
		profile := planner.ComputeProfile(answers)
		e.logDegradation(def.ID, profile)
		recs := planner.BuildRecommendations(profile.Value())
		reply := e.ask(ctx, def.ID, RecommendationsPrompt(profile.Value()))
		if reply.Degraded() {
			return join(headingRecsDegraded, reply.Value(), recs.Markdown())
		}
		return join(headingRecs, reply.Value(), recs.Markdown())

	case domain.ComputeAnswer:
		profile := planner.ComputeProfile(answers)
		reply := e.ask(ctx, def.ID, QuestionPrompt(profile.Value(), answers.Get(domain.AnswerQuestion)))
		return join(headingAnswer, reply.Value())

	default:
		return ""
	}
}

// ask blocks until the advisor yields its single result.
func (e *Engine) ask(ctx context.Context, id domain.StateID, prompt domain.Prompt) domain.Result[string] {
	e.emitAdvisorCall(ctx, id, prompt)
	start := time.Now()

	res, ok := <-e.advisor.Request(ctx, prompt)
	if !ok {
		// A closed channel without a value counts as a failed request.
		res = domain.Degraded("", fmt.Errorf("%w: advisor returned no result", domain.ErrTransport))
	}

	e.emitAdvisorReturn(ctx, id, res.Degraded(), time.Since(start))
	if res.Degraded() {
		e.logger.Debug("advisor degraded", "state", id, "err", res.Cause())
	}
	return res
}

type degradable interface {
	Degraded() bool
	Cause() error
}

func (e *Engine) logDegradation(id domain.StateID, r degradable) {
	if r.Degraded() {
		e.logger.Debug("profile defaults applied", "state", id, "cause", r.Cause())
	}
}

func join(parts ...string) string {
	parts = slices.DeleteFunc(parts, func(p string) bool { return p == "" })
	return strings.Join(parts, "\n\n")
}
