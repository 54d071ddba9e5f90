/*
Package fundflow is a guided conversational interview that turns a small business's goal and cash-flow figures into a financial feasibility plan.

It pairs a finite-state dialogue engine with a deterministic financial planner. The engine walks a closed, validated set of states, collects answers, reports progress and hands the collected answers to the planner at the planning step. A remote text generator (the advisor) may enrich the plan with free-text advice; when it fails, canned fallback advice stands in so the user always gets a plan.

# Concept

The engine owns one conversation (a domain.Session). Your application ("Host") implements ports.Presenter to show messages, buttons, inputs, progress and a transient working indicator, and reports user actions back as domain.Event values. The same engine backs the terminal runner, the HTTP adapter and tests.

# Key Features

  - Closed state set: every transition target is checked when the flow is built, never at runtime.
  - Always a plan: malformed numbers fall back to documented defaults, advisor failures fall back to canned text.
  - Pure planner: the same profile and budget always give the same plan.
  - Pluggable advisor: HuggingFace, OpenAI, Anthropic, Ollama or Gemini behind one Generator interface.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/fundflow"
		"github.com/aretw0/fundflow/pkg/adapters/memory"
		"github.com/aretw0/fundflow/pkg/advisor"
		"github.com/aretw0/fundflow/pkg/domain"
	)

	func main() {
		rec := memory.NewRecorder()
		adv := advisor.New(advisor.NewHuggingFace(advisor.HuggingFaceConfig{}))

		eng, err := fundflow.New(rec, fundflow.WithAdvisor(adv))
		if err != nil {
			log.Fatal(err)
		}

		ctx := context.Background()
		if err := eng.Start(ctx); err != nil {
			log.Fatal(err)
		}

		// Press the first offered button.
		if err := eng.Handle(ctx, rec.Choices()[0].Event); err != nil {
			log.Fatal(err)
		}

		// Answer the goal question.
		err = eng.Handle(ctx, domain.InputSubmitted{Key: domain.AnswerGoal, Raw: "hire 2 staff"})
		if err != nil {
			log.Fatal(err)
		}
	}
*/
package fundflow
