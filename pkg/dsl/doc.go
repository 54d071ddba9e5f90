/*
Package dsl provides a fluent builder for fundflow interview flows.

Flows are compiled into the binary rather than loaded from files. The builder
hands every definition to domain.NewFlow, so a flow with a dangling target, a
missing state or a computation state without an indicator never builds.

Example usage:

	b := dsl.New()

	b.Add(domain.StateStart).
		Say("Ready to plan?").
		Progress(10).
		Button("Yes", domain.StateAskGoal)

	b.Add(domain.StateAskGoal).
		Say("What is your business goal?").
		Progress(25).
		Ask(domain.AnswerGoal, "Describe your goal...", domain.StateAskTimeline)

	// ... remaining states

	flow, err := b.Build()
*/
package dsl
