/*
Package planner turns collected interview answers into a financial feasibility plan.

Everything here is pure: no I/O, no clocks, no randomness. Malformed input never
produces an error; each field falls back to a documented default and the plan is
always complete.

# Pipeline

	profile := planner.ComputeProfile(answers).Value()
	estimate := planner.EstimateBudget(profile.Goal)
	plan := planner.ComputePlan(profile, estimate)

Money is carried as decimal.Decimal so repeated computations over identical
inputs yield identical output.
*/
package planner
