/*
Package observability provides lifecycle hooks for monitoring the fundflow engine.

It includes Prometheus collectors for state entries, computations and
rejected inputs, a structured logging hook set for auditing transitions, and
Combine to attach several hook sets to one engine.
*/
package observability
