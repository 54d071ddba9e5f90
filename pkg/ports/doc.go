/*
Package ports defines the driven ports (interfaces) of the fundflow engine.

These interfaces decouple the interview core from presentation and from the
remote advisor, so the same engine drives a terminal, an HTTP client or a test
recorder.

# Key Interfaces

  - Presenter: Renders messages, choices, inputs, progress and transient indicators.
  - Advisor: Returns advisory text for a prompt, asynchronously and without failing.
  - ResponseCache: Stores advisor replies keyed by prompt (memory or Redis).
*/
package ports
