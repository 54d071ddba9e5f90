/*
Package domain contains the core domain models of the fundflow interview engine.

It defines the closed set of conversation states, the actions a state offers,
the events a presenter reports back and the per-conversation session context.
This package is kept pure and free of I/O, following Hexagonal Architecture
principles.

# Key Entities

  - StateID: One step of the interview. The set is closed and every Flow must define all of it.
  - StateDef: The static definition of a step (messages, actions, progress, computation).
  - Action: A button or a single text/number input offered by a step.
  - Event: What the presenter reports back (ButtonPressed or InputSubmitted).
  - Session: The owned, explicitly passed conversation context (current step, answers, progress).
  - Result: A success-or-degraded value returned by best-effort collaborators.
*/
package domain
