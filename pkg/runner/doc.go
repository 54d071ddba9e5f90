/*
Package runner drives a fundflow engine from a line-oriented stream.

The runner reads one line at a time, turns it into a domain.Event through the
active IOHandler and hands it to the engine. The handler is also the engine's
presenter, so the same value decides how questions are shown and how answers
are read back.

# Key Components

  - Runner: The read, parse, handle loop.
  - IOHandler: A ports.Presenter that can also read and parse user input.
  - TextHandler: Interactive terminal output with numbered choices.
  - JSONHandler: One JSON object per presenter call, commands read as JSON lines.

# Usage

	h := runner.NewTextHandler(os.Stdin, os.Stdout)
	engine, err := fundflow.New(h)
	if err != nil {
		log.Fatal(err)
	}

	r := runner.NewRunner(engine, runner.WithInputHandler(h))
	if err := r.Run(ctx); err != nil {
		log.Fatal(err)
	}

Typing "quit" or "exit" ends the loop and "restart" returns to the start state.
*/
package runner
