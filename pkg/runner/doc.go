/*
Package runner implements the interactive loop that drives a calculator session.

It acts as the bridge between the session (channels and engine) and the outside
world. Commands arrive through a pluggable IOHandler, are applied to the session,
and the resulting figures are rendered back through the same handler.

# Key Components

  - Runner: reads commands until quit, EOF or an interrupt.
  - IOHandler: decouples how commands arrive and results leave (text, JSON).
  - TextHandler: line commands for interactive terminal usage.
  - JSONHandler: NDJSON events in, NDJSON results out, for scripting.
  - PromptCustomTip: asks for a custom tip amount and reports it through a callback.

# Usage

	s := session.New()
	defer s.Close()

	r := runner.NewRunner(
		runner.WithInputHandler(runner.NewTextHandler(os.Stdin, os.Stdout)),
		runner.WithSignalHandling(true),
	)
	if err := r.Run(ctx, s); err != nil {
		log.Fatal(err)
	}
*/
package runner
