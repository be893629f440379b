// Package console runs the game as a plain line-oriented loop over stdin and stdout.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/tatianab/dungeon-mini/internal/engine"
)

// Prompt is shown before every command.
const Prompt = "> "

// Run reads commands from in until end of input, exit, or death and returns
// the process exit code. Output is flushed on every return path.
func Run(ctx context.Context, eng *engine.Engine, in io.Reader, out io.Writer) (int, error) {
	w := bufio.NewWriter(out)
	defer w.Flush()
	eng.SetOutput(w)

	fmt.Fprintln(w, engine.Banner)

	r := bufio.NewReader(in)
	for {
		fmt.Fprint(w, Prompt)
		if err := w.Flush(); err != nil {
			return 1, fmt.Errorf("write output: %w", err)
		}

		line, err := r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintln(w)
			return 1, fmt.Errorf("read input: %w", err)
		}
		// A final line without a newline still runs.
		if line != "" {
			outcome := eng.Execute(ctx, line)
			if outcome.Terminal() {
				return outcome.ExitCode(), w.Flush()
			}
		}
		if err != nil {
			break
		}
	}

	fmt.Fprintln(w)
	return engine.ExitOK, nil
}
