package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

type executor interface {
	Exec(ctx context.Context, cmd string, args []string) error
}

// runREPL reads one command per line until EOF, "exit" or "quit". Command
// errors are printed and the loop carries on.
func runREPL(ctx context.Context, a *App, scanner *bufio.Scanner) {
	loop(ctx, a, scanner, func(err error) { fmt.Fprintln(a.out, "Error:", Describe(err)) }, func() { fmt.Fprint(a.out, "pdcli> ") })
}

func loop(ctx context.Context, e executor, scanner *bufio.Scanner, onErr func(error), prompt func()) {
	for {
		if ctx.Err() != nil {
			return
		}
		prompt()
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "exit", "quit":
			return
		}

		if err := e.Exec(ctx, parts[0], parts[1:]); err != nil {
			onErr(err)
		}
	}
}
