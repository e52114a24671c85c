package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/policydesk/internal/client/client"
	"github.com/dmitrijs2005/policydesk/internal/client/config"
)

type App struct {
	config *config.Config
	client client.Client
	in     io.Reader
	out    io.Writer
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := client.NewPartnerAdminClient(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	return &App{config: c, client: apiClient, in: os.Stdin, out: os.Stdout}, nil
}

// Run executes args as a single command, or starts the prompt when args is
// empty.
func (a *App) Run(ctx context.Context, args []string) error {
	defer a.client.Close()

	if len(args) == 0 {
		fmt.Fprintln(a.out, "Welcome to policydesk CLI (type 'help' for commands)")
		runREPL(ctx, a, bufio.NewScanner(a.in))
		return nil
	}

	return a.Exec(ctx, args[0], args[1:])
}

// Exec runs one command. Unknown commands and wrong arity are errors.
func (a *App) Exec(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "help":
		a.help()
		return nil
	case "list", "l":
		return a.List(ctx)
	case "show":
		if len(args) != 1 {
			return fmt.Errorf("%w: show <id>", ErrUsage)
		}
		return a.Show(ctx, args[0])
	case "add-policy":
		if len(args) != 3 {
			return fmt.Errorf("%w: add-policy <partnerId> <policyNumber> <amount>", ErrUsage)
		}
		return a.AddPolicy(ctx, args[0], args[1], args[2])
	case "ping":
		return a.Ping(ctx)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}
}

func (a *App) help() {
	fmt.Fprintln(a.out, "Available commands: (l)ist, show <id>, add-policy <partnerId> <number> <amount>, ping, exit")
}
