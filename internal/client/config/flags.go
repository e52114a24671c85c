package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/policydesk/internal/flagx"
)

// ValueFlags lists the flags that consume the following argument, so callers
// can separate them from positional command arguments.
var ValueFlags = []string{"-s", "-t", "-c", "-config"}

// parseFlags populates selected Config fields from command-line flags.
//
//	-s string   address and port of the admin gRPC server
//	-t int      request timeout (in seconds)
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "s", cfg.ServerEndpointAddr, "address and port of the admin gRPC server")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
