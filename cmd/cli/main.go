package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/policydesk/internal/client/cli"
	"github.com/dmitrijs2005/policydesk/internal/client/config"
	"github.com/dmitrijs2005/policydesk/internal/flagx"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
	}

	args := flagx.Positional(os.Args[1:], config.ValueFlags)
	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, cli.Describe(err))
		os.Exit(1)
	}

}
