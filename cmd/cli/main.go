package main

import (
	"context"
	"flag"
	"os"

	"github.com/kanishkgoel/gridboard/internal/client/cli"
	"github.com/kanishkgoel/gridboard/internal/flagx"
)

func main() {

	serverURL := "http://localhost:8080"

	args := flagx.FilterArgs(os.Args[1:], []string{"-s"})
	fs := flag.NewFlagSet("cli", flag.ContinueOnError)
	fs.StringVar(&serverURL, "s", serverURL, "server base URL")
	_ = fs.Parse(args)

	app := cli.NewApp(serverURL)
	app.Run(context.Background())

}
