package main

import (
	"os"

	"github.com/urfave/cli"
)

var Version = "0.1.0"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		cli.HandleExitCoder(cli.NewExitError(err.Error(), 1))
	}
}

// newApp builds the sqlite-varint command line application
func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "sqlite-varint"
	app.Version = Version
	app.Usage = "encode and decode SQLite varints"

	app.Commands = []cli.Command{
		cmdEncode,
		cmdDecode,
		cmdLen,
	}

	app.Action = func(c *cli.Context) error {
		return cli.ShowAppHelp(c)
	}
	return app
}
