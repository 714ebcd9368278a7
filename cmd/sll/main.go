package main

import (
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"sll_code/linked_list"
)

const VERSION = "0.1.0"

var flags = []cli.Flag{
	&cli.StringFlag{
		Name:    "script",
		Aliases: []string{"s"},
		Usage:   "file with one operation per line, stdin when omitted",
	},
	&cli.BoolFlag{
		Name:  "strict",
		Usage: "stop at the first operation that fails",
	},
	&cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"vv"},
		Usage:   "log every executed operation",
	},
}

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
	app := &cli.App{
		Name:    "sll",
		Usage:   "Replay add-head, remove-head, remove, add-after and print operations on a singly linked list.",
		Flags:   flags,
		Version: VERSION,
		Action: func(ctx *cli.Context) error {
			var script io.Reader = os.Stdin
			if path := ctx.String("script"); path != "" {
				f, err := os.Open(path)
				if err != nil {
					return err
				}
				defer f.Close()
				script = f
			}

			r := &runner{
				list:    linked_list.New(),
				out:     ctx.App.Writer,
				strict:  ctx.Bool("strict"),
				verbose: ctx.Bool("verbose"),
			}
			return r.run(script)
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Printf("failed: %v", err)
		if errorWithCode, isWithCode := err.(*ErrorWithCode); isWithCode {
			os.Exit(errorWithCode.StatusCode)
		}
		os.Exit(1)
	}
}
