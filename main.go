package main

import (
	"fmt"
	"os"

	"github.com/dtnitsch/youdict/internal/history"
	"github.com/dtnitsch/youdict/internal/inspect"
	"github.com/dtnitsch/youdict/internal/lookup"
	"github.com/dtnitsch/youdict/internal/suggest"
	"github.com/urfave/cli/v2"
)

func main() {
	commonFlags := []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "path to YAML config file (default ~/.youdict.yaml)",
		},
		&cli.StringFlag{
			Name:  "max-age",
			Usage: "reuse cached responses younger than this duration",
		},
		&cli.BoolFlag{
			Name:  "force-fetch",
			Usage: "bypass the response cache",
		},
		&cli.BoolFlag{
			Name:  "quiet",
			Usage: "log errors only",
		},
	}

	langFlags := []cli.Flag{
		&cli.StringFlag{
			Name:  "from",
			Usage: "source language code (auto-detected when omitted)",
		},
		&cli.StringFlag{
			Name:  "to",
			Usage: "target language code (auto-detected when omitted)",
		},
	}

	annotationsFlag := &cli.BoolFlag{
		Name:  "annotations",
		Usage: "print the style annotation spans as YAML instead of plain text",
	}

	app := &cli.App{
		Name:  "youdict",
		Usage: "look up words and near-match suggestions on dict.youdao.com",
		Commands: []*cli.Command{
			{
				Name:      "lookup",
				Usage:     "Look up a word and print its annotated dictionary entry",
				ArgsUsage: "<word>",
				Flags:     append(append(append([]cli.Flag{}, commonFlags...), langFlags...), annotationsFlag),
				Action:    lookup.LookupAction,
			},
			{
				Name:      "suggest",
				Usage:     "List near-match suggestions for a prefix",
				ArgsUsage: "<prefix>",
				Flags: append(append([]cli.Flag{}, commonFlags...),
					&cli.IntFlag{
						Name:  "limit",
						Usage: "maximum number of suggestions to request",
					},
					annotationsFlag),
				Action: suggest.SuggestAction,
			},
			{
				Name:  "history",
				Usage: "Show recent lookups",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Value: 20,
						Usage: "maximum number of history rows",
					},
				},
				Action: history.HistoryAction,
			},
			{
				Name:      "inspect",
				Usage:     "Print readability metadata for a word's dictionary page",
				ArgsUsage: "<word>",
				Flags:     append(append([]cli.Flag{}, commonFlags...), langFlags...),
				Action:    inspect.InspectAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
