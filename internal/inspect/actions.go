package inspect

import (
	"os"
	"time"

	"github.com/dtnitsch/youdict/internal/common"
	"github.com/dtnitsch/youdict/models"
	"github.com/dtnitsch/youdict/pkg/db"
	inspectpkg "github.com/dtnitsch/youdict/pkg/inspect"
	"github.com/dtnitsch/youdict/pkg/request"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// InspectAction fetches a dictionary page and prints its readability
// metadata. Useful when the structured extractor reports no content: the
// output shows whether the page still carries the expected article at all.
func InspectAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	word := c.Args().First()
	if word == "" {
		return cli.Exit("Usage: youdict inspect <word>", 1)
	}

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		logger.Error("invalid config", "error", err)
		os.Exit(2)
	}

	src := c.String("from")
	tgt := c.String("to")
	if src == "" || tgt == "" {
		src, tgt = request.NewDetector().ResolvePair(word, src, tgt, cfg.DefaultTargetLang)
	}

	url, err := request.DictionaryURL(word, src, tgt)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	var maxAge time.Duration
	if !c.Bool("force-fetch") {
		maxAge, err = time.ParseDuration(common.MaxAgeString(c, cfg))
		if err != nil {
			logger.Error("invalid max-age duration", "error", err)
			os.Exit(2)
		}
	}

	database, err := db.Open()
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(2)
	}
	defer database.Close()

	body, err := common.FetchBody(logger, database, url, maxAge)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	info, err := inspectpkg.Analyze(url, body)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(info); err != nil {
		return err
	}
	return enc.Close()
}
