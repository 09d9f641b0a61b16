package suggest

import (
	"os"
	"time"

	"github.com/dtnitsch/youdict/internal/common"
	"github.com/dtnitsch/youdict/models"
	"github.com/dtnitsch/youdict/pkg/db"
	"github.com/dtnitsch/youdict/pkg/extractor"
	"github.com/dtnitsch/youdict/pkg/render"
	"github.com/dtnitsch/youdict/pkg/request"
	"github.com/urfave/cli/v2"
)

func SuggestAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	query := c.Args().First()
	if query == "" {
		return cli.Exit("Usage: youdict suggest <prefix>", 1)
	}

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		logger.Error("invalid config", "error", err)
		os.Exit(2)
	}

	limit := cfg.SuggestLimit
	if c.IsSet("limit") {
		limit = c.Int("limit")
	}
	url := request.SuggestURL(query, limit)

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

	result, err := extractor.ExtractSuggestions(body)
	if err != nil {
		// Upstream failures carry the server's own message.
		return cli.Exit(err.Error(), 1)
	}
	logger.Info("extracted suggestions", "query", query, "entries", len(result.Entries))

	st := render.RenderSuggestions(result, cfg.PartOfSpeechTokens)
	return common.PrintStyled(os.Stdout, st, c.Bool("annotations"))
}
