package common

import (
	"log/slog"
	"time"

	"github.com/dtnitsch/youdict/models"
	"github.com/dtnitsch/youdict/pkg/db"
	"github.com/dtnitsch/youdict/pkg/fetcher"
	"github.com/urfave/cli/v2"
)

// MaxAgeString picks the cache validity: the flag when set, else config.
func MaxAgeString(c *cli.Context, cfg *models.Config) string {
	if c.IsSet("max-age") {
		return c.String("max-age")
	}
	return cfg.CacheMaxAge
}

// FetchBody serves the raw body from the response cache when fresh enough,
// otherwise fetches once and stores the result. There is no retry; a fetch
// failure is terminal for the command.
func FetchBody(logger *slog.Logger, database *db.DB, url string, maxAge time.Duration) ([]byte, error) {
	if body, hit, err := database.CachedResponse(url, maxAge); err != nil {
		logger.Warn("cache read failed", "error", err)
	} else if hit {
		logger.Info("cache hit", "url", url)
		return body, nil
	}

	body, err := fetcher.NewFetcher().GetBytes(url)
	if err != nil {
		return nil, err
	}
	if err := database.StoreResponse(url, body); err != nil {
		logger.Warn("cache write failed", "error", err)
	}
	return body, nil
}
