package lookup

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dtnitsch/youdict/internal/common"
	"github.com/dtnitsch/youdict/models"
	"github.com/dtnitsch/youdict/pkg/db"
	"github.com/dtnitsch/youdict/pkg/extractor"
	"github.com/dtnitsch/youdict/pkg/fetcher"
	"github.com/dtnitsch/youdict/pkg/render"
	"github.com/dtnitsch/youdict/pkg/request"
	"github.com/urfave/cli/v2"
)

func LookupAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	word := c.Args().First()
	if word == "" {
		return cli.Exit("Usage: youdict lookup <word>", 1)
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
		logger.Info("resolved language pair", "word", word, "from", src, "to", tgt)
	}

	// The pair is validated before anything is dispatched.
	url, err := request.DictionaryURL(word, src, tgt)
	if err != nil {
		if errors.Is(err, request.ErrUnsupportedPair) {
			return cli.Exit(err.Error(), 1)
		}
		return fmt.Errorf("failed to build request URL: %w", err)
	}
	lang, _ := request.ResolveLanguage(src, tgt)

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

	doc, err := fetcher.ParseHTML(body)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	result, err := extractor.ExtractDictionary(doc, word)
	if err != nil {
		// Covers ErrNoResult; the message is already user-facing.
		return cli.Exit(err.Error(), 1)
	}
	logger.Info("extracted dictionary result",
		"word", word,
		"variant", result.Variant,
		"phonetics", len(result.Phonetics),
		"exam_tags", len(result.ExamTags),
		"word_forms", len(result.WordForms))

	if err := database.RecordLookup(word, lang, string(result.Variant)); err != nil {
		logger.Warn("failed to record lookup history", "error", err)
	}

	st := render.RenderDictionary(result)
	return common.PrintStyled(os.Stdout, st, c.Bool("annotations"))
}
