// Package common holds output helpers shared by the command actions.
package common

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dtnitsch/youdict/models"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// NewLogger builds the JSON logger every action uses; --quiet drops the
// level to errors only.
func NewLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// StyledDump is the YAML shape printed under --annotations: the plain text
// plus every span a presenter would style.
type StyledDump struct {
	Text        string              `yaml:"text"`
	Annotations []models.Annotation `yaml:"annotations"`
}

// PrintStyled writes rendered output: the plain text by default, or the
// full annotation dump as YAML when requested.
func PrintStyled(w io.Writer, st *models.StyledText, withAnnotations bool) error {
	if !withAnnotations {
		_, err := fmt.Fprintln(w, st.Plain())
		return err
	}

	dump := StyledDump{
		Text:        st.Plain(),
		Annotations: st.Annotations(),
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(dump); err != nil {
		return fmt.Errorf("failed to encode annotations: %w", err)
	}
	return enc.Close()
}
