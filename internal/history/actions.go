package history

import (
	"fmt"
	"strings"

	dbpkg "github.com/dtnitsch/youdict/pkg/db"
	"github.com/urfave/cli/v2"
)

func HistoryAction(c *cli.Context) error {
	database, err := dbpkg.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	records, err := database.RecentLookups(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list lookups: %w", err)
	}

	if len(records) == 0 {
		fmt.Println("No lookups recorded yet")
		return nil
	}

	fmt.Printf("%-6s %-20s %-10s %-10s %s\n", "ID", "When", "Lang", "Variant", "Word")
	fmt.Println(strings.Repeat("-", 60))
	for _, r := range records {
		fmt.Printf("%-6d %-20s %-10s %-10s %s\n",
			r.LookupID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.Lang,
			r.Variant,
			r.Word,
		)
	}
	fmt.Printf("\nTotal: %d lookups\n", len(records))

	return nil
}
