package app

import (
	"fmt"
	"os"
	"strconv"

	"github.com/blackwell-systems/brewsetup/internal/output"
	"github.com/blackwell-systems/brewsetup/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history [id|latest]",
	Short: "Show recorded install passes",
	Long: `Without arguments, lists all recorded passes newest first.
With a pass ID or 'latest', shows that pass's per-package outcomes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	path, err := getDBPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Println("No passes recorded yet. Run 'brewsetup install' first.")
		return nil
	}

	db, err := store.New(path)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close()

	if len(args) == 0 {
		passes, err := db.ListPasses()
		if err != nil {
			return err
		}
		fmt.Print(output.RenderHistoryTable(passes))
		return nil
	}

	var rec *store.PassRecord
	if args[0] == "latest" {
		rec, err = db.LatestPass()
	} else {
		id, convErr := strconv.ParseInt(args[0], 10, 64)
		if convErr != nil {
			return fmt.Errorf("invalid pass ID %q (use a number or 'latest')", args[0])
		}
		rec, err = db.GetPass(id)
	}
	if err != nil {
		return err
	}

	results, err := db.ListResults(rec.ID)
	if err != nil {
		return err
	}

	status := "ok"
	if !rec.Success {
		status = "failed"
	}
	fmt.Printf("Pass %d — started %s, %d packages, %d failed, %s\n\n",
		rec.ID, rec.StartedAt.Local().Format("2006-01-02 15:04:05"), rec.Total, rec.Failed, status)
	fmt.Print(output.RenderStoredResultTable(results))
	return nil
}
