package command

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"salespulse/render"
)

// errBlocked signals that a command stopped after already notifying the
// operator; the root command suppresses cobra's own error output.
var errBlocked = errors.New("blocked")

// gridFlags are the shared list-view flags: client-side filter, sort,
// pagination and CSV export of the filtered/sorted view.
type gridFlags struct {
	filter   string
	sortBy   string
	page     int
	pageSize int
	csvPath  string
}

func (g *gridFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&g.filter, "filter", "", "keep rows containing this text in any column")
	cmd.Flags().StringVar(&g.sortBy, "sort", "", "sort by column key, append :desc to reverse")
	cmd.Flags().IntVar(&g.page, "page", 1, "page to display")
	cmd.Flags().IntVar(&g.pageSize, "page-size", 0, "rows per page (0 = configured default)")
	cmd.Flags().StringVar(&g.csvPath, "csv", "", "export the filtered view to a CSV file instead of printing")
}

// render applies filter and sort, then either exports the whole view to
// CSV or prints the requested page.
func (g *gridFlags) render(grid *render.Grid) error {
	view := grid.Filter(g.filter)
	if g.sortBy != "" {
		key, dir, _ := strings.Cut(g.sortBy, ":")
		view = view.Sort(key, strings.EqualFold(dir, "desc"))
	}

	if g.csvPath != "" {
		if err := view.ExportCSV(g.csvPath); err != nil {
			return fmt.Errorf("failed to export csv: %w", err)
		}
		console.Notify.Success(fmt.Sprintf("Exported %d rows to %s", len(view.Rows), g.csvPath))
		return nil
	}

	size := g.pageSize
	if size <= 0 {
		size = console.Config.PageSize
	}
	pageView, pages := view.Paginate(g.page, size)
	fmt.Print(pageView.View())
	fmt.Println(render.PageFooter(g.page, pages, len(view.Rows)))
	return nil
}

// parseID converts a positional id argument.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

// promptLine reads one line from stdin after printing a prompt to
// stderr.
func promptLine(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
