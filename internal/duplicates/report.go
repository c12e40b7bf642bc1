package duplicates

import (
	"fmt"
	"io"
	"strings"

	"github.com/vvka-141/treetidy/internal/ui"
	"github.com/vvka-141/treetidy/pkg/treetidy"
)

// Reporter writes the human-readable progress of a run.
type Reporter struct {
	out    io.Writer
	styles *ui.Styles
}

// NewReporter creates a Reporter writing to out. A nil styles writes plain text.
func NewReporter(out io.Writer, styles *ui.Styles) *Reporter {
	if styles == nil {
		styles = ui.Plain()
	}
	return &Reporter{out: out, styles: styles}
}

// Start announces the search.
func (r *Reporter) Start() {
	fmt.Fprintln(r.out, r.styles.Heading("--- Searching for duplicates ---"))
}

// Group reports a duplicate group and the file that stays.
func (r *Reporter) Group(action treetidy.Action) {
	fmt.Fprintf(r.out, "\n⚠️ Duplicate found: %s\n", action.Name)
	fmt.Fprintf(r.out, "  %s: %s\n", r.styles.Keep("[KEEP]"), action.Keep)
}

// Relocation reports the outcome of moving one duplicate.
func (r *Reporter) Relocation(rel treetidy.Relocation, dryRun bool) {
	switch {
	case rel.Failed():
		fmt.Fprintf(r.out, "  %s: %s (%v)\n", r.styles.Fail("[FAILED]"), rel.Source, rel.Err)
	case dryRun:
		fmt.Fprintf(r.out, "  %s: %s -> %s\n", r.styles.Move("[WOULD MOVE]"), rel.Source, rel.Destination)
	default:
		fmt.Fprintf(r.out, "  %s: %s\n", r.styles.Move("[MOVE]"), rel.Source)
	}
}

// NothingFound reports a tree without duplicates.
func (r *Reporter) NothingFound(extensions []string) {
	fmt.Fprintf(r.out, "No duplicate %s files found.\n", joinAlternatives(extensions))
}

// Finish prints the run summary.
func (r *Reporter) Finish(summary treetidy.CleanupSummary, backupDir string) {
	if summary.DryRun {
		fmt.Fprintf(r.out, "\n--- Dry run: %d file(s) in %d group(s) would be moved to: %s ---\n",
			summary.Moved, summary.Groups, backupDir)
		return
	}

	fmt.Fprintf(r.out, "\n--- Done! Duplicates are now in: %s ---\n", backupDir)
	fmt.Fprintf(r.out, "Moved %d file(s) from %d duplicate group(s).\n", summary.Moved, summary.Groups)
	if summary.Failed > 0 {
		fmt.Fprintln(r.out, r.styles.Failure(fmt.Sprintf("%d file(s) could not be moved and are still in place.", summary.Failed)))
	}
}

// joinAlternatives renders [".swift", ".py"] as ".swift or .py".
func joinAlternatives(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
}
