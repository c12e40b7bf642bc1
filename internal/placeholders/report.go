package placeholders

import (
	"fmt"
	"io"

	"github.com/vvka-141/treetidy/internal/ui"
	"github.com/vvka-141/treetidy/pkg/treetidy"
)

// WriteReport writes the scan outcome to out: a success message when the
// tree is clean, otherwise every match followed by the total.
func WriteReport(out io.Writer, styles *ui.Styles, result treetidy.ScanResult) {
	if styles == nil {
		styles = ui.Plain()
	}

	if result.Clean() {
		fmt.Fprintln(out, styles.Success("✅ No Xcode placeholders (<#...#>) found."))
		fmt.Fprintln(out, styles.Muted("If Xcode still reports 'Editor placeholder', a generated file (for example Core Data) is often broken."))
		return
	}

	fmt.Fprintln(out, styles.Failure("❌ PLACEHOLDERS FOUND (these break the build):"))
	fmt.Fprintln(out)
	for _, m := range result.Matches {
		fmt.Fprintf(out, "- %s:%d\n  %s\n\n", m.Path, m.Line, m.Snippet)
	}

	fmt.Fprintf(out, "Total matches: %d\n", len(result.Matches))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "➡️ Fix or remove these spots (or comment out the affected blocks) and rebuild.")
}
