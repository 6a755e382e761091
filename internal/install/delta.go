package install

import (
	"strings"

	"github.com/aymanbagabas/go-udiff"
)

// envDiff renders package changes between two pip freeze snapshots as a
// unified diff. The report is best effort: when either snapshot is missing
// or nothing changed, there is no report.
func envDiff(before, after string) string {
	if before == "" || after == "" || before == after {
		return ""
	}
	diff := udiff.Unified("packages (before)", "packages (after)",
		ensureTrailingNewline(before), ensureTrailingNewline(after))
	return strings.TrimRight(diff, "\n")
}

func ensureTrailingNewline(content string) string {
	if content == "" || strings.HasSuffix(content, "\n") {
		return content
	}
	return content + "\n"
}
