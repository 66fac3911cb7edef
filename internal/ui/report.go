package ui

import (
	"fmt"
	"io"

	"github.com/shirou/gopsutil/v4/disk"

	"github.com/lakshaymaurya-felt/gitcleaner/internal/scan"
)

// CleanMessage is printed when a scan finds nothing.
const CleanMessage = "Project is clean — no junk found."

// PrintCatalog writes the scan report: one line per entry, a blank line, then
// the grand total. Directories carry a trailing separator.
func PrintCatalog(w io.Writer, entries []scan.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, CleanStyle.Render(CleanMessage))
		return
	}

	for _, e := range entries {
		path := e.DisplayPath()
		if e.IsDir {
			path = DirStyle.Render(path)
		}
		fmt.Fprintf(w, "- %s %s\n", path, SizeStyle.Render("("+FormatSize(e.Size)+")"))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, TotalStyle.Render("Total: "+FormatSize(scan.Total(entries))))
}

// PrintCleanSummary writes the deleted count and freed bytes after a clean or
// dry-run pass.
func PrintCleanSummary(w io.Writer, deleted int, failed int, freed int64, dryRun bool) {
	verb := "Deleted"
	if dryRun {
		verb = "Would delete"
	}
	line := fmt.Sprintf("%s %d item(s), freeing %s", verb, deleted, FormatSize(freed))
	if failed > 0 {
		line += fmt.Sprintf(" (%d failed)", failed)
	}
	fmt.Fprintln(w, TotalStyle.Render(line))
}

// DiskLine returns an informational free-space line for the volume holding
// path, or "" when the volume cannot be queried.
func DiskLine(path string) string {
	usage, err := disk.Usage(path)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("Disk: %s free of %s",
		FormatSize(int64(usage.Free)), FormatSize(int64(usage.Total)))
}
