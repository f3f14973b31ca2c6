package runner

import (
	"io"
	"os"

	"golang.org/x/term"

	"github.com/chrizzn/snmpdash/pkg/dashboard"
)

// Report renders snap to the configured output file, or to stdout.
func Report(config cliConfig, snap dashboard.Snapshot, stdout io.Writer) error {
	format, err := dashboard.ParseFormat(config.format)
	if err != nil {
		return err
	}

	out := stdout
	color := isTerminal(stdout)
	if len(config.outputFile) > 0 {
		writeFile, err := os.Create(config.outputFile)
		if err != nil {
			return err
		}
		defer writeFile.Close()
		out = writeFile
		color = false
	}

	return dashboard.Render(out, snap, format, dashboard.RenderOptions{Color: color})
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
