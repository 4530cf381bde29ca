package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/tradeledger/renderer"
)

// printMarkdown renders md for the terminal, or prints it raw when stdout is
// not a terminal.
func printMarkdown(md string) {
	fmt.Print(renderMarkdown(md, isTerminal(os.Stdout)))
}

func renderMarkdown(md string, terminal bool) string {
	if !terminal {
		return md
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// writeHTML converts md to HTML and writes it into path.
func writeHTML(path, md string) error {
	html, err := renderer.HTML(md)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("could not write %q: %w", path, err)
	}
	return nil
}

// output prints md, or writes it as HTML into htmlFile when set.
func output(md, htmlFile string) error {
	if htmlFile == "" {
		printMarkdown(md)
		return nil
	}
	return writeHTML(htmlFile, md)
}
