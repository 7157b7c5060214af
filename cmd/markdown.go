package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders markdown content to the terminal.
func printMarkdown(content string) {
	out, err := glamour.Render(content, "auto")
	if err != nil {
		// fall back to the raw markdown
		fmt.Println(content)
		return
	}
	fmt.Print(out)
}
