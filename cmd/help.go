package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/bankacct/docs"
)

// printHelp renders the usage topic to standard output.
func printHelp() {
	topic, err := docs.GetTopic("usage")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading usage topic: %v\n", err)
		return
	}
	printMarkdown(topic)
}

// printMarkdown renders markdown to the terminal, falling back to the
// raw text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.RenderWithEnvironmentConfig(md)
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
