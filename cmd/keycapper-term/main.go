// Command keycapper-term shows recent key presses inside a terminal
// painted chroma green.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"keycapper/internal/capture"
	"keycapper/internal/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "keycapper-term:", err)
		os.Exit(1)
	}
}

func run() error {
	// The alt screen owns stdout, so logs go to a file or nowhere.
	if len(os.Getenv("DEBUG")) > 0 {
		f, err := tea.LogToFile("keycapper-debug.log", "debug")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	hk, labels, err := capture.Open(capture.Default()...)
	if err != nil {
		log.Printf("[capture] global capture unavailable, showing terminal keys only: %v", err)
	}

	p := tea.NewProgram(
		term.New(term.WithLocalKeys(labels == nil)),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	if labels != nil {
		defer func() {
			if err := hk.Stop(); err != nil {
				log.Printf("[capture] stop: %v", err)
			}
		}()
		go term.Forward(p, labels)
	}

	_, err = p.Run()
	return err
}
