package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"

	"github.com/lixenwraith/termline/bell"
	"github.com/lixenwraith/termline/terminal"
)

var (
	debugFlag = flag.Bool("debug", false, "Write debug log to logs/"+logFileName)
	soundFlag = flag.Bool("sound", false, "Ring the bell through the audio device")
	demoFlag  = flag.String("demo", "hello", "Demo to run: "+strings.Join(demoNames(), ", "))
)

func main() {
	// Panic Recovery: restore the terminal even if a demo crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)

			fmt.Fprintf(os.Stderr, "\n\x1b[31mTERMLINE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()
	os.Exit(runMain())
}

// runMain owns every deferred cleanup so they finish before os.Exit
func runMain() int {
	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := terminal.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	opts := []terminal.Option{
		terminal.WithConfig(cfg),
		terminal.WithLogger(log.Default()),
	}

	if *soundFlag {
		spk, err := bell.New(bell.LoadConfig())
		if err != nil {
			// Non-fatal, the terminal bell is used instead
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer spk.Close()
			opts = append(opts, terminal.WithBell(spk))
		}
	}

	term, err := terminal.New(opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	// Normal exit terminal cleanup; Close is idempotent
	defer term.Close()

	runErr := run(term, *demoFlag)
	closeErr := term.Close()

	switch {
	case errors.Is(runErr, terminal.ErrInterrupted):
		return 130
	case runErr != nil:
		fmt.Fprintf(os.Stderr, "%v\n", runErr)
		return 1
	case closeErr != nil:
		fmt.Fprintf(os.Stderr, "%v\n", closeErr)
		return 1
	}
	return 0
}
