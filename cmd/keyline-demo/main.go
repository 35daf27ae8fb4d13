// Command keyline-demo runs a small REPL on top of the keyline editor:
// type a line, Tab to complete, Up/Down for history, Enter to submit.
// Type "exit" to quit.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"keyline"
	"keyline/config"
	"keyline/history"
	"keyline/key"
	"keyline/suggest"
	"keyline/term"
)

func main() {
	initConfig := flag.Bool("init-config", false, "print the default config TOML and exit")
	debug := flag.Bool("debug", false, "print each key event as it is read")
	flag.Parse()

	if *initConfig {
		fmt.Print(config.DefaultTOML())
		return
	}

	if err := run(*debug); err != nil {
		log.Fatal(err)
	}
}

func run(debug bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	terminal, err := term.New(os.Stdin, os.Stdout)
	if err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	if err := terminal.EnterRawMode(); err != nil {
		return err
	}
	defer terminal.RestoreMode()

	// Raw mode turns Ctrl-C into an ordinary byte, but the process can
	// still be signalled from outside; restore the terminal first.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		<-sigCh
		terminal.RestoreMode()
		os.Exit(1)
	}()

	var provider suggest.Provider
	switch cfg.Completion.Mode {
	case "paths":
		provider = suggest.NewPaths()
	default:
		provider = suggest.NewWords(cfg.Completion.Words)
	}

	edCfg := keyline.Config{
		Surface:    terminal,
		Suggest:    provider,
		MaxHistory: cfg.Input.MaxHistory,
	}
	if cfg.History.File != "" {
		store, err := history.OpenSQLite(cfg.History.File, cfg.Input.MaxHistory)
		if err != nil {
			return err
		}
		defer store.Close()
		edCfg.History = store
	}

	ed, err := keyline.New(edCfg)
	if err != nil {
		return err
	}

	done := false
	ed.OnInputCompleted(func(ev key.Event, text string) {
		fmt.Printf("\r\n%s%s\r\n", cfg.Input.Prompt, text)
		if text == "exit" {
			done = true
		}
	})
	ed.OnFunctionKey(func(ev key.Event) {
		if ev.Code == key.F1 {
			path, _ := config.ConfigPath()
			fmt.Printf("\r\nconfig: %s\r\n", path)
		}
	})
	if debug {
		ed.OnKeyPressed(func(ev key.Event) {
			fmt.Printf("\r\nkey: %s %q\r\n", ev.Code, ev.Rune)
		})
	}

	for !done {
		if err := ed.Update(); err != nil {
			return err
		}
		time.Sleep(5 * time.Millisecond)
	}
	fmt.Print("\r\n")
	return nil
}
