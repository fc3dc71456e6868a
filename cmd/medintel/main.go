package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/justinpbarnett/medintel/internal/api"
	"github.com/justinpbarnett/medintel/internal/auth"
	"github.com/justinpbarnett/medintel/internal/config"
	"github.com/justinpbarnett/medintel/internal/ui"
)

func main() {
	fs := flag.NewFlagSet("medintel", flag.ExitOnError)
	configPath := fs.String("config", "", "path to a medintel.yaml or medintel.toml file")
	backendURL := fs.String("backend", "", "backend base URL, overrides config")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: medintel [--config path] [--backend url] [version|update]\n")
		fs.PrintDefaults()
	}
	fs.Parse(os.Args[1:])

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if *backendURL != "" {
		cfg.Backend.URL = *backendURL
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "error: --backend: %v\n", err)
			os.Exit(1)
		}
	}

	switch fs.Arg(0) {
	case "":
	case "version":
		runVersion(cfg.Update.Repo)
		return
	case "update":
		if err := runUpdate(cfg.Update.Repo); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", fs.Arg(0))
		fs.Usage()
		os.Exit(2)
	}

	if os.Getenv("MEDINTEL_DEBUG") != "" {
		f, err := tea.LogToFile("medintel-debug.log", "medintel")
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	identity, err := newIdentity(cfg.Auth)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	client := api.NewClient(cfg.Backend.URL,
		api.WithTimeout(time.Duration(cfg.Backend.Timeout)*time.Second),
		api.WithBearerToken(identity.Token),
	)

	model := ui.NewApp(cfg, client, identity)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// newIdentity prefers the access token when one was resolved and falls
// back to the configured identifiers.
func newIdentity(cfg config.AuthConfig) (auth.Provider, error) {
	if cfg.Token != "" {
		p, err := auth.NewTokenProvider(cfg.Token)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
	return auth.NewStatic(cfg.PatientID, cfg.DoctorID), nil
}
