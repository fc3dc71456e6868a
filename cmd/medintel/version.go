package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/justinpbarnett/medintel/internal/ui/panels"
	"github.com/justinpbarnett/medintel/internal/update"
)

func runVersion(repo string) {
	fmt.Printf("medintel version %s\n", panels.Version)

	if panels.Version == "dev" {
		fmt.Println("Development build, update check skipped.")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	rel, err := update.New(panels.Version, repo).Check(ctx)
	if err != nil {
		fmt.Printf("Update check failed: %v\n", err)
		return
	}

	if rel != nil {
		fmt.Printf("Update available: v%s. Run \"medintel update\" to install.\n", rel.Version)
	} else {
		fmt.Println("You are up to date.")
	}
}

func runUpdate(repo string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	u := update.New(panels.Version, repo)
	rel, err := u.Check(ctx)
	if err != nil {
		return err
	}
	if rel == nil && panels.Version != "dev" {
		fmt.Printf("medintel %s is already the latest version.\n", panels.Version)
		return nil
	}

	rel, err = u.Apply(ctx)
	if errors.Is(err, update.ErrDevBuild) {
		return err
	}
	if err != nil {
		return fmt.Errorf("updating: %w", err)
	}
	fmt.Printf("Updated to v%s.\n", rel.Version)
	return nil
}
