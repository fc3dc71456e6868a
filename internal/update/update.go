// Package update checks GitHub Releases for newer medintel builds and
// replaces the running binary.
package update

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	selfupdate "github.com/creativeprojects/go-selfupdate"
)

// ErrDevBuild is returned when asked to replace a development build.
var ErrDevBuild = errors.New("cannot update a development build; install from a release first")

// Release describes a published build.
type Release struct {
	Version string
	URL     string
	Notes   string
}

// Updater checks and applies releases of one repository.
type Updater struct {
	repo    string
	current string

	latest  func(ctx context.Context, repo string) (*Release, error)
	replace func(ctx context.Context, current, repo string) (*Release, error)
}

// New returns an Updater backed by GitHub Releases. repo is "owner/name".
func New(current, repo string) *Updater {
	return &Updater{
		repo:    repo,
		current: current,
		latest:  detectLatest,
		replace: updateSelf,
	}
}

func isDev(v string) bool { return v == "" || v == "dev" }

// Check returns the newest release when it is newer than the running
// version. A nil release means up to date, a development build, or an
// unparseable local version.
func (u *Updater) Check(ctx context.Context) (*Release, error) {
	if isDev(u.current) {
		return nil, nil
	}
	if _, err := parseSemver(u.current); err != nil {
		return nil, nil
	}

	rel, err := u.latest(ctx, u.repo)
	if err != nil {
		return nil, err
	}
	if rel == nil || CompareVersions(u.current, rel.Version) >= 0 {
		return nil, nil
	}
	return rel, nil
}

// Apply downloads the latest release and replaces the current executable.
func (u *Updater) Apply(ctx context.Context) (*Release, error) {
	if isDev(u.current) {
		return nil, ErrDevBuild
	}
	return u.replace(ctx, strings.TrimPrefix(u.current, "v"), u.repo)
}

func newGitHubUpdater() (*selfupdate.Updater, error) {
	source, err := selfupdate.NewGitHubSource(selfupdate.GitHubConfig{})
	if err != nil {
		return nil, fmt.Errorf("create github source: %w", err)
	}
	updater, err := selfupdate.NewUpdater(selfupdate.Config{Source: source})
	if err != nil {
		return nil, fmt.Errorf("create updater: %w", err)
	}
	return updater, nil
}

func detectLatest(ctx context.Context, repo string) (*Release, error) {
	updater, err := newGitHubUpdater()
	if err != nil {
		return nil, err
	}
	latest, found, err := updater.DetectLatest(ctx, selfupdate.ParseSlug(repo))
	if err != nil {
		return nil, fmt.Errorf("detect latest release: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &Release{Version: latest.Version(), URL: latest.URL, Notes: latest.ReleaseNotes}, nil
}

func updateSelf(ctx context.Context, current, repo string) (*Release, error) {
	updater, err := newGitHubUpdater()
	if err != nil {
		return nil, err
	}
	rel, err := updater.UpdateSelf(ctx, current, selfupdate.ParseSlug(repo))
	if err != nil {
		return nil, fmt.Errorf("update failed: %w", err)
	}
	return &Release{Version: rel.Version(), URL: rel.URL, Notes: rel.ReleaseNotes}, nil
}

// CompareVersions compares two semver strings and returns -1, 0 or 1.
// Unparseable versions sort before any valid one.
func CompareVersions(current, latest string) int {
	cv, errC := parseSemver(current)
	lv, errL := parseSemver(latest)

	switch {
	case errC != nil && errL != nil:
		return 0
	case errC != nil:
		return -1
	case errL != nil:
		return 1
	}
	return cv.Compare(lv)
}

// parseSemver accepts an optional leading "v". A git-describe suffix such
// as "0.1.0-3-gabcdef" parses as a prerelease of 0.1.0.
func parseSemver(s string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(s, "v"))
}
