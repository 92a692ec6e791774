//go:build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	modulePath = "github.com/dkoosis/pspec"
	binPath    = "./bin/pspec"
)

// Default target - build the binary
var Default = Build

// Build builds the pspec binary with version information.
func Build() error {
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty", "--match=v*")
	if err != nil {
		version = "dev"
	}
	commit, err := sh.Output("git", "rev-parse", "--short", "HEAD")
	if err != nil {
		commit = "unknown"
	}
	date := time.Now().UTC().Format(time.RFC3339)

	ldflags := fmt.Sprintf("-s -w -X '%[1]s/internal/version.Version=%[2]s' -X '%[1]s/internal/version.CommitHash=%[3]s' -X '%[1]s/internal/version.BuildDate=%[4]s'",
		modulePath, version, commit, date)

	fmt.Println("Building pspec...")
	return sh.RunV("go", "build", "-ldflags", ldflags, "-o", binPath, "./cmd/pspec")
}

// Test runs the test suite and renders it with pspec itself.
func Test() error {
	mg.Deps(Build)

	gotest := exec.Command("go", "test", "-json", "./...")
	gotest.Stderr = os.Stderr
	render := exec.Command(binPath, "--pspec")
	render.Stdout = os.Stdout
	render.Stderr = os.Stderr

	pipe, err := gotest.StdoutPipe()
	if err != nil {
		return err
	}
	render.Stdin = pipe

	if err := render.Start(); err != nil {
		return fmt.Errorf("starting pspec: %w", err)
	}
	if err := gotest.Run(); err != nil && !isExit(err) {
		return fmt.Errorf("go test: %w", err)
	}
	if err := render.Wait(); err != nil {
		return fmt.Errorf("tests failed: %w", err)
	}
	return nil
}

// Race runs tests with the race detector.
func Race() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Lint runs gofmt, go vet and golangci-lint when installed.
func Lint() error {
	unformatted, err := sh.Output("gofmt", "-l", "cmd", "internal", "pkg")
	if err != nil {
		return err
	}
	if unformatted = strings.TrimSpace(unformatted); unformatted != "" {
		return fmt.Errorf("files need gofmt:\n%s", unformatted)
	}
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return err
	}
	if _, err := exec.LookPath("golangci-lint"); err != nil {
		fmt.Println("golangci-lint not found, skipping")
		return nil
	}
	return sh.RunV("golangci-lint", "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	fmt.Println("Cleaning...")
	return sh.Rm("./bin")
}

func isExit(err error) bool {
	_, ok := err.(*exec.ExitError)
	return ok
}
