package main

import (
	"io"
	"os"
	"time"
)

// defaultDotEnvPath is read from the working directory when present.
const defaultDotEnvPath = ".env"

// Dependencies holds injectable dependencies for testability.
type Dependencies struct {
	Now     func() time.Time
	Stdout  io.Writer
	Stderr  io.Writer
	Environ func() []string
	// DotEnvPath is an optional .env file; empty disables it.
	DotEnvPath string
}

// DefaultDeps returns production dependencies.
func DefaultDeps() *Dependencies {
	return &Dependencies{
		Now:        time.Now,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Environ:    os.Environ,
		DotEnvPath: defaultDotEnvPath,
	}
}
