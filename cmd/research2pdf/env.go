package main

import (
	"context"
	"io"
	"os"
	"time"

	research2pdf "github.com/alnah/go-research2pdf"
)

// Assembler is the part of *research2pdf.Assembler the command uses.
type Assembler interface {
	Assemble(ctx context.Context, in research2pdf.Input) (*research2pdf.Result, error)
	Close() error
}

// Compile-time interface implementation check.
var _ Assembler = (*research2pdf.Assembler)(nil)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, environment variables and the assembler factory.
type Environment struct {
	Now          func() time.Time
	Stdout       io.Writer
	Stderr       io.Writer
	Getenv       func(string) string
	Environ      func() []string
	NewAssembler func(opts ...research2pdf.Option) (Assembler, error)
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:     time.Now,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Getenv:  os.Getenv,
		Environ: os.Environ,
		NewAssembler: func(opts ...research2pdf.Option) (Assembler, error) {
			return research2pdf.NewAssembler(opts...)
		},
	}
}
