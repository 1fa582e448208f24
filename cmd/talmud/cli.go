package main

import (
	"context"
	"io"

	"github.com/fwojciec/talmud"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Topics    talmud.TopicService
	Responses talmud.ResponseService
	Converter talmud.Converter
	Citations talmud.CitationExtractor

	// NewWriter returns the writer for the data file at path.
	NewWriter func(path string) talmud.DataWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Topics    string `default:"data/topics.rag24.test.txt" env:"TALMUD_TOPICS" help:"Tab-separated topic file"`
	Responses string `default:"data/webis-manual.jsonl" env:"TALMUD_RESPONSES" help:"JSON-lines file of curated responses"`
	Debug     bool   `env:"TALMUD_DEBUG" help:"Log lookups and writes to stderr"`

	Format FormatCmd `cmd:"" default:"withargs" help:"Write the UI data file for a topic"`
	List   ListCmd   `cmd:"" help:"List all topics"`
	Show   ShowCmd   `cmd:"" help:"Print a topic's query and response as Markdown"`
}

// FormatCmd is the "format" subcommand. It runs when no command is given.
type FormatCmd struct {
	Topic  string `short:"t" help:"Topic ID (prompted for when omitted)"`
	Output string `short:"o" default:"rag-talmud-ui/src/data/data.json" env:"TALMUD_OUTPUT" help:"Data file to write"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Topic string `arg:"" help:"Topic ID"`
}
