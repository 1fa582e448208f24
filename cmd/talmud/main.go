package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/talmud"
	"github.com/fwojciec/talmud/fs"
	"github.com/fwojciec/talmud/goquery"
	"github.com/fwojciec/talmud/htmltomarkdown"
	talslog "github.com/fwojciec/talmud/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Input for the topic prompt. Set before calling Run().
	Stdin io.Reader
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Stdin: os.Stdin,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Kong "exits" after printing help; record it so the command does not run.
	exited := false

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("talmud"),
		kong.Description("Format curated RAG responses for the Talmud UI"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { exited = true }),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) > 0 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if exited {
		return nil
	}
	if err != nil {
		return err
	}

	var topics talmud.TopicService = fs.NewTopicService(cli.Topics)
	var responses talmud.ResponseService = fs.NewResponseService(cli.Responses)
	newWriter := func(path string) talmud.DataWriter {
		return fs.NewDataWriter(path)
	}

	if cli.Debug {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		topics = talslog.NewLoggingTopicService(topics, logger)
		responses = talslog.NewLoggingResponseService(responses, logger)
		newWriter = func(path string) talmud.DataWriter {
			return talslog.NewLoggingDataWriter(fs.NewDataWriter(path), logger)
		}
	}

	deps.Topics = topics
	deps.Responses = responses
	deps.NewWriter = newWriter
	deps.Converter = htmltomarkdown.NewConverter()
	deps.Citations = goquery.NewCitationExtractor()

	return kongCtx.Run(deps)
}
