package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/wetsplit"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Config    *Config
	Registry  *wetsplit.Registry
	Fragments wetsplit.FragmentService
	Converter wetsplit.Converter
	// OCR recognizes text on scanned PDF pages. No engine ships with the
	// binary, so it is nil unless a caller provides one.
	OCR      wetsplit.OCR
	ReadFile func(path string) ([]byte, error)
	// NewStore opens the fragment store for process --out. Defaults to
	// fs.NewFileStore.
	NewStore func(dir string) wetsplit.FragmentStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config      string   `short:"c" type:"path" env:"WETSPLIT_CONFIG" help:"YAML configuration file"`
	Verbose     bool     `short:"v" help:"Enable debug logging"`
	Boilerplate string   `help:"Boilerplate removal for generic HTML (trafilatura, readability, none)"`
	Disable     []string `help:"Extractors to leave out (repeatable)"`

	Sniff     SniffCmd     `cmd:"" help:"Detect the format of documents"`
	Decide    DecideCmd    `cmd:"" help:"Rank the extractors suitable for a document"`
	Fragments FragmentsCmd `cmd:"" help:"Print the fragments of a document"`
	Text      TextCmd      `cmd:"" help:"Print the plain text of a document"`
	Pages     PagesCmd     `cmd:"" help:"Show per-page text sources of a PDF"`
	Process   ProcessCmd   `cmd:"" help:"Extract fragments from many documents and store them"`
	List      ListCmd      `cmd:"" help:"List stored documents"`
	Show      ShowCmd      `cmd:"" help:"Show a stored document and its fragments"`
}

// DecisionFlags are shared by commands that pick an extractor.
type DecisionFlags struct {
	Threshold int    `help:"Discard candidates scoring at or above this value (default 1000)"`
	FirstOnly bool   `help:"Keep only the best candidate"`
	Strict    bool   `help:"Fail on the first extractor error"`
	Extractor string `short:"e" help:"Use this extractor instead of the best candidate"`
}

// SniffCmd is the "sniff" subcommand.
type SniffCmd struct {
	Files []string `arg:"" help:"Documents to inspect"`
}

// DecideCmd is the "decide" subcommand.
type DecideCmd struct {
	File          string `arg:"" help:"Document to evaluate"`
	DecisionFlags `embed:""`
}

// FragmentsCmd is the "fragments" subcommand.
type FragmentsCmd struct {
	File          string `arg:"" help:"Document to split"`
	JSON          bool   `short:"j" help:"Print fragments as JSON lines"`
	DecisionFlags `embed:""`
}

// TextCmd is the "text" subcommand.
type TextCmd struct {
	File          string `arg:"" help:"Document to split"`
	Markdown      bool   `short:"m" help:"Render HTML fragments as Markdown"`
	DecisionFlags `embed:""`
}

// PagesCmd is the "pages" subcommand.
type PagesCmd struct {
	File      string `arg:"" help:"PDF document"`
	Threshold int    `default:"200" help:"Minimum characters for a page to count as text"`
}

// ProcessCmd is the "process" subcommand.
type ProcessCmd struct {
	Files         []string `arg:"" help:"Documents to process"`
	Out           string   `short:"o" type:"path" help:"Write JSONL fragments into this directory"`
	DB            bool     `help:"Store fragments in the database"`
	Concurrency   int      `short:"n" help:"Documents processed at once"`
	DecisionFlags `embed:""`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Extractor string `short:"e" help:"Only documents split by this extractor"`
	Limit     int    `default:"50" help:"Maximum documents to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID   string `arg:"" help:"Document ID"`
	JSON bool   `short:"j" help:"Print fragments as JSON lines"`
}
