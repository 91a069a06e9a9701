package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/wetsplit"
	"github.com/fwojciec/wetsplit/htmltomarkdown"
	wsslog "github.com/fwojciec/wetsplit/slog"
	"github.com/fwojciec/wetsplit/split"
	"github.com/fwojciec/wetsplit/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	FragmentService wetsplit.FragmentService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:      ctx,
		Stdout:   stdout,
		Stderr:   stderr,
		ReadFile: os.ReadFile,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wetsplit"),
		kong.Description("Split Dutch government publications into text fragments."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'wetsplit --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	cfg, err := LoadConfig(cli.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Apply(cli)
	deps.Config = cfg

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	reg, err := split.NewRegistry(split.Options{
		Boilerplate:  split.Boilerplate(cfg.Boilerplate),
		MarkRepeated: cfg.MarkRepeated,
		Logger:       deps.Logger,
	})
	if err != nil {
		return err
	}
	if len(cfg.Disable) > 0 {
		if reg, err = reg.Without(cfg.Disable...); err != nil {
			return err
		}
	}
	deps.Registry = reg
	deps.Converter = htmltomarkdown.NewConverter()

	if needsDB(cmd, cli) {
		if cfg.DB != "" {
			m.DBPath = cfg.DB
		}
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set WETSPLIT_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.FragmentService = sqlite.NewFragmentService(m.DB)
		deps.Fragments = m.FragmentService
	}

	return kongCtx.Run(deps)
}

func needsDB(cmd string, cli *CLI) bool {
	switch cmd {
	case "show", "list":
		return true
	case "process":
		return cli.Process.DB
	}
	return false
}

// Decider returns the registry decider for opts, with decision logging.
func (d *Dependencies) Decider(opts wetsplit.DecideOptions) wetsplit.Decider {
	var dec wetsplit.Decider = wetsplit.NewDecider(d.Registry, opts)
	if d.Logger != nil {
		dec = wsslog.NewLoggingDecider(dec, d.Logger)
	}
	return dec
}

func defaultDBPath() string {
	if path := os.Getenv("WETSPLIT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "wetsplit.db"
	}
	dir := filepath.Join(home, ".wetsplit")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "wetsplit.db")
}
