package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/GreenSheep01201/Claw-Kanban/internal/board"
	"github.com/GreenSheep01201/Claw-Kanban/internal/cardform"
	"github.com/GreenSheep01201/Claw-Kanban/internal/config"
	"github.com/GreenSheep01201/Claw-Kanban/internal/debug"
	"github.com/GreenSheep01201/Claw-Kanban/internal/domain"
	"github.com/GreenSheep01201/Claw-Kanban/internal/ui"
	"github.com/GreenSheep01201/Claw-Kanban/internal/ui/theme"
)

const openTimeout = 5 * time.Second

func main() {
	if err := config.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}

	flags := registerFlags(flag.CommandLine)
	flag.Parse()

	if *flags.version {
		printVersion()
		os.Exit(0)
	}

	visited := map[string]struct{}{}
	flag.CommandLine.Visit(func(f *flag.Flag) {
		visited[f.Name] = struct{}{}
	})

	if err := run(flags, visited, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run does everything after flag parsing so deferred cleanup happens before
// main exits.
func run(flags runtimeFlags, visited map[string]struct{}, out io.Writer) error {
	if *flags.debug {
		if err := debug.Init(true); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: debug log disabled: %v\n", err)
		}
		defer debug.Close()
	}

	if err := config.ApplyOverrides(collectOverrides(flags, flag.CommandLine, visited)); err != nil {
		return fmt.Errorf("apply flags: %w", err)
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	runtime, err := computeRuntimeOptions(flags, flag.CommandLine, visited)
	if err != nil {
		return err
	}
	applyTheme(runtime.theme)

	ctx, cancel := context.WithTimeout(context.Background(), openTimeout)
	client, closeClient, err := openClient(ctx, runtime)
	cancel()
	if err != nil {
		return err
	}
	defer func() {
		if err := closeClient(); err != nil {
			debug.Logf("close board client: %v", err)
		}
	}()

	if runtime.newCard {
		return runStandalone(client, ui.NewCardOptions{
			Seed:               runtime.seed,
			ClearStaleTaskType: runtime.clearStale,
		}, newTerminalProgram(false), out)
	}

	appCfg := ui.AppConfig{
		Client:             client,
		Version:            Version,
		OutputFormat:       runtime.outputFormat,
		ClearStaleTaskType: runtime.clearStale,
		Source:             fmt.Sprint(client),
	}
	return runProgram(appCfg, ui.NewApp, newTerminalProgram(true))
}

type programRunner interface {
	Run() (tea.Model, error)
}

type programFactory func(tea.Model) programRunner

func newTerminalProgram(altScreen bool) programFactory {
	return func(model tea.Model) programRunner {
		if altScreen {
			return tea.NewProgram(model, tea.WithAltScreen())
		}
		return tea.NewProgram(model)
	}
}

func runProgram(cfg ui.AppConfig, builder func(ui.AppConfig) (*ui.App, error), factory programFactory) error {
	app, err := builder(cfg)
	if err != nil {
		return fmt.Errorf("initialize UI: %w", err)
	}
	return runModel(app, factory)
}

// runStandalone shows only the new-card form and reports the created card.
func runStandalone(creator board.Creator, opts ui.NewCardOptions, factory programFactory, out io.Writer) error {
	model := ui.NewStandalone(creator, opts)
	if err := runModel(model, factory); err != nil {
		return err
	}
	if req, ok := model.Created(); ok {
		fmt.Fprintf(out, "Created card: %s\n", req.Title)
	}
	return nil
}

func runModel(model tea.Model, factory programFactory) error {
	if factory == nil {
		return fmt.Errorf("program factory is nil")
	}
	prog := factory(model)
	if prog == nil {
		return fmt.Errorf("program is nil")
	}
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run UI: %w", err)
	}
	return nil
}

// openClient talks to SQLite directly when a database path is configured
// and to the board API otherwise.
func openClient(ctx context.Context, runtime runtimeOptions) (board.Client, func() error, error) {
	if runtime.dbPath != "" {
		client, err := board.NewSQLiteClient(ctx, runtime.dbPath)
		if err != nil {
			return nil, nil, err
		}
		return client, client.Close, nil
	}

	var opts []board.HTTPOption
	if runtime.timeout > 0 {
		opts = append(opts, board.WithTimeout(runtime.timeout))
	}
	client := board.NewHTTPClient(runtime.baseURL, opts...)
	return client, func() error { return nil }, nil
}

func applyTheme(name string) {
	if name == "" {
		return
	}
	if !theme.SetTheme(name) {
		fmt.Fprintf(os.Stderr, "Warning: unknown theme %q, using %s\n", name, theme.CurrentName())
	}
}

type runtimeFlags struct {
	version    *bool
	debug      *bool
	apiURL     *string
	dbPath     *string
	timeout    *time.Duration
	theme      *string
	clearStale *bool
	newCard    *bool
	title      *string
	desc       *string
	role       *string
	taskType   *string
}

// registerFlags defines the command line using config values as defaults.
func registerFlags(fs *flag.FlagSet) runtimeFlags {
	return runtimeFlags{
		version:    fs.Bool("version", false, "Print version information and exit"),
		debug:      fs.Bool("debug", false, "Write a debug log to ~/.kanban/debug.log"),
		apiURL:     fs.String("api-url", config.GetString(config.KeyAPIBaseURL), "Base URL of the board API"),
		dbPath:     fs.String("db-path", config.GetString(config.KeyDatabasePath), "Read and write cards in this SQLite file instead of the API"),
		timeout:    fs.Duration("timeout", config.GetDuration(config.KeyAPITimeout), "Per-request timeout for the board API (0 disables)"),
		theme:      fs.String("theme", config.GetString(config.KeyTheme), "Color theme"),
		clearStale: fs.Bool("clear-stale-task-type", config.GetBool(config.KeyClearStaleTaskType), "Drop the task type when the role no longer takes one"),
		newCard:    fs.Bool("new", false, "Open only the new card form and exit when it closes"),
		title:      fs.String("title", "", "Pre-fill the card title (with --new)"),
		desc:       fs.String("desc", "", "Pre-fill the card description (with --new)"),
		role:       fs.String("role", "", "Pre-fill the role: devops, backend or frontend (with --new)"),
		taskType:   fs.String("task-type", "", "Pre-fill the task type: new, modify or bugfix (with --new)"),
	}
}

// collectOverrides maps explicitly set flags onto their config keys.
func collectOverrides(flags runtimeFlags, fs *flag.FlagSet, visited map[string]struct{}) map[string]any {
	overrides := map[string]any{}
	if flagWasExplicitlySet(fs, "api-url", visited) {
		overrides[config.KeyAPIBaseURL] = strings.TrimSpace(*flags.apiURL)
	}
	if flagWasExplicitlySet(fs, "db-path", visited) {
		overrides[config.KeyDatabasePath] = strings.TrimSpace(*flags.dbPath)
	}
	if flagWasExplicitlySet(fs, "timeout", visited) {
		overrides[config.KeyAPITimeout] = flags.timeout.String()
	}
	if flagWasExplicitlySet(fs, "theme", visited) {
		overrides[config.KeyTheme] = strings.TrimSpace(*flags.theme)
	}
	if flagWasExplicitlySet(fs, "clear-stale-task-type", visited) {
		overrides[config.KeyClearStaleTaskType] = *flags.clearStale
	}
	return overrides
}

type runtimeOptions struct {
	baseURL      string
	dbPath       string
	timeout      time.Duration
	theme        string
	outputFormat string
	clearStale   bool
	newCard      bool
	seed         cardform.Seed
}

var errSeedWithoutNew = errors.New("--title, --desc, --role and --task-type require --new")

// computeRuntimeOptions reads the effective settings once overrides are in.
func computeRuntimeOptions(flags runtimeFlags, fs *flag.FlagSet, visited map[string]struct{}) (runtimeOptions, error) {
	opts := runtimeOptions{
		baseURL:      strings.TrimSpace(config.GetString(config.KeyAPIBaseURL)),
		dbPath:       strings.TrimSpace(config.GetString(config.KeyDatabasePath)),
		timeout:      config.GetDuration(config.KeyAPITimeout),
		theme:        strings.TrimSpace(config.GetString(config.KeyTheme)),
		outputFormat: strings.TrimSpace(config.GetString(config.KeyOutputFormat)),
		clearStale:   config.GetBool(config.KeyClearStaleTaskType),
		newCard:      *flags.newCard,
	}

	seeded := false
	for _, name := range []string{"title", "desc", "role", "task-type"} {
		if flagWasExplicitlySet(fs, name, visited) {
			seeded = true
		}
	}
	if seeded && !opts.newCard {
		return runtimeOptions{}, errSeedWithoutNew
	}

	role, err := domain.ParseRole(*flags.role)
	if err != nil {
		return runtimeOptions{}, fmt.Errorf("--role: %w", err)
	}
	taskType, err := domain.ParseTaskType(*flags.taskType)
	if err != nil {
		return runtimeOptions{}, fmt.Errorf("--task-type: %w", err)
	}
	opts.seed = cardform.Seed{
		Title:       *flags.title,
		Description: *flags.desc,
		Role:        role,
		TaskType:    taskType,
	}
	return opts, nil
}

func flagWasExplicitlySet(fs *flag.FlagSet, name string, visited map[string]struct{}) bool {
	if _, ok := visited[name]; ok {
		return true
	}
	f := fs.Lookup(name)
	if f == nil {
		return false
	}
	return f.Value.String() != f.DefValue
}
