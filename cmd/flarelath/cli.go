package main

import (
	"io"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/katalvlaran/flarelath/config"
	"github.com/katalvlaran/flarelath/trace"
)

// Version is set at build time via ldflags.
var Version = "dev"

// CLI is the root command.
type CLI struct {
	Version  kong.VersionFlag `help:"Show version information"`
	Config   string           `short:"c" type:"path" env:"FLARELATH_CONFIG" help:"YAML settings file"`
	LogLevel string           `env:"FLARELATH_LOG_LEVEL" help:"Override the configured log level (debug, info, warn, error)"`

	Flareness FlarenessCmd `cmd:"" help:"Classify entities by flareness"`
	Detect    DetectCmd    `cmd:"" help:"List flares of a graph sorted by lifespan"`
	Annotate  AnnotateCmd  `cmd:"" help:"Print H/C/B flare and centrality annotations per vertex"`
	Demo      DemoCmd      `cmd:"" help:"Run detect and flareness on a generated graph"`
}

// App carries what every command needs.
type App struct {
	Cfg *config.Config
	Log *log.Logger
	Rec trace.Recorder
	Out io.Writer
}

// Execute parses args and runs the selected command, writing results to
// stdout and logs to stderr.
func Execute(args []string, stdout, stderr io.Writer) error {
	// .env must be loaded before parsing so env-tagged flags see it.
	envErr := godotenv.Load()

	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("flarelath"),
		kong.Description("Flare detection for Mapper graphs"),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version": Version,
		},
	)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	app, err := cli.newApp(stdout, stderr)
	if err != nil {
		return err
	}
	if envErr != nil {
		app.Log.Debug("No .env file found, using system environment variables")
	}

	return kctx.Run(app)
}

func (c *CLI) newApp(stdout, stderr io.Writer) (*App, error) {
	cfg := config.Default()
	if c.Config != "" {
		loaded, err := config.Load(c.Config)
		if err != nil {
			return nil, err
		}
		cfg = *loaded
	}
	if c.LogLevel != "" {
		cfg.LogLevel = c.LogLevel
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	logger := trace.NewConsoleLogger(stderr, cfg.LogLevel)

	return &App{
		Cfg: &cfg,
		Log: logger,
		Rec: trace.NewLogRecorder(logger),
		Out: stdout,
	}, nil
}
