package command

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/sigmesh-go/internal/cli/config"
	"github.com/yndnr/sigmesh-go/internal/cli/connection"
	"github.com/yndnr/sigmesh-go/internal/core/domain"
	"github.com/yndnr/sigmesh-go/internal/infra/buildinfo"
	"github.com/yndnr/sigmesh-go/internal/telemetry/logger"
	"github.com/yndnr/sigmesh-go/internal/telemetry/metric"
	"github.com/yndnr/sigmesh-go/pkg/token"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "sigmesh-cli",
		Usage:   "messaging hub management client",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			BroadcastCommand(),
			SendCommand(),
			GroupCommand(),
			InteractiveCommand(),
		},
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   "Config file path",
			EnvVars: []string{"SIGMESH_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "connection-string",
			Aliases: []string{"c"},
			Usage:   "Service connection string (Endpoint=...;AccessKey=...;)",
			EnvVars: []string{"SIGMESH_CONNECTION_STRING"},
		},
		&cli.StringFlag{
			Name:    "hub",
			Usage:   "Hub name",
			EnvVars: []string{"SIGMESH_HUB"},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "Enable verbose output",
		},
	}
}

// GlobalFlags holds resolved global settings: flag > env > config file.
type GlobalFlags struct {
	ConnectionString string
	Hub              string
	Output           string
	LogLevel         string
	Verbose          bool
}

// ParseGlobalFlags merges flags with the loaded config file.
func ParseGlobalFlags(c *cli.Context) (*GlobalFlags, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	flags := &GlobalFlags{
		ConnectionString: cfg.ConnectionString,
		Hub:              cfg.Hub,
		Output:           cfg.Output,
		LogLevel:         cfg.LogLevel,
		Verbose:          c.Bool("verbose"),
	}
	if v := c.String("connection-string"); v != "" {
		flags.ConnectionString = v
	}
	if v := c.String("hub"); v != "" {
		flags.Hub = v
	}
	if v := c.String("output"); v != "" {
		flags.Output = v
	}

	return flags, nil
}

// buildClient wires a hub client from global flags. The metrics registry
// is shared with interactive mode's stats command.
func buildClient(c *cli.Context) (*connection.Client, *metric.Registry, *GlobalFlags, error) {
	flags, err := ParseGlobalFlags(c)
	if err != nil {
		return nil, nil, nil, err
	}

	if flags.ConnectionString == "" {
		return nil, nil, nil, fmt.Errorf("connection string required (--connection-string or SIGMESH_CONNECTION_STRING)")
	}
	if flags.Hub == "" {
		return nil, nil, nil, fmt.Errorf("hub name required (--hub or SIGMESH_HUB)")
	}

	info, err := domain.ParseConnectionString(flags.ConnectionString)
	if err != nil {
		// Error paths bypass the slog redaction hook; never echo the
		// raw string, it embeds the access key.
		return nil, nil, nil, fmt.Errorf("%w (given %q)", err, logger.RedactString(flags.ConnectionString))
	}

	// --verbose installs a debug logger process-wide; otherwise the
	// configured level is applied to the existing default.
	if flags.Verbose {
		logger.SetDefault(logger.New(logger.Config{Level: "debug"}))
	} else if flags.LogLevel != "" {
		logger.SetLevel(flags.LogLevel)
	}
	log := logger.Default()

	endpoint := domain.NewHubEndpoint(info.Endpoint, flags.Hub)
	sender := domain.NewIdentity()
	metrics := metric.NewRegistry()

	client := connection.NewClient(endpoint, sender, token.NewJWTProvider(info.AccessKey),
		connection.WithLogger(log),
		connection.WithMetrics(metrics),
	)

	log.Debug("client ready", "endpoint", endpoint.BaseURL, "hub", endpoint.Hub, "sender", sender.String())

	return client, metrics, flags, nil
}

// PrintError prints an error message to stderr.
func PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
