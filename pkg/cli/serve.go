package cli

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/kioku/pkg/server"
	"github.com/m-mizutani/kioku/pkg/utils/logging"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// serveConfig represents the YAML configuration for the serve command
type serveConfig struct {
	MemoFile string `yaml:"memo_file"`
	LogLevel string `yaml:"log_level"`
}

// loadServeConfig loads serve settings from a YAML file
func loadServeConfig(filePath string) (*serveConfig, error) {
	if filePath == "" {
		return nil, nil
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, goerr.Wrap(err, "config file does not exist", goerr.V("file", filePath))
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V("file", filePath))
	}

	var config serveConfig
	if err := yaml.Unmarshal(content, &config); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML config", goerr.V("file", filePath))
	}

	return &config, nil
}

func serveCommand() *cli.Command {
	var (
		cfg        config
		configPath string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to YAML config file",
			Sources:     cli.EnvVars("KIOKU_CONFIG"),
			Destination: &configPath,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:  "serve",
		Usage: "Run the MCP server on stdio",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			// Config file fills in settings not given as flags
			fileCfg, err := loadServeConfig(configPath)
			if err != nil {
				return err
			}
			if fileCfg != nil {
				if cfg.memoFile == "" && fileCfg.MemoFile != "" {
					cfg.memoFile = fileCfg.MemoFile
				}
				if !c.IsSet("log-level") && fileCfg.LogLevel != "" {
					cfg.logLevel = fileCfg.LogLevel
				}
			}

			cfg.setupLogger()
			logger := logging.Default()
			ctx = logging.With(ctx, logger)

			// Initialize dependencies
			uc, err := cfg.newUseCase()
			if err != nil {
				return err
			}

			logger.Info("starting MCP server",
				"memo_file", cfg.resolveMemoFile(),
				"log_level", cfg.logLevel,
			)

			// Serve until the transport closes
			if err := server.New(uc).Run(ctx); err != nil {
				return goerr.Wrap(err, "failed to run MCP server")
			}

			return nil
		},
	}
}
