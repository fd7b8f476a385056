package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/aleister1102/storeconf/internal/config"
	"github.com/aleister1102/storeconf/internal/logger"
	"github.com/aleister1102/storeconf/internal/storage"
	"github.com/rs/zerolog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		bootstrap, logErr := logger.New(logger.NewDefaultFileLogConfig())
		if logErr != nil {
			bootstrap = zerolog.New(os.Stderr)
		}
		bootstrap.Error().Err(err).Msg("storeconf failed")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	flags, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	bootLogger, err := logger.NewLoggerBuilder().WithConsole(stderr).WithConfig(logger.NewDefaultFileLogConfig()).Build()
	if err != nil {
		return err
	}

	if flags.Command == commandInit {
		return initConfig(flags, bootLogger)
	}

	configPath := config.GetConfigPath(flags.GlobalConfigFile)
	if configPath == "" {
		return fmt.Errorf("no configuration file found; pass -config or set %s", config.ConfigPathEnv)
	}

	gCfg, err := config.LoadGlobalConfig(configPath, bootLogger)
	if err != nil {
		return fmt.Errorf("could not load global config '%s': %w", configPath, err)
	}
	if err := config.ValidateConfig(gCfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	zLogger, err := logger.NewLoggerBuilder().WithConsole(stderr).WithConfig(gCfg.LogConfig).Build()
	if err != nil {
		return fmt.Errorf("could not initialize logger: %w", err)
	}
	zLogger = zLogger.With().Str("command", flags.Command).Logger()

	if flags.Command == commandWatch {
		return watch(ctx, configPath, stdout, flags.Output, zLogger)
	}

	registry, err := storage.NewRegistry(gCfg.StorageConfig, zLogger)
	if err != nil {
		return err
	}

	switch flags.Command {
	case commandInspect:
		return renderInspect(stdout, inspect(registry, zLogger), flags.Output)
	case commandPurge:
		if !flags.Yes {
			return fmt.Errorf("purge deletes every configured database path; re-run with -yes to confirm")
		}
		if err := registry.PurgeAllPaths(); err != nil {
			return fmt.Errorf("purge failed: %w", err)
		}
		zLogger.Info().Int("databases", registry.Len()).Msg("Purged all database paths")
		return nil
	default:
		return renderRegistry(stdout, registry, flags.Output)
	}
}

// initConfig writes a configuration file holding every default, refusing to
// replace an existing file unless -yes is set.
func initConfig(flags AppFlags, zLogger zerolog.Logger) error {
	path := flags.GlobalConfigFile
	if path == "" {
		path = defaultInitPath
	}
	if _, err := os.Stat(path); err == nil && !flags.Yes {
		return fmt.Errorf("'%s' already exists; re-run with -yes to overwrite it", path)
	}
	return config.SaveGlobalConfig(config.NewDefaultGlobalConfig(), path, zLogger)
}

// watch keeps the registry current until ctx is cancelled, printing it after
// the initial load.
func watch(ctx context.Context, configPath string, stdout io.Writer, output string, zLogger zerolog.Logger) error {
	opts := storage.DefaultManagerOptions()
	opts.Logger = zLogger

	manager, err := storage.NewManager(configPath, opts)
	if err != nil {
		return err
	}
	defer func() {
		if err := manager.Close(); err != nil {
			zLogger.Warn().Err(err).Msg("Failed to close storage manager")
		}
	}()

	if err := renderRegistry(stdout, manager.Current(), output); err != nil {
		return err
	}
	if err := manager.Watch(ctx); err != nil {
		return err
	}

	zLogger.Info().Str("config", manager.ConfigPath()).Msg("Watching configuration, press Ctrl+C to stop")
	<-ctx.Done()
	zLogger.Info().Msg("Shutdown signal received")
	return nil
}
