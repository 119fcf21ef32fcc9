package main

import (
	"github.com/brettbedarf/pycommander/config"
	"github.com/brettbedarf/pycommander/filesystem"
	"github.com/brettbedarf/pycommander/internal/util"
	"github.com/brettbedarf/pycommander/requests"
	"github.com/spf13/pflag"
)

// loadConfig layers defaults, the config file, explicitly set CLI flags and
// the environment, in that order of increasing precedence.
func loadConfig(flags *globalFlags, set *pflag.FlagSet) (*config.Config, error) {
	cfg := config.NewDefaultConfig()
	if flags.configPath != "" {
		override, err := config.LoadConfigOverrideFile(flags.configPath)
		if err != nil {
			return nil, err
		}
		cfg.Merge(override)
	}

	cli := &config.ConfigOverride{}
	if set.Changed("verbose") {
		cli.LogLvl = &flags.verbose
	}
	if flags.nodesDef != "" {
		cli.SeedFile = &flags.nodesDef
	}
	if set.Lookup("addr") != nil && set.Changed("addr") {
		addr, err := set.GetString("addr")
		if err != nil {
			return nil, err
		}
		cli.ListenAddr = &addr
	}
	cfg.Merge(cli)
	cfg.ApplyEnv()
	return cfg, nil
}

// loadFS builds the tree from the configured nodes file, or the default
// tree when none is set.
func loadFS(cfg *config.Config) (*filesystem.FileSystem, error) {
	logger := util.GetLogger("main")
	if cfg.SeedFile == "" {
		logger.Debug().Msg("No nodes file provided, using default tree")
		return filesystem.NewDefaultFS(), nil
	}

	reqs, err := requests.LoadNodesFile(cfg.SeedFile)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("nodes", cfg.SeedFile).Int("count", len(reqs)).Msg("Nodes file loaded successfully")

	fs := filesystem.NewFS()
	if err := fs.Seed(reqs); err != nil {
		return nil, err
	}
	logger.Info().Int("nodes", len(reqs)).Msg("Added nodes to filesystem")
	return fs, nil
}
