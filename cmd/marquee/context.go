package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"marquee/internal/catalogcache"
	"marquee/internal/config"
	"marquee/internal/logging"
	"marquee/internal/pipeline"
	"marquee/internal/source"
)

type commandContext struct {
	configFlag *string
	sourceFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error

	cacheOnce sync.Once
	cache     *catalogcache.Cache
	cacheErr  error
}

func newCommandContext(configFlag, sourceFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		sourceFlag: sourceFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.sourceFlag != nil && strings.TrimSpace(*c.sourceFlag) != "" {
			if err := cfg.OverrideSource(strings.TrimSpace(*c.sourceFlag)); err != nil {
				c.configErr = fmt.Errorf("--source: %w", err)
				return
			}
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg)
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) ensureCache() (*catalogcache.Cache, error) {
	c.cacheOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.cacheErr = err
			return
		}
		logger, err := c.ensureLogger()
		if err != nil {
			c.cacheErr = err
			return
		}
		reader, err := source.Open(source.Options{
			Path:        cfg.Source.Path,
			Format:      cfg.Source.Format,
			Table:       cfg.Source.Table,
			Delimiter:   cfg.Delimiter(),
			LockTimeout: cfg.LockTimeout(),
			Logger:      logger,
		})
		if err != nil {
			c.cacheErr = err
			return
		}
		builder := pipeline.New(pipeline.Options{
			ListSeparator: cfg.Source.ListSeparator,
			Logger:        logger,
		})
		c.cache = catalogcache.New(reader, builder, logger)
	})
	return c.cache, c.cacheErr
}

// loadCatalog returns the current catalog entry for the command.
func (c *commandContext) loadCatalog(ctx context.Context) (*catalogcache.Entry, error) {
	cache, err := c.ensureCache()
	if err != nil {
		return nil, err
	}
	return cache.Get(ctx)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
