package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rastermaps/renderconfig/internal/cache"
	"github.com/rastermaps/renderconfig/internal/cache/redisstore"
	"github.com/rastermaps/renderconfig/internal/core/config"
	"github.com/rastermaps/renderconfig/internal/core/observability"
	"github.com/rastermaps/renderconfig/internal/core/server"
	"github.com/rastermaps/renderconfig/internal/invalidation/kafkaconsumer"
	"github.com/rastermaps/renderconfig/internal/logger"
	"github.com/rastermaps/renderconfig/internal/profile"
	"github.com/rastermaps/renderconfig/internal/render"
)

var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	tableFlag := flag.String("profile-table", "", "path to a TOML curated profile table (overlays the built-in set)")
	flag.Parse()

	cfg := config.FromEnv()
	if *tableFlag != "" {
		cfg.ProfileTablePath = *tableFlag
	}

	zl := logger.Build(logger.Config{
		Level:     cfg.LogLevel,
		Console:   strings.EqualFold(os.Getenv("LOG_CONSOLE"), "true"),
		Component: "renderconfigd",
	}, os.Stdout)
	appLog := logger.NewSlog(&zl)

	observability.ExposeBuildInfo(Version)
	appLog.Info("starting renderconfigd", "addr", cfg.Addr, "version", Version)

	table := profile.DefaultTable()
	if cfg.ProfileTablePath != "" {
		entries, err := profile.LoadTOML(cfg.ProfileTablePath)
		if err != nil {
			appLog.Error("failed to load profile table", "path", cfg.ProfileTablePath, "err", err)
			return 1
		}
		table = table.Merge(entries)
		appLog.Info("profile table overlaid", "path", cfg.ProfileTablePath, "entries", len(entries))
	}

	resolver := profile.NewResolver(table, profile.DefaultRules(), cfg.ProfileCacheSize)
	engine := render.NewEngine(resolver)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var store cache.Interface
	if cfg.CacheEnabled {
		rc, err := redisstore.New(ctx, cfg.RedisAddr)
		if err != nil {
			// the engine is self-sufficient; run uncached rather than die
			appLog.Warn("descriptor cache unavailable, continuing without", "err", err)
		} else {
			defer func() { _ = rc.Close() }()
			store = rc
		}
	}

	if cfg.Invalidation.Enabled {
		kcfg := kafkaconsumer.FromEnv()
		consumer := kafkaconsumer.New(kcfg, appLog, store, resolver)
		go func() {
			if err := consumer.Start(ctx); err != nil {
				appLog.Error("invalidation consumer stopped", "err", err)
			}
		}()
	}

	if err := server.Run(ctx, cfg, appLog, server.Deps{Engine: engine, Cache: store}); err != nil {
		appLog.Error("server failed", "err", err)
		return 1
	}
	return 0
}
