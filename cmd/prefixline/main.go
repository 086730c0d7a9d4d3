package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hazyhaar/prefixline/pkg/api"
	"github.com/hazyhaar/prefixline/pkg/prefix"
	"github.com/hazyhaar/prefixline/pkg/settings"
	"github.com/hazyhaar/prefixline/pkg/subject"
	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

type config struct {
	Addr       string `yaml:"addr"`
	CatalogDir string `yaml:"catalog_dir"`
	SettingsDB string `yaml:"settings_db"`
	UILanguage string `yaml:"ui_language"`
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		cmdServe(os.Args[2:])
	case "mcp":
		cmdMCP(os.Args[2:])
	case "clean":
		cmdClean(os.Args[2:])
	case "langs":
		cmdLangs(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: prefixline <command>

Commands:
  serve   Start the HTTP server
  mcp     Serve the MCP tools over stdio
  clean   Clean a single subject line
  langs   List catalog languages
`)
}

func cmdServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	fs.Parse(args)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg := loadConfig(*cfgPath, logger)

	reg := prefix.NewRegistry(cfg.CatalogDir)
	if err := reg.Load(); err != nil {
		logger.Error("failed to load prefix catalogs", "error", err)
		os.Exit(1)
	}
	logger.Info("prefix catalogs loaded", "languages", reg.LanguageCount(), "aliases", reg.AliasCount())

	store, err := settings.Open(cfg.SettingsDB)
	if err != nil {
		logger.Error("failed to open settings store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	ui := parseUILanguage(cfg.UILanguage, logger)
	cleaner := subject.NewCleaner(reg)
	router := api.NewRouter(reg, cleaner, store, ui, logger)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	// SIGHUP: hot reload prefix catalogs.
	// SIGINT/SIGTERM: graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sighup := make(chan os.Signal, 1)
	signal.Notify(sighup, syscall.SIGHUP)
	go func() {
		for range sighup {
			logger.Info("SIGHUP received, reloading prefix catalogs")
			if err := reg.Reload(); err != nil {
				logger.Error("reload failed", "error", err)
			} else {
				logger.Info("prefix catalogs reloaded", "languages", reg.LanguageCount(), "aliases", reg.AliasCount())
			}
		}
	}()

	go func() {
		logger.Info("prefixline listening", "addr", cfg.Addr, "ui_language", ui)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	srv.Shutdown(context.Background())
}

func cmdMCP(args []string) {
	fs := flag.NewFlagSet("mcp", flag.ExitOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	fs.Parse(args)

	// Stdout carries the MCP stream; all logging goes to stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	cfg := loadConfig(*cfgPath, logger)

	reg := prefix.NewRegistry(cfg.CatalogDir)
	if err := reg.Load(); err != nil {
		logger.Error("failed to load prefix catalogs", "error", err)
		os.Exit(1)
	}

	store, err := settings.Open(cfg.SettingsDB)
	if err != nil {
		logger.Error("failed to open settings store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	ui := parseUILanguage(cfg.UILanguage, logger)
	cleaner := subject.NewCleaner(reg)

	srv := server.NewMCPServer("prefixline", "1.0.0")
	api.RegisterMCPTools(srv, reg, cleaner, store, ui)

	if err := server.ServeStdio(srv); err != nil {
		logger.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}

func cmdLangs(args []string) {
	fs := flag.NewFlagSet("langs", flag.ExitOnError)
	catalogDir := fs.String("catalog-dir", "", "directory of per-language catalog YAML files")
	fs.Parse(args)

	reg := prefix.NewRegistry(*catalogDir)
	if err := reg.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "load catalogs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%-8s %-8s %-8s %s\n", "LANG", "REPLY", "FORWARD", "ALIASES")
	for _, info := range reg.Languages() {
		fmt.Printf("%-8s %-8s %-8s %d\n", info.Language, info.Reply, info.Forward, info.Aliases)
	}
}

func loadConfig(path string, logger *slog.Logger) config {
	cfg := config{
		Addr:       ":8430",
		SettingsDB: "prefixline.db",
		UILanguage: "en-US",
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("no config file, using defaults", "path", path)
			return cfg
		}
		logger.Error("read config", "error", err)
		os.Exit(1)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logger.Error("parse config", "error", err)
		os.Exit(1)
	}
	return cfg
}

func parseUILanguage(s string, logger *slog.Logger) language.Tag {
	tag, err := language.Parse(s)
	if err != nil {
		logger.Warn("bad ui_language in config, falling back to en-US", "value", s, "error", err)
		return language.AmericanEnglish
	}
	return tag
}
