package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/claude/fitx/internal/catalog"
	"github.com/claude/fitx/internal/mcp"
	"github.com/claude/fitx/internal/storage"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// fitx-mcp exposes the workout data over MCP on stdio. It runs in one of
// two modes: local (read the SQLite database directly) or remote (query a
// running fitx server over its REST API).
func main() {
	dbPath := flag.String("db", "", "path to the SQLite database (local mode)")
	serverURL := flag.String("url", "", "base URL of a running fitx server (remote mode)")
	migrationsPath := flag.String("migrations", "migrations", "path to migrations directory (local mode)")
	flag.Parse()

	// Logs go to stderr; stdout belongs to the MCP transport.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if (*dbPath == "") == (*serverURL == "") {
		log.Error("exactly one of -db or -url is required")
		os.Exit(1)
	}

	var ds mcp.DataSource
	if *serverURL != "" {
		ds = mcp.NewHTTPClient(*serverURL)
		log.Info("fitx-mcp starting", "version", Version, "mode", "remote", "url", *serverURL)
	} else {
		if err := storage.RunMigrations(*dbPath, *migrationsPath); err != nil {
			log.Error("migration failed", "error", err)
			os.Exit(1)
		}
		db, err := storage.Open(context.Background(), *dbPath)
		if err != nil {
			log.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		ds = mcp.NewLocalSource(db, catalog.New(db, log))
		log.Info("fitx-mcp starting", "version", Version, "mode", "local", "db", *dbPath)
	}

	s := mcp.New(ds, Version, log)
	if err := server.ServeStdio(s); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
