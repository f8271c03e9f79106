package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/mask-cutout/internal/config"
	"github.com/ironsheep/mask-cutout/internal/fetch"
	"github.com/ironsheep/mask-cutout/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("cutout-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("cutout-mcp - MCP server for mask-based image cutouts")
			fmt.Println()
			fmt.Println("Usage: cutout-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  CUTOUT_LOG_LEVEL=debug       Enable debug logging")
			fmt.Println("  CUTOUT_STRATEGY=diff_blue    Default classification strategy")
			fmt.Println("  CUTOUT_FETCH_TIMEOUT=20s     Download timeout per image")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if cfg.Debug {
		log.Printf("Mask Cutout MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	srv := server.New(fetch.NewClient(cfg.FetchOptions()), cfg.Settings, Version)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
