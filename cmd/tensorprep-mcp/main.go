package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ironsheep/tensorprep-mcp/internal/server"
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
			fmt.Printf("tensorprep-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("tensorprep-mcp - MCP server preparing photos for style-transfer models")
			fmt.Println()
			fmt.Println("Usage: tensorprep-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  TENSORPREP_LOG_LEVEL=debug       Enable debug logging")
			fmt.Println("  TENSORPREP_ALBUM_DIR=<dir>       Album directory (default $HOME/Pictures/tensorprep)")
			fmt.Println("  TENSORPREP_ASSETS_DIR=<dir>      Bundled assets directory (default ./assets)")
			fmt.Println("  TENSORPREP_OCR_LANGUAGE=<code>   Tesseract language (default eng)")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg := loadConfig()
	if cfg.Debug {
		log.Printf("TensorPrep MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("Album: %s, assets: %s, OCR language: %s", cfg.AlbumDir, cfg.AssetsDir, cfg.OCRLanguage)
	}

	server.Version = Version
	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// loadConfig reads the server settings from the environment.
func loadConfig() server.Config {
	cfg := server.Config{
		AlbumDir:    os.Getenv("TENSORPREP_ALBUM_DIR"),
		AssetsDir:   os.Getenv("TENSORPREP_ASSETS_DIR"),
		OCRLanguage: os.Getenv("TENSORPREP_OCR_LANGUAGE"),
		Debug:       os.Getenv("TENSORPREP_LOG_LEVEL") == "debug",
	}
	if cfg.AlbumDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = os.TempDir()
		}
		cfg.AlbumDir = filepath.Join(home, "Pictures", "tensorprep")
	}
	if cfg.AssetsDir == "" {
		cfg.AssetsDir = "assets"
	}
	if cfg.OCRLanguage == "" {
		cfg.OCRLanguage = "eng"
	}
	return cfg
}
