package config

import (
	"flag"
	"os"
	"time"

	"github.com/avelichko/schoolinv/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path to the SQLite database file
//	-e string   export directory
//	-s int      sync delay in seconds
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-e", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the database file")
	fs.StringVar(&cfg.ExportDir, "e", cfg.ExportDir, "directory for export files")
	syncDelay := fs.Int("s", int(cfg.SyncDelay.Seconds()), "sync delay (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SyncDelay = time.Duration(*syncDelay) * time.Second
}
