package config

import (
	"flag"
	"os"
	"time"

	"github.com/shelfhub/shelfhub/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-s string   backend server origin (default from Config)
//	-a string   API base URL, absolute or a path starting with "/"
//	-d string   path to the local database file
//	-t int      request timeout in seconds (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-a", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "s", cfg.ServerURL, "backend server origin")
	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "API base URL (absolute or path)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to local database file")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
