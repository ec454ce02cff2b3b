package config

import (
	"flag"
	"os"
	"time"

	"github.com/shoplens/shoplens/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   DSN of the local database (default from Config)
//	-t int      inactivity timeout in minutes (default from Config)
//
// Args are filtered through flagx.FilterArgs so this parser does not
// interfere with flags owned by other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "local database DSN")
	timeoutMinutes := fs.Int("t", int(cfg.InactivityTimeout.Minutes()), "inactivity timeout (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.InactivityTimeout = time.Duration(*timeoutMinutes) * time.Minute
}
