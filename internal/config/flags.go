package config

import (
	"flag"
	"os"
	"time"

	"github.com/mpetrenko/castgate/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the gateway REST API (default from Config)
//	-w string   URL of the gateway push endpoint (default from Config)
//	-d string   path of the local database file (default from Config)
//	-t int      request timeout in seconds (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-w", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.GatewayHTTPURL, "a", cfg.GatewayHTTPURL, "base URL of the gateway REST API")
	fs.StringVar(&cfg.GatewayWSURL, "w", cfg.GatewayWSURL, "URL of the gateway push endpoint")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local database file")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
