package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/finsync/internal/client/uploader"
	"github.com/dmitrijs2005/finsync/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// args is filtered with flagx.FilterArgs first so flags owned by other
// stages (-c, -e) do not trip the parser.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-i", "-u", "-v"})

	fs := flag.NewFlagSet("finsync", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the FinSync API")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local database")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	backend := fs.String("u", string(cfg.UploadBackend), "profile image upload backend (http|s3)")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose logging")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// Only an explicit -i replaces the interval; the default would round
	// sub-second values from earlier stages down to whole seconds.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "i" {
			cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
		}
	})
	cfg.UploadBackend = uploader.Backend(*backend)
	return nil
}
