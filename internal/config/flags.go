package config

import (
	"flag"
	"os"
)

// parses CLI flags for the server binary; flags override environment values
func ParseServerFlags(args []string) Flags {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	port := fs.String("port", "", "port to listen on (overrides PORT)")
	env := fs.String("env", "", "environment name (overrides ENVIRONMENT)")
	fs.Parse(args) //nolint:errcheck,gosec // G104: ExitOnError flag set handles errors

	return Flags{Port: *port, Env: *env}
}

// parses CLI flags for the terminal client
func ParseTUIFlags(args []string) Flags {
	fs := flag.NewFlagSet("tui", flag.ExitOnError)
	endpoint := fs.String("endpoint", DefaultTUIFlags().Endpoint, "base URL of the crumbs API")
	env := fs.String("env", DefaultTUIFlags().Env, "environment name")
	fs.Parse(args) //nolint:errcheck,gosec // G104: ExitOnError flag set handles errors

	return Flags{Endpoint: *endpoint, Env: *env}
}

// returns default flags for the terminal client, seeded from the environment
func DefaultTUIFlags() Flags {
	endpoint := os.Getenv("CRUMBS_API_ENDPOINT")
	if endpoint == "" {
		endpoint = defaultBaseURL
	}

	env := os.Getenv("CRUMBS_ENV")
	if env == "" {
		env = "development"
	}

	return Flags{Endpoint: endpoint, Env: env}
}

// applies non-empty flag values on top of the loaded configuration
func (f Flags) Apply(cfg *Config) {
	if f.Port != "" {
		cfg.Port = f.Port
	}

	if f.Env != "" {
		cfg.Environment = f.Env
	}
}
