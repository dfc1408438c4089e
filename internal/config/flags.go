package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds a host:port pair. It implements flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses args into a partial [StructuredConfig].
//
// Flags:
//
//	-a panel listen address in format [host]:[port]
//	-b backend base URL
//	-backend-timeout backend request timeout (e.g. "30s"); 0 disables it
//	-origins comma separated CORS origins
//	-rate-limit /ui requests per second per client; 0 disables it
//	-rate-burst rate limiter burst
//	-session-ttl idle panel session lifetime
//	-prune-interval idle session prune interval
//	-log-level zerolog level
//	-log-file client log file
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var panelAddress NetAddress
	var backendAddress string
	var backendTimeout time.Duration
	var origins string
	var rateLimit float64
	var rateBurst int
	var sessionTTL time.Duration
	var pruneInterval time.Duration
	var logLevel string
	var logFile string
	var jsonConfigPath string

	fs := flag.NewFlagSet("go-portfolio-panel", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&panelAddress, "a", "Panel net address host:port")
	fs.StringVar(&backendAddress, "b", "", "Backend base URL")
	fs.DurationVar(&backendTimeout, "backend-timeout", 0, "Backend request timeout (e.g., 30s)")
	fs.StringVar(&origins, "origins", "", "Comma separated CORS origins")
	fs.Float64Var(&rateLimit, "rate-limit", 0, "Requests per second per client on /ui")
	fs.IntVar(&rateBurst, "rate-burst", 0, "Rate limiter burst")
	fs.DurationVar(&sessionTTL, "session-ttl", 0, "Idle panel session lifetime")
	fs.DurationVar(&pruneInterval, "prune-interval", 0, "Idle session prune interval")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Client log file")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
			LogFile:  logFile,
		},
		Panel: Panel{
			HTTPAddress:    panelAddress.String(),
			AllowedOrigins: splitList(origins),
			RateLimit:      rateLimit,
			RateBurst:      rateBurst,
			SessionTTL:     sessionTTL,
			PruneInterval:  pruneInterval,
		},
		Backend: Backend{
			HTTPAddress:    backendAddress,
			RequestTimeout: backendTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// String returns host:port, or an empty string for an unset address.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The host may be empty (all interfaces), "localhost"
// or an IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
