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

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the command-line arguments of the dev server.
//
// Flags:
//
//	-a dev server address in format [host]:[port]
//	-static-dir directory with static UI assets
//	-index HTML template the configuration is injected into
//	-backend query backend base URL
//	-backend-timeout per-call backend timeout (e.g. "1s", "500ms")
//	-cache-ttl backend config cache ttl (e.g. "30s")
//	-full-override full-override script path
//	-patch JSON patch path
//	-no-watch disable live reload on override file changes
//	-pretty human-readable log output
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var staticDir, indexFile string
	var backendAddress string
	var backendTimeout, cacheTTL time.Duration
	var fullOverridePath, patchPath string
	var noWatch, pretty bool
	var jsonConfigPath string

	fs := flag.NewFlagSet("devserver", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&staticDir, "static-dir", "", "Static assets directory")
	fs.StringVar(&indexFile, "index", "", "Index HTML template path")
	fs.StringVar(&backendAddress, "backend", "", "Query backend base URL")
	fs.DurationVar(&backendTimeout, "backend-timeout", 0, "Backend call timeout (e.g., 1s, 500ms)")
	fs.DurationVar(&cacheTTL, "cache-ttl", 0, "Backend config cache TTL (e.g., 30s)")
	fs.StringVar(&fullOverridePath, "full-override", "", "Full-override script path")
	fs.StringVar(&patchPath, "patch", "", "JSON patch path")
	fs.BoolVar(&noWatch, "no-watch", false, "Disable live reload on override changes")
	fs.BoolVar(&pretty, "pretty", false, "Human-readable log output")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Server: Server{
			HTTPAddress: serverAddress.String(),
			StaticDir:   staticDir,
			IndexFile:   indexFile,
		},
		Backend: Backend{
			Address:        backendAddress,
			RequestTimeout: backendTimeout,
		},
		Cache: Cache{
			TTL: cacheTTL,
		},
		Overrides: Overrides{
			FullOverridePath: fullOverridePath,
			PatchPath:        patchPath,
			DisableWatch:     noWatch,
		},
		Log: Log{
			Pretty: pretty,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither Host nor Port are set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// "localhost".
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
