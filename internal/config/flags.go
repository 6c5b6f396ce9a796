package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all agent configuration flags.
//
// Flags:
//
//	-a control API address in format [host]:[port]
//	-r remote backend base URL
//	-d local database path (SQLite)
//	-t remote bearer token
//	-c/-config json file path with configs
//	-request-timeout outbound request timeout (e.g., "15s")
//	-sync-interval background sync interval (e.g., "5m")
//	-sync-batch-size unsynced batch size per page
//	-sync-max-retries transient retry bound per record
//	-sync-workers concurrent entity strategies per pass
func ParseFlags() *StructuredConfig {
	var apiAddress NetAddress
	var remoteBaseURL string
	var databaseDSN string
	var token string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var syncInterval time.Duration
	var batchSize int
	var maxRetries int
	var syncWorkers int

	flag.Var(&apiAddress, "a", "Control API address host:port")
	flag.StringVar(&remoteBaseURL, "r", "", "Remote backend base URL")
	flag.StringVar(&databaseDSN, "d", "", "Local database path")
	flag.StringVar(&token, "t", "", "Remote bearer token")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Outbound request timeout (e.g., 15s)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Background sync interval (e.g., 5m)")
	flag.IntVar(&batchSize, "sync-batch-size", 0, "Unsynced batch size per page")
	flag.IntVar(&maxRetries, "sync-max-retries", 0, "Transient retry bound per record")
	flag.IntVar(&syncWorkers, "sync-workers", 0, "Concurrent entity strategies per pass")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Token: token,
		},
		Remote: Remote{
			BaseURL:        remoteBaseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		API: API{
			HTTPAddress: apiAddress.String(),
		},
		Sync: Sync{
			BatchSize:  batchSize,
			MaxRetries: maxRetries,
			Workers:    syncWorkers,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither host nor port are set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
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
