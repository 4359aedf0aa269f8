package config

import (
	"errors"
	"flag"
	"fmt"
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

// ParseFlags parses the service flags from args (normally os.Args[1:]).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-driver database driver (pgx or sqlite3)
//	-c/-config json file path with configs
//	-kb-url knowledge-base service base URL
//	-kb-key knowledge-base API key
//	-kb-workflow-key workflow API key
//	-kb-timeout outbound request timeout (e.g., "30s")
//	-document-mode document upload mode (text or file)
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-sync-concurrency number of sync workers
//	-reconcile-interval reconcile job interval, 0 disables it
//	-log-file rotating log file path
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN, databaseDriver string
	var jsonConfigPath string
	var kbURL, kbKey, kbWorkflowKey, documentMode string
	var kbTimeout, requestTimeout, reconcileInterval time.Duration
	var syncConcurrency int
	var logFile string

	fs := flag.NewFlagSet("go-kb-sync", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "driver", "", "Database driver (pgx or sqlite3)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&kbURL, "kb-url", "", "Knowledge-base service base URL")
	fs.StringVar(&kbKey, "kb-key", "", "Knowledge-base API key")
	fs.StringVar(&kbWorkflowKey, "kb-workflow-key", "", "Workflow API key")
	fs.DurationVar(&kbTimeout, "kb-timeout", 0, "Outbound request timeout (e.g., 30s)")
	fs.StringVar(&documentMode, "document-mode", "", "Document upload mode (text or file)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&syncConcurrency, "sync-concurrency", 0, "Number of sync workers")
	fs.DurationVar(&reconcileInterval, "reconcile-interval", 0, "Reconcile interval, 0 disables the job")
	fs.StringVar(&logFile, "log-file", "", "Rotating log file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogFile: logFile,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			KnowledgeBase: KnowledgeBase{
				BaseURL:        kbURL,
				APIKey:         kbKey,
				WorkflowAPIKey: kbWorkflowKey,
				RequestTimeout: kbTimeout,
				DocumentMode:   documentMode,
			},
		},
		Workers: Workers{
			SyncConcurrency:   syncConcurrency,
			ReconcileInterval: reconcileInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
