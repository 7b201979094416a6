package config

import (
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// Flag names shared by every command.
const (
	FlagAddress        = "address"
	FlagRequestTimeout = "request-timeout"
	FlagEndpoint       = "endpoint"
	FlagAdapterTimeout = "adapter-timeout"
	FlagDSN            = "dsn"
	FlagInventoryFile  = "inventory"
	FlagLogLevel       = "log-level"
	FlagJSONConfigPath = "config"
	FlagAppVersion     = "app-version"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// RegisterFlags declares all configuration flags on fs.
//
// Flags:
//
//	-a/--address          management server address in format [host]:[port]
//	--request-timeout     server request timeout (e.g. "30s", "1m")
//	--endpoint            bundle list endpoint URL
//	--adapter-timeout     outbound request timeout (e.g. "15s")
//	-d/--dsn              database DSN
//	-i/--inventory        bundle inventory file (JSON or YAML)
//	-l/--log-level        log level
//	-c/--config           json file path with configs
//	--app-version         application version reported by the server
func RegisterFlags(fs *pflag.FlagSet) {
	fs.VarP(&NetAddress{}, FlagAddress, "a", "Net address host:port")
	fs.Duration(FlagRequestTimeout, 0, "Request timeout (e.g., 30s, 1m)")
	fs.String(FlagEndpoint, "", "Bundle list endpoint URL")
	fs.Duration(FlagAdapterTimeout, 0, "Outbound request timeout (e.g., 15s)")
	fs.StringP(FlagDSN, "d", "", "Database DSN")
	fs.StringP(FlagInventoryFile, "i", "", "Bundle inventory file")
	fs.StringP(FlagLogLevel, "l", "", "Log level (debug, info, warn, error)")
	fs.StringP(FlagJSONConfigPath, "c", "", "JSON config file path")
	fs.String(FlagAppVersion, "", "Application version")
}

// ParseFlags converts the flags declared by [RegisterFlags] into a
// configuration layer. Unset flags produce zero values, which do not
// override other layers when merged. A nil fs yields an empty layer.
func ParseFlags(fs *pflag.FlagSet) *StructuredConfig {
	if fs == nil {
		return &StructuredConfig{}
	}

	return &StructuredConfig{
		App: App{
			Version:  flagString(fs, FlagAppVersion),
			LogLevel: flagString(fs, FlagLogLevel),
		},
		Storage: Storage{
			DB: DB{
				DSN: flagString(fs, FlagDSN),
			},
			Files: Files{
				InventoryFile: flagString(fs, FlagInventoryFile),
			},
		},
		Server: Server{
			HTTPAddress:    flagString(fs, FlagAddress),
			RequestTimeout: flagDuration(fs, FlagRequestTimeout),
		},
		Adapter: Adapter{
			BundlesEndpoint: flagString(fs, FlagEndpoint),
			RequestTimeout:  flagDuration(fs, FlagAdapterTimeout),
		},
		JSONFilePath: flagString(fs, FlagJSONConfigPath),
	}
}

func flagString(fs *pflag.FlagSet, name string) string {
	f := fs.Lookup(name)
	if f == nil {
		return ""
	}
	return f.Value.String()
}

func flagDuration(fs *pflag.FlagSet, name string) time.Duration {
	d, err := fs.GetDuration(name)
	if err != nil {
		return 0
	}
	return d
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
		return errors.New("port number must be in range 1-65535")
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

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
