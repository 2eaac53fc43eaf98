package schema

import "time"

const (
	DefaultPort          = ":8080"
	DefaultMetricsPort   = ":9000"
	DefaultServerURL     = "https://metadata.zkfair.domains"
	DefaultAppURL        = "https://app.zkfair.domains"
	DefaultRegistry      = "0xD2804a7dD0747E6D8BEbb44b2840591eE0C21E9c"
	DefaultNodeProvider  = "geth"
	DefaultNodeURL       = "http://localhost:8545"
	DefaultTimeout       = 15 * time.Second
	DefaultLagInterval   = 60 // seconds
	DefaultRateLimit     = 600
	DefaultRateLimitUnit = "M"
)

// Config is built once at startup and passed explicitly into the server.
type Config struct {
	Port        string
	MetricsPort string
	ServerURL   string // base of deferred image urls
	AppURL      string

	NodeProvider          string
	NodeProviderURL       string
	NodeProviderURLCF     string
	NodeProviderURLGoerli string

	GraphURL        string // sepolia index
	MainnetGraphURL string

	RegistryAddress string

	Timeout        time.Duration
	InlineImages   bool
	VerifyNamehash bool

	RateLimit        int
	RateLimitPeriod  string
	IpRateWhitelist  map[string]struct{}
	IndexLagInterval int // seconds, 0 disables the probe

	SentryDSN string
}

func DefaultConfig() Config {
	return Config{
		Port:             DefaultPort,
		MetricsPort:      DefaultMetricsPort,
		ServerURL:        DefaultServerURL,
		AppURL:           DefaultAppURL,
		NodeProvider:     DefaultNodeProvider,
		NodeProviderURL:  DefaultNodeURL,
		RegistryAddress:  DefaultRegistry,
		Timeout:          DefaultTimeout,
		RateLimit:        DefaultRateLimit,
		RateLimitPeriod:  DefaultRateLimitUnit,
		IndexLagInterval: DefaultLagInterval,
	}
}
