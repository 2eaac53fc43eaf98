package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	fnsmetadata "github.com/zkfairdomains/fns-metadata"
	"github.com/zkfairdomains/fns-metadata/common"
	"github.com/zkfairdomains/fns-metadata/schema"

	"github.com/urfave/cli/v2"
)

var log = common.NewLog("main")

func main() {
	app := &cli.App{
		Name:  "fns-metadata",
		Usage: "metadata service for zkFair name tokens",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "port", Value: schema.DefaultPort, EnvVars: []string{"PORT"}},
			&cli.StringFlag{Name: "metrics_port", Value: schema.DefaultMetricsPort, Usage: "empty disables the metric server", EnvVars: []string{"METRICS_PORT"}},
			&cli.StringFlag{Name: "server_url", Value: schema.DefaultServerURL, Usage: "public base url used in image links", EnvVars: []string{"SERVER_URL"}},
			&cli.StringFlag{Name: "app_url", Value: schema.DefaultAppURL, EnvVars: []string{"APP_URL"}},

			&cli.StringFlag{Name: "node_provider", Value: schema.DefaultNodeProvider, Usage: "infura, cloudflare, google or geth", EnvVars: []string{"NODE_PROVIDER"}},
			&cli.StringFlag{Name: "node_provider_url", Value: schema.DefaultNodeURL, EnvVars: []string{"NODE_PROVIDER_URL"}},
			&cli.StringFlag{Name: "node_provider_url_cf", EnvVars: []string{"NODE_PROVIDER_URL_CF"}},
			&cli.StringFlag{Name: "node_provider_url_goerli", EnvVars: []string{"NODE_PROVIDER_URL_GOERLI"}},

			&cli.StringFlag{Name: "graph_url", Usage: "sepolia subgraph url", EnvVars: []string{"GRAPH_API_URL"}},
			&cli.StringFlag{Name: "graph_url_mainnet", EnvVars: []string{"GRAPH_API_URL_MAINNET"}},
			&cli.StringFlag{Name: "registry", Value: schema.DefaultRegistry, Usage: "registry contract address", EnvVars: []string{"ADDRESS_ETH_REGISTRY"}},

			&cli.DurationFlag{Name: "timeout", Value: schema.DefaultTimeout, Usage: "per request resolution budget", EnvVars: []string{"RESPONSE_TIMEOUT"}},
			&cli.BoolFlag{Name: "inline_images", Value: false, Usage: "embed svg images instead of linking them", EnvVars: []string{"INLINE_IMAGES"}},
			&cli.BoolFlag{Name: "verify_namehash", Value: false, Usage: "reject index records whose labelhash does not match the token id", EnvVars: []string{"VERIFY_NAMEHASH"}},

			&cli.IntFlag{Name: "rate_limit", Value: schema.DefaultRateLimit, Usage: "requests per period per client, 0 disables", EnvVars: []string{"RATE_LIMIT"}},
			&cli.StringFlag{Name: "rate_limit_period", Value: schema.DefaultRateLimitUnit, Usage: "S, M, H or D", EnvVars: []string{"RATE_LIMIT_PERIOD"}},
			&cli.StringFlag{Name: "rate_whitelist", Usage: "comma separated origins or ips", EnvVars: []string{"RATE_WHITELIST"}},
			&cli.IntFlag{Name: "index_lag_interval", Value: schema.DefaultLagInterval, Usage: "seconds between index lag probes, 0 disables", EnvVars: []string{"INDEX_LAG_INTERVAL"}},

			&cli.StringFlag{Name: "sentry_dsn", EnvVars: []string{"SENTRY_DSN"}},
		},
		Action: run,
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Crit("app run", "err", err)
		os.Exit(1)
	}
}

func whitelist(s string) map[string]struct{} {
	res := make(map[string]struct{})
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			res[v] = struct{}{}
		}
	}
	return res
}

func run(c *cli.Context) error {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	if dsn := c.String("sentry_dsn"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			return err
		}
		defer sentry.Flush(2 * time.Second)
	}

	cfg := schema.Config{
		Port:                  c.String("port"),
		MetricsPort:           c.String("metrics_port"),
		ServerURL:             strings.TrimRight(c.String("server_url"), "/"),
		AppURL:                strings.TrimRight(c.String("app_url"), "/"),
		NodeProvider:          c.String("node_provider"),
		NodeProviderURL:       c.String("node_provider_url"),
		NodeProviderURLCF:     c.String("node_provider_url_cf"),
		NodeProviderURLGoerli: c.String("node_provider_url_goerli"),
		GraphURL:              c.String("graph_url"),
		MainnetGraphURL:       c.String("graph_url_mainnet"),
		RegistryAddress:       c.String("registry"),
		Timeout:               c.Duration("timeout"),
		InlineImages:          c.Bool("inline_images"),
		VerifyNamehash:        c.Bool("verify_namehash"),
		RateLimit:             c.Int("rate_limit"),
		RateLimitPeriod:       c.String("rate_limit_period"),
		IpRateWhitelist:       whitelist(c.String("rate_whitelist")),
		IndexLagInterval:      c.Int("index_lag_interval"),
		SentryDSN:             c.String("sentry_dsn"),
	}

	s, err := fnsmetadata.New(cfg)
	if err != nil {
		return err
	}
	s.Run()

	<-signals
	s.Close()
	return nil
}
