package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"scrapekit/internal/config"
	"scrapekit/internal/logger"
	"scrapekit/pkg/proxy"
	"scrapekit/pkg/retry"
)

var (
	check   = flag.Bool("check", false, "Send a request through the resolved proxy and print the exit address")
	version = flag.Bool("version", false, "Show version")
)

const Version = "1.0.0"

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("scrapekit v%s\n", Version)
		return
	}

	log := logger.New("scrapekit")
	id := logger.GenerateID()

	cfg, err := config.Load()
	if err != nil {
		log.Error(id, "failed to load config: %v", err)
		os.Exit(1)
	}

	p, err := proxy.Load(cfg.ProxySettings())
	if err != nil {
		log.Error(id, "%v", err)
		os.Exit(1)
	}

	var endpoint proxy.StaticProxy
	switch v := p.(type) {
	case *proxy.RotatingProxy:
		log.Info(id, "loaded rotating proxy with %d endpoints", v.Len())
		endpoint = v.Next()
	case proxy.StaticProxy:
		log.Info(id, "loaded static proxy")
		endpoint = v
	}

	// Credentials stay out of the output on purpose.
	fmt.Println(endpoint.Server())

	if !*check {
		return
	}

	if err := runCheck(context.Background(), log, id, endpoint, cfg); err != nil {
		log.Error(id, "check failed: %v", err)
		os.Exit(1)
	}
}

// runCheck requests the configured check URL through the proxy and logs the
// body, typically the exit IP for the usual check services.
func runCheck(ctx context.Context, log *logger.Logger, id string, endpoint proxy.StaticProxy, cfg *config.Config) error {
	tr, err := endpoint.ClientProxy().Transport()
	if err != nil {
		return err
	}
	client := &http.Client{Transport: tr}

	log.Info(id, "checking %s via %s", cfg.Check.URL, endpoint.Server())

	body, err := retry.DoValue(ctx, cfg.RetryConfig(), func(ctx context.Context) (string, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.Check.URL, nil)
		if err != nil {
			return "", err
		}

		resp, err := client.Do(req)
		if err != nil {
			return "", err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("HTTP %d", resp.StatusCode)
		}

		b, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(b)), nil
	})
	if err != nil {
		return err
	}

	log.Info(id, "exit address: %s", body)
	return nil
}
