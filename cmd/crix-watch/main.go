// crix-watch polls 24h tickers from the exchange and logs them. With
// credentials available (environment or secret store) it also logs the
// account balances once at startup.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/crix-exchange/go-crix/crix/client"
	"github.com/crix-exchange/go-crix/pkg/config"
	"github.com/crix-exchange/go-crix/pkg/logger"
	"github.com/crix-exchange/go-crix/pkg/secretstore"
)

func main() {
	configPath := flag.String("config", "config.yaml", "config file path")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.Fatal(err)
	}
	log := logger.Init(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c := client.NewClient(cfg.Env).SetLogger(log)
	if cfg.CacheMarkets != nil && !*cfg.CacheMarkets {
		c.SetRefreshPolicy(client.NeverCache)
	}

	logBalances(ctx, cfg, log)

	watched := map[string]bool{}
	for _, sym := range cfg.Symbols {
		watched[sym] = true
	}

	log.WithFields(logrus.Fields{"env": cfg.Env, "interval": cfg.PollInterval}).Info("watching tickers")
	ticker := time.NewTicker(cfg.PollInterval)
	defer ticker.Stop()

	for {
		poll(ctx, c, log, watched)
		select {
		case <-ctx.Done():
			log.Info("shutting down")
			return
		case <-ticker.C:
		}
	}
}

func poll(ctx context.Context, c *client.Client, log *logrus.Logger, watched map[string]bool) {
	tickers, err := c.FetchTicker(ctx)
	if err != nil {
		log.WithError(err).Warn("ticker poll failed")
		return
	}
	for _, t := range tickers {
		if len(watched) > 0 && !watched[t.SymbolName] {
			continue
		}
		log.WithFields(logrus.Fields{
			"symbol": t.SymbolName,
			"close":  t.Close,
			"volume": t.Volume,
		}).Info("ticker")
	}
}

// logBalances reports account balances when credentials can be found,
// first in the environment, then in the secret store.
func logBalances(ctx context.Context, cfg *config.Config, log *logrus.Logger) {
	token, secret, ok := config.Credentials()
	if !ok && cfg.SecretStorePath != "" {
		encKey, err := secretstore.ParseKey(os.Getenv("CRIX_SECRETSTORE_KEY"))
		if err != nil {
			log.WithError(err).Warn("bad secret store key")
			return
		}
		store, err := secretstore.Open(secretstore.Options{
			Path:          cfg.SecretStorePath,
			EncryptionKey: encKey,
			ReadOnly:      true,
		})
		if err != nil {
			log.WithError(err).Warn("secret store unavailable")
			return
		}
		defer store.Close()
		token, secret, ok, err = store.Credentials()
		if err != nil {
			log.WithError(err).Warn("secret store read failed")
			return
		}
	}
	if !ok {
		log.Debug("no credentials, skipping balances")
		return
	}

	ac := client.NewAuthClient(token, secret, cfg.Env)
	accounts, err := ac.FetchBalance(ctx)
	if err != nil {
		log.WithError(err).Warn("balance fetch failed")
		return
	}
	for _, acct := range accounts {
		log.WithFields(logrus.Fields{
			"currency":  acct.CurrencyName,
			"balance":   acct.Balance,
			"available": acct.Available(),
		}).Info("account")
	}
}
