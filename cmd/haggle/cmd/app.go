package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/donaldgifford/haggle/internal/config"
	"github.com/donaldgifford/haggle/internal/ebay"
	"github.com/donaldgifford/haggle/internal/engine"
	"github.com/donaldgifford/haggle/internal/market"
	"github.com/donaldgifford/haggle/internal/notify"
	"github.com/donaldgifford/haggle/internal/store"
)

// app holds the long-lived components shared by serve and analyze.
type app struct {
	store    store.Store
	limiter  *ebay.RateLimiter
	provider *market.Provider
	engine   *engine.Engine
	closers  []func()
}

func newApp(ctx context.Context, cfg *config.Config, log *slog.Logger) (*app, error) {
	a := &app{}

	if cfg.Database.Enabled() {
		pg, err := store.NewPostgresStore(ctx, cfg.Database.DSN(), cfg.Database.PoolSize)
		if err != nil {
			return nil, fmt.Errorf("connecting to database: %w", err)
		}
		if err := pg.Migrate(ctx); err != nil {
			pg.Close()
			return nil, fmt.Errorf("running migrations: %w", err)
		}
		a.store = pg
		a.closers = append(a.closers, pg.Close)
		log.Info("using postgres store", "host", cfg.Database.Host, "db", cfg.Database.Name)
	} else {
		a.store = store.NewMemoryStore()
		log.Info("no database configured, using in-memory store")
	}

	providerOpts := []market.ProviderOption{
		market.WithStore(a.store),
		market.WithLogger(log),
		market.WithCache(market.NewCache[[]ebay.Listing](cfg.Cache.TTL)),
		market.WithMaxResults(cfg.Marketplace.MaxResults),
		market.WithHistoryWindow(cfg.Marketplace.HistoryWindowDays),
	}
	if cfg.Marketplace.Enabled {
		a.limiter = ebay.NewRateLimiter(
			cfg.Marketplace.RateLimit.PerSecond,
			cfg.Marketplace.RateLimit.Burst,
			cfg.Marketplace.RateLimit.DailyLimit,
		)
		scraper := ebay.NewScraper(
			ebay.WithBaseURL(cfg.Marketplace.BaseURL),
			ebay.WithUserAgent(cfg.Marketplace.UserAgent),
			ebay.WithTimeout(cfg.Marketplace.Timeout),
			ebay.WithRateLimiter(a.limiter),
			ebay.WithLogger(log),
		)
		providerOpts = append(providerOpts, market.WithSearcher(scraper))
		log.Info("marketplace scraping enabled", "base_url", cfg.Marketplace.BaseURL)
	}
	a.provider = market.NewProvider(providerOpts...)

	var notifier notify.Notifier = notify.NewNoOpNotifier(log)
	if cfg.Notifications.Discord.Enabled {
		notifier = notify.NewDiscordNotifier(cfg.Notifications.Discord.WebhookURL)
	}

	loc, err := time.LoadLocation(cfg.Engine.Timezone)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("loading engine.timezone: %w", err)
	}

	a.engine = engine.NewEngine(a.provider, a.provider, a.store, notifier,
		engine.WithLogger(log),
		engine.WithFetchTimeout(cfg.Engine.FetchTimeout),
		engine.WithHistoryWindow(cfg.Marketplace.HistoryWindowDays),
		engine.WithTimingAnalysis(cfg.Engine.TimingAnalysis),
		engine.WithSuccessRateTuning(cfg.Engine.SuccessRateTuning, cfg.Engine.MinOutcomes),
		engine.WithLocation(loc),
	)

	if cfg.Engine.SuccessRateTuning {
		if _, err := a.engine.RefreshSuccessRates(ctx); err != nil {
			log.Warn("initial success rate refresh failed", "error", err)
		}
	}

	return a, nil
}

// Close releases the store connection, if any.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}
