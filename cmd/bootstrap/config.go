package bootstrap

import (
	"eventora/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.QuotaConfig { return cfg.Quota },
		func(cfg config.Config) config.SentimentConfig { return cfg.Sentiment },
		func(cfg config.Config) config.RedisConfig { return cfg.Redis },
	),
)
