package site

import (
	"context"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	ListenAddr  string `env:"PORTFOLIO_LISTEN_ADDR, default=0.0.0.0:3000"`
	ContentPath string `env:"PORTFOLIO_CONTENT_PATH"`
	LogLevel    string `env:"PORTFOLIO_LOG_LEVEL, default=info"`
	LogFormat   string `env:"PORTFOLIO_LOG_FORMAT, default=text"`

	// Merge adjacent essay lines into one paragraph when rendering.
	ParagraphReflow bool `env:"PORTFOLIO_PARAGRAPH_REFLOW, default=false"`

	Dev bool `env:"PORTFOLIO_DEV, default=false"`
}

func LoadConfig(ctx context.Context) (*Config, error) {
	return LoadConfigWith(ctx, envconfig.OsLookuper())
}

func LoadConfigWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: l,
	})
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
