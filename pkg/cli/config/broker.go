package config

import (
	"log/slog"
	"time"

	"github.com/secmon-lab/batchtoken/pkg/usecase"
	"github.com/urfave/cli/v3"
)

type Broker struct {
	batchSize int64
	tokenTTL  time.Duration
}

func (x *Broker) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "batch-size",
			Usage:       "Max repositories per issued token (1-500)",
			Category:    "Broker",
			Value:       int64(usecase.DefaultBatchSize),
			Sources:     cli.EnvVars("BATCHTOKEN_BATCH_SIZE"),
			Destination: &x.batchSize,
		},
		&cli.DurationFlag{
			Name:        "token-ttl",
			Usage:       "Cache lifetime of issued tokens (up to 1h)",
			Category:    "Broker",
			Value:       usecase.DefaultTokenTTL,
			Sources:     cli.EnvVars("BATCHTOKEN_TOKEN_TTL"),
			Destination: &x.tokenTTL,
		},
	}
}

func (x *Broker) Options() []usecase.Option {
	return []usecase.Option{
		usecase.WithBatchSize(int(x.batchSize)),
		usecase.WithTokenTTL(x.tokenTTL),
	}
}

func (x *Broker) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("batchSize", x.batchSize),
		slog.Duration("tokenTTL", x.tokenTTL),
	)
}
