package cmd

import (
	"context"
	"fmt"

	"github.com/ksysoev/waterlily/pkg/api"
	"github.com/ksysoev/waterlily/pkg/auth"
	"github.com/ksysoev/waterlily/pkg/store"
)

func runServe(ctx context.Context, arg *args) error {
	if err := initLogger(arg); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}

	cfg, err := loadConfig(arg)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	issuer, err := auth.NewIssuer(cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to create token issuer: %w", err)
	}

	db, err := store.Open(ctx, cfg.Store)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}

	defer func() { _ = db.Close() }()

	srv, err := api.New(cfg.Server, db, issuer)
	if err != nil {
		return fmt.Errorf("failed to create api server: %w", err)
	}

	return srv.Run(ctx)
}
