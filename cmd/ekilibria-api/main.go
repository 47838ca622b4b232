// @title         Ekilibria API
// @version       0.1.0
// @description   Weekly workplace-activity extraction and burnout scoring

package main

import (
	"context"

	"github.com/joho/godotenv"

	"ekilibria/internal/platform/config"
	"ekilibria/internal/platform/logger"
	phttp "ekilibria/internal/platform/net/http"
	"ekilibria/internal/platform/store"

	"ekilibria/internal/services/api"
	historyrepo "ekilibria/internal/services/api/history/repo"
)

func main() {
	// optional .env for local runs, real deployments set the environment
	_ = godotenv.Load()

	// service-scoped config for HTTP etc (EKILIBRIA_API_*)
	root := config.New()
	apiCfg := root.Prefix("EKILIBRIA_API_")

	pgCfg := root.Prefix("SERVICE_PGSQL_") // pgCfg lives under SERVICE_PGSQL_*

	// bring up logging early
	l := logger.Get()

	// open the platform store (postgres)
	st, err := store.Open(
		context.Background(),
		store.Config{
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", true),
			},
		},
		store.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	if err := historyrepo.EnsureSchema(context.Background(), st.PG); err != nil {
		l.Panic().Err(err).Msg("history schema setup failed")
	}

	// http server (reads EKILIBRIA_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Store:          st,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
