// Command ekilibria-extract runs a one-shot extraction for a provider account
// and prints the resulting weekly payloads as JSON
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"

	"ekilibria/internal/adapters/model"
	"ekilibria/internal/adapters/workspace"
	"ekilibria/internal/adapters/workspace/google"
	"ekilibria/internal/adapters/workspace/msgraph"
	"ekilibria/internal/platform/config"
	"ekilibria/internal/platform/logger"
	welldom "ekilibria/internal/services/api/wellbeing/domain"
	wellsvc "ekilibria/internal/services/api/wellbeing/service"
)

func main() {
	_ = godotenv.Load()

	var (
		provider    = flag.String("provider", workspace.ProviderGoogle, "workspace provider: google or microsoft")
		weeks       = flag.Int("weeks", 1, "number of closed weeks to extract")
		ref         = flag.String("ref", "", "reference date (ISO), defaults to today")
		aggregation = flag.String("aggregation", "", "communication aggregation: average or total")
		account     = flag.String("account", "", "account email, resolved from the provider when empty")
	)
	flag.Parse()

	l := logger.Named("extract")
	cfg := config.New().Prefix("EKILIBRIA_")

	// provider OAuth token obtained out of band
	token := cfg.MustString("TOKEN")

	now := time.Now
	if *ref != "" {
		day, err := time.Parse("2006-01-02", *ref)
		if err != nil {
			l.Fatal().Err(err).Str("ref", *ref).Msg("ref is not an ISO date")
		}
		now = func() time.Time { return day }
	}

	svcCfg := wellsvc.Config{
		Sources: map[string]workspace.ActivityDataSource{
			workspace.ProviderGoogle:    google.New(),
			workspace.ProviderMicrosoft: msgraph.New(),
		},
		Now: now,
	}
	if base := cfg.MayString("MODEL_URL", ""); base != "" {
		svcCfg.Predictor = model.New(base)
	}
	svc := wellsvc.New(svcCfg)

	out, err := svc.Extract(context.Background(), token, welldom.ExtractInput{
		Provider:     *provider,
		Weeks:        *weeks,
		Aggregation:  *aggregation,
		AccountEmail: *account,
	})
	if err != nil {
		l.Fatal().Err(err).Msg("extraction failed")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		l.Fatal().Err(err).Msg("encode output")
	}
}
