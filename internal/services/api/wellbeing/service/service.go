// Package service contains wellbeing workflows
package service

import (
	"context"
	"time"

	"ekilibria/internal/adapters/workspace"
	"ekilibria/internal/core/weekwin"
	"ekilibria/internal/core/wellness"
	perr "ekilibria/internal/platform/errors"
	"ekilibria/internal/platform/logger"
	"ekilibria/internal/services/api/wellbeing/domain"

	historydom "ekilibria/internal/services/api/history/domain"
)

// Service defines the service contract for wellbeing
type Service interface{ domain.ServicePort }

// Config wires the wellbeing service collaborators
type Config struct {
	// Sources maps provider name to its activity source
	Sources map[string]workspace.ActivityDataSource

	// Predictor is nil when no model service is configured
	Predictor domain.PredictorPort

	// Recorder is nil when audit rows are disabled
	Recorder historydom.RecorderPort

	// Now overrides the clock in tests
	Now func() time.Time
}

// Svc implements the Service interface
type Svc struct {
	sources   map[string]workspace.ActivityDataSource
	predictor domain.PredictorPort
	recorder  historydom.RecorderPort
	now       func() time.Time
}

// New creates a new wellbeing service
func New(cfg Config) *Svc {
	if len(cfg.Sources) == 0 {
		panic("wellbeing.Service requires at least one activity source")
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Svc{
		sources:   cfg.Sources,
		predictor: cfg.Predictor,
		recorder:  cfg.Recorder,
		now:       cfg.Now,
	}
}

// Extract fetches the last N closed weeks of activity for one provider
// account, aggregates each into a feature vector, and scores them when a
// model service is configured
func (s *Svc) Extract(ctx context.Context, token string, in domain.ExtractInput) (domain.ExtractOutput, error) {
	src, ok := s.sources[in.Provider]
	if !ok {
		return domain.ExtractOutput{}, workspace.UnknownProviderErr(in.Provider)
	}
	if token == "" {
		return domain.ExtractOutput{}, perr.Unauthorizedf("missing bearer token")
	}

	weeks := in.Weeks
	if weeks == 0 {
		weeks = 1
	}
	wins, err := weekwin.Windows(weeks, s.now())
	if err != nil {
		return domain.ExtractOutput{}, err
	}

	auth := workspace.AuthContext{
		Provider:     in.Provider,
		Token:        token,
		AccountEmail: in.AccountEmail,
	}
	opts := wellness.Options{Aggregation: wellness.Aggregation(in.Aggregation)}

	out := domain.ExtractOutput{
		Provider: in.Provider,
		Weeks:    make([]domain.WeekReport, 0, len(wins)),
	}
	vectors := make([]wellness.FeatureVector, 0, len(wins))
	for _, win := range wins {
		act, err := workspace.FetchAll(ctx, src, auth, win)
		if err != nil {
			return domain.ExtractOutput{}, err
		}
		// resolve the account once, later windows reuse it
		auth.AccountEmail = act.Account

		cal := wellness.ExtractCalendar(win, act.Events, opts)
		comm := wellness.ExtractComms(win, act.Messages, opts)
		docs := wellness.ExtractDocs(win, act.Files, act.Account)
		fv, err := wellness.Aggregate(cal, comm, docs, win)
		if err != nil {
			return domain.ExtractOutput{}, err
		}
		vectors = append(vectors, fv)
		out.Weeks = append(out.Weeks, domain.WeekReport{Features: fv})
	}
	out.Account = auth.AccountEmail

	if s.predictor != nil && len(vectors) > 0 {
		preds, err := s.predictor.Predict(ctx, vectors)
		if err != nil {
			return domain.ExtractOutput{}, err
		}
		for i := range out.Weeks {
			if i < len(preds) {
				p := preds[i]
				out.Weeks[i].Prediction = &p
			}
		}
	}

	s.record(ctx, out)
	return out, nil
}

// Predict scores caller-supplied feature vectors
func (s *Svc) Predict(ctx context.Context, in domain.PredictInput) (domain.PredictOutput, error) {
	if s.predictor == nil {
		return domain.PredictOutput{}, perr.Upstreamf("no model service configured")
	}
	for _, v := range in.Features {
		if err := v.Validate(); err != nil {
			return domain.PredictOutput{}, err
		}
	}
	results, err := s.predictor.Predict(ctx, in.Features)
	if err != nil {
		return domain.PredictOutput{}, err
	}
	return domain.PredictOutput{Results: results}, nil
}

// record persists each extracted week, best effort
func (s *Svc) record(ctx context.Context, out domain.ExtractOutput) {
	if s.recorder == nil {
		return
	}
	for _, wk := range out.Weeks {
		rec := historydom.WeekRecord{
			Provider:   out.Provider,
			Account:    out.Account,
			FechaDesde: wk.Features.FechaDesde,
			FechaHasta: wk.Features.FechaHasta,
			Features:   wk.Features.Features,
		}
		if p := wk.Prediction; p != nil {
			wt, bi := p.WeekType, p.BurnoutIndex
			rec.WeekType = &wt
			rec.BurnoutIndex = &bi
			rec.Contributions = p.Contributions
		}
		if _, err := s.recorder.Record(ctx, rec); err != nil {
			logger.C(ctx).Warn().
				Err(err).
				Str("fecha_desde", rec.FechaDesde).
				Msg("history record failed")
		}
	}
}
