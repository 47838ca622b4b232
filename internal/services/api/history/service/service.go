// Package service contains history workflows
package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"ekilibria/internal/modkit/repokit"
	perr "ekilibria/internal/platform/errors"
	"ekilibria/internal/services/api/history/domain"
	"ekilibria/internal/services/api/history/repo"
)

// Service defines the service contract for history
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new history service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("history.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("history.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Record persists one scored week and returns the new row id
func (s *Svc) Record(ctx context.Context, rec domain.WeekRecord) (string, error) {
	if rec.Provider == "" {
		return "", perr.InvalidArgf("provider is required")
	}
	if _, err := time.Parse("2006-01-02", rec.FechaDesde); err != nil {
		return "", perr.InvalidArgf("fecha_desde %q is not an ISO date", rec.FechaDesde)
	}
	if _, err := time.Parse("2006-01-02", rec.FechaHasta); err != nil {
		return "", perr.InvalidArgf("fecha_hasta %q is not an ISO date", rec.FechaHasta)
	}
	feats, err := json.Marshal(rec.Features)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "encode features")
	}
	var contribs []byte
	if rec.Contributions != nil {
		contribs, err = json.Marshal(rec.Contributions)
		if err != nil {
			return "", perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "encode contributions")
		}
	}
	return s.Repo.Insert(ctx, repo.RowWeek{
		Provider:      rec.Provider,
		Account:       rec.Account,
		FechaDesde:    rec.FechaDesde,
		FechaHasta:    rec.FechaHasta,
		Features:      feats,
		WeekType:      rec.WeekType,
		BurnoutIndex:  rec.BurnoutIndex,
		Contributions: contribs,
	})
}

// List returns persisted weeks matching the filters, newest window first
func (s *Svc) List(ctx context.Context, in domain.ListInput) ([]domain.WeekRecord, error) {
	for _, d := range []string{in.From, in.To} {
		if d == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return nil, perr.InvalidArgf("date filter %q is not an ISO date", d)
		}
	}
	rows, err := s.Repo.List(ctx, in.Provider, in.Account, in.From, in.To, in.Limit)
	if err != nil {
		return nil, err
	}
	out := make([]domain.WeekRecord, 0, len(rows))
	for _, r := range rows {
		rec, err := fromRow(r)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// Get returns one persisted week by id
func (s *Svc) Get(ctx context.Context, id string) (domain.WeekRecord, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.WeekRecord{}, perr.InvalidArgf("id %q is not a uuid", id)
	}
	row, err := s.Repo.Get(ctx, id)
	if err != nil {
		return domain.WeekRecord{}, err
	}
	return fromRow(row)
}

func fromRow(r repo.RowWeek) (domain.WeekRecord, error) {
	rec := domain.WeekRecord{
		ID:           r.ID,
		Provider:     r.Provider,
		Account:      r.Account,
		FechaDesde:   r.FechaDesde,
		FechaHasta:   r.FechaHasta,
		WeekType:     r.WeekType,
		BurnoutIndex: r.BurnoutIndex,
		CreatedAt:    r.CreatedAt,
	}
	if err := json.Unmarshal(r.Features, &rec.Features); err != nil {
		return domain.WeekRecord{}, perr.Wrapf(err, perr.ErrorCodeDB, "decode features for week %s", r.ID)
	}
	if len(r.Contributions) > 0 {
		if err := json.Unmarshal(r.Contributions, &rec.Contributions); err != nil {
			return domain.WeekRecord{}, perr.Wrapf(err, perr.ErrorCodeDB, "decode contributions for week %s", r.ID)
		}
	}
	return rec, nil
}
