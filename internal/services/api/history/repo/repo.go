// Package repo provides postgres access for history
package repo

import (
	"context"
	stderrs "errors"

	"github.com/jackc/pgx/v5"

	"ekilibria/internal/modkit/repokit"
	perr "ekilibria/internal/platform/errors"
)

// Repo defines the repository contract for history
type Repo interface {
	Insert(ctx context.Context, row RowWeek) (string, error)
	List(ctx context.Context, provider, account, from, to string, limit int) ([]RowWeek, error)
	Get(ctx context.Context, id string) (RowWeek, error)
}

// RowWeek represents one wellbeing_weeks row
// Features and Contributions carry raw jsonb bytes
type RowWeek struct {
	ID            string
	Provider      string
	Account       string
	FechaDesde    string
	FechaHasta    string
	Features      []byte
	WeekType      *int
	BurnoutIndex  *float64
	Contributions []byte
	CreatedAt     string
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

// EnsureSchema creates the history table when it does not exist
func EnsureSchema(ctx context.Context, q repokit.Queryer) error {
	const ddl = `
create table if not exists wellbeing_weeks (
	id uuid primary key default gen_random_uuid(),
	provider text not null,
	account text not null default '',
	fecha_desde date not null,
	fecha_hasta date not null,
	features jsonb not null,
	week_type int,
	burnout_index double precision,
	contributions jsonb,
	created_at timestamptz not null default now()
)`
	if _, err := q.Exec(ctx, ddl); err != nil {
		return err
	}
	const idx = `create index if not exists wellbeing_weeks_desde_idx on wellbeing_weeks (fecha_desde)`
	_, err := q.Exec(ctx, idx)
	return err
}

func (r *queries) Insert(ctx context.Context, row RowWeek) (string, error) {
	const sql = `
insert into wellbeing_weeks
(provider, account, fecha_desde, fecha_hasta, features, week_type, burnout_index, contributions)
values ($1, $2, $3::date, $4::date, $5, $6, $7, $8)
returning id::text
`
	var id string
	err := r.q.QueryRow(ctx, sql,
		row.Provider,
		row.Account,
		row.FechaDesde,
		row.FechaHasta,
		row.Features,
		row.WeekType,
		row.BurnoutIndex,
		row.Contributions,
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *queries) List(ctx context.Context, provider, account, from, to string, limit int) ([]RowWeek, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	const sql = `
select id::text, provider, account, fecha_desde::text, fecha_hasta::text,
features, week_type, burnout_index, contributions, created_at::text
from wellbeing_weeks
where ($1 = '' or provider = $1)
and ($2 = '' or account = $2)
and ($3 = '' or fecha_desde >= $3::date)
and ($4 = '' or fecha_desde <= $4::date)
order by fecha_desde desc, created_at desc
limit $5
`
	rows, err := r.q.Query(ctx, sql, provider, account, from, to, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RowWeek
	for rows.Next() {
		var rr RowWeek
		if err := rows.Scan(
			&rr.ID,
			&rr.Provider,
			&rr.Account,
			&rr.FechaDesde,
			&rr.FechaHasta,
			&rr.Features,
			&rr.WeekType,
			&rr.BurnoutIndex,
			&rr.Contributions,
			&rr.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *queries) Get(ctx context.Context, id string) (RowWeek, error) {
	const sql = `
select id::text, provider, account, fecha_desde::text, fecha_hasta::text,
features, week_type, burnout_index, contributions, created_at::text
from wellbeing_weeks
where id = $1::uuid
`
	var rr RowWeek
	err := r.q.QueryRow(ctx, sql, id).Scan(
		&rr.ID,
		&rr.Provider,
		&rr.Account,
		&rr.FechaDesde,
		&rr.FechaHasta,
		&rr.Features,
		&rr.WeekType,
		&rr.BurnoutIndex,
		&rr.Contributions,
		&rr.CreatedAt,
	)
	if stderrs.Is(err, pgx.ErrNoRows) {
		return RowWeek{}, perr.NotFoundf("week %s not found", id)
	}
	if err != nil {
		return RowWeek{}, err
	}
	return rr, nil
}
