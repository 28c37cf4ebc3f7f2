package orgdir

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/menengai/edge/pkg/metrics"
	"github.com/menengai/edge/pkg/pg"
)

// Querier is the subset of pgxpool.Pool used by Postgres.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Postgres reads membership directly from the database.
type Postgres struct {
	db        Querier
	memberSQL string
	slugSQL   string
}

// NewPostgres builds a Postgres directory. Table names come from cfg.
func NewPostgres(db Querier, cfg Config) *Postgres {
	members := pgx.Identifier{defaultString(cfg.MembersTable, "organization_members")}.Sanitize()
	orgs := pgx.Identifier{defaultString(cfg.OrgsTable, "organizations")}.Sanitize()

	return &Postgres{
		db:        db,
		memberSQL: fmt.Sprintf("SELECT organization_id FROM %s WHERE user_id = $1 ORDER BY created_at ASC LIMIT 1", members),
		slugSQL:   fmt.Sprintf("SELECT slug FROM %s WHERE id = $1", orgs),
	}
}

func (p *Postgres) OrganizationIDForUser(ctx context.Context, userID string) (uuid.UUID, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, ErrNotFound
	}

	started := time.Now()
	var orgID uuid.UUID
	err = p.db.QueryRow(ctx, p.memberSQL, uid).Scan(&orgID)
	metrics.RecordLookup("organization_id", started, ignoreNotFound(err))
	if err != nil {
		return uuid.Nil, mapPgError(err)
	}
	return orgID, nil
}

func (p *Postgres) OrganizationSlug(ctx context.Context, orgID uuid.UUID) (string, error) {
	started := time.Now()
	var slug string
	err := p.db.QueryRow(ctx, p.slugSQL, orgID).Scan(&slug)
	metrics.RecordLookup("organization_slug", started, ignoreNotFound(err))
	if err != nil {
		return "", mapPgError(err)
	}
	return slug, nil
}

func mapPgError(err error) error {
	if pg.IsNotFoundError(err) {
		return ErrNotFound
	}
	return errors.Join(ErrLookupFailed, err)
}

func ignoreNotFound(err error) error {
	if pg.IsNotFoundError(err) {
		return nil
	}
	return err
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
