package orgdir_test

import (
	"context"
	"errors"
	"io/fs"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menengai/edge/pkg/orgdir"
)

const (
	memberSQL = `SELECT organization_id FROM "organization_members" WHERE user_id = $1 ORDER BY created_at ASC LIMIT 1`
	slugSQL   = `SELECT slug FROM "organizations" WHERE id = $1`
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func TestPostgresOrganizationIDForUser(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	orgID := uuid.New()

	t.Run("member", func(t *testing.T) {
		t.Parallel()

		mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(memberSQL)).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"organization_id"}).AddRow(orgID))

		got, err := orgdir.NewPostgres(mock, orgdir.Config{}).OrganizationIDForUser(context.Background(), userID.String())
		require.NoError(t, err)
		assert.Equal(t, orgID, got)
	})

	t.Run("no rows", func(t *testing.T) {
		t.Parallel()

		mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(memberSQL)).
			WithArgs(userID).
			WillReturnError(pgx.ErrNoRows)

		_, err := orgdir.NewPostgres(mock, orgdir.Config{}).OrganizationIDForUser(context.Background(), userID.String())
		assert.ErrorIs(t, err, orgdir.ErrNotFound)
	})

	t.Run("query failure", func(t *testing.T) {
		t.Parallel()

		down := errors.New("conn reset")
		mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(memberSQL)).
			WithArgs(userID).
			WillReturnError(down)

		_, err := orgdir.NewPostgres(mock, orgdir.Config{}).OrganizationIDForUser(context.Background(), userID.String())
		assert.ErrorIs(t, err, orgdir.ErrLookupFailed)
		assert.ErrorIs(t, err, down)
	})

	t.Run("non uuid subject is not queried", func(t *testing.T) {
		t.Parallel()

		mock := newMock(t)

		_, err := orgdir.NewPostgres(mock, orgdir.Config{}).OrganizationIDForUser(context.Background(), "not-a-uuid")
		assert.ErrorIs(t, err, orgdir.ErrNotFound)
	})

	t.Run("custom table", func(t *testing.T) {
		t.Parallel()

		mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(`FROM "tenant_members"`)).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"organization_id"}).AddRow(orgID))

		got, err := orgdir.NewPostgres(mock, orgdir.Config{MembersTable: "tenant_members"}).
			OrganizationIDForUser(context.Background(), userID.String())
		require.NoError(t, err)
		assert.Equal(t, orgID, got)
	})
}

func TestPostgresOrganizationSlug(t *testing.T) {
	t.Parallel()

	orgID := uuid.New()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(slugSQL)).
			WithArgs(orgID).
			WillReturnRows(pgxmock.NewRows([]string{"slug"}).AddRow("acme"))

		slug, err := orgdir.NewPostgres(mock, orgdir.Config{}).OrganizationSlug(context.Background(), orgID)
		require.NoError(t, err)
		assert.Equal(t, "acme", slug)
	})

	t.Run("quoted table name", func(t *testing.T) {
		t.Parallel()

		mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT slug FROM "weird""name" WHERE id = $1`)).
			WithArgs(orgID).
			WillReturnRows(pgxmock.NewRows([]string{"slug"}).AddRow("acme"))

		_, err := orgdir.NewPostgres(mock, orgdir.Config{OrgsTable: `weird"name`}).OrganizationSlug(context.Background(), orgID)
		require.NoError(t, err)
	})

	t.Run("no rows", func(t *testing.T) {
		t.Parallel()

		mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(slugSQL)).
			WithArgs(orgID).
			WillReturnError(pgx.ErrNoRows)

		_, err := orgdir.NewPostgres(mock, orgdir.Config{}).OrganizationSlug(context.Background(), orgID)
		assert.ErrorIs(t, err, orgdir.ErrNotFound)
	})
}

func TestMigrations(t *testing.T) {
	t.Parallel()

	entries, err := fs.ReadDir(orgdir.Migrations(), ".")
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"00001_organizations.sql", "00002_organization_members.sql"}, names)
}
