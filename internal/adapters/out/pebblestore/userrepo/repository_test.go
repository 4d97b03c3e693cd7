package userrepo_test

import (
	"context"
	"testing"

	"shiptrack/internal/adapters/out/pebblestore"
	"shiptrack/internal/adapters/out/pebblestore/userrepo"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/user"
	"shiptrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *userrepo.PebbleUserRepository {
	t.Helper()

	db, err := pebblestore.OpenMem()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	return userrepo.NewPebbleUserRepository(db)
}

func newTestUser(t *testing.T, username string) *user.User {
	t.Helper()

	u, err := user.NewUser(kernel.NewUUID(), username, "customer", kernel.Timestamp(100))
	require.NoError(t, err)
	return u
}

func TestPebbleUserRepository_AddAndGet(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	u := newTestUser(t, "amelia")
	require.NoError(t, repo.Add(ctx, u))

	got, err := repo.Get(ctx, u.ID())
	require.NoError(t, err)

	assert.True(t, u.IsEqual(got))
	assert.Equal(t, "amelia", got.Username())
	assert.Equal(t, "customer", got.Type())
	assert.Equal(t, kernel.Timestamp(100), got.CreatedAt())
	assert.Nil(t, got.UpdatedAt())
}

func TestPebbleUserRepository_GetMissing(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	_, err := repo.Get(ctx, kernel.NewUUID())
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestPebbleUserRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	u := newTestUser(t, "amelia")
	require.NoError(t, repo.Add(ctx, u))

	require.NoError(t, u.Update("amelia-b", "admin", kernel.Timestamp(200)))
	require.NoError(t, repo.Update(ctx, u))

	got, err := repo.Get(ctx, u.ID())
	require.NoError(t, err)

	assert.Equal(t, "amelia-b", got.Username())
	assert.Equal(t, "admin", got.Type())
	require.NotNil(t, got.UpdatedAt())
	assert.Equal(t, kernel.Timestamp(200), *got.UpdatedAt())
}

func TestPebbleUserRepository_UpdateMissing(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	u := newTestUser(t, "amelia")

	err := repo.Update(ctx, u)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestPebbleUserRepository_GetByUsername(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	first := newTestUser(t, "amelia")
	second := newTestUser(t, "bruno")
	require.NoError(t, repo.Add(ctx, first))
	require.NoError(t, repo.Add(ctx, second))

	got, err := repo.GetByUsername(ctx, "bruno")
	require.NoError(t, err)
	assert.True(t, second.IsEqual(got))

	_, err = repo.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestPebbleUserRepository_GetAll(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	require.NoError(t, repo.Add(ctx, newTestUser(t, "amelia")))
	require.NoError(t, repo.Add(ctx, newTestUser(t, "bruno")))

	all, err = repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestPebbleUserRepository_Remove(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	u := newTestUser(t, "amelia")
	require.NoError(t, repo.Add(ctx, u))

	require.NoError(t, repo.Remove(ctx, u.ID()))

	_, err := repo.Get(ctx, u.ID())
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)

	err = repo.Remove(ctx, u.ID())
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
