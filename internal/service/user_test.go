package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wedora/backend/internal/domain"
)

func newUserService() (*UserService, *fakeJobs) {
	store := newMemStore()
	jobs := &fakeJobs{}
	nop := zerolog.Nop()

	return NewUserService(userStore{store}, jobs, &nop), jobs
}

func TestRegisterNewUser(t *testing.T) {
	svc, jobs := newUserService()

	res, err := svc.Register(context.Background(), &domain.User{
		Email: "alice@example.com",
		Name:  "Alice",
	})
	require.NoError(t, err)

	assert.True(t, res.Created)
	require.NotNil(t, res.User)
	assert.Equal(t, "alice@example.com", res.User.Email)
	assert.Equal(t, "user", res.User.Role)

	require.Len(t, jobs.welcomes, 1)
	assert.Equal(t, "alice@example.com", jobs.welcomes[0].To)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, jobs := newUserService()

	first, err := svc.Register(context.Background(), &domain.User{Email: "alice@example.com"})
	require.NoError(t, err)
	require.True(t, first.Created)

	second, err := svc.Register(context.Background(), &domain.User{Email: "alice@example.com"})
	require.NoError(t, err)

	assert.False(t, second.Created)
	assert.Equal(t, "User already exists", second.Message)
	assert.Nil(t, second.User)

	// No second welcome email.
	assert.Len(t, jobs.welcomes, 1)
}
