package service_test

import (
	"context"
	"testing"
	"time"

	"go-event-scheduler/internal/model"
	"go-event-scheduler/internal/repository"
	"go-event-scheduler/internal/service"
	apperrors "go-event-scheduler/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - defaults timezone", func(t *testing.T) {
		profiles := service.NewProfileService(repository.NewMemoryProfileRepository())

		profile, err := profiles.Create(ctx, model.CreateProfileRequest{Name: "  Carol "})

		require.NoError(t, err)
		assert.Equal(t, "Carol", profile.Name)
		assert.Equal(t, service.DefaultTimezone, profile.Timezone)
		assert.NotEqual(t, uuid.Nil, profile.ID)
	})

	t.Run("Success - configured default timezone", func(t *testing.T) {
		profiles := service.NewProfileService(repository.NewMemoryProfileRepository(), service.WithDefaultTimezone("Europe/London"))

		profile, err := profiles.Create(ctx, model.CreateProfileRequest{Name: "Dave"})

		require.NoError(t, err)
		assert.Equal(t, "Europe/London", profile.Timezone)
	})

	t.Run("Failed - duplicate name ignores case", func(t *testing.T) {
		profiles := service.NewProfileService(repository.NewMemoryProfileRepository())
		_, err := profiles.Create(ctx, model.CreateProfileRequest{Name: "Alpha"})
		require.NoError(t, err)

		_, err = profiles.Create(ctx, model.CreateProfileRequest{Name: "alpha"})

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrDuplicateName)
		var dup *apperrors.DuplicateNameError
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, "alpha", dup.Name)

		list, err := profiles.List(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("Failed - blank name", func(t *testing.T) {
		profiles := service.NewProfileService(repository.NewMemoryProfileRepository())

		_, err := profiles.Create(ctx, model.CreateProfileRequest{Name: "  "})

		assert.EqualError(t, err, "Profile name is required")
	})

	t.Run("Failed - unknown timezone", func(t *testing.T) {
		profiles := service.NewProfileService(repository.NewMemoryProfileRepository())

		_, err := profiles.Create(ctx, model.CreateProfileRequest{Name: "Eve", Timezone: "Not/AZone"})

		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestProfileService_List(t *testing.T) {
	ctx := context.Background()
	clock := newTestClock()
	profiles := service.NewProfileService(repository.NewMemoryProfileRepository(), service.WithClock(clock.Now))

	first, err := profiles.Create(ctx, model.CreateProfileRequest{Name: "First"})
	require.NoError(t, err)
	clock.Advance(time.Second)
	second, err := profiles.Create(ctx, model.CreateProfileRequest{Name: "Second"})
	require.NoError(t, err)

	list, err := profiles.List(ctx)

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestProfileService_SetTimezone(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		profiles := service.NewProfileService(repository.NewMemoryProfileRepository())
		profile, err := profiles.Create(ctx, model.CreateProfileRequest{Name: "Frank"})
		require.NoError(t, err)

		updated, err := profiles.SetTimezone(ctx, profile.ID, " Asia/Tokyo ")

		require.NoError(t, err)
		assert.Equal(t, "Asia/Tokyo", updated.Timezone)
		assert.Equal(t, profile.Name, updated.Name)
	})

	t.Run("Failed - profile not found", func(t *testing.T) {
		profiles := service.NewProfileService(repository.NewMemoryProfileRepository())

		_, err := profiles.SetTimezone(ctx, uuid.New(), "UTC")

		assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)
	})

	t.Run("Failed - profile not found wins over bad timezone", func(t *testing.T) {
		profiles := service.NewProfileService(repository.NewMemoryProfileRepository())

		_, err := profiles.SetTimezone(ctx, uuid.New(), "Atlantis/Deep")

		assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)
		assert.NotErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("Failed - unknown timezone", func(t *testing.T) {
		profiles := service.NewProfileService(repository.NewMemoryProfileRepository())
		profile, err := profiles.Create(ctx, model.CreateProfileRequest{Name: "Grace"})
		require.NoError(t, err)

		_, err = profiles.SetTimezone(ctx, profile.ID, "Atlantis/Deep")

		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}
