package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-event-scheduler/internal/model"
	"go-event-scheduler/internal/repository"
	"go-event-scheduler/internal/timezone"
	"go-event-scheduler/internal/validator"
	apperrors "go-event-scheduler/pkg/app_errors"
	"go-event-scheduler/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProfileService interface {
	List(ctx context.Context) ([]*model.Profile, error)
	// Create 名稱不分大小寫唯一；未指定時區時使用預設時區
	Create(ctx context.Context, req model.CreateProfileRequest) (*model.Profile, error)
	SetTimezone(ctx context.Context, id uuid.UUID, tz string) (*model.Profile, error)
}

type ProfileServiceImpl struct {
	repo            repository.ProfileRepository
	now             func() time.Time
	defaultTimezone string
}

func NewProfileService(repo repository.ProfileRepository, opts ...Option) ProfileService {
	o := buildOptions(opts)
	return &ProfileServiceImpl{
		repo:            repo,
		now:             o.now,
		defaultTimezone: o.defaultTimezone,
	}
}

func (s *ProfileServiceImpl) List(ctx context.Context) ([]*model.Profile, error) {
	return s.repo.List(ctx)
}

func (s *ProfileServiceImpl) Create(ctx context.Context, req model.CreateProfileRequest) (*model.Profile, error) {
	name := strings.TrimSpace(req.Name)
	tz := strings.TrimSpace(req.Timezone)
	if tz == "" {
		tz = s.defaultTimezone
	}

	if err := validator.ValidateProfile(name, tz); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByName(ctx, name)
	if err != nil && !errors.Is(err, apperrors.ErrProfileNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, &apperrors.DuplicateNameError{Name: name}
	}

	// 同名併發建立時由 repository 的唯一索引擋下
	profile, err := s.repo.Create(ctx, &model.Profile{
		ID:        uuid.New(),
		Name:      name,
		Timezone:  tz,
		CreatedAt: timezone.Truncate(s.now()),
	})
	if err != nil {
		return nil, err
	}

	logger.WithComponent("service").Info("profile created",
		zap.String("profile_id", profile.ID.String()),
		zap.String("timezone", profile.Timezone),
	)
	return profile, nil
}

// SetTimezone 先確認 profile 存在再檢查時區，不存在的 id 一律回 NotFound
func (s *ProfileServiceImpl) SetTimezone(ctx context.Context, id uuid.UUID, tz string) (*model.Profile, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	tz = strings.TrimSpace(tz)
	if err := timezone.Validate(tz); err != nil {
		return nil, err
	}

	profile, err := s.repo.UpdateTimezone(ctx, id, tz)
	if err != nil {
		return nil, err
	}

	logger.WithComponent("service").Info("profile timezone updated",
		zap.String("profile_id", id.String()),
		zap.String("timezone", tz),
	)
	return profile, nil
}
