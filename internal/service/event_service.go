package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"go-event-scheduler/internal/audit"
	"go-event-scheduler/internal/cache"
	"go-event-scheduler/internal/model"
	"go-event-scheduler/internal/repository"
	"go-event-scheduler/internal/timezone"
	"go-event-scheduler/internal/validator"
	apperrors "go-event-scheduler/pkg/app_errors"
	"go-event-scheduler/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const DefaultTimezone = "America/New_York"

type EventService interface {
	Create(ctx context.Context, params model.CreateEventParams) (*model.Event, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Event, error)
	// ListByProfile 依開始時間由早到晚排序
	ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*model.Event, error)
	// Update 部分更新：合併 -> 驗證 -> diff -> 寫入欄位 -> 附加 update log，全部在同一個 transaction
	Update(ctx context.Context, id uuid.UUID, params model.UpdateEventParams) (*model.Event, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// Populate 產生回應用的 view：帶入 profile 摘要；tz 非空時另外換算 wall clock
	Populate(ctx context.Context, events []*model.Event, tz string) ([]model.EventView, error)
}

type EventServiceImpl struct {
	repo            repository.EventRepository
	profileRepo     repository.ProfileRepository
	listCache       cache.EventListCache
	now             func() time.Time
	defaultTimezone string
}

type Option func(*options)

type options struct {
	now             func() time.Time
	defaultTimezone string
}

// WithClock 測試用，固定目前時間
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithDefaultTimezone 未指定時區時使用
func WithDefaultTimezone(tz string) Option {
	return func(o *options) { o.defaultTimezone = tz }
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now, defaultTimezone: DefaultTimezone}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func NewEventService(
	repo repository.EventRepository,
	profileRepo repository.ProfileRepository,
	listCache cache.EventListCache,
	opts ...Option,
) EventService {
	o := buildOptions(opts)
	if listCache == nil {
		listCache = cache.NewNoopEventListCache()
	}
	return &EventServiceImpl{
		repo:            repo,
		profileRepo:     profileRepo,
		listCache:       listCache,
		now:             o.now,
		defaultTimezone: o.defaultTimezone,
	}
}

func (s *EventServiceImpl) Create(ctx context.Context, params model.CreateEventParams) (*model.Event, error) {
	tz := strings.TrimSpace(params.Timezone)
	if tz == "" {
		tz = s.defaultTimezone
	}

	start, err := resolveInstant(params.StartDateTime, params.StartLocal, tz)
	if err != nil {
		return nil, err
	}
	end, err := resolveInstant(params.EndDateTime, params.EndLocal, tz)
	if err != nil {
		return nil, err
	}
	if start == nil || end == nil {
		return nil, apperrors.NewValidationError("Start and end date/time are required")
	}

	now := timezone.Truncate(s.now())
	event := &model.Event{
		ID:            uuid.New(),
		EventName:     strings.TrimSpace(params.EventName),
		EventDetails:  strings.TrimSpace(params.EventDetails),
		Profiles:      model.NormalizeProfiles(params.Profiles),
		Timezone:      tz,
		StartDateTime: *start,
		EndDateTime:   *end,
		CreatedAt:     now,
		UpdatedAt:     now,
		UpdateLogs:    []model.UpdateLogEntry{},
	}

	if err := validator.ValidateEvent(event); err != nil {
		return nil, err
	}
	if err := s.checkProfiles(ctx, event.Profiles); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, created.Profiles)
	logger.WithComponent("service").Info("event created",
		zap.String("event_id", created.ID.String()),
		zap.Int("profiles", len(created.Profiles)),
	)
	return created, nil
}

func (s *EventServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EventServiceImpl) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*model.Event, error) {
	log := logger.WithComponent("service").With(zap.String("profile_id", profileID.String()))

	events, ok, err := s.listCache.Get(ctx, profileID)
	if err != nil {
		log.Warn("event list cache get failed", zap.Error(err))
	}
	if ok {
		return events, nil
	}

	events, err = s.repo.ListByProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}

	if err := s.listCache.Set(ctx, profileID, events); err != nil {
		log.Warn("event list cache set failed", zap.Error(err))
	}
	return events, nil
}

func (s *EventServiceImpl) Update(ctx context.Context, id uuid.UUID, params model.UpdateEventParams) (*model.Event, error) {
	var (
		changes          model.Changeset
		previousProfiles []uuid.UUID
	)

	updated, err := s.repo.Update(ctx, id, func(current *model.Event) (*model.Event, error) {
		fields, err := resolveFields(current, params)
		if err != nil {
			return nil, err
		}

		candidate := current.Apply(fields)
		if err := validator.ValidateEvent(candidate); err != nil {
			return nil, err
		}
		if fields.Profiles != nil {
			if err := s.checkProfiles(ctx, candidate.Profiles); err != nil {
				return nil, err
			}
		}

		// diff 必須在覆寫欄位之前以原本的資料計算
		changes = audit.Diff(current, fields)
		previousProfiles = current.Profiles

		// 即使沒有任何欄位變動，updatedAt 仍會更新
		candidate.UpdatedAt = timezone.Truncate(s.now())
		return audit.AppendIfNonEmpty(candidate, changes, candidate.UpdatedAt), nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, append(previousProfiles, updated.Profiles...))
	logger.WithComponent("service").Info("event updated",
		zap.String("event_id", updated.ID.String()),
		zap.Strings("changed_fields", changedFields(changes)),
		zap.Int("update_logs", len(updated.UpdateLogs)),
	)
	return updated, nil
}

func (s *EventServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, event.Profiles)
	logger.WithComponent("service").Info("event deleted", zap.String("event_id", id.String()))
	return nil
}

// checkProfiles 所有引用的 profile 都必須存在
func (s *EventServiceImpl) checkProfiles(ctx context.Context, ids []uuid.UUID) error {
	missing, err := s.profileRepo.FindMissing(ctx, ids)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return apperrors.NewValidationError("Profile %s does not exist", missing[0])
	}
	return nil
}

// invalidate 快取失效失敗只記錄，不影響已 commit 的結果
func (s *EventServiceImpl) invalidate(ctx context.Context, profileIDs []uuid.UUID) {
	ids := model.NormalizeProfiles(profileIDs)
	if err := s.listCache.Invalidate(ctx, ids...); err != nil {
		logger.WithComponent("service").Warn("event list cache invalidate failed", zap.Error(err))
	}
}

// resolveFields 將請求轉成要比對/寫入的欄位：wall clock 轉 instant，instant 統一到毫秒
func resolveFields(current *model.Event, params model.UpdateEventParams) (model.EventFields, error) {
	fields := params.EventFields

	tz := current.Timezone
	if fields.Timezone != nil {
		trimmed := strings.TrimSpace(*fields.Timezone)
		fields.Timezone = &trimmed
		tz = trimmed
	}

	start, err := resolveInstant(fields.StartDateTime, params.StartLocal, tz)
	if err != nil {
		return model.EventFields{}, err
	}
	end, err := resolveInstant(fields.EndDateTime, params.EndLocal, tz)
	if err != nil {
		return model.EventFields{}, err
	}
	fields.StartDateTime = start
	fields.EndDateTime = end

	return fields, nil
}

// resolveInstant wall clock 優先；兩者都沒有時回傳 nil
func resolveInstant(instant *time.Time, local *model.WallClock, tz string) (*time.Time, error) {
	if local != nil {
		t, err := timezone.FromWallClock(*local, tz)
		if err != nil {
			return nil, err
		}
		return &t, nil
	}
	if instant != nil {
		t := timezone.Truncate(*instant)
		return &t, nil
	}
	return nil, nil
}

func changedFields(changes model.Changeset) []string {
	fields := make([]string, 0, len(changes))
	for field := range changes {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

func (s *EventServiceImpl) Populate(ctx context.Context, events []*model.Event, tz string) ([]model.EventView, error) {
	views, err := ToViews(events, tz)
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]struct{})
	ids := make([]uuid.UUID, 0)
	for _, e := range events {
		for _, id := range e.Profiles {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}
	if len(ids) == 0 {
		return views, nil
	}

	profiles, err := s.profileRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]model.ProfileSummary, len(profiles))
	for _, p := range profiles {
		byID[p.ID] = p.Summary()
	}

	for i := range views {
		for _, id := range views[i].Profiles {
			if summary, ok := byID[id]; ok {
				views[i].ProfileDetails = append(views[i].ProfileDetails, summary)
			}
		}
	}
	return views, nil
}

// ToViews 以指定時區產生每筆活動的 wall clock 檢視 (不含 profile 摘要)
func ToViews(events []*model.Event, tz string) ([]model.EventView, error) {
	views := make([]model.EventView, 0, len(events))
	for _, e := range events {
		view := model.EventView{Event: e, ProfileDetails: []model.ProfileSummary{}}
		if tz != "" {
			start, err := timezone.ToWallClock(e.StartDateTime, tz)
			if err != nil {
				return nil, err
			}
			end, err := timezone.ToWallClock(e.EndDateTime, tz)
			if err != nil {
				return nil, err
			}
			view.ViewTimezone = tz
			view.StartLocal = &start
			view.EndLocal = &end
		}
		views = append(views, view)
	}
	return views, nil
}
