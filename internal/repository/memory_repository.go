package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"go-event-scheduler/internal/audit"
	"go-event-scheduler/internal/model"
	apperrors "go-event-scheduler/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// MemoryEventRepositoryImpl 以 map 保存資料，用於 STORE_DRIVER=memory 與測試
// 每次讀寫都複製一份，呼叫端拿到的 event 與 store 內部不共用記憶體
type MemoryEventRepositoryImpl struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]*model.Event
}

func NewMemoryEventRepository() EventRepository {
	return &MemoryEventRepositoryImpl{
		byID: make(map[uuid.UUID]*model.Event),
	}
}

func (r *MemoryEventRepositoryImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if event.ID == uuid.Nil {
		return nil, errors.New("event id required")
	}
	if _, exists := r.byID[event.ID]; exists {
		return nil, errors.Errorf("event %s already exists", event.ID)
	}

	r.byID[event.ID] = event.Clone()
	return event.Clone(), nil
}

func (r *MemoryEventRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	event, ok := r.byID[id]
	if !ok {
		return nil, apperrors.ErrEventNotFound
	}
	return event.Clone(), nil
}

func (r *MemoryEventRepositoryImpl) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*model.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	events := make([]*model.Event, 0)
	for _, event := range r.byID {
		if event.HasProfile(profileID) {
			events = append(events, event.Clone())
		}
	}

	// 依開始時間排序，相同時以建立時間、id 排序確保結果穩定
	sort.Slice(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if !a.StartDateTime.Equal(b.StartDateTime) {
			return a.StartDateTime.Before(b.StartDateTime)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID.String() < b.ID.String()
	})

	return events, nil
}

func (r *MemoryEventRepositoryImpl) Update(ctx context.Context, id uuid.UUID, mutate EventMutation) (*model.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byID[id]
	if !ok {
		return nil, apperrors.ErrEventNotFound
	}

	updated, err := mutate(current.Clone())
	if err != nil {
		return nil, err
	}
	if !audit.IsAppendOnly(current.UpdateLogs, updated.UpdateLogs) {
		return nil, apperrors.ErrAuditLogRewrite
	}

	r.byID[id] = updated.Clone()
	return updated.Clone(), nil
}

func (r *MemoryEventRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return apperrors.ErrEventNotFound
	}
	delete(r.byID, id)
	return nil
}

type MemoryProfileRepositoryImpl struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]*model.Profile
}

func NewMemoryProfileRepository() ProfileRepository {
	return &MemoryProfileRepositoryImpl{
		byID: make(map[uuid.UUID]*model.Profile),
	}
}

func (r *MemoryProfileRepositoryImpl) Create(ctx context.Context, profile *model.Profile) (*model.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if profile.ID == uuid.Nil {
		return nil, errors.New("profile id required")
	}
	for _, existing := range r.byID {
		if strings.EqualFold(existing.Name, profile.Name) {
			return nil, &apperrors.DuplicateNameError{Name: profile.Name}
		}
	}

	stored := *profile
	r.byID[profile.ID] = &stored
	out := stored
	return &out, nil
}

func (r *MemoryProfileRepositoryImpl) List(ctx context.Context) ([]*model.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profiles := make([]*model.Profile, 0, len(r.byID))
	for _, p := range r.byID {
		out := *p
		profiles = append(profiles, &out)
	}

	// 最新建立的在前
	sort.Slice(profiles, func(i, j int) bool {
		if !profiles[i].CreatedAt.Equal(profiles[j].CreatedAt) {
			return profiles[i].CreatedAt.After(profiles[j].CreatedAt)
		}
		return profiles[i].ID.String() < profiles[j].ID.String()
	})
	return profiles, nil
}

func (r *MemoryProfileRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return nil, apperrors.ErrProfileNotFound
	}
	out := *p
	return &out, nil
}

func (r *MemoryProfileRepositoryImpl) FindByName(ctx context.Context, name string) (*model.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name = strings.TrimSpace(name)
	for _, p := range r.byID {
		if strings.EqualFold(p.Name, name) {
			out := *p
			return &out, nil
		}
	}
	return nil, apperrors.ErrProfileNotFound
}

func (r *MemoryProfileRepositoryImpl) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profiles := make([]*model.Profile, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.byID[id]; ok {
			out := *p
			profiles = append(profiles, &out)
		}
	}
	return profiles, nil
}

func (r *MemoryProfileRepositoryImpl) FindMissing(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	found := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := r.byID[id]; ok {
			found[id] = struct{}{}
		}
	}
	return missingIDs(ids, found), nil
}

func (r *MemoryProfileRepositoryImpl) UpdateTimezone(ctx context.Context, id uuid.UUID, tz string) (*model.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[id]
	if !ok {
		return nil, apperrors.ErrProfileNotFound
	}
	p.Timezone = tz
	out := *p
	return &out, nil
}
