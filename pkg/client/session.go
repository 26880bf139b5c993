package client

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// State Session 在某個時間點的資料快照
type State struct {
	Profiles        []Profile
	Events          []Event
	SelectedProfile *Profile
	Loading         bool
	Error           string
}

// Session 單一使用者的畫面狀態；每次 API 呼叫完成後更新
// 選取 profile 時以該 profile 的時區載入活動
type Session struct {
	api API

	mu       sync.Mutex
	profiles []Profile
	events   []Event
	selected *Profile
	loading  bool
	lastErr  string
}

func NewSession(api API) *Session {
	return &Session{
		api:      api,
		profiles: []Profile{},
		events:   []Event{},
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := State{
		Profiles: append([]Profile(nil), s.profiles...),
		Events:   append([]Event(nil), s.events...),
		Loading:  s.loading,
		Error:    s.lastErr,
	}
	if s.selected != nil {
		selected := *s.selected
		state.SelectedProfile = &selected
	}
	return state
}

func (s *Session) FetchProfiles(ctx context.Context) error {
	s.begin()
	profiles, err := s.api.ListProfiles(ctx)
	if err != nil {
		return s.fail(err)
	}

	s.mu.Lock()
	s.profiles = profiles
	s.loading = false
	s.mu.Unlock()
	return nil
}

func (s *Session) CreateProfile(ctx context.Context, name, timezone string) (*Profile, error) {
	s.begin()
	profile, err := s.api.CreateProfile(ctx, name, timezone)
	if err != nil {
		return nil, s.fail(err)
	}

	s.mu.Lock()
	// 與伺服器列表一致：最新建立的在前
	s.profiles = append([]Profile{*profile}, s.profiles...)
	s.loading = false
	s.mu.Unlock()
	return profile, nil
}

// UpdateProfileTimezone 若是目前選取的 profile，會以新時區重新載入活動
func (s *Session) UpdateProfileTimezone(ctx context.Context, profileID uuid.UUID, timezone string) error {
	s.begin()
	profile, err := s.api.UpdateProfileTimezone(ctx, profileID, timezone)
	if err != nil {
		return s.fail(err)
	}

	s.mu.Lock()
	for i := range s.profiles {
		if s.profiles[i].ID == profileID {
			s.profiles[i] = *profile
		}
	}
	isSelected := s.selected != nil && s.selected.ID == profileID
	if isSelected {
		selected := *profile
		s.selected = &selected
	}
	s.loading = false
	s.mu.Unlock()

	if isSelected {
		return s.FetchEventsForProfile(ctx, profileID)
	}
	return nil
}

// SelectProfile nil 代表取消選取並清空活動
func (s *Session) SelectProfile(ctx context.Context, profile *Profile) error {
	s.mu.Lock()
	if profile == nil {
		s.selected = nil
		s.events = []Event{}
		s.mu.Unlock()
		return nil
	}
	selected := *profile
	s.selected = &selected
	s.mu.Unlock()

	return s.FetchEventsForProfile(ctx, profile.ID)
}

func (s *Session) FetchEventsForProfile(ctx context.Context, profileID uuid.UUID) error {
	s.begin()
	events, err := s.api.ListEventsForProfile(ctx, profileID, s.viewTimezone(profileID))
	if err != nil {
		return s.fail(err)
	}

	s.mu.Lock()
	s.events = events
	s.loading = false
	s.mu.Unlock()
	return nil
}

// CreateEvent 有選取 profile 時重新載入該 profile 的活動
func (s *Session) CreateEvent(ctx context.Context, in CreateEventInput) (*Event, error) {
	s.begin()
	event, err := s.api.CreateEvent(ctx, in)
	if err != nil {
		return nil, s.fail(err)
	}

	s.mu.Lock()
	s.loading = false
	selected := s.selected
	if selected == nil {
		s.events = append(s.events, *event)
	}
	s.mu.Unlock()

	if selected != nil {
		if err := s.FetchEventsForProfile(ctx, selected.ID); err != nil {
			return event, err
		}
	}
	return event, nil
}

// UpdateEvent 有選取 profile 時重新載入，以取得新的排序與 wall clock 檢視
func (s *Session) UpdateEvent(ctx context.Context, eventID uuid.UUID, in UpdateEventInput) (*Event, error) {
	s.begin()
	event, err := s.api.UpdateEvent(ctx, eventID, in)
	if err != nil {
		return nil, s.fail(err)
	}

	s.mu.Lock()
	s.loading = false
	selected := s.selected
	if selected == nil {
		for i := range s.events {
			if s.events[i].ID == eventID {
				s.events[i] = *event
			}
		}
	}
	s.mu.Unlock()

	if selected != nil {
		if err := s.FetchEventsForProfile(ctx, selected.ID); err != nil {
			return event, err
		}
	}
	return event, nil
}

func (s *Session) DeleteEvent(ctx context.Context, eventID uuid.UUID) error {
	s.begin()
	if err := s.api.DeleteEvent(ctx, eventID); err != nil {
		return s.fail(err)
	}

	s.mu.Lock()
	kept := s.events[:0]
	for _, e := range s.events {
		if e.ID != eventID {
			kept = append(kept, e)
		}
	}
	s.events = kept
	s.loading = false
	s.mu.Unlock()
	return nil
}

func (s *Session) viewTimezone(profileID uuid.UUID) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected != nil && s.selected.ID == profileID {
		return s.selected.Timezone
	}
	return ""
}

func (s *Session) begin() {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()
}

func (s *Session) fail(err error) error {
	s.mu.Lock()
	s.loading = false
	s.lastErr = err.Error()
	s.mu.Unlock()
	return err
}
