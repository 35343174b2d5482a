package services

import (
	"context"
	"sync"

	"github.com/mentoro-app/mentoro-server/internal/model"
	"github.com/mentoro-app/mentoro-server/internal/store"
)

// --- Fakes ---

type fakeStore struct {
	mu sync.Mutex

	habits      []*model.Habit
	owners      []string
	setStateErr map[string]error // habitID -> error to return from SetState
	setStates   []setStateCall

	roadmap []*model.RoadmapItem
	actions []*model.WeeklyAction
	skills  []*model.Skill
	logs    []*model.SkillLog
	notes   []*model.BrandNote
	txs     []*model.Transaction

	deletedSkills    []string
	deletedLogSkills []string
}

type setStateCall struct {
	ownerID string
	habitID string
	st      model.StreakState
}

func (f *fakeStore) Users() store.Users                 { return fakeUsers{} }
func (f *fakeStore) Habits() store.Habits               { return &fakeHabits{f} }
func (f *fakeStore) Roadmap() store.RoadmapItems        { return &fakeRoadmap{f} }
func (f *fakeStore) WeeklyActions() store.WeeklyActions { return &fakeActions{f} }
func (f *fakeStore) Skills() store.Skills               { return &fakeSkills{f} }
func (f *fakeStore) SkillLogs() store.SkillLogs         { return &fakeSkillLogs{f} }
func (f *fakeStore) BrandNotes() store.BrandNotes       { return &fakeNotes{f} }
func (f *fakeStore) Transactions() store.Transactions   { return &fakeTxs{f} }

type fakeUsers struct{}

func (fakeUsers) Create(context.Context, *model.User) (*model.User, error) { panic("unused") }
func (fakeUsers) Get(context.Context, string) (*model.User, error)        { panic("unused") }
func (fakeUsers) Delete(context.Context, string) error                    { panic("unused") }

type fakeHabits struct{ p *fakeStore }

func (h *fakeHabits) Create(_ context.Context, m *model.Habit) (*model.Habit, error) {
	h.p.mu.Lock()
	defer h.p.mu.Unlock()
	h.p.habits = append(h.p.habits, m)
	return m, nil
}

func (h *fakeHabits) List(_ context.Context, ownerID string) ([]*model.Habit, error) {
	h.p.mu.Lock()
	defer h.p.mu.Unlock()
	var out []*model.Habit
	for _, m := range h.p.habits {
		if m.OwnerID == ownerID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (h *fakeHabits) Get(_ context.Context, ownerID, habitID string) (*model.Habit, error) {
	h.p.mu.Lock()
	defer h.p.mu.Unlock()
	for _, m := range h.p.habits {
		if m.OwnerID == ownerID && m.HabitID == habitID {
			cp := *m
			return &cp, nil
		}
	}
	return nil, model.ErrNotFound
}

func (h *fakeHabits) UpdateText(context.Context, string, string, string) error { panic("unused") }

func (h *fakeHabits) SetState(_ context.Context, ownerID, habitID string, st model.StreakState) error {
	h.p.mu.Lock()
	defer h.p.mu.Unlock()
	if err, ok := h.p.setStateErr[habitID]; ok {
		return err
	}
	h.p.setStates = append(h.p.setStates, setStateCall{ownerID, habitID, st})
	for _, m := range h.p.habits {
		if m.OwnerID == ownerID && m.HabitID == habitID {
			m.CompletedToday = st.CompletedToday
			m.Streak = st.Streak
			m.LastCompletedAt = st.LastCompletedAt
			return nil
		}
	}
	return model.ErrNotFound
}

func (h *fakeHabits) Delete(context.Context, string, string) error { panic("unused") }

func (h *fakeHabits) Owners(context.Context) ([]string, error) {
	h.p.mu.Lock()
	defer h.p.mu.Unlock()
	return h.p.owners, nil
}

type fakeRoadmap struct{ p *fakeStore }

func (r *fakeRoadmap) Create(context.Context, *model.RoadmapItem) (*model.RoadmapItem, error) {
	panic("unused")
}
func (r *fakeRoadmap) List(context.Context, string) ([]*model.RoadmapItem, error) {
	return r.p.roadmap, nil
}
func (r *fakeRoadmap) UpdateText(context.Context, string, string, string) error   { panic("unused") }
func (r *fakeRoadmap) SetCompleted(context.Context, string, string, bool) error   { panic("unused") }
func (r *fakeRoadmap) Delete(context.Context, string, string) error               { panic("unused") }

type fakeActions struct{ p *fakeStore }

func (a *fakeActions) Create(context.Context, *model.WeeklyAction) (*model.WeeklyAction, error) {
	panic("unused")
}
func (a *fakeActions) List(context.Context, string) ([]*model.WeeklyAction, error) {
	return a.p.actions, nil
}
func (a *fakeActions) UpdateText(context.Context, string, string, string) error { panic("unused") }
func (a *fakeActions) SetCompleted(context.Context, string, string, bool) error { panic("unused") }
func (a *fakeActions) Delete(context.Context, string, string) error             { panic("unused") }

type fakeSkills struct{ p *fakeStore }

func (s *fakeSkills) Create(context.Context, *model.Skill) (*model.Skill, error) { panic("unused") }
func (s *fakeSkills) List(context.Context, string) ([]*model.Skill, error) {
	return s.p.skills, nil
}
func (s *fakeSkills) Get(_ context.Context, ownerID, skillID string) (*model.Skill, error) {
	for _, sk := range s.p.skills {
		if sk.SkillID == skillID {
			return sk, nil
		}
	}
	return nil, model.ErrNotFound
}
func (s *fakeSkills) Rename(context.Context, string, string, string) error { panic("unused") }
func (s *fakeSkills) Delete(_ context.Context, _, skillID string) error {
	s.p.deletedSkills = append(s.p.deletedSkills, skillID)
	return nil
}

type fakeSkillLogs struct{ p *fakeStore }

func (l *fakeSkillLogs) Create(context.Context, *model.SkillLog) (*model.SkillLog, error) {
	panic("unused")
}
func (l *fakeSkillLogs) List(context.Context, string) ([]*model.SkillLog, error) {
	return l.p.logs, nil
}
func (l *fakeSkillLogs) Update(context.Context, string, string, string, float64) error {
	panic("unused")
}
func (l *fakeSkillLogs) Delete(context.Context, string, string) error { panic("unused") }
func (l *fakeSkillLogs) DeleteBySkill(_ context.Context, _, skill string) error {
	l.p.deletedLogSkills = append(l.p.deletedLogSkills, skill)
	return nil
}

type fakeNotes struct{ p *fakeStore }

func (n *fakeNotes) Create(context.Context, *model.BrandNote) (*model.BrandNote, error) {
	panic("unused")
}
func (n *fakeNotes) List(context.Context, string) ([]*model.BrandNote, error) {
	return n.p.notes, nil
}
func (n *fakeNotes) UpdateText(context.Context, string, string, string) error { panic("unused") }
func (n *fakeNotes) Delete(context.Context, string, string) error             { panic("unused") }

type fakeTxs struct{ p *fakeStore }

func (t *fakeTxs) Create(_ context.Context, tx *model.Transaction) (*model.Transaction, error) {
	t.p.txs = append(t.p.txs, tx)
	return tx, nil
}
func (t *fakeTxs) List(context.Context, string) ([]*model.Transaction, error) {
	return t.p.txs, nil
}
func (t *fakeTxs) Update(context.Context, string, string, string, float64, string) error {
	panic("unused")
}
func (t *fakeTxs) Delete(context.Context, string, string) error { panic("unused") }
