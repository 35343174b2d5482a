package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mentoro-app/mentoro-server/internal/model"
)

type fakeProvider struct {
	system string
	prompt string
	out    string
	err    error
}

func (p *fakeProvider) Suggest(_ context.Context, system, prompt string) (string, error) {
	p.system = system
	p.prompt = prompt
	return p.out, p.err
}

func TestSuggestionService_HabitsPromptIncludesStreaks(t *testing.T) {
	last := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	fs := &fakeStore{habits: []*model.Habit{
		{HabitID: "h1", OwnerID: "u1", Text: "morning run", Streak: 6, CompletedToday: true, LastCompletedAt: &last},
	}}
	p := &fakeProvider{out: "Keep the run going."}
	svc := NewSuggestionService(fs, p)

	out, err := svc.SuggestFor(context.Background(), "u1", SectionHabits)
	if err != nil {
		t.Fatalf("SuggestFor: %v", err)
	}
	if out != "Keep the run going." {
		t.Fatalf("suggestion = %q", out)
	}
	if !strings.Contains(p.prompt, "morning run") || !strings.Contains(p.prompt, "streak 6") {
		t.Fatalf("prompt missing habit data: %q", p.prompt)
	}
	if p.system == "" {
		t.Fatal("system prompt should be set")
	}
}

func TestSuggestionService_FinancePromptSummarizesTotals(t *testing.T) {
	fs := &fakeStore{txs: []*model.Transaction{
		{TxID: "t1", OwnerID: "u1", Type: model.TxIncome, Amount: 1500, Description: "freelance"},
		{TxID: "t2", OwnerID: "u1", Type: model.TxExpense, Amount: 400, Description: "rent"},
	}}
	p := &fakeProvider{out: "ok"}
	svc := NewSuggestionService(fs, p)

	if _, err := svc.SuggestFor(context.Background(), "u1", SectionFinance); err != nil {
		t.Fatalf("SuggestFor: %v", err)
	}
	for _, want := range []string{"income 1500.00", "expenses 400.00", "net 1100.00", "freelance"} {
		if !strings.Contains(p.prompt, want) {
			t.Fatalf("prompt missing %q: %q", want, p.prompt)
		}
	}
}

func TestSuggestionService_SkillsPromptTotalsHours(t *testing.T) {
	fs := &fakeStore{
		skills: []*model.Skill{{SkillID: "s1", OwnerID: "u1", Name: "guitar"}},
		logs: []*model.SkillLog{
			{LogID: "l1", OwnerID: "u1", Skill: "guitar", Hours: 1.5},
			{LogID: "l2", OwnerID: "u1", Skill: "guitar", Hours: 2},
		},
	}
	p := &fakeProvider{out: "ok"}
	svc := NewSuggestionService(fs, p)

	if _, err := svc.SuggestFor(context.Background(), "u1", SectionSkills); err != nil {
		t.Fatalf("SuggestFor: %v", err)
	}
	if !strings.Contains(p.prompt, "guitar: 3.5 hours") {
		t.Fatalf("prompt missing hour total: %q", p.prompt)
	}
}

func TestSuggestionService_UnknownSection(t *testing.T) {
	svc := NewSuggestionService(&fakeStore{}, &fakeProvider{})
	if _, err := svc.SuggestFor(context.Background(), "u1", "horoscope"); !errors.Is(err, model.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestSuggestionService_ProviderErrorPropagates(t *testing.T) {
	p := &fakeProvider{err: errors.New("upstream down")}
	svc := NewSuggestionService(&fakeStore{}, p)
	if _, err := svc.SuggestFor(context.Background(), "u1", SectionRoadmap); err == nil {
		t.Fatal("expected provider error")
	}
}

func TestSkillService_DeleteSkillCascadesLogs(t *testing.T) {
	fs := &fakeStore{skills: []*model.Skill{{SkillID: "s1", OwnerID: "u1", Name: "guitar"}}}
	svc := NewSkillService(fs)

	if err := svc.DeleteSkill(context.Background(), "u1", "s1"); err != nil {
		t.Fatalf("DeleteSkill: %v", err)
	}
	if len(fs.deletedSkills) != 1 || fs.deletedSkills[0] != "s1" {
		t.Fatalf("deleted skills = %v", fs.deletedSkills)
	}
	if len(fs.deletedLogSkills) != 1 || fs.deletedLogSkills[0] != "guitar" {
		t.Fatalf("cascaded log deletes = %v", fs.deletedLogSkills)
	}
}

func TestFinanceService_SummaryAndValidation(t *testing.T) {
	fs := &fakeStore{txs: []*model.Transaction{
		{Type: model.TxIncome, Amount: 100},
		{Type: model.TxIncome, Amount: 50},
		{Type: model.TxExpense, Amount: 30},
	}}
	svc := NewFinanceService(fs)

	sum, err := svc.Summary(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if sum.TotalIncome != 150 || sum.TotalExpense != 30 || sum.Net != 120 {
		t.Fatalf("summary = %+v", sum)
	}

	if _, err := svc.CreateTransaction(context.Background(), &model.Transaction{Type: "loan", Amount: 10}); !errors.Is(err, model.ErrValidation) {
		t.Fatalf("bad type err = %v, want ErrValidation", err)
	}
	if _, err := svc.CreateTransaction(context.Background(), &model.Transaction{Type: model.TxIncome, Amount: 0}); !errors.Is(err, model.ErrValidation) {
		t.Fatalf("zero amount err = %v, want ErrValidation", err)
	}
}
