package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/mentoro-app/mentoro-server/internal/model"
	"github.com/mentoro-app/mentoro-server/internal/store"
	"github.com/mentoro-app/mentoro-server/internal/suggest"
)

const mentorSystemPrompt = "You are a concise personal mentor. Reply with one " +
	"specific, actionable suggestion in at most three sentences."

// Dashboard sections a suggestion can be requested for.
const (
	SectionRoadmap = "roadmap"
	SectionActions = "actions"
	SectionHabits  = "habits"
	SectionSkills  = "skills"
	SectionBrand   = "brand"
	SectionFinance = "finance"
)

// SuggestionService summarizes one dashboard section into a prompt and asks
// the configured provider for a suggestion.
type SuggestionService struct {
	store    store.Store
	provider suggest.Provider
}

func NewSuggestionService(s store.Store, p suggest.Provider) *SuggestionService {
	return &SuggestionService{store: s, provider: p}
}

// SuggestFor returns a mentoring suggestion for the given section of the
// owner's dashboard.
func (s *SuggestionService) SuggestFor(ctx context.Context, ownerID, section string) (string, error) {
	prompt, err := s.buildPrompt(ctx, ownerID, section)
	if err != nil {
		return "", err
	}
	return s.provider.Suggest(ctx, mentorSystemPrompt, prompt)
}

func (s *SuggestionService) buildPrompt(ctx context.Context, ownerID, section string) (string, error) {
	var b strings.Builder
	switch section {
	case SectionRoadmap:
		items, err := s.store.Roadmap().List(ctx, ownerID)
		if err != nil {
			return "", err
		}
		b.WriteString("These are my long-term roadmap goals. Suggest what I should focus on next:\n")
		for _, it := range items {
			fmt.Fprintf(&b, "- [%s] %s\n", mark(it.Completed), it.Text)
		}

	case SectionActions:
		actions, err := s.store.WeeklyActions().List(ctx, ownerID)
		if err != nil {
			return "", err
		}
		b.WriteString("These are my action items for this week. Suggest how to get the open ones done:\n")
		for _, a := range actions {
			fmt.Fprintf(&b, "- [%s] %s\n", mark(a.Completed), a.Text)
		}

	case SectionHabits:
		habits, err := s.store.Habits().List(ctx, ownerID)
		if err != nil {
			return "", err
		}
		b.WriteString("These are my daily habits and current streaks. Suggest how to keep them alive:\n")
		for _, h := range habits {
			fmt.Fprintf(&b, "- %s (streak %d, done today: %v)\n", h.Text, h.Streak, h.CompletedToday)
		}

	case SectionSkills:
		skills, err := s.store.Skills().List(ctx, ownerID)
		if err != nil {
			return "", err
		}
		logs, err := s.store.SkillLogs().List(ctx, ownerID)
		if err != nil {
			return "", err
		}
		totals := make(map[string]float64)
		for _, l := range logs {
			totals[l.Skill] += l.Hours
		}
		b.WriteString("These are the skills I am practicing and hours invested. Suggest what to practice next:\n")
		for _, sk := range skills {
			fmt.Fprintf(&b, "- %s: %.1f hours\n", sk.Name, totals[sk.Name])
		}

	case SectionBrand:
		notes, err := s.store.BrandNotes().List(ctx, ownerID)
		if err != nil {
			return "", err
		}
		b.WriteString("These are my recent personal-brand notes. Suggest content I should publish next:\n")
		for _, n := range notes {
			fmt.Fprintf(&b, "- %s\n", n.Text)
		}

	case SectionFinance:
		txs, err := s.store.Transactions().List(ctx, ownerID)
		if err != nil {
			return "", err
		}
		var income, expense float64
		for _, tx := range txs {
			if tx.Type == model.TxIncome {
				income += tx.Amount
			} else {
				expense += tx.Amount
			}
		}
		fmt.Fprintf(&b, "My recent finances: income %.2f, expenses %.2f, net %.2f. Suggest one improvement:\n", income, expense, income-expense)
		for _, tx := range txs {
			fmt.Fprintf(&b, "- %s %.2f %s\n", tx.Type, tx.Amount, tx.Description)
		}

	default:
		return "", errors.Wrapf(model.ErrValidation, "unknown suggestion section %q", section)
	}
	return b.String(), nil
}

func mark(done bool) string {
	if done {
		return "x"
	}
	return " "
}
