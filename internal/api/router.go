package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mentoro-app/mentoro-server/internal/api/recovery"
	"github.com/mentoro-app/mentoro-server/internal/auth"
	"github.com/mentoro-app/mentoro-server/internal/services"
)

// Deps carries everything the router needs. Built once in run.go.
type Deps struct {
	Users       *services.UserService
	Habits      *services.HabitService
	Roadmap     *services.RoadmapService
	Actions     *services.ActionService
	Skills      *services.SkillService
	Brand       *services.BrandService
	Finance     *services.FinanceService
	Suggestions *services.SuggestionService

	Authorizer auth.Authorizer
	IsHealthy  func() bool
}

// NewRouter wires all API routes. Health is public; everything else sits
// behind API key auth, and any route carrying {userId} is scoped to the
// authenticated actor.
func NewRouter(d Deps) *mux.Router {
	router := mux.NewRouter()
	router.Use(recovery.Middleware)

	healthHandler := NewHealthHandler(d.IsHealthy)
	router.HandleFunc("/api/health", healthHandler.CheckHealth).Methods(http.MethodGet)

	userHandler := NewUserHandler(d.Users)
	habitHandler := NewHabitHandler(d.Habits)
	roadmapHandler := NewRoadmapHandler(d.Roadmap)
	actionHandler := NewActionHandler(d.Actions)
	skillHandler := NewSkillHandler(d.Skills)
	brandHandler := NewBrandHandler(d.Brand)
	financeHandler := NewFinanceHandler(d.Finance)
	suggestionHandler := NewSuggestionHandler(d.Suggestions)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(auth.Middleware(d.Authorizer))

	// User endpoints
	api.HandleFunc("/users", userHandler.CreateUser).Methods(http.MethodPost)
	api.HandleFunc("/users/{userId}", userHandler.GetUser).Methods(http.MethodGet)
	api.HandleFunc("/users/{userId}", userHandler.DeleteUser).Methods(http.MethodDelete)

	// Habit endpoints. The reconcile route is registered before {habitId}
	// so "reconcile" is never captured as an id.
	api.HandleFunc("/users/{userId}/habits", habitHandler.CreateHabit).Methods(http.MethodPost)
	api.HandleFunc("/users/{userId}/habits", habitHandler.ListHabits).Methods(http.MethodGet)
	api.HandleFunc("/users/{userId}/habits/reconcile", habitHandler.ReconcileHabits).Methods(http.MethodPost)
	api.HandleFunc("/users/{userId}/habits/{habitId}", habitHandler.GetHabit).Methods(http.MethodGet)
	api.HandleFunc("/users/{userId}/habits/{habitId}", habitHandler.UpdateHabit).Methods(http.MethodPatch)
	api.HandleFunc("/users/{userId}/habits/{habitId}", habitHandler.DeleteHabit).Methods(http.MethodDelete)
	api.HandleFunc("/users/{userId}/habits/{habitId}/toggle", habitHandler.ToggleHabit).Methods(http.MethodPost)

	// Roadmap endpoints
	api.HandleFunc("/users/{userId}/roadmap", roadmapHandler.CreateItem).Methods(http.MethodPost)
	api.HandleFunc("/users/{userId}/roadmap", roadmapHandler.ListItems).Methods(http.MethodGet)
	api.HandleFunc("/users/{userId}/roadmap/{itemId}", roadmapHandler.UpdateItem).Methods(http.MethodPatch)
	api.HandleFunc("/users/{userId}/roadmap/{itemId}", roadmapHandler.DeleteItem).Methods(http.MethodDelete)

	// Weekly action endpoints
	api.HandleFunc("/users/{userId}/actions", actionHandler.CreateAction).Methods(http.MethodPost)
	api.HandleFunc("/users/{userId}/actions", actionHandler.ListActions).Methods(http.MethodGet)
	api.HandleFunc("/users/{userId}/actions/{actionId}", actionHandler.UpdateAction).Methods(http.MethodPatch)
	api.HandleFunc("/users/{userId}/actions/{actionId}", actionHandler.DeleteAction).Methods(http.MethodDelete)

	// Skill and practice-log endpoints
	api.HandleFunc("/users/{userId}/skills", skillHandler.CreateSkill).Methods(http.MethodPost)
	api.HandleFunc("/users/{userId}/skills", skillHandler.ListSkills).Methods(http.MethodGet)
	api.HandleFunc("/users/{userId}/skills/{skillId}", skillHandler.RenameSkill).Methods(http.MethodPatch)
	api.HandleFunc("/users/{userId}/skills/{skillId}", skillHandler.DeleteSkill).Methods(http.MethodDelete)
	api.HandleFunc("/users/{userId}/skill-logs", skillHandler.LogHours).Methods(http.MethodPost)
	api.HandleFunc("/users/{userId}/skill-logs", skillHandler.ListLogs).Methods(http.MethodGet)
	api.HandleFunc("/users/{userId}/skill-logs/{logId}", skillHandler.UpdateLog).Methods(http.MethodPatch)
	api.HandleFunc("/users/{userId}/skill-logs/{logId}", skillHandler.DeleteLog).Methods(http.MethodDelete)

	// Brand note endpoints
	api.HandleFunc("/users/{userId}/brand-notes", brandHandler.CreateNote).Methods(http.MethodPost)
	api.HandleFunc("/users/{userId}/brand-notes", brandHandler.ListNotes).Methods(http.MethodGet)
	api.HandleFunc("/users/{userId}/brand-notes/{noteId}", brandHandler.UpdateNote).Methods(http.MethodPatch)
	api.HandleFunc("/users/{userId}/brand-notes/{noteId}", brandHandler.DeleteNote).Methods(http.MethodDelete)

	// Finance endpoints
	api.HandleFunc("/users/{userId}/transactions", financeHandler.CreateTransaction).Methods(http.MethodPost)
	api.HandleFunc("/users/{userId}/transactions", financeHandler.ListTransactions).Methods(http.MethodGet)
	api.HandleFunc("/users/{userId}/transactions/{txId}", financeHandler.UpdateTransaction).Methods(http.MethodPatch)
	api.HandleFunc("/users/{userId}/transactions/{txId}", financeHandler.DeleteTransaction).Methods(http.MethodDelete)
	api.HandleFunc("/users/{userId}/finance/summary", financeHandler.GetSummary).Methods(http.MethodGet)

	// Suggestion endpoint
	api.HandleFunc("/users/{userId}/suggestions", suggestionHandler.GetSuggestion).Methods(http.MethodPost)

	return router
}
