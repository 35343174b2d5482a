package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/mentoro-app/mentoro-server/internal/model"
	"github.com/mentoro-app/mentoro-server/internal/store"
)

//go:embed schema.sql
var schemaSQL string

// Open opens a PostgreSQL connection using the pgx stdlib driver and verifies connectivity.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// NewWithDB constructs a native Postgres store backed directly by database/sql.
func NewWithDB(db *sql.DB) store.Store { return &pgStore{db: db} }

type pgStore struct{ db *sql.DB }

func (s *pgStore) Users() store.Users                 { return &users{db: s.db} }
func (s *pgStore) Habits() store.Habits               { return &habits{db: s.db} }
func (s *pgStore) Roadmap() store.RoadmapItems        { return &roadmapItems{db: s.db} }
func (s *pgStore) WeeklyActions() store.WeeklyActions { return &weeklyActions{db: s.db} }
func (s *pgStore) Skills() store.Skills               { return &skills{db: s.db} }
func (s *pgStore) SkillLogs() store.SkillLogs         { return &skillLogs{db: s.db} }
func (s *pgStore) BrandNotes() store.BrandNotes       { return &brandNotes{db: s.db} }
func (s *pgStore) Transactions() store.Transactions   { return &transactions{db: s.db} }

// HealthPing implements health.HealthPinger for the Postgres-backed store.
func (s *pgStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Bootstrap applies the idempotent schema and verifies connectivity.
func Bootstrap(ctx context.Context, db *sql.DB) error {
	for _, stmt := range strings.Split(schemaSQL, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return db.PingContext(ctx)
}

func mapNoRows(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return model.ErrNotFound
	}
	return err
}

// --- Users ---

type users struct{ db *sql.DB }

func (u *users) Create(ctx context.Context, m *model.User) (*model.User, error) {
	var created time.Time
	row := u.db.QueryRowContext(ctx, `
        INSERT INTO users (user_id, email, display_name, time_zone)
        VALUES ($1,$2,$3,$4)
        RETURNING creation_time
    `, m.UserID, m.Email, m.DisplayName, m.TimeZone)
	if err := row.Scan(&created); err != nil {
		return nil, err
	}
	out := *m
	out.CreationTime = created
	return &out, nil
}

func (u *users) Get(ctx context.Context, userID string) (*model.User, error) {
	var out model.User
	row := u.db.QueryRowContext(ctx, `
        SELECT user_id, email, display_name, time_zone, creation_time
        FROM users WHERE user_id=$1
    `, userID)
	if err := row.Scan(&out.UserID, &out.Email, &out.DisplayName, &out.TimeZone, &out.CreationTime); err != nil {
		return nil, mapNoRows(err)
	}
	return &out, nil
}

func (u *users) Delete(ctx context.Context, userID string) error {
	res, err := u.db.ExecContext(ctx, `DELETE FROM users WHERE user_id=$1`, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.ErrNotFound
	}
	return nil
}

// --- Habits ---

type habits struct{ db *sql.DB }

func (h *habits) Create(ctx context.Context, m *model.Habit) (*model.Habit, error) {
	id := m.HabitID
	if id == "" {
		id = uuid.New().String()
	}
	var created time.Time
	row := h.db.QueryRowContext(ctx, `
        INSERT INTO habits (habit_id, owner_id, text)
        VALUES ($1,$2,$3)
        RETURNING creation_time
    `, id, m.OwnerID, m.Text)
	if err := row.Scan(&created); err != nil {
		return nil, err
	}
	return &model.Habit{HabitID: id, OwnerID: m.OwnerID, Text: m.Text, CreationTime: created}, nil
}

func (h *habits) List(ctx context.Context, ownerID string) ([]*model.Habit, error) {
	rows, err := h.db.QueryContext(ctx, `
        SELECT habit_id, owner_id, text, completed_today, streak, last_completed_at, creation_time
        FROM habits WHERE owner_id=$1 ORDER BY creation_time ASC
    `, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Habit
	for rows.Next() {
		var m model.Habit
		if err := rows.Scan(&m.HabitID, &m.OwnerID, &m.Text, &m.CompletedToday, &m.Streak, &m.LastCompletedAt, &m.CreationTime); err != nil {
			return nil, err
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

func (h *habits) Get(ctx context.Context, ownerID, habitID string) (*model.Habit, error) {
	var m model.Habit
	row := h.db.QueryRowContext(ctx, `
        SELECT habit_id, owner_id, text, completed_today, streak, last_completed_at, creation_time
        FROM habits WHERE owner_id=$1 AND habit_id=$2
    `, ownerID, habitID)
	if err := row.Scan(&m.HabitID, &m.OwnerID, &m.Text, &m.CompletedToday, &m.Streak, &m.LastCompletedAt, &m.CreationTime); err != nil {
		return nil, mapNoRows(err)
	}
	return &m, nil
}

func (h *habits) UpdateText(ctx context.Context, ownerID, habitID, text string) error {
	res, err := h.db.ExecContext(ctx, `
        UPDATE habits SET text=$3 WHERE owner_id=$1 AND habit_id=$2
    `, ownerID, habitID, text)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.ErrNotFound
	}
	return nil
}

// SetState writes the streak triple in one statement so readers never see a
// partially applied transition.
func (h *habits) SetState(ctx context.Context, ownerID, habitID string, st model.StreakState) error {
	res, err := h.db.ExecContext(ctx, `
        UPDATE habits SET completed_today=$3, streak=$4, last_completed_at=$5
        WHERE owner_id=$1 AND habit_id=$2
    `, ownerID, habitID, st.CompletedToday, st.Streak, st.LastCompletedAt)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (h *habits) Delete(ctx context.Context, ownerID, habitID string) error {
	res, err := h.db.ExecContext(ctx, `DELETE FROM habits WHERE owner_id=$1 AND habit_id=$2`, ownerID, habitID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (h *habits) Owners(ctx context.Context) ([]string, error) {
	rows, err := h.db.QueryContext(ctx, `SELECT DISTINCT owner_id FROM habits`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

// --- Roadmap items ---

type roadmapItems struct{ db *sql.DB }

func (r *roadmapItems) Create(ctx context.Context, m *model.RoadmapItem) (*model.RoadmapItem, error) {
	id := m.ItemID
	if id == "" {
		id = uuid.New().String()
	}
	var created time.Time
	row := r.db.QueryRowContext(ctx, `
        INSERT INTO roadmap_items (item_id, owner_id, text, completed)
        VALUES ($1,$2,$3,$4)
        RETURNING creation_time
    `, id, m.OwnerID, m.Text, m.Completed)
	if err := row.Scan(&created); err != nil {
		return nil, err
	}
	return &model.RoadmapItem{ItemID: id, OwnerID: m.OwnerID, Text: m.Text, Completed: m.Completed, CreationTime: created}, nil
}

func (r *roadmapItems) List(ctx context.Context, ownerID string) ([]*model.RoadmapItem, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT item_id, owner_id, text, completed, creation_time
        FROM roadmap_items WHERE owner_id=$1 ORDER BY creation_time ASC
    `, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.RoadmapItem
	for rows.Next() {
		var m model.RoadmapItem
		if err := rows.Scan(&m.ItemID, &m.OwnerID, &m.Text, &m.Completed, &m.CreationTime); err != nil {
			return nil, err
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

func (r *roadmapItems) UpdateText(ctx context.Context, ownerID, itemID, text string) error {
	return execOwned(ctx, r.db, `UPDATE roadmap_items SET text=$3 WHERE owner_id=$1 AND item_id=$2`, ownerID, itemID, text)
}

func (r *roadmapItems) SetCompleted(ctx context.Context, ownerID, itemID string, completed bool) error {
	return execOwned(ctx, r.db, `UPDATE roadmap_items SET completed=$3 WHERE owner_id=$1 AND item_id=$2`, ownerID, itemID, completed)
}

func (r *roadmapItems) Delete(ctx context.Context, ownerID, itemID string) error {
	return execOwned(ctx, r.db, `DELETE FROM roadmap_items WHERE owner_id=$1 AND item_id=$2`, ownerID, itemID)
}

// --- Weekly actions ---

type weeklyActions struct{ db *sql.DB }

func (w *weeklyActions) Create(ctx context.Context, m *model.WeeklyAction) (*model.WeeklyAction, error) {
	id := m.ActionID
	if id == "" {
		id = uuid.New().String()
	}
	var created time.Time
	row := w.db.QueryRowContext(ctx, `
        INSERT INTO weekly_actions (action_id, owner_id, text, completed)
        VALUES ($1,$2,$3,$4)
        RETURNING creation_time
    `, id, m.OwnerID, m.Text, m.Completed)
	if err := row.Scan(&created); err != nil {
		return nil, err
	}
	return &model.WeeklyAction{ActionID: id, OwnerID: m.OwnerID, Text: m.Text, Completed: m.Completed, CreationTime: created}, nil
}

func (w *weeklyActions) List(ctx context.Context, ownerID string) ([]*model.WeeklyAction, error) {
	rows, err := w.db.QueryContext(ctx, `
        SELECT action_id, owner_id, text, completed, creation_time
        FROM weekly_actions WHERE owner_id=$1 ORDER BY creation_time ASC
    `, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.WeeklyAction
	for rows.Next() {
		var m model.WeeklyAction
		if err := rows.Scan(&m.ActionID, &m.OwnerID, &m.Text, &m.Completed, &m.CreationTime); err != nil {
			return nil, err
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

func (w *weeklyActions) UpdateText(ctx context.Context, ownerID, actionID, text string) error {
	return execOwned(ctx, w.db, `UPDATE weekly_actions SET text=$3 WHERE owner_id=$1 AND action_id=$2`, ownerID, actionID, text)
}

func (w *weeklyActions) SetCompleted(ctx context.Context, ownerID, actionID string, completed bool) error {
	return execOwned(ctx, w.db, `UPDATE weekly_actions SET completed=$3 WHERE owner_id=$1 AND action_id=$2`, ownerID, actionID, completed)
}

func (w *weeklyActions) Delete(ctx context.Context, ownerID, actionID string) error {
	return execOwned(ctx, w.db, `DELETE FROM weekly_actions WHERE owner_id=$1 AND action_id=$2`, ownerID, actionID)
}

// --- Skills ---

type skills struct{ db *sql.DB }

func (s *skills) Create(ctx context.Context, m *model.Skill) (*model.Skill, error) {
	id := m.SkillID
	if id == "" {
		id = uuid.New().String()
	}
	var created time.Time
	row := s.db.QueryRowContext(ctx, `
        INSERT INTO skills (skill_id, owner_id, name)
        VALUES ($1,$2,$3)
        RETURNING creation_time
    `, id, m.OwnerID, m.Name)
	if err := row.Scan(&created); err != nil {
		return nil, err
	}
	return &model.Skill{SkillID: id, OwnerID: m.OwnerID, Name: m.Name, CreationTime: created}, nil
}

func (s *skills) List(ctx context.Context, ownerID string) ([]*model.Skill, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT skill_id, owner_id, name, creation_time
        FROM skills WHERE owner_id=$1 ORDER BY name ASC
    `, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Skill
	for rows.Next() {
		var m model.Skill
		if err := rows.Scan(&m.SkillID, &m.OwnerID, &m.Name, &m.CreationTime); err != nil {
			return nil, err
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

func (s *skills) Get(ctx context.Context, ownerID, skillID string) (*model.Skill, error) {
	var m model.Skill
	row := s.db.QueryRowContext(ctx, `
        SELECT skill_id, owner_id, name, creation_time
        FROM skills WHERE owner_id=$1 AND skill_id=$2
    `, ownerID, skillID)
	if err := row.Scan(&m.SkillID, &m.OwnerID, &m.Name, &m.CreationTime); err != nil {
		return nil, mapNoRows(err)
	}
	return &m, nil
}

func (s *skills) Rename(ctx context.Context, ownerID, skillID, name string) error {
	return execOwned(ctx, s.db, `UPDATE skills SET name=$3 WHERE owner_id=$1 AND skill_id=$2`, ownerID, skillID, name)
}

func (s *skills) Delete(ctx context.Context, ownerID, skillID string) error {
	return execOwned(ctx, s.db, `DELETE FROM skills WHERE owner_id=$1 AND skill_id=$2`, ownerID, skillID)
}

// --- Skill logs ---

type skillLogs struct{ db *sql.DB }

func (s *skillLogs) Create(ctx context.Context, m *model.SkillLog) (*model.SkillLog, error) {
	id := m.LogID
	if id == "" {
		id = uuid.New().String()
	}
	var logged time.Time
	row := s.db.QueryRowContext(ctx, `
        INSERT INTO skill_logs (log_id, owner_id, skill, hours)
        VALUES ($1,$2,$3,$4)
        RETURNING log_time
    `, id, m.OwnerID, m.Skill, m.Hours)
	if err := row.Scan(&logged); err != nil {
		return nil, err
	}
	return &model.SkillLog{LogID: id, OwnerID: m.OwnerID, Skill: m.Skill, Hours: m.Hours, LogTime: logged}, nil
}

func (s *skillLogs) List(ctx context.Context, ownerID string) ([]*model.SkillLog, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT log_id, owner_id, skill, hours, log_time
        FROM skill_logs WHERE owner_id=$1 ORDER BY log_time DESC
    `, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.SkillLog
	for rows.Next() {
		var m model.SkillLog
		if err := rows.Scan(&m.LogID, &m.OwnerID, &m.Skill, &m.Hours, &m.LogTime); err != nil {
			return nil, err
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

func (s *skillLogs) Update(ctx context.Context, ownerID, logID, skill string, hours float64) error {
	return execOwned(ctx, s.db, `UPDATE skill_logs SET skill=$3, hours=$4 WHERE owner_id=$1 AND log_id=$2`, ownerID, logID, skill, hours)
}

func (s *skillLogs) Delete(ctx context.Context, ownerID, logID string) error {
	return execOwned(ctx, s.db, `DELETE FROM skill_logs WHERE owner_id=$1 AND log_id=$2`, ownerID, logID)
}

func (s *skillLogs) DeleteBySkill(ctx context.Context, ownerID, skill string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM skill_logs WHERE owner_id=$1 AND skill=$2`, ownerID, skill)
	return err
}

// --- Brand notes ---

type brandNotes struct{ db *sql.DB }

func (b *brandNotes) Create(ctx context.Context, m *model.BrandNote) (*model.BrandNote, error) {
	id := m.NoteID
	if id == "" {
		id = uuid.New().String()
	}
	var created time.Time
	row := b.db.QueryRowContext(ctx, `
        INSERT INTO brand_notes (note_id, owner_id, text)
        VALUES ($1,$2,$3)
        RETURNING creation_time
    `, id, m.OwnerID, m.Text)
	if err := row.Scan(&created); err != nil {
		return nil, err
	}
	return &model.BrandNote{NoteID: id, OwnerID: m.OwnerID, Text: m.Text, CreationTime: created}, nil
}

func (b *brandNotes) List(ctx context.Context, ownerID string) ([]*model.BrandNote, error) {
	rows, err := b.db.QueryContext(ctx, `
        SELECT note_id, owner_id, text, creation_time
        FROM brand_notes WHERE owner_id=$1 ORDER BY creation_time DESC
    `, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.BrandNote
	for rows.Next() {
		var m model.BrandNote
		if err := rows.Scan(&m.NoteID, &m.OwnerID, &m.Text, &m.CreationTime); err != nil {
			return nil, err
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

func (b *brandNotes) UpdateText(ctx context.Context, ownerID, noteID, text string) error {
	return execOwned(ctx, b.db, `UPDATE brand_notes SET text=$3 WHERE owner_id=$1 AND note_id=$2`, ownerID, noteID, text)
}

func (b *brandNotes) Delete(ctx context.Context, ownerID, noteID string) error {
	return execOwned(ctx, b.db, `DELETE FROM brand_notes WHERE owner_id=$1 AND note_id=$2`, ownerID, noteID)
}

// --- Transactions ---

type transactions struct{ db *sql.DB }

func (t *transactions) Create(ctx context.Context, m *model.Transaction) (*model.Transaction, error) {
	id := m.TxID
	if id == "" {
		id = uuid.New().String()
	}
	var txTime time.Time
	row := t.db.QueryRowContext(ctx, `
        INSERT INTO transactions (tx_id, owner_id, type, amount, description)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING tx_time
    `, id, m.OwnerID, m.Type, m.Amount, m.Description)
	if err := row.Scan(&txTime); err != nil {
		return nil, err
	}
	return &model.Transaction{TxID: id, OwnerID: m.OwnerID, Type: m.Type, Amount: m.Amount, Description: m.Description, TxTime: txTime}, nil
}

func (t *transactions) List(ctx context.Context, ownerID string) ([]*model.Transaction, error) {
	rows, err := t.db.QueryContext(ctx, `
        SELECT tx_id, owner_id, type, amount, description, tx_time
        FROM transactions WHERE owner_id=$1 ORDER BY tx_time DESC
    `, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Transaction
	for rows.Next() {
		var m model.Transaction
		if err := rows.Scan(&m.TxID, &m.OwnerID, &m.Type, &m.Amount, &m.Description, &m.TxTime); err != nil {
			return nil, err
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

func (t *transactions) Update(ctx context.Context, ownerID, txID string, txType string, amount float64, description string) error {
	return execOwned(ctx, t.db, `UPDATE transactions SET type=$3, amount=$4, description=$5 WHERE owner_id=$1 AND tx_id=$2`, ownerID, txID, txType, amount, description)
}

func (t *transactions) Delete(ctx context.Context, ownerID, txID string) error {
	return execOwned(ctx, t.db, `DELETE FROM transactions WHERE owner_id=$1 AND tx_id=$2`, ownerID, txID)
}

// execOwned runs an owner-scoped statement and maps zero affected rows to ErrNotFound.
func execOwned(ctx context.Context, db *sql.DB, query string, args ...interface{}) error {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.ErrNotFound
	}
	return nil
}
