// Package sqlite implements store.Store on a local SQLite file, used for
// development and tests. Ids and timestamps are assigned in Go since SQLite
// has no RETURNING-friendly server defaults for them here.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mentoro-app/mentoro-server/internal/model"
	"github.com/mentoro-app/mentoro-server/internal/store"
)

type sqliteStore struct{ db *sql.DB }

// New opens (or creates) the database at path, applies the schema, and
// returns the store.
func New(path string) (store.Store, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	return NewWithDB(db)
}

// NewWithDB wires the store onto an existing connection (used by tests).
func NewWithDB(db *sql.DB) (store.Store, error) {
	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Users() store.Users                 { return &users{db: s.db} }
func (s *sqliteStore) Habits() store.Habits               { return &habits{db: s.db} }
func (s *sqliteStore) Roadmap() store.RoadmapItems        { return &roadmapItems{db: s.db} }
func (s *sqliteStore) WeeklyActions() store.WeeklyActions { return &weeklyActions{db: s.db} }
func (s *sqliteStore) Skills() store.Skills               { return &skills{db: s.db} }
func (s *sqliteStore) SkillLogs() store.SkillLogs         { return &skillLogs{db: s.db} }
func (s *sqliteStore) BrandNotes() store.BrandNotes       { return &brandNotes{db: s.db} }
func (s *sqliteStore) Transactions() store.Transactions   { return &transactions{db: s.db} }

// HealthPing implements health.HealthPinger.
func (s *sqliteStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func mapNoRows(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return model.ErrNotFound
	}
	return err
}

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

// --- Users ---

type users struct{ db *sql.DB }

func (u *users) Create(ctx context.Context, m *model.User) (*model.User, error) {
	now := time.Now().UTC()
	_, err := u.db.ExecContext(ctx, `INSERT INTO Users (UserId, Email, DisplayName, TimeZone, CreationTime) VALUES (?,?,?,?,?)`,
		m.UserID, m.Email, m.DisplayName, m.TimeZone, now)
	if err != nil {
		return nil, err
	}
	out := *m
	out.CreationTime = now
	return &out, nil
}

func (u *users) Get(ctx context.Context, userID string) (*model.User, error) {
	var out model.User
	row := u.db.QueryRowContext(ctx, `SELECT UserId, Email, DisplayName, TimeZone, CreationTime FROM Users WHERE UserId = ?`, userID)
	if err := row.Scan(&out.UserID, &out.Email, &out.DisplayName, &out.TimeZone, &out.CreationTime); err != nil {
		return nil, mapNoRows(err)
	}
	return &out, nil
}

func (u *users) Delete(ctx context.Context, userID string) error {
	return execOwned(ctx, u.db, `DELETE FROM Users WHERE UserId = ?`, userID)
}

// --- Habits ---

type habits struct{ db *sql.DB }

func (h *habits) Create(ctx context.Context, m *model.Habit) (*model.Habit, error) {
	id := m.HabitID
	if id == "" {
		id = uuid.New().String()
	}
	now := time.Now().UTC()
	_, err := h.db.ExecContext(ctx, `INSERT INTO Habits (HabitId, OwnerId, Text, CompletedToday, Streak, LastCompletedAt, CreationTime) VALUES (?,?,?,0,0,NULL,?)`,
		id, m.OwnerID, m.Text, now)
	if err != nil {
		return nil, err
	}
	return &model.Habit{HabitID: id, OwnerID: m.OwnerID, Text: m.Text, CreationTime: now}, nil
}

func (h *habits) List(ctx context.Context, ownerID string) ([]*model.Habit, error) {
	rows, err := h.db.QueryContext(ctx, `SELECT HabitId, OwnerId, Text, CompletedToday, Streak, LastCompletedAt, CreationTime FROM Habits WHERE OwnerId = ? ORDER BY CreationTime ASC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Habit
	for rows.Next() {
		m, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (h *habits) Get(ctx context.Context, ownerID, habitID string) (*model.Habit, error) {
	row := h.db.QueryRowContext(ctx, `SELECT HabitId, OwnerId, Text, CompletedToday, Streak, LastCompletedAt, CreationTime FROM Habits WHERE OwnerId = ? AND HabitId = ?`, ownerID, habitID)
	m, err := scanHabit(row)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return m, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanHabit(r rowScanner) (*model.Habit, error) {
	var m model.Habit
	var completed int
	if err := r.Scan(&m.HabitID, &m.OwnerID, &m.Text, &completed, &m.Streak, &m.LastCompletedAt, &m.CreationTime); err != nil {
		return nil, err
	}
	m.CompletedToday = completed != 0
	return &m, nil
}

func (h *habits) UpdateText(ctx context.Context, ownerID, habitID, text string) error {
	return execOwned(ctx, h.db, `UPDATE Habits SET Text = ? WHERE OwnerId = ? AND HabitId = ?`, text, ownerID, habitID)
}

// SetState writes the streak triple in one statement; readers never observe a
// partial transition.
func (h *habits) SetState(ctx context.Context, ownerID, habitID string, st model.StreakState) error {
	completed := 0
	if st.CompletedToday {
		completed = 1
	}
	return execOwned(ctx, h.db, `UPDATE Habits SET CompletedToday = ?, Streak = ?, LastCompletedAt = ? WHERE OwnerId = ? AND HabitId = ?`,
		completed, st.Streak, st.LastCompletedAt, ownerID, habitID)
}

func (h *habits) Delete(ctx context.Context, ownerID, habitID string) error {
	return execOwned(ctx, h.db, `DELETE FROM Habits WHERE OwnerId = ? AND HabitId = ?`, ownerID, habitID)
}

func (h *habits) Owners(ctx context.Context) ([]string, error) {
	rows, err := h.db.QueryContext(ctx, `SELECT DISTINCT OwnerId FROM Habits`)
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
	now := time.Now().UTC()
	completed := 0
	if m.Completed {
		completed = 1
	}
	_, err := r.db.ExecContext(ctx, `INSERT INTO RoadmapItems (ItemId, OwnerId, Text, Completed, CreationTime) VALUES (?,?,?,?,?)`,
		id, m.OwnerID, m.Text, completed, now)
	if err != nil {
		return nil, err
	}
	return &model.RoadmapItem{ItemID: id, OwnerID: m.OwnerID, Text: m.Text, Completed: m.Completed, CreationTime: now}, nil
}

func (r *roadmapItems) List(ctx context.Context, ownerID string) ([]*model.RoadmapItem, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT ItemId, OwnerId, Text, Completed, CreationTime FROM RoadmapItems WHERE OwnerId = ? ORDER BY CreationTime ASC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.RoadmapItem
	for rows.Next() {
		var m model.RoadmapItem
		var completed int
		if err := rows.Scan(&m.ItemID, &m.OwnerID, &m.Text, &completed, &m.CreationTime); err != nil {
			return nil, err
		}
		m.Completed = completed != 0
		out = append(out, &m)
	}
	return out, rows.Err()
}

func (r *roadmapItems) UpdateText(ctx context.Context, ownerID, itemID, text string) error {
	return execOwned(ctx, r.db, `UPDATE RoadmapItems SET Text = ? WHERE OwnerId = ? AND ItemId = ?`, text, ownerID, itemID)
}

func (r *roadmapItems) SetCompleted(ctx context.Context, ownerID, itemID string, completed bool) error {
	c := 0
	if completed {
		c = 1
	}
	return execOwned(ctx, r.db, `UPDATE RoadmapItems SET Completed = ? WHERE OwnerId = ? AND ItemId = ?`, c, ownerID, itemID)
}

func (r *roadmapItems) Delete(ctx context.Context, ownerID, itemID string) error {
	return execOwned(ctx, r.db, `DELETE FROM RoadmapItems WHERE OwnerId = ? AND ItemId = ?`, ownerID, itemID)
}

// --- Weekly actions ---

type weeklyActions struct{ db *sql.DB }

func (w *weeklyActions) Create(ctx context.Context, m *model.WeeklyAction) (*model.WeeklyAction, error) {
	id := m.ActionID
	if id == "" {
		id = uuid.New().String()
	}
	now := time.Now().UTC()
	completed := 0
	if m.Completed {
		completed = 1
	}
	_, err := w.db.ExecContext(ctx, `INSERT INTO WeeklyActions (ActionId, OwnerId, Text, Completed, CreationTime) VALUES (?,?,?,?,?)`,
		id, m.OwnerID, m.Text, completed, now)
	if err != nil {
		return nil, err
	}
	return &model.WeeklyAction{ActionID: id, OwnerID: m.OwnerID, Text: m.Text, Completed: m.Completed, CreationTime: now}, nil
}

func (w *weeklyActions) List(ctx context.Context, ownerID string) ([]*model.WeeklyAction, error) {
	rows, err := w.db.QueryContext(ctx, `SELECT ActionId, OwnerId, Text, Completed, CreationTime FROM WeeklyActions WHERE OwnerId = ? ORDER BY CreationTime ASC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.WeeklyAction
	for rows.Next() {
		var m model.WeeklyAction
		var completed int
		if err := rows.Scan(&m.ActionID, &m.OwnerID, &m.Text, &completed, &m.CreationTime); err != nil {
			return nil, err
		}
		m.Completed = completed != 0
		out = append(out, &m)
	}
	return out, rows.Err()
}

func (w *weeklyActions) UpdateText(ctx context.Context, ownerID, actionID, text string) error {
	return execOwned(ctx, w.db, `UPDATE WeeklyActions SET Text = ? WHERE OwnerId = ? AND ActionId = ?`, text, ownerID, actionID)
}

func (w *weeklyActions) SetCompleted(ctx context.Context, ownerID, actionID string, completed bool) error {
	c := 0
	if completed {
		c = 1
	}
	return execOwned(ctx, w.db, `UPDATE WeeklyActions SET Completed = ? WHERE OwnerId = ? AND ActionId = ?`, c, ownerID, actionID)
}

func (w *weeklyActions) Delete(ctx context.Context, ownerID, actionID string) error {
	return execOwned(ctx, w.db, `DELETE FROM WeeklyActions WHERE OwnerId = ? AND ActionId = ?`, ownerID, actionID)
}

// --- Skills ---

type skills struct{ db *sql.DB }

func (s *skills) Create(ctx context.Context, m *model.Skill) (*model.Skill, error) {
	id := m.SkillID
	if id == "" {
		id = uuid.New().String()
	}
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx, `INSERT INTO Skills (SkillId, OwnerId, Name, CreationTime) VALUES (?,?,?,?)`,
		id, m.OwnerID, m.Name, now)
	if err != nil {
		return nil, err
	}
	return &model.Skill{SkillID: id, OwnerID: m.OwnerID, Name: m.Name, CreationTime: now}, nil
}

func (s *skills) List(ctx context.Context, ownerID string) ([]*model.Skill, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT SkillId, OwnerId, Name, CreationTime FROM Skills WHERE OwnerId = ? ORDER BY Name ASC`, ownerID)
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
	row := s.db.QueryRowContext(ctx, `SELECT SkillId, OwnerId, Name, CreationTime FROM Skills WHERE OwnerId = ? AND SkillId = ?`, ownerID, skillID)
	if err := row.Scan(&m.SkillID, &m.OwnerID, &m.Name, &m.CreationTime); err != nil {
		return nil, mapNoRows(err)
	}
	return &m, nil
}

func (s *skills) Rename(ctx context.Context, ownerID, skillID, name string) error {
	return execOwned(ctx, s.db, `UPDATE Skills SET Name = ? WHERE OwnerId = ? AND SkillId = ?`, name, ownerID, skillID)
}

func (s *skills) Delete(ctx context.Context, ownerID, skillID string) error {
	return execOwned(ctx, s.db, `DELETE FROM Skills WHERE OwnerId = ? AND SkillId = ?`, ownerID, skillID)
}

// --- Skill logs ---

type skillLogs struct{ db *sql.DB }

func (s *skillLogs) Create(ctx context.Context, m *model.SkillLog) (*model.SkillLog, error) {
	id := m.LogID
	if id == "" {
		id = uuid.New().String()
	}
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx, `INSERT INTO SkillLogs (LogId, OwnerId, Skill, Hours, LogTime) VALUES (?,?,?,?,?)`,
		id, m.OwnerID, m.Skill, m.Hours, now)
	if err != nil {
		return nil, err
	}
	return &model.SkillLog{LogID: id, OwnerID: m.OwnerID, Skill: m.Skill, Hours: m.Hours, LogTime: now}, nil
}

func (s *skillLogs) List(ctx context.Context, ownerID string) ([]*model.SkillLog, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT LogId, OwnerId, Skill, Hours, LogTime FROM SkillLogs WHERE OwnerId = ? ORDER BY LogTime DESC`, ownerID)
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
	return execOwned(ctx, s.db, `UPDATE SkillLogs SET Skill = ?, Hours = ? WHERE OwnerId = ? AND LogId = ?`, skill, hours, ownerID, logID)
}

func (s *skillLogs) Delete(ctx context.Context, ownerID, logID string) error {
	return execOwned(ctx, s.db, `DELETE FROM SkillLogs WHERE OwnerId = ? AND LogId = ?`, ownerID, logID)
}

func (s *skillLogs) DeleteBySkill(ctx context.Context, ownerID, skill string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM SkillLogs WHERE OwnerId = ? AND Skill = ?`, ownerID, skill)
	return err
}

// --- Brand notes ---

type brandNotes struct{ db *sql.DB }

func (b *brandNotes) Create(ctx context.Context, m *model.BrandNote) (*model.BrandNote, error) {
	id := m.NoteID
	if id == "" {
		id = uuid.New().String()
	}
	now := time.Now().UTC()
	_, err := b.db.ExecContext(ctx, `INSERT INTO BrandNotes (NoteId, OwnerId, Text, CreationTime) VALUES (?,?,?,?)`,
		id, m.OwnerID, m.Text, now)
	if err != nil {
		return nil, err
	}
	return &model.BrandNote{NoteID: id, OwnerID: m.OwnerID, Text: m.Text, CreationTime: now}, nil
}

func (b *brandNotes) List(ctx context.Context, ownerID string) ([]*model.BrandNote, error) {
	rows, err := b.db.QueryContext(ctx, `SELECT NoteId, OwnerId, Text, CreationTime FROM BrandNotes WHERE OwnerId = ? ORDER BY CreationTime DESC`, ownerID)
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
	return execOwned(ctx, b.db, `UPDATE BrandNotes SET Text = ? WHERE OwnerId = ? AND NoteId = ?`, text, ownerID, noteID)
}

func (b *brandNotes) Delete(ctx context.Context, ownerID, noteID string) error {
	return execOwned(ctx, b.db, `DELETE FROM BrandNotes WHERE OwnerId = ? AND NoteId = ?`, ownerID, noteID)
}

// --- Transactions ---

type transactions struct{ db *sql.DB }

func (t *transactions) Create(ctx context.Context, m *model.Transaction) (*model.Transaction, error) {
	id := m.TxID
	if id == "" {
		id = uuid.New().String()
	}
	now := time.Now().UTC()
	_, err := t.db.ExecContext(ctx, `INSERT INTO Transactions (TxId, OwnerId, Type, Amount, Description, TxTime) VALUES (?,?,?,?,?,?)`,
		id, m.OwnerID, m.Type, m.Amount, m.Description, now)
	if err != nil {
		return nil, err
	}
	return &model.Transaction{TxID: id, OwnerID: m.OwnerID, Type: m.Type, Amount: m.Amount, Description: m.Description, TxTime: now}, nil
}

func (t *transactions) List(ctx context.Context, ownerID string) ([]*model.Transaction, error) {
	rows, err := t.db.QueryContext(ctx, `SELECT TxId, OwnerId, Type, Amount, Description, TxTime FROM Transactions WHERE OwnerId = ? ORDER BY TxTime DESC`, ownerID)
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
	return execOwned(ctx, t.db, `UPDATE Transactions SET Type = ?, Amount = ?, Description = ? WHERE OwnerId = ? AND TxId = ?`, txType, amount, description, ownerID, txID)
}

func (t *transactions) Delete(ctx context.Context, ownerID, txID string) error {
	return execOwned(ctx, t.db, `DELETE FROM Transactions WHERE OwnerId = ? AND TxId = ?`, ownerID, txID)
}
