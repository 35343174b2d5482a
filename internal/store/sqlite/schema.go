package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS Users (
    UserId        TEXT PRIMARY KEY,
    Email         TEXT NOT NULL UNIQUE,
    DisplayName   TEXT,
    TimeZone      TEXT NOT NULL DEFAULT 'UTC',
    CreationTime  TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS Habits (
    HabitId          TEXT PRIMARY KEY,
    OwnerId          TEXT NOT NULL REFERENCES Users(UserId) ON DELETE CASCADE,
    Text             TEXT NOT NULL,
    CompletedToday   INTEGER NOT NULL DEFAULT 0,
    Streak           INTEGER NOT NULL DEFAULT 0 CHECK (Streak >= 0),
    LastCompletedAt  TIMESTAMP,
    CreationTime     TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS IdxHabitsOwner ON Habits(OwnerId, CreationTime);

CREATE TABLE IF NOT EXISTS RoadmapItems (
    ItemId        TEXT PRIMARY KEY,
    OwnerId       TEXT NOT NULL REFERENCES Users(UserId) ON DELETE CASCADE,
    Text          TEXT NOT NULL,
    Completed     INTEGER NOT NULL DEFAULT 0,
    CreationTime  TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS WeeklyActions (
    ActionId      TEXT PRIMARY KEY,
    OwnerId       TEXT NOT NULL REFERENCES Users(UserId) ON DELETE CASCADE,
    Text          TEXT NOT NULL,
    Completed     INTEGER NOT NULL DEFAULT 0,
    CreationTime  TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS Skills (
    SkillId       TEXT PRIMARY KEY,
    OwnerId       TEXT NOT NULL REFERENCES Users(UserId) ON DELETE CASCADE,
    Name          TEXT NOT NULL,
    CreationTime  TIMESTAMP NOT NULL,
    UNIQUE (OwnerId, Name)
);

CREATE TABLE IF NOT EXISTS SkillLogs (
    LogId    TEXT PRIMARY KEY,
    OwnerId  TEXT NOT NULL REFERENCES Users(UserId) ON DELETE CASCADE,
    Skill    TEXT NOT NULL,
    Hours    REAL NOT NULL CHECK (Hours > 0),
    LogTime  TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS BrandNotes (
    NoteId        TEXT PRIMARY KEY,
    OwnerId       TEXT NOT NULL REFERENCES Users(UserId) ON DELETE CASCADE,
    Text          TEXT NOT NULL,
    CreationTime  TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS Transactions (
    TxId         TEXT PRIMARY KEY,
    OwnerId      TEXT NOT NULL REFERENCES Users(UserId) ON DELETE CASCADE,
    Type         TEXT NOT NULL CHECK (Type IN ('income','expense')),
    Amount       REAL NOT NULL CHECK (Amount >= 0),
    Description  TEXT NOT NULL DEFAULT '',
    TxTime       TIMESTAMP NOT NULL
);
`

// ensureSchema applies the idempotent DDL statements on open.
func ensureSchema(db *sql.DB) error {
	for _, stmt := range strings.Split(schemaSQL, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("sqlite schema: %w", err)
		}
	}
	return nil
}
