package relational

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables for the booking core. Safe to call
// multiple times. The DDL sticks to the subset shared by postgres and
// sqlite: no serial columns, no NOW() defaults; timestamps are written
// by the application as ISO-8601 text.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS bookings (
	booking_id TEXT PRIMARY KEY,
	next_occasion INTEGER NOT NULL DEFAULT 0,
	title TEXT NOT NULL DEFAULT '',
	time_created TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	location TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS occasions (
	booking_id TEXT NOT NULL REFERENCES bookings(booking_id),
	occasion INTEGER NOT NULL,
	date TEXT NOT NULL,
	time_start TEXT NOT NULL,
	time_end TEXT NOT NULL,
	PRIMARY KEY (booking_id, occasion)
);

CREATE TABLE IF NOT EXISTS answers (
	booking_id TEXT NOT NULL REFERENCES bookings(booking_id),
	occasion INTEGER NOT NULL,
	name TEXT NOT NULL,
	answer INTEGER NOT NULL,
	pos INTEGER NOT NULL,
	PRIMARY KEY (booking_id, occasion, name)
);

CREATE TABLE IF NOT EXISTS comments (
	booking_id TEXT NOT NULL REFERENCES bookings(booking_id),
	time_created TEXT NOT NULL,
	name TEXT NOT NULL DEFAULT '',
	comment TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS active (
	booking_id TEXT PRIMARY KEY,
	is_active BOOLEAN NOT NULL
);
`
