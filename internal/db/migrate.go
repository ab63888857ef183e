package db

import "database/sql"

// The unique index on (resource, date, time) is what makes book's
// check-then-insert race-free: the database arbitrates concurrent inserts.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS reservations (
	id SERIAL PRIMARY KEY,
	subject_name TEXT NOT NULL,
	contact TEXT NOT NULL,
	resource TEXT NOT NULL,
	category TEXT NOT NULL,
	date TEXT NOT NULL,
	time TEXT NOT NULL,
	notes TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_reservations_slot
	ON reservations (resource, date, time);

CREATE INDEX IF NOT EXISTS idx_reservations_cancel_match
	ON reservations (subject_name, contact, date);
`

func Migrate(db *sql.DB) error {
	_, err := db.Exec(schemaSQL)
	return err
}
