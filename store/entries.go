package store

import (
	"database/sql"
	"errors"

	"traindiary/models"
)

const entriesSchema = `
CREATE TABLE IF NOT EXISTS diary_entries (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	owner_id INTEGER NOT NULL,
	weekdays TEXT NOT NULL,
	entry_date DATETIME NOT NULL,
	workout TEXT NOT NULL,
	read_today BOOLEAN NOT NULL,
	took_photo BOOLEAN NOT NULL,
	diet BOOLEAN NOT NULL,
	reminder TEXT,
	photo_ref TEXT,
	reading_ref TEXT,
	notes TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (owner_id) REFERENCES users(id) ON DELETE CASCADE
);
`

const entryColumns = "id, owner_id, weekdays, entry_date, workout, read_today, took_photo, diet, reminder, photo_ref, reading_ref, notes, created_at"

// EntryStore owns diary entries. It carries the UserStore so that
// lookups by owner can confirm the owner exists.
type EntryStore struct {
	db    *sql.DB
	users *UserStore
}

func NewEntryStore(conn *sql.DB, users *UserStore) *EntryStore {
	return &EntryStore{db: conn, users: users}
}

// Init ensures the diary table exists. The users table is synced first
// since the owner foreign key references it.
func (s *EntryStore) Init() error {
	if err := s.users.Init(); err != nil {
		return err
	}
	if _, err := s.db.Exec(entriesSchema); err != nil {
		return unavailable(err)
	}
	return nil
}

func scanEntry(row interface{ Scan(...any) error }) (*models.DiaryEntry, error) {
	var e models.DiaryEntry
	err := row.Scan(&e.ID, &e.OwnerID, &e.Weekdays, &e.Date, &e.Workout,
		&e.ReadToday, &e.TookPhoto, &e.Diet,
		&e.Reminder, &e.PhotoRef, &e.ReadingRef, &e.Notes, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *EntryStore) All() ([]models.DiaryEntry, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}

	rows, err := s.db.Query("SELECT " + entryColumns + " FROM diary_entries")
	if err != nil {
		return nil, unavailable(err)
	}
	defer rows.Close()

	var entries []models.DiaryEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, unavailable(err)
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable(err)
	}
	return entries, nil
}

func (s *EntryStore) Find(id int) (*models.DiaryEntry, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}

	e, err := scanEntry(s.db.QueryRow("SELECT "+entryColumns+" FROM diary_entries WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, unavailable(err)
	}
	return e, nil
}

// checkOwner maps a missing owner to ErrOwnerNotFound. Referential
// integrity is enforced here, before the engine's FK gets a say.
func (s *EntryStore) checkOwner(ownerID int) error {
	if _, err := s.users.Find(ownerID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrOwnerNotFound
		}
		return err
	}
	return nil
}

// ByOwner returns every entry belonging to ownerID. The owner must
// exist: a missing owner yields ErrOwnerNotFound, while an existing
// owner with no entries yields an empty slice. The existence check and
// the listing are two statements; a concurrent owner delete between
// them is an accepted race.
func (s *EntryStore) ByOwner(ownerID int) ([]models.DiaryEntry, error) {
	if err := s.checkOwner(ownerID); err != nil {
		return nil, err
	}

	if err := s.Init(); err != nil {
		return nil, err
	}

	rows, err := s.db.Query("SELECT "+entryColumns+" FROM diary_entries WHERE owner_id = ?", ownerID)
	if err != nil {
		return nil, unavailable(err)
	}
	defer rows.Close()

	entries := []models.DiaryEntry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, unavailable(err)
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable(err)
	}
	return entries, nil
}

// Create validates the required fields and inserts the entry. Boolean
// flags are required at the transport boundary; the store never
// defaults them. The referenced owner must exist.
func (s *EntryStore) Create(e models.DiaryEntry) (*models.DiaryEntry, error) {
	var missing []string
	if e.Weekdays == "" {
		missing = append(missing, "weekdays")
	}
	if e.Date.IsZero() {
		missing = append(missing, "date")
	}
	if e.Workout == "" {
		missing = append(missing, "workout")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	if err := s.checkOwner(e.OwnerID); err != nil {
		return nil, err
	}

	if err := s.Init(); err != nil {
		return nil, err
	}

	result, err := s.db.Exec(`INSERT INTO diary_entries
		(owner_id, weekdays, entry_date, workout, read_today, took_photo, diet, reminder, photo_ref, reading_ref, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.OwnerID, e.Weekdays, e.Date, e.Workout,
		e.ReadToday, e.TookPhoto, e.Diet,
		e.Reminder, e.PhotoRef, e.ReadingRef, e.Notes)
	if err != nil {
		return nil, unavailable(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, unavailable(err)
	}
	return s.Find(int(id))
}

// Update replaces the whole document: every column is overwritten from
// the payload. Unlike UserStore.Update there is no merging; the
// asymmetry is intentional.
func (s *EntryStore) Update(id int, e models.DiaryEntry) (*models.DiaryEntry, error) {
	if _, err := s.Find(id); err != nil {
		return nil, err
	}
	if err := s.checkOwner(e.OwnerID); err != nil {
		return nil, err
	}

	_, err := s.db.Exec(`UPDATE diary_entries SET
		owner_id = ?, weekdays = ?, entry_date = ?, workout = ?,
		read_today = ?, took_photo = ?, diet = ?,
		reminder = ?, photo_ref = ?, reading_ref = ?, notes = ?
		WHERE id = ?`,
		e.OwnerID, e.Weekdays, e.Date, e.Workout,
		e.ReadToday, e.TookPhoto, e.Diet,
		e.Reminder, e.PhotoRef, e.ReadingRef, e.Notes, id)
	if err != nil {
		return nil, unavailable(err)
	}
	return s.Find(id)
}

func (s *EntryStore) Delete(id int) error {
	if err := s.Init(); err != nil {
		return err
	}

	result, err := s.db.Exec("DELETE FROM diary_entries WHERE id = ?", id)
	if err != nil {
		return unavailable(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return unavailable(err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
