package store

import (
	"database/sql"
	"errors"

	"traindiary/db"
	"traindiary/models"
)

const usersSchema = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT NOT NULL,
	email TEXT NOT NULL,
	password_hash TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// UserStore owns user records and credential hashing. Construct one per
// process and pass it by reference; it holds the shared SQLite handle.
type UserStore struct {
	db *sql.DB
}

func NewUserStore(conn *sql.DB) *UserStore {
	return &UserStore{db: conn}
}

// UserUpdate carries a partial update. An empty string means the field
// was not supplied and the stored value survives.
type UserUpdate struct {
	Username string
	Email    string
	Password string
}

// Init ensures the users table exists. Idempotent; every operation
// calls it first, so the schema syncs lazily on first access.
func (s *UserStore) Init() error {
	if _, err := s.db.Exec(usersSchema); err != nil {
		return unavailable(err)
	}
	return nil
}

func (s *UserStore) All() ([]models.User, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}

	rows, err := s.db.Query("SELECT id, username, email, password_hash, created_at FROM users")
	if err != nil {
		return nil, unavailable(err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
			return nil, unavailable(err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable(err)
	}
	return users, nil
}

func (s *UserStore) Find(id int) (*models.User, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}

	var u models.User
	err := s.db.QueryRow("SELECT id, username, email, password_hash, created_at FROM users WHERE id = ?", id).
		Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, unavailable(err)
	}
	return &u, nil
}

// Create hashes the plaintext password and inserts the record. The
// plaintext is never written; hashing happens here, as an ordinary
// call, before the INSERT.
func (s *UserStore) Create(username, email, password string) (*models.User, error) {
	var missing []string
	if username == "" {
		missing = append(missing, "username")
	}
	if email == "" {
		missing = append(missing, "email")
	}
	if password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	if err := s.Init(); err != nil {
		return nil, err
	}

	hash, err := db.HashPassword(password)
	if err != nil {
		return nil, unavailable(err)
	}

	result, err := s.db.Exec("INSERT INTO users (username, email, password_hash) VALUES (?, ?, ?)",
		username, email, hash)
	if err != nil {
		return nil, unavailable(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, unavailable(err)
	}
	return s.Find(int(id))
}

// Update merges the supplied fields into the stored record: supplied
// fields replace, absent ones survive. A supplied password is hashed
// before the write, regardless of which other fields came with it.
func (s *UserStore) Update(id int, upd UserUpdate) (*models.User, error) {
	if upd.Username == "" && upd.Email == "" && upd.Password == "" {
		return nil, &ValidationError{Fields: []string{"username", "email", "password"}}
	}

	existing, err := s.Find(id)
	if err != nil {
		return nil, err
	}

	username := existing.Username
	if upd.Username != "" {
		username = upd.Username
	}
	email := existing.Email
	if upd.Email != "" {
		email = upd.Email
	}
	passwordHash := existing.PasswordHash
	if upd.Password != "" {
		passwordHash, err = db.HashPassword(upd.Password)
		if err != nil {
			return nil, unavailable(err)
		}
	}

	_, err = s.db.Exec("UPDATE users SET username = ?, email = ?, password_hash = ? WHERE id = ?",
		username, email, passwordHash, id)
	if err != nil {
		return nil, unavailable(err)
	}
	return s.Find(id)
}

func (s *UserStore) Delete(id int) error {
	if err := s.Init(); err != nil {
		return err
	}

	result, err := s.db.Exec("DELETE FROM users WHERE id = ?", id)
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

// VerifyPassword reports whether the candidate plaintext matches the
// stored hash. It never reverses the hash.
func (s *UserStore) VerifyPassword(id int, candidate string) (bool, error) {
	user, err := s.Find(id)
	if err != nil {
		return false, err
	}
	return db.CheckPasswordHash(candidate, user.PasswordHash), nil
}
