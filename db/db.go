package db

import (
	"database/sql"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is deliberately fixed: every hash written by this process
// uses the same work factor, so verification cost stays predictable.
const BcryptCost = 10

// connParams are applied on every pooled connection. foreign_keys is
// required for the ON DELETE CASCADE relationship between users and
// diary entries; a plain PRAGMA exec would only reach one connection.
const connParams = "_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000"

// Open returns a SQLite handle shared process-wide. Schema creation is
// owned by the stores (lazy sync); Open only tunes the connection.
func Open(dataSourceName string) (*sql.DB, error) {
	dsn := dataSourceName
	if strings.Contains(dsn, "?") {
		dsn += "&" + connParams
	} else {
		dsn += "?" + connParams
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(5)
	conn.SetConnMaxLifetime(time.Hour)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, err
	}

	return conn, nil
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
