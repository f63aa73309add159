package models

import "time"

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type DiaryEntry struct {
	ID         int       `json:"id"`
	OwnerID    int       `json:"owner_id"`
	Weekdays   string    `json:"weekdays"`
	Date       time.Time `json:"date"`
	Workout    string    `json:"workout"`
	ReadToday  bool      `json:"read_today"`
	TookPhoto  bool      `json:"took_photo"`
	Diet       bool      `json:"diet"`
	Reminder   string    `json:"reminder,omitempty"`
	PhotoRef   string    `json:"photo_ref,omitempty"`
	ReadingRef string    `json:"reading_ref,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
