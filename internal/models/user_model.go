package models

import (
	"database/sql"
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID               int64          `db:"id" json:"id"`
	GoogleID         string         `db:"google_id" json:"google_id"`
	Email            string         `db:"email" json:"email"`
	Name             string         `db:"name" json:"name"`
	ProfilePicture   string         `db:"profile_picture" json:"profile_picture"`
	Role             string         `db:"role" json:"role"`
	Location         string         `db:"location" json:"location"`
	Age              int            `db:"age" json:"age"`
	Phone            string         `db:"phone" json:"phone"`
	ProfileCompleted bool           `db:"profile_completed" json:"profile_completed"`
	OneSignalID      sql.NullString `db:"onesignal_id" json:"-"`
	CreatedAt        time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at" json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
