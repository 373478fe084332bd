package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

// Roles is stored as a JSON array in the users.roles column.
type Roles []string

func (r Roles) Value() (driver.Value, error) {
	return json.Marshal(r)
}

func (r *Roles) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*r = nil
		return nil
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	}
	return errors.New("roles: unsupported column type")
}

func (r Roles) Has(role string) bool {
	for _, candidate := range r {
		if candidate == role {
			return true
		}
	}
	return false
}

type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Email    string `json:"email" gorm:"size:180;unique;not null"`
	Password string `json:"-" gorm:"size:255;not null"`
	Roles    Roles  `json:"roles" gorm:"type:json;not null"`

	Tasks []Task `json:"tasks,omitempty" gorm:"foreignKey:AuthorID"`
}

func (u *User) IsAdmin() bool {
	return u.Roles.Has(RoleAdmin)
}
