package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// StringList stores an ordered list of strings as a JSON TEXT column, which
// keeps postgres and sqlite behaviour identical.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported type for StringList")
	}
}

type Project struct {
	BaseModel
	UserID       string     `gorm:"type:uuid;not null;index" json:"user"`
	Title        string     `gorm:"not null" json:"title"`
	Description  string     `gorm:"type:text;not null" json:"description"`
	Image        string     `json:"image"`
	Technologies StringList `gorm:"type:text" json:"technologies"`
	GithubURL    string     `json:"githubUrl"`
	LiveURL      string     `json:"liveUrl"`
	Featured     bool       `gorm:"default:false" json:"featured"`
	OrderIndex   int        `gorm:"default:0" json:"order"`
}
