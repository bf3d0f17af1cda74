package models

// User is provisioned out-of-band (scripts/create_admin.go); there is no
// create endpoint. Password holds a bcrypt hash and is never serialized.
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"size:100;uniqueIndex;not null"`
	Password string `json:"-" gorm:"size:100;not null"`
}
