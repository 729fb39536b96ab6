package models

// ProfileModel represents a registered user's identity record.
// Email and nickname carry unique indexes; those constraints are the sole
// authority for availability, client-side pre-checks only hide latency.
type ProfileModel struct {
	Base
	Email    string `json:"email"    gorm:"uniqueIndex;not null"`
	Nickname string `json:"nickname" gorm:"uniqueIndex;not null"`
	Password string `json:"-"        gorm:"not null"`
}

func (ProfileModel) TableName() string { return "profiles" }
