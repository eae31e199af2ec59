package models

import "time"

// User adalah akun staf internal (tbl_users), terpisah dari Customer.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Firstname string    `gorm:"type:varchar(100)" json:"firstname"`
	Fullname  string    `gorm:"type:varchar(255)" json:"fullname"`
	Lastname  string    `gorm:"type:varchar(100)" json:"lastname"`
	Username  string    `gorm:"type:varchar(100)" json:"username"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	Status    string    `gorm:"type:varchar(20)" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "tbl_users"
}
