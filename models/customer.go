package models

type Customer struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Prefix      string `gorm:"type:varchar(20)" json:"prefix"`
	Firstname   string `gorm:"type:varchar(100);not null" json:"firstname"`
	Lastname    string `gorm:"type:varchar(100);not null" json:"lastname"`
	Username    string `gorm:"type:varchar(100);unique;not null" json:"username"`
	Password    string `gorm:"type:varchar(255);not null" json:"-"`
	Address     string `gorm:"type:text" json:"address"`
	Email       string `gorm:"type:varchar(255);unique;not null" json:"email"`
	PhoneNumber string `gorm:"type:varchar(20)" json:"phone_number"`
}

func (Customer) TableName() string {
	return "tbl_customers"
}
