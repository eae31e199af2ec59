package models

type Shop struct {
	ShopID      uint   `gorm:"primaryKey;column:shop_id" json:"shop_id"`
	ShopName    string `gorm:"type:varchar(255);column:shop_name;not null" json:"shop_name"`
	ShopAddress string `gorm:"type:text;column:shop_address" json:"shop_address"`
}

func (Shop) TableName() string {
	return "tbl_restaurants"
}
