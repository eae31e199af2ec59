package models

type Menu struct {
	MenuID          uint    `gorm:"primaryKey;column:menu_id" json:"menu_id"`
	MenuName        string  `gorm:"type:varchar(255);column:menu_name;not null" json:"menu_name"`
	MenuDescription string  `gorm:"type:text;column:menu_description" json:"menu_description"`
	Price           float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	ShopID          uint    `gorm:"not null;index" json:"shop_id"`
	Shop            Shop    `gorm:"foreignKey:ShopID;references:ShopID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (Menu) TableName() string {
	return "tbl_menus"
}

// MenuWithShop adalah row hasil join /menus (menu + restoran pemiliknya).
type MenuWithShop struct {
	MenuID          uint    `json:"menu_id"`
	MenuName        string  `json:"menu_name"`
	MenuDescription string  `json:"menu_description"`
	Price           float64 `json:"price"`
	ShopID          uint    `json:"shop_id"`
	ShopName        string  `json:"shop_name"`
	ShopAddress     string  `json:"shop_address"`
}
