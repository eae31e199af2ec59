package models

import "time"

// Order menyimpan snapshot harga saat order dibuat; perubahan harga menu
// di kemudian hari tidak mengubah total order lama.
type Order struct {
	OrderID    uint      `gorm:"primaryKey;column:order_id" json:"order_id"`
	CustomerID uint      `gorm:"not null;index" json:"customer_id"`
	Customer   Customer  `gorm:"foreignKey:CustomerID" json:"-"`
	ShopID     uint      `gorm:"not null" json:"shop_id"`
	MenuID     uint      `gorm:"not null" json:"menu_id"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	Price      float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Total      float64   `gorm:"type:decimal(10,2);not null" json:"total"`
	OrderDate  time.Time `gorm:"column:order_date;not null" json:"order_date"`
}

func (Order) TableName() string {
	return "tbl_orders"
}
