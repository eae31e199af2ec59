package database

import (
	"github.com/yeremiapane/food-order-app/models"
	"github.com/yeremiapane/food-order-app/utils"
	"gorm.io/gorm"
)

// SeedCatalog mengisi data restoran dan menu contoh bila katalog masih kosong.
// Dipanggil dari main hanya saat SEED_DEMO_DATA=true.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Shop{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		utils.InfoLogger.Printf("Catalog already seeded (%d shops), skipping", count)
		return nil
	}

	shops := []models.Shop{
		{ShopName: "Krua Baan Suan", ShopAddress: "112/4 Sukhumvit Rd, Bangkok"},
		{ShopName: "Somtam Paradise", ShopAddress: "88 Nimmanhaemin Rd, Chiang Mai"},
	}
	if err := db.Create(&shops).Error; err != nil {
		return err
	}

	menus := []models.Menu{
		{MenuName: "Pad Krapow Moo", MenuDescription: "Stir-fried pork with holy basil", Price: 50, ShopID: shops[0].ShopID},
		{MenuName: "Tom Yum Goong", MenuDescription: "Spicy shrimp soup", Price: 120, ShopID: shops[0].ShopID},
		{MenuName: "Somtam Thai", MenuDescription: "Green papaya salad", Price: 45, ShopID: shops[1].ShopID},
		{MenuName: "Khao Niao", MenuDescription: "Sticky rice", Price: 15, ShopID: shops[1].ShopID},
	}
	if err := db.Create(&menus).Error; err != nil {
		return err
	}

	utils.InfoLogger.Printf("Seeded %d shops and %d menus", len(shops), len(menus))
	return nil
}
