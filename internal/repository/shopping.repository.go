package repository

import (
	"fitnutri/internal/models"

	"gorm.io/gorm"
)

// ShoppingListRepository persists the whole list at once. The list is small
// and positional, so replace-on-save keeps insertion order authoritative.
type ShoppingListRepository interface {
	Load() ([]models.ShoppingItem, error)
	Replace(items []models.ShoppingItem) error
}

type shoppingListRepository struct {
	db *gorm.DB
}

func NewShoppingListRepository(db *gorm.DB) ShoppingListRepository {
	return &shoppingListRepository{db: db}
}

func (r *shoppingListRepository) Load() ([]models.ShoppingItem, error) {
	var items []models.ShoppingItem
	err := r.db.Order("position").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *shoppingListRepository) Replace(items []models.ShoppingItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.ShoppingItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		rows := make([]models.ShoppingItem, len(items))
		for i, item := range items {
			item.ID = 0
			item.Position = i
			rows[i] = item
		}
		return tx.Create(&rows).Error
	})
}
