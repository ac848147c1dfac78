// internal/model/menu_item.go
package model

import "time"

type MenuItem struct {
    ID           int        `db:"id" json:"id"`
    Name         string     `db:"name" json:"name"`
    Description  string     `db:"description" json:"description"`
    Category     string     `db:"category" json:"category"` // pizza, savory, dessert, seasonal, ...
    Price        string     `db:"price" json:"price"`
    ImageURL     *string    `db:"image_url" json:"imageUrl,omitempty"`
    Available    bool       `db:"available" json:"available"`
    Ingredients  StringList `db:"ingredients" json:"ingredients,omitempty"`
    Allergens    StringList `db:"allergens" json:"allergens,omitempty"`
    IsVegetarian bool       `db:"is_vegetarian" json:"isVegetarian"`
    IsVegan      bool       `db:"is_vegan" json:"isVegan"`
    IsGlutenFree bool       `db:"is_gluten_free" json:"isGlutenFree"`
    CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
    UpdatedAt    time.Time  `db:"updated_at" json:"updatedAt"`
}
