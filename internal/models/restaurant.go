package models

// Restaurant represents a restaurant with the pizzas it offers
type Restaurant struct {
	ID               int               `gorm:"primaryKey" json:"id"`
	Name             string            `gorm:"not null" json:"name"`
	Address          string            `json:"address"`
	RestaurantPizzas []RestaurantPizza `gorm:"foreignKey:RestaurantID" json:"-"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}
