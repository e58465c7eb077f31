package models

const (
	// MinPrice is the lowest price a restaurant can charge for a pizza
	MinPrice = 1
	// MaxPrice is the highest price a restaurant can charge for a pizza
	MaxPrice = 30
)

// RestaurantPizza links a pizza to a restaurant at a given price
type RestaurantPizza struct {
	ID           int        `gorm:"primaryKey" json:"id"`
	Price        float64    `gorm:"not null" json:"price"`
	PizzaID      int        `gorm:"not null;index" json:"pizza_id"`
	RestaurantID int        `gorm:"not null;index" json:"restaurant_id"`
	Pizza        Pizza      `gorm:"foreignKey:PizzaID" json:"-"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantID" json:"-"`
}

func (RestaurantPizza) TableName() string {
	return "restaurant_pizzas"
}

// ValidPrice reports whether price is inside the allowed [MinPrice, MaxPrice] range
func ValidPrice(price float64) bool {
	return price >= MinPrice && price <= MaxPrice
}
