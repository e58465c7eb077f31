package services

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RestaurantPizzaService provides methods to create restaurant pizzas
type RestaurantPizzaService interface {
	// CreateRestaurantPizza offers a pizza at a restaurant for the given price.
	// Every failure is reported as ErrValidationFailed.
	CreateRestaurantPizza(ctx context.Context, price float64, pizzaID, restaurantID int) (models.RestaurantPizza, error)
}

type restaurantPizzaService struct {
	db *gorm.DB
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService
func NewRestaurantPizzaService(db *gorm.DB) RestaurantPizzaService {
	return &restaurantPizzaService{db: db}
}

func (s *restaurantPizzaService) CreateRestaurantPizza(ctx context.Context, price float64, pizzaID, restaurantID int) (models.RestaurantPizza, error) {
	if !models.ValidPrice(price) {
		return models.RestaurantPizza{}, fmt.Errorf("%w: price %v outside [%d, %d]", ErrValidationFailed, price, models.MinPrice, models.MaxPrice)
	}

	rp := models.RestaurantPizza{
		Price:        price,
		PizzaID:      pizzaID,
		RestaurantID: restaurantID,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&rp.Restaurant, restaurantID).Error; err != nil {
			return fmt.Errorf("restaurant %d: %w", restaurantID, err)
		}
		if err := tx.First(&rp.Pizza, pizzaID).Error; err != nil {
			return fmt.Errorf("pizza %d: %w", pizzaID, err)
		}
		// Both sides are already persisted; only insert the join row
		if err := tx.Omit(clause.Associations).Create(&rp).Error; err != nil {
			return fmt.Errorf("inserting restaurant pizza: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.RestaurantPizza{}, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}
	return rp, nil
}
