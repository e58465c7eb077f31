package services

import (
	"context"
	"testing"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRestaurantPizza(t *testing.T) {
	db := setupTestDB(t)
	service := NewRestaurantPizzaService(db)

	restaurant := createRestaurant(t, db, "Karen's Pizza Shack", "address1")
	pizza := createPizza(t, db, "Emma", "Dough, Tomato Sauce, Cheese")

	rp, err := service.CreateRestaurantPizza(context.Background(), 15, pizza.ID, restaurant.ID)
	require.NoError(t, err)

	assert.NotZero(t, rp.ID)
	assert.Equal(t, float64(15), rp.Price)
	assert.Equal(t, pizza.ID, rp.PizzaID)
	assert.Equal(t, restaurant.ID, rp.RestaurantID)
	assert.Equal(t, "Emma", rp.Pizza.Name)
	assert.Equal(t, "Karen's Pizza Shack", rp.Restaurant.Name)
	assert.Equal(t, int64(1), countRows(t, db, &models.RestaurantPizza{}, ""))
}

func TestCreateRestaurantPizzaPriceBounds(t *testing.T) {
	testCases := []struct {
		name    string
		price   float64
		wantErr bool
	}{
		{name: "zero is rejected", price: 0, wantErr: true},
		{name: "negative is rejected", price: -5, wantErr: true},
		{name: "just below minimum is rejected", price: 0.99, wantErr: true},
		{name: "minimum is accepted", price: 1},
		{name: "maximum is accepted", price: 30},
		{name: "just above maximum is rejected", price: 30.01, wantErr: true},
		{name: "thirty one is rejected", price: 31, wantErr: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			service := NewRestaurantPizzaService(db)
			restaurant := createRestaurant(t, db, "Sanjay's Pizza", "address2")
			pizza := createPizza(t, db, "Geri", "Dough, Tomato Sauce, Cheese, Pepperoni")

			_, err := service.CreateRestaurantPizza(context.Background(), tt.price, pizza.ID, restaurant.ID)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidationFailed)
				assert.Zero(t, countRows(t, db, &models.RestaurantPizza{}, ""))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, int64(1), countRows(t, db, &models.RestaurantPizza{}, ""))
		})
	}
}

func TestCreateRestaurantPizzaUnknownReferences(t *testing.T) {
	db := setupTestDB(t)
	service := NewRestaurantPizzaService(db)

	restaurant := createRestaurant(t, db, "Kiki's Pizza", "address3")
	pizza := createPizza(t, db, "Melanie", "Dough, Sauce, Ricotta, Red peppers, Mustard")

	_, err := service.CreateRestaurantPizza(context.Background(), 10, pizza.ID+100, restaurant.ID)
	assert.ErrorIs(t, err, ErrValidationFailed)

	_, err = service.CreateRestaurantPizza(context.Background(), 10, pizza.ID, restaurant.ID+100)
	assert.ErrorIs(t, err, ErrValidationFailed)

	_, err = service.CreateRestaurantPizza(context.Background(), 10, 0, 0)
	assert.ErrorIs(t, err, ErrValidationFailed)

	assert.Zero(t, countRows(t, db, &models.RestaurantPizza{}, ""))
}
