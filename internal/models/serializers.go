package models

// PizzaResponse is the JSON shape of a pizza, without its restaurant associations
type PizzaResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
}

// RestaurantSummary is the JSON shape of a restaurant in listings and nested objects
type RestaurantSummary struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// RestaurantPizzaResponse is the JSON shape of an association nested under a restaurant
type RestaurantPizzaResponse struct {
	ID           int           `json:"id"`
	Price        float64       `json:"price"`
	PizzaID      int           `json:"pizza_id"`
	RestaurantID int           `json:"restaurant_id"`
	Pizza        PizzaResponse `json:"pizza"`
}

// RestaurantDetail is the full JSON shape of a single restaurant
type RestaurantDetail struct {
	RestaurantSummary
	RestaurantPizzas []RestaurantPizzaResponse `json:"restaurant_pizzas"`
}

// RestaurantPizzaCreated is returned after creating an association, with both sides nested
type RestaurantPizzaCreated struct {
	RestaurantPizzaResponse
	Restaurant RestaurantSummary `json:"restaurant"`
}

// ToResponse serializes a pizza
func (p Pizza) ToResponse() PizzaResponse {
	return PizzaResponse{ID: p.ID, Name: p.Name, Ingredients: p.Ingredients}
}

// ToSummary serializes a restaurant without its associations
func (r Restaurant) ToSummary() RestaurantSummary {
	return RestaurantSummary{ID: r.ID, Name: r.Name, Address: r.Address}
}

// ToDetail serializes a restaurant together with its associations and their pizzas.
// restaurant_pizzas is always an array, never null.
func (r Restaurant) ToDetail() RestaurantDetail {
	items := make([]RestaurantPizzaResponse, 0, len(r.RestaurantPizzas))
	for _, rp := range r.RestaurantPizzas {
		items = append(items, rp.ToResponse())
	}
	return RestaurantDetail{RestaurantSummary: r.ToSummary(), RestaurantPizzas: items}
}

// ToResponse serializes an association with its pizza
func (rp RestaurantPizza) ToResponse() RestaurantPizzaResponse {
	return RestaurantPizzaResponse{
		ID:           rp.ID,
		Price:        rp.Price,
		PizzaID:      rp.PizzaID,
		RestaurantID: rp.RestaurantID,
		Pizza:        rp.Pizza.ToResponse(),
	}
}

// ToCreated serializes an association with both its pizza and its restaurant
func (rp RestaurantPizza) ToCreated() RestaurantPizzaCreated {
	return RestaurantPizzaCreated{
		RestaurantPizzaResponse: rp.ToResponse(),
		Restaurant:              rp.Restaurant.ToSummary(),
	}
}

// PizzasToResponse serializes a pizza listing
func PizzasToResponse(pizzas []Pizza) []PizzaResponse {
	out := make([]PizzaResponse, 0, len(pizzas))
	for _, p := range pizzas {
		out = append(out, p.ToResponse())
	}
	return out
}

// RestaurantsToSummary serializes a restaurant listing
func RestaurantsToSummary(restaurants []Restaurant) []RestaurantSummary {
	out := make([]RestaurantSummary, 0, len(restaurants))
	for _, r := range restaurants {
		out = append(out, r.ToSummary())
	}
	return out
}
