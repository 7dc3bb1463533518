package generating

// MenuTemplate é um item de cardápio de referência com as calorias base
type MenuTemplate struct {
	Name         string
	Description  string
	Category     string
	BaseCalories int
}

// Catalog agrupa os itens de cardápio por culinária. Culinárias sem itens
// usam Default; se Default também estiver vazio, usa o catálogo padrão embutido.
type Catalog struct {
	ByCuisine map[string][]MenuTemplate
	Default   []MenuTemplate
}

var (
	loyaltyTiers       = []string{"Bronze", "Silver", "Gold", "Platinum"}
	loyaltyTierWeights = []float64{0.5, 0.3, 0.15, 0.05}

	customerCuisines = []string{"Italian", "Chinese", "Mexican", "Indian", "American", "Thai", "Japanese"}

	restaurantCuisines = []string{
		"Italian", "Chinese", "Mexican", "Indian", "American",
		"Thai", "Japanese", "Mediterranean", "Korean", "Vietnamese",
	}

	cities = []struct{ City, State string }{
		{"New York", "NY"},
		{"Los Angeles", "CA"},
		{"Chicago", "IL"},
		{"Houston", "TX"},
		{"Phoenix", "AZ"},
		{"Philadelphia", "PA"},
		{"San Antonio", "TX"},
		{"San Diego", "CA"},
		{"Dallas", "TX"},
		{"San Jose", "CA"},
	}

	restaurantNames = []string{
		"Mama's Kitchen", "Dragon Palace", "Taco Fiesta", "Spice Garden", "Burger Haven",
		"Noodle House", "Sushi Express", "Pizza Corner", "Curry Delight", "BBQ Pit",
		"Fresh Salads", "Pasta Paradise", "Wok This Way", "Grill Master", "Sweet Treats",
		"Ocean Breeze", "Mountain View", "City Lights", "Garden Fresh", "Fire & Ice",
		"Golden Spoon", "Silver Fork", "Copper Pot", "Iron Chef", "Crystal Palace",
	}

	// Curva de pedidos por hora (0h a 23h) com picos no almoço e no jantar
	hourWeights = []float64{
		0.5, 0.3, 0.2, 0.2, 0.3, 0.5, 0.8, 1.0, 1.2, 1.5, 2.0, 3.0,
		3.5, 2.5, 1.8, 1.5, 1.8, 2.5, 3.8, 4.0, 3.2, 2.0, 1.2, 0.8,
	}

	orderStatuses      = []string{"completed", "cancelled", "pending"}
	orderStatusWeights = []float64{4, 1, 1}

	itemsPerOrderWeights = []float64{0.30, 0.35, 0.20, 0.10, 0.05} // 1 a 5 itens
	quantityWeights      = []float64{0.70, 0.25, 0.05}             // 1 a 3 unidades

	paymentMethods = []string{"credit_card", "debit_card", "paypal", "cash", "apple_pay"}
	orderSources   = []string{"app", "website", "phone"}
)

var defaultMenu = []MenuTemplate{
	{"House Special", "Chef's signature dish", "Main", 480},
	{"Soup of the Day", "Daily fresh soup", "Soup", 150},
	{"Garden Salad", "Fresh mixed greens", "Salad", 220},
	{"Grilled Chicken", "Simply grilled chicken breast", "Main", 380},
	{"Dessert Special", "Chef's dessert creation", "Dessert", 250},
}

// DefaultCatalog retorna o catálogo de cardápios usado pelo gerador
func DefaultCatalog() Catalog {
	return Catalog{
		ByCuisine: map[string][]MenuTemplate{
			"Italian": {
				{"Margherita Pizza", "Classic pizza with tomato, mozzarella, and basil", "Pizza", 450},
				{"Pepperoni Pizza", "Pizza with pepperoni and mozzarella cheese", "Pizza", 520},
				{"Spaghetti Carbonara", "Pasta with eggs, cheese, and pancetta", "Pasta", 380},
				{"Chicken Parmigiana", "Breaded chicken with marinara and mozzarella", "Main", 650},
				{"Caesar Salad", "Romaine lettuce with Caesar dressing", "Salad", 280},
				{"Tiramisu", "Classic Italian dessert", "Dessert", 320},
			},
			"Chinese": {
				{"Sweet and Sour Chicken", "Battered chicken with sweet and sour sauce", "Main", 480},
				{"Beef and Broccoli", "Stir-fried beef with broccoli", "Main", 420},
				{"Fried Rice", "Wok-fried rice with vegetables and egg", "Rice", 350},
				{"Spring Rolls", "Crispy vegetable spring rolls", "Appetizer", 180},
				{"Hot and Sour Soup", "Traditional Chinese soup", "Soup", 120},
				{"Kung Pao Chicken", "Spicy chicken with peanuts", "Main", 450},
			},
			"Mexican": {
				{"Chicken Tacos", "Soft tacos with grilled chicken", "Tacos", 320},
				{"Beef Burrito", "Large burrito with seasoned beef", "Burrito", 580},
				{"Guacamole and Chips", "Fresh guacamole with tortilla chips", "Appetizer", 250},
				{"Quesadilla", "Grilled tortilla with cheese", "Main", 420},
				{"Churros", "Fried dough with cinnamon sugar", "Dessert", 280},
				{"Chicken Fajitas", "Sizzling chicken with peppers", "Main", 480},
			},
			"Indian": {
				{"Chicken Tikka Masala", "Creamy tomato curry with chicken", "Curry", 520},
				{"Biryani", "Fragrant rice with spices and meat", "Rice", 480},
				{"Naan Bread", "Traditional Indian flatbread", "Bread", 180},
				{"Samosas", "Fried pastries with spiced filling", "Appetizer", 220},
				{"Dal Curry", "Lentil curry with spices", "Curry", 280},
				{"Mango Lassi", "Yogurt drink with mango", "Beverage", 150},
			},
			"American": {
				{"Classic Burger", "Beef patty with lettuce, tomato, onion", "Burger", 650},
				{"BBQ Ribs", "Slow-cooked ribs with BBQ sauce", "Main", 780},
				{"Buffalo Wings", "Spicy chicken wings", "Appetizer", 420},
				{"Mac and Cheese", "Creamy macaroni and cheese", "Side", 380},
				{"Apple Pie", "Classic American dessert", "Dessert", 320},
				{"Grilled Chicken Salad", "Mixed greens with grilled chicken", "Salad", 350},
			},
			"Thai": {
				{"Pad Thai", "Stir-fried noodles with tamarind sauce", "Noodles", 420},
				{"Green Curry", "Spicy coconut curry", "Curry", 380},
				{"Tom Yum Soup", "Spicy and sour soup", "Soup", 180},
				{"Mango Sticky Rice", "Sweet dessert with mango", "Dessert", 280},
				{"Thai Basil Chicken", "Stir-fried chicken with basil", "Main", 450},
				{"Papaya Salad", "Spicy green papaya salad", "Salad", 220},
			},
			"Japanese": {
				{"California Roll", "Sushi roll with crab and avocado", "Sushi", 280},
				{"Chicken Teriyaki", "Grilled chicken with teriyaki sauce", "Main", 420},
				{"Miso Soup", "Traditional soybean soup", "Soup", 80},
				{"Tempura", "Battered and fried vegetables", "Appetizer", 320},
				{"Ramen", "Japanese noodle soup", "Noodles", 450},
				{"Mochi Ice Cream", "Sweet rice cake with ice cream", "Dessert", 180},
			},
		},
		Default: defaultMenu,
	}
}

func (c Catalog) defaults() []MenuTemplate {
	if len(c.Default) > 0 {
		return c.Default
	}
	return defaultMenu
}

// itemsFor retorna os itens da culinária, caindo para o catálogo padrão
func (c Catalog) itemsFor(cuisine string) []MenuTemplate {
	if items := c.ByCuisine[cuisine]; len(items) > 0 {
		return items
	}
	return c.defaults()
}
