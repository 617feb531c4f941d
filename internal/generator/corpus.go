package generator

import "strings"

// 名前コーパス。カテゴリ→サブカテゴリ→商品名が互いに関連するように、
// キーワード一致でテーブルを引く。

var categoryNames = []string{
	"Electronics",
	"Smart Electronics",
	"Professional Electronics",
	"Clothing",
	"Kids' Clothing",
	"Vintage Clothing",
	"Home & Kitchen",
	"Budget Home",
	"Books",
	"Sports",
	"Outdoor Sports",
	"Beauty",
	"Luxury Beauty",
	"Toys",
	"Automotive",
	"Garden",
	"Eco-Friendly Garden",
	"Food & Beverages",
}

var subcategoryPrefixes = []struct {
	keyword  string
	prefixes []string
}{
	{"Electronics", []string{"Smartphones", "Laptops", "Tablets", "Accessories", "Audio", "Gaming", "Wearables", "Cameras"}},
	{"Clothing", []string{"Men's Wear", "Women's Wear", "Kids' Clothing", "Shoes", "Accessories", "Sportswear", "Formal", "Casual"}},
	{"Home", []string{"Furniture", "Decor", "Kitchen", "Bathroom", "Bedding", "Lighting", "Storage", "Appliances"}},
	{"Books", []string{"Fiction", "Non-Fiction", "Textbooks", "Children's Books", "Biographies", "Science", "History", "Self-Help"}},
	{"Sports", []string{"Fitness", "Outdoor", "Team Sports", "Water Sports", "Winter Sports", "Equipment", "Apparel", "Footwear"}},
	{"Beauty", []string{"Skincare", "Makeup", "Hair Care", "Fragrance", "Nails", "Tools", "Men's Grooming", "Wellness"}},
	{"Toys", []string{"Action Figures", "Dolls", "Educational", "Outdoor", "Building", "Puzzles", "Board Games", "Ride-On"}},
	{"Automotive", []string{"Parts", "Accessories", "Tools", "Electronics", "Interior", "Exterior", "Maintenance", "Safety"}},
	{"Garden", []string{"Plants", "Tools", "Furniture", "Decor", "Pots", "Seeds", "Irrigation", "Pest Control"}},
	{"Food", []string{"Snacks", "Beverages", "Organic", "Bakery", "Dairy", "Meat", "Produce", "Pantry"}},
}

var defaultSubcategoryPrefixes = []string{"Basic", "Advanced", "Premium", "Essential", "Specialty", "Standard", "Deluxe", "Compact"}

// カテゴリ名の修飾語を除いて素の名前にする。
var categoryModifiers = []string{"Home & ", "Outdoor ", "Professional ", "Kids' ", "Luxury ", "Budget ", "Eco-Friendly ", "Smart ", "Vintage "}

func cleanCategoryName(name string) string {
	for _, m := range categoryModifiers {
		name = strings.ReplaceAll(name, m, "")
	}
	return name
}

func containsKeyword(name, keyword string) bool {
	return strings.Contains(name, keyword)
}

func prefixesFor(categoryName string) []string {
	for _, e := range subcategoryPrefixes {
		if strings.Contains(categoryName, e.keyword) {
			return e.prefixes
		}
	}
	return defaultSubcategoryPrefixes
}

// カテゴリごとの説明の締め文。
var categoryDescriptionTails = []struct {
	keyword string
	tail    string
}{
	{"Electronics", "Perfect for tech enthusiasts."},
	{"Clothing", "Stylish and comfortable wear."},
	{"Home", "Essential for modern living."},
	{"Books", "Expand your knowledge."},
	{"Sports", "For active lifestyles."},
	{"Beauty", "Enhance your natural beauty."},
	{"Toys", "Fun for all ages."},
	{"Automotive", "Keep your vehicle running smoothly."},
	{"Garden", "Beautify your outdoor space."},
	{"Food", "Delicious and nutritious options."},
}

func categoryDescriptionTail(categoryName string) string {
	for _, e := range categoryDescriptionTails {
		if strings.Contains(categoryName, e.keyword) {
			return e.tail
		}
	}
	return "High-quality " + strings.ToLower(categoryName) + " products."
}

var subcategoryDescriptionTails = []struct {
	keyword string
	tail    string
}{
	{"Electronics", "Cutting-edge technology for modern needs."},
	{"Clothing", "Stylish and comfortable fashion choices."},
	{"Home", "Enhance your living space."},
	{"Books", "Expand your knowledge and imagination."},
	{"Sports", "Gear up for an active lifestyle."},
	{"Beauty", "Pamper yourself with quality products."},
	{"Toys", "Fun and educational entertainment."},
	{"Automotive", "Keep your vehicle in top condition."},
	{"Garden", "Cultivate a beautiful outdoor environment."},
	{"Food", "Delicious and nutritious options."},
}

func subcategoryDescriptionTail(categoryName string) string {
	for _, e := range subcategoryDescriptionTails {
		if strings.Contains(categoryName, e.keyword) {
			return e.tail
		}
	}
	return "Quality " + strings.ToLower(categoryName) + " products."
}

// 商品名テーブル。サブカテゴリ名のキーワードで組み立て方を変える。
type productNameParts struct {
	keyword string
	first   []string
	second  []string
	third   []string // 空なら2語
}

var productNameTable = []productNameParts{
	{
		keyword: "Smartphones",
		first:   []string{"iPhone", "Samsung Galaxy", "Google Pixel", "OnePlus", "Xiaomi", "Huawei", "Sony Xperia", "Motorola", "Nokia"},
		second:  []string{"12", "14", "15", "17", "21", "25", "Pro", "Ultra", "Plus", "Max", "Mini"},
		third:   []string{"Black", "White", "Blue", "Red", "Green", "Gold", "Silver", "Purple"},
	},
	{
		keyword: "Laptops",
		first:   []string{"MacBook", "Dell XPS", "HP Spectre", "Lenovo ThinkPad", "Asus ROG", "Microsoft Surface", "Acer", "MSI", "Razer"},
		second:  []string{`13"`, `14"`, `15"`, `16"`, `17"`},
		third:   []string{"Pro", "Air", "Book", "Laptop", "Notebook"},
	},
	{
		keyword: "Wear",
		first:   []string{"Slim", "Regular", "Oversized", "Vintage", "Modern", "Classic"},
		second:  []string{"Cotton", "Denim", "Wool", "Silk", "Polyester", "Linen", "Leather", "Nylon"},
		third:   []string{"T-Shirt", "Jeans", "Dress", "Jacket", "Sweater", "Pants", "Shirt", "Hoodie"},
	},
	{
		keyword: "Books",
		first:   []string{"The Art of Programming", "The Art of History", "The Art of Science", "The Art of Fiction", "The Art of Cooking", "The Art of Travel", "The Art of Business"},
		second:  []string{"Hardcover", "Paperback", "eBook", "Audiobook"},
	},
	{
		keyword: "Sports",
		first:   []string{"Nike", "Adidas", "Puma", "Under Armour", "Reebok", "New Balance", "Asics", "Wilson", "Speedo"},
		second:  []string{"Running Shoes", "Yoga Mat", "Dumbbells", "Treadmill", "Basketball", "Tennis Racket", "Soccer Ball", "Swim Goggles"},
	},
	{
		keyword: "Furniture",
		first:   []string{"Modern", "Classic", "Rustic", "Industrial", "Minimalist", "Scandinavian", "Bohemian"},
		second:  []string{"Wood", "Metal", "Fabric", "Leather", "Glass"},
		third:   []string{"Sofa", "Dining Table", "Chair", "Bed Frame", "Lamp", "Cabinet", "Bookshelf", "Desk"},
	},
	{
		keyword: "Beauty",
		first:   []string{"MAC", "Maybelline", "L'Oreal", "Estee Lauder", "Clinique", "NARS", "Fenty Beauty", "The Ordinary", "Kiehl's"},
		second:  []string{"Lipstick", "Foundation", "Shampoo", "Moisturizer", "Perfume", "Mascara", "Eyeshadow", "Serum"},
	},
	{
		keyword: "Toys",
		first:   []string{"Superhero", "Princess", "Animal", "Space", "Educational", "Adventure", "Fantasy", "Science"},
		second:  []string{"Action Figure", "Building Blocks", "Puzzle", "Stuffed Animal", "Board Game", "Remote Car", "Doll", "Lego Set"},
	},
	{
		keyword: "Automotive",
		first:   []string{"Bosch", "Michelin", "ACDelco", "Denso", "NGK", "Fram", "Castrol", "Goodyear", "Continental"},
		second:  []string{"Brake Pads", "Oil Filter", "Tires", "Battery", "Spark Plugs", "Air Filter", "Wipers", "Lights"},
	},
	{
		keyword: "Garden",
		first:   []string{"Weber", "Toro", "Black & Decker", "Sun Joe", "Greenworks", "Scotts", "Miracle-Gro", "Burpee"},
		second:  []string{"Garden Hose", "Lawn Mower", "Flower Pot", "Garden Tools Set", "Bird Feeder", "Grill", "Seeds", "Fertilizer"},
	},
	{
		keyword: "Food",
		first:   []string{"Italian", "French", "Mexican", "Japanese", "Indian", "Greek", "Spanish", "Thai", "German"},
		second:  []string{"Organic Apples", "Artisan Bread", "Gourmet Cheese", "Premium Coffee", "Fresh Pasta", "Chocolate Bar", "Tea Set", "Honey"},
	},
}

var fallbackProductAdjectives = []string{"Advanced", "Premium", "Deluxe", "Essential", "Professional", "Compact", "Heavy-Duty", "Lightweight", "Durable", "Eco-Friendly"}
var fallbackProductNouns = []string{"Tool", "Device", "System", "Kit", "Set", "Unit", "Module", "Component", "Accessory", "Gadget"}

var productDescriptionTails = []struct {
	keyword string
	tail    string
}{
	{"Electronics", "Featuring cutting-edge technology and sleek design."},
	{"Wear", "Made with high-quality materials for comfort and style."},
	{"Clothing", "Made with high-quality materials for comfort and style."},
	{"Books", "An engaging read that expands your knowledge."},
	{"Sports", "Perfect for athletes and fitness enthusiasts."},
	{"Home", "Enhance your living space with this quality item."},
	{"Furniture", "Enhance your living space with this quality item."},
	{"Beauty", "Professional-grade products for your beauty routine."},
	{"Toys", "Fun and educational entertainment for children."},
	{"Automotive", "Reliable parts for optimal vehicle performance."},
	{"Garden", "Create a beautiful outdoor environment."},
	{"Food", "Delicious and nutritious culinary delights."},
}

func productDescriptionTail(subcategoryName string) string {
	for _, e := range productDescriptionTails {
		if strings.Contains(subcategoryName, e.keyword) {
			return e.tail
		}
	}
	return "A premium " + strings.ToLower(subcategoryName) + " product."
}

var addressTitles = []string{
	"Home Address",
	"Work Address",
	"Billing Address",
	"Shipping Address",
	"Vacation Home",
}

var sexOptions = []string{"M", "F", "Other"}

var paymentStatuses = []PaymentStatus{
	PaymentStatusSuccess,
	PaymentStatusPending,
	PaymentStatusFailed,
	PaymentStatusRefunded,
}
