package main

import (
	"context"
	"encoding/json"
	"flag"
	"iter"
	"log/slog"
	"os"

	"github.com/poiesic/shopsense"
	"github.com/poiesic/shopsense/core"
)

var catalog = []*core.Product{
	{
		Name:        "Blue Denim Jacket",
		Description: "Classic straight-cut denim jacket with button front and chest pockets.",
		Category:    "Jackets",
		Subcategory: "Denim",
		Tags:        []string{"casual", "everyday", "layering"},
		Colors:      []string{"blue"},
		Materials:   []string{"denim", "cotton"},
		Sizes:       []string{"S", "M", "L", "XL"},
		Price:       79.99,
		Stock:       42,
		Rating:      4.5,
		ReviewCount: 184,
		SalesCount:  920,
	},
	{
		Name:        "Black Leather Biker Jacket",
		Description: "Asymmetric zip leather jacket with quilted shoulders and zippered cuffs.",
		Category:    "Jackets",
		Subcategory: "Leather",
		Tags:        []string{"edgy", "evening", "moto"},
		Colors:      []string{"black"},
		Materials:   []string{"leather"},
		Sizes:       []string{"S", "M", "L"},
		Price:       249.00,
		Stock:       18,
		Rating:      4.7,
		ReviewCount: 96,
		SalesCount:  410,
	},
	{
		Name:        "Green Waterproof Parka",
		Description: "Insulated hooded parka with taped seams, rated for heavy rain and wind.",
		Category:    "Jackets",
		Subcategory: "Outdoor",
		Tags:        []string{"winter", "waterproof", "hiking"},
		Colors:      []string{"green"},
		Materials:   []string{"polyester", "nylon"},
		Sizes:       []string{"M", "L", "XL", "XXL"},
		Price:       189.50,
		Stock:       27,
		Rating:      4.6,
		ReviewCount: 142,
		SalesCount:  530,
	},
	{
		Name:        "Red Wool Sweater",
		Description: "Chunky knit crewneck sweater spun from soft merino wool.",
		Category:    "Sweaters",
		Subcategory: "Knitwear",
		Tags:        []string{"winter", "cozy", "holiday"},
		Colors:      []string{"red"},
		Materials:   []string{"wool"},
		Sizes:       []string{"XS", "S", "M", "L"},
		Price:       59.99,
		Stock:       64,
		Rating:      4.8,
		ReviewCount: 233,
		SalesCount:  1180,
	},
	{
		Name:        "Cream Cable Knit Cardigan",
		Description: "Open-front cardigan with cable knit pattern and patch pockets.",
		Category:    "Sweaters",
		Subcategory: "Knitwear",
		Tags:        []string{"cozy", "layering", "office"},
		Colors:      []string{"cream", "white"},
		Materials:   []string{"wool", "acrylic"},
		Sizes:       []string{"S", "M", "L", "XL"},
		Price:       68.00,
		Stock:       35,
		Rating:      4.4,
		ReviewCount: 87,
		SalesCount:  390,
	},
	{
		Name:        "Grey Cashmere Turtleneck",
		Description: "Lightweight pure cashmere turtleneck with ribbed trim.",
		Category:    "Sweaters",
		Subcategory: "Luxury",
		Tags:        []string{"winter", "elegant", "office"},
		Colors:      []string{"grey"},
		Materials:   []string{"cashmere"},
		Sizes:       []string{"XS", "S", "M", "L"},
		Price:       165.00,
		Stock:       14,
		Rating:      4.9,
		ReviewCount: 61,
		SalesCount:  205,
	},
	{
		Name:        "White Cotton T-Shirt",
		Description: "Heavyweight combed cotton tee with a relaxed fit.",
		Category:    "Shirts",
		Subcategory: "T-Shirts",
		Tags:        []string{"basic", "casual", "summer"},
		Colors:      []string{"white"},
		Materials:   []string{"cotton"},
		Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
		Price:       19.99,
		Stock:       210,
		Rating:      4.3,
		ReviewCount: 540,
		SalesCount:  4100,
	},
	{
		Name:        "Navy Oxford Button-Down Shirt",
		Description: "Slim-fit oxford shirt with button-down collar and single chest pocket.",
		Category:    "Shirts",
		Subcategory: "Dress Shirts",
		Tags:        []string{"office", "formal", "smart casual"},
		Colors:      []string{"navy", "blue"},
		Materials:   []string{"cotton"},
		Sizes:       []string{"S", "M", "L", "XL"},
		Price:       49.50,
		Stock:       88,
		Rating:      4.5,
		ReviewCount: 176,
		SalesCount:  760,
	},
	{
		Name:        "Plaid Flannel Shirt",
		Description: "Brushed flannel shirt in a red and black buffalo plaid.",
		Category:    "Shirts",
		Subcategory: "Casual Shirts",
		Tags:        []string{"casual", "autumn", "outdoor"},
		Colors:      []string{"red", "black"},
		Materials:   []string{"cotton", "flannel"},
		Sizes:       []string{"M", "L", "XL"},
		Price:       39.99,
		Stock:       73,
		Rating:      4.4,
		ReviewCount: 129,
		SalesCount:  615,
	},
	{
		Name:        "Black Skinny Jeans",
		Description: "Stretch denim skinny jeans with a high-rise waist.",
		Category:    "Pants",
		Subcategory: "Jeans",
		Tags:        []string{"casual", "everyday", "slim"},
		Colors:      []string{"black"},
		Materials:   []string{"denim", "elastane"},
		Sizes:       []string{"24", "26", "28", "30", "32"},
		Price:       54.99,
		Stock:       96,
		Rating:      4.2,
		ReviewCount: 310,
		SalesCount:  1820,
	},
	{
		Name:        "Khaki Chino Trousers",
		Description: "Tapered chinos in garment-dyed twill with a flat front.",
		Category:    "Pants",
		Subcategory: "Chinos",
		Tags:        []string{"office", "smart casual", "spring"},
		Colors:      []string{"khaki", "beige"},
		Materials:   []string{"cotton"},
		Sizes:       []string{"28", "30", "32", "34", "36"},
		Price:       45.00,
		Stock:       120,
		Rating:      4.3,
		ReviewCount: 204,
		SalesCount:  980,
	},
	{
		Name:        "Grey Jogger Sweatpants",
		Description: "Fleece-lined joggers with elastic cuffs and drawstring waist.",
		Category:    "Pants",
		Subcategory: "Loungewear",
		Tags:        []string{"athleisure", "cozy", "gym"},
		Colors:      []string{"grey"},
		Materials:   []string{"cotton", "polyester"},
		Sizes:       []string{"S", "M", "L", "XL"},
		Price:       34.99,
		Stock:       150,
		Rating:      4.6,
		ReviewCount: 421,
		SalesCount:  2350,
	},
	{
		Name:        "Floral Summer Midi Dress",
		Description: "Flowing midi dress with a floral print, tie waist, and flutter sleeves.",
		Category:    "Dresses",
		Subcategory: "Casual Dresses",
		Tags:        []string{"summer", "vacation", "floral"},
		Colors:      []string{"yellow", "pink"},
		Materials:   []string{"viscose"},
		Sizes:       []string{"XS", "S", "M", "L"},
		Price:       72.00,
		Stock:       44,
		Rating:      4.5,
		ReviewCount: 158,
		SalesCount:  690,
	},
	{
		Name:        "Black Evening Slip Dress",
		Description: "Bias-cut satin slip dress with adjustable straps and a cowl neckline.",
		Category:    "Dresses",
		Subcategory: "Evening",
		Tags:        []string{"evening", "elegant", "party"},
		Colors:      []string{"black"},
		Materials:   []string{"satin", "polyester"},
		Sizes:       []string{"XS", "S", "M", "L"},
		Price:       98.00,
		Stock:       22,
		Rating:      4.7,
		ReviewCount: 74,
		SalesCount:  280,
	},
	{
		Name:        "Denim Shirt Dress",
		Description: "Mid-length chambray shirt dress with belt and roll-tab sleeves.",
		Category:    "Dresses",
		Subcategory: "Casual Dresses",
		Tags:        []string{"casual", "spring", "versatile"},
		Colors:      []string{"blue"},
		Materials:   []string{"denim", "cotton"},
		Sizes:       []string{"S", "M", "L", "XL"},
		Price:       64.50,
		Stock:       38,
		Rating:      4.3,
		ReviewCount: 92,
		SalesCount:  344,
	},
	{
		Name:        "Black Leather Ankle Boots",
		Description: "Block-heel ankle boots in full-grain leather with inside zip.",
		Category:    "Shoes",
		Subcategory: "Boots",
		Tags:        []string{"autumn", "office", "versatile"},
		Colors:      []string{"black"},
		Materials:   []string{"leather"},
		Sizes:       []string{"36", "37", "38", "39", "40", "41"},
		Price:       129.00,
		Stock:       31,
		Rating:      4.6,
		ReviewCount: 167,
		SalesCount:  720,
	},
	{
		Name:        "White Canvas Sneakers",
		Description: "Low-top canvas sneakers with vulcanized rubber sole.",
		Category:    "Shoes",
		Subcategory: "Sneakers",
		Tags:        []string{"casual", "summer", "basic"},
		Colors:      []string{"white"},
		Materials:   []string{"canvas", "rubber"},
		Sizes:       []string{"36", "38", "40", "42", "44"},
		Price:       44.99,
		Stock:       175,
		Rating:      4.4,
		ReviewCount: 498,
		SalesCount:  3150,
	},
	{
		Name:        "Brown Suede Chelsea Boots",
		Description: "Classic chelsea boots in brushed suede with elastic side panels.",
		Category:    "Shoes",
		Subcategory: "Boots",
		Tags:        []string{"smart casual", "autumn", "heritage"},
		Colors:      []string{"brown"},
		Materials:   []string{"suede", "leather"},
		Sizes:       []string{"40", "41", "42", "43", "44", "45"},
		Price:       155.00,
		Stock:       26,
		Rating:      4.7,
		ReviewCount: 113,
		SalesCount:  460,
	},
	{
		Name:        "Trail Running Shoes",
		Description: "Lightweight trail runners with aggressive lug outsole and rock plate.",
		Category:    "Shoes",
		Subcategory: "Athletic",
		Tags:        []string{"running", "outdoor", "hiking"},
		Colors:      []string{"orange", "grey"},
		Materials:   []string{"mesh", "rubber"},
		Sizes:       []string{"40", "41", "42", "43", "44", "45", "46"},
		Price:       119.95,
		Stock:       58,
		Rating:      4.5,
		ReviewCount: 287,
		SalesCount:  1240,
	},
	{
		Name:        "Brown Leather Belt",
		Description: "Full-grain leather belt with brushed brass buckle.",
		Category:    "Accessories",
		Subcategory: "Belts",
		Tags:        []string{"classic", "office", "gift"},
		Colors:      []string{"brown"},
		Materials:   []string{"leather"},
		Sizes:       []string{"S", "M", "L"},
		Price:       32.00,
		Stock:       140,
		Rating:      4.6,
		ReviewCount: 312,
		SalesCount:  1540,
	},
	{
		Name:        "Grey Wool Beanie",
		Description: "Ribbed merino wool beanie with fold-over cuff.",
		Category:    "Accessories",
		Subcategory: "Hats",
		Tags:        []string{"winter", "cozy", "basic"},
		Colors:      []string{"grey"},
		Materials:   []string{"wool"},
		Sizes:       []string{"ONE"},
		Price:       24.99,
		Stock:       96,
		Rating:      4.7,
		ReviewCount: 188,
		SalesCount:  970,
	},
	{
		Name:        "Silk Paisley Scarf",
		Description: "Hand-rolled square silk scarf with paisley print.",
		Category:    "Accessories",
		Subcategory: "Scarves",
		Tags:        []string{"elegant", "gift", "spring"},
		Colors:      []string{"purple", "gold"},
		Materials:   []string{"silk"},
		Sizes:       []string{"ONE"},
		Price:       58.00,
		Stock:       41,
		Rating:      4.8,
		ReviewCount: 67,
		SalesCount:  230,
	},
	{
		Name:        "Canvas Weekender Bag",
		Description: "Water-resistant waxed canvas duffel with leather handles and shoulder strap.",
		Category:    "Bags",
		Subcategory: "Travel",
		Tags:        []string{"travel", "weekend", "durable"},
		Colors:      []string{"olive", "brown"},
		Materials:   []string{"canvas", "leather"},
		Sizes:       []string{"ONE"},
		Price:       145.00,
		Stock:       19,
		Rating:      4.6,
		ReviewCount: 84,
		SalesCount:  310,
	},
	{
		Name:        "Black Nylon Backpack",
		Description: "Commuter backpack with padded laptop sleeve and water bottle pockets.",
		Category:    "Bags",
		Subcategory: "Backpacks",
		Tags:        []string{"commute", "work", "everyday"},
		Colors:      []string{"black"},
		Materials:   []string{"nylon"},
		Sizes:       []string{"ONE"},
		Price:       89.00,
		Stock:       67,
		Rating:      4.5,
		ReviewCount: 256,
		SalesCount:  1130,
	},
	{
		Name:        "Quilted Crossbody Bag",
		Description: "Compact quilted crossbody with chain strap and magnetic flap closure.",
		Category:    "Bags",
		Subcategory: "Handbags",
		Tags:        []string{"evening", "elegant", "gift"},
		Colors:      []string{"black", "gold"},
		Materials:   []string{"leather"},
		Sizes:       []string{"ONE"},
		Price:       112.00,
		Stock:       28,
		Rating:      4.4,
		ReviewCount: 91,
		SalesCount:  385,
	},
	{
		Name:        "Striped Linen Shirt",
		Description: "Relaxed linen shirt with vertical stripes and camp collar.",
		Category:    "Shirts",
		Subcategory: "Casual Shirts",
		Tags:        []string{"summer", "vacation", "breathable"},
		Colors:      []string{"blue", "white"},
		Materials:   []string{"linen"},
		Sizes:       []string{"S", "M", "L", "XL"},
		Price:       55.00,
		Stock:       52,
		Rating:      4.3,
		ReviewCount: 78,
		SalesCount:  295,
	},
	{
		Name:        "High-Waisted Yoga Leggings",
		Description: "Four-way stretch leggings with hidden waistband pocket.",
		Category:    "Activewear",
		Subcategory: "Leggings",
		Tags:        []string{"gym", "yoga", "athleisure"},
		Colors:      []string{"black", "navy"},
		Materials:   []string{"polyester", "elastane"},
		Sizes:       []string{"XS", "S", "M", "L", "XL"},
		Price:       48.00,
		Stock:       134,
		Rating:      4.7,
		ReviewCount: 602,
		SalesCount:  3400,
	},
	{
		Name:        "Performance Running Shorts",
		Description: "Lightweight split-hem running shorts with built-in liner.",
		Category:    "Activewear",
		Subcategory: "Shorts",
		Tags:        []string{"running", "gym", "summer"},
		Colors:      []string{"blue", "black"},
		Materials:   []string{"polyester"},
		Sizes:       []string{"S", "M", "L", "XL"},
		Price:       29.99,
		Stock:       108,
		Rating:      4.4,
		ReviewCount: 245,
		SalesCount:  1460,
	},
	{
		Name:        "Puffer Vest",
		Description: "Quilted down-alternative vest with stand collar and zip pockets.",
		Category:    "Jackets",
		Subcategory: "Vests",
		Tags:        []string{"autumn", "layering", "outdoor"},
		Colors:      []string{"navy"},
		Materials:   []string{"nylon", "polyester"},
		Sizes:       []string{"S", "M", "L", "XL"},
		Price:       69.00,
		Stock:       47,
		Rating:      4.2,
		ReviewCount: 103,
		SalesCount:  420,
	},
	{
		Name:        "Linen Wide-Leg Trousers",
		Description: "Breezy wide-leg trousers in washed linen with elastic back waist.",
		Category:    "Pants",
		Subcategory: "Linen",
		Tags:        []string{"summer", "vacation", "breathable"},
		Colors:      []string{"white", "beige"},
		Materials:   []string{"linen"},
		Sizes:       []string{"XS", "S", "M", "L"},
		Price:       62.00,
		Stock:       39,
		Rating:      4.5,
		ReviewCount: 86,
		SalesCount:  330,
	},
	{
		Name:        "Wool Overcoat",
		Description: "Tailored single-breasted overcoat in a wool-cashmere blend.",
		Category:    "Jackets",
		Subcategory: "Coats",
		Tags:        []string{"winter", "formal", "office"},
		Colors:      []string{"charcoal", "grey"},
		Materials:   []string{"wool", "cashmere"},
		Sizes:       []string{"S", "M", "L", "XL"},
		Price:       295.00,
		Stock:       12,
		Rating:      4.8,
		ReviewCount: 54,
		SalesCount:  160,
	},
	{
		Name:        "Polarized Aviator Sunglasses",
		Description: "Metal-frame aviators with polarized lenses and spring hinges.",
		Category:    "Accessories",
		Subcategory: "Eyewear",
		Tags:        []string{"summer", "travel", "classic"},
		Colors:      []string{"gold", "green"},
		Materials:   []string{"metal", "glass"},
		Sizes:       []string{"ONE"},
		Price:       85.00,
		Stock:       55,
		Rating:      4.5,
		ReviewCount: 147,
		SalesCount:  640,
	},
}

var seedFileName = flag.String("src", "", "JSON file of seed products")

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

// productsFromFile returns an iterator over products decoded from a JSON
// array file.
func productsFromFile(filename string) (iter.Seq[*core.Product], error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var products []*core.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, err
	}

	return productsFromSlice(products), nil
}

// productsFromSlice returns an iterator over a slice of products.
func productsFromSlice(products []*core.Product) iter.Seq[*core.Product] {
	return func(yield func(*core.Product) bool) {
		for _, product := range products {
			if !yield(product) {
				return
			}
		}
	}
}

// seedBatched reads from a source iterator and adds products in batches.
func seedBatched(ctx context.Context, engine *shopsense.Engine, source iter.Seq[*core.Product], batchSize int) error {
	batch := make([]*core.Product, 0, batchSize)

	for product := range source {
		batch = append(batch, product)
		if len(batch) == batchSize {
			if _, err := engine.AddProducts(ctx, batch...); err != nil {
				return err
			}
			batch = batch[:0]
		}
	}

	// Process any remaining products
	if len(batch) > 0 {
		if _, err := engine.AddProducts(ctx, batch...); err != nil {
			return err
		}
	}

	return nil
}

func main() {
	engine, err := shopsense.NewEngine("./catalog_db")
	if err != nil {
		panic(err)
	}
	defer engine.Close()

	ctx := context.Background()

	// Determine source of seed data
	var source iter.Seq[*core.Product]
	if seedFileName != nil && *seedFileName != "" {
		source, err = productsFromFile(*seedFileName)
		if err != nil {
			panic(err)
		}
	} else {
		source = productsFromSlice(catalog)
	}

	// Seed in batches of 10
	if err := seedBatched(ctx, engine, source, 10); err != nil {
		panic(err)
	}
}
