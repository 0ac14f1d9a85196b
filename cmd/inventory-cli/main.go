package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/iyhunko/inventory-tracker/internal/config"
	"github.com/iyhunko/inventory-tracker/internal/inventory"
	"github.com/iyhunko/inventory-tracker/internal/logger"
	"github.com/iyhunko/inventory-tracker/internal/model"
	"github.com/iyhunko/inventory-tracker/internal/store"
	"github.com/shopspring/decimal"
)

func main() {
	conf, err := config.LoadFromEnv()
	handleErr("loading config", err)

	logger.Init(os.Stderr, conf.DebugMode)

	c := &cli{
		in:          bufio.NewScanner(os.Stdin),
		inv:         inventory.New(),
		defaultPath: conf.Inventory.FilePath,
	}
	c.run()
}

func handleErr(msg string, err error) {
	if err != nil {
		log.Fatalf("error while %s: %v", msg, err)
	}
}

// cli is a thin prompting layer over the inventory core. All error kinds
// raised by the core are caught and printed here; nothing is retried.
type cli struct {
	in          *bufio.Scanner
	inv         *inventory.Inventory
	defaultPath string
}

func (c *cli) run() {
	for {
		fmt.Println("\nMain Menu:")
		fmt.Println("1. Add Product")
		fmt.Println("2. Remove Product")
		fmt.Println("3. Search Products")
		fmt.Println("4. List All Products")
		fmt.Println("5. Sell Product")
		fmt.Println("6. Restock Product")
		fmt.Println("7. Remove Expired Products")
		fmt.Println("8. Save Inventory")
		fmt.Println("9. Load Inventory")
		fmt.Println("10. Show Total Inventory Value")
		fmt.Println("0. Exit")

		switch c.prompt("\nEnter your choice (0-10): ") {
		case "0":
			return
		case "1":
			c.addProduct()
		case "2":
			c.removeProduct()
		case "3":
			c.searchProducts()
		case "4":
			c.listProducts()
		case "5":
			c.sellProduct()
		case "6":
			c.restockProduct()
		case "7":
			c.removeExpired()
		case "8":
			c.saveInventory()
		case "9":
			c.loadInventory()
		case "10":
			fmt.Printf("\nTotal inventory value: $%s\n", c.inv.TotalValue().StringFixed(2))
		default:
			fmt.Println("\nInvalid choice. Please try again.")
		}
	}
}

func (c *cli) prompt(label string) string {
	fmt.Print(label)
	if !c.in.Scan() {
		return "0"
	}
	return strings.TrimSpace(c.in.Text())
}

func (c *cli) promptInt(label string) (int, error) {
	n, err := strconv.Atoi(c.prompt(label))
	if err != nil {
		return 0, fmt.Errorf("invalid number: %w", err)
	}
	return n, nil
}

func (c *cli) promptCategory() (model.Category, bool) {
	for {
		fmt.Println("\nSelect product type:")
		for i, cat := range model.Categories() {
			fmt.Printf("%d. %s\n", i+1, cat)
		}
		fmt.Println("0. Back to main menu")

		switch c.prompt("\nEnter your choice (0-3): ") {
		case "0":
			return "", false
		case "1":
			return model.CategoryElectronics, true
		case "2":
			return model.CategoryGrocery, true
		case "3":
			return model.CategoryClothing, true
		default:
			fmt.Println("Invalid choice. Please try again.")
		}
	}
}

func (c *cli) addProduct() {
	category, ok := c.promptCategory()
	if !ok {
		return
	}

	fmt.Println("\nEnter product details:")
	id := c.prompt("Product ID (leave blank to generate): ")
	if id == "" {
		id = uuid.NewString()
		fmt.Printf("Generated ID: %s\n", id)
	}
	name := c.prompt("Name: ")
	price, err := decimal.NewFromString(c.prompt("Price: "))
	if err != nil {
		fmt.Printf("\nError: invalid price - %v\n", err)
		return
	}
	quantity, err := c.promptInt("Quantity in stock: ")
	if err != nil {
		fmt.Printf("\nError: %v\n", err)
		return
	}

	var product model.Product
	switch category {
	case model.CategoryElectronics:
		warranty, err := c.promptInt("Warranty (months): ")
		if err != nil {
			fmt.Printf("\nError: %v\n", err)
			return
		}
		brand := c.prompt("Brand: ")
		product, err = model.NewElectronics(id, name, price, quantity, warranty, brand)
		if err != nil {
			fmt.Printf("\nError: %v\n", err)
			return
		}
	case model.CategoryGrocery:
		expiry := c.prompt("Expiry date (YYYY-MM-DD): ")
		unit := c.prompt("Unit of measure: ")
		product, err = model.NewGrocery(id, name, price, quantity, expiry, unit)
		if err != nil {
			fmt.Printf("\nError: %v\n", err)
			return
		}
	case model.CategoryClothing:
		size := c.prompt("Size (small/medium/large or custom): ")
		color := c.prompt("Color: ")
		product, err = model.NewClothing(id, name, price, quantity, size, color)
		if err != nil {
			fmt.Printf("\nError: %v\n", err)
			return
		}
	}

	if err := c.inv.Add(product); err != nil {
		fmt.Printf("\nError: %v\n", err)
		return
	}
	fmt.Println("\nProduct added successfully!")
}

func (c *cli) removeProduct() {
	id := c.prompt("\nEnter product ID to remove: ")
	if _, err := c.inv.Remove(id); err != nil {
		fmt.Printf("\nError: %v\n", err)
		return
	}
	fmt.Println("\nProduct removed successfully!")
}

func (c *cli) searchProducts() {
	fmt.Println("\nSearch options:")
	fmt.Println("1. Search by name")
	fmt.Println("2. Search by type")
	fmt.Println("3. Search by price range")
	fmt.Println("0. Back to main menu")

	var criteria inventory.Criteria
	switch c.prompt("\nEnter your choice (0-3): ") {
	case "0":
		return
	case "1":
		criteria.Name = c.prompt("\nEnter product name to search: ")
	case "2":
		category, ok := c.promptCategory()
		if !ok {
			return
		}
		criteria.Category = category
	case "3":
		minPrice, err := decimal.NewFromString(c.prompt("\nMinimum price: "))
		if err != nil {
			fmt.Printf("\nError: invalid price - %v\n", err)
			return
		}
		maxPrice, err := decimal.NewFromString(c.prompt("Maximum price: "))
		if err != nil {
			fmt.Printf("\nError: invalid price - %v\n", err)
			return
		}
		criteria.MinPrice = &minPrice
		criteria.MaxPrice = &maxPrice
	default:
		fmt.Println("Invalid choice.")
		return
	}

	c.printProducts(c.inv.Search(criteria))
}

func (c *cli) listProducts() {
	c.printProducts(c.inv.Products())
}

func (c *cli) printProducts(products []model.Product) {
	if len(products) == 0 {
		fmt.Println("\nNo products found.")
		return
	}
	fmt.Printf("\nFound %d products:\n", len(products))
	for _, p := range products {
		fmt.Println("\n" + strings.Repeat("=", 30))
		fmt.Println(p.Describe())
	}
}

func (c *cli) sellProduct() {
	id := c.prompt("\nEnter product ID: ")
	quantity, err := c.promptInt("Enter quantity to sell: ")
	if err != nil {
		fmt.Printf("\nError: %v\n", err)
		return
	}
	total, err := c.inv.RecordSale(id, quantity)
	if err != nil {
		fmt.Printf("\nError: %v\n", err)
		return
	}
	fmt.Printf("\nSale successful! Total: $%s\n", total.StringFixed(2))
}

func (c *cli) restockProduct() {
	id := c.prompt("\nEnter product ID: ")
	quantity, err := c.promptInt("Enter quantity to add: ")
	if err != nil {
		fmt.Printf("\nError: %v\n", err)
		return
	}
	if err := c.inv.Restock(id, quantity); err != nil {
		fmt.Printf("\nError: %v\n", err)
		return
	}
	fmt.Println("\nProduct restocked successfully!")
}

func (c *cli) removeExpired() {
	removed := c.inv.RemoveExpired(time.Now())
	if len(removed) == 0 {
		fmt.Println("\nNo expired products found.")
		return
	}
	fmt.Printf("\nRemoved %d expired products:\n", len(removed))
	for _, id := range removed {
		fmt.Printf("- %s\n", id)
	}
}

func (c *cli) promptPath() string {
	path := c.prompt(fmt.Sprintf("\nEnter file path (default: %s): ", c.defaultPath))
	if path == "" {
		return c.defaultPath
	}
	return path
}

func (c *cli) saveInventory() {
	st := store.NewStore(c.promptPath())
	if err := st.Save(c.inv); err != nil {
		fmt.Printf("\nError saving inventory: %v\n", err)
		return
	}
	fmt.Println("\nInventory saved successfully!")
}

func (c *cli) loadInventory() {
	st := store.NewStore(c.promptPath())
	loaded, err := st.Load()
	if err != nil {
		// The current inventory stays untouched on any load failure.
		fmt.Printf("\nError loading inventory: %v\n", err)
		return
	}
	c.inv = loaded
	fmt.Println("\nInventory loaded successfully!")
}
