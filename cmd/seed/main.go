// Command seed wipes and re-imports the development dataset: one
// administrator, a couple of shoppers and a small catalog owned by the
// administrator. Run with -destroy to only wipe.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	storefront "github.com/shopkit/storefront"
)

type seedUser struct {
	name     string
	email    string
	password string
	isAdmin  bool
}

var seedUsers = []seedUser{
	{name: "Admin User", email: "admin@example.com", password: "admin123", isAdmin: true},
	{name: "John Doe", email: "john@example.com", password: "john123"},
	{name: "James Taylor", email: "james@example.com", password: "james123"},
}

var seedProducts = []storefront.Product{
	{Name: "Wireless Headphones", Brand: "Aural", Category: "Electronics", Price: 89.99, CountInStock: 10, Description: "Over-ear, 30h battery"},
	{Name: "Mechanical Keyboard", Brand: "Clack", Category: "Electronics", Price: 129.99, CountInStock: 7, Description: "Tenkeyless, brown switches"},
	{Name: "Espresso Grinder", Brand: "Tamp", Category: "Kitchen", Price: 249.00, CountInStock: 3, Description: "Conical burr, 40 settings"},
}

func main() {
	destroy := flag.Bool("destroy", false, "wipe data without re-importing")
	flag.Parse()

	dsn := os.Getenv("STORE_DSN")
	if dsn == "" {
		dsn = "file:storefront.db?cache=shared"
	}

	ctx := context.Background()

	db, err := storefront.OpenDB(ctx, dsn)
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	defer db.Close()

	if err := storefront.CreateSchema(ctx, db); err != nil {
		log.Fatalf("schema: %v", err)
	}

	for _, model := range []any{(*storefront.Order)(nil), (*storefront.Product)(nil), (*storefront.User)(nil)} {
		if _, err := db.NewDelete().Model(model).Where("1 = 1").Exec(ctx); err != nil {
			log.Fatalf("wipe: %v", err)
		}
	}

	if *destroy {
		log.Println("data destroyed")
		return
	}

	users := storefront.NewUsersRepository(db)
	products := storefront.NewProductsRepository(db)

	var adminID string
	for _, su := range seedUsers {
		hash, err := storefront.HashPassword(su.password)
		if err != nil {
			log.Fatalf("hash: %v", err)
		}

		created, err := users.Register(ctx, &storefront.User{
			Name:         su.name,
			Email:        su.email,
			PasswordHash: hash,
			IsAdmin:      su.isAdmin,
		})
		if err != nil {
			log.Fatalf("seed user %s: %v", su.email, err)
		}

		if su.isAdmin {
			adminID = created.ID
		}
	}

	for _, p := range seedProducts {
		p.OwnerID = adminID
		if _, err := products.Create(ctx, &p); err != nil {
			log.Fatalf("seed product %s: %v", p.Name, err)
		}
	}

	log.Printf("data imported: %d users, %d products", len(seedUsers), len(seedProducts))
}
