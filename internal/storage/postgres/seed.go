package postgres

import (
	"context"
	"fmt"
	"log/slog"
)

type seedProduct struct {
	name        string
	price       float64
	description string
	imageURL    string
}

var sampleProducts = []seedProduct{
	{"Car Rental System", 1499.99, "Professional car rental website solution", "https://img.example.com/car-rental.jpg"},
	{"Office Rental Platform", 1999.99, "Flexible office and coworking rental system", "https://img.example.com/office-rental.jpg"},
	{"Equipment Rental System", 1299.99, "Rental solution for any kind of equipment", "https://img.example.com/equipment-rental.jpg"},
	{"Vacation Home Rental", 1799.99, "Vacation home and villa rental platform", "https://img.example.com/vacation-rental.jpg"},
}

// seedCatalog inserts sample products when the catalog is empty.
func (s *Storage) seedCatalog(ctx context.Context) error {
	const existsQuery = `SELECT EXISTS (SELECT 1 FROM products)`
	var populated bool
	if err := s.pool.QueryRow(ctx, existsQuery).Scan(&populated); err != nil {
		return fmt.Errorf("check catalog: %w", err)
	}
	if populated {
		return nil
	}

	const insertQuery = `INSERT INTO products (name, price, description, image_url) VALUES ($1, $2, $3, $4)`
	for _, p := range sampleProducts {
		if _, err := s.pool.Exec(ctx, insertQuery, p.name, p.price, p.description, p.imageURL); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
	}
	s.logger.Info("seeded sample catalog", slog.Int("products", len(sampleProducts)))
	return nil
}
