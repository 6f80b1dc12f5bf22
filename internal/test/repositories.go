package test

import (
	"context"
	"sort"

	domainErrors "github.com/kiralago/storefront/internal/domain/errors"
	"github.com/kiralago/storefront/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	ByUsername map[string]*model.User
	ByEmail    map[string]*model.User
	ByID       map[int64]*model.User
	Next       int64
	Err        error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		ByUsername: make(map[string]*model.User),
		ByEmail:    make(map[string]*model.User),
		ByID:       make(map[int64]*model.User),
		Next:       1,
	}
}

// Create registers user unless username or email is taken.
func (s *UserRepositoryStub) Create(ctx context.Context, username, email, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.ByUsername[username]; exists {
		return nil, domainErrors.ErrDuplicateUsername
	}
	if _, exists := s.ByEmail[email]; exists {
		return nil, domainErrors.ErrDuplicateEmail
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Username: username, Email: email, PasswordHash: passwordHash}
	s.Next++
	s.ByUsername[username] = user
	s.ByEmail[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByUsername fetches user by username or returns not found.
func (s *UserRepositoryStub) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByUsername[username]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByEmail[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// UpdateProfile overwrites email, address and phone of a stored user.
func (s *UserRepositoryStub) UpdateProfile(ctx context.Context, id int64, email, address, phone string) error {
	if s.Err != nil {
		return s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.ByEmail, user.Email)
	user.Email = email
	user.Address = address
	user.Phone = phone
	s.ByEmail[email] = user
	return nil
}

// UpdatePassword replaces the stored credential hash.
func (s *UserRepositoryStub) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	if s.Err != nil {
		return s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	user.PasswordHash = passwordHash
	return nil
}

// UpdatePicture replaces the stored picture filename.
func (s *UserRepositoryStub) UpdatePicture(ctx context.Context, id int64, filename string) error {
	if s.Err != nil {
		return s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	user.ProfilePic = filename
	return nil
}

// ListPictureFilenames returns every non-empty stored picture name.
func (s *UserRepositoryStub) ListPictureFilenames(ctx context.Context) ([]string, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var names []string
	for _, user := range s.ByID {
		if user.ProfilePic != "" {
			names = append(names, user.ProfilePic)
		}
	}
	sort.Strings(names)
	return names, nil
}

// ProductRepositoryStub serves a fixed catalog slice.
type ProductRepositoryStub struct {
	Products []model.Product
	Err      error
}

// GetByID returns the matching product or not found.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, p := range s.Products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns the whole configured catalog.
func (s *ProductRepositoryStub) List(ctx context.Context) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Products, nil
}

// ListNewest returns up to limit products from the end of the slice.
func (s *ProductRepositoryStub) ListNewest(ctx context.Context, limit int) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if len(s.Products) <= limit {
		return s.Products, nil
	}
	return s.Products[len(s.Products)-limit:], nil
}

// ListFirst returns up to limit products from the start of the slice.
func (s *ProductRepositoryStub) ListFirst(ctx context.Context, limit int) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if len(s.Products) <= limit {
		return s.Products, nil
	}
	return s.Products[:limit], nil
}

// CartRepositoryStub keeps cart lines in-memory with upsert semantics
// matching the real store.
type CartRepositoryStub struct {
	Lines    []*model.CartLine
	Products *ProductRepositoryStub
	Next     int64
	Err      error
}

// NewCartRepositoryStub constructs the stub bound to a product catalog.
func NewCartRepositoryStub(products *ProductRepositoryStub) *CartRepositoryStub {
	return &CartRepositoryStub{Products: products, Next: 1}
}

// AddItem increments an existing line or inserts a new one with quantity 1.
func (s *CartRepositoryStub) AddItem(ctx context.Context, userID, productID int64) (*model.CartLine, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, line := range s.Lines {
		if line.UserID == userID && line.ProductID == productID {
			line.Quantity++
			return line, nil
		}
	}
	if s.Next == 0 {
		s.Next = 1
	}
	line := &model.CartLine{ID: s.Next, UserID: userID, ProductID: productID, Quantity: 1}
	s.Next++
	s.Lines = append(s.Lines, line)
	return line, nil
}

// Remove deletes the line only when owned by the user.
func (s *CartRepositoryStub) Remove(ctx context.Context, userID, lineID int64) error {
	if s.Err != nil {
		return s.Err
	}
	for i, line := range s.Lines {
		if line.ID == lineID && line.UserID == userID {
			s.Lines = append(s.Lines[:i], s.Lines[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrCartLineNotFound
}

// Clear removes every line of the user.
func (s *CartRepositoryStub) Clear(ctx context.Context, userID int64) error {
	if s.Err != nil {
		return s.Err
	}
	kept := s.Lines[:0]
	for _, line := range s.Lines {
		if line.UserID != userID {
			kept = append(kept, line)
		}
	}
	s.Lines = kept
	return nil
}

// ItemsWithProducts joins lines with the configured catalog.
func (s *CartRepositoryStub) ItemsWithProducts(ctx context.Context, userID int64) ([]model.CartItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var items []model.CartItem
	for _, line := range s.Lines {
		if line.UserID != userID {
			continue
		}
		product, err := s.Products.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		items = append(items, model.CartItem{
			LineID:    line.ID,
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			ImageURL:  product.ImageURL,
			Quantity:  line.Quantity,
		})
	}
	return items, nil
}

// CheckoutClear returns the joined items and empties the user's cart.
func (s *CartRepositoryStub) CheckoutClear(ctx context.Context, userID int64) ([]model.CartItem, error) {
	items, err := s.ItemsWithProducts(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.Clear(ctx, userID); err != nil {
		return nil, err
	}
	return items, nil
}
