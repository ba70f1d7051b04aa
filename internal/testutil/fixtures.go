package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/javi102/league-companion/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	username string
	email    string
	password string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	name := fmt.Sprintf("testuser_%s", uuid.New().String()[:8])
	return &UserBuilder{
		username: name,
		email:    name + "@example.com",
		password: "testpassword123",
	}
}

// WithUsername sets the username
func (b *UserBuilder) WithUsername(username string) *UserBuilder {
	b.username = username
	return b
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		Username:     b.username,
		Email:        b.email,
		PasswordHash: string(hashed),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// ChampionBuilder creates test champions, optionally with a stats row
type ChampionBuilder struct {
	name  string
	title string
	role  string
	stats *domain.ChampionStats
}

// NewChampionBuilder creates a new ChampionBuilder with default values
func NewChampionBuilder() *ChampionBuilder {
	return &ChampionBuilder{
		name:  fmt.Sprintf("Champion_%s", uuid.New().String()[:8]),
		title: "the Test Subject",
		role:  "Fighter",
	}
}

// WithName sets the champion name
func (b *ChampionBuilder) WithName(name string) *ChampionBuilder {
	b.name = name
	return b
}

// WithTitle sets the champion title
func (b *ChampionBuilder) WithTitle(title string) *ChampionBuilder {
	b.title = title
	return b
}

// WithRole sets the champion role
func (b *ChampionBuilder) WithRole(role string) *ChampionBuilder {
	b.role = role
	return b
}

// WithStats attaches a base-stats row
func (b *ChampionBuilder) WithStats(health, armor, attackDamage, speed float64) *ChampionBuilder {
	b.stats = &domain.ChampionStats{
		Health:       &health,
		Armor:        &armor,
		AttackDamage: &attackDamage,
		Speed:        &speed,
	}
	return b
}

// Build creates the champion (and its stats row, if any) in the database
func (b *ChampionBuilder) Build(t *testing.T, db *gorm.DB) *domain.Champion {
	t.Helper()

	champion := &domain.Champion{
		Name:         b.name,
		Title:        b.title,
		Role:         &b.role,
		Tags:         b.role,
		LastSyncedAt: time.Now(),
	}
	if err := db.Create(champion).Error; err != nil {
		t.Fatalf("failed to create champion: %v", err)
	}

	if b.stats != nil {
		b.stats.ChampionID = champion.ID
		if err := db.Create(b.stats).Error; err != nil {
			t.Fatalf("failed to create champion stats: %v", err)
		}
	}

	return champion
}

// ItemBuilder creates test items
type ItemBuilder struct {
	name  string
	price int
	image string
}

// NewItemBuilder creates a new ItemBuilder with default values
func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		name:  fmt.Sprintf("Item_%s", uuid.New().String()[:8]),
		price: 1000,
		image: "https://example.com/item.png",
	}
}

// WithName sets the item name
func (b *ItemBuilder) WithName(name string) *ItemBuilder {
	b.name = name
	return b
}

// WithPrice sets the item price
func (b *ItemBuilder) WithPrice(price int) *ItemBuilder {
	b.price = price
	return b
}

// Build creates the item in the database
func (b *ItemBuilder) Build(t *testing.T, db *gorm.DB) *domain.Item {
	t.Helper()

	item := &domain.Item{
		Name:     b.name,
		Price:    b.price,
		ImageURL: &b.image,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create item: %v", err)
	}
	return item
}
