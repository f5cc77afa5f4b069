package model

import (
	"strings"
	"time"
)

const DefaultPublisher = "No Publisher"

type Book struct {
	ID        int    `json:"id" db:"id"`
	Title     string `json:"titulo" db:"titulo"`
	Author    string `json:"autor" db:"autor"`
	Category  string `json:"categoria" db:"categoria"`
	Year      int    `json:"ano" db:"ano"`
	Publisher string `json:"editora" db:"editora"`
	Active    bool   `json:"ativo" db:"ativo"`
}

// BookRequest is the create/update form. Year arrives as text and is parsed by the service.
type BookRequest struct {
	Title     string `form:"titulo" validate:"required,max=200"`
	Author    string `form:"autor" validate:"required,max=200"`
	Category  string `form:"categoria" validate:"required,max=100"`
	Year      string `form:"ano" validate:"required"`
	Publisher string `form:"editora" validate:"max=200"`
}

// Normalize trims surrounding spaces so that blank input fails required checks.
func (r *BookRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Author = strings.TrimSpace(r.Author)
	r.Category = strings.TrimSpace(r.Category)
	r.Year = strings.TrimSpace(r.Year)
	r.Publisher = strings.TrimSpace(r.Publisher)
}

type User struct {
	ID           int    `json:"id" db:"id"`
	Username     string `json:"username" db:"username"`
	PasswordHash string `json:"-" db:"password"`
	FirstName    string `json:"firstName" db:"first_name"`
	LastName     string `json:"lastName" db:"last_name"`
	Role         string `json:"role" db:"role"`
	IsAdmin      bool   `json:"isAdmin" db:"is_admin"`
}

type UserCreateRequest struct {
	Username  string `form:"username" validate:"required,max=150"`
	Password  string `form:"password" validate:"required,min=6,max=72"`
	FirstName string `form:"first_name" validate:"max=150"`
	LastName  string `form:"last_name" validate:"max=150"`
	Role      string `form:"role" validate:"max=50"`
	IsAdmin   string `form:"is_admin"`
}

// Normalize trims every field except the password, which is taken as typed.
func (r *UserCreateRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Role = strings.TrimSpace(r.Role)
	r.IsAdmin = strings.TrimSpace(r.IsAdmin)
}

// Admin reports whether the is_admin field was ticked.
func (r UserCreateRequest) Admin() bool {
	switch strings.ToLower(strings.TrimSpace(r.IsAdmin)) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}

type LoginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
	Next     string `form:"next" query:"next"`
}

type Author struct {
	ID        int     `json:"id" db:"id"`
	Name      string  `json:"nome" db:"nome"`
	Biography *string `json:"biografia,omitempty" db:"biografia"`
}

type AuthorRequest struct {
	Name      string `form:"nome" validate:"required,max=200"`
	Biography string `form:"biografia"`
}

func (r *AuthorRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Biography = strings.TrimSpace(r.Biography)
}

type Reservation struct {
	ID         int       `json:"id" db:"id"`
	UserID     int       `json:"userId" db:"user_id"`
	BookID     int       `json:"bookId" db:"book_id"`
	ReservedAt time.Time `json:"reservedAt" db:"reserved_at"`
}

// UserReservation is a reservation joined to the reserved book.
type UserReservation struct {
	Reservation `json:",inline"`
	BookTitle   string `json:"titulo" db:"titulo"`
	BookAuthor  string `json:"autor" db:"autor"`
}

type GroupCount struct {
	Key   string `json:"key" db:"group_key"`
	Count int    `json:"count" db:"count"`
}

type Dashboard struct {
	TotalBooks        int          `json:"totalBooks"`
	TotalUsers        int          `json:"totalUsers"`
	TotalReservations int          `json:"totalReservations"`
	BooksByAuthor     []GroupCount `json:"booksByAuthor"`
	BooksByYear       []GroupCount `json:"booksByYear"`
	BooksByPublisher  []GroupCount `json:"booksByPublisher"`
}
