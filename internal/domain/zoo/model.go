package zoo

import (
	"strings"
	"time"
)

// Category define los tipos de animal que el zoo presta.
// @Enum fish, cat, dog, rabbit, parrot
//
// El zero value ("") no es una categoría válida: no existe un valor "None".
type Category string

const (
	CategoryFish   Category = "fish"
	CategoryCat    Category = "cat"
	CategoryDog    Category = "dog"
	CategoryRabbit Category = "rabbit"
	CategoryParrot Category = "parrot"
)

// Categories lista las categorías válidas en orden estable.
var Categories = []Category{
	CategoryFish,
	CategoryCat,
	CategoryDog,
	CategoryRabbit,
	CategoryParrot,
}

func (c Category) Valid() bool {
	switch c {
	case CategoryFish, CategoryCat, CategoryDog, CategoryRabbit, CategoryParrot:
		return true
	default:
		return false
	}
}

// ParseCategory normaliza y valida el nombre de una categoría.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

// Gender define el género declarado por quien pide prestado.
// @Enum male, female
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

func ParseGender(s string) (Gender, error) {
	g := Gender(strings.ToLower(strings.TrimSpace(s)))
	if !g.Valid() {
		return "", ErrInvalidGender
	}
	return g, nil
}

// Loan es el préstamo activo de un holder. Solo existe mientras no se devuelva.
type Loan struct {
	ID     string
	Holder string

	Category Category
	Age      uint32
	Gender   Gender

	BorrowedAt time.Time
}

// CategoryCount es una fila del inventario.
type CategoryCount struct {
	Category Category
	Count    uint64
}

type NotificationType string

const (
	NotificationAdded    NotificationType = "ADDED"
	NotificationBorrowed NotificationType = "BORROWED"
	NotificationReturned NotificationType = "RETURNED"
)

// Notification se emite después de cada operación confirmada.
// Count solo aplica a ADDED; Holder vale "" para ADDED.
type Notification struct {
	Type       NotificationType
	Category   Category
	Count      uint64
	Holder     string
	OccurredAt time.Time
}
