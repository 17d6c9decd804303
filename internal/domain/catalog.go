package domain

import "time"

// Category описывает категорию позиции меню. Набор категорий закрыт
// и соответствует разделам меню ресторана.
type Category string

const (
	// CategoryAll — служебное значение фильтра, совпадает с любой категорией.
	CategoryAll Category = "Todos"
	// CategoryGrill — блюда с гриля.
	CategoryGrill Category = "Parrillas"
	// CategoryDrinks — напитки.
	CategoryDrinks Category = "Bebidas"
	// CategoryDesserts — десерты.
	CategoryDesserts Category = "Postres"
)

// Valid проверяет, что категория входит в поддерживаемый набор.
// CategoryAll — валидное значение фильтра, но не валидная категория позиции.
func (c Category) Valid() bool {
	switch c {
	case CategoryGrill, CategoryDrinks, CategoryDesserts:
		return true
	default:
		return false
	}
}

// CatalogItem представляет одну позицию меню, полученную из каталога.
// Значение неизменяемо на протяжении жизни снапшота каталога: следующая
// успешная загрузка заменяет все позиции целиком.
type CatalogItem struct {
	// ID — непрозрачный стабильный идентификатор позиции.
	ID string
	// Title — отображаемое название блюда.
	Title string
	// Description — описание для карточки меню.
	Description string
	// PriceMinor — цена за единицу в минимальных денежных единицах (сентимо).
	PriceMinor int64
	// Category — категория позиции из закрытого набора.
	Category Category
	// ImageURL — необязательная ссылка на изображение.
	ImageURL string
	// Available — доступна ли позиция для заказа.
	Available bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateInvariants проверяет базовые инварианты позиции каталога.
func (i *CatalogItem) ValidateInvariants() []error {
	var errs []error

	if i.ID == "" {
		errs = append(errs, ErrItemIDRequired)
	}
	if i.Title == "" {
		errs = append(errs, ErrItemTitleRequired)
	}
	if i.PriceMinor < 0 {
		errs = append(errs, ErrItemPriceInvalid)
	}
	if !i.Category.Valid() {
		errs = append(errs, ErrItemCategoryInvalid)
	}

	return errs
}
