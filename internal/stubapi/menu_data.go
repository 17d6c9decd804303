package stubapi

import "github.com/saborcriollo/ordering/internal/domain"

// sampleMenu возвращает встроенное меню ресторана для локального бэкенда.
func sampleMenu() []domain.CatalogItem {
	type row struct {
		id       string
		title    string
		desc     string
		price    int64
		category domain.Category
	}
	rows := []row{
		{"1", "Anticucho de Corazón", "Brochetas de corazón de res marinadas en ají panca, acompañadas con papas doradas y choclo.", 2590, domain.CategoryGrill},
		{"2", "Parrilla Mixta", "Selección de carnes: chorizo, morcilla, costilla de cerdo y lomo de res. Para 2 personas.", 4590, domain.CategoryGrill},
		{"3", "Lomo Saltado", "Tiras de lomo fino salteadas con cebolla, tomate y papas fritas. Acompañado con arroz.", 3290, domain.CategoryGrill},
		{"4", "Costillas BBQ", "Costillas de cerdo glaseadas con salsa barbacoa casera, acompañadas con ensalada coleslaw.", 3890, domain.CategoryGrill},
		{"5", "Pollo a la Brasa", "Medio pollo marinado con especias secretas, cocido a la brasa. Con papas fritas y ensalada.", 2890, domain.CategoryGrill},
		{"6", "Churrasco Argentino", "Jugoso bife de chorizo a la parrilla, acompañado con chimichurri y papas rústicas.", 4290, domain.CategoryGrill},
		{"7", "Chicha Morada", "Refrescante bebida tradicional peruana preparada con maíz morado, piña y especias.", 890, domain.CategoryDrinks},
		{"8", "Inca Kola", "La bebida dorada del Perú, con su sabor único y refrescante.", 690, domain.CategoryDrinks},
		{"9", "Limonada Frozen", "Limonada helada con hielo frappe, perfecta para acompañar las parrillas.", 990, domain.CategoryDrinks},
		{"10", "Cerveza Pilsen", "Cerveza peruana bien fría, ideal para maridar con carnes a la parrilla.", 1290, domain.CategoryDrinks},
		{"11", "Jugo de Maracuyá", "Jugo natural de maracuyá, dulce y aromático, preparado al momento.", 1090, domain.CategoryDrinks},
		{"12", "Suspiro Limeño", "Clásico postre peruano con manjar blanco y merengue, espolvoreado con canela.", 1490, domain.CategoryDesserts},
		{"13", "Mazamorra Morada", "Postre tradicional de maíz morado con frutas picadas y leche condensada.", 1290, domain.CategoryDesserts},
		{"14", "Tres Leches", "Esponjoso bizcocho bañado en tres tipos de leche, coronado con merengue.", 1690, domain.CategoryDesserts},
		{"15", "Picarones", "Tradicionales picarones peruanos servidos con miel de chancaca caliente.", 1390, domain.CategoryDesserts},
		{"16", "Helado de Lúcuma", "Cremoso helado artesanal de lúcuma, fruta exótica peruana de sabor único.", 1190, domain.CategoryDesserts},
	}

	items := make([]domain.CatalogItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, domain.CatalogItem{
			ID:          r.id,
			Title:       r.title,
			Description: r.desc,
			PriceMinor:  r.price,
			Category:    r.category,
			Available:   true,
		})
	}
	return items
}
