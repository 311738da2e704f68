package catalog

import "github.com/styllus/barber-site/internal/models"

var gallery = []models.GalleryImage{
	{
		ID:       "1",
		URL:      "https://images.unsplash.com/photo-1605497788044-5a32c7078486?w=800&h=800&fit=crop",
		Alt:      "Corte Moderno Degradê",
		Category: "Cortes",
	},
	{
		ID:       "2",
		URL:      "https://images.unsplash.com/photo-1599351431202-1e0f0137899a?w=800&h=800&fit=crop",
		Alt:      "Barba Estilizada",
		Category: "Barbas",
	},
	{
		ID:       "3",
		URL:      "https://images.unsplash.com/photo-1503951914875-452162b0f3f1?w=800&h=800&fit=crop",
		Alt:      "Ambiente Premium",
		Category: "Ambiente",
	},
	{
		ID:       "4",
		URL:      "https://images.unsplash.com/photo-1621605815971-fbc98d665033?w=800&h=800&fit=crop",
		Alt:      "Detalhes de Precisão",
		Category: "Cortes",
	},
	{
		ID:       "5",
		URL:      "https://images.unsplash.com/photo-1585747860715-2ba37e788b70?w=800&h=800&fit=crop",
		Alt:      "Cadeira de Barbeiro Clássica",
		Category: "Ambiente",
	},
	{
		ID:       "6",
		URL:      "https://images.unsplash.com/photo-1622286342621-4bd786c2447c?w=800&h=800&fit=crop",
		Alt:      "Fade Perfeito",
		Category: "Cortes",
	},
}

func Gallery() []models.GalleryImage {
	out := make([]models.GalleryImage, len(gallery))
	copy(out, gallery)
	return out
}
