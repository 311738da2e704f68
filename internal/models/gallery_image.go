package models

type GalleryImage struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Alt      string `json:"alt"`
	Category string `json:"category"`
}
