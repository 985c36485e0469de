package models

// Banner is a promotional image shown on the landing page.
// Banners are displayed in ascending Position order; positions are not unique.
type Banner struct {
	ID       int64  `json:"id"`
	ImageURL string `json:"imageUrl"`
	Alt      string `json:"alt"`
	Position int    `json:"position"`
}
