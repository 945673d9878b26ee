package entity

// Book is a single catalog record. ID is assigned by the store on create
// and never reused, even after the record is deleted.
type Book struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Price       float64  `json:"price"`
	Cover       string   `json:"cover"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
}
