package structs

// ProductRequest is a product submission after the multipart form has been
// parsed. Images holds the raw attachment bodies in the order the client
// sent them; that order becomes the display order of the stored product.
type ProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	Price       float64  `json:"price" validate:"gte=0"`
	Category    string   `json:"category" validate:"required"`
	Description string   `json:"description"`
	Images      [][]byte `json:"-" validate:"required,min=1,max=6"`
}
