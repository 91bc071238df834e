package entity

// Category tags events and notices for filtered display.
// Name is unique at the store layer.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
