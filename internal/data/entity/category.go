package entity

type Category struct {
	ID          string
	Name        string
	Icon        string
	Description string
}
