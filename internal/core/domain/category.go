package domain

type Category struct {
	ID   uint64
	Name string
}
