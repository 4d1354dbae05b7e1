package domain

type Client struct {
	ID    uint64
	Name  string
	Email string
}

type CreateClientInput struct {
	Name  string
	Email string
}
