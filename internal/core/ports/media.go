package ports

import "io"

// ImageStore persists uploaded project images and resolves stored URLs back
// to local files. The base URL is passed explicitly so the store never reads
// request state.
type ImageStore interface {
	Save(filename string, size int64, content io.Reader, baseURL string) (string, error)
	Remove(imageURL string) error
}
