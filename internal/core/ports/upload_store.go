package ports

import "io"

// UploadStore persists uploaded image assets under collision-resistant names.
type UploadStore interface {
	// Save stores src under a generated name derived from originalName and
	// returns the public retrieval path (e.g. "/uploads/<generated>").
	Save(originalName string, src io.Reader) (string, error)
	// Remove deletes the asset behind a previously returned path.
	Remove(imageURL string) error
}
