package media

import (
	"context"
	"io"

	"github.com/google/uuid"
)

type Uploader interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// PetImages turns uploaded pet pictures into stored WebP files.
type PetImages struct {
	uploader Uploader
	maxSide  int
}

func NewPetImages(uploader Uploader, maxSide int) *PetImages {
	if maxSide <= 0 {
		maxSide = DefaultMaxSide
	}
	return &PetImages{uploader: uploader, maxSide: maxSide}
}

// Save converts the image and returns its public URL.
func (p *PetImages) Save(ctx context.Context, r io.Reader) (string, error) {
	data, err := ToWebP(r, p.maxSide)
	if err != nil {
		return "", err
	}

	key := "pets/" + uuid.NewString() + ".webp"
	return p.uploader.Upload(ctx, key, data, "image/webp")
}

// Compile-time check
var _ Uploader = (*S3Uploader)(nil)
