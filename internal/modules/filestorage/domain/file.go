package domain

import "errors"

// File describes a stored object
type File struct {
	Key         string
	URL         string
	ContentType string
	Size        int64
}

// ImageVariant is a target shape for an uploaded profile image.
type ImageVariant struct {
	Folder string
	Width  int
	Height int
}

var (
	AvatarVariant = ImageVariant{Folder: "avatars", Width: 400, Height: 400}
	CoverVariant  = ImageVariant{Folder: "covers", Width: 1200, Height: 400}
)

var ErrUnsupportedImage = errors.New("unsupported image format")
