package classification

import "errors"

var (
	ErrNoImage              = errors.New("no image data provided")
	ErrImageTooLarge        = errors.New("image is too large")
	ErrInvalidImageEncoding = errors.New("image is not valid base64")
	ErrUnsupportedMimeType  = errors.New("mime type is not an image type")
)
