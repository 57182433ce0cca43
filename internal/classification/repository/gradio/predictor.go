package gradio

import (
	"context"
	"encoding/json"
	"fmt"

	"rice-leaf-detection/internal/classification/repository"
	"rice-leaf-detection/pkg/gradio"
)

var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
	"image/bmp":  ".bmp",
}

// Predict uploads the image and calls the endpoint with it as its only argument.
func (p *implPredictor) Predict(ctx context.Context, opt repository.PredictOptions) (json.RawMessage, error) {
	file, err := p.client.Upload(ctx, gradio.File{
		Name:     fileName(opt.FileName, opt.MimeType),
		MimeType: opt.MimeType,
		Data:     opt.Image,
	})
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}
	p.l.Debugf(ctx, "gradio.Predict: uploaded image to %s", file.Path)

	payload, err := p.client.Predict(ctx, p.endpoint, file)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", p.endpoint, err)
	}
	return payload, nil
}

func (p *implPredictor) Status(ctx context.Context) (int, error) {
	return p.client.Status(ctx)
}

func (p *implPredictor) SpaceID() string {
	return p.client.SpaceID()
}

func fileName(name, mimeType string) string {
	if name != "" {
		return name
	}
	if ext, ok := extensions[mimeType]; ok {
		return "image" + ext
	}
	return "image.jpg"
}
