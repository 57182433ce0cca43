package http

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"rice-leaf-detection/internal/classification"
)

const (
	imageFormField = "image"
	mimeFormField  = "mime_type"

	// jsonEnvelopeBytes covers the JSON keys, mime_type and a data URL prefix.
	jsonEnvelopeBytes = 4096
)

// processClassifyReq reads the image from a multipart form or a JSON body.
// A request without an image is not rejected here.
func (h *handler) processClassifyReq(c *gin.Context) (classifyReq, error) {
	if strings.HasPrefix(c.ContentType(), gin.MIMEMultipartPOSTForm) {
		return h.processMultipartReq(c)
	}
	return h.processJSONReq(c)
}

func (h *handler) processJSONReq(c *gin.Context) (classifyReq, error) {
	limit := int64(base64.StdEncoding.EncodedLen(int(h.maxImageBytes))) + jsonEnvelopeBytes
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)

	var body classifyReq
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return body, classification.ErrImageTooLarge
		}
		return body, err
	}

	image, hint, err := decodeImage(body.Image, h.maxImageBytes)
	if err != nil {
		return body, err
	}

	body.data = image
	body.MimeType = pickMimeType(body.MimeType, hint, image)
	return body, body.validate()
}

func (h *handler) processMultipartReq(c *gin.Context) (classifyReq, error) {
	req := classifyReq{MimeType: c.PostForm(mimeFormField)}

	header, err := c.FormFile(imageFormField)
	if errors.Is(err, http.ErrMissingFile) {
		return req, nil
	}
	if err != nil {
		return req, err
	}
	if header.Size > h.maxImageBytes {
		return req, classification.ErrImageTooLarge
	}

	image, err := readFormFile(header, h.maxImageBytes)
	if err != nil {
		return req, err
	}

	req.data = image
	req.fileName = header.Filename
	req.MimeType = pickMimeType(req.MimeType, header.Header.Get("Content-Type"), image)
	return req, req.validate()
}

func readFormFile(header *multipart.FileHeader, limit int64) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open form file: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(f, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read form file: %w", err)
	}
	if n > limit {
		return nil, classification.ErrImageTooLarge
	}
	return buf.Bytes(), nil
}

// decodeImage accepts plain base64 or a data URL ("data:image/png;base64,...")
// and returns the bytes plus the MIME type named by the data URL, if any.
func decodeImage(s string, limit int64) ([]byte, string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, "", nil
	}

	var hint string
	if strings.HasPrefix(s, "data:") {
		idx := strings.IndexByte(s, ',')
		if idx < 0 {
			return nil, "", classification.ErrInvalidImageEncoding
		}
		meta := s[len("data:"):idx]
		if semi := strings.IndexByte(meta, ';'); semi >= 0 {
			meta = meta[:semi]
		}
		hint = meta
		s = s[idx+1:]
	}

	s = strings.TrimRight(s, "=")
	if int64(base64.RawStdEncoding.DecodedLen(len(s))) > limit {
		return nil, "", classification.ErrImageTooLarge
	}

	b, err := base64.RawStdEncoding.DecodeString(s)
	if err != nil {
		if b2, err2 := base64.RawURLEncoding.DecodeString(s); err2 == nil {
			return b2, hint, nil
		}
		return nil, "", classification.ErrInvalidImageEncoding
	}
	return b, hint, nil
}

// pickMimeType prefers the explicit type, then the transport hint, then the
// sniffed type. Returns "" when nothing names an image type.
func pickMimeType(explicit, hint string, data []byte) string {
	if exp := strings.TrimSpace(explicit); exp != "" {
		return exp
	}
	if h := strings.TrimSpace(hint); h != "" && h != "application/octet-stream" {
		return h
	}
	if len(data) > 0 {
		if sniffed := http.DetectContentType(data); strings.HasPrefix(sniffed, "image/") {
			return sniffed
		}
	}
	return ""
}
