package repository

type PredictOptions struct {
	Image    []byte
	MimeType string
	FileName string
}
