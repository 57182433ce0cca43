package http

import (
	"fmt"
	"strings"

	"rice-leaf-detection/internal/classification"
	"rice-leaf-detection/internal/disease"
	"rice-leaf-detection/internal/model"
)

// --- Request DTOs ---

type classifyReq struct {
	Image    string `json:"image"     example:"data:image/jpeg;base64,/9j/4AAQ..."`
	MimeType string `json:"mime_type" example:"image/jpeg"`

	data     []byte
	fileName string
}

// validate rejects a MIME type that names something other than an image.
// An empty type is left to the classifier default.
func (r classifyReq) validate() error {
	if r.MimeType != "" && !strings.HasPrefix(strings.ToLower(r.MimeType), "image/") {
		return classification.ErrUnsupportedMimeType
	}
	return nil
}

func (r classifyReq) toInput() classification.ClassifyInput {
	return classification.ClassifyInput{
		Image:    r.data,
		MimeType: r.MimeType,
		FileName: r.fileName,
	}
}

// --- Response DTOs ---

type predictionResp struct {
	Label   string  `json:"label"`
	Score   float64 `json:"score"`
	Percent string  `json:"percent"`
}

func newPredictionResp(p model.Prediction) predictionResp {
	return predictionResp{
		Label:   p.Label,
		Score:   p.Score,
		Percent: fmt.Sprintf("%.1f%%", p.Score*100),
	}
}

type diseaseResp struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Treatment   string `json:"treatment"`
	Severity    string `json:"severity"`
	Known       bool   `json:"known"`
}

func newDiseaseResp(info disease.Info) diseaseResp {
	return diseaseResp{
		Name:        info.Name,
		Description: info.Description,
		Treatment:   info.Treatment,
		Severity:    string(info.Severity),
		Known:       info.Known,
	}
}

// classifyResp keeps the camelCase field names the web client reads.
type classifyResp struct {
	Status         string           `json:"status"`
	TopPrediction  *predictionResp  `json:"topPrediction"`
	AllPredictions []predictionResp `json:"allPredictions"`
	Error          string           `json:"error,omitempty"`
	RawText        string           `json:"rawText,omitempty"`
	Disease        *diseaseResp     `json:"disease,omitempty"`
}

func (h *handler) newClassifyResp(out classification.Outcome) classifyResp {
	resp := classifyResp{
		Status:         string(out.Status),
		AllPredictions: make([]predictionResp, len(out.AllPredictions)),
		Error:          out.Reason,
		RawText:        out.RawText,
	}
	for i, p := range out.AllPredictions {
		resp.AllPredictions[i] = newPredictionResp(p)
	}

	if out.TopPrediction != nil {
		top := newPredictionResp(*out.TopPrediction)
		resp.TopPrediction = &top

		info := newDiseaseResp(disease.Lookup(out.TopPrediction.Label))
		resp.Disease = &info
	}
	return resp
}

// newRejectedResp renders a request that never reached the classifier.
func newRejectedResp(err error) classifyResp {
	return classifyResp{
		Status:         string(classification.StatusError),
		AllPredictions: []predictionResp{},
		Error:          err.Error(),
	}
}

type diseasesResp struct {
	Diseases []diseaseResp `json:"diseases"`
}

func newDiseasesResp(all []disease.Info) diseasesResp {
	out := diseasesResp{Diseases: make([]diseaseResp, len(all))}
	for i, info := range all {
		out.Diseases[i] = newDiseaseResp(info)
	}
	return out
}

type upstreamStatusResp struct {
	SpaceID    string `json:"space_id"`
	Reachable  bool   `json:"reachable"`
	StatusCode int    `json:"status_code,omitempty"`
	Detail     string `json:"detail,omitempty"`
}

func newUpstreamStatusResp(s classification.UpstreamStatus) upstreamStatusResp {
	return upstreamStatusResp{
		SpaceID:    s.SpaceID,
		Reachable:  s.Reachable,
		StatusCode: s.StatusCode,
		Detail:     s.Detail,
	}
}
