package gradio

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"golang.org/x/oauth2"
)

type gradioImpl struct {
	spaceID    string
	baseURL    string
	apiPrefix  string
	httpClient *http.Client
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func newGradioImpl(cfg Config) *gradioImpl {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = SpaceURL(cfg.SpaceID)
	}

	prefix := cfg.APIPrefix
	if prefix == "" {
		prefix = DefaultAPIPrefix
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	if cfg.Token != "" {
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, client)
		authed := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: cfg.Token,
			TokenType:   "Bearer",
		}))
		authed.Timeout = client.Timeout
		client = authed
	}

	spaceID := cfg.SpaceID
	if spaceID == "" {
		spaceID = baseURL
	}

	return &gradioImpl{
		spaceID:    spaceID,
		baseURL:    baseURL,
		apiPrefix:  "/" + strings.Trim(prefix, "/"),
		httpClient: client,
	}
}

// SpaceURL returns the public host of a Hugging Face Space,
// e.g. "owner/my_space" -> "https://owner-my-space.hf.space".
func SpaceURL(spaceID string) string {
	host := strings.NewReplacer("/", "-", "_", "-", ".", "-").Replace(strings.ToLower(spaceID))
	return "https://" + host + spaceHostSuffix
}

func (g *gradioImpl) SpaceID() string {
	return g.spaceID
}

func (g *gradioImpl) url(path string) string {
	return g.baseURL + g.apiPrefix + path
}

// Upload sends the file as multipart form field "files".
func (g *gradioImpl) Upload(ctx context.Context, file File) (FileData, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="files"; filename="%s"`, quoteEscaper.Replace(file.Name)))
	if file.MimeType != "" {
		header.Set("Content-Type", file.MimeType)
	} else {
		header.Set("Content-Type", "application/octet-stream")
	}

	part, err := writer.CreatePart(header)
	if err != nil {
		return FileData{}, fmt.Errorf("gradio: failed to create form part: %w", err)
	}
	if _, err := part.Write(file.Data); err != nil {
		return FileData{}, fmt.Errorf("gradio: failed to write form part: %w", err)
	}
	if err := writer.Close(); err != nil {
		return FileData{}, fmt.Errorf("gradio: failed to close form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url("/upload"), &body)
	if err != nil {
		return FileData{}, fmt.Errorf("gradio: failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var paths []string
	if err := g.doJSON(req, &paths); err != nil {
		return FileData{}, err
	}
	if len(paths) == 0 || paths[0] == "" {
		return FileData{}, ErrNoUploadPath
	}

	return FileData{
		Path:     paths[0],
		OrigName: file.Name,
		MimeType: file.MimeType,
		Meta:     FileMeta{Type: fileDataType},
	}, nil
}

// Predict queues a call on endpoint and waits for its result on the event stream.
func (g *gradioImpl) Predict(ctx context.Context, endpoint string, data ...any) (json.RawMessage, error) {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	endpoint = "/" + strings.TrimLeft(endpoint, "/")

	if data == nil {
		data = []any{}
	}
	body, err := json.Marshal(callRequest{Data: data})
	if err != nil {
		return nil, fmt.Errorf("gradio: failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url("/call"+endpoint), bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("gradio: failed to create call request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var queued callResponse
	if err := g.doJSON(req, &queued); err != nil {
		return nil, err
	}
	if queued.EventID == "" {
		return nil, ErrNoEventID
	}

	req, err = http.NewRequestWithContext(ctx, http.MethodGet, g.url("/call"+endpoint+"/"+queued.EventID), nil)
	if err != nil {
		return nil, fmt.Errorf("gradio: failed to create result request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gradio: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	return readResult(resp.Body)
}

// Status issues HEAD on the Space root.
func (g *gradioImpl) Status(ctx context.Context) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, g.baseURL+"/", nil)
	if err != nil {
		return 0, fmt.Errorf("gradio: failed to create status request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("gradio: failed to reach space: %w", err)
	}
	defer resp.Body.Close()

	return resp.StatusCode, nil
}

func (g *gradioImpl) doJSON(req *http.Request, out any) error {
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("gradio: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("gradio: failed to decode response: %w", err)
	}
	return nil
}

// checkStatus turns a non-2xx response into an error that always contains the
// numeric status and, for an empty body, the status text.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	msg := strings.TrimSpace(string(raw))
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return fmt.Errorf("gradio: API error %d: %s", resp.StatusCode, msg)
}

// readResult consumes a server-sent event stream until a complete or error event.
func readResult(r io.Reader) (json.RawMessage, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxEventSize)

	var (
		event string
		data  []string
	)

	dispatch := func() (json.RawMessage, bool, error) {
		defer func() {
			event = ""
			data = data[:0]
		}()
		payload := strings.Join(data, "\n")
		switch event {
		case eventComplete:
			return json.RawMessage(payload), true, nil
		case eventError:
			if payload == "" || payload == "null" {
				return nil, true, fmt.Errorf("gradio: prediction failed")
			}
			return nil, true, fmt.Errorf("gradio: prediction failed: %s", payload)
		}
		return nil, false, nil
	}

	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == "":
			if result, done, err := dispatch(); done {
				return result, err
			}
		case strings.HasPrefix(line, "event:"):
			event = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			data = append(data, strings.TrimSpace(strings.TrimPrefix(line, "data:")))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("gradio: failed to read event stream: %w", err)
	}

	if result, done, err := dispatch(); done {
		return result, err
	}
	return nil, ErrStreamClosed
}
