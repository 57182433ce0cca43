package gradio

import "time"

const (
	// DefaultAPIPrefix is the route prefix used by Gradio 5 servers.
	DefaultAPIPrefix = "/gradio_api"

	// DefaultEndpoint is the default named prediction endpoint.
	DefaultEndpoint = "/predict"

	// DefaultTimeout is generous because a sleeping Space can take minutes to wake.
	DefaultTimeout = 3 * time.Minute

	spaceHostSuffix = ".hf.space"
	fileDataType    = "gradio.FileData"

	eventComplete = "complete"
	eventError    = "error"

	maxEventSize = 4 << 20
)
