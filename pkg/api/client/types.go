package client

import "encoding/json"

// Status is the remote processing state of an order.
//
// The wire strings are kept verbatim; note that "active" means the job finished
// successfully, not that it is still running.
type Status string

const (
	// StatusProcessing means the job has not reached a terminal state yet.
	StatusProcessing Status = "init"
	// StatusSucceeded means the job finished and an output URL is available.
	StatusSucceeded Status = "active"
	// StatusFailed means the job failed permanently.
	StatusFailed Status = "failed"
)

// Terminal reports whether no further status transition will occur.
func (s Status) Terminal() bool {
	return s == StatusSucceeded || s == StatusFailed
}

// envelope is the application-level wrapper around every JSON response.
// StatusCode carries the app-level result independently of the HTTP status;
// only statusCodeOK means success.
type envelope struct {
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
	Body       json.RawMessage `json:"body"`
}

// statusCodeOK is the application-level success sentinel embedded inside an
// HTTP 200 envelope.
const statusCodeOK = 2000

// uploadTicket is returned by the upload negotiation call. UploadImage is a
// one-time signed PUT target; ImageURL is the durable reference used in all
// subsequent calls. The ticket is consumed immediately and never persisted.
type uploadTicket struct {
	UploadImage string `json:"uploadImage"`
	ImageURL    string `json:"imageUrl"`
	Size        int64  `json:"size"`
}

// Order describes a submitted job. The client never writes its status; all
// transitions happen server-side and are observed via polling.
type Order struct {
	OrderID              string `json:"orderId"`
	MaxRetriesAllowed    int    `json:"maxRetriesAllowed"`
	AvgResponseTimeInSec int    `json:"avgResponseTimeInSec"`
	Status               Status `json:"status"`
}

// OrderStatus is one observation of a job's state. Output is populated only
// when Status is StatusSucceeded and is a URL to the produced asset, not the
// asset itself.
type OrderStatus struct {
	OrderID string `json:"orderId"`
	Status  Status `json:"status"`
	Output  string `json:"output,omitempty"`
}

// Request is a feature-specific job payload. The client is agnostic to the
// payload shape; it only needs the submit endpoint and the matching
// order-status endpoint (the backend versions them together).
type Request interface {
	SubmitPath() string
	StatusPath() string
}

// Validator is implemented by payloads that carry client-side constraints.
// SubmitJob runs Validate before any network call.
type Validator interface {
	Validate() error
}

// Image is raw image bytes plus their MIME type, ready for upload.
type Image struct {
	Data        []byte
	ContentType string
}

// PayloadBuilder assembles a feature request from uploaded image URLs, in the
// order the images were passed to Run.
type PayloadBuilder func(imageURLs []string) (Request, error)
