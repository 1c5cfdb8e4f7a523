package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// replacePayload mirrors a mask-driven feature for exercising Run end to end.
type replacePayload struct {
	ImageURL       string `json:"imageUrl"`
	MaskedImageURL string `json:"maskedImageUrl"`
	TextPrompt     string `json:"textPrompt"`
}

func (replacePayload) SubmitPath() string { return "/v1/replace" }
func (replacePayload) StatusPath() string { return "/v1/order-status" }

// jobServer simulates the whole job lifecycle and records every request path
// in arrival order.
type jobServer struct {
	*httptest.Server

	mu    sync.Mutex
	paths []string

	submitted replacePayload
}

func (js *jobServer) record(r *http.Request) {
	js.mu.Lock()
	defer js.mu.Unlock()
	js.paths = append(js.paths, r.Method+" "+r.URL.Path)
}

func (js *jobServer) recorded() []string {
	js.mu.Lock()
	defer js.mu.Unlock()
	return append([]string(nil), js.paths...)
}

func newJobServer(t *testing.T) *jobServer {
	t.Helper()
	js := &jobServer{}
	uploads := 0
	js.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		js.record(r)
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/v2/uploadImageUrl":
			uploads++
			writeEnvelope(w, statusCodeOK, "success", map[string]interface{}{
				"uploadImage": fmt.Sprintf("%s/storage/%d", js.URL, uploads),
				"imageUrl":    fmt.Sprintf("https://cdn.example.com/img-%d.jpg", uploads),
			})

		case r.Method == http.MethodPut:
			w.WriteHeader(http.StatusOK)

		case r.Method == http.MethodPost && r.URL.Path == "/v1/replace":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&js.submitted))
			writeEnvelope(w, statusCodeOK, "success", map[string]interface{}{
				"orderId": "order-777",
				"status":  "init",
			})

		case r.Method == http.MethodPost && r.URL.Path == "/v1/order-status":
			writeEnvelope(w, statusCodeOK, "success", map[string]interface{}{
				"orderId": "order-777",
				"status":  "active",
				"output":  "https://cdn.example.com/result.webp",
			})

		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	return js
}

func TestRun(t *testing.T) {
	server := newJobServer(t)
	defer server.Close()

	c := newTestClient(t, server.URL)

	original := Image{Data: []byte{0xFF, 0xD8, 0xFF}, ContentType: ContentTypeJPEG}
	mask := Image{Data: []byte{0x89, 0x50, 0x4E, 0x47}, ContentType: ContentTypePNG}

	build := func(urls []string) (Request, error) {
		require.Len(t, urls, 2)
		return replacePayload{
			ImageURL:       urls[0],
			MaskedImageURL: urls[1],
			TextPrompt:     "a golden retriever",
		}, nil
	}

	status, err := c.Run(context.Background(), build, original, mask)
	require.NoError(t, err)
	assert.Equal(t, StatusSucceeded, status.Status)
	assert.Equal(t, "https://cdn.example.com/result.webp", status.Output)

	// Uploads happen in argument order: original first, then the mask.
	assert.Equal(t, "https://cdn.example.com/img-1.jpg", server.submitted.ImageURL)
	assert.Equal(t, "https://cdn.example.com/img-2.jpg", server.submitted.MaskedImageURL)
	assert.Equal(t, "a golden retriever", server.submitted.TextPrompt)

	assert.Equal(t, []string{
		"POST /v2/uploadImageUrl",
		"PUT /storage/1",
		"POST /v2/uploadImageUrl",
		"PUT /storage/2",
		"POST /v1/replace",
		"POST /v1/order-status",
	}, server.recorded())
}

func TestRun_UploadFailureAborts(t *testing.T) {
	var submits int
	uploads := 0
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/v2/uploadImageUrl":
			uploads++
			if uploads == 2 {
				// Second negotiation fails; nothing further may run.
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			writeEnvelope(w, statusCodeOK, "success", map[string]interface{}{
				"uploadImage": server.URL + "/storage/1",
				"imageUrl":    "https://cdn.example.com/img-1.jpg",
			})
		case r.Method == http.MethodPut:
			w.WriteHeader(http.StatusOK)
		default:
			submits++
		}
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	build := func(urls []string) (Request, error) {
		t.Error("builder must not run after a failed upload")
		return nil, nil
	}

	_, err := c.Run(context.Background(), build,
		Image{Data: []byte{1}, ContentType: ContentTypeJPEG},
		Image{Data: []byte{2}, ContentType: ContentTypePNG},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
	assert.Zero(t, submits)
}

func TestRun_BuilderErrorAborts(t *testing.T) {
	server := newJobServer(t)
	defer server.Close()

	c := newTestClient(t, server.URL)
	build := func(urls []string) (Request, error) {
		return nil, fmt.Errorf("mask image is required")
	}

	_, err := c.Run(context.Background(), build, Image{Data: []byte{1}, ContentType: ContentTypeJPEG})
	require.Error(t, err)
	assert.EqualError(t, err, "mask image is required")

	// Only the upload leg ran.
	assert.Equal(t, []string{
		"POST /v2/uploadImageUrl",
		"PUT /storage/1",
	}, server.recorded())
}
