// Package fetch lifts HTTP calls into the Task algebra: every outcome of a
// request, including transport failures and non-success status codes, settles
// the returned Task as a Result instead of surfacing through a second error
// channel. It consumes only the public Task contract.
package fetch

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/realpha/eitherway/results"
	"github.com/realpha/eitherway/tasks"
)

// FailedRequest reports a response that arrived but carried a non-success
// status code.
type FailedRequest struct {
	Status int
	URL    string
}

func (e *FailedRequest) Error() string {
	return fmt.Sprintf("request to %s failed with status %d", e.URL, e.Status)
}

// FetchError reports that no usable response arrived at all: transport
// failures, bad requests that never left the process, or an unreadable body.
type FetchError struct {
	URL   string
	Cause error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Cause)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// errMapFor wraps everything except an already-classified FailedRequest into
// a FetchError for the given URL.
func errMapFor(url string) func(error) error {
	return func(err error) error {
		failed := &FailedRequest{}
		if errors.As(err, &failed) {
			return err
		}
		return &FetchError{URL: url, Cause: err}
	}
}

// Do performs req on client and returns a Task settling to the response.
// Status codes of 400 and above settle as Err(*FailedRequest) with the
// response body closed; every other failure settles as Err(*FetchError).
// A nil client uses http.DefaultClient.
func Do(client *http.Client, req *http.Request) *tasks.Task[*http.Response] {
	if client == nil {
		client = http.DefaultClient
	}
	url := req.URL.String()

	return tasks.FromFallible(func() (*http.Response, error) {
		resp, err := client.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= http.StatusBadRequest {
			resp.Body.Close()
			return nil, &FailedRequest{Status: resp.StatusCode, URL: url}
		}
		return resp, nil
	}, errMapFor(url))
}

// Get is Do for a plain GET of url. A URL that cannot even form a request
// settles immediately as Err(*FetchError).
func Get(client *http.Client, url string) *tasks.Task[*http.Response] {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return tasks.Fail[*http.Response](&FetchError{URL: url, Cause: err})
	}
	return Do(client, req)
}

// JSON performs req and decodes the response body into T, closing the body
// either way. Decode failures settle as Err(*FetchError).
func JSON[T any](client *http.Client, req *http.Request) *tasks.Task[T] {
	url := req.URL.String()

	return tasks.AndThen(Do(client, req), func(resp *http.Response) results.Result[T] {
		defer resp.Body.Close()

		var v T
		if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
			return results.Err[T](&FetchError{URL: url, Cause: err})
		}
		return results.Ok(v)
	})
}
