package sell

import "net/http"

// Kind labels the pipeline step failure classes. Transport status codes
// are derived from kinds only at the HTTP boundary.
type Kind int

const (
	// KindProductNotIdentified: the classifier found nothing on the menu.
	KindProductNotIdentified Kind = iota + 1
	// KindProductNotFound: the catalog has no product with that name.
	KindProductNotFound
	// KindProductImageMissing: the catalog's reference image is unreadable.
	KindProductImageMissing
	// KindUpstream: a model or backend call failed.
	KindUpstream
)

// Error is a failed pipeline step. The chain short-circuits on the first
// one; whatever step produced it is the step the request died in.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the error kind to a transport status code.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindProductNotIdentified:
		return http.StatusBadRequest
	case KindProductNotFound, KindProductImageMissing:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
