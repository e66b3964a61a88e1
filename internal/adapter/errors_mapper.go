package adapter

import (
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// mapHTTPError turns a non-2xx response into a *ServerError.
// The message is taken from the envelope when the body carries one, else
// from the raw body.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	message := body
	if gjson.Valid(body) {
		if m := gjson.Get(body, "message"); m.Type == gjson.String {
			message = m.String()
		}
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode())
	}

	return &ServerError{
		Status:  resp.StatusCode(),
		Message: message,
		Err:     statusSentinel(resp.StatusCode()),
	}
}

func statusSentinel(status int) error {
	switch status {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusBadGateway:
		return ErrBadGateway
	case http.StatusServiceUnavailable:
		return ErrServiceUnavailable
	case http.StatusInternalServerError:
		return ErrInternalServerError
	default:
		return nil
	}
}
