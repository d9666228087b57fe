package routes

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// errorDetail is the flat error envelope every route renders on failure.
type errorDetail struct {
	Detail string `json:"detail"`
}

func detail(c echo.Context, status int, format string, args ...any) error {
	return c.JSON(status, errorDetail{Detail: fmt.Sprintf(format, args...)})
}

// readImageUpload reads the named multipart file and rejects anything that
// does not declare an image/* content type.
func readImageUpload(c echo.Context, field string) ([]byte, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("%s is required", field))
	}
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		return nil, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("%s must be an image file", field))
	}

	src, err := file.Open()
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("failed to read %s", field))
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("failed to read %s", field))
	}
	return data, nil
}

// uploadError renders the echo.HTTPError produced by readImageUpload in the
// detail envelope.
func uploadError(c echo.Context, err error) error {
	if he, ok := err.(*echo.HTTPError); ok {
		return detail(c, he.Code, "%v", he.Message)
	}
	return detail(c, http.StatusBadRequest, "%v", err)
}
