package api

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/labstack/echo/v4"
)

// bindProbe decodes the request body into v without consuming it, so the
// downstream handler can still bind the full payload.
func bindProbe(c echo.Context, v interface{}) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return err
	}
	c.Request().Body = io.NopCloser(bytes.NewReader(body))

	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, v)
}
