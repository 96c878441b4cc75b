package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// statusResponse is the body of the root status endpoint.
type statusResponse struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Status reports that the server is up, with the current timestamp.
func Status(c echo.Context) error {
	return c.JSON(http.StatusOK, statusResponse{
		Message:   "Bazar server is running smoothly",
		Timestamp: time.Now(),
	})
}
