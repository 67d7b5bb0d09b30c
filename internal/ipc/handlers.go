package ipc

import (
	"net/http"
	"os"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/matjam/smoothview"
	"github.com/spf13/viper"
)

// GET /status
func statusHandler(m ManagerInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		view := m.Status()

		return c.JSONPretty(http.StatusOK, StatusResponse{
			Status:  StatusOK,
			Message: "smoothview is running",
			Version: strings.Trim(smoothview.Version, "\n\r "),
			PID:     os.Getpid(),
			Socket:  SocketPath(),
			Config:  viper.ConfigFileUsed(),
			View:    view,
		}, "  ")
	}
}

// POST /command
func commandHandler(m ManagerInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		var cmd Command
		if err := c.Bind(&cmd); err != nil || cmd.Type == "" {
			return c.JSON(http.StatusBadRequest, Response{Status: StatusError, Message: "invalid command"})
		}
		return execute(c, m, cmd)
	}
}

// POST /stop
func stopHandler(m ManagerInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		return execute(c, m, Command{Type: CommandStop})
	}
}

// POST /load
func loadHandler(m ManagerInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req LoadRequest
		if err := c.Bind(&req); err != nil || req.Path == "" {
			return c.JSON(http.StatusBadRequest, Response{Status: StatusError, Message: "expected {\"path\": ...}"})
		}
		return execute(c, m, Command{Type: CommandLoad, Args: []string{req.Path}})
	}
}

func execute(c echo.Context, m ManagerInterface, cmd Command) error {
	resp, err := m.Execute(c.Request().Context(), cmd)
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, Response{Status: StatusError, Message: err.Error()})
	}
	if resp.Status == StatusError {
		return c.JSON(http.StatusUnprocessableEntity, resp)
	}
	return c.JSON(http.StatusOK, resp)
}
