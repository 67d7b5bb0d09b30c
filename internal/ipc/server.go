package ipc

import (
	"net"
	"net/http"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	"github.com/matjam/smoothview/internal/middleware"
)

// SocketPath is where the daemon listens, in $XDG_RUNTIME_DIR when set.
func SocketPath() string {
	sockDir := os.Getenv("XDG_RUNTIME_DIR")
	if sockDir == "" {
		sockDir = os.TempDir()
	}
	return filepath.Join(sockDir, "smoothview.sock")
}

func NewServer(manager ManagerInterface) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.CharmLog())

	RegisterRoutes(e, manager)
	return e
}

// Start serves the IPC API on the unix socket until the process exits.
func Start(manager ManagerInterface) {
	sockPath := SocketPath()

	if _, err := os.Stat(sockPath); err == nil {
		_ = os.Remove(sockPath)
	}

	listener, err := net.Listen("unix", sockPath)
	if err != nil {
		log.Fatal(err)
	}

	e := NewServer(manager)
	e.Listener = listener

	server := new(http.Server)
	if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Socket server error: %v", err)
	}
}
