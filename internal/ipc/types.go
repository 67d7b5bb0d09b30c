package ipc

import (
	"context"
	"errors"
	"time"

	"github.com/matjam/smoothview/internal/geom"
	"github.com/matjam/smoothview/internal/types"
)

type CommandType string

const (
	CommandStop     CommandType = "stop"
	CommandStatus   CommandType = "status"
	CommandLoad     CommandType = "load"
	CommandUnload   CommandType = "unload"
	CommandZoomIn   CommandType = "zoom-in"
	CommandZoomOut  CommandType = "zoom-out"
	CommandZoom     CommandType = "zoom"
	CommandWheel    CommandType = "wheel"
	CommandPinch    CommandType = "pinch"
	CommandKeyZoom  CommandType = "key-zoom"
	CommandPan      CommandType = "pan"
	CommandPanStep  CommandType = "pan-step"
	CommandReset    CommandType = "reset"
	CommandFull     CommandType = "full"
	CommandResize   CommandType = "resize"
	CommandSnapshot CommandType = "snapshot"
)

var ErrStopped = errors.New("viewport manager stopped")

// Command is a request to the viewport manager. Which fields matter
// depends on Type: Args carries paths for load and snapshot, Amount the
// zoom factor, wheel angle or pinch scale, X and Y a pan delta or a
// viewport size.
type Command struct {
	Type       CommandType        `json:"type"`
	Args       []string           `json:"args,omitempty"`
	Amount     float64            `json:"amount,omitempty"`
	X          float64            `json:"x,omitempty"`
	Y          float64            `json:"y,omitempty"`
	Focal      *geom.Point        `json:"focal,omitempty"`
	Trigger    types.ZoomTrigger  `json:"trigger,omitempty"`
	Direction  types.PanDirection `json:"direction,omitempty"`
	In         bool               `json:"in,omitempty"`
	AutoRepeat bool               `json:"auto_repeat,omitempty"`
}

type ManagerInterface interface {
	Status() ViewStatus
	Execute(ctx context.Context, cmd Command) (Response, error)
}

const (
	StatusOK      = "ok"
	StatusIgnored = "ignored"
	StatusError   = "error"
)

type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// ViewStatus is the geometry of the viewport as of the last change.
type ViewStatus struct {
	Image        string      `json:"image"`
	HasImage     bool        `json:"has_image"`
	ImageSize    geom.Size   `json:"image_size"`
	Viewport     geom.Size   `json:"viewport"`
	Zoom         float64     `json:"zoom_percent"`
	Transform    geom.Matrix `json:"transform"`
	ImageMatrix  geom.Matrix `json:"image_matrix"`
	WorldMatrix  geom.Matrix `json:"world_matrix"`
	Pannable     bool        `json:"pannable"`
	Visible      geom.Rect   `json:"visible_region"`
	BlockedUntil *time.Time  `json:"blocked_until,omitempty"`
}

type StatusResponse struct {
	Status  string     `json:"status"`
	Message string     `json:"message"`
	Version string     `json:"version"`
	PID     int        `json:"pid"`
	Socket  string     `json:"socket"`
	Config  string     `json:"config"`
	View    ViewStatus `json:"view"`
}

type LoadRequest struct {
	Path string `json:"path"`
}
