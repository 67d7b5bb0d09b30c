package ipc

import (
	"context"
	"fmt"
	"math"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/matjam/smoothview/internal/geom"
	"github.com/matjam/smoothview/internal/imagestore"
	"github.com/matjam/smoothview/internal/render"
	"github.com/matjam/smoothview/internal/types"
	"github.com/matjam/smoothview/internal/viewport"
)

type request struct {
	cmd   Command
	reply chan Response
}

// Manager owns the viewport controller, the image store and the renderer.
// All of them are only touched from the Run goroutine; other goroutines
// talk to it through Execute and read the last published Status.
type Manager struct {
	sync.Mutex
	ctrl     *viewport.Controller
	store    *imagestore.Store
	renderer *render.Renderer

	reqs    chan request
	stopped chan struct{}
	status  ViewStatus
}

// NewManager wires the manager to ctrl's notifications. ctrl must not be
// used by anything else once Run has started.
func NewManager(ctrl *viewport.Controller, store *imagestore.Store, renderer *render.Renderer) *Manager {
	m := &Manager{
		ctrl:     ctrl,
		store:    store,
		renderer: renderer,
		reqs:     make(chan request, 16),
		stopped:  make(chan struct{}),
	}
	ctrl.Subscribe(m.onNotification)
	m.publish()
	return m
}

func (m *Manager) onNotification(n viewport.Notification) {
	log.Debug("viewport notification", "kind", n.Kind, "transform", n.Transform)
	m.publish()
}

func (m *Manager) publish() {
	st := m.ctrl.State()
	vs := ViewStatus{
		Image:       m.store.Path(),
		HasImage:    st.HasImage(),
		ImageSize:   st.Image().Size(),
		Viewport:    st.Viewport(),
		Zoom:        st.CombinedScale() * 100,
		Transform:   st.CombinedTransform(),
		ImageMatrix: st.ImageMatrix(),
		WorldMatrix: st.WorldMatrix(),
		Pannable:    st.Pannable(),
		Visible:     st.VisibleImageRegion(),
	}
	if m.ctrl.Blocked() {
		until := st.UnblockAt()
		vs.BlockedUntil = &until
	}

	m.Lock()
	defer m.Unlock()
	m.status = vs
}

// Status returns the geometry published after the last change. A block
// window that has since run out is dropped.
func (m *Manager) Status() ViewStatus {
	m.Lock()
	vs := m.status
	m.Unlock()

	if vs.BlockedUntil != nil && !m.ctrl.Now().Before(*vs.BlockedUntil) {
		vs.BlockedUntil = nil
	}
	return vs
}

// Stopped is closed once Run has returned.
func (m *Manager) Stopped() <-chan struct{} {
	return m.stopped
}

// Execute queues cmd for the Run goroutine and waits for its reply.
func (m *Manager) Execute(ctx context.Context, cmd Command) (Response, error) {
	req := request{cmd: cmd, reply: make(chan Response, 1)}

	select {
	case m.reqs <- req:
	case <-ctx.Done():
		return Response{}, ctx.Err()
	case <-m.stopped:
		return Response{}, ErrStopped
	}

	select {
	case resp := <-req.reply:
		return resp, nil
	case <-ctx.Done():
		return Response{}, ctx.Err()
	case <-m.stopped:
		// the stop command itself replies before Run returns
		select {
		case resp := <-req.reply:
			return resp, nil
		default:
			return Response{}, ErrStopped
		}
	}
}

// Run processes commands until a stop command arrives or ctx is done.
func (m *Manager) Run(ctx context.Context) {
	log.Info("Starting viewport manager...")
	defer close(m.stopped)

	for {
		select {
		case <-ctx.Done():
			log.Info("Viewport manager context done")
			return
		case req := <-m.reqs:
			resp := m.handle(req.cmd)
			req.reply <- resp
			if req.cmd.Type == CommandStop {
				log.Info("Stopping viewport manager ...")
				return
			}
		}
	}
}

func (m *Manager) handle(cmd Command) Response {
	log.Debug("received command", "type", cmd.Type)

	switch cmd.Type {
	case CommandStatus:
		return Response{Status: StatusOK, Message: "status", Data: m.Status()}
	case CommandStop:
		return Response{Status: StatusOK, Message: "stopping"}
	case CommandLoad:
		if len(cmd.Args) != 1 {
			return errorf("load takes exactly one image path, got %d", len(cmd.Args))
		}
		return m.load(cmd.Args[0])
	case CommandUnload:
		m.store.Clear()
		return m.applied(m.ctrl.OnImageUnloaded())
	case CommandZoomIn:
		return m.applied(m.ctrl.ZoomIn(cmd.Focal))
	case CommandZoomOut:
		return m.applied(m.ctrl.ZoomOut(cmd.Focal))
	case CommandZoom:
		return m.zoom(cmd)
	case CommandWheel:
		return m.applied(m.ctrl.ZoomWheel(cmd.Amount, cmd.Focal))
	case CommandPinch:
		if cmd.Amount <= 0 {
			return errorf("pinch scale must be positive, got %v", cmd.Amount)
		}
		return m.applied(m.ctrl.ZoomPinch(cmd.Amount, cmd.Focal))
	case CommandKeyZoom:
		return m.applied(m.ctrl.ZoomKey(cmd.In, cmd.AutoRepeat))
	case CommandPan:
		return m.applied(m.ctrl.PanBy(geom.Pt(cmd.X, cmd.Y)))
	case CommandPanStep:
		if !cmd.Direction.Valid() {
			return errorf("unknown pan direction %q", cmd.Direction)
		}
		return m.applied(m.ctrl.Pan(cmd.Direction))
	case CommandReset:
		return m.applied(m.ctrl.ResetView())
	case CommandFull:
		return m.applied(m.ctrl.FullView())
	case CommandResize:
		if cmd.X < 0 || cmd.Y < 0 {
			return errorf("invalid viewport size %vx%v", cmd.X, cmd.Y)
		}
		return m.applied(m.ctrl.OnResize(geom.Sz(cmd.X, cmd.Y)))
	case CommandSnapshot:
		if len(cmd.Args) != 1 {
			return errorf("snapshot takes exactly one output path, got %d", len(cmd.Args))
		}
		return m.snapshot(cmd.Args[0])
	default:
		log.Error("Unknown command:", cmd.Type)
		return errorf("unknown command %q", cmd.Type)
	}
}

// zoom routes a zoom by trigger. Wheel angles and key directions may be
// negative; factors for the other triggers must be positive.
func (m *Manager) zoom(cmd Command) Response {
	trigger := cmd.Trigger
	if trigger == "" {
		trigger = types.ZoomTriggerRaw
	}
	if !trigger.Valid() {
		return errorf("unknown zoom trigger %q", cmd.Trigger)
	}
	if math.IsNaN(cmd.Amount) || math.IsInf(cmd.Amount, 0) {
		return errorf("zoom amount must be finite, got %v", cmd.Amount)
	}

	switch trigger {
	case types.ZoomTriggerWheel, types.ZoomTriggerKey, types.ZoomTriggerKeyRepeat:
	default:
		if cmd.Amount <= 0 {
			return errorf("zoom factor must be positive, got %v", cmd.Amount)
		}
	}
	return m.applied(m.ctrl.Zoom(trigger, cmd.Amount, cmd.Focal))
}

func (m *Manager) load(path string) Response {
	if err := m.store.Load(path); err != nil {
		log.Errorf("Failed to load image: %v", err)
		return Response{Status: StatusError, Message: err.Error()}
	}
	m.ctrl.OnImageLoaded(m.store.Rect())
	return Response{Status: StatusOK, Message: "loaded " + path, Data: m.Status()}
}

func (m *Manager) snapshot(path string) Response {
	f, err := os.Create(path)
	if err != nil {
		return errorf("failed to create snapshot: %v", err)
	}
	defer f.Close()

	st := m.ctrl.State()
	if err := m.renderer.WritePNG(f, m.store, st.Viewport(), st.CombinedTransform()); err != nil {
		os.Remove(path)
		return Response{Status: StatusError, Message: err.Error()}
	}
	log.Infof("Wrote snapshot %s", path)
	return Response{Status: StatusOK, Message: "wrote " + path, Data: m.Status()}
}

// applied reports the outcome of a geometry command. Rejected commands are
// not errors: the view simply stays as it was.
func (m *Manager) applied(ok bool) Response {
	if !ok {
		return Response{Status: StatusIgnored, Message: "view unchanged", Data: m.Status()}
	}
	return Response{Status: StatusOK, Message: "view updated", Data: m.Status()}
}

func errorf(format string, args ...any) Response {
	return Response{Status: StatusError, Message: fmt.Sprintf(format, args...)}
}
