package ipc

import (
	"net"
	"net/http"
	"testing"
)

func TestClientRoundTrip(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())
	m, _ := startManager(t)

	l, err := net.Listen("unix", SocketPath())
	if err != nil {
		t.Fatal(err)
	}
	srv := &http.Server{Handler: NewServer(m)}
	go srv.Serve(l)
	t.Cleanup(func() { srv.Close() })

	status, err := SendStatus()
	if err != nil {
		t.Fatal(err)
	}
	if status.Socket != SocketPath() || status.View.HasImage {
		t.Errorf("status: %+v", status)
	}

	resp, err := SendLoad(writePNG(t, 100, 50))
	if err != nil {
		t.Fatal(err)
	}
	if resp.Status != StatusOK {
		t.Errorf("load: %+v", resp)
	}

	resp, err = SendCommand(Command{Type: CommandZoom, Amount: 3})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Status != StatusOK || !near(m.Status().Zoom, 300) {
		t.Errorf("zoom: %+v, zoom now %g", resp, m.Status().Zoom)
	}

	if _, err := SendCommand(Command{Type: "spin"}); err == nil {
		t.Error("unknown command did not fail")
	}

	if err := SendStop(); err != nil {
		t.Fatal(err)
	}
	<-m.Stopped()
}
