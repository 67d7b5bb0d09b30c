package ipc

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"

	"resty.dev/v3"
)

func newClient() *resty.Client {
	path := SocketPath()

	client := resty.NewWithClient(&http.Client{
		Transport: &http.Transport{
			DialContext: func(ctx context.Context, _, _ string) (net.Conn, error) {
				var d net.Dialer
				return d.DialContext(ctx, "unix", path)
			},
		},
	})

	client.SetBaseURL("http://smoothview")
	client.SetHeader("Content-Type", "application/json")
	client.SetHeader("Accept", "application/json")
	client.SetHeader("User-Agent", "smoothview")
	return client
}

func post(route string, body any) (*Response, error) {
	client := newClient()
	defer client.Close()

	result := Response{}

	response, err := client.R().SetBody(body).SetResult(&result).Post(route)
	if err != nil {
		return nil, err
	}

	if response.StatusCode() != http.StatusOK {
		var failure Response
		if json.Unmarshal([]byte(response.String()), &failure) == nil && failure.Message != "" {
			return nil, fmt.Errorf("%s: %s", response.Status(), failure.Message)
		}
		return nil, fmt.Errorf("error sending command: %s", response.Status())
	}

	return &result, nil
}

func SendCommand(cmd Command) (*Response, error) {
	return post("/command", cmd)
}

func SendStop() error {
	_, err := post("/stop", nil)
	return err
}

func SendLoad(path string) (*Response, error) {
	return post("/load", LoadRequest{Path: path})
}

func SendStatus() (*StatusResponse, error) {
	client := newClient()
	defer client.Close()

	result := StatusResponse{}

	response, err := client.R().SetResult(&result).Get("/status")
	if err != nil {
		return nil, err
	}

	if response.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("error requesting status: %s", response.Status())
	}

	return &result, nil
}
