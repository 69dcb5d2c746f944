package api_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"krakenmon/internal/server/api"
	"krakenmon/pkg/kraken"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sensorResponse struct {
	Kind  string `json:"kind"`
	Index int    `json:"index"`
	Label string `json:"label"`
	Value int64  `json:"value"`
	Unit  string `json:"unit"`
}

func newTestServer(t *testing.T) (*api.Server, *kraken.Device) {
	t.Helper()
	dev := kraken.New()
	srv := api.New(dev, api.Config{Addr: ":0"}, slog.Default())
	return srv, dev
}

func get(t *testing.T, srv *api.Server, path string) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := srv.App().Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	return resp, body
}

func TestGetSensors(t *testing.T) {
	srv, dev := newTestServer(t)
	dev.HandleReport(kraken.StatusReportID,
		[]byte{0x04, 0x1e, 0x32, 0x0c, 0x80, 0x03, 0x20, 0, 0, 0, 0, 0, 0, 0, 0, 0})

	resp, body := get(t, srv, "/sensors")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var sensors []sensorResponse
	require.NoError(t, json.Unmarshal(body, &sensors))

	assert.Equal(t, []sensorResponse{
		{Kind: "temp", Index: 0, Label: "Coolant", Value: 35000, Unit: "millicelsius"},
		{Kind: "fan", Index: 0, Label: "Fans", Value: 3200, Unit: "rpm"},
		{Kind: "fan", Index: 1, Label: "Pump", Value: 800, Unit: "rpm"},
	}, sensors)
}

func TestGetSensorsBeforeFirstReport(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, body := get(t, srv, "/sensors")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var sensors []sensorResponse
	require.NoError(t, json.Unmarshal(body, &sensors))
	require.Len(t, sensors, 3)
	for _, s := range sensors {
		assert.Zero(t, s.Value)
	}
}

func TestGetSensor(t *testing.T) {
	srv, dev := newTestServer(t)
	dev.HandleReport(kraken.StatusReportID,
		[]byte{0x04, 0x1e, 0x32, 0x0c, 0x80, 0x03, 0x20, 0, 0, 0, 0, 0, 0, 0, 0, 0})

	type testCase struct {
		name       string
		path       string
		wantStatus int
		want       sensorResponse
	}

	cases := []testCase{
		{
			name: "coolant", path: "/sensors/temp/0", wantStatus: http.StatusOK,
			want: sensorResponse{Kind: "temp", Index: 0, Label: "Coolant", Value: 35000, Unit: "millicelsius"},
		},
		{
			name: "fans", path: "/sensors/fan/0", wantStatus: http.StatusOK,
			want: sensorResponse{Kind: "fan", Index: 0, Label: "Fans", Value: 3200, Unit: "rpm"},
		},
		{
			name: "pump", path: "/sensors/fan/1", wantStatus: http.StatusOK,
			want: sensorResponse{Kind: "fan", Index: 1, Label: "Pump", Value: 800, Unit: "rpm"},
		},
		{name: "fan index out of range", path: "/sensors/fan/2", wantStatus: http.StatusNotFound},
		{name: "unknown kind", path: "/sensors/pressure/0", wantStatus: http.StatusNotFound},
		{name: "non-integer index", path: "/sensors/fan/x", wantStatus: http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := get(t, srv, tc.path)
			require.Equal(t, tc.wantStatus, resp.StatusCode)
			if tc.wantStatus != http.StatusOK {
				return
			}
			var got sensorResponse
			require.NoError(t, json.Unmarshal(body, &got))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGetDevice(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, body := get(t, srv, "/device")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got struct {
		Name     string `json:"name"`
		Channels int    `json:"channels"`
	}
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "krakenx", got.Name)
	assert.Equal(t, 3, got.Channels)
}

func TestNoWriteSurface(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		req := httptest.NewRequest(method, "/sensors/fan/0", nil)
		resp, err := srv.App().Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode, method)
		_ = resp.Body.Close()
	}
}
