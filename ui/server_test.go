package ui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spacexdash/domain/core"
	"spacexdash/domain/launch"
	"spacexdash/internal/config"
	"spacexdash/internal/profiling"
	"spacexdash/ui/middleware"
	"spacexdash/ui/services"
)

func newTestService() *services.DataService {
	snap := &launch.Snapshot{
		ID:          core.NewDatasetID(),
		Source:      "test.csv",
		Fingerprint: core.NewHash([]byte("test")),
		LoadedAt:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Data: launch.NewDataset([]launch.Record{
			{Site: "Cape Canaveral", PayloadMassKg: 0, Class: launch.Failure, BoosterCategory: "v1.0"},
			{Site: "Vandenberg", PayloadMassKg: 500, Class: launch.Failure, BoosterCategory: "v1.1"},
			{Site: "Kennedy Space Center", PayloadMassKg: 2490, Class: launch.Success, BoosterCategory: "FT"},
			{Site: "Cape Canaveral", PayloadMassKg: 3170, Class: launch.Success, BoosterCategory: "FT"},
		}),
	}
	return services.NewDataService(snap, config.DefaultLayout(), profiling.NewProfiler(0.95))
}

// testHandlers returns both router flavours so every endpoint is checked on each.
func testHandlers(t *testing.T) map[string]http.Handler {
	t.Helper()
	svc := newTestService()

	server, err := NewServer(svc, ":0", gin.TestMode)
	require.NoError(t, err)
	app, err := NewApp(svc, Config{})
	require.NoError(t, err)

	return map[string]http.Handler{"gin": server.Handler(), "chi": app.Handler()}
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeFigure(t *testing.T, rec *httptest.ResponseRecorder) services.Figure {
	t.Helper()
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var fig services.Figure
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fig))
	return fig
}

func TestIndexPage(t *testing.T) {
	for name, h := range testHandlers(t) {
		t.Run(name, func(t *testing.T) {
			rec := get(h, "/")

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
			body := rec.Body.String()
			assert.Contains(t, body, "SpaceX Launch Records Dashboard")
			assert.Contains(t, body, `id="site-dropdown"`)
			assert.Contains(t, body, "Guiana Space Centre")
		})
	}
}

func TestStaticAssets(t *testing.T) {
	for name, h := range testHandlers(t) {
		t.Run(name, func(t *testing.T) {
			rec := get(h, "/static/dashboard.js")

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), "Plotly.react")
		})
	}
}

func TestSuccessPieEndpoint(t *testing.T) {
	for name, h := range testHandlers(t) {
		t.Run(name, func(t *testing.T) {
			fig := decodeFigure(t, get(h, "/api/charts/success-pie?site=ALL"))

			require.Len(t, fig.Data, 1)
			assert.Equal(t, []int{2, 2}, fig.Data[0].Values)
			assert.Equal(t, "Success Counts for ALL Launch Site", fig.Layout.Title.Text)

			fig = decodeFigure(t, get(h, "/api/charts/success-pie?site=Vandenberg"))
			assert.Equal(t, []string{"0"}, fig.Data[0].Labels)
			assert.Equal(t, []int{1}, fig.Data[0].Values)
		})
	}
}

func TestPayloadScatterEndpoint(t *testing.T) {
	for name, h := range testHandlers(t) {
		t.Run(name, func(t *testing.T) {
			fig := decodeFigure(t, get(h, "/api/charts/payload-scatter?site=ALL&payload_min=400&payload_max=2500"))

			require.Len(t, fig.Data, 2)
			assert.Equal(t, "v1.1", fig.Data[0].Name)
			assert.Equal(t, []float64{2490}, fig.Data[1].X)
		})
	}
}

func TestPayloadScatterDefaultsToSliderRange(t *testing.T) {
	for name, h := range testHandlers(t) {
		t.Run(name, func(t *testing.T) {
			fig := decodeFigure(t, get(h, "/api/charts/payload-scatter"))

			total := 0
			for _, tr := range fig.Data {
				total += len(tr.X)
			}
			assert.Equal(t, 4, total)
		})
	}
}

func TestEmptySelectionIsStillAFigure(t *testing.T) {
	for name, h := range testHandlers(t) {
		t.Run(name, func(t *testing.T) {
			fig := decodeFigure(t, get(h, "/api/charts/payload-scatter?site=Guiana%20Space%20Centre"))
			assert.Empty(t, fig.Data)
			assert.NotEmpty(t, fig.Layout.Annotations)

			fig = decodeFigure(t, get(h, "/api/charts/payload-scatter?payload_min=3000&payload_max=1000"))
			assert.Empty(t, fig.Data)
		})
	}
}

func TestBadInputIsRejected(t *testing.T) {
	targets := []string{
		"/api/charts/success-pie?site=Baikonur",
		"/api/charts/payload-scatter?payload_min=abc",
		"/api/charts/payload-scatter?payload_max=-5",
		"/api/summary?site=Baikonur",
		"/api/export.xlsx?payload_min=x",
	}
	for name, h := range testHandlers(t) {
		for _, target := range targets {
			t.Run(name+" "+target, func(t *testing.T) {
				rec := get(h, target)

				assert.Equal(t, http.StatusBadRequest, rec.Code)
				var body map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, "INVALID_INPUT", body["code"])
			})
		}
	}
}

func TestControlsEndpoint(t *testing.T) {
	for name, h := range testHandlers(t) {
		t.Run(name, func(t *testing.T) {
			rec := get(h, "/api/controls")

			require.Equal(t, http.StatusOK, rec.Code)
			var controls services.Controls
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &controls))
			assert.Equal(t, 3170, controls.Slider.Max)
			assert.Equal(t, [2]int{0, 3170}, controls.Slider.Value)
			assert.Equal(t, "0", controls.Slider.Marks[0])
			assert.Equal(t, "3000", controls.Slider.Marks[3000])
			assert.Equal(t, launch.AllSitesValue, controls.Dropdown.Value)
		})
	}
}

func TestSummaryEndpoint(t *testing.T) {
	for name, h := range testHandlers(t) {
		t.Run(name, func(t *testing.T) {
			rec := get(h, "/api/summary?site=Cape%20Canaveral")

			require.Equal(t, http.StatusOK, rec.Code)
			var profile profiling.Profile
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
			assert.Equal(t, 2, profile.Payload.Count)
			assert.InDelta(t, 0.5, profile.SuccessRate, 1e-9)
		})
	}
}

func TestExportEndpoint(t *testing.T) {
	for name, h := range testHandlers(t) {
		t.Run(name, func(t *testing.T) {
			rec := get(h, "/api/export.xlsx?site=ALL")

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, exportContentType, rec.Header().Get("Content-Type"))
			assert.Equal(t, exportDisposition, rec.Header().Get("Content-Disposition"))
			assert.NotZero(t, rec.Body.Len())
		})
	}
}

func TestRequestIDHeader(t *testing.T) {
	for name, h := range testHandlers(t) {
		t.Run(name, func(t *testing.T) {
			rec := get(h, "/healthz")
			assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))

			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			req.Header.Set(middleware.RequestIDHeader, "abc-123")
			rec = httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, "abc-123", rec.Header().Get(middleware.RequestIDHeader))
		})
	}
}
