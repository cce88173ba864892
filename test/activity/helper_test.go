package activity

import (
	"Backend-Mergington/src/controllers"
	"Backend-Mergington/src/directory"
	"Backend-Mergington/src/models"
	"Backend-Mergington/src/observability"
	"Backend-Mergington/src/routes"
	"Backend-Mergington/src/services/activities"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newActivityApp ประกอบ app ใหม่พร้อม seed สด - ทุก test แยก state กัน
func newActivityApp() *fiber.App {
	dir := directory.New(activities.DefaultActivities())
	service := activities.NewService(dir, zap.NewNop())
	ctrl := controllers.NewActivityController(service)

	app := fiber.New()
	routes.InitRoutes(app, ctrl)
	return app
}

// newMetricsApp เพิ่ม /metrics เหมือนใน main.go
func newMetricsApp() *fiber.App {
	app := newActivityApp()
	app.Get("/metrics", observability.MetricsHandler())
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, out))
}

func getActivities(t *testing.T, app *fiber.App) models.ActivityDirectory {
	t.Helper()
	resp := doRequest(t, app, http.MethodGet, "/activities")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var all models.ActivityDirectory
	decodeJSON(t, resp, &all)
	return all
}
