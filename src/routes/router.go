package routes

import (
	"Backend-Mergington/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func InitRoutes(app *fiber.App, ctrl *controllers.ActivityController) {
	// รวม routes จากแต่ละ module
	activityRoutes(app, ctrl)

	// Route เช็คว่า API ทำงานอยู่
	app.Get("/healthz", ctrl.HealthCheck)

	// หน้าแรก redirect ไปหน้า UI ใน static
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/static/index.html", fiber.StatusTemporaryRedirect)
	})
}
