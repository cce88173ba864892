package routes

import (
	"Backend-Mergington/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// activityRoutes กำหนดเส้นทางสำหรับ Activity API
func activityRoutes(app *fiber.App, ctrl *controllers.ActivityController) {
	activityRoutes := app.Group("/activities")
	activityRoutes.Get("/", ctrl.GetAllActivities)
	activityRoutes.Post("/:activityName/signup", ctrl.SignupForActivity)
	activityRoutes.Delete("/:activityName/participants/:email", ctrl.UnregisterFromActivity)
}
