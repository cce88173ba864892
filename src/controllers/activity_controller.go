package controllers

import (
	"Backend-Mergington/src/directory"
	"Backend-Mergington/src/models"
	"Backend-Mergington/src/services/activities"
	"Backend-Mergington/src/utils"
	"errors"
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"
)

// ActivityController - fiber handler ทั้งหมดของ Activity API
// รับ service ผ่าน constructor (ไม่ใช้ global state) เพื่อให้ test แยก state กันได้
type ActivityController struct {
	service *activities.Service
}

func NewActivityController(service *activities.Service) *ActivityController {
	return &ActivityController{service: service}
}

// GetAllActivities godoc
// @Summary      Get all activities
// @Description  Get the full activity directory with participants
// @Tags         activities
// @Produce      json
// @Success      200  {object}  models.ActivityDirectory
// @Router       /activities [get]
func (ctrl *ActivityController) GetAllActivities(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(ctrl.service.GetAllActivities())
}

// SignupForActivity godoc
// @Summary      Sign up for an activity
// @Description  Sign a student up for an activity by email
// @Tags         activities
// @Produce      json
// @Param        activityName  path   string  true  "Activity name"
// @Param        email         query  string  true  "Student email"
// @Success      200  {object}  models.MessageResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /activities/{activityName}/signup [post]
func (ctrl *ActivityController) SignupForActivity(c *fiber.Ctx) error {
	// decode ชื่อกิจกรรมจาก path เช่น "Chess%20Club" -> "Chess Club"
	activityName, err := url.PathUnescape(c.Params("activityName"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid activity name")
	}

	// email เป็น string ธรรมดา ไม่ validate format (ตาม behavior เดิมของระบบ)
	email := c.Query("email")
	if email == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "email is required")
	}

	if err := ctrl.service.Signup(activityName, email); err != nil {
		switch {
		case errors.Is(err, directory.ErrActivityNotFound):
			return utils.HandleError(c, fiber.StatusNotFound, "Activity not found")
		case errors.Is(err, directory.ErrAlreadySignedUp):
			return utils.HandleError(c, fiber.StatusBadRequest, "Student is already signed up for this activity")
		case errors.Is(err, directory.ErrActivityFull):
			return utils.HandleError(c, fiber.StatusBadRequest, "Activity is full")
		default:
			return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	return c.Status(fiber.StatusOK).JSON(models.MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, activityName),
	})
}

// UnregisterFromActivity godoc
// @Summary      Remove a participant from an activity
// @Description  Remove a student from an activity by email
// @Tags         activities
// @Produce      json
// @Param        activityName  path  string  true  "Activity name"
// @Param        email         path  string  true  "Student email"
// @Success      200  {object}  models.MessageResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /activities/{activityName}/participants/{email} [delete]
func (ctrl *ActivityController) UnregisterFromActivity(c *fiber.Ctx) error {
	activityName, err := url.PathUnescape(c.Params("activityName"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid activity name")
	}

	email, err := url.PathUnescape(c.Params("email"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid email")
	}

	if err := ctrl.service.Unregister(activityName, email); err != nil {
		switch {
		case errors.Is(err, directory.ErrActivityNotFound):
			return utils.HandleError(c, fiber.StatusNotFound, "Activity not found")
		case errors.Is(err, directory.ErrParticipantNotFound):
			return utils.HandleError(c, fiber.StatusNotFound, "Participant not found in this activity")
		default:
			return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	return c.Status(fiber.StatusOK).JSON(models.MessageResponse{
		Message: fmt.Sprintf("Removed %s from %s", email, activityName),
	})
}

// HealthCheck godoc
// @Summary      Health check
// @Description  Check that the API is running
// @Tags         health
// @Produce      json
// @Success      200  {object}  models.HealthResponse
// @Router       /healthz [get]
func (ctrl *ActivityController) HealthCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(models.HealthResponse{
		Status:     "ok",
		Activities: ctrl.service.ActivityCount(),
	})
}
