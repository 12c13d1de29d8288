package campaignValidator

import (
	"crowdfund/middleware"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type CampaignRequest struct {
	Title       string    `json:"title" validate:"required,min=3,max=255"`
	Description string    `json:"description"`
	Goal        float64   `json:"goal" validate:"required,gt=0"`
	Deadline    time.Time `json:"deadline"`
	Category    string    `json:"category" validate:"omitempty,oneof=Education Healthcare Environment Technology Arts 'Social Cause' General"`
}

// UpdateCampaignRequest carries a partial update; nil means "leave as is".
type UpdateCampaignRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Goal        *float64   `json:"goal"`
	Raised      *float64   `json:"raised"`
	Deadline    *time.Time `json:"deadline"`
	Category    *string    `json:"category"`
	Status      *string    `json:"status"`
}

// Create validates a new campaign submission
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CampaignRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fe := range err.(validator.ValidationErrors) {
				switch fe.Field() {
				case "Title":
					errors["title"] = "Title is required (3-255 characters)!"
				case "Goal":
					errors["goal"] = "Goal must be greater than 0!"
				case "Category":
					errors["category"] = "Unknown category!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCampaign", reqData)
		return c.Next()
	}
}

// Update validates a partial campaign update
func Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateCampaignRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Goal != nil && *reqData.Goal <= 0 {
			errors["goal"] = "Goal must be greater than 0!"
		}
		if reqData.Raised != nil && *reqData.Raised < 0 {
			errors["raised"] = "Raised cannot be negative!"
		}
		if reqData.Status != nil {
			switch *reqData.Status {
			case "pending", "approved", "rejected":
			default:
				errors["status"] = "Status must be pending, approved or rejected!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCampaignUpdate", reqData)
		return c.Next()
	}
}
