// Package validation holds the per-route request body rule sets. Each rule
// set is a fiber middleware that parses and validates the body before the
// handler runs, short-circuiting with a 422 listing one message per bad
// field.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// report errors under the json field name, not the Go field name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// SpotBody carries the writable listing fields. Numeric fields are pointers
// so that zero values (lat 0, price 0) count as present.
type SpotBody struct {
	Address     string   `json:"address" validate:"required"`
	City        string   `json:"city" validate:"required"`
	State       string   `json:"state" validate:"required"`
	Country     string   `json:"country" validate:"required"`
	Lat         *float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lng         *float64 `json:"lng" validate:"required,gte=-180,lte=180"`
	Name        string   `json:"name" validate:"required,max=50"`
	Description string   `json:"description" validate:"required"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
}

type ReviewBody struct {
	Review string `json:"review" validate:"required"`
	Stars  *int   `json:"stars" validate:"required,gte=1,lte=5"`
}

var spotMessages = map[string]string{
	"address":     "Street address is required",
	"city":        "City is required",
	"state":       "State is required",
	"country":     "Country is required",
	"lat":         "Latitude must be within -90 and 90",
	"lng":         "Longitude must be within -180 and 180",
	"name":        "Name must be less than 50 characters",
	"description": "Description is required",
	"price":       "Price per day must be a positive number",
}

var reviewMessages = map[string]string{
	"review": "Review text is required",
	"stars":  "Stars must be an integer from 1 to 5",
}

// ValidateSpotBody rejects malformed spot payloads before the handler runs.
func ValidateSpotBody() fiber.Handler {
	return bodyValidator(func() interface{} { return new(SpotBody) }, spotMessages)
}

// ValidateReviewBody rejects malformed review payloads before the handler runs.
func ValidateReviewBody() fiber.Handler {
	return bodyValidator(func() interface{} { return new(ReviewBody) }, reviewMessages)
}

func bodyValidator(newBody func() interface{}, messages map[string]string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := newBody()

		if err := c.BodyParser(body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid request body",
			})
		}

		if err := validate.Struct(body); err != nil {
			fieldErrors := map[string]string{}

			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) {
				for _, fe := range verrs {
					if msg, ok := messages[fe.Field()]; ok {
						fieldErrors[fe.Field()] = msg
					} else {
						fieldErrors[fe.Field()] = "Invalid value"
					}
				}
			}

			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"message": "Validation error",
				"errors":  fieldErrors,
			})
		}

		return c.Next()
	}
}
