package httpapi

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/covid-charts/internal/chart"
	"github.com/i474232898/covid-charts/internal/covid"
	"github.com/i474232898/covid-charts/internal/covid/providers"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *covid.Service, renderer chart.Renderer) {
	v1 := app.Group("/api/v1")

	v1.Get("/covid/history", func(c *fiber.Ctx) error {
		req, err := parseCountryQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		history, err := service.CountryHistory(c.Context(), req.Country)
		if err != nil {
			return mapServiceError(err)
		}

		return c.JSON(history)
	})

	app.Get("/dashboard", func(c *fiber.Ctx) error {
		req, err := parseCountryQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		history, err := service.CountryHistory(c.Context(), req.Country)
		if err != nil {
			return mapServiceError(err)
		}

		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return renderer.RenderDashboard(c.Response().BodyWriter(), history)
	})
}

// countryQuery holds query parameters identifying a country.
type countryQuery struct {
	Country string `validate:"required,min=2,max=60"`
}

func parseCountryQuery(c *fiber.Ctx) (countryQuery, error) {
	q := countryQuery{Country: c.Query("country")}

	if err := validate.Struct(q); err != nil {
		return q, err
	}

	return q, nil
}

// mapServiceError translates core and provider errors into HTTP errors. The
// specific cause (offending date string, unknown country) stays in the
// response body so bad upstream data is diagnosable from the client side.
func mapServiceError(err error) error {
	var parseErr *covid.ParseError
	var dupErr *covid.DuplicateDateError

	switch {
	case errors.Is(err, providers.ErrCountryNotFound), errors.Is(err, covid.ErrEmptyInput):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.As(err, &parseErr), errors.As(err, &dupErr):
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	default:
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	}
}
