package httpapi

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"skibulletin/internal/store"
	"skibulletin/web"
)

// RegisterRoutes wires the dashboard handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, st store.Store) {
	app.Get("/", func(c *fiber.Ctx) error {
		var data web.PageData

		doc, err := st.Load()
		switch {
		case errors.Is(err, store.ErrNotFound):
			data.Error = "Weather data not available yet. Please wait for the scraper to run."
		case err != nil:
			log.Error().Err(err).Msg("reading stored report failed")
			data.Error = "Could not load weather data."
		default:
			data.Report = &doc
		}

		page, err := web.Render(data)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to render dashboard")
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Send(page)
	})

	app.Get("/api/data", func(c *fiber.Ctx) error {
		doc, err := st.Load()
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "weather data not available yet")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to read weather data")
		}
		return c.JSON(doc)
	})
}
