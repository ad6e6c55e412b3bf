package routes

import (
	"naebak/content-service/internal/api"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes registers everything under /api. Routes are declared
// without a trailing slash; StripSlashes on the root router makes both forms match.
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies) {
	r.Route("/api", func(a chi.Router) {
		a.Route("/representatives", func(reps chi.Router) {
			reps.Get("/", api.ListRepresentativesHandler(deps))
			reps.Post("/", api.CreateRepresentativeHandler(deps))
			reps.Post("/create", api.CreateRepresentativeHandler(deps))
			reps.Get("/{slug}", api.GetRepresentativeHandler(deps))
			reps.Put("/{slug}", api.UpdateRepresentativeHandler(deps))
			reps.Patch("/{slug}", api.UpdateRepresentativeHandler(deps))
			reps.Delete("/{slug}", api.DeleteRepresentativeHandler(deps))
		})

		a.Get("/search", api.SearchHandler(deps))
		a.Get("/statistics", api.StatisticsHandler(deps))
		a.Get("/filter-options", api.FilterOptionsHandler(deps))

		a.Route("/governorates", func(g chi.Router) {
			g.Get("/", api.ListGovernoratesHandler(deps))
			g.Post("/", api.CreateGovernorateHandler(deps))
			g.Get("/{id}", api.GetGovernorateHandler(deps))
			g.Put("/{id}", api.UpdateGovernorateHandler(deps))
			g.Patch("/{id}", api.UpdateGovernorateHandler(deps))
			g.Delete("/{id}", api.DeleteGovernorateHandler(deps))
		})

		a.Route("/districts", func(d chi.Router) {
			d.Get("/", api.ListDistrictsHandler(deps))
			d.Post("/", api.CreateDistrictHandler(deps))
			d.Get("/{id}", api.GetDistrictHandler(deps))
			d.Put("/{id}", api.UpdateDistrictHandler(deps))
			d.Patch("/{id}", api.UpdateDistrictHandler(deps))
			d.Delete("/{id}", api.DeleteDistrictHandler(deps))
		})

		a.Route("/parties", func(p chi.Router) {
			p.Get("/", api.ListPartiesHandler(deps))
			p.Post("/", api.CreatePartyHandler(deps))
			p.Get("/{id}", api.GetPartyHandler(deps))
			p.Put("/{id}", api.UpdatePartyHandler(deps))
			p.Patch("/{id}", api.UpdatePartyHandler(deps))
			p.Delete("/{id}", api.DeletePartyHandler(deps))
		})

		a.Get("/pages", api.ListPagesHandler(deps))
		a.Get("/pages/{page_type}", api.GetPageHandler(deps))
		a.Put("/admin/pages/{page_type}", api.UpsertPageHandler(deps))
		a.Patch("/admin/pages/{page_type}", api.UpsertPageHandler(deps))

		a.Route("/banners", func(b chi.Router) {
			b.Get("/", api.ListBannersHandler(deps))
			b.Post("/", api.CreateBannerHandler(deps))
			b.Post("/create", api.CreateBannerHandler(deps))
			b.Get("/default", api.DefaultBannerHandler(deps))
			b.Get("/{id}", api.GetBannerHandler(deps))
			b.Put("/{id}", api.UpdateBannerHandler(deps))
			b.Patch("/{id}", api.UpdateBannerHandler(deps))
			b.Delete("/{id}", api.DeleteBannerHandler(deps))
		})

		a.Route("/colors", func(c chi.Router) {
			c.Get("/", api.ListColorsHandler(deps))
			c.Get("/scheme", api.ColorSchemeHandler(deps))
			c.Get("/{color_type}", api.GetColorHandler(deps))
			c.Put("/{color_type}", api.UpsertColorHandler(deps))
			c.Patch("/{color_type}", api.UpsertColorHandler(deps))
		})

		a.Get("/settings", api.GetSettingsHandler(deps))
		a.Put("/settings", api.UpdateSettingsHandler(deps))
		a.Patch("/settings", api.UpdateSettingsHandler(deps))
		a.Post("/settings", api.CreateSettingsHandler(deps))

		a.Route("/faq", func(f chi.Router) {
			f.Get("/", api.ListFAQHandler(deps))
			f.Post("/", api.CreateFAQHandler(deps))
			f.Get("/{id}", api.GetFAQHandler(deps))
			f.Put("/{id}", api.UpdateFAQHandler(deps))
			f.Patch("/{id}", api.UpdateFAQHandler(deps))
			f.Delete("/{id}", api.DeleteFAQHandler(deps))
		})

		a.Route("/events", func(e chi.Router) {
			e.Get("/", api.ListEventsHandler(deps))
			e.Post("/", api.CreateEventHandler(deps))
			e.Get("/{id}", api.GetEventHandler(deps))
			e.Put("/{id}", api.UpdateEventHandler(deps))
			e.Patch("/{id}", api.UpdateEventHandler(deps))
			e.Delete("/{id}", api.DeleteEventHandler(deps))
		})
	})
}
