package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/javi102/league-companion/internal/api/handlers"
	"github.com/javi102/league-companion/internal/api/middleware"
	"github.com/javi102/league-companion/internal/service"
	"github.com/sirupsen/logrus"
)

func NewRouter(services *service.Services, log *logrus.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth, log)
	championHandler := handlers.NewChampionHandler(services.Champion, log)
	itemHandler := handlers.NewItemHandler(services.Item, log)
	buildHandler := handlers.NewBuildHandler(services.Build, log)
	matchupHandler := handlers.NewMatchupHandler(services.Matchup, log)
	recHandler := handlers.NewRecommendationHandler(services.Recommendation, log)

	// Authentication
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)

	// Champions and the two stats datasets
	r.Get("/import-champions", championHandler.Import)
	r.Get("/champions", championHandler.List)
	r.Get("/import-stats2", championHandler.ImportInfo)
	r.Get("/stats2", championHandler.ListInfo)

	// Items
	r.Get("/import-items", itemHandler.Import)
	r.Get("/items", itemHandler.List)

	// Personalized builds
	r.Get("/get-build", buildHandler.Get)
	r.Post("/save-build", buildHandler.Save)

	// Matchups
	r.Post("/counter-matchups", matchupHandler.SaveCounter)
	r.Get("/counter-matchups", matchupHandler.ListCounter)
	r.Post("/matchups", matchupHandler.SaveEven)
	r.Get("/matchups", matchupHandler.ListEven)
	r.Post("/good-matchups", matchupHandler.SaveGood)
	r.Get("/good-matchups", matchupHandler.ListGood)

	// Item recommendations
	r.Post("/save-core-items", recHandler.SaveCoreItems)
	r.Get("/core-items", recHandler.ListCoreItems)
	r.Post("/save-objetos", recHandler.SaveItemRec)
	r.Get("/objetos", recHandler.ListItemRecs)
	r.Post("/save-starter-items", recHandler.SaveStarterItems)
	r.Get("/starter-items", recHandler.ListStarterItems)
	r.Post("/save-botas", recHandler.SaveBoots)
	r.Get("/botas", recHandler.ListBoots)

	return r
}
