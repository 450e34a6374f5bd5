package internal

import (
	"dialogd/internal/controllers"
	"dialogd/internal/providers"
	"net/http"
)

func InitRoutes(dialogController *controllers.DialogController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/dialog", http.HandlerFunc(dialogController.GetDialog))
	routers.Get("/segments", http.HandlerFunc(dialogController.GetSegments))
	routers.Get("/summary", http.HandlerFunc(dialogController.GetSummary))
	routers.Post("/rotate", http.HandlerFunc(dialogController.Rotate))
	return routers
}
