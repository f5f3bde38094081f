package api

import (
	"github.com/rpupo63/portfolio-site-backend/content"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(service *content.Service) *routeHandlers {
	return &routeHandlers{
		publicHandler:  newPublicHandler(service),
		projectHandler: newProjectHandler(service),
		skillHandler:   newSkillHandler(service),
		aboutHandler:   newAboutHandler(service),
	}
}
