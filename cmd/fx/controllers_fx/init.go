package controllers_fx

import (
	"go.uber.org/fx"

	"github.com/aniket856/sanskriti/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewHostsController))
