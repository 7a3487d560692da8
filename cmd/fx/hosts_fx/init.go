package hosts_fx

import (
	"go.uber.org/fx"

	"github.com/aniket856/sanskriti/internal/services"
)

var Module = fx.Provide(provideHostsService)

func provideHostsService() services.HostsServiceInterface {
	return services.NewHostsService()
}
