package asset

import (
	"github.com/smallbiznis/gridplant/internal/asset/repository"
	"github.com/smallbiznis/gridplant/internal/asset/service"
	"go.uber.org/fx"
)

var Module = fx.Module("asset.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
