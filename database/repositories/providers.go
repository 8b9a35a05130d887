package repositories

import (
	"github.com/l3montree-dev/parkwatch/shared"
	"go.uber.org/fx"
)

// Module provides all repository constructors as their interfaces
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewViolationRepository, fx.As(new(shared.ViolationRepository)))),
	fx.Provide(fx.Annotate(NewVehicleRepository, fx.As(new(shared.VehicleRepository)))),
	fx.Provide(fx.Annotate(NewEvidenceRepository, fx.As(new(shared.EvidenceRepository)))),
	fx.Provide(fx.Annotate(NewNotificationRepository, fx.As(new(shared.NotificationRepository)))),
	fx.Provide(fx.Annotate(NewAccountRepository, fx.As(new(shared.AccountRepository)))),
)
