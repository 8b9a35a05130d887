package services

import (
	"github.com/l3montree-dev/parkwatch/shared"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(fx.Annotate(NewNotificationService, fx.As(new(shared.NotificationDispatcher)))),
	fx.Provide(fx.Annotate(NewViolationService, fx.As(new(shared.ViolationService)))),
	fx.Provide(fx.Annotate(NewAutoCloseService, fx.As(new(shared.AutoCloseService)))),
)
