package middlewares

import (
	"log/slog"
	"net/http"
	"runtime"

	"github.com/l3montree-dev/parkwatch/monitoring"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

func recovermiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) (returnErr error) {
			defer func() {
				if r := recover(); r != nil {
					if r == http.ErrAbortHandler {
						panic(r)
					}
					err, ok := r.(error)
					if !ok {
						err = errors.Errorf("%v", r)
					}

					stack := make([]byte, 4<<10) // 4 KB
					length := runtime.Stack(stack, false)
					slog.Error("recovered from panic in http handler", "stack", string(stack[:length]))
					monitoring.Alert("recovered from panic in http handler", err)

					returnErr = echo.NewHTTPError(500, "internal server error").WithInternal(err)
				}
			}()
			return next(ctx)
		}
	}
}
