package ggui

import (
	"context"
	"errors"

	"github.com/gogpu/ggui/surface"
)

// Run dispatches d until every surface is gone, the display goes idle or
// ctx is done. Dispatch is the only blocking call of the event loop; all
// syncing and drawing happens inside it on this goroutine.
func Run(ctx context.Context, d surface.Display) error {
	for {
		err := d.Dispatch(ctx)
		switch {
		case err == nil:
		case errors.Is(err, surface.ErrNoSurfaces), errors.Is(err, surface.ErrIdle):
			Logger().Debug("ggui: event loop finished", "reason", err)
			return nil
		default:
			return err
		}
	}
}
