package port

import "github.com/lumen-shell/lumen/internal/domain/entity"

// FrameThrottler throttles compositor frame production for the windows whose
// previews are shown while cycling. The controller calls each method exactly
// once per cycle session.
type FrameThrottler interface {
	AddWindowsUnderThrottle(ids []entity.WindowID, targetFPS int)
	StopThrottling()
}
