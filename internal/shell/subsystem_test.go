package shell_test

import (
	"context"
	"testing"
	"time"

	"github.com/lumen-shell/lumen/internal/domain/entity"
	"github.com/lumen-shell/lumen/internal/infrastructure/config"
	"github.com/lumen-shell/lumen/internal/logging"
	"github.com/lumen-shell/lumen/internal/shell"
	"github.com/lumen-shell/lumen/internal/shell/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	logger := logging.New(logging.Config{Level: logging.ParseLevel("debug"), Format: "console"})
	return logging.WithContext(context.Background(), logger)
}

type hostFixture struct {
	windows    []entity.WindowInfo
	activated  []entity.WindowID
	installed  int
	removed    int
	prefsFn    func(bool)
	perDesk    bool
	fullscreen bool
}

func (h *hostFixture) Windows(context.Context) []entity.WindowInfo { return h.windows }

func (h *hostFixture) LastActivated(entity.WindowID) (time.Time, bool) {
	return time.Time{}, false
}

func (h *hostFixture) ActiveDeskIndex() int                   { return 0 }
func (h *hostFixture) DeskCount() int                         { return 1 }
func (h *hostFixture) ActivateDesk(context.Context, int) error { return nil }
func (h *hostFixture) AreDesksBeingModified() bool            { return false }

func (h *hostFixture) ScreenLocked() bool           { return false }
func (h *hostFixture) SystemModalOpen() bool        { return false }
func (h *hostFixture) ActiveWindowFullscreen() bool { return h.fullscreen }

func (h *hostFixture) AltTabPerActiveDesk(context.Context) bool { return h.perDesk }

func (h *hostFixture) SetAltTabPerActiveDesk(_ context.Context, perDesk bool) error {
	h.perDesk = perDesk
	return nil
}

func (h *hostFixture) OnChange(fn func(bool)) { h.prefsFn = fn }

func (h *hostFixture) AddWindowsUnderThrottle([]entity.WindowID, int) {}
func (h *hostFixture) StopThrottling()                                {}

func (h *hostFixture) Announce(string) {}

func (h *hostFixture) ActivateWindow(_ context.Context, id entity.WindowID) error {
	h.activated = append(h.activated, id)
	return nil
}

func (h *hostFixture) UnminimizeWindow(context.Context, entity.WindowID) error { return nil }

func (h *hostFixture) RecordDeskSwitchDistance(context.Context, int) error { return nil }

func (h *hostFixture) ContainsPoint(float64, float64) bool { return false }
func (h *hostFixture) ItemAt(float64, float64) (int, bool) { return 0, false }

func newSubsystem(h *hostFixture) *shell.Subsystem {
	return shell.New(testContext(), config.Defaults(), shell.Deps{
		Windows:   h,
		History:   h,
		Desks:     h,
		Shell:     h,
		Prefs:     h,
		Throttler: h,
		Announcer: h,
		Activator: h,
		Metrics:   h,
		View:      h,
	}, shell.HostHooks{
		InstallEventFilter: func() { h.installed++ },
		RemoveEventFilter:  func() { h.removed++ },
	})
}

func TestSubsystem_KeyboardSessionEndToEnd(t *testing.T) {
	ctx := testContext()
	h := &hostFixture{windows: []entity.WindowInfo{
		{ID: "terminal", Title: "terminal", StackPosition: 0},
		{ID: "editor", Title: "editor", StackPosition: 1},
		{ID: "browser", Title: "browser", StackPosition: 2},
	}}
	sub := newSubsystem(h)

	chord := input.KeyEvent{Key: input.KeyTab, Modifiers: input.ModAlt}
	require.True(t, sub.Filter.HandleKey(ctx, chord))
	require.True(t, sub.Controller.IsCycling())
	assert.Equal(t, 1, h.installed)

	require.True(t, sub.Filter.HandleKey(ctx, chord))
	require.True(t, sub.Filter.HandleKey(ctx, input.KeyEvent{Key: input.KeyAlt, Released: true}))

	assert.False(t, sub.Controller.IsCycling())
	assert.Equal(t, 1, h.removed)
	assert.Equal(t, []entity.WindowID{"browser"}, h.activated)
}

func TestSubsystem_FullscreenChordForwardedOncePerSession(t *testing.T) {
	ctx := testContext()
	h := &hostFixture{
		fullscreen: true,
		windows: []entity.WindowInfo{
			{ID: "game", Title: "game", StackPosition: 0},
			{ID: "editor", Title: "editor", StackPosition: 1},
			{ID: "browser", Title: "browser", StackPosition: 2},
		},
	}
	sub := newSubsystem(h)

	chord := input.KeyEvent{Key: input.KeyTab, Modifiers: input.ModAlt}

	require.False(t, sub.Filter.HandleKey(ctx, chord),
		"first chord is forwarded to the fullscreen window")
	require.False(t, sub.Controller.IsCycling())

	require.True(t, sub.Filter.HandleKey(ctx, chord), "second chord starts cycling")
	require.True(t, sub.Controller.IsCycling())
	require.Equal(t, 1, sub.Controller.List().CurrentIndex())

	require.True(t, sub.Filter.HandleKey(ctx, chord),
		"third chord steps, it is not forwarded again")
	assert.Equal(t, 2, sub.Controller.List().CurrentIndex())

	require.True(t, sub.Filter.HandleKey(ctx, input.KeyEvent{Key: input.KeyAlt, Released: true}))
	assert.Equal(t, []entity.WindowID{"browser"}, h.activated)

	assert.False(t, sub.Filter.HandleKey(ctx, chord),
		"teardown re-arms forwarding for the next session")
	assert.False(t, sub.Controller.IsCycling())
}

func TestSubsystem_ExternalPreferenceChangeAppliesToLiveSession(t *testing.T) {
	ctx := testContext()
	h := &hostFixture{windows: []entity.WindowInfo{
		{ID: "a", StackPosition: 0},
		{ID: "b", StackPosition: 1},
	}}
	sub := newSubsystem(h)
	require.NotNil(t, h.prefsFn, "subsystem subscribes to preference changes")

	sub.Controller.StartCycling(ctx)
	require.Equal(t, entity.ModeAllDesks, sub.Controller.List().Mode())

	h.prefsFn(true)

	assert.Equal(t, entity.ModeCurrentDesk, sub.Controller.List().Mode())
	assert.True(t, h.perDesk)
}
