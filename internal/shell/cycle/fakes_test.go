package cycle_test

import (
	"context"
	"testing"
	"time"

	portmocks "github.com/lumen-shell/lumen/internal/application/port/mocks"
	"github.com/lumen-shell/lumen/internal/application/usecase"
	"github.com/lumen-shell/lumen/internal/domain/entity"
	"github.com/lumen-shell/lumen/internal/logging"
	"github.com/lumen-shell/lumen/internal/shell/cycle"
	"github.com/stretchr/testify/mock"
)

func testContext() context.Context {
	logger := logging.New(logging.Config{Level: logging.ParseLevel("debug"), Format: "console"})
	return logging.WithContext(context.Background(), logger)
}

type fakeWindowSet struct {
	windows []entity.WindowInfo
}

func (f *fakeWindowSet) Windows(_ context.Context) []entity.WindowInfo {
	return f.windows
}

type fakeHistory map[entity.WindowID]time.Time

func (f fakeHistory) LastActivated(id entity.WindowID) (time.Time, bool) {
	t, ok := f[id]
	return t, ok
}

type fakeShellState struct {
	locked     bool
	modal      bool
	fullscreen bool
}

func (f *fakeShellState) ScreenLocked() bool           { return f.locked }
func (f *fakeShellState) SystemModalOpen() bool        { return f.modal }
func (f *fakeShellState) ActiveWindowFullscreen() bool { return f.fullscreen }

type fakePrefs struct {
	perDesk  bool
	setErr   error
	setCalls []bool
}

func (f *fakePrefs) AltTabPerActiveDesk(_ context.Context) bool { return f.perDesk }

func (f *fakePrefs) SetAltTabPerActiveDesk(_ context.Context, perDesk bool) error {
	f.setCalls = append(f.setCalls, perDesk)
	if f.setErr != nil {
		return f.setErr
	}
	f.perDesk = perDesk
	return nil
}

func (f *fakePrefs) OnChange(func(bool)) {}

type fakeThrottler struct {
	addCalls  int
	stopCalls int
	lastIDs   []entity.WindowID
	lastFPS   int
}

func (f *fakeThrottler) AddWindowsUnderThrottle(ids []entity.WindowID, targetFPS int) {
	f.addCalls++
	f.lastIDs = ids
	f.lastFPS = targetFPS
}

func (f *fakeThrottler) StopThrottling() { f.stopCalls++ }

type recordingAnnouncer struct {
	alerts []string
}

func (r *recordingAnnouncer) Announce(text string) {
	r.alerts = append(r.alerts, text)
}

func (r *recordingAnnouncer) last() string {
	if len(r.alerts) == 0 {
		return ""
	}
	return r.alerts[len(r.alerts)-1]
}

type fakeFilterHost struct {
	installs int
	removes  int
}

func (f *fakeFilterHost) InstallEventFilter() { f.installs++ }
func (f *fakeFilterHost) RemoveEventFilter()  { f.removes++ }

// fixture wires a controller to recording fakes plus mocks for the
// collaborators whose call arguments matter.
type fixture struct {
	windowSet *fakeWindowSet
	history   fakeHistory

	// activeDesk, deskCount and desksModified feed the desk mock's default
	// expectations so tests can flip them mid-scenario.
	activeDesk    int
	deskCount     int
	desksModified bool

	desks *portmocks.MockDeskCoordinator
	shell     *fakeShellState
	prefs     *fakePrefs
	throttler *fakeThrottler
	announcer *recordingAnnouncer
	activator *portmocks.MockWindowActivator
	metrics   *portmocks.MockCycleMetrics
	host      *fakeFilterHost

	ctrl *cycle.Controller
}

func newFixture(t *testing.T, windows []entity.WindowInfo) *fixture {
	f := &fixture{
		windowSet: &fakeWindowSet{windows: windows},
		history:   fakeHistory{},
		desks:     portmocks.NewMockDeskCoordinator(t),
		shell:     &fakeShellState{},
		prefs:     &fakePrefs{},
		throttler: &fakeThrottler{},
		announcer: &recordingAnnouncer{},
		activator: portmocks.NewMockWindowActivator(t),
		metrics:   portmocks.NewMockCycleMetrics(t),
		host:      &fakeFilterHost{},
		deskCount: 4,
	}

	f.desks.EXPECT().AreDesksBeingModified().RunAndReturn(func() bool { return f.desksModified }).Maybe()
	f.desks.EXPECT().ActiveDeskIndex().RunAndReturn(func() int { return f.activeDesk }).Maybe()
	f.desks.EXPECT().DeskCount().RunAndReturn(func() int { return f.deskCount }).Maybe()

	source := usecase.NewBuildCycleCandidatesUseCase(f.windowSet, f.history)
	f.ctrl = cycle.NewController(cycle.ControllerDeps{
		Source:    source,
		Desks:     f.desks,
		Shell:     f.shell,
		Prefs:     f.prefs,
		Throttler: f.throttler,
		Announcer: f.announcer,
		Activator: f.activator,
		Metrics:   f.metrics,
		Host:      f.host,
	}, cycle.ControllerConfig{
		ThrottleFPS:         7,
		VisiblePreviewItems: 20,
	})
	return f
}

func (f *fixture) expectActivation(id entity.WindowID) {
	f.activator.EXPECT().ActivateWindow(mock.Anything, id).Return(nil)
}

func windowsMRU(titles ...string) []entity.WindowInfo {
	// Stack position mirrors MRU order so the builder's tie-break keeps the
	// declared order even without history entries.
	out := make([]entity.WindowInfo, len(titles))
	for i, title := range titles {
		out[i] = entity.WindowInfo{
			ID:            entity.WindowID(title),
			Title:         title,
			StackPosition: i,
		}
	}
	return out
}
