package internal

import (
	"github.com/BrandonKowalski/marquee/pkg/marquee/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// Event is a mapped input event.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
	Repeat  bool
}

var (
	controllers   = map[sdl.JoystickID]*sdl.GameController{}
	backEventType uint32
)

var keyboardMapping = map[sdl.Keycode]constants.VirtualButton{
	sdl.K_UP:        constants.VirtualButtonUp,
	sdl.K_DOWN:      constants.VirtualButtonDown,
	sdl.K_LEFT:      constants.VirtualButtonLeft,
	sdl.K_RIGHT:     constants.VirtualButtonRight,
	sdl.K_RETURN:    constants.VirtualButtonA,
	sdl.K_KP_ENTER:  constants.VirtualButtonA,
	sdl.K_a:         constants.VirtualButtonA,
	sdl.K_ESCAPE:    constants.VirtualButtonB,
	sdl.K_BACKSPACE: constants.VirtualButtonB,
	sdl.K_AC_BACK:   constants.VirtualButtonB,
	sdl.K_b:         constants.VirtualButtonB,
	sdl.K_SPACE:     constants.VirtualButtonX,
	sdl.K_x:         constants.VirtualButtonX,
	sdl.K_y:         constants.VirtualButtonY,
	sdl.K_TAB:       constants.VirtualButtonSelect,
	sdl.K_s:         constants.VirtualButtonStart,
}

var controllerMapping = map[sdl.GameControllerButton]constants.VirtualButton{
	sdl.CONTROLLER_BUTTON_DPAD_UP:    constants.VirtualButtonUp,
	sdl.CONTROLLER_BUTTON_DPAD_DOWN:  constants.VirtualButtonDown,
	sdl.CONTROLLER_BUTTON_DPAD_LEFT:  constants.VirtualButtonLeft,
	sdl.CONTROLLER_BUTTON_DPAD_RIGHT: constants.VirtualButtonRight,
	sdl.CONTROLLER_BUTTON_A:          constants.VirtualButtonA,
	sdl.CONTROLLER_BUTTON_B:          constants.VirtualButtonB,
	sdl.CONTROLLER_BUTTON_X:          constants.VirtualButtonX,
	sdl.CONTROLLER_BUTTON_Y:          constants.VirtualButtonY,
	sdl.CONTROLLER_BUTTON_START:      constants.VirtualButtonStart,
	sdl.CONTROLLER_BUTTON_BACK:       constants.VirtualButtonSelect,
}

func initInput() error {
	backEventType = sdl.RegisterEvents(1)
	if backEventType == ^uint32(0) {
		return NewInfraError("register_events", sdl.GetError())
	}

	for i := 0; i < sdl.NumJoysticks(); i++ {
		openController(i)
	}
	return nil
}

func openController(index int) {
	if !sdl.IsGameController(index) {
		return
	}
	gc := sdl.GameControllerOpen(index)
	if gc == nil {
		GetInternalLogger().Warn("Failed to open controller", "index", index, "error", sdl.GetError())
		return
	}
	id := gc.Joystick().InstanceID()
	controllers[id] = gc
	GetInternalLogger().Debug("Controller connected", "name", gc.Name(), "id", id)
}

func closeControllers() {
	for id, gc := range controllers {
		gc.Close()
		delete(controllers, id)
	}
}

// PostBack queues a B press from outside the SDL event loop. Safe to call
// from any goroutine.
func PostBack() {
	if backEventType == 0 {
		return
	}
	if _, err := sdl.PushEvent(&sdl.UserEvent{Type: backEventType}); err != nil {
		GetInternalLogger().Warn("Failed to post back event", "error", err)
	}
}

func newEvent(button constants.VirtualButton, pressed, repeat bool) *Event {
	if pressed && !repeat {
		GetInternalLogger().Debug("Button pressed", "button", button.GetName())
	}
	return &Event{Button: button, Pressed: pressed, Repeat: repeat}
}

// ProcessSDLEvent maps an SDL event to an Event. It returns nil for events
// that are not input, after handling controller hotplug on the way.
func ProcessSDLEvent(event sdl.Event) *Event {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		button, ok := keyboardMapping[e.Keysym.Sym]
		if !ok {
			return nil
		}
		return newEvent(button, e.State == sdl.PRESSED, e.Repeat != 0)

	case *sdl.ControllerButtonEvent:
		button, ok := controllerMapping[sdl.GameControllerButton(e.Button)]
		if !ok {
			return nil
		}
		return newEvent(button, e.State == sdl.PRESSED, false)

	case *sdl.ControllerDeviceEvent:
		switch e.Type {
		case sdl.CONTROLLERDEVICEADDED:
			openController(int(e.Which))
		case sdl.CONTROLLERDEVICEREMOVED:
			if gc, ok := controllers[e.Which]; ok {
				gc.Close()
				delete(controllers, e.Which)
			}
		}
		return nil

	case *sdl.UserEvent:
		if e.Type == backEventType {
			return &Event{Button: constants.VirtualButtonB, Pressed: true}
		}
	}
	return nil
}
