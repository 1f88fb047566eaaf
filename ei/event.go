// Package ei is the client-side high-level request/event translator of
// spec §4.7: it wraps a backend.Backend (RoleClient) plus a handshake
// driver, aggregates the setup burst of seat/device events behind their
// trailing "done", batches per-device input events behind "frame", tracks
// serials, auto-acks pings, and keeps touch bookkeeping (max 16 concurrent
// touches per device).
//
// This completes, in Go and for the client role, what
// _examples/original_source/src/eis_event.rs left as an unfinished stub for
// the mirror (server) role; see eis.RequestConverter for that side.
package ei

import (
	"github.com/daedaluz/eiproto"
	"github.com/daedaluz/eiproto/proto"
	"github.com/daedaluz/eiproto/registry"
)

// InputEventKind discriminates the batched entries inside a Frame
// notification.
type InputEventKind int

const (
	InputMotionRelative InputEventKind = iota
	InputMotionAbsolute
	InputButton
	InputScroll
	InputScrollDiscrete
	InputScrollStop
	InputScrollCancel
	InputKey
	InputTouchDown
	InputTouchMotion
	InputTouchUp
	InputTouchCancel
)

// InputEvent is one batched per-frame input sample.
type InputEvent struct {
	Kind        InputEventKind
	Device      uint64
	X, Y        float32
	Discrete    int32
	IsCancel    bool
	Button      uint32
	ButtonState proto.ButtonState
	Key         uint32
	KeyState    proto.KeyState
	TouchID     uint32
}

// Notification is any high-level event the converter emits to application
// code; every concrete type below implements it.
type Notification interface{ isNotification() }

type SeatAdded struct {
	Seat         uint64
	Name         string
	Capabilities map[string]uint64
}

type SeatRemoved struct{ Seat uint64 }

// Region is one rectangle of a device's addressable area (spec §3), with an
// optional grouping id folded in from a trailing ei_device.region_mapping_id
// message.
type Region struct {
	OffsetX, OffsetY uint32
	Width, Height    uint32
	Scale            float32
	MappingID        string
}

type DeviceAdded struct {
	Device        uint64
	Seat          uint64
	Name          string
	Type          proto.DeviceType
	Width, Height uint32
	Regions       []Region
}

type DeviceRemoved struct{ Device uint64 }
type DeviceResumed struct{ Device uint64 }
type DevicePaused struct{ Device uint64 }
type DeviceStartEmulating struct {
	Device   uint64
	Sequence uint32
}
type DeviceStopEmulating struct{ Device uint64 }

type KeyboardModifiers struct {
	Device                               uint64
	Depressed, Locked, Latched, Group    uint32
}

type Frame struct {
	Device    uint64
	Serial    uint32
	Timestamp uint64
	Events    []InputEvent
}

type Disconnected struct {
	Reason      proto.DisconnectReason
	Explanation string
}

func (SeatAdded) isNotification()            {}
func (SeatRemoved) isNotification()          {}
func (DeviceAdded) isNotification()          {}
func (DeviceRemoved) isNotification()        {}
func (DeviceResumed) isNotification()        {}
func (DevicePaused) isNotification()         {}
func (DeviceStartEmulating) isNotification() {}
func (DeviceStopEmulating) isNotification()  {}
func (KeyboardModifiers) isNotification()    {}
func (Frame) isNotification()                {}
func (Disconnected) isNotification()         {}

const maxTouchesPerDevice = 16

type seatState struct {
	name         string
	capabilities map[string]uint64
	done         bool
}

type deviceState struct {
	seat       uint64
	name       string
	deviceType proto.DeviceType
	width      uint32
	height     uint32
	regions    []Region
	done       bool
	pending    []InputEvent
	touches    map[uint32]bool
}

// Backend is the subset of *backend.Backend the converter needs: sending
// requests (for ping auto-ack) and touching the registry (for accepting
// peer-minted sub-object and pingpong ids).
type Backend interface {
	SendRequest(objectID uint64, req proto.Request)
	Registry() *registry.Registry
}

// Converter is the client-side translator. Feed it every decoded event via
// HandleEvent; it returns zero or more high-level Notifications.
type Converter struct {
	backend Backend

	seats    map[uint64]*seatState
	devices  map[uint64]*deviceState
	objOwner map[uint64]uint64 // sub-object id (pointer, button, ...) -> owning device id

	lastSerial uint32
}

// NewConverter wraps b.
func NewConverter(b Backend) *Converter {
	return &Converter{
		backend:  b,
		seats:    make(map[uint64]*seatState),
		devices:  make(map[uint64]*deviceState),
		objOwner: make(map[uint64]uint64),
	}
}

// LastSerial returns the most recent serial observed on any event carrying
// one.
func (c *Converter) LastSerial() uint32 { return c.lastSerial }

// BindCapabilities OR-combines the per-interface capability masks seatID
// advertised (spec §4.7 "capability binding") and sends an ei_seat.bind
// request with the result. An interface the seat did not advertise
// contributes no bits. Calling it again with the same set re-emits the
// same mask.
func (c *Converter) BindCapabilities(seatID uint64, interfaces []string) error {
	s, ok := c.seats[seatID]
	if !ok {
		return eiproto.NewInvalidObjectError(seatID)
	}
	var mask uint64
	for _, name := range interfaces {
		mask |= s.capabilities[name]
	}
	c.backend.SendRequest(seatID, proto.SeatBind{Capabilities: mask})
	return nil
}

// HandleEvent decodes one incoming event addressed to obj and returns the
// high-level notifications it produces, if any (most events only update
// internal bookkeeping and produce nothing until a terminating "done" or
// "frame").
func (c *Converter) HandleEvent(obj registry.Object, evt proto.Event) ([]Notification, error) {
	switch obj.Interface {
	case proto.InterfaceConnection:
		return c.handleConnection(evt)
	case proto.InterfaceSeat:
		return c.handleSeat(obj.ID, evt)
	case proto.InterfaceDevice:
		return c.handleDevice(obj.ID, evt)
	case proto.InterfacePointer, proto.InterfacePointerAbsolute, proto.InterfaceScroll,
		proto.InterfaceButton, proto.InterfaceKeyboard, proto.InterfaceTouchscreen:
		return c.handleInputEvent(obj.ID, evt)
	case proto.InterfaceCallback:
		return nil, nil
	default:
		return nil, eiproto.WrapTranslatorError("event on unrecognized interface", eiproto.ErrUnexpectedHandshakeEvent)
	}
}

func (c *Converter) handleConnection(evt proto.Event) ([]Notification, error) {
	switch e := evt.(type) {
	case proto.ConnectionEventSeat:
		c.backend.Registry().Insert(e.Seat, proto.InterfaceSeat, e.Version)
		c.seats[e.Seat] = &seatState{capabilities: make(map[string]uint64)}
		return nil, nil
	case proto.ConnectionEventInvalidObject:
		c.lastSerial = e.LastSerial
		return nil, nil
	case proto.ConnectionEventPing:
		if err := c.backend.Registry().AcceptPeerID(e.Ping, proto.InterfacePingpong, e.Version); err != nil {
			return nil, err
		}
		c.backend.SendRequest(e.Ping, proto.PingpongDone{CallbackData: 0})
		return nil, nil
	case proto.ConnectionEventDisconnected:
		c.lastSerial = e.LastSerial
		return []Notification{Disconnected{Reason: e.Reason, Explanation: e.Explanation}}, nil
	default:
		return nil, eiproto.WrapTranslatorError("unexpected ei_connection event", eiproto.ErrUnexpectedHandshakeEvent)
	}
}

func (c *Converter) handleSeat(seatID uint64, evt proto.Event) ([]Notification, error) {
	s, ok := c.seats[seatID]
	if !ok {
		return nil, eiproto.NewInvalidObjectError(seatID)
	}
	switch e := evt.(type) {
	case proto.SeatEventName:
		if s.done {
			return nil, eiproto.WrapTranslatorError("seat name after done", eiproto.ErrSeatSetupEventAfterDone)
		}
		s.name = e.Name
		return nil, nil
	case proto.SeatEventCapability:
		if s.done {
			return nil, eiproto.WrapTranslatorError("seat capability after done", eiproto.ErrSeatSetupEventAfterDone)
		}
		s.capabilities[e.Interface] = e.Mask
		return nil, nil
	case proto.SeatEventDevice:
		c.backend.Registry().Insert(e.Device, proto.InterfaceDevice, e.Version)
		c.devices[e.Device] = &deviceState{seat: seatID, touches: make(map[uint32]bool)}
		return nil, nil
	case proto.SeatEventDone:
		s.done = true
		return []Notification{SeatAdded{Seat: seatID, Name: s.name, Capabilities: s.capabilities}}, nil
	case proto.SeatEventDestroyed:
		c.lastSerial = e.Serial
		delete(c.seats, seatID)
		return []Notification{SeatRemoved{Seat: seatID}}, nil
	default:
		return nil, eiproto.WrapTranslatorError("unexpected ei_seat event", eiproto.ErrUnexpectedHandshakeEvent)
	}
}

func (c *Converter) handleDevice(deviceID uint64, evt proto.Event) ([]Notification, error) {
	d, ok := c.devices[deviceID]
	if !ok {
		return nil, eiproto.NewInvalidObjectError(deviceID)
	}
	switch e := evt.(type) {
	case proto.DeviceEventName:
		if d.done {
			return nil, eiproto.WrapTranslatorError("device name after done", eiproto.ErrDeviceSetupEventAfterDone)
		}
		d.name = e.Name
		return nil, nil
	case proto.DeviceEventDeviceType:
		if d.done {
			return nil, eiproto.WrapTranslatorError("device type after done", eiproto.ErrDeviceSetupEventAfterDone)
		}
		d.deviceType = e.DeviceType
		return nil, nil
	case proto.DeviceEventDimensions:
		if d.done {
			return nil, eiproto.WrapTranslatorError("device dimensions after done", eiproto.ErrDeviceSetupEventAfterDone)
		}
		d.width, d.height = e.Width, e.Height
		return nil, nil
	case proto.DeviceEventRegion:
		if d.done {
			return nil, eiproto.WrapTranslatorError("device region after done", eiproto.ErrDeviceSetupEventAfterDone)
		}
		d.regions = append(d.regions, Region{
			OffsetX: e.OffsetX, OffsetY: e.OffsetY, Width: e.Width, Height: e.Height, Scale: e.Scale,
		})
		return nil, nil
	case proto.DeviceEventRegionMappingID:
		if d.done {
			return nil, eiproto.WrapTranslatorError("device region_mapping_id after done", eiproto.ErrDeviceSetupEventAfterDone)
		}
		if len(d.regions) == 0 {
			return nil, eiproto.WrapTranslatorError("region_mapping_id without a preceding region", eiproto.ErrDeviceSetupEventAfterDone)
		}
		d.regions[len(d.regions)-1].MappingID = e.MappingID
		return nil, nil
	case proto.DeviceEventInterface:
		c.backend.Registry().Insert(e.Object, e.InterfaceName, e.Version)
		c.objOwner[e.Object] = deviceID
		return nil, nil
	case proto.DeviceEventDone:
		if d.deviceType == 0 {
			return nil, eiproto.WrapTranslatorError("device done without device_type", eiproto.ErrNoDeviceType)
		}
		d.done = true
		return []Notification{DeviceAdded{
			Device: deviceID, Seat: d.seat, Name: d.name,
			Type: d.deviceType, Width: d.width, Height: d.height, Regions: d.regions,
		}}, nil
	case proto.DeviceEventResumed:
		c.lastSerial = e.Serial
		return []Notification{DeviceResumed{Device: deviceID}}, nil
	case proto.DeviceEventPaused:
		c.lastSerial = e.Serial
		return []Notification{DevicePaused{Device: deviceID}}, nil
	case proto.DeviceEventStartEmulating:
		c.lastSerial = e.Serial
		return []Notification{DeviceStartEmulating{Device: deviceID, Sequence: e.Sequence}}, nil
	case proto.DeviceEventStopEmulating:
		c.lastSerial = e.Serial
		return []Notification{DeviceStopEmulating{Device: deviceID}}, nil
	case proto.DeviceEventFrame:
		c.lastSerial = e.Serial
		events := d.pending
		d.pending = nil
		return []Notification{Frame{Device: deviceID, Serial: e.Serial, Timestamp: e.Timestamp, Events: events}}, nil
	case proto.DeviceEventDestroyed:
		c.lastSerial = e.Serial
		delete(c.devices, deviceID)
		return []Notification{DeviceRemoved{Device: deviceID}}, nil
	default:
		return nil, eiproto.WrapTranslatorError("unexpected ei_device event", eiproto.ErrUnexpectedHandshakeEvent)
	}
}

func (c *Converter) handleInputEvent(objID uint64, evt proto.Event) ([]Notification, error) {
	deviceID, ok := c.objOwner[objID]
	if !ok {
		return nil, eiproto.NewInvalidObjectError(objID)
	}
	d, ok := c.devices[deviceID]
	if !ok {
		return nil, eiproto.NewInvalidObjectError(deviceID)
	}
	if !d.done {
		return nil, eiproto.WrapTranslatorError("input event before device done", eiproto.ErrDeviceEventBeforeDone)
	}

	switch e := evt.(type) {
	case proto.PointerEventMotionRelative:
		d.pending = append(d.pending, InputEvent{Kind: InputMotionRelative, Device: deviceID, X: e.X, Y: e.Y})
	case proto.PointerAbsoluteEventMotionAbsolute:
		d.pending = append(d.pending, InputEvent{Kind: InputMotionAbsolute, Device: deviceID, X: e.X, Y: e.Y})
	case proto.ButtonEventButton:
		d.pending = append(d.pending, InputEvent{Kind: InputButton, Device: deviceID, Button: e.Button, ButtonState: e.State})
	case proto.ScrollEventScroll:
		d.pending = append(d.pending, InputEvent{Kind: InputScroll, Device: deviceID, X: e.X, Y: e.Y})
	case proto.ScrollEventScrollDiscrete:
		d.pending = append(d.pending, InputEvent{Kind: InputScrollDiscrete, Device: deviceID, Discrete: e.X})
	case proto.ScrollEventScrollStop:
		kind := InputScrollStop
		if e.IsCancel != 0 {
			kind = InputScrollCancel
		}
		d.pending = append(d.pending, InputEvent{Kind: kind, Device: deviceID, IsCancel: e.IsCancel != 0})
	case proto.KeyboardEventKey:
		d.pending = append(d.pending, InputEvent{Kind: InputKey, Device: deviceID, Key: e.Key, KeyState: e.State})
	case proto.KeyboardEventModifiers:
		c.lastSerial = e.Serial
		return []Notification{KeyboardModifiers{
			Device: deviceID, Depressed: e.Depressed, Locked: e.Locked, Latched: e.Latched, Group: e.Group,
		}}, nil
	case proto.KeyboardEventKeymap:
		return nil, nil
	case proto.TouchscreenEventDown:
		if d.touches[e.TouchID] {
			return nil, eiproto.WrapTranslatorError("duplicate touch down", eiproto.ErrDuplicatedTouchDown)
		}
		if len(d.touches) >= maxTouchesPerDevice {
			return nil, eiproto.WrapTranslatorError("touch down exceeds per-device limit", eiproto.ErrTooManyTouches)
		}
		d.touches[e.TouchID] = true
		d.pending = append(d.pending, InputEvent{Kind: InputTouchDown, Device: deviceID, TouchID: e.TouchID, X: e.X, Y: e.Y})
	case proto.TouchscreenEventMotion:
		if !d.touches[e.TouchID] {
			return nil, nil // unknown touch id: dropped
		}
		d.pending = append(d.pending, InputEvent{Kind: InputTouchMotion, Device: deviceID, TouchID: e.TouchID, X: e.X, Y: e.Y})
	case proto.TouchscreenEventUp:
		if !d.touches[e.TouchID] {
			return nil, nil
		}
		delete(d.touches, e.TouchID)
		d.pending = append(d.pending, InputEvent{Kind: InputTouchUp, Device: deviceID, TouchID: e.TouchID})
	case proto.TouchscreenEventCancel:
		if !d.touches[e.TouchID] {
			return nil, nil
		}
		delete(d.touches, e.TouchID)
		d.pending = append(d.pending, InputEvent{Kind: InputTouchCancel, Device: deviceID, TouchID: e.TouchID})
	case proto.PointerEventDestroyed, proto.PointerAbsoluteEventDestroyed, proto.ScrollEventDestroyed,
		proto.ButtonEventDestroyed, proto.KeyboardEventDestroyed, proto.TouchscreenEventDestroyed:
		delete(c.objOwner, objID)
	default:
		return nil, eiproto.WrapTranslatorError("unexpected input event", eiproto.ErrUnexpectedHandshakeEvent)
	}
	return nil, nil
}
