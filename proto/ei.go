package proto

import "github.com/daedaluz/eiproto/wire"

// Request is any message carried on the client→server (request) direction.
// Every concrete request type in this package implements it.
type Request interface {
	RequestInterface() string
	RequestOpcode() uint32
	Encode(w *wire.Writer)
}

// Event is any message carried on the server→client (event) direction.
// Every concrete event type in this package implements it.
type Event interface {
	EventInterface() string
	EventOpcode() uint32
	Encode(w *wire.Writer)
}

// ---------------------------------------------------------------- handshake

const (
	OpHandshakeReqVersion         = 0
	OpHandshakeReqFinish          = 1
	OpHandshakeReqContextType     = 2
	OpHandshakeReqName            = 3
	OpHandshakeReqInterfaceVersion = 4
)

const (
	OpHandshakeEvtVersion          = 0
	OpHandshakeEvtInterfaceVersion = 1
	OpHandshakeEvtConnection       = 2
)

const InterfaceHandshake = "ei_handshake"

type HandshakeHandshakeVersion struct{ Version uint32 }

func (HandshakeHandshakeVersion) RequestInterface() string { return InterfaceHandshake }
func (HandshakeHandshakeVersion) RequestOpcode() uint32     { return OpHandshakeReqVersion }
func (m HandshakeHandshakeVersion) Encode(w *wire.Writer)   { w.PutUint32(m.Version) }

func DecodeHandshakeHandshakeVersion(r *wire.Reader) (HandshakeHandshakeVersion, error) {
	v, err := r.Uint32()
	return HandshakeHandshakeVersion{Version: v}, err
}

type HandshakeFinish struct{}

func (HandshakeFinish) RequestInterface() string { return InterfaceHandshake }
func (HandshakeFinish) RequestOpcode() uint32     { return OpHandshakeReqFinish }
func (HandshakeFinish) Encode(*wire.Writer)       {}

func DecodeHandshakeFinish(*wire.Reader) (HandshakeFinish, error) { return HandshakeFinish{}, nil }

type HandshakeSetContextType struct{ ContextType ContextType }

func (HandshakeSetContextType) RequestInterface() string { return InterfaceHandshake }
func (HandshakeSetContextType) RequestOpcode() uint32     { return OpHandshakeReqContextType }
func (m HandshakeSetContextType) Encode(w *wire.Writer)   { w.PutUint32(uint32(m.ContextType)) }

func DecodeHandshakeSetContextType(r *wire.Reader) (HandshakeSetContextType, error) {
	v, err := r.Uint32()
	if err != nil {
		return HandshakeSetContextType{}, err
	}
	ct, err := ParseContextType(v)
	return HandshakeSetContextType{ContextType: ct}, err
}

type HandshakeName struct{ Name string }

func (HandshakeName) RequestInterface() string { return InterfaceHandshake }
func (HandshakeName) RequestOpcode() uint32     { return OpHandshakeReqName }
func (m HandshakeName) Encode(w *wire.Writer)   { _ = w.PutString(&m.Name) }

func DecodeHandshakeName(r *wire.Reader) (HandshakeName, error) {
	s, err := r.NonNullString()
	return HandshakeName{Name: s}, err
}

type HandshakeInterfaceVersion struct {
	Name    string
	Version uint32
}

func (HandshakeInterfaceVersion) RequestInterface() string { return InterfaceHandshake }
func (HandshakeInterfaceVersion) RequestOpcode() uint32     { return OpHandshakeReqInterfaceVersion }
func (m HandshakeInterfaceVersion) Encode(w *wire.Writer) {
	_ = w.PutString(&m.Name)
	w.PutUint32(m.Version)
}

func DecodeHandshakeInterfaceVersion(r *wire.Reader) (HandshakeInterfaceVersion, error) {
	name, err := r.NonNullString()
	if err != nil {
		return HandshakeInterfaceVersion{}, err
	}
	version, err := r.Uint32()
	return HandshakeInterfaceVersion{Name: name, Version: version}, err
}

type HandshakeEventVersion struct{ Version uint32 }

func (HandshakeEventVersion) EventInterface() string { return InterfaceHandshake }
func (HandshakeEventVersion) EventOpcode() uint32     { return OpHandshakeEvtVersion }
func (m HandshakeEventVersion) Encode(w *wire.Writer) { w.PutUint32(m.Version) }

func DecodeHandshakeEventVersion(r *wire.Reader) (HandshakeEventVersion, error) {
	v, err := r.Uint32()
	return HandshakeEventVersion{Version: v}, err
}

type HandshakeEventInterfaceVersion struct {
	Name    string
	Version uint32
}

func (HandshakeEventInterfaceVersion) EventInterface() string { return InterfaceHandshake }
func (HandshakeEventInterfaceVersion) EventOpcode() uint32     { return OpHandshakeEvtInterfaceVersion }
func (m HandshakeEventInterfaceVersion) Encode(w *wire.Writer) {
	_ = w.PutString(&m.Name)
	w.PutUint32(m.Version)
}

func DecodeHandshakeEventInterfaceVersion(r *wire.Reader) (HandshakeEventInterfaceVersion, error) {
	name, err := r.NonNullString()
	if err != nil {
		return HandshakeEventInterfaceVersion{}, err
	}
	version, err := r.Uint32()
	return HandshakeEventInterfaceVersion{Name: name, Version: version}, err
}

type HandshakeEventConnection struct {
	Serial     uint32
	Connection uint64 // new_id
	Version    uint32
}

func (HandshakeEventConnection) EventInterface() string { return InterfaceHandshake }
func (HandshakeEventConnection) EventOpcode() uint32     { return OpHandshakeEvtConnection }
func (m HandshakeEventConnection) Encode(w *wire.Writer) {
	w.PutUint32(m.Serial)
	w.PutNewID(m.Connection)
	w.PutUint32(m.Version)
}

func DecodeHandshakeEventConnection(r *wire.Reader) (HandshakeEventConnection, error) {
	serial, err := r.Uint32()
	if err != nil {
		return HandshakeEventConnection{}, err
	}
	conn, err := r.NewID()
	if err != nil {
		return HandshakeEventConnection{}, err
	}
	version, err := r.Uint32()
	return HandshakeEventConnection{Serial: serial, Connection: conn, Version: version}, err
}

// --------------------------------------------------------------- connection

const (
	OpConnectionReqSync       = 0
	OpConnectionReqDisconnect = 1
)

const (
	OpConnectionEvtDisconnected  = 0
	OpConnectionEvtSeat          = 1
	OpConnectionEvtInvalidObject = 2
	OpConnectionEvtPing          = 3
)

const InterfaceConnection = "ei_connection"

type ConnectionSync struct{ Callback uint64 } // new_id

func (ConnectionSync) RequestInterface() string { return InterfaceConnection }
func (ConnectionSync) RequestOpcode() uint32     { return OpConnectionReqSync }
func (m ConnectionSync) Encode(w *wire.Writer)   { w.PutNewID(m.Callback) }

func DecodeConnectionSync(r *wire.Reader) (ConnectionSync, error) {
	id, err := r.NewID()
	return ConnectionSync{Callback: id}, err
}

type ConnectionDisconnect struct{}

func (ConnectionDisconnect) RequestInterface() string { return InterfaceConnection }
func (ConnectionDisconnect) RequestOpcode() uint32     { return OpConnectionReqDisconnect }
func (ConnectionDisconnect) Encode(*wire.Writer)       {}

func DecodeConnectionDisconnect(*wire.Reader) (ConnectionDisconnect, error) {
	return ConnectionDisconnect{}, nil
}

type ConnectionEventDisconnected struct {
	LastSerial  uint32
	Reason      DisconnectReason
	Explanation string
}

func (ConnectionEventDisconnected) EventInterface() string { return InterfaceConnection }
func (ConnectionEventDisconnected) EventOpcode() uint32     { return OpConnectionEvtDisconnected }
func (m ConnectionEventDisconnected) Encode(w *wire.Writer) {
	w.PutUint32(m.LastSerial)
	w.PutUint32(uint32(m.Reason))
	_ = w.PutString(&m.Explanation)
}

func DecodeConnectionEventDisconnected(r *wire.Reader) (ConnectionEventDisconnected, error) {
	lastSerial, err := r.Uint32()
	if err != nil {
		return ConnectionEventDisconnected{}, err
	}
	reasonV, err := r.Uint32()
	if err != nil {
		return ConnectionEventDisconnected{}, err
	}
	reason, err := ParseDisconnectReason(reasonV)
	if err != nil {
		return ConnectionEventDisconnected{}, err
	}
	explanation, err := r.NonNullString()
	return ConnectionEventDisconnected{LastSerial: lastSerial, Reason: reason, Explanation: explanation}, err
}

type ConnectionEventSeat struct {
	Seat    uint64 // new_id
	Version uint32
}

func (ConnectionEventSeat) EventInterface() string { return InterfaceConnection }
func (ConnectionEventSeat) EventOpcode() uint32     { return OpConnectionEvtSeat }
func (m ConnectionEventSeat) Encode(w *wire.Writer) {
	w.PutNewID(m.Seat)
	w.PutUint32(m.Version)
}

func DecodeConnectionEventSeat(r *wire.Reader) (ConnectionEventSeat, error) {
	seat, err := r.NewID()
	if err != nil {
		return ConnectionEventSeat{}, err
	}
	version, err := r.Uint32()
	return ConnectionEventSeat{Seat: seat, Version: version}, err
}

type ConnectionEventInvalidObject struct {
	LastSerial uint32
	InvalidID  uint64
}

func (ConnectionEventInvalidObject) EventInterface() string { return InterfaceConnection }
func (ConnectionEventInvalidObject) EventOpcode() uint32     { return OpConnectionEvtInvalidObject }
func (m ConnectionEventInvalidObject) Encode(w *wire.Writer) {
	w.PutUint32(m.LastSerial)
	w.PutID(m.InvalidID)
}

func DecodeConnectionEventInvalidObject(r *wire.Reader) (ConnectionEventInvalidObject, error) {
	lastSerial, err := r.Uint32()
	if err != nil {
		return ConnectionEventInvalidObject{}, err
	}
	id, err := r.ID()
	return ConnectionEventInvalidObject{LastSerial: lastSerial, InvalidID: id}, err
}

type ConnectionEventPing struct {
	Ping    uint64 // new_id
	Version uint32
}

func (ConnectionEventPing) EventInterface() string { return InterfaceConnection }
func (ConnectionEventPing) EventOpcode() uint32     { return OpConnectionEvtPing }
func (m ConnectionEventPing) Encode(w *wire.Writer) {
	w.PutNewID(m.Ping)
	w.PutUint32(m.Version)
}

func DecodeConnectionEventPing(r *wire.Reader) (ConnectionEventPing, error) {
	ping, err := r.NewID()
	if err != nil {
		return ConnectionEventPing{}, err
	}
	version, err := r.Uint32()
	return ConnectionEventPing{Ping: ping, Version: version}, err
}

// ------------------------------------------------------------------ callback

const OpCallbackEvtDone = 0

const InterfaceCallback = "ei_callback"

type CallbackEventDone struct{ CallbackData uint64 }

func (CallbackEventDone) EventInterface() string { return InterfaceCallback }
func (CallbackEventDone) EventOpcode() uint32     { return OpCallbackEvtDone }
func (m CallbackEventDone) Encode(w *wire.Writer) { w.PutUint64(m.CallbackData) }

func DecodeCallbackEventDone(r *wire.Reader) (CallbackEventDone, error) {
	v, err := r.Uint64()
	return CallbackEventDone{CallbackData: v}, err
}

// ------------------------------------------------------------------ pingpong

const OpPingpongReqDone = 0

const InterfacePingpong = "ei_pingpong"

type PingpongDone struct{ CallbackData uint64 }

func (PingpongDone) RequestInterface() string { return InterfacePingpong }
func (PingpongDone) RequestOpcode() uint32     { return OpPingpongReqDone }
func (m PingpongDone) Encode(w *wire.Writer)   { w.PutUint64(m.CallbackData) }

func DecodePingpongDone(r *wire.Reader) (PingpongDone, error) {
	v, err := r.Uint64()
	return PingpongDone{CallbackData: v}, err
}

// ----------------------------------------------------------------------- seat

const (
	OpSeatReqRelease = 0
	OpSeatReqBind    = 1
)

const (
	OpSeatEvtDestroyed  = 0
	OpSeatEvtName       = 1
	OpSeatEvtCapability = 2
	OpSeatEvtDone       = 3
	OpSeatEvtDevice     = 4
)

const InterfaceSeat = "ei_seat"

type SeatRelease struct{}

func (SeatRelease) RequestInterface() string { return InterfaceSeat }
func (SeatRelease) RequestOpcode() uint32     { return OpSeatReqRelease }
func (SeatRelease) Encode(*wire.Writer)       {}

func DecodeSeatRelease(*wire.Reader) (SeatRelease, error) { return SeatRelease{}, nil }

type SeatBind struct{ Capabilities uint64 }

func (SeatBind) RequestInterface() string { return InterfaceSeat }
func (SeatBind) RequestOpcode() uint32     { return OpSeatReqBind }
func (m SeatBind) Encode(w *wire.Writer)   { w.PutUint64(m.Capabilities) }

func DecodeSeatBind(r *wire.Reader) (SeatBind, error) {
	v, err := r.Uint64()
	return SeatBind{Capabilities: v}, err
}

type SeatEventDestroyed struct{ Serial uint32 }

func (SeatEventDestroyed) EventInterface() string { return InterfaceSeat }
func (SeatEventDestroyed) EventOpcode() uint32     { return OpSeatEvtDestroyed }
func (m SeatEventDestroyed) Encode(w *wire.Writer) { w.PutUint32(m.Serial) }

func DecodeSeatEventDestroyed(r *wire.Reader) (SeatEventDestroyed, error) {
	v, err := r.Uint32()
	return SeatEventDestroyed{Serial: v}, err
}

type SeatEventName struct{ Name string }

func (SeatEventName) EventInterface() string { return InterfaceSeat }
func (SeatEventName) EventOpcode() uint32     { return OpSeatEvtName }
func (m SeatEventName) Encode(w *wire.Writer) { _ = w.PutString(&m.Name) }

func DecodeSeatEventName(r *wire.Reader) (SeatEventName, error) {
	s, err := r.NonNullString()
	return SeatEventName{Name: s}, err
}

type SeatEventCapability struct {
	Mask      uint64
	Interface string
}

func (SeatEventCapability) EventInterface() string { return InterfaceSeat }
func (SeatEventCapability) EventOpcode() uint32     { return OpSeatEvtCapability }
func (m SeatEventCapability) Encode(w *wire.Writer) {
	w.PutUint64(m.Mask)
	_ = w.PutString(&m.Interface)
}

func DecodeSeatEventCapability(r *wire.Reader) (SeatEventCapability, error) {
	mask, err := r.Uint64()
	if err != nil {
		return SeatEventCapability{}, err
	}
	iface, err := r.NonNullString()
	return SeatEventCapability{Mask: mask, Interface: iface}, err
}

type SeatEventDone struct{}

func (SeatEventDone) EventInterface() string { return InterfaceSeat }
func (SeatEventDone) EventOpcode() uint32     { return OpSeatEvtDone }
func (SeatEventDone) Encode(*wire.Writer)     {}

func DecodeSeatEventDone(*wire.Reader) (SeatEventDone, error) { return SeatEventDone{}, nil }

type SeatEventDevice struct {
	Device  uint64 // new_id
	Version uint32
}

func (SeatEventDevice) EventInterface() string { return InterfaceSeat }
func (SeatEventDevice) EventOpcode() uint32     { return OpSeatEvtDevice }
func (m SeatEventDevice) Encode(w *wire.Writer) {
	w.PutNewID(m.Device)
	w.PutUint32(m.Version)
}

func DecodeSeatEventDevice(r *wire.Reader) (SeatEventDevice, error) {
	dev, err := r.NewID()
	if err != nil {
		return SeatEventDevice{}, err
	}
	version, err := r.Uint32()
	return SeatEventDevice{Device: dev, Version: version}, err
}

// --------------------------------------------------------------------- device

const (
	OpDeviceReqRelease       = 0
	OpDeviceReqStartEmulating = 1
	OpDeviceReqStopEmulating  = 2
	OpDeviceReqFrame          = 3
)

const (
	OpDeviceEvtDestroyed      = 0
	OpDeviceEvtName           = 1
	OpDeviceEvtDeviceType     = 2
	OpDeviceEvtDimensions     = 3
	OpDeviceEvtRegion         = 4
	OpDeviceEvtInterface      = 5
	OpDeviceEvtDone           = 6
	OpDeviceEvtResumed        = 7
	OpDeviceEvtPaused         = 8
	OpDeviceEvtStartEmulating = 9
	OpDeviceEvtStopEmulating  = 10
	OpDeviceEvtFrame          = 11
	OpDeviceEvtRegionMappingID = 12 // interface version 2
)

const InterfaceDevice = "ei_device"

type DeviceRelease struct{}

func (DeviceRelease) RequestInterface() string { return InterfaceDevice }
func (DeviceRelease) RequestOpcode() uint32     { return OpDeviceReqRelease }
func (DeviceRelease) Encode(*wire.Writer)       {}

func DecodeDeviceRelease(*wire.Reader) (DeviceRelease, error) { return DeviceRelease{}, nil }

type DeviceStartEmulating struct {
	LastSerial uint32
	Sequence   uint32
}

func (DeviceStartEmulating) RequestInterface() string { return InterfaceDevice }
func (DeviceStartEmulating) RequestOpcode() uint32     { return OpDeviceReqStartEmulating }
func (m DeviceStartEmulating) Encode(w *wire.Writer) {
	w.PutUint32(m.LastSerial)
	w.PutUint32(m.Sequence)
}

func DecodeDeviceStartEmulating(r *wire.Reader) (DeviceStartEmulating, error) {
	lastSerial, err := r.Uint32()
	if err != nil {
		return DeviceStartEmulating{}, err
	}
	seq, err := r.Uint32()
	return DeviceStartEmulating{LastSerial: lastSerial, Sequence: seq}, err
}

type DeviceStopEmulating struct{ LastSerial uint32 }

func (DeviceStopEmulating) RequestInterface() string { return InterfaceDevice }
func (DeviceStopEmulating) RequestOpcode() uint32     { return OpDeviceReqStopEmulating }
func (m DeviceStopEmulating) Encode(w *wire.Writer)   { w.PutUint32(m.LastSerial) }

func DecodeDeviceStopEmulating(r *wire.Reader) (DeviceStopEmulating, error) {
	v, err := r.Uint32()
	return DeviceStopEmulating{LastSerial: v}, err
}

type DeviceFrame struct {
	LastSerial uint32
	Timestamp  uint64
}

func (DeviceFrame) RequestInterface() string { return InterfaceDevice }
func (DeviceFrame) RequestOpcode() uint32     { return OpDeviceReqFrame }
func (m DeviceFrame) Encode(w *wire.Writer) {
	w.PutUint32(m.LastSerial)
	w.PutUint64(m.Timestamp)
}

func DecodeDeviceFrame(r *wire.Reader) (DeviceFrame, error) {
	lastSerial, err := r.Uint32()
	if err != nil {
		return DeviceFrame{}, err
	}
	ts, err := r.Uint64()
	return DeviceFrame{LastSerial: lastSerial, Timestamp: ts}, err
}

type DeviceEventDestroyed struct{ Serial uint32 }

func (DeviceEventDestroyed) EventInterface() string { return InterfaceDevice }
func (DeviceEventDestroyed) EventOpcode() uint32     { return OpDeviceEvtDestroyed }
func (m DeviceEventDestroyed) Encode(w *wire.Writer) { w.PutUint32(m.Serial) }

func DecodeDeviceEventDestroyed(r *wire.Reader) (DeviceEventDestroyed, error) {
	v, err := r.Uint32()
	return DeviceEventDestroyed{Serial: v}, err
}

type DeviceEventName struct{ Name string }

func (DeviceEventName) EventInterface() string { return InterfaceDevice }
func (DeviceEventName) EventOpcode() uint32     { return OpDeviceEvtName }
func (m DeviceEventName) Encode(w *wire.Writer) { _ = w.PutString(&m.Name) }

func DecodeDeviceEventName(r *wire.Reader) (DeviceEventName, error) {
	s, err := r.NonNullString()
	return DeviceEventName{Name: s}, err
}

type DeviceEventDeviceType struct{ DeviceType DeviceType }

func (DeviceEventDeviceType) EventInterface() string { return InterfaceDevice }
func (DeviceEventDeviceType) EventOpcode() uint32     { return OpDeviceEvtDeviceType }
func (m DeviceEventDeviceType) Encode(w *wire.Writer) { w.PutUint32(uint32(m.DeviceType)) }

func DecodeDeviceEventDeviceType(r *wire.Reader) (DeviceEventDeviceType, error) {
	v, err := r.Uint32()
	if err != nil {
		return DeviceEventDeviceType{}, err
	}
	dt, err := ParseDeviceType(v)
	return DeviceEventDeviceType{DeviceType: dt}, err
}

type DeviceEventDimensions struct{ Width, Height uint32 }

func (DeviceEventDimensions) EventInterface() string { return InterfaceDevice }
func (DeviceEventDimensions) EventOpcode() uint32     { return OpDeviceEvtDimensions }
func (m DeviceEventDimensions) Encode(w *wire.Writer) {
	w.PutUint32(m.Width)
	w.PutUint32(m.Height)
}

func DecodeDeviceEventDimensions(r *wire.Reader) (DeviceEventDimensions, error) {
	width, err := r.Uint32()
	if err != nil {
		return DeviceEventDimensions{}, err
	}
	height, err := r.Uint32()
	return DeviceEventDimensions{Width: width, Height: height}, err
}

// DeviceEventRegion mirrors ei_device.region; the original description's
// field is misspelled "hight", kept here as the correctly-spelled Height to
// avoid propagating the typo into this binding's public API.
type DeviceEventRegion struct {
	OffsetX, OffsetY uint32
	Width, Height    uint32
	Scale            float32
}

func (DeviceEventRegion) EventInterface() string { return InterfaceDevice }
func (DeviceEventRegion) EventOpcode() uint32     { return OpDeviceEvtRegion }
func (m DeviceEventRegion) Encode(w *wire.Writer) {
	w.PutUint32(m.OffsetX)
	w.PutUint32(m.OffsetY)
	w.PutUint32(m.Width)
	w.PutUint32(m.Height)
	w.PutFloat32(m.Scale)
}

func DecodeDeviceEventRegion(r *wire.Reader) (DeviceEventRegion, error) {
	var m DeviceEventRegion
	var err error
	if m.OffsetX, err = r.Uint32(); err != nil {
		return DeviceEventRegion{}, err
	}
	if m.OffsetY, err = r.Uint32(); err != nil {
		return DeviceEventRegion{}, err
	}
	if m.Width, err = r.Uint32(); err != nil {
		return DeviceEventRegion{}, err
	}
	if m.Height, err = r.Uint32(); err != nil {
		return DeviceEventRegion{}, err
	}
	m.Scale, err = r.Float32()
	return m, err
}

// DeviceEventRegionMappingID mirrors ei_device.region_mapping_id (interface
// version 2): an optional grouping id for the region most recently sent via
// ei_device.region, letting the client tell apart regions that map to the
// same physical output from those that don't.
type DeviceEventRegionMappingID struct{ MappingID string }

func (DeviceEventRegionMappingID) EventInterface() string { return InterfaceDevice }
func (DeviceEventRegionMappingID) EventOpcode() uint32     { return OpDeviceEvtRegionMappingID }
func (m DeviceEventRegionMappingID) Encode(w *wire.Writer) { _ = w.PutString(&m.MappingID) }

func DecodeDeviceEventRegionMappingID(r *wire.Reader) (DeviceEventRegionMappingID, error) {
	s, err := r.NonNullString()
	return DeviceEventRegionMappingID{MappingID: s}, err
}

type DeviceEventInterface struct {
	Object        uint64 // new_id
	InterfaceName string
	Version       uint32
}

func (DeviceEventInterface) EventInterface() string { return InterfaceDevice }
func (DeviceEventInterface) EventOpcode() uint32     { return OpDeviceEvtInterface }
func (m DeviceEventInterface) Encode(w *wire.Writer) {
	w.PutNewID(m.Object)
	_ = w.PutString(&m.InterfaceName)
	w.PutUint32(m.Version)
}

func DecodeDeviceEventInterface(r *wire.Reader) (DeviceEventInterface, error) {
	obj, err := r.NewID()
	if err != nil {
		return DeviceEventInterface{}, err
	}
	name, err := r.NonNullString()
	if err != nil {
		return DeviceEventInterface{}, err
	}
	version, err := r.Uint32()
	return DeviceEventInterface{Object: obj, InterfaceName: name, Version: version}, err
}

type DeviceEventDone struct{}

func (DeviceEventDone) EventInterface() string { return InterfaceDevice }
func (DeviceEventDone) EventOpcode() uint32     { return OpDeviceEvtDone }
func (DeviceEventDone) Encode(*wire.Writer)     {}

func DecodeDeviceEventDone(*wire.Reader) (DeviceEventDone, error) { return DeviceEventDone{}, nil }

type DeviceEventResumed struct{ Serial uint32 }

func (DeviceEventResumed) EventInterface() string { return InterfaceDevice }
func (DeviceEventResumed) EventOpcode() uint32     { return OpDeviceEvtResumed }
func (m DeviceEventResumed) Encode(w *wire.Writer) { w.PutUint32(m.Serial) }

func DecodeDeviceEventResumed(r *wire.Reader) (DeviceEventResumed, error) {
	v, err := r.Uint32()
	return DeviceEventResumed{Serial: v}, err
}

type DeviceEventPaused struct{ Serial uint32 }

func (DeviceEventPaused) EventInterface() string { return InterfaceDevice }
func (DeviceEventPaused) EventOpcode() uint32     { return OpDeviceEvtPaused }
func (m DeviceEventPaused) Encode(w *wire.Writer) { w.PutUint32(m.Serial) }

func DecodeDeviceEventPaused(r *wire.Reader) (DeviceEventPaused, error) {
	v, err := r.Uint32()
	return DeviceEventPaused{Serial: v}, err
}

type DeviceEventStartEmulating struct {
	Serial   uint32
	Sequence uint32
}

func (DeviceEventStartEmulating) EventInterface() string { return InterfaceDevice }
func (DeviceEventStartEmulating) EventOpcode() uint32     { return OpDeviceEvtStartEmulating }
func (m DeviceEventStartEmulating) Encode(w *wire.Writer) {
	w.PutUint32(m.Serial)
	w.PutUint32(m.Sequence)
}

func DecodeDeviceEventStartEmulating(r *wire.Reader) (DeviceEventStartEmulating, error) {
	serial, err := r.Uint32()
	if err != nil {
		return DeviceEventStartEmulating{}, err
	}
	seq, err := r.Uint32()
	return DeviceEventStartEmulating{Serial: serial, Sequence: seq}, err
}

type DeviceEventStopEmulating struct{ Serial uint32 }

func (DeviceEventStopEmulating) EventInterface() string { return InterfaceDevice }
func (DeviceEventStopEmulating) EventOpcode() uint32     { return OpDeviceEvtStopEmulating }
func (m DeviceEventStopEmulating) Encode(w *wire.Writer) { w.PutUint32(m.Serial) }

func DecodeDeviceEventStopEmulating(r *wire.Reader) (DeviceEventStopEmulating, error) {
	v, err := r.Uint32()
	return DeviceEventStopEmulating{Serial: v}, err
}

type DeviceEventFrame struct {
	Serial    uint32
	Timestamp uint64
}

func (DeviceEventFrame) EventInterface() string { return InterfaceDevice }
func (DeviceEventFrame) EventOpcode() uint32     { return OpDeviceEvtFrame }
func (m DeviceEventFrame) Encode(w *wire.Writer) {
	w.PutUint32(m.Serial)
	w.PutUint64(m.Timestamp)
}

func DecodeDeviceEventFrame(r *wire.Reader) (DeviceEventFrame, error) {
	serial, err := r.Uint32()
	if err != nil {
		return DeviceEventFrame{}, err
	}
	ts, err := r.Uint64()
	return DeviceEventFrame{Serial: serial, Timestamp: ts}, err
}

// -------------------------------------------------------------------- pointer

const (
	OpPointerReqRelease        = 0
	OpPointerReqMotionRelative = 1
)

const (
	OpPointerEvtDestroyed      = 0
	OpPointerEvtMotionRelative = 1
)

const InterfacePointer = "ei_pointer"

type PointerRelease struct{}

func (PointerRelease) RequestInterface() string { return InterfacePointer }
func (PointerRelease) RequestOpcode() uint32     { return OpPointerReqRelease }
func (PointerRelease) Encode(*wire.Writer)       {}

func DecodePointerRelease(*wire.Reader) (PointerRelease, error) { return PointerRelease{}, nil }

type PointerMotionRelative struct{ X, Y float32 }

func (PointerMotionRelative) RequestInterface() string { return InterfacePointer }
func (PointerMotionRelative) RequestOpcode() uint32     { return OpPointerReqMotionRelative }
func (m PointerMotionRelative) Encode(w *wire.Writer) {
	w.PutFloat32(m.X)
	w.PutFloat32(m.Y)
}

func DecodePointerMotionRelative(r *wire.Reader) (PointerMotionRelative, error) {
	x, err := r.Float32()
	if err != nil {
		return PointerMotionRelative{}, err
	}
	y, err := r.Float32()
	return PointerMotionRelative{X: x, Y: y}, err
}

type PointerEventDestroyed struct{ Serial uint32 }

func (PointerEventDestroyed) EventInterface() string { return InterfacePointer }
func (PointerEventDestroyed) EventOpcode() uint32     { return OpPointerEvtDestroyed }
func (m PointerEventDestroyed) Encode(w *wire.Writer) { w.PutUint32(m.Serial) }

func DecodePointerEventDestroyed(r *wire.Reader) (PointerEventDestroyed, error) {
	v, err := r.Uint32()
	return PointerEventDestroyed{Serial: v}, err
}

type PointerEventMotionRelative struct{ X, Y float32 }

func (PointerEventMotionRelative) EventInterface() string { return InterfacePointer }
func (PointerEventMotionRelative) EventOpcode() uint32     { return OpPointerEvtMotionRelative }
func (m PointerEventMotionRelative) Encode(w *wire.Writer) {
	w.PutFloat32(m.X)
	w.PutFloat32(m.Y)
}

func DecodePointerEventMotionRelative(r *wire.Reader) (PointerEventMotionRelative, error) {
	x, err := r.Float32()
	if err != nil {
		return PointerEventMotionRelative{}, err
	}
	y, err := r.Float32()
	return PointerEventMotionRelative{X: x, Y: y}, err
}

// --------------------------------------------------------------- pointer_absolute

const (
	OpPointerAbsoluteReqRelease        = 0
	OpPointerAbsoluteReqMotionAbsolute = 1
)

const (
	OpPointerAbsoluteEvtDestroyed      = 0
	OpPointerAbsoluteEvtMotionAbsolute = 1
)

const InterfacePointerAbsolute = "ei_pointer_absolute"

type PointerAbsoluteRelease struct{}

func (PointerAbsoluteRelease) RequestInterface() string { return InterfacePointerAbsolute }
func (PointerAbsoluteRelease) RequestOpcode() uint32     { return OpPointerAbsoluteReqRelease }
func (PointerAbsoluteRelease) Encode(*wire.Writer)       {}

func DecodePointerAbsoluteRelease(*wire.Reader) (PointerAbsoluteRelease, error) {
	return PointerAbsoluteRelease{}, nil
}

type PointerAbsoluteMotionAbsolute struct{ X, Y float32 }

func (PointerAbsoluteMotionAbsolute) RequestInterface() string { return InterfacePointerAbsolute }
func (PointerAbsoluteMotionAbsolute) RequestOpcode() uint32     { return OpPointerAbsoluteReqMotionAbsolute }
func (m PointerAbsoluteMotionAbsolute) Encode(w *wire.Writer) {
	w.PutFloat32(m.X)
	w.PutFloat32(m.Y)
}

func DecodePointerAbsoluteMotionAbsolute(r *wire.Reader) (PointerAbsoluteMotionAbsolute, error) {
	x, err := r.Float32()
	if err != nil {
		return PointerAbsoluteMotionAbsolute{}, err
	}
	y, err := r.Float32()
	return PointerAbsoluteMotionAbsolute{X: x, Y: y}, err
}

type PointerAbsoluteEventDestroyed struct{ Serial uint32 }

func (PointerAbsoluteEventDestroyed) EventInterface() string { return InterfacePointerAbsolute }
func (PointerAbsoluteEventDestroyed) EventOpcode() uint32     { return OpPointerAbsoluteEvtDestroyed }
func (m PointerAbsoluteEventDestroyed) Encode(w *wire.Writer) { w.PutUint32(m.Serial) }

func DecodePointerAbsoluteEventDestroyed(r *wire.Reader) (PointerAbsoluteEventDestroyed, error) {
	v, err := r.Uint32()
	return PointerAbsoluteEventDestroyed{Serial: v}, err
}

type PointerAbsoluteEventMotionAbsolute struct{ X, Y float32 }

func (PointerAbsoluteEventMotionAbsolute) EventInterface() string { return InterfacePointerAbsolute }
func (PointerAbsoluteEventMotionAbsolute) EventOpcode() uint32 {
	return OpPointerAbsoluteEvtMotionAbsolute
}
func (m PointerAbsoluteEventMotionAbsolute) Encode(w *wire.Writer) {
	w.PutFloat32(m.X)
	w.PutFloat32(m.Y)
}

func DecodePointerAbsoluteEventMotionAbsolute(r *wire.Reader) (PointerAbsoluteEventMotionAbsolute, error) {
	x, err := r.Float32()
	if err != nil {
		return PointerAbsoluteEventMotionAbsolute{}, err
	}
	y, err := r.Float32()
	return PointerAbsoluteEventMotionAbsolute{X: x, Y: y}, err
}

// ---------------------------------------------------------------------- scroll

const (
	OpScrollReqRelease        = 0
	OpScrollReqScroll         = 1
	OpScrollReqScrollDiscrete = 2
	OpScrollReqScrollStop     = 3
)

const (
	OpScrollEvtDestroyed      = 0
	OpScrollEvtScroll         = 1
	OpScrollEvtScrollDiscrete = 2
	OpScrollEvtScrollStop     = 3
)

const InterfaceScroll = "ei_scroll"

type ScrollRelease struct{}

func (ScrollRelease) RequestInterface() string { return InterfaceScroll }
func (ScrollRelease) RequestOpcode() uint32     { return OpScrollReqRelease }
func (ScrollRelease) Encode(*wire.Writer)       {}

func DecodeScrollRelease(*wire.Reader) (ScrollRelease, error) { return ScrollRelease{}, nil }

type ScrollScroll struct{ X, Y float32 }

func (ScrollScroll) RequestInterface() string { return InterfaceScroll }
func (ScrollScroll) RequestOpcode() uint32     { return OpScrollReqScroll }
func (m ScrollScroll) Encode(w *wire.Writer) {
	w.PutFloat32(m.X)
	w.PutFloat32(m.Y)
}

func DecodeScrollScroll(r *wire.Reader) (ScrollScroll, error) {
	x, err := r.Float32()
	if err != nil {
		return ScrollScroll{}, err
	}
	y, err := r.Float32()
	return ScrollScroll{X: x, Y: y}, err
}

type ScrollScrollDiscrete struct{ X, Y int32 }

func (ScrollScrollDiscrete) RequestInterface() string { return InterfaceScroll }
func (ScrollScrollDiscrete) RequestOpcode() uint32     { return OpScrollReqScrollDiscrete }
func (m ScrollScrollDiscrete) Encode(w *wire.Writer) {
	w.PutInt32(m.X)
	w.PutInt32(m.Y)
}

func DecodeScrollScrollDiscrete(r *wire.Reader) (ScrollScrollDiscrete, error) {
	x, err := r.Int32()
	if err != nil {
		return ScrollScrollDiscrete{}, err
	}
	y, err := r.Int32()
	return ScrollScrollDiscrete{X: x, Y: y}, err
}

type ScrollScrollStop struct {
	X, Y     uint32
	IsCancel uint32
}

func (ScrollScrollStop) RequestInterface() string { return InterfaceScroll }
func (ScrollScrollStop) RequestOpcode() uint32     { return OpScrollReqScrollStop }
func (m ScrollScrollStop) Encode(w *wire.Writer) {
	w.PutUint32(m.X)
	w.PutUint32(m.Y)
	w.PutUint32(m.IsCancel)
}

func DecodeScrollScrollStop(r *wire.Reader) (ScrollScrollStop, error) {
	x, err := r.Uint32()
	if err != nil {
		return ScrollScrollStop{}, err
	}
	y, err := r.Uint32()
	if err != nil {
		return ScrollScrollStop{}, err
	}
	cancel, err := r.Uint32()
	return ScrollScrollStop{X: x, Y: y, IsCancel: cancel}, err
}

type ScrollEventDestroyed struct{ Serial uint32 }

func (ScrollEventDestroyed) EventInterface() string { return InterfaceScroll }
func (ScrollEventDestroyed) EventOpcode() uint32     { return OpScrollEvtDestroyed }
func (m ScrollEventDestroyed) Encode(w *wire.Writer) { w.PutUint32(m.Serial) }

func DecodeScrollEventDestroyed(r *wire.Reader) (ScrollEventDestroyed, error) {
	v, err := r.Uint32()
	return ScrollEventDestroyed{Serial: v}, err
}

type ScrollEventScroll struct{ X, Y float32 }

func (ScrollEventScroll) EventInterface() string { return InterfaceScroll }
func (ScrollEventScroll) EventOpcode() uint32     { return OpScrollEvtScroll }
func (m ScrollEventScroll) Encode(w *wire.Writer) {
	w.PutFloat32(m.X)
	w.PutFloat32(m.Y)
}

func DecodeScrollEventScroll(r *wire.Reader) (ScrollEventScroll, error) {
	x, err := r.Float32()
	if err != nil {
		return ScrollEventScroll{}, err
	}
	y, err := r.Float32()
	return ScrollEventScroll{X: x, Y: y}, err
}

type ScrollEventScrollDiscrete struct{ X, Y int32 }

func (ScrollEventScrollDiscrete) EventInterface() string { return InterfaceScroll }
func (ScrollEventScrollDiscrete) EventOpcode() uint32     { return OpScrollEvtScrollDiscrete }
func (m ScrollEventScrollDiscrete) Encode(w *wire.Writer) {
	w.PutInt32(m.X)
	w.PutInt32(m.Y)
}

func DecodeScrollEventScrollDiscrete(r *wire.Reader) (ScrollEventScrollDiscrete, error) {
	x, err := r.Int32()
	if err != nil {
		return ScrollEventScrollDiscrete{}, err
	}
	y, err := r.Int32()
	return ScrollEventScrollDiscrete{X: x, Y: y}, err
}

type ScrollEventScrollStop struct {
	X, Y     uint32
	IsCancel uint32
}

func (ScrollEventScrollStop) EventInterface() string { return InterfaceScroll }
func (ScrollEventScrollStop) EventOpcode() uint32     { return OpScrollEvtScrollStop }
func (m ScrollEventScrollStop) Encode(w *wire.Writer) {
	w.PutUint32(m.X)
	w.PutUint32(m.Y)
	w.PutUint32(m.IsCancel)
}

func DecodeScrollEventScrollStop(r *wire.Reader) (ScrollEventScrollStop, error) {
	x, err := r.Uint32()
	if err != nil {
		return ScrollEventScrollStop{}, err
	}
	y, err := r.Uint32()
	if err != nil {
		return ScrollEventScrollStop{}, err
	}
	cancel, err := r.Uint32()
	return ScrollEventScrollStop{X: x, Y: y, IsCancel: cancel}, err
}

// ---------------------------------------------------------------------- button

const (
	OpButtonReqRelease = 0
	OpButtonReqButton  = 1
)

const (
	OpButtonEvtDestroyed = 0
	OpButtonEvtButton    = 1
)

const InterfaceButton = "ei_button"

type ButtonRelease struct{}

func (ButtonRelease) RequestInterface() string { return InterfaceButton }
func (ButtonRelease) RequestOpcode() uint32     { return OpButtonReqRelease }
func (ButtonRelease) Encode(*wire.Writer)       {}

func DecodeButtonRelease(*wire.Reader) (ButtonRelease, error) { return ButtonRelease{}, nil }

type ButtonButton struct {
	Button uint32
	State  ButtonState
}

func (ButtonButton) RequestInterface() string { return InterfaceButton }
func (ButtonButton) RequestOpcode() uint32     { return OpButtonReqButton }
func (m ButtonButton) Encode(w *wire.Writer) {
	w.PutUint32(m.Button)
	w.PutUint32(uint32(m.State))
}

func DecodeButtonButton(r *wire.Reader) (ButtonButton, error) {
	button, err := r.Uint32()
	if err != nil {
		return ButtonButton{}, err
	}
	stateV, err := r.Uint32()
	if err != nil {
		return ButtonButton{}, err
	}
	state, err := ParseButtonState(stateV)
	return ButtonButton{Button: button, State: state}, err
}

type ButtonEventDestroyed struct{ Serial uint32 }

func (ButtonEventDestroyed) EventInterface() string { return InterfaceButton }
func (ButtonEventDestroyed) EventOpcode() uint32     { return OpButtonEvtDestroyed }
func (m ButtonEventDestroyed) Encode(w *wire.Writer) { w.PutUint32(m.Serial) }

func DecodeButtonEventDestroyed(r *wire.Reader) (ButtonEventDestroyed, error) {
	v, err := r.Uint32()
	return ButtonEventDestroyed{Serial: v}, err
}

type ButtonEventButton struct {
	Button uint32
	State  ButtonState
}

func (ButtonEventButton) EventInterface() string { return InterfaceButton }
func (ButtonEventButton) EventOpcode() uint32     { return OpButtonEvtButton }
func (m ButtonEventButton) Encode(w *wire.Writer) {
	w.PutUint32(m.Button)
	w.PutUint32(uint32(m.State))
}

func DecodeButtonEventButton(r *wire.Reader) (ButtonEventButton, error) {
	button, err := r.Uint32()
	if err != nil {
		return ButtonEventButton{}, err
	}
	stateV, err := r.Uint32()
	if err != nil {
		return ButtonEventButton{}, err
	}
	state, err := ParseButtonState(stateV)
	return ButtonEventButton{Button: button, State: state}, err
}

// -------------------------------------------------------------------- keyboard

const (
	OpKeyboardReqRelease = 0
	OpKeyboardReqKey     = 1
)

const (
	OpKeyboardEvtDestroyed = 0
	OpKeyboardEvtKeymap    = 1
	OpKeyboardEvtKey       = 2
	OpKeyboardEvtModifiers = 3
)

const InterfaceKeyboard = "ei_keyboard"

type KeyboardRelease struct{}

func (KeyboardRelease) RequestInterface() string { return InterfaceKeyboard }
func (KeyboardRelease) RequestOpcode() uint32     { return OpKeyboardReqRelease }
func (KeyboardRelease) Encode(*wire.Writer)       {}

func DecodeKeyboardRelease(*wire.Reader) (KeyboardRelease, error) { return KeyboardRelease{}, nil }

type KeyboardKey struct {
	Key   uint32
	State KeyState
}

func (KeyboardKey) RequestInterface() string { return InterfaceKeyboard }
func (KeyboardKey) RequestOpcode() uint32     { return OpKeyboardReqKey }
func (m KeyboardKey) Encode(w *wire.Writer) {
	w.PutUint32(m.Key)
	w.PutUint32(uint32(m.State))
}

func DecodeKeyboardKey(r *wire.Reader) (KeyboardKey, error) {
	key, err := r.Uint32()
	if err != nil {
		return KeyboardKey{}, err
	}
	stateV, err := r.Uint32()
	if err != nil {
		return KeyboardKey{}, err
	}
	state, err := ParseKeyState(stateV)
	return KeyboardKey{Key: key, State: state}, err
}

type KeyboardEventDestroyed struct{ Serial uint32 }

func (KeyboardEventDestroyed) EventInterface() string { return InterfaceKeyboard }
func (KeyboardEventDestroyed) EventOpcode() uint32     { return OpKeyboardEvtDestroyed }
func (m KeyboardEventDestroyed) Encode(w *wire.Writer) { w.PutUint32(m.Serial) }

func DecodeKeyboardEventDestroyed(r *wire.Reader) (KeyboardEventDestroyed, error) {
	v, err := r.Uint32()
	return KeyboardEventDestroyed{Serial: v}, err
}

type KeyboardEventKeymap struct {
	KeymapType KeymapType
	Size       uint32
	Keymap     int // fd
}

func (KeyboardEventKeymap) EventInterface() string { return InterfaceKeyboard }
func (KeyboardEventKeymap) EventOpcode() uint32     { return OpKeyboardEvtKeymap }
func (m KeyboardEventKeymap) Encode(w *wire.Writer) {
	w.PutUint32(uint32(m.KeymapType))
	w.PutUint32(m.Size)
	_ = w.PutFd(m.Keymap)
}

func DecodeKeyboardEventKeymap(r *wire.Reader) (KeyboardEventKeymap, error) {
	typeV, err := r.Uint32()
	if err != nil {
		return KeyboardEventKeymap{}, err
	}
	keymapType, err := ParseKeymapType(typeV)
	if err != nil {
		return KeyboardEventKeymap{}, err
	}
	size, err := r.Uint32()
	if err != nil {
		return KeyboardEventKeymap{}, err
	}
	fd, err := r.Fd()
	return KeyboardEventKeymap{KeymapType: keymapType, Size: size, Keymap: fd}, err
}

type KeyboardEventKey struct {
	Key   uint32
	State KeyState
}

func (KeyboardEventKey) EventInterface() string { return InterfaceKeyboard }
func (KeyboardEventKey) EventOpcode() uint32     { return OpKeyboardEvtKey }
func (m KeyboardEventKey) Encode(w *wire.Writer) {
	w.PutUint32(m.Key)
	w.PutUint32(uint32(m.State))
}

func DecodeKeyboardEventKey(r *wire.Reader) (KeyboardEventKey, error) {
	key, err := r.Uint32()
	if err != nil {
		return KeyboardEventKey{}, err
	}
	stateV, err := r.Uint32()
	if err != nil {
		return KeyboardEventKey{}, err
	}
	state, err := ParseKeyState(stateV)
	return KeyboardEventKey{Key: key, State: state}, err
}

type KeyboardEventModifiers struct {
	Serial    uint32
	Depressed uint32
	Locked    uint32
	Latched   uint32
	Group     uint32
}

func (KeyboardEventModifiers) EventInterface() string { return InterfaceKeyboard }
func (KeyboardEventModifiers) EventOpcode() uint32     { return OpKeyboardEvtModifiers }
func (m KeyboardEventModifiers) Encode(w *wire.Writer) {
	w.PutUint32(m.Serial)
	w.PutUint32(m.Depressed)
	w.PutUint32(m.Locked)
	w.PutUint32(m.Latched)
	w.PutUint32(m.Group)
}

func DecodeKeyboardEventModifiers(r *wire.Reader) (KeyboardEventModifiers, error) {
	var m KeyboardEventModifiers
	var err error
	if m.Serial, err = r.Uint32(); err != nil {
		return KeyboardEventModifiers{}, err
	}
	if m.Depressed, err = r.Uint32(); err != nil {
		return KeyboardEventModifiers{}, err
	}
	if m.Locked, err = r.Uint32(); err != nil {
		return KeyboardEventModifiers{}, err
	}
	if m.Latched, err = r.Uint32(); err != nil {
		return KeyboardEventModifiers{}, err
	}
	m.Group, err = r.Uint32()
	return m, err
}

// ----------------------------------------------------------------- touchscreen

const (
	OpTouchscreenReqRelease = 0
	OpTouchscreenReqDown    = 1
	OpTouchscreenReqMotion  = 2
	OpTouchscreenReqUp      = 3
)

const (
	OpTouchscreenEvtDestroyed = 0
	OpTouchscreenEvtDown      = 1
	OpTouchscreenEvtMotion    = 2
	OpTouchscreenEvtUp        = 3
	OpTouchscreenEvtCancel    = 4 // interface version 2
)

const InterfaceTouchscreen = "ei_touchscreen"

type TouchscreenRelease struct{}

func (TouchscreenRelease) RequestInterface() string { return InterfaceTouchscreen }
func (TouchscreenRelease) RequestOpcode() uint32     { return OpTouchscreenReqRelease }
func (TouchscreenRelease) Encode(*wire.Writer)       {}

func DecodeTouchscreenRelease(*wire.Reader) (TouchscreenRelease, error) {
	return TouchscreenRelease{}, nil
}

type TouchscreenDown struct {
	TouchID uint32
	X, Y    float32
}

func (TouchscreenDown) RequestInterface() string { return InterfaceTouchscreen }
func (TouchscreenDown) RequestOpcode() uint32     { return OpTouchscreenReqDown }
func (m TouchscreenDown) Encode(w *wire.Writer) {
	w.PutUint32(m.TouchID)
	w.PutFloat32(m.X)
	w.PutFloat32(m.Y)
}

func DecodeTouchscreenDown(r *wire.Reader) (TouchscreenDown, error) {
	id, err := r.Uint32()
	if err != nil {
		return TouchscreenDown{}, err
	}
	x, err := r.Float32()
	if err != nil {
		return TouchscreenDown{}, err
	}
	y, err := r.Float32()
	return TouchscreenDown{TouchID: id, X: x, Y: y}, err
}

type TouchscreenMotion struct {
	TouchID uint32
	X, Y    float32
}

func (TouchscreenMotion) RequestInterface() string { return InterfaceTouchscreen }
func (TouchscreenMotion) RequestOpcode() uint32     { return OpTouchscreenReqMotion }
func (m TouchscreenMotion) Encode(w *wire.Writer) {
	w.PutUint32(m.TouchID)
	w.PutFloat32(m.X)
	w.PutFloat32(m.Y)
}

func DecodeTouchscreenMotion(r *wire.Reader) (TouchscreenMotion, error) {
	id, err := r.Uint32()
	if err != nil {
		return TouchscreenMotion{}, err
	}
	x, err := r.Float32()
	if err != nil {
		return TouchscreenMotion{}, err
	}
	y, err := r.Float32()
	return TouchscreenMotion{TouchID: id, X: x, Y: y}, err
}

type TouchscreenUp struct{ TouchID uint32 }

func (TouchscreenUp) RequestInterface() string { return InterfaceTouchscreen }
func (TouchscreenUp) RequestOpcode() uint32     { return OpTouchscreenReqUp }
func (m TouchscreenUp) Encode(w *wire.Writer)   { w.PutUint32(m.TouchID) }

func DecodeTouchscreenUp(r *wire.Reader) (TouchscreenUp, error) {
	v, err := r.Uint32()
	return TouchscreenUp{TouchID: v}, err
}

type TouchscreenEventDestroyed struct{ Serial uint32 }

func (TouchscreenEventDestroyed) EventInterface() string { return InterfaceTouchscreen }
func (TouchscreenEventDestroyed) EventOpcode() uint32     { return OpTouchscreenEvtDestroyed }
func (m TouchscreenEventDestroyed) Encode(w *wire.Writer) { w.PutUint32(m.Serial) }

func DecodeTouchscreenEventDestroyed(r *wire.Reader) (TouchscreenEventDestroyed, error) {
	v, err := r.Uint32()
	return TouchscreenEventDestroyed{Serial: v}, err
}

type TouchscreenEventDown struct {
	TouchID uint32
	X, Y    float32
}

func (TouchscreenEventDown) EventInterface() string { return InterfaceTouchscreen }
func (TouchscreenEventDown) EventOpcode() uint32     { return OpTouchscreenEvtDown }
func (m TouchscreenEventDown) Encode(w *wire.Writer) {
	w.PutUint32(m.TouchID)
	w.PutFloat32(m.X)
	w.PutFloat32(m.Y)
}

func DecodeTouchscreenEventDown(r *wire.Reader) (TouchscreenEventDown, error) {
	id, err := r.Uint32()
	if err != nil {
		return TouchscreenEventDown{}, err
	}
	x, err := r.Float32()
	if err != nil {
		return TouchscreenEventDown{}, err
	}
	y, err := r.Float32()
	return TouchscreenEventDown{TouchID: id, X: x, Y: y}, err
}

type TouchscreenEventMotion struct {
	TouchID uint32
	X, Y    float32
}

func (TouchscreenEventMotion) EventInterface() string { return InterfaceTouchscreen }
func (TouchscreenEventMotion) EventOpcode() uint32     { return OpTouchscreenEvtMotion }
func (m TouchscreenEventMotion) Encode(w *wire.Writer) {
	w.PutUint32(m.TouchID)
	w.PutFloat32(m.X)
	w.PutFloat32(m.Y)
}

func DecodeTouchscreenEventMotion(r *wire.Reader) (TouchscreenEventMotion, error) {
	id, err := r.Uint32()
	if err != nil {
		return TouchscreenEventMotion{}, err
	}
	x, err := r.Float32()
	if err != nil {
		return TouchscreenEventMotion{}, err
	}
	y, err := r.Float32()
	return TouchscreenEventMotion{TouchID: id, X: x, Y: y}, err
}

type TouchscreenEventUp struct{ TouchID uint32 }

func (TouchscreenEventUp) EventInterface() string { return InterfaceTouchscreen }
func (TouchscreenEventUp) EventOpcode() uint32     { return OpTouchscreenEvtUp }
func (m TouchscreenEventUp) Encode(w *wire.Writer) { w.PutUint32(m.TouchID) }

func DecodeTouchscreenEventUp(r *wire.Reader) (TouchscreenEventUp, error) {
	v, err := r.Uint32()
	return TouchscreenEventUp{TouchID: v}, err
}

// TouchscreenEventCancel is sent only by interfaces negotiated at version 2
// or higher; it has no corresponding client request (a touch id is
// exercised by at most one of down, motion, up, cancel).
type TouchscreenEventCancel struct{ TouchID uint32 }

func (TouchscreenEventCancel) EventInterface() string { return InterfaceTouchscreen }
func (TouchscreenEventCancel) EventOpcode() uint32     { return OpTouchscreenEvtCancel }
func (m TouchscreenEventCancel) Encode(w *wire.Writer) { w.PutUint32(m.TouchID) }

func DecodeTouchscreenEventCancel(r *wire.Reader) (TouchscreenEventCancel, error) {
	v, err := r.Uint32()
	return TouchscreenEventCancel{TouchID: v}, err
}
