package eis

import (
	"github.com/daedaluz/eiproto/backend"
	"github.com/daedaluz/eiproto/handshake"
	"github.com/daedaluz/eiproto/proto"
	"github.com/daedaluz/eiproto/transport"
)

// Connection is one server-side ei connection: transport, handshake, and
// the high-level request translator, plus the seat/device bookkeeping a
// compositor needs to advertise its input topology.
type Connection struct {
	backend   *backend.Backend
	handshake *handshake.ServerDriver
	converter *RequestConverter
}

func newConnection(conn *transport.Conn, version uint32, offered map[string]uint32) *Connection {
	b := backend.New(conn, backend.RoleServer)
	hd := handshake.NewServerDriver(b, version, offered)
	hd.Start()
	return &Connection{backend: b, handshake: hd, converter: NewRequestConverter(b)}
}

// Fd returns the underlying socket descriptor for an integrator's poll set.
func (c *Connection) Fd() int { return c.backend.Fd() }

// Flush writes as much of the pending output as the socket currently
// accepts; see backend.Backend.Flush.
func (c *Connection) Flush() (bool, error) { return c.backend.Flush() }

// Close closes the underlying connection.
func (c *Connection) Close() error { return c.backend.Close() }

// SetDebug installs t as the wire tracer (see backend.NewDebugTracer),
// or disables tracing if t is nil.
func (c *Connection) SetDebug(t backend.Tracer) { c.backend.Debug = t }

// HandshakeDone reports whether the handshake has completed.
func (c *Connection) HandshakeDone() bool { return c.handshake.Done() }

// ClientName is the name the client gave during the handshake, valid once
// HandshakeDone reports true.
func (c *Connection) ClientName() string { return c.handshake.ClientName }

// Dispatch drains every complete message currently available, driving the
// handshake state machine first and the request translator afterward.
func (c *Connection) Dispatch() ([]Notification, error) {
	var notes []Notification
	for {
		if !c.backend.Pending() {
			more, err := c.backend.FillFromSocket()
			if err != nil {
				return notes, err
			}
			if !more {
				return notes, nil
			}
			continue
		}
		msg, err := c.backend.Read()
		if err != nil {
			return notes, err
		}
		if msg == nil {
			return notes, nil
		}
		if !c.handshake.Done() {
			if err := c.handshake.HandleRequest(msg.Request); err != nil {
				return notes, err
			}
			continue
		}
		ns, err := c.converter.HandleRequest(msg.Object, msg.Request)
		if err != nil {
			return notes, err
		}
		notes = append(notes, ns...)
	}
}

// AddSeat mints a seat object, advertises it to the client with its
// capabilities, and sends the trailing "done" that closes its setup burst
// (spec §4.7's seat/device setup aggregation, mirrored from the client
// side's perspective but driven by the server that owns the topology).
func (c *Connection) AddSeat(name string, capabilities map[string]uint64) uint64 {
	seatID := c.backend.Registry().NewID()
	c.backend.Registry().Insert(seatID, proto.InterfaceSeat, 1)
	c.backend.SendEvent(c.handshake.ConnectionID, proto.ConnectionEventSeat{Seat: seatID, Version: 1})
	c.backend.SendEvent(seatID, proto.SeatEventName{Name: name})
	for iface, mask := range capabilities {
		c.backend.SendEvent(seatID, proto.SeatEventCapability{Mask: mask, Interface: iface})
	}
	c.backend.SendEvent(seatID, proto.SeatEventDone{})
	return seatID
}

// AddDevice mints a device under seatID, advertises its identity and
// geometry, and sends the trailing "done".
func (c *Connection) AddDevice(seatID uint64, name string, deviceType proto.DeviceType, width, height uint32) uint64 {
	deviceID := c.backend.Registry().NewID()
	c.backend.Registry().Insert(deviceID, proto.InterfaceDevice, 1)
	c.converter.RegisterDevice(deviceID)
	c.backend.SendEvent(seatID, proto.SeatEventDevice{Device: deviceID, Version: 1})
	c.backend.SendEvent(deviceID, proto.DeviceEventName{Name: name})
	c.backend.SendEvent(deviceID, proto.DeviceEventDeviceType{DeviceType: deviceType})
	c.backend.SendEvent(deviceID, proto.DeviceEventDimensions{Width: width, Height: height})
	c.backend.SendEvent(deviceID, proto.DeviceEventDone{})
	return deviceID
}

// AddInputInterface mints a sub-object (pointer, button, scroll, keyboard,
// or touchscreen) under deviceID and announces it via ei_device.interface.
func (c *Connection) AddInputInterface(deviceID uint64, interfaceName string, version uint32) uint64 {
	objID := c.backend.Registry().NewID()
	c.backend.Registry().Insert(objID, interfaceName, version)
	c.converter.RegisterSubObject(objID, deviceID)
	c.backend.SendEvent(deviceID, proto.DeviceEventInterface{Object: objID, InterfaceName: interfaceName, Version: version})
	return objID
}

// CancelTouch sends ei_touchscreen.cancel for touchID on touchObjID,
// terminating a touch without a matching up: a touch id is exercised by at
// most one of down, motion, up, cancel (spec §3). Unlike down/motion/up,
// cancel has no corresponding client request — it only ever flows this
// direction, which is why it has no counterpart in eis.RequestConverter.
func (c *Connection) CancelTouch(touchObjID uint64, touchID uint32) {
	c.backend.SendEvent(touchObjID, proto.TouchscreenEventCancel{TouchID: touchID})
}
