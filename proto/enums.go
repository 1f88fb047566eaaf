// Package proto is the generated-style interface binding of spec §4.4: the
// 12 concrete EI interfaces (handshake, connection, callback, pingpong,
// seat, device, pointer, pointer_absolute, scroll, button, keyboard,
// touchscreen), their request/event message shapes, and their enums,
// plus the two role-level sum types (Request, Event) dispatched by opcode.
//
// Opcode numbers and field orderings are grounded verbatim in
// _examples/original_source/src/eiproto_ei.rs, the description EI's own
// code generator consumes (spec §9: "bidirectional, role-symmetric binding,
// generated from one description").
package proto

import "github.com/daedaluz/eiproto"

// ContextType distinguishes whether an ei context emulates input (Sender)
// or receives it (Receiver). Wire values match eiproto_ei.rs's ContextType.
type ContextType uint32

const (
	ContextTypeReceiver ContextType = 1
	ContextTypeSender   ContextType = 2
)

func ParseContextType(v uint32) (ContextType, error) {
	switch ContextType(v) {
	case ContextTypeReceiver, ContextTypeSender:
		return ContextType(v), nil
	default:
		return 0, eiproto.NewInvalidVariantError("ei_handshake.context_type", v)
	}
}

// DisconnectReason explains why the server tore down a connection.
type DisconnectReason uint32

const (
	DisconnectReasonDisconnected DisconnectReason = 0
	DisconnectReasonError        DisconnectReason = 1
	DisconnectReasonMode         DisconnectReason = 2
	DisconnectReasonProtocol     DisconnectReason = 3
	DisconnectReasonValue        DisconnectReason = 4
	DisconnectReasonTransport    DisconnectReason = 5
)

func ParseDisconnectReason(v uint32) (DisconnectReason, error) {
	switch DisconnectReason(v) {
	case DisconnectReasonDisconnected, DisconnectReasonError, DisconnectReasonMode,
		DisconnectReasonProtocol, DisconnectReasonValue, DisconnectReasonTransport:
		return DisconnectReason(v), nil
	default:
		return 0, eiproto.NewInvalidVariantError("ei_connection.disconnect_reason", v)
	}
}

// DeviceType distinguishes a virtual (purely emulated) device from one
// backed by a physical input device.
type DeviceType uint32

const (
	DeviceTypeVirtual  DeviceType = 1
	DeviceTypePhysical DeviceType = 2
)

func ParseDeviceType(v uint32) (DeviceType, error) {
	switch DeviceType(v) {
	case DeviceTypeVirtual, DeviceTypePhysical:
		return DeviceType(v), nil
	default:
		return 0, eiproto.NewInvalidVariantError("ei_device.device_type", v)
	}
}

// ButtonState is the press/release state of a button argument.
type ButtonState uint32

const (
	ButtonStateReleased ButtonState = 0
	ButtonStatePress    ButtonState = 1
)

func ParseButtonState(v uint32) (ButtonState, error) {
	switch ButtonState(v) {
	case ButtonStateReleased, ButtonStatePress:
		return ButtonState(v), nil
	default:
		return 0, eiproto.NewInvalidVariantError("ei_button.button_state", v)
	}
}

// KeyState is the press/release state of a key argument.
type KeyState uint32

const (
	KeyStateReleased KeyState = 0
	KeyStatePress    KeyState = 1
)

func ParseKeyState(v uint32) (KeyState, error) {
	switch KeyState(v) {
	case KeyStateReleased, KeyStatePress:
		return KeyState(v), nil
	default:
		return 0, eiproto.NewInvalidVariantError("ei_keyboard.key_state", v)
	}
}

// KeymapType identifies the format of a keyboard's keymap fd.
type KeymapType uint32

const (
	KeymapTypeXkb KeymapType = 1
)

func ParseKeymapType(v uint32) (KeymapType, error) {
	switch KeymapType(v) {
	case KeymapTypeXkb:
		return KeymapType(v), nil
	default:
		return 0, eiproto.NewInvalidVariantError("ei_keyboard.keymap_type", v)
	}
}
