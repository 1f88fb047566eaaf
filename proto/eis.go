package proto

import (
	"github.com/daedaluz/eiproto"
	"github.com/daedaluz/eiproto/wire"
)

// Interfaces lists every concrete interface name this binding knows,
// mirroring the 12-interface set eiproto_ei.rs describes.
var Interfaces = []string{
	InterfaceHandshake, InterfaceConnection, InterfaceCallback, InterfacePingpong,
	InterfaceSeat, InterfaceDevice, InterfacePointer, InterfacePointerAbsolute,
	InterfaceScroll, InterfaceButton, InterfaceKeyboard, InterfaceTouchscreen,
}

// DecodeRequest decodes the body of a message known to carry a request
// (client→server direction) for the named interface and opcode. This is
// the dispatch an eis-side connection uses on every incoming message,
// mirroring spec §4.4's "opcode dispatch".
func DecodeRequest(iface string, opcode uint32, r *wire.Reader) (Request, error) {
	switch iface {
	case InterfaceHandshake:
		switch opcode {
		case OpHandshakeReqVersion:
			return wrapReq(DecodeHandshakeHandshakeVersion(r))
		case OpHandshakeReqFinish:
			return wrapReq(DecodeHandshakeFinish(r))
		case OpHandshakeReqContextType:
			return wrapReq(DecodeHandshakeSetContextType(r))
		case OpHandshakeReqName:
			return wrapReq(DecodeHandshakeName(r))
		case OpHandshakeReqInterfaceVersion:
			return wrapReq(DecodeHandshakeInterfaceVersion(r))
		}
	case InterfaceConnection:
		switch opcode {
		case OpConnectionReqSync:
			return wrapReq(DecodeConnectionSync(r))
		case OpConnectionReqDisconnect:
			return wrapReq(DecodeConnectionDisconnect(r))
		}
	case InterfacePingpong:
		switch opcode {
		case OpPingpongReqDone:
			return wrapReq(DecodePingpongDone(r))
		}
	case InterfaceSeat:
		switch opcode {
		case OpSeatReqRelease:
			return wrapReq(DecodeSeatRelease(r))
		case OpSeatReqBind:
			return wrapReq(DecodeSeatBind(r))
		}
	case InterfaceDevice:
		switch opcode {
		case OpDeviceReqRelease:
			return wrapReq(DecodeDeviceRelease(r))
		case OpDeviceReqStartEmulating:
			return wrapReq(DecodeDeviceStartEmulating(r))
		case OpDeviceReqStopEmulating:
			return wrapReq(DecodeDeviceStopEmulating(r))
		case OpDeviceReqFrame:
			return wrapReq(DecodeDeviceFrame(r))
		}
	case InterfacePointer:
		switch opcode {
		case OpPointerReqRelease:
			return wrapReq(DecodePointerRelease(r))
		case OpPointerReqMotionRelative:
			return wrapReq(DecodePointerMotionRelative(r))
		}
	case InterfacePointerAbsolute:
		switch opcode {
		case OpPointerAbsoluteReqRelease:
			return wrapReq(DecodePointerAbsoluteRelease(r))
		case OpPointerAbsoluteReqMotionAbsolute:
			return wrapReq(DecodePointerAbsoluteMotionAbsolute(r))
		}
	case InterfaceScroll:
		switch opcode {
		case OpScrollReqRelease:
			return wrapReq(DecodeScrollRelease(r))
		case OpScrollReqScroll:
			return wrapReq(DecodeScrollScroll(r))
		case OpScrollReqScrollDiscrete:
			return wrapReq(DecodeScrollScrollDiscrete(r))
		case OpScrollReqScrollStop:
			return wrapReq(DecodeScrollScrollStop(r))
		}
	case InterfaceButton:
		switch opcode {
		case OpButtonReqRelease:
			return wrapReq(DecodeButtonRelease(r))
		case OpButtonReqButton:
			return wrapReq(DecodeButtonButton(r))
		}
	case InterfaceKeyboard:
		switch opcode {
		case OpKeyboardReqRelease:
			return wrapReq(DecodeKeyboardRelease(r))
		case OpKeyboardReqKey:
			return wrapReq(DecodeKeyboardKey(r))
		}
	case InterfaceTouchscreen:
		switch opcode {
		case OpTouchscreenReqRelease:
			return wrapReq(DecodeTouchscreenRelease(r))
		case OpTouchscreenReqDown:
			return wrapReq(DecodeTouchscreenDown(r))
		case OpTouchscreenReqMotion:
			return wrapReq(DecodeTouchscreenMotion(r))
		case OpTouchscreenReqUp:
			return wrapReq(DecodeTouchscreenUp(r))
		}
	}
	return nil, eiproto.NewInvalidOpcodeError(iface, opcode)
}

// DecodeEvent decodes the body of a message known to carry an event
// (server→client direction) for the named interface and opcode.
func DecodeEvent(iface string, opcode uint32, r *wire.Reader) (Event, error) {
	switch iface {
	case InterfaceHandshake:
		switch opcode {
		case OpHandshakeEvtVersion:
			return wrapEvt(DecodeHandshakeEventVersion(r))
		case OpHandshakeEvtInterfaceVersion:
			return wrapEvt(DecodeHandshakeEventInterfaceVersion(r))
		case OpHandshakeEvtConnection:
			return wrapEvt(DecodeHandshakeEventConnection(r))
		}
	case InterfaceConnection:
		switch opcode {
		case OpConnectionEvtDisconnected:
			return wrapEvt(DecodeConnectionEventDisconnected(r))
		case OpConnectionEvtSeat:
			return wrapEvt(DecodeConnectionEventSeat(r))
		case OpConnectionEvtInvalidObject:
			return wrapEvt(DecodeConnectionEventInvalidObject(r))
		case OpConnectionEvtPing:
			return wrapEvt(DecodeConnectionEventPing(r))
		}
	case InterfaceCallback:
		switch opcode {
		case OpCallbackEvtDone:
			return wrapEvt(DecodeCallbackEventDone(r))
		}
	case InterfaceSeat:
		switch opcode {
		case OpSeatEvtDestroyed:
			return wrapEvt(DecodeSeatEventDestroyed(r))
		case OpSeatEvtName:
			return wrapEvt(DecodeSeatEventName(r))
		case OpSeatEvtCapability:
			return wrapEvt(DecodeSeatEventCapability(r))
		case OpSeatEvtDone:
			return wrapEvt(DecodeSeatEventDone(r))
		case OpSeatEvtDevice:
			return wrapEvt(DecodeSeatEventDevice(r))
		}
	case InterfaceDevice:
		switch opcode {
		case OpDeviceEvtDestroyed:
			return wrapEvt(DecodeDeviceEventDestroyed(r))
		case OpDeviceEvtName:
			return wrapEvt(DecodeDeviceEventName(r))
		case OpDeviceEvtDeviceType:
			return wrapEvt(DecodeDeviceEventDeviceType(r))
		case OpDeviceEvtDimensions:
			return wrapEvt(DecodeDeviceEventDimensions(r))
		case OpDeviceEvtRegion:
			return wrapEvt(DecodeDeviceEventRegion(r))
		case OpDeviceEvtInterface:
			return wrapEvt(DecodeDeviceEventInterface(r))
		case OpDeviceEvtDone:
			return wrapEvt(DecodeDeviceEventDone(r))
		case OpDeviceEvtResumed:
			return wrapEvt(DecodeDeviceEventResumed(r))
		case OpDeviceEvtPaused:
			return wrapEvt(DecodeDeviceEventPaused(r))
		case OpDeviceEvtStartEmulating:
			return wrapEvt(DecodeDeviceEventStartEmulating(r))
		case OpDeviceEvtStopEmulating:
			return wrapEvt(DecodeDeviceEventStopEmulating(r))
		case OpDeviceEvtFrame:
			return wrapEvt(DecodeDeviceEventFrame(r))
		case OpDeviceEvtRegionMappingID:
			return wrapEvt(DecodeDeviceEventRegionMappingID(r))
		}
	case InterfacePointer:
		switch opcode {
		case OpPointerEvtDestroyed:
			return wrapEvt(DecodePointerEventDestroyed(r))
		case OpPointerEvtMotionRelative:
			return wrapEvt(DecodePointerEventMotionRelative(r))
		}
	case InterfacePointerAbsolute:
		switch opcode {
		case OpPointerAbsoluteEvtDestroyed:
			return wrapEvt(DecodePointerAbsoluteEventDestroyed(r))
		case OpPointerAbsoluteEvtMotionAbsolute:
			return wrapEvt(DecodePointerAbsoluteEventMotionAbsolute(r))
		}
	case InterfaceScroll:
		switch opcode {
		case OpScrollEvtDestroyed:
			return wrapEvt(DecodeScrollEventDestroyed(r))
		case OpScrollEvtScroll:
			return wrapEvt(DecodeScrollEventScroll(r))
		case OpScrollEvtScrollDiscrete:
			return wrapEvt(DecodeScrollEventScrollDiscrete(r))
		case OpScrollEvtScrollStop:
			return wrapEvt(DecodeScrollEventScrollStop(r))
		}
	case InterfaceButton:
		switch opcode {
		case OpButtonEvtDestroyed:
			return wrapEvt(DecodeButtonEventDestroyed(r))
		case OpButtonEvtButton:
			return wrapEvt(DecodeButtonEventButton(r))
		}
	case InterfaceKeyboard:
		switch opcode {
		case OpKeyboardEvtDestroyed:
			return wrapEvt(DecodeKeyboardEventDestroyed(r))
		case OpKeyboardEvtKeymap:
			return wrapEvt(DecodeKeyboardEventKeymap(r))
		case OpKeyboardEvtKey:
			return wrapEvt(DecodeKeyboardEventKey(r))
		case OpKeyboardEvtModifiers:
			return wrapEvt(DecodeKeyboardEventModifiers(r))
		}
	case InterfaceTouchscreen:
		switch opcode {
		case OpTouchscreenEvtDestroyed:
			return wrapEvt(DecodeTouchscreenEventDestroyed(r))
		case OpTouchscreenEvtDown:
			return wrapEvt(DecodeTouchscreenEventDown(r))
		case OpTouchscreenEvtMotion:
			return wrapEvt(DecodeTouchscreenEventMotion(r))
		case OpTouchscreenEvtUp:
			return wrapEvt(DecodeTouchscreenEventUp(r))
		case OpTouchscreenEvtCancel:
			return wrapEvt(DecodeTouchscreenEventCancel(r))
		}
	}
	return nil, eiproto.NewInvalidOpcodeError(iface, opcode)
}

// wrapReq adapts a (concreteType, error) decode result to (Request, error),
// so every case arm in DecodeRequest's switch stays a single line.
func wrapReq[T Request](v T, err error) (Request, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}

func wrapEvt[T Event](v T, err error) (Event, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}
