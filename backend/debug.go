package backend

import (
	"fmt"
	"os"
	"reflect"

	"github.com/op/go-logging"

	"github.com/daedaluz/eiproto/registry"
)

// Tracer receives one call per message crossing a Backend, in the format
// spec §4.6/§6 describes for REIS_DEBUG: "interface@<id-hex>.<op-name>(arg,
// arg, …)", prefixed with " -> " for incoming messages.
type Tracer interface {
	Incoming(obj registry.Object, opcode uint32, req interface{}, evt interface{})
	Outgoing(obj registry.Object, opcode uint32, req interface{}, evt interface{})
}

var debugLog = logging.MustGetLogger("eiproto")

// logTracer backs Tracer with github.com/op/go-logging, gated by the
// REIS_DEBUG environment variable the way the original tooling gates its
// wire trace.
type logTracer struct{}

// NewDebugTracer returns a Tracer if REIS_DEBUG is set in the environment,
// or nil otherwise — callers assign the result directly to Backend.Debug,
// which treats nil as "tracing disabled".
func NewDebugTracer() Tracer {
	if os.Getenv("REIS_DEBUG") == "" {
		return nil
	}
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.NewBackendFormatter(backend, logging.MustStringFormatter(
		`%{time:15:04:05.000} %{message}`,
	))
	logging.SetBackend(formatter)
	return logTracer{}
}

func (logTracer) Incoming(obj registry.Object, opcode uint32, req, evt interface{}) {
	debugLog.Debugf(" -> %s", format(obj, opcode, req, evt))
}

func (logTracer) Outgoing(obj registry.Object, opcode uint32, req, evt interface{}) {
	debugLog.Debugf("%s", format(obj, opcode, req, evt))
}

func format(obj registry.Object, opcode uint32, req, evt interface{}) string {
	payload := req
	if payload == nil {
		payload = evt
	}
	return fmt.Sprintf("%s@%#x.%s(%s)", obj.Interface, obj.ID, opName(payload, opcode), formatArgs(payload))
}

func opName(payload interface{}, opcode uint32) string {
	if payload == nil {
		return fmt.Sprintf("op%d", opcode)
	}
	return reflect.TypeOf(payload).Name()
}

// formatArgs renders a message's fields as a comma-separated argument list.
func formatArgs(payload interface{}) string {
	if payload == nil {
		return ""
	}
	v := reflect.ValueOf(payload)
	t := v.Type()
	out := ""
	for i := 0; i < t.NumField(); i++ {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%v", v.Field(i).Interface())
	}
	return out
}
