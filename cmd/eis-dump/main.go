// Command eis-dump is a diagnostic EIS compositor: it listens on an ei
// socket, accepts clients one at a time, advertises to each a single
// virtual seat and pointer/keyboard device, and prints every notification
// the client produces to stdout.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/urfave/cli"

	"github.com/daedaluz/eiproto/backend"
	"github.com/daedaluz/eiproto/eis"
	"github.com/daedaluz/eiproto/internal/ttysize"
	"github.com/daedaluz/eiproto/proto"
)

func main() {
	app := cli.NewApp()
	app.Name = "eis-dump"
	app.Usage = "accept ei clients one at a time and dump their input events"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "socket",
			Value: "",
			Usage: "socket path to listen on (default: eis.SocketPath())",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "trace every wire message via REIS_DEBUG-style logging",
		},
		cli.BoolFlag{
			Name:  "tty",
			Usage: "report the controlling tty's geometry before listening",
		},
	}
	app.Action = run
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	if c.Bool("tty") {
		if ws, err := ttysize.Get(os.Stdout.Fd()); err == nil {
			fmt.Fprintf(os.Stderr, "tty: %dx%d (%dx%d px)\n", ws.Cols, ws.Rows, ws.XPixels, ws.YPixels)
		} else {
			fmt.Fprintf(os.Stderr, "tty: %v\n", err)
		}
	}

	path := c.String("socket")
	if path == "" {
		path = eis.SocketPath()
	}

	offered := map[string]uint32{
		proto.InterfaceConnection:      1,
		proto.InterfaceSeat:            1,
		proto.InterfaceDevice:          1,
		proto.InterfacePointer:         1,
		proto.InterfacePointerAbsolute: 1,
		proto.InterfaceScroll:          1,
		proto.InterfaceButton:          1,
		proto.InterfaceKeyboard:        1,
		proto.InterfaceTouchscreen:     1,
		proto.InterfaceCallback:        1,
		proto.InterfacePingpong:        1,
	}
	l, err := eis.Listen(path, 1, offered)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", path, err)
	}
	defer l.Close()
	fmt.Fprintf(os.Stderr, "listening on %s\n", path)

	var tracer backend.Tracer
	if c.Bool("debug") {
		tracer = backend.NewDebugTracer()
	}

	for {
		conn, err := l.Accept()
		if err != nil {
			return err
		}
		if conn == nil {
			time.Sleep(10 * time.Millisecond)
			continue
		}
		if tracer != nil {
			conn.SetDebug(tracer)
		}
		serveOne(conn)
	}
}

func serveOne(conn *eis.Connection) {
	defer conn.Close()

	for !conn.HandshakeDone() {
		if _, err := conn.Dispatch(); err != nil {
			fmt.Fprintf(os.Stderr, "handshake: %v\n", err)
			return
		}
		if _, err := conn.Flush(); err != nil {
			fmt.Fprintf(os.Stderr, "flush: %v\n", err)
			return
		}
		time.Sleep(time.Millisecond)
	}
	fmt.Fprintf(os.Stderr, "client %q connected\n", conn.ClientName())

	seat := conn.AddSeat("eis-dump seat", map[string]uint64{
		proto.InterfacePointer:     1,
		proto.InterfaceKeyboard:    1,
		proto.InterfaceTouchscreen: 1,
	})
	device := conn.AddDevice(seat, "eis-dump virtual pointer", proto.DeviceTypeVirtual, 0, 0)
	conn.AddInputInterface(device, proto.InterfacePointer, 1)
	conn.AddInputInterface(device, proto.InterfaceKeyboard, 1)
	if _, err := conn.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "flush: %v\n", err)
		return
	}

	for {
		notes, err := conn.Dispatch()
		if err != nil {
			fmt.Fprintf(os.Stderr, "dispatch: %v\n", err)
			return
		}
		for _, n := range notes {
			dumpNotification(n)
			if _, ok := n.(eis.Disconnect); ok {
				return
			}
		}
		if _, err := conn.Flush(); err != nil {
			fmt.Fprintf(os.Stderr, "flush: %v\n", err)
			return
		}
		time.Sleep(time.Millisecond)
	}
}

func dumpNotification(n eis.Notification) {
	switch v := n.(type) {
	case eis.Frame:
		fmt.Printf("frame device=%#x ts=%d events=%d\n", v.Device, v.Timestamp, len(v.Events))
		for _, e := range v.Events {
			fmt.Printf("  %+v\n", e)
		}
	case eis.Sync:
		fmt.Printf("sync callback=%#x\n", v.Callback)
	case eis.Released:
		fmt.Printf("released %s@%#x\n", v.Object.Interface, v.Object.ID)
	case eis.DeviceStartEmulating:
		fmt.Printf("device %#x start emulating (sequence %d)\n", v.Device, v.Sequence)
	case eis.DeviceStopEmulating:
		fmt.Printf("device %#x stop emulating\n", v.Device)
	case eis.Disconnect:
		fmt.Println("client disconnected")
	default:
		fmt.Printf("%+v\n", v)
	}
}
