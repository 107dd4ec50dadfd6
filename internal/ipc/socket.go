package ipc

import (
	"encoding/binary"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// SocketPath returns the default control-socket location: under
// $XDG_RUNTIME_DIR when set, otherwise the system temp directory.
func SocketPath() string {
	dir := os.Getenv("XDG_RUNTIME_DIR")
	if dir == "" {
		dir = os.TempDir()
	}

	return filepath.Join(dir, "mpctui.sock")
}

// Handler answers one Command from a remote client.
type Handler func(Command) Response

// Server accepts control-socket connections and dispatches each one frame
// at a time: a connection carries exactly one command and one response.
type Server struct {
	ln      net.Listener
	path    string
	handle  Handler
	closing chan struct{}
}

// Serve starts listening on path, removing any stale socket file left
// behind by a previous, uncleanly-terminated instance.
func Serve(path string, handle Handler) (*Server, error) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ipc: remove stale socket: %w", err)
	}

	ln, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("ipc: listen %s: %w", path, err)
	}

	s := &Server{ln: ln, path: path, handle: handle, closing: make(chan struct{})}

	go s.acceptLoop()

	return s, nil
}

func (s *Server) acceptLoop() {
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			select {
			case <-s.closing:
				return
			default:
				log.Error().Err(err).Msg("ipc: accept")

				return
			}
		}

		go s.serveConn(conn)
	}
}

func (s *Server) serveConn(conn net.Conn) {
	defer conn.Close()

	payload, err := readFrame(conn)
	if err != nil {
		log.Error().Err(err).Msg("ipc: read command frame")

		return
	}

	cmd, err := decodeCommand(payload)
	if err != nil {
		log.Error().Err(err).Msg("ipc: decode command")
		writeResponse(conn, Response{OK: false, Message: err.Error()})

		return
	}

	resp := s.handle(cmd)
	writeResponse(conn, resp)
}

func writeResponse(conn net.Conn, resp Response) {
	body, err := encodeResponse(resp)
	if err != nil {
		log.Error().Err(err).Msg("ipc: encode response")

		return
	}

	if err := writeFrame(conn, body); err != nil {
		log.Error().Err(err).Msg("ipc: write response frame")
	}
}

// Close stops accepting new connections and removes the socket file.
func (s *Server) Close() error {
	close(s.closing)

	err := s.ln.Close()

	os.Remove(s.path)

	return err
}

// Send dials path, sends cmd, and returns the daemon's response. Dial
// failure means the daemon isn't running or the socket is stale.
func Send(path string, cmd Command) (Response, error) {
	conn, err := net.Dial("unix", path)
	if err != nil {
		return Response{}, fmt.Errorf("ipc: dial %s: %w", path, err)
	}
	defer conn.Close()

	body, err := encodeCommand(cmd)
	if err != nil {
		return Response{}, fmt.Errorf("ipc: encode command: %w", err)
	}

	if err := writeFrame(conn, body); err != nil {
		return Response{}, fmt.Errorf("ipc: write command frame: %w", err)
	}

	payload, err := readFrame(conn)
	if err != nil {
		return Response{}, fmt.Errorf("ipc: read response frame: %w", err)
	}

	return decodeResponse(payload)
}

// writeFrame and readFrame implement the length-prefixed wire format: a
// 4-byte big-endian length followed by that many bytes of JSON payload.
func writeFrame(w io.Writer, payload []byte) error {
	header := make([]byte, 4)
	binary.BigEndian.PutUint32(header, uint32(len(payload)))

	if _, err := w.Write(header); err != nil {
		return err
	}

	_, err := w.Write(payload)

	return err
}

func readFrame(r io.Reader) ([]byte, error) {
	header := make([]byte, 4)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, err
	}

	length := binary.BigEndian.Uint32(header)

	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, err
	}

	return payload, nil
}
