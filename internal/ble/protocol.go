// Package ble connects to a GoCube-compatible smart cube over Bluetooth
// Low Energy and turns its rotation notifications into cube.Move values.
// It has no dependency on the solver; it only produces a move stream.
package ble

import (
	"errors"
	"fmt"

	cube "github.com/arjwilde/cubesolve"
)

// GoCube BLE service and characteristic UUIDs.
const (
	serviceUUID = "6e400001-b5a3-f393-e0a9-e50e24dcca9e"
	notifyUUID  = "6e400003-b5a3-f393-e0a9-e50e24dcca9e" // TX, notify
	writeUUID   = "6e400002-b5a3-f393-e0a9-e50e24dcca9e" // RX, write
)

// Message frame constants. Frame format:
//
//	[0x2A] [length] [type] [payload...] [checksum] [0x0D] [0x0A]
//
// length counts bytes from the type field through the trailing CRLF.
const (
	framePrefix  byte = 0x2A
	frameSuffix1 byte = 0x0D
	frameSuffix2 byte = 0x0A
)

// Message type identifiers.
const (
	msgTypeRotation byte = 0x01
	msgTypeBattery  byte = 0x05
)

// Command codes written to the RX characteristic.
const (
	cmdRequestBattery byte = 0x32
)

var (
	errInvalidPrefix   = errors.New("ble: invalid frame prefix")
	errInvalidSuffix   = errors.New("ble: invalid frame suffix")
	errInvalidChecksum = errors.New("ble: invalid frame checksum")
	errFrameTooShort   = errors.New("ble: frame too short")
)

// frame is a parsed GoCube notification.
type frame struct {
	msgType byte
	payload []byte
}

// parseFrame validates and unwraps a raw BLE notification payload.
func parseFrame(data []byte) (frame, error) {
	if len(data) < 5 {
		return frame{}, errFrameTooShort
	}
	if data[0] != framePrefix {
		return frame{}, errInvalidPrefix
	}

	length := int(data[1])
	if len(data) < 2+length {
		return frame{}, fmt.Errorf("ble: expected %d bytes, got %d", 2+length, len(data))
	}

	checksumIdx := length - 1
	if checksumIdx < 2 {
		return frame{}, errFrameTooShort
	}
	if data[checksumIdx+1] != frameSuffix1 || data[checksumIdx+2] != frameSuffix2 {
		return frame{}, errInvalidSuffix
	}

	var sum byte
	for i := 0; i < checksumIdx; i++ {
		sum += data[i]
	}
	if sum != data[checksumIdx] {
		return frame{}, fmt.Errorf("%w: want 0x%02X, got 0x%02X", errInvalidChecksum, data[checksumIdx], sum)
	}

	return frame{msgType: data[2], payload: data[3:checksumIdx]}, nil
}

// buildCommand encodes a zero-payload command frame.
func buildCommand(cmd byte) []byte {
	length := byte(0x04) // type, checksum, CR, LF
	checksum := framePrefix + length + cmd
	return []byte{framePrefix, length, cmd, checksum, frameSuffix1, frameSuffix2}
}

// faceColor names the six GoCube face color indices, in the order the
// device reports them.
var faceColor = [6]cube.Color{
	cube.Blue,
	cube.Green,
	cube.White,
	cube.Yellow,
	cube.Red,
	cube.Orange,
}

// decodeRotations turns a rotation payload into moves. Payloads are pairs
// of bytes: [face+direction code, center orientation]. Even codes turn
// their face clockwise, odd codes counter-clockwise; the code divided by
// two selects the color, which is mapped back to the face that carries
// that color at rest.
func decodeRotations(payload []byte) ([]cube.Move, error) {
	if len(payload)%2 != 0 {
		return nil, fmt.Errorf("ble: rotation payload has odd length %d", len(payload))
	}

	moves := make([]cube.Move, 0, len(payload)/2)
	for i := 0; i < len(payload); i += 2 {
		code := payload[i]
		colorIdx := code / 2
		if int(colorIdx) >= len(faceColor) {
			return nil, fmt.Errorf("ble: unknown face color index %d", colorIdx)
		}
		clockwise := code%2 == 0
		m, err := moveForColor(faceColor[colorIdx], clockwise)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// moveForColor maps a face's rest color and turn direction to the
// quarter-turn move of the face that carries that color.
func moveForColor(c cube.Color, clockwise bool) (cube.Move, error) {
	switch c {
	case cube.White:
		if clockwise {
			return cube.MoveU, nil
		}
		return cube.MoveUPrime, nil
	case cube.Yellow:
		if clockwise {
			return cube.MoveD, nil
		}
		return cube.MoveDPrime, nil
	case cube.Green:
		if clockwise {
			return cube.MoveL, nil
		}
		return cube.MoveLPrime, nil
	case cube.Blue:
		if clockwise {
			return cube.MoveR, nil
		}
		return cube.MoveRPrime, nil
	case cube.Red:
		if clockwise {
			return cube.MoveF, nil
		}
		return cube.MoveFPrime, nil
	case cube.Orange:
		if clockwise {
			return cube.MoveB, nil
		}
		return cube.MoveBPrime, nil
	default:
		return 0, fmt.Errorf("ble: no move for color %s", c)
	}
}
