package ble

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	cube "github.com/arjwilde/cubesolve"
	"tinygo.org/x/bluetooth"
)

// Errors returned by Client methods.
var (
	ErrNotConnected     = errors.New("ble: not connected to device")
	ErrAlreadyConnected = errors.New("ble: already connected to a device")
	ErrDeviceNotFound   = errors.New("ble: device not found")
)

var (
	svcUUID    = bluetooth.NewUUID(mustParseUUID(serviceUUID))
	notifyChar = bluetooth.NewUUID(mustParseUUID(notifyUUID))
	writeChar  = bluetooth.NewUUID(mustParseUUID(writeUUID))
)

func mustParseUUID(s string) [16]byte {
	var out [16]byte
	clean := strings.ReplaceAll(s, "-", "")
	for i := 0; i < 16; i++ {
		var b byte
		fmt.Sscanf(clean[i*2:i*2+2], "%02x", &b)
		out[i] = b
	}
	return out
}

// ScanResult describes a discovered GoCube peripheral.
type ScanResult struct {
	Name    string
	Address bluetooth.Address
}

// Client manages a BLE connection to a single GoCube smart cube and turns
// its rotation notifications into cube.Move values.
type Client struct {
	adapter *bluetooth.Adapter

	mu         sync.RWMutex
	device     bluetooth.Device
	rxChar     bluetooth.DeviceCharacteristic
	connected  bool
	deviceName string
	battery    int
	onMove     func(cube.Move)
}

// New creates a Client bound to the default local BLE adapter.
func New() (*Client, error) {
	adapter := bluetooth.DefaultAdapter
	if err := adapter.Enable(); err != nil {
		return nil, fmt.Errorf("ble: enable adapter: %w", err)
	}
	return &Client{adapter: adapter, battery: -1}, nil
}

// OnMove registers the callback invoked, on whatever goroutine the BLE
// stack delivers notifications on, once per decoded face turn.
func (c *Client) OnMove(fn func(cube.Move)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onMove = fn
}

// Scan looks for GoCube peripherals for up to timeout.
func (c *Client) Scan(ctx context.Context, timeout time.Duration) ([]ScanResult, error) {
	var mu sync.Mutex
	var results []ScanResult
	seen := make(map[string]bool)
	done := make(chan struct{})

	go func() {
		c.adapter.Scan(func(adapter *bluetooth.Adapter, result bluetooth.ScanResult) {
			name := result.LocalName()
			addr := result.Address.String()

			mu.Lock()
			defer mu.Unlock()
			if seen[addr] || !strings.HasPrefix(strings.ToLower(name), "gocube") {
				return
			}
			seen[addr] = true
			results = append(results, ScanResult{Name: name, Address: result.Address})
		})
		close(done)
	}()

	select {
	case <-time.After(timeout):
	case <-ctx.Done():
	}
	c.adapter.StopScan()
	<-done

	return results, nil
}

// Connect establishes a connection to result and subscribes to its
// rotation notifications.
func (c *Client) Connect(ctx context.Context, result ScanResult) error {
	c.mu.Lock()
	if c.connected {
		c.mu.Unlock()
		return ErrAlreadyConnected
	}
	c.mu.Unlock()

	device, err := c.adapter.Connect(result.Address, bluetooth.ConnectionParams{})
	if err != nil {
		return fmt.Errorf("ble: connect: %w", err)
	}

	services, err := device.DiscoverServices([]bluetooth.UUID{svcUUID})
	if err != nil || len(services) == 0 {
		device.Disconnect()
		return fmt.Errorf("ble: discover GoCube service: %w", err)
	}

	chars, err := services[0].DiscoverCharacteristics([]bluetooth.UUID{notifyChar, writeChar})
	if err != nil {
		device.Disconnect()
		return fmt.Errorf("ble: discover characteristics: %w", err)
	}

	var notify, write bluetooth.DeviceCharacteristic
	for _, ch := range chars {
		switch ch.UUID() {
		case notifyChar:
			notify = ch
		case writeChar:
			write = ch
		}
	}

	if err := notify.EnableNotifications(c.handleNotification); err != nil {
		device.Disconnect()
		return fmt.Errorf("ble: enable notifications: %w", err)
	}

	c.mu.Lock()
	c.device = device
	c.rxChar = write
	c.connected = true
	c.deviceName = result.Name
	c.mu.Unlock()

	c.requestBattery()
	return nil
}

// Disconnect closes the current connection, if any.
func (c *Client) Disconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.connected {
		return nil
	}
	err := c.device.Disconnect()
	c.connected = false
	c.deviceName = ""
	c.battery = -1
	return err
}

// IsConnected reports whether a device is currently connected.
func (c *Client) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

// DeviceName returns the connected device's advertised name.
func (c *Client) DeviceName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.deviceName
}

// Battery returns the last known battery percentage, or -1 if unknown.
func (c *Client) Battery() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.battery
}

func (c *Client) requestBattery() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.connected {
		return ErrNotConnected
	}
	data := buildCommand(cmdRequestBattery)
	if _, err := c.rxChar.WriteWithoutResponse(data); err != nil {
		_, err = c.rxChar.Write(data)
		return err
	}
	return nil
}

func (c *Client) handleNotification(data []byte) {
	f, err := parseFrame(data)
	if err != nil {
		return
	}

	switch f.msgType {
	case msgTypeBattery:
		if len(f.payload) > 0 {
			c.mu.Lock()
			c.battery = int(f.payload[0])
			c.mu.Unlock()
		}
	case msgTypeRotation:
		moves, err := decodeRotations(f.payload)
		if err != nil {
			return
		}
		c.mu.RLock()
		cb := c.onMove
		c.mu.RUnlock()
		if cb == nil {
			return
		}
		for _, m := range moves {
			cb(m)
		}
	}
}
