package recorder

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// AppState is the small piece of state that persists across CLI
// invocations: which BLE smart cube to reconnect to by default.
type AppState struct {
	LastDeviceID   string `json:"last_device_id,omitempty"`
	LastDeviceName string `json:"last_device_name,omitempty"`
}

// StateFile manages the application state file on disk.
type StateFile struct {
	path  string
	state AppState
}

// DefaultStatePath returns the default state file path.
func DefaultStatePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("recorder: get home directory: %w", err)
	}
	dir := filepath.Join(home, ".cubesolve")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("recorder: create config directory: %w", err)
	}
	return filepath.Join(dir, "state.json"), nil
}

// NewStateFile loads (or initializes) the state file at path.
func NewStateFile(path string) (*StateFile, error) {
	sf := &StateFile{path: path}
	if err := sf.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return sf, nil
}

// NewDefaultStateFile loads the state file at DefaultStatePath.
func NewDefaultStateFile() (*StateFile, error) {
	path, err := DefaultStatePath()
	if err != nil {
		return nil, err
	}
	return NewStateFile(path)
}

// Load reads the state from disk.
func (sf *StateFile) Load() error {
	data, err := os.ReadFile(sf.path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, &sf.state)
}

// Save writes the state to disk.
func (sf *StateFile) Save() error {
	data, err := json.MarshalIndent(sf.state, "", "  ")
	if err != nil {
		return fmt.Errorf("recorder: marshal state: %w", err)
	}
	if err := os.WriteFile(sf.path, data, 0644); err != nil {
		return fmt.Errorf("recorder: write state file: %w", err)
	}
	return nil
}

// State returns the current state.
func (sf *StateFile) State() AppState { return sf.state }

// SetLastDevice records the most recently connected BLE device.
func (sf *StateFile) SetLastDevice(deviceID, deviceName string) error {
	sf.state.LastDeviceID = deviceID
	sf.state.LastDeviceName = deviceName
	return sf.Save()
}

// LastDeviceID returns the last connected device ID.
func (sf *StateFile) LastDeviceID() string { return sf.state.LastDeviceID }
