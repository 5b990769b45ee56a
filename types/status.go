package types

// ------------------------
// Instrument identity & status
// ------------------------

// Identity is reported by *IDN? as "manufacturer,model,serial,version".
type Identity struct {
	Manufacturer string `json:"manufacturer" yaml:"manufacturer"`
	Model        string `json:"model" yaml:"model"`
	Serial       string `json:"serial" yaml:"serial"`
	Version      string `json:"version" yaml:"version"`
}

// SwitchState is the read-back state of one switch device.
type SwitchState struct {
	Endpoint string `json:"endpoint"` // "A".."G"
	Name     string `json:"name"`     // e.g. "SMA_A"
	Pin      string `json:"pin"`      // "RF1".."RF6", "RFC"
}

// RouterStatus is a diagnostic snapshot taken from hardware readback.
type RouterStatus struct {
	Idle      bool          `json:"idle"`
	Connected []string      `json:"connected"` // normalized paths, ascending
	Switches  []SwitchState `json:"switches"`
	RxDrops   uint32        `json:"rx_drops"`
	TS        int64         `json:"ts_ms"`
}
