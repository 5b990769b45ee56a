package types

// ------------------------
// Serial console
// ------------------------

type Parity uint8

const (
	ParityNone Parity = iota
	ParityEven
	ParityOdd
)

func (p Parity) String() string {
	switch p {
	case ParityEven:
		return "even"
	case ParityOdd:
		return "odd"
	default:
		return "none"
	}
}

// ParseParity accepts "none", "even" and "odd"; anything else is none.
func ParseParity(s string) Parity {
	switch s {
	case "even":
		return ParityEven
	case "odd":
		return ParityOdd
	default:
		return ParityNone
	}
}

func (p Parity) MarshalJSON() ([]byte, error) { return []byte(`"` + p.String() + `"`), nil }

func (p Parity) MarshalYAML() (any, error) { return p.String(), nil }

func (p *Parity) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	*p = ParseParity(s)
	return nil
}

// SerialConfig describes the command console line. Zero fields take the
// 115200 8N1 defaults of the original instrument.
type SerialConfig struct {
	Port     string `json:"port,omitempty" yaml:"port,omitempty"`
	Baud     uint32 `json:"baud,omitempty" yaml:"baud,omitempty"`
	DataBits uint8  `json:"data_bits,omitempty" yaml:"data_bits,omitempty"`
	StopBits uint8  `json:"stop_bits,omitempty" yaml:"stop_bits,omitempty"`
	Parity   Parity `json:"parity" yaml:"parity,omitempty"`
	Echo     bool   `json:"echo,omitempty" yaml:"echo,omitempty"`
}

// WithDefaults fills zero fields.
func (c SerialConfig) WithDefaults() SerialConfig {
	if c.Baud == 0 {
		c.Baud = 115200
	}
	if c.DataBits == 0 {
		c.DataBits = 8
	}
	if c.StopBits == 0 {
		c.StopBits = 1
	}
	return c
}
