package rackshelf

type (
	// Rack is the analysis result for a single Ableton Live rack preset
	// (.adg/.adv file): the rack's parallel signal chains and the macro knobs
	// mapped on it. The JSON field names follow the analysis documents served
	// and stored by the rackshelf site, so a Rack marshals losslessly into the
	// exact shape the frontend and the document store already consume.
	Rack struct {
		// Name of the rack. Racks do not reliably store their own name in the
		// preset document, so this is derived from the file name (or whatever
		// name the caller passed to Decode).
		Name string `json:"rack_name" yaml:"rack_name"`

		// Kind tells which of the three group devices the preset wraps.
		// KindUnknown means the file decoded fine but is not a rack (e.g. a
		// single-device preset); such files have no chains.
		Kind RackKind `json:"rack_type" yaml:"rack_type"`

		// MacroControls lists only the macro slots the author actually
		// assigned, in ascending slot order. Untouched slots are omitted
		// rather than zero-filled.
		MacroControls []MacroControl `json:"macro_controls" yaml:"macro_controls"`

		// Chains are the parallel signal paths of the rack, in the order they
		// appear in the preset document, which is the signal-flow order shown
		// in Live.
		Chains []Chain `json:"chains" yaml:"chains"`
	}

	// RackKind is the group device class wrapped by the preset. The values are
	// the literal element names of Ableton's project-file schema.
	RackKind string

	// Chain is one parallel signal path within a rack, holding an ordered
	// list of devices.
	Chain struct {
		// Name is the chain name shown in Live. Chains without an explicit
		// name get "Chain N", N being the 1-based position.
		Name     string   `json:"name" yaml:"name"`
		IsSoloed bool     `json:"is_soloed" yaml:"is_soloed"`
		Devices  []Device `json:"devices" yaml:"devices"`
	}

	// Device is an effect, instrument or MIDI device within a chain. A device
	// may itself be a rack, in which case Chains holds its nested chains.
	Device struct {
		// Name is the display name: the user-assigned name when the device
		// was renamed, otherwise the stock name of the device class.
		Name string `json:"name" yaml:"name"`

		// Type is the device class identifier from the document, e.g.
		// "BeatRepeat" or "Wavetable". See DeviceNames for the mapping to
		// stock display names.
		Type string `json:"type" yaml:"type"`

		IsOn bool `json:"is_on" yaml:"is_on"`

		// PresetName is set when the device display name was customized and
		// the underlying device is still worth reporting, e.g. a Reverb
		// renamed to "Shimmer" has PresetName "Reverb".
		PresetName string `json:"preset_name,omitempty" yaml:"preset_name,omitempty"`

		// Chains is non-nil only when the device is itself a group device
		// (a rack within the rack). Nesting deeper than the decoder's
		// MaxDepth is truncated, leaving the device as a plain leaf.
		Chains []Chain `json:"chains,omitempty" yaml:"chains,omitempty"`
	}

	// MacroControl is one of the rack's macro knobs. Value is the raw control
	// value as stored in the document, on the 0–127 scale Live uses
	// internally; it is deliberately not rescaled to 0.0–1.0.
	MacroControl struct {
		Index int     `json:"index" yaml:"index"`
		Name  string  `json:"name,omitempty" yaml:"name,omitempty"`
		Value float64 `json:"value" yaml:"value"`
	}
)

const (
	KindAudioEffect RackKind = "AudioEffectGroupDevice"
	KindInstrument  RackKind = "InstrumentGroupDevice"
	KindMidiEffect  RackKind = "MidiEffectGroupDevice"
	KindUnknown     RackKind = "Unknown"
)

func (k RackKind) String() string {
	switch k {
	case KindAudioEffect:
		return "Audio Effect Rack"
	case KindInstrument:
		return "Instrument Rack"
	case KindMidiEffect:
		return "MIDI Effect Rack"
	}
	return "Unknown"
}

// IsRack tells whether the device is itself a group device i.e. a nested rack.
// Note that a nested rack truncated by the decoder's depth cap reports false,
// as its chains were not descended into.
func (d *Device) IsRack() bool {
	return d.Chains != nil
}

// NumDevices returns the number of devices in the chain, descending into
// nested racks. A nested rack counts as one device plus its contents.
func (c *Chain) NumDevices() int {
	total := 0
	for i := range c.Devices {
		total += c.Devices[i].NumDevices()
	}
	return total
}

// NumDevices returns 1 for the device itself plus the devices of its nested
// chains, if any.
func (d *Device) NumDevices() int {
	total := 1
	for i := range d.Chains {
		total += d.Chains[i].NumDevices()
	}
	return total
}

// NumDevices returns the total number of devices in the rack, including the
// contents of nested racks.
func (r *Rack) NumDevices() int {
	total := 0
	for i := range r.Chains {
		total += r.Chains[i].NumDevices()
	}
	return total
}

// Copy makes a deep copy of a MacroControl.
func (m *MacroControl) Copy() MacroControl {
	return *m
}

// Copy makes a deep copy of a Device.
func (d *Device) Copy() Device {
	ret := *d
	if d.Chains != nil {
		ret.Chains = make([]Chain, len(d.Chains))
		for i := range d.Chains {
			ret.Chains[i] = d.Chains[i].Copy()
		}
	}
	return ret
}

// Copy makes a deep copy of a Chain.
func (c *Chain) Copy() Chain {
	devices := make([]Device, len(c.Devices))
	for i := range c.Devices {
		devices[i] = c.Devices[i].Copy()
	}
	return Chain{Name: c.Name, IsSoloed: c.IsSoloed, Devices: devices}
}

// Copy makes a deep copy of a Rack.
func (r *Rack) Copy() Rack {
	macros := make([]MacroControl, len(r.MacroControls))
	copy(macros, r.MacroControls)
	chains := make([]Chain, len(r.Chains))
	for i := range r.Chains {
		chains[i] = r.Chains[i].Copy()
	}
	return Rack{Name: r.Name, Kind: r.Kind, MacroControls: macros, Chains: chains}
}
