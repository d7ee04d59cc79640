package rackshelf

import (
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/rs/zerolog"
)

// DefaultMaxDepth is how many levels of racks-within-racks the decoder
// descends into before truncating. The format allows unbounded nesting, so
// the cap is what keeps a crafted document from recursing forever.
const DefaultMaxDepth = 10

// NumMacroSlots is the number of indexed macro slots in the preset schema.
// Live 12 racks carry 16 slots, of which at most the first 8 are shown as
// knobs in older Live versions.
const NumMacroSlots = 16

var (
	// ErrDecompression means the input is not a valid gzip stream, i.e. not
	// an Ableton rack file at all.
	ErrDecompression = errors.New("not a gzip-compressed rack file")

	// ErrMalformedDocument means the input decompressed fine but the wrapped
	// document is not parseable XML.
	ErrMalformedDocument = errors.New("malformed rack document")
)

// Decoder decodes Ableton Live rack preset files (.adg/.adv) into Racks. The
// zero value is ready to use: DefaultMaxDepth for nesting and no diagnostics.
// A Decoder holds no state between calls and is safe for concurrent use.
type Decoder struct {
	// MaxDepth caps the rack nesting depth; structure below the cap is
	// reported as leaf devices instead of being descended into. Zero or
	// negative means DefaultMaxDepth.
	MaxDepth int

	// Log receives per-level diagnostics about parse-path decisions (which
	// branch location was used, chain and device counts, truncation). The
	// zero value logs nothing.
	Log zerolog.Logger
}

// Decode decodes the raw bytes of a rack file using a default Decoder. The
// name, usually the file name stem, becomes the rack name.
func Decode(data []byte, name string) (*Rack, error) {
	return (&Decoder{}).Decode(data, name)
}

// DecodeFile reads and decodes a rack file, deriving the rack name from the
// file name.
func DecodeFile(path string) (*Rack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read file %v: %w", path, err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Decode(data, name)
}

// Decode decompresses data, parses the wrapped project document and walks the
// device-group tree into a Rack. It either returns a fully populated Rack or
// an error wrapping ErrDecompression/ErrMalformedDocument; missing optional
// elements (macros, chains, names, presets) are never errors and resolve to
// empty or default values. A file that decodes fine but wraps no group device
// yields Kind KindUnknown with zero chains.
func (d *Decoder) Decode(data []byte, name string) (*Rack, error) {
	if name == "" {
		name = "Unknown"
	}
	xmlData, err := inflate(data)
	if err != nil {
		return nil, err
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(xmlData); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("%w: document has no root element", ErrMalformedDocument)
	}
	rack := &Rack{
		Name:          name,
		Kind:          KindUnknown,
		MacroControls: []MacroControl{},
		Chains:        []Chain{},
	}
	preset, device, kind := findGroupDevice(doc)
	if device == nil {
		d.Log.Debug().Str("rack", name).Msg("no group device element, not a rack")
		return rack, nil
	}
	d.Log.Debug().Str("rack", name).Str("kind", string(kind)).Msg("detected rack type")
	rack.Kind = kind
	rack.MacroControls = parseMacros(device)
	rack.Chains = d.parseChains(device, preset, 0)
	return rack, nil
}

func inflate(data []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompression, err)
	}
	defer zr.Close()
	xmlData, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompression, err)
	}
	return xmlData, nil
}

var groupDeviceKinds = map[string]RackKind{
	"AudioEffectGroupDevice": KindAudioEffect,
	"InstrumentGroupDevice":  KindInstrument,
	"MidiEffectGroupDevice":  KindMidiEffect,
}

// findGroupDevice locates the top-level group device of the preset. The usual
// shape is Ableton/GroupDevicePreset/Device/<XxxGroupDevice>; as a fallback
// the three group device tags are searched anywhere in the document, since
// not every preset wraps them in a GroupDevicePreset.
func findGroupDevice(doc *etree.Document) (preset, device *etree.Element, kind RackKind) {
	if preset = doc.FindElement("//GroupDevicePreset"); preset != nil {
		if container := preset.SelectElement("Device"); container != nil {
			for _, child := range container.ChildElements() {
				if k, ok := groupDeviceKinds[child.Tag]; ok {
					return preset, child, k
				}
			}
		}
	}
	for _, tag := range []string{"AudioEffectGroupDevice", "InstrumentGroupDevice", "MidiEffectGroupDevice"} {
		if device := doc.FindElement("//" + tag); device != nil {
			return nil, device, groupDeviceKinds[tag]
		}
	}
	return nil, nil, KindUnknown
}

// parseMacros scans the indexed macro slots of a group device and returns the
// slots the rack author actually assigned, in ascending slot order. A slot
// still carrying its default "Macro N" display name is considered unassigned
// and omitted. Values are kept exactly as stored in the document.
func parseMacros(device *etree.Element) []MacroControl {
	macros := make([]MacroControl, 0, 8)
	for i := 0; i < NumMacroSlots; i++ {
		nameElem := device.SelectElement("MacroDisplayNames." + strconv.Itoa(i))
		if nameElem == nil {
			continue
		}
		name := nameElem.SelectAttrValue("Value", "")
		if name == "" || name == fmt.Sprintf("Macro %d", i+1) {
			continue
		}
		value := 0.0
		if ctrl := device.SelectElement("MacroControls." + strconv.Itoa(i)); ctrl != nil {
			if manual := ctrl.SelectElement("Manual"); manual != nil {
				value, _ = strconv.ParseFloat(manual.SelectAttrValue("Value", "0"), 64)
			}
		}
		macros = append(macros, MacroControl{Index: i, Name: name, Value: value})
	}
	return macros
}

// branchElements returns the chain branch elements for a group device. The
// BranchPresets element lives in two different places depending on how the
// preset was saved: inside the group device element itself, or in the
// enclosing GroupDevicePreset as a sibling of the Device element. Both
// locations are probed for every rack type, device-level first; relying on a
// rack-type→location mapping misses chains on real files.
func (d *Decoder) branchElements(device, preset *etree.Element, depth int) []*etree.Element {
	if device != nil {
		if bp := device.SelectElement("BranchPresets"); bp != nil {
			if branches := branchChildren(bp); len(branches) > 0 {
				d.Log.Debug().Int("depth", depth).Int("branches", len(branches)).Str("location", "device").Msg("found branch presets")
				return branches
			}
		}
	}
	if preset != nil {
		if bp := preset.SelectElement("BranchPresets"); bp != nil {
			if branches := branchChildren(bp); len(branches) > 0 {
				d.Log.Debug().Int("depth", depth).Int("branches", len(branches)).Str("location", "parent").Msg("found branch presets")
				return branches
			}
		}
	}
	return nil
}

// branchChildren collects the branch preset children in document order. The
// tag varies by rack type (AudioEffectBranchPreset, InstrumentBranchPreset,
// MidiEffectBranchPreset, DrumBranchPreset), so match on the common suffix.
func branchChildren(bp *etree.Element) []*etree.Element {
	var branches []*etree.Element
	for _, child := range bp.ChildElements() {
		if strings.HasSuffix(child.Tag, "BranchPreset") {
			branches = append(branches, child)
		}
	}
	return branches
}

func (d *Decoder) parseChains(device, preset *etree.Element, depth int) []Chain {
	branches := d.branchElements(device, preset, depth)
	chains := make([]Chain, 0, len(branches))
	for i, branch := range branches {
		chains = append(chains, d.parseChain(branch, i, depth))
	}
	return chains
}

func (d *Decoder) parseChain(branch *etree.Element, index, depth int) Chain {
	chain := Chain{Name: fmt.Sprintf("Chain %d", index+1), Devices: []Device{}}
	if nameElem := branch.SelectElement("Name"); nameElem != nil {
		if v := nameElem.SelectAttrValue("Value", ""); v != "" {
			chain.Name = v
		}
	}
	if solo := branch.SelectElement("IsSoloed"); solo != nil {
		chain.IsSoloed = solo.SelectAttrValue("Value", "") == "true"
	}
	if presets := branch.SelectElement("DevicePresets"); presets != nil {
		// children are AbletonDevicePreset for plain devices and
		// GroupDevicePreset for nested racks
		for _, devicePreset := range presets.ChildElements() {
			container := devicePreset.SelectElement("Device")
			if container == nil {
				continue
			}
			for _, deviceElem := range container.ChildElements() {
				chain.Devices = append(chain.Devices, d.parseDevice(deviceElem, devicePreset, depth))
			}
		}
	}
	d.Log.Debug().Int("depth", depth).Str("chain", chain.Name).Int("devices", len(chain.Devices)).Msg("parsed chain")
	return chain
}

// parseDevice parses one device element of a chain. preset is the enclosing
// device preset element, needed as the alternate branch location when the
// device turns out to be a nested rack.
func (d *Decoder) parseDevice(elem, preset *etree.Element, depth int) Device {
	typ := elem.Tag
	dev := Device{Type: typ, Name: DeviceDisplayName(typ), IsOn: true}
	if user := elem.SelectElement("UserName"); user != nil {
		if custom := user.SelectAttrValue("Value", ""); custom != "" {
			dev.Name = custom
			// a renamed device keeps its stock name around as the preset name,
			// unless the rename is just a case variation of it
			if stock := DeviceDisplayName(typ); !strings.EqualFold(stock, custom) {
				dev.PresetName = stock
			}
		}
	}
	if on := elem.SelectElement("On"); on != nil {
		if manual := on.SelectElement("Manual"); manual != nil {
			dev.IsOn = manual.SelectAttrValue("Value", "true") == "true"
		}
	}
	if _, ok := groupDeviceKinds[typ]; !ok {
		return dev
	}
	if next := depth + 1; next < d.maxDepth() {
		dev.Chains = d.parseChains(elem, preset, next)
	} else {
		d.Log.Debug().Int("depth", next).Str("device", typ).Msg("nesting depth cap reached, truncating")
	}
	return dev
}

func (d *Decoder) maxDepth() int {
	if d.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return d.MaxDepth
}
