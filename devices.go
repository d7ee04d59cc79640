package rackshelf

import "sort"

// DeviceNames maps the device class identifiers appearing as element names in
// Ableton's project-file schema to the stock display names shown in Live.
// Covers the Live 12 device set; a few classes have aliases because the same
// device serializes under different names depending on its mode.
var DeviceNames = map[string]string{
	// audio effects
	"AlignDelay":             "Align Delay",
	"Amp":                    "Amp",
	"AudioEffectGroupDevice": "Audio Effect Rack",
	"AutoFilter":             "Auto Filter",
	"AutoPan":                "Auto Pan",
	"AutoShift":              "Auto Shift",
	"BeatRepeat":             "Beat Repeat",
	"Cabinet":                "Cabinet",
	"ChannelEq":              "Channel EQ",
	"Chorus":                 "Chorus-Ensemble",
	"ChromaticChorus":        "Chorus-Ensemble", // same device, different mode
	"Compressor2":            "Compressor",
	"Corpus":                 "Corpus",
	"Delay":                  "Delay",
	"DrumBuss":               "Drum Buss",
	"DynamicTube":            "Dynamic Tube",
	"Tube":                   "Dynamic Tube",
	"Echo":                   "Echo",
	"EnvelopeFollower":       "Envelope Follower",
	"FilterEQ3":              "EQ Three",
	"Eq3":                    "EQ Three",
	"Eq8":                    "EQ Eight",
	"Erosion":                "Erosion",
	"ExternalAudioEffect":    "External Audio Effect",
	"FilterDelay":            "Filter Delay",
	"Gate":                   "Gate",
	"GlueCompressor":         "Glue Compressor",
	"GrainDelay":             "Grain Delay",
	"HybridReverb":           "Hybrid Reverb",
	"LFO":                    "LFO",
	"Limiter":                "Limiter",
	"Looper":                 "Looper",
	"MultibandDynamics":      "Multiband Dynamics",
	"Overdrive":              "Overdrive",
	"Pedal":                  "Pedal",
	"Phaser":                 "Phaser",
	"PhaserFlanger":          "Phaser-Flanger",
	"Flanger":                "Flanger",
	"Redux":                  "Redux",
	"Resonators":             "Resonators",
	"Reverb":                 "Reverb",
	"Roar":                   "Roar",
	"Saturator":              "Saturator",
	"Shaper":                 "Shaper",
	"Shifter":                "Shifter",
	"FrequencyShifter":       "Frequency Shifter",
	"Frequency":              "Frequency Shifter",
	"SpectralResonator":      "Spectral Resonator",
	"SpectralTime":           "Spectral Time",
	"Spectrum":               "Spectrum",
	"Tuner":                  "Tuner",
	"Utility":                "Utility",
	"VinylDistortion":        "Vinyl Distortion",
	"Vocoder":                "Vocoder",
	"ConvolutionReverb":      "Convolution Reverb",
	"ConvolutionReverbPro":   "Convolution Reverb Pro",
	"InMeasurementDevice":    "IR Measurement Device",
	"ColorLimiter":           "Color Limiter",
	"GatedDelay":             "Gated Delay",
	"PitchHack":              "Pitch Hack",
	"ReEnveloper":            "Re-Enveloper",
	"SpectralBlur":           "Spectral Blur",
	"VectorDelay":            "Vector Delay",
	"VectorFade":             "Vector Fade",
	"ArrangementLooper":      "Arrangement Looper",
	"Performer":              "Performer",
	"Prearranger":            "Prearranger",
	"SurroundPanner":         "Surround Panner",

	// instruments
	"AnalogDevice":          "Analog",
	"Collision":             "Collision",
	"DrumRack":              "Drum Rack",
	"InstrumentRack":        "Instrument Rack",
	"Electric":              "Electric",
	"ExternalInstrument":    "External Instrument",
	"GranulatorIII":         "Granulator III",
	"InstrumentImpulse":     "Impulse",
	"Meld":                  "Meld",
	"Operator":              "Operator",
	"Poli":                  "Poli",
	"Sampler":               "Sampler",
	"Simpler":               "Simpler",
	"Tension":               "Tension",
	"Wavetable":             "Wavetable",
	"Bass":                  "Bass",
	"Drift":                 "Drift",
	"DrumSampler":           "Drum Sampler",
	"DSClang":               "DS Clang",
	"DSClap":                "DS Clap",
	"DSCymbal":              "DS Cymbal",
	"DSFM":                  "DS FM",
	"DSHH":                  "DS HH",
	"DSKick":                "DS Kick",
	"DSSnare":               "DS Snare",
	"DSTom":                 "DS Tom",
	"InstrumentGroupDevice": "Instrument Rack",
	"MidiEffectGroupDevice": "MIDI Effect Rack",
	"DrumGroupDevice":       "Drum Rack",
	"Treee":                 "Tree Tone",
	"VectorFM":              "Vector FM",
	"VectorGrain":           "Vector Grain",

	// MIDI effects
	"Arpeggiator":       "Arpeggiator",
	"BouncyNotes":       "Bouncy Notes",
	"CCControl":         "CC Control",
	"Chord":             "Chord",
	"EnvelopeMidi":      "Envelope MIDI",
	"ExpressionControl": "Expression Control",
	"ExpressiveChords":  "Expressive Chords",
	"MelodicSteps":      "Melodic Steps",
	"Microtuner":        "Microtuner",
	"MidiEffectRack":    "MIDI Effect Rack",
	"MidiMonitor":       "MIDI Monitor",
	"MPEControl":        "MPE Control",
	"NoteEcho":          "Note Echo",
	"NoteLength":        "Note Length",
	"Pitch":             "Pitch",
	"Random":            "Random",
	"RhythmicSteps":     "Rhythmic Steps",
	"Scale":             "Scale",
	"ShaperMidi":        "Shaper MIDI",
	"StepSequencer":     "SQ Sequencer",
	"StepArp":           "Step Arp",
	"Velocity":          "Velocity",
}

// DeviceTypes is a list of all the known device class identifiers, sorted
// alphabetically.
var DeviceTypes []string

func init() {
	DeviceTypes = make([]string, 0, len(DeviceNames))
	for k := range DeviceNames {
		DeviceTypes = append(DeviceTypes, k)
	}
	sort.Strings(DeviceTypes)
}

// DeviceDisplayName returns the stock display name for a device class
// identifier. Unknown classes (e.g. Max for Live devices or classes added in
// newer Live versions) are returned as-is, so the caller always gets
// something presentable.
func DeviceDisplayName(typ string) string {
	if name, ok := DeviceNames[typ]; ok {
		return name
	}
	return typ
}
