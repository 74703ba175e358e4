package model

// ProfileParams are the per-investor-profile tuning constants. The pipeline
// treats them as opaque numbers; only the advisor interprets them.
type ProfileParams struct {
	VolMax     float64 `yaml:"vol_max"`
	TargetMult float64 `yaml:"target_mult"`
	StopMult   float64 `yaml:"stop_mult"`
	EntryMult  float64 `yaml:"entry_mult"`
}

// PriceLevels are the suggested entry/target/stop prices derived from a
// metric row and a profile. NaN when no usable base price exists.
type PriceLevels struct {
	Entry  float64
	Target float64
	Stop   float64
}
