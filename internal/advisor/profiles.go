// Package advisor derives display-level buy/hold/avoid labels and
// entry/target/stop levels from metric rows, modulated by an
// investor-risk profile. The labels are heuristic hints, not a trading
// system.
package advisor

import "BourseDash/internal/model"

// DefaultProfiles are the built-in investor profiles. Config may override
// or extend them.
var DefaultProfiles = map[string]model.ProfileParams{
	"Agressif": {VolMax: 0.08, TargetMult: 1.10, StopMult: 0.92, EntryMult: 0.99},
	"Neutre":   {VolMax: 0.05, TargetMult: 1.07, StopMult: 0.95, EntryMult: 0.99},
	"Prudent":  {VolMax: 0.03, TargetMult: 1.05, StopMult: 0.97, EntryMult: 0.995},
}

// Advisor holds the effective profile table.
type Advisor struct {
	profiles map[string]model.ProfileParams
}

// New builds an Advisor from the defaults merged with config overrides.
func New(overrides map[string]model.ProfileParams) *Advisor {
	profiles := make(map[string]model.ProfileParams, len(DefaultProfiles))
	for name, p := range DefaultProfiles {
		profiles[name] = p
	}
	for name, p := range overrides {
		profiles[name] = p
	}
	return &Advisor{profiles: profiles}
}

// Params returns the parameters for a profile name, falling back to
// "Neutre" for an empty or unknown name.
func (a *Advisor) Params(name string) model.ProfileParams {
	if p, ok := a.profiles[name]; ok {
		return p
	}
	return a.profiles["Neutre"]
}
