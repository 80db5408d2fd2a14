package styles

// DefaultAnimation is applied whenever a section names no preset or an
// unknown one. Sections always animate in; there is no "none" preset.
const DefaultAnimation = "fade-up"

// AnimationPreset describes the hidden and visible keyframe states of an
// entrance animation. The catalog is served to the storefront, which plays
// the presets client side when a section scrolls into view.
type AnimationPreset struct {
	Name    string                 `json:"name"`
	Hidden  map[string]interface{} `json:"hidden"`
	Visible map[string]interface{} `json:"visible"`
}

// HoverEffect describes the state applied while the pointer is over a
// section.
type HoverEffect struct {
	Name  string                 `json:"name"`
	State map[string]interface{} `json:"state"`
}

var animationPresets = map[string]AnimationPreset{
	"fade-up": {
		Name:    "fade-up",
		Hidden:  map[string]interface{}{"opacity": 0, "y": 40},
		Visible: map[string]interface{}{"opacity": 1, "y": 0, "duration": 0.8},
	},
	"cyberpunk-glitch": {
		Name:    "cyberpunk-glitch",
		Hidden:  map[string]interface{}{"opacity": 0, "x": -20, "skewX": 10},
		Visible: map[string]interface{}{"opacity": 1, "x": 0, "skewX": 0, "duration": 0.4},
	},
	"vortex-in": {
		Name:    "vortex-in",
		Hidden:  map[string]interface{}{"opacity": 0, "scale": 0.5, "rotate": -180},
		Visible: map[string]interface{}{"opacity": 1, "scale": 1, "rotate": 0, "duration": 1.2},
	},
	"neon-pulse": {
		Name:    "neon-pulse",
		Hidden:  map[string]interface{}{"opacity": 0, "scale": 0.95, "brightness": 0.5},
		Visible: map[string]interface{}{"opacity": 1, "scale": 1, "brightness": 1.2, "duration": 0.8, "repeat": true},
	},
	"liquid-reveal": {
		Name:    "liquid-reveal",
		Hidden:  map[string]interface{}{"opacity": 0, "clip": "circle(0% at 50% 50%)"},
		Visible: map[string]interface{}{"opacity": 1, "clip": "circle(150% at 50% 50%)", "duration": 1.5},
	},
	"matrix-rain": {
		Name:    "matrix-rain",
		Hidden:  map[string]interface{}{"opacity": 0, "y": -50},
		Visible: map[string]interface{}{"opacity": 1, "y": 0, "stagger": 0.1},
	},
	"cinematic-zoom": {
		Name:    "cinematic-zoom",
		Hidden:  map[string]interface{}{"opacity": 0, "scale": 1.1, "blur": 10},
		Visible: map[string]interface{}{"opacity": 1, "scale": 1, "blur": 0, "duration": 1.5},
	},
	"3d-flip": {
		Name:    "3d-flip",
		Hidden:  map[string]interface{}{"opacity": 0, "rotateX": 90},
		Visible: map[string]interface{}{"opacity": 1, "rotateX": 0, "duration": 0.8},
	},
}

var hoverEffects = map[string]HoverEffect{
	"glow":  {Name: "glow", State: map[string]interface{}{"scale": 1.02, "boxShadow": "0 0 20px rgba(255,255,255,0.5)"}},
	"lift":  {Name: "lift", State: map[string]interface{}{"y": -10, "boxShadow": "0 20px 40px rgba(0,0,0,0.2)"}},
	"shake": {Name: "shake", State: map[string]interface{}{"x": []interface{}{0, -5, 5, -5, 5, 0}}},
	"neon-border": {Name: "neon-border", State: map[string]interface{}{
		"boxShadow": []interface{}{"0 0 5px #fff", "0 0 10px #fff", "0 0 20px #ff00de", "0 0 40px #ff00de"},
	}},
}

// ResolveAnimation returns the preset name to play for a section. Unknown or
// empty names fall back to the default preset, never to no animation.
func ResolveAnimation(name string) string {
	if _, ok := animationPresets[name]; ok {
		return name
	}
	return DefaultAnimation
}

// ResolveHover returns the hover effect name, or empty when the section has
// no valid effect configured.
func ResolveHover(name string) string {
	if _, ok := hoverEffects[name]; ok {
		return name
	}
	return ""
}

// AnimationPresets returns the full preset catalog keyed by name.
func AnimationPresets() map[string]AnimationPreset {
	out := make(map[string]AnimationPreset, len(animationPresets))
	for k, v := range animationPresets {
		out[k] = v
	}
	return out
}

// HoverEffects returns the hover effect catalog keyed by name.
func HoverEffects() map[string]HoverEffect {
	out := make(map[string]HoverEffect, len(hoverEffects))
	for k, v := range hoverEffects {
		out[k] = v
	}
	return out
}
