package styles

import (
	"reflect"
	"testing"
)

func TestResolveHeightKeywords(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"screen", "100vh"},
		{"large", "800px"},
		{"medium", "500px"},
		{"420px", "420px"},
	}

	for _, tc := range cases {
		got := Resolve(map[string]interface{}{"height": tc.in})
		if len(got) != 1 || got[0].Property != "height" || got[0].Value != tc.want {
			t.Fatalf("height %q: got %v, want %s", tc.in, got, tc.want)
		}
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	settings := map[string]interface{}{
		"height":          "screen",
		"backgroundColor": "#fdf6ee",
		"padding":         map[string]interface{}{"top": "10px", "bottom": "30px"},
		"paddingTop":      "20px",
		"gap":             float64(16),
	}

	first := Resolve(settings)
	second := Resolve(settings)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("resolve is not deterministic:\n%v\n%v", first, second)
	}
}

// A flat per-side key overrides the object value for that side only; the
// object still supplies the remaining sides.
func TestFlatSpacingKeyOverridesObjectSide(t *testing.T) {
	decls := Resolve(map[string]interface{}{
		"padding":    map[string]interface{}{"top": "10px", "bottom": "30px"},
		"paddingTop": "20px",
	})

	values := map[string]string{}
	for _, d := range decls {
		values[d.Property] = d.Value
	}

	if values["padding-top"] != "20px" {
		t.Fatalf("expected flat key to win, got %q", values["padding-top"])
	}
	if values["padding-bottom"] != "30px" {
		t.Fatalf("expected object side to survive, got %q", values["padding-bottom"])
	}
	if _, ok := values["padding-left"]; ok {
		t.Fatal("unset side should emit no declaration")
	}
}

func TestDisjointSettingsMergeCleanly(t *testing.T) {
	spacingOnly := Resolve(map[string]interface{}{"paddingTop": "8px"})
	colorOnly := Resolve(map[string]interface{}{"backgroundColor": "#fff"})
	both := Resolve(map[string]interface{}{"paddingTop": "8px", "backgroundColor": "#fff"})

	want := map[string]string{}
	for _, d := range append(spacingOnly, colorOnly...) {
		want[d.Property] = d.Value
	}
	got := map[string]string{}
	for _, d := range both {
		got[d.Property] = d.Value
	}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("merged settings diverge from union of parts:\n got %v\nwant %v", got, want)
	}
}

func TestResolveBorderRadiusPerCorner(t *testing.T) {
	decls := Resolve(map[string]interface{}{
		"border": map[string]interface{}{
			"width": float64(2),
			"style": "solid",
			"color": "#d4af37",
			"radius": map[string]interface{}{
				"tl": float64(8), "tr": float64(8), "br": float64(0), "bl": float64(0),
			},
		},
	})

	values := map[string]string{}
	for _, d := range decls {
		values[d.Property] = d.Value
	}
	if values["border-width"] != "2px" || values["border-style"] != "solid" {
		t.Fatalf("unexpected border declarations: %v", values)
	}
	if values["border-top-left-radius"] != "8px" || values["border-bottom-right-radius"] != "0px" {
		t.Fatalf("unexpected radius declarations: %v", values)
	}
}

func TestResolveShadowListJoined(t *testing.T) {
	decls := Resolve(map[string]interface{}{
		"boxShadow": []interface{}{
			map[string]interface{}{"x": float64(0), "y": float64(4), "blur": float64(12), "spread": float64(0), "color": "rgba(0,0,0,0.2)"},
			map[string]interface{}{"x": float64(0), "y": float64(1), "blur": float64(2), "spread": float64(0), "color": "#000", "inset": true},
		},
	})

	if len(decls) != 1 {
		t.Fatalf("expected one box-shadow declaration, got %v", decls)
	}
	want := "0px 4px 12px 0px rgba(0,0,0,0.2), inset 0px 1px 2px 0px #000"
	if decls[0].Value != want {
		t.Fatalf("shadow value mismatch:\n got %q\nwant %q", decls[0].Value, want)
	}
}

func TestUnknownKeysIgnored(t *testing.T) {
	decls := Resolve(map[string]interface{}{
		"paddingTop":  "medium",
		"animateName": "whatever",
		"mystery":     42,
	})

	if len(decls) != 1 || decls[0].Property != "padding-top" {
		t.Fatalf("expected only the known key to resolve, got %v", decls)
	}
}

func TestResolveAnimationFallsBackToDefault(t *testing.T) {
	if got := ResolveAnimation("vortex-in"); got != "vortex-in" {
		t.Fatalf("known preset rewritten to %q", got)
	}
	if got := ResolveAnimation("no-such-preset"); got != DefaultAnimation {
		t.Fatalf("unknown preset should fall back, got %q", got)
	}
	if got := ResolveAnimation(""); got != DefaultAnimation {
		t.Fatalf("empty preset should fall back, got %q", got)
	}
}
