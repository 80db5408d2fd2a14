package styles

import (
	"fmt"
	"strconv"
	"strings"
)

// Declaration is a single CSS property/value pair. Resolve returns them in a
// fixed order so that identical settings always produce identical output.
type Declaration struct {
	Property string
	Value    string
}

// Resolve turns a section settings map into an ordered list of CSS
// declarations. It is a pure function of its input: unknown keys are ignored,
// missing keys produce no declarations, and resolving twice yields the same
// result.
func Resolve(settings map[string]interface{}) []Declaration {
	if len(settings) == 0 {
		return nil
	}

	var decls []Declaration
	add := func(property, value string) {
		if value != "" {
			decls = append(decls, Declaration{Property: property, Value: value})
		}
	}

	add("display", stringValue(settings, "display"))
	add("flex-direction", stringValue(settings, "flexDirection"))
	add("justify-content", stringValue(settings, "justifyContent"))
	add("align-items", stringValue(settings, "alignItems"))
	if gap, ok := numberValue(settings, "gap"); ok {
		add("gap", formatPx(gap))
	}

	add("height", resolveHeight(stringValue(settings, "height")))
	add("width", stringValue(settings, "width"))

	add("color", stringValue(settings, "textColor"))
	add("text-align", stringValue(settings, "textAlign"))

	add("background-color", stringValue(settings, "backgroundColor"))
	if img := stringValue(settings, "backgroundImage"); img != "" {
		add("background-image", "url("+img+")")
	}
	add("background-size", stringValue(settings, "backgroundSize"))
	add("background-position", stringValue(settings, "backgroundPosition"))
	add("background-repeat", stringValue(settings, "backgroundRepeat"))
	if opacity, ok := numberValue(settings, "opacity"); ok {
		add("opacity", formatNumber(opacity))
	}

	if blur, ok := numberValue(settings, "blur"); ok {
		grayscale, _ := numberValue(settings, "grayscale")
		add("filter", fmt.Sprintf("blur(%spx) grayscale(%s%%)", formatNumber(blur), formatNumber(grayscale)))
	}

	add("transform", resolveTransform(settings))

	decls = append(decls, resolveSpacing(settings, "padding")...)
	decls = append(decls, resolveSpacing(settings, "margin")...)
	decls = append(decls, resolveBorder(settings)...)
	add("box-shadow", resolveShadows(settings))

	return decls
}

// Inline renders the resolved declarations as a style attribute value.
func Inline(settings map[string]interface{}) string {
	decls := Resolve(settings)
	if len(decls) == 0 {
		return ""
	}

	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d.Property+": "+d.Value)
	}
	return strings.Join(parts, "; ")
}

// resolveHeight maps the height keywords to concrete values and passes
// anything else through unchanged.
func resolveHeight(value string) string {
	switch value {
	case "screen":
		return "100vh"
	case "large":
		return "800px"
	case "medium":
		return "500px"
	default:
		return value
	}
}

func resolveTransform(settings map[string]interface{}) string {
	var parts []string
	if scale, ok := numberValue(settings, "scale"); ok && scale != 0 {
		parts = append(parts, fmt.Sprintf("scale(%s)", formatNumber(scale)))
	}
	if rotate, ok := numberValue(settings, "rotate"); ok && rotate != 0 {
		parts = append(parts, fmt.Sprintf("rotate(%sdeg)", formatNumber(rotate)))
	}
	if tx, ok := numberValue(settings, "translateX"); ok && tx != 0 {
		parts = append(parts, fmt.Sprintf("translateX(%spx)", formatNumber(tx)))
	}
	if ty, ok := numberValue(settings, "translateY"); ok && ty != 0 {
		parts = append(parts, fmt.Sprintf("translateY(%spx)", formatNumber(ty)))
	}
	return strings.Join(parts, " ")
}

// resolveSpacing handles the object form ({top,right,bottom,left}) first and
// then the flat per-side keys, so a flat key always overrides the object for
// its side while leaving the other sides untouched.
func resolveSpacing(settings map[string]interface{}, prefix string) []Declaration {
	sides := [4]string{"top", "right", "bottom", "left"}
	values := map[string]string{}

	if object, ok := settings[prefix].(map[string]interface{}); ok {
		for _, side := range sides {
			if v := stringValue(object, side); v != "" {
				values[side] = v
			}
		}
	}
	for _, side := range sides {
		flat := prefix + strings.ToUpper(side[:1]) + side[1:]
		if v := stringValue(settings, flat); v != "" {
			values[side] = v
		}
	}

	var decls []Declaration
	for _, side := range sides {
		if v, ok := values[side]; ok {
			decls = append(decls, Declaration{Property: prefix + "-" + side, Value: v})
		}
	}
	return decls
}

func resolveBorder(settings map[string]interface{}) []Declaration {
	border, ok := settings["border"].(map[string]interface{})
	if !ok {
		return nil
	}

	var decls []Declaration
	if width, ok := numberValue(border, "width"); ok {
		decls = append(decls, Declaration{Property: "border-width", Value: formatPx(width)})
	}
	if style := stringValue(border, "style"); style != "" {
		decls = append(decls, Declaration{Property: "border-style", Value: style})
	}
	if color := stringValue(border, "color"); color != "" {
		decls = append(decls, Declaration{Property: "border-color", Value: color})
	}

	if radius, ok := border["radius"].(map[string]interface{}); ok {
		corners := []struct {
			key      string
			property string
		}{
			{"tl", "border-top-left-radius"},
			{"tr", "border-top-right-radius"},
			{"br", "border-bottom-right-radius"},
			{"bl", "border-bottom-left-radius"},
		}
		for _, corner := range corners {
			if v, ok := numberValue(radius, corner.key); ok {
				decls = append(decls, Declaration{Property: corner.property, Value: formatPx(v)})
			}
		}
	}
	return decls
}

func resolveShadows(settings map[string]interface{}) string {
	list, ok := settings["boxShadow"].([]interface{})
	if !ok || len(list) == 0 {
		return ""
	}

	parts := make([]string, 0, len(list))
	for _, item := range list {
		shadow, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		x, _ := numberValue(shadow, "x")
		y, _ := numberValue(shadow, "y")
		blur, _ := numberValue(shadow, "blur")
		spread, _ := numberValue(shadow, "spread")
		color := stringValue(shadow, "color")

		var sb strings.Builder
		if inset, _ := shadow["inset"].(bool); inset {
			sb.WriteString("inset ")
		}
		sb.WriteString(formatPx(x) + " " + formatPx(y) + " " + formatPx(blur) + " " + formatPx(spread))
		if color != "" {
			sb.WriteString(" " + color)
		}
		parts = append(parts, sb.String())
	}
	return strings.Join(parts, ", ")
}

func stringValue(m map[string]interface{}, key string) string {
	if m == nil {
		return ""
	}
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

func numberValue(m map[string]interface{}, key string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	switch v := m[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		if n, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return n, true
		}
	}
	return 0, false
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func formatPx(n float64) string {
	return formatNumber(n) + "px"
}
