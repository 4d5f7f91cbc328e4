package provider

// Options carries the per-call knobs an adapter may honor. Zero values mean
// "not set"; each adapter fills its own defaults last, so any caller-supplied
// value wins over a default.
type Options struct {
	Model    string
	Width    int
	Height   int
	Steps    int
	CfgScale float64
	Samples  int
}

// WithOverrides layers the request's open options map on top of o. Map entries
// win over the top-level request fields already in o; unknown keys are
// ignored. JSON numbers arrive as float64 and are coerced here.
func (o Options) WithOverrides(m map[string]any) Options {
	if len(m) == 0 {
		return o
	}

	if v, ok := stringVal(m["model"]); ok {
		o.Model = v
	}
	if v, ok := intVal(m["width"]); ok {
		o.Width = v
	}
	if v, ok := intVal(m["height"]); ok {
		o.Height = v
	}
	if v, ok := intVal(m["steps"]); ok {
		o.Steps = v
	}
	if v, ok := floatVal(m["cfg_scale"]); ok {
		o.CfgScale = v
	}
	if v, ok := intVal(m["samples"]); ok {
		o.Samples = v
	}
	return o
}

func stringVal(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

func intVal(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	}
	return 0, false
}

func floatVal(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}
