package scenario

import (
	"fmt"
	"strings"
	"time"

	"github.com/surface-duo/posture-go/pkg/hal"
)

func paramString(params map[string]any, key string) (string, error) {
	v, ok := params[key]
	if !ok {
		return "", fmt.Errorf("missing parameter %q", key)
	}
	return fmt.Sprint(v), nil
}

func paramInt(params map[string]any, key string) (int32, error) {
	v, ok := params[key]
	if !ok {
		return 0, fmt.Errorf("missing parameter %q", key)
	}
	n, ok := toInt(v)
	if !ok {
		return 0, fmt.Errorf("parameter %q: want integer, got %T", key, v)
	}
	return n, nil
}

func paramBool(params map[string]any, key string, def bool) (bool, error) {
	v, ok := params[key]
	if !ok {
		return def, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("parameter %q: want bool, got %T", key, v)
	}
	return b, nil
}

func paramDuration(params map[string]any, key string) (time.Duration, error) {
	s, err := paramString(params, key)
	if err != nil {
		return 0, err
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("parameter %q: %w", key, err)
	}
	return d, nil
}

func toInt(v any) (int32, bool) {
	switch n := v.(type) {
	case int:
		return int32(n), true
	case int32:
		return n, true
	case int64:
		return int32(n), true
	case uint64:
		return int32(n), true
	case float64:
		if n != float64(int32(n)) {
			return 0, false
		}
		return int32(n), true
	default:
		return 0, false
	}
}

func toFloat(v any) (float32, bool) {
	switch n := v.(type) {
	case int:
		return float32(n), true
	case int64:
		return float32(n), true
	case uint64:
		return float32(n), true
	case float64:
		return float32(n), true
	default:
		return 0, false
	}
}

func toStrings(v any) ([]string, bool) {
	switch list := v.(type) {
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			out = append(out, fmt.Sprint(item))
		}
		return out, true
	case []string:
		return list, true
	case string:
		return []string{list}, true
	default:
		return nil, false
	}
}

func parseLink(s string) (hal.LinkID, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "display":
		return hal.LinkDisplay, nil
	case "touch":
		return hal.LinkTouch, nil
	}
	return 0, fmt.Errorf("unknown link %q", s)
}

func parseTouchVersion(s string) (hal.TouchVersion, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "v2":
		return hal.TouchV2, nil
	case "v1":
		return hal.TouchV1, nil
	case "none":
		return hal.TouchNone, nil
	}
	return hal.TouchNone, fmt.Errorf("unknown touch version %q", s)
}
