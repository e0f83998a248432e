package model

import "fmt"

// ResponseSection extracts the common `response` sub-object
// (status/code/errorDesc) from a decoded body. The backend is not
// consistent about types (codes arrive as strings or numbers), so
// everything is stringified. ok is false when the body carries no
// response sub-object at all.
func ResponseSection(body map[string]any) (status, code, errorDesc string, ok bool) {
	raw, found := body["response"]
	if !found {
		return "", "", "", false
	}
	section, isMap := raw.(map[string]any)
	if !isMap {
		return "", "", "", false
	}
	return stringify(section["status"]), stringify(section["code"]), stringify(section["errorDesc"]), true
}

// Success reports whether a decoded body signals success. An absent
// response section counts as failure; callers that tolerate it must
// check before calling.
func Success(body map[string]any) bool {
	status, code, _, ok := ResponseSection(body)
	if !ok {
		return false
	}
	if status != "" && status != "success" {
		return false
	}
	return code == "" || code == "0" || code == "00"
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		// JSON numbers decode as float64; codes are small integers
		return fmt.Sprintf("%.0f", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// Option is one entry of a normalized label/value list.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// VehicleList is the tagged result of normalizing a vehicle maker/model
// response. OK false means the body matched neither known shape.
type VehicleList struct {
	OK    bool
	Items []Option
}

// NormalizeVehicleList tolerates the two envelope shapes the backend
// emits for the same logical list: nested under a wrapper object
// (e.g. getVehicleMake.vehicleMakerList) or flat at the top level.
func NormalizeVehicleList(body map[string]any, wrapperKey, listKey string) VehicleList {
	if body == nil {
		return VehicleList{}
	}

	if wrapped, ok := body[wrapperKey].(map[string]any); ok {
		if items := extractList(wrapped, listKey); items != nil {
			return VehicleList{OK: true, Items: items}
		}
	}
	if items := extractList(body, listKey); items != nil {
		return VehicleList{OK: true, Items: items}
	}
	return VehicleList{}
}

func extractList(m map[string]any, listKey string) []Option {
	raw, ok := m[listKey].([]any)
	if !ok {
		return nil
	}
	items := make([]Option, 0, len(raw))
	for _, entry := range raw {
		switch v := entry.(type) {
		case string:
			items = append(items, Option{Label: v, Value: v})
		case map[string]any:
			name := stringify(firstNonEmpty(v, "name", "makerName", "modelName", "label"))
			if name == "" {
				continue
			}
			value := stringify(firstNonEmpty(v, "id", "code", "value"))
			if value == "" {
				value = name
			}
			items = append(items, Option{Label: name, Value: value})
		}
	}
	if len(items) == 0 {
		return nil
	}
	return items
}

func firstNonEmpty(m map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := m[k]; ok && stringify(v) != "" {
			return v
		}
	}
	return nil
}
