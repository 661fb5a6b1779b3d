package domain

import "encoding/json"

// FlexBool is a boolean field that tolerates both encodings found in
// historical record data: a raw JSON boolean, or a wrapper object such as
// {"co_khong": true} / {"flag": true}. Decoding normalizes to a plain bool
// once, so downstream predicates never re-check the legacy shape.
type FlexBool bool

// UnmarshalJSON accepts true/false, {"co_khong": bool} and {"flag": bool}.
// Any other value reads as false: for incrementally-entered records a
// malformed field means absence, not an error.
func (b *FlexBool) UnmarshalJSON(data []byte) error {
	var plain bool
	if err := json.Unmarshal(data, &plain); err == nil {
		*b = FlexBool(plain)
		return nil
	}

	var wrapped struct {
		CoKhong *bool `json:"co_khong"`
		Flag    *bool `json:"flag"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		*b = false
		return nil
	}
	switch {
	case wrapped.CoKhong != nil:
		*b = FlexBool(*wrapped.CoKhong)
	case wrapped.Flag != nil:
		*b = FlexBool(*wrapped.Flag)
	default:
		*b = false
	}
	return nil
}

// Bool returns the canonical boolean value.
func (b FlexBool) Bool() bool { return bool(b) }

// UnmarshalJSON lets a ViolationFlag decode from either the structured
// {"co_khong": ..., "chi_tiet": ...} form or the oldest encoding, a raw
// boolean. Together with FlexBool this normalizes every historical shape at
// the decode boundary; nothing downstream sees a legacy form.
func (v *ViolationFlag) UnmarshalJSON(data []byte) error {
	var plain bool
	if err := json.Unmarshal(data, &plain); err == nil {
		*v = ViolationFlag{Flag: FlexBool(plain)}
		return nil
	}

	type structured ViolationFlag
	var s structured
	if err := json.Unmarshal(data, &s); err != nil {
		*v = ViolationFlag{}
		return nil
	}
	*v = ViolationFlag(s)
	return nil
}
