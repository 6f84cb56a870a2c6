package perspective

import "fmt"

// VPID identifies one of the three vanishing-point slots.
type VPID uint8

const (
	VP1 VPID = iota
	VP2
	VP3

	vpCount = 3
)

// AllVPs lists the slots in state order.
var AllVPs = [vpCount]VPID{VP1, VP2, VP3}

// Valid reports whether id names one of the three slots.
func (id VPID) Valid() bool {
	return id < vpCount
}

// Index returns the slot index of id.
func (id VPID) Index() int {
	return int(id)
}

func (id VPID) String() string {
	switch id {
	case VP1:
		return "vp1"
	case VP2:
		return "vp2"
	case VP3:
		return "vp3"
	}
	return fmt.Sprintf("VPID(%d)", uint8(id))
}

// ParseVPID parses "vp1", "vp2" or "vp3".
func ParseVPID(s string) (VPID, error) {
	switch s {
	case "vp1":
		return VP1, nil
	case "vp2":
		return VP2, nil
	case "vp3":
		return VP3, nil
	}
	return 0, fmt.Errorf("unknown vanishing point %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (id VPID) MarshalText() ([]byte, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("invalid vanishing point %d", uint8(id))
	}
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *VPID) UnmarshalText(b []byte) error {
	v, err := ParseVPID(string(b))
	if err != nil {
		return err
	}
	*id = v
	return nil
}

// GridType is the number of active vanishing points.
type GridType int

const (
	OnePoint   GridType = 1
	TwoPoint   GridType = 2
	ThreePoint GridType = 3
)

// Valid reports whether t is 1, 2 or 3.
func (t GridType) Valid() bool {
	return t >= OnePoint && t <= ThreePoint
}

// Active reports whether the slot id participates in a grid of type t.
func (t GridType) Active(id VPID) bool {
	switch id {
	case VP1:
		return true
	case VP2:
		return t >= TwoPoint
	case VP3:
		return t == ThreePoint
	}
	return false
}

// Orientation places the third vanishing point above or below the horizon.
type Orientation string

const (
	Top    Orientation = "top"
	Bottom Orientation = "bottom"
)

// OrientationFor returns the orientation matching a vp3 distance sign.
func OrientationFor(distance float64) Orientation {
	if distance < 0 {
		return Top
	}
	return Bottom
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Orientation) UnmarshalText(b []byte) error {
	switch v := Orientation(b); v {
	case Top, Bottom:
		*o = v
		return nil
	}
	return fmt.Errorf("unknown orientation %q", string(b))
}

// Density controls how many guide lines each vanishing point emits.
type Density string

const (
	Low    Density = "low"
	Medium Density = "medium"
	High   Density = "high"
)

// ParseDensity parses "low", "medium" or "high".
func ParseDensity(s string) (Density, error) {
	switch v := Density(s); v {
	case Low, Medium, High:
		return v, nil
	}
	return "", fmt.Errorf("unknown density %q", s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Density) UnmarshalText(b []byte) error {
	v, err := ParseDensity(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
