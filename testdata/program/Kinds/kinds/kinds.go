package kinds

import "time"

//jsontestgen:generate
type Sample struct {
	Flag    bool          `json:"flag"`
	Int     int           `json:"int"`
	Int8    int8          `json:"int8"`
	Uint16  uint16        `json:"uint16"`
	Byte    byte          `json:"byte"`
	Letter  rune          `json:"letter"`
	Ratio   float32       `json:"ratio"`
	Weight  float64       `json:"weight"`
	Label   string        `json:"label"`
	Timeout time.Duration `json:"timeout"`
	Ignored string        `json:"-"`
	Empty   string        `json:"empty,omitempty"`
	Escaped string        `json:"<escaped>"`
}

//jsontestgen:generate
type lower struct {
	Name string `json:"name"`
}

// sample and Sample would share a file name.
//
//jsontestgen:generate
type sample struct {
	On bool `json:"on"`
}

var _ = lower{}
var _ = sample{}
