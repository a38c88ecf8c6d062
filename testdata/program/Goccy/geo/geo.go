package geo

//jsontestgen:generate
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// json and codecPointRoundTrip are taken. Generated code must avoid them.
var json = "taken"

var codecPointRoundTrip = "taken"
