package generated

//jsontestgen:generate
type Point struct {
	X int `json:"x"`
}

// Names declared in generated files are free to reuse.
var _ = codecPointJSON
