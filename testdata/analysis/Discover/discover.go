package discover

//jsontestgen:generate
func F() {} // want `function F cannot be annotated`

//jsontestgen:generate
var V int // want `var declaration cannot be annotated`

//jsontestgen:generate
type ID int // want `type ID is not a struct`

//jsontestgen:generate
type Alias = Point // want `alias Alias cannot be annotated`

//jsontestgen:generate
type Box[T any] struct{ V T } // want `generic type Box is not supported`

//jsontestgen:generate
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type (
	//jsontestgen:generate
	Circle struct {
		R float64 `json:"r"`
	}

	//jsontestgen:generate
	Shape interface{} // want `type Shape is not a struct`
)
