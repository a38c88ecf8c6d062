package fields

type Base struct{}

//jsontestgen:generate
type Record struct {
	Base   // want `embedded field Base of Record is skipped`
	N      int    `json:"n"`
	Name   string `json:"name,omitempty"`
	Plain  int    // want `field Plain of Record has no JSON name`
	Skip   int    `json:"-"`
	hidden int    `json:"hidden"` // want `unexported field hidden of Record is skipped`
}

//jsontestgen:generate
type Bag struct {
	Items []int `json:"items"` // want `field Items has type \[\]int: collection types are not supported`
}

//jsontestgen:generate
type Dup struct {
	A int `json:"a"`
	B int `json:"a"` // want `fields A and B of Dup are both named "a"`
}

//jsontestgen:generate
type Count struct {
	N int `json:"n,string"` // want `field N is encoded as a JSON string`
}

type Stamp struct{}

func (Stamp) MarshalText() ([]byte, error) { return nil, nil }

//jsontestgen:generate
type Hooked struct {
	T Stamp `json:"t"` // want `field T has type Stamp: it implements MarshalText`
}

type Label string

//jsontestgen:generate
type Named struct {
	L Label `json:"l"` // want `only the predeclared string type is supported`
}

//jsontestgen:generate
type Ref struct {
	P *int `json:"p"` // want `pointer types are not supported`
}

//jsontestgen:generate
type Quote struct {
	A int `json:"it's"` // want `field A of Quote has invalid JSON name "it's"`
	B int `json:"b"`
}
