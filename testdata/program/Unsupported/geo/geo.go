package geo

//jsontestgen:generate
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

//jsontestgen:generate
type Bag struct {
	Items []string `json:"items"`
}

//jsontestgen:generate
type Pair struct {
	Left  int `json:"side"`
	Right int `json:"side"`
}
