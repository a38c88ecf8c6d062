package jsontestgeninternal

var (
	ReorderErrors  = reorderErrors
	SelectPackages = selectPackages
)
