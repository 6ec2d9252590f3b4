package domain

// Shoe is a catalog model. Many inventory rows reference one shoe.
type Shoe struct {
	ID    int64
	Model string
}

type Size struct {
	ID     int64
	SizeNr int
}

type Color struct {
	ID   int64
	Name string
}

// InventoryItem is the sellable unit. The (ShoeID, SizeID, ColorID) triple
// is unique per row and the item is offerable only while Quantity > 0.
type InventoryItem struct {
	ID       int64
	ShoeID   int64
	SizeID   int64
	ColorID  int64
	Quantity int
}

func (i InventoryItem) InStock() bool {
	return i.Quantity > 0
}

// Selection is the model/size/color triple picked during a session.
type Selection struct {
	Model string
	Size  int
	Color string
}
