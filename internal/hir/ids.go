package hir

// StructID identifies a nominal struct declared by the front end.
type StructID int32

// ModScopeID identifies a module-level scope.
type ModScopeID int32

// ItemID identifies an un-lowered HIR item occupying a code arena op slot.
type ItemID int32

const (
	// NoStructID marks the absence of a struct reference.
	NoStructID StructID = -1
	// NoModScopeID marks the absence of a module scope reference.
	NoModScopeID ModScopeID = -1
	// NoItemID marks the absence of an item reference.
	NoItemID ItemID = -1
)

// IsValid reports whether the struct ID refers to a declared struct.
func (id StructID) IsValid() bool { return id >= 0 }

// IsValid reports whether the scope ID refers to a module scope.
func (id ModScopeID) IsValid() bool { return id >= 0 }

// IsValid reports whether the item ID refers to a HIR item.
func (id ItemID) IsValid() bool { return id >= 0 }
