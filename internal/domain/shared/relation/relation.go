// Package relation declares the parent-child relationships of the registry
// schema together with their delete and key-update policies. The policies are
// part of each relationship's definition and are enforced by application
// logic inside a transaction, so the behavior is identical regardless of
// whether the storage engine has native foreign keys.
package relation

// DeletePolicy controls what happens to children when a parent row is deleted.
type DeletePolicy string

const (
	// Restrict blocks deleting a parent while any child references it.
	Restrict DeletePolicy = "restrict"
	// Cascade deletes all children together with the parent.
	Cascade DeletePolicy = "cascade"
)

// UpdatePolicy controls what happens to children when a parent key changes.
type UpdatePolicy string

const (
	// Immutable forbids changing the parent key at all.
	Immutable UpdatePolicy = "immutable"
	// CascadeKey rewrites the child references to the new parent key.
	CascadeKey UpdatePolicy = "cascade"
)

// Relation describes one foreign-key relationship between two tables.
type Relation struct {
	Parent     string
	Child      string
	ForeignKey string
	OnDelete   DeletePolicy
	OnUpdate   UpdatePolicy
}

// ModelBelongsToManufacturer: manufacturers are reference data and must not
// vanish implicitly, so deletes are blocked while models exist. Manufacturer
// ids never change.
var ModelBelongsToManufacturer = Relation{
	Parent:     "manufacturer",
	Child:      "model",
	ForeignKey: "maker_id",
	OnDelete:   Restrict,
	OnUpdate:   Immutable,
}

// RecallBelongsToModel: recalls are dependent facts of a model and disappear
// with it. A model id change is propagated to its recalls.
var RecallBelongsToModel = Relation{
	Parent:     "model",
	Child:      "recall",
	ForeignKey: "model_id",
	OnDelete:   Cascade,
	OnUpdate:   CascadeKey,
}

// All returns every declared relation of the registry schema.
func All() []Relation {
	return []Relation{
		ModelBelongsToManufacturer,
		RecallBelongsToModel,
	}
}
