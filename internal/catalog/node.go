// Package catalog models the user's content tree: folders contain decks,
// decks contain cards. Ownership and containment are explicit parent-ID
// rows, and deletion is an explicit cascade walk over that tree rather than
// a storage-layer cascade rule.
package catalog

import (
	"errors"
	"time"
)

// Kind discriminates node types in the content tree.
type Kind string

const (
	KindFolder Kind = "FOLDER"
	KindDeck   Kind = "DECK"
	KindCard   Kind = "CARD"
)

var (
	ErrNodeNotFound   = errors.New("node not found")
	ErrNotOwner       = errors.New("node belongs to another user")
	ErrAlreadyDeleted = errors.New("node already deleted")
	ErrInvalidParent  = errors.New("invalid parent for node kind")
)

// Node is one row of the content tree. Root folders have a nil ParentID.
type Node struct {
	ID        int64      `db:"id"`
	UserID    int64      `db:"user_id"`
	ParentID  *int64     `db:"parent_id"`
	Kind      Kind       `db:"kind"`
	Name      string     `db:"name"`
	WordCount int        `db:"word_count"`
	DeletedAt *time.Time `db:"deleted_at"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}

// Deleted reports whether the node is soft-deleted.
func (n *Node) Deleted() bool {
	return n.DeletedAt != nil
}

// childKind returns the kind a node's children must have, or "" for leaves.
func childKind(kind Kind) Kind {
	switch kind {
	case KindFolder:
		return KindDeck
	case KindDeck:
		return KindCard
	default:
		return ""
	}
}

// validChild reports whether a child of the given kind may live under the
// parent. Folders are roots only.
func validChild(parent *Node, kind Kind) bool {
	if parent == nil {
		return kind == KindFolder
	}
	return childKind(parent.Kind) == kind
}
