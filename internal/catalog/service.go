package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// Service manages the content tree.
type Service struct {
	repo  Repository
	clock Clock
}

// NewService creates a new Service.
func NewService(repo Repository, clock Clock) *Service {
	return &Service{repo: repo, clock: clock}
}

// CreateNode adds a node under the given parent. A nil parentID creates a
// root folder; otherwise the parent must be live, owned by the same user,
// and one level up in the folder, deck, card hierarchy.
func (s *Service) CreateNode(ctx context.Context, userID int64, parentID *int64, kind Kind, name string, wordCount int) (*Node, error) {
	var parent *Node
	if parentID != nil {
		found, err := s.loadOwned(ctx, userID, *parentID)
		if err != nil {
			return nil, err
		}
		parent = found
	}
	if !validChild(parent, kind) {
		return nil, fmt.Errorf("%w: %s under %v", ErrInvalidParent, kind, parentKind(parent))
	}

	node := Node{
		UserID:    userID,
		ParentID:  parentID,
		Kind:      kind,
		Name:      name,
		WordCount: wordCount,
	}
	if err := s.repo.Create(ctx, &node); err != nil {
		return nil, fmt.Errorf("repo.Create(%s %q) > %w", kind, name, err)
	}
	return &node, nil
}

// ListChildren returns a node's live children.
func (s *Service) ListChildren(ctx context.Context, userID, nodeID int64) ([]Node, error) {
	if _, err := s.loadOwned(ctx, userID, nodeID); err != nil {
		return nil, err
	}
	children, err := s.repo.FindChildren(ctx, nodeID)
	if err != nil {
		return nil, fmt.Errorf("repo.FindChildren(%d) > %w", nodeID, err)
	}
	return children, nil
}

// Cascade soft-deletes a node and everything beneath it, including the
// review state of affected cards. The subtree is walked breadth first, then
// written as one atomic unit.
func (s *Service) Cascade(ctx context.Context, userID, nodeID int64) error {
	root, err := s.loadOwned(ctx, userID, nodeID)
	if err != nil {
		return err
	}

	nodeIDs := []int64{root.ID}
	var cardIDs []int64
	if root.Kind == KindCard {
		cardIDs = append(cardIDs, root.ID)
	}

	frontier := []int64{root.ID}
	for len(frontier) > 0 {
		next := frontier[0]
		frontier = frontier[1:]

		children, err := s.repo.FindChildren(ctx, next)
		if err != nil {
			return fmt.Errorf("repo.FindChildren(%d) > %w", next, err)
		}
		for _, child := range children {
			nodeIDs = append(nodeIDs, child.ID)
			if child.Kind == KindCard {
				cardIDs = append(cardIDs, child.ID)
			} else {
				frontier = append(frontier, child.ID)
			}
		}
	}

	if err := s.repo.SoftDeleteTree(ctx, nodeIDs, cardIDs, s.clock.Now()); err != nil {
		return fmt.Errorf("repo.SoftDeleteTree(%d) > %w", nodeID, err)
	}

	slog.Info("cascaded delete",
		"user_id", userID,
		"root_id", nodeID,
		"nodes", len(nodeIDs),
		"cards", len(cardIDs))
	return nil
}

func (s *Service) loadOwned(ctx context.Context, userID, nodeID int64) (*Node, error) {
	node, err := s.repo.FindByID(ctx, nodeID)
	if err != nil {
		return nil, fmt.Errorf("repo.FindByID(%d) > %w", nodeID, err)
	}
	if node == nil {
		return nil, fmt.Errorf("%w: id %d", ErrNodeNotFound, nodeID)
	}
	if node.UserID != userID {
		return nil, fmt.Errorf("%w: id %d", ErrNotOwner, nodeID)
	}
	if node.Deleted() {
		return nil, fmt.Errorf("%w: id %d", ErrAlreadyDeleted, nodeID)
	}
	return node, nil
}

func parentKind(parent *Node) Kind {
	if parent == nil {
		return "ROOT"
	}
	return parent.Kind
}
