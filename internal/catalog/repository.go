package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// Repository defines operations for managing catalog nodes.
//
//go:generate mockgen -source=repository.go -destination=../mocks/catalog/mock_repository.go -package=mock_catalog
type Repository interface {
	FindByID(ctx context.Context, id int64) (*Node, error)
	FindChildren(ctx context.Context, parentID int64) ([]Node, error)
	Create(ctx context.Context, node *Node) error
	// SoftDeleteTree marks every listed node deleted and soft-deletes the
	// review state of the card nodes among them, all in one transaction.
	SoftDeleteTree(ctx context.Context, nodeIDs, cardIDs []int64, deletedAt time.Time) error
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

func (r *DBRepository) FindByID(ctx context.Context, id int64) (*Node, error) {
	var node Node
	if err := r.db.GetContext(ctx, &node,
		"SELECT * FROM catalog_nodes WHERE id = ?", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("db.GetContext(catalog_node %d) > %w", id, err)
	}
	return &node, nil
}

// FindChildren returns the live children of a node in creation order.
func (r *DBRepository) FindChildren(ctx context.Context, parentID int64) ([]Node, error) {
	var nodes []Node
	if err := r.db.SelectContext(ctx, &nodes,
		"SELECT * FROM catalog_nodes WHERE parent_id = ? AND deleted_at IS NULL ORDER BY id",
		parentID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(catalog children of %d) > %w", parentID, err)
	}
	return nodes, nil
}

func (r *DBRepository) Create(ctx context.Context, node *Node) error {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO catalog_nodes (user_id, parent_id, kind, name, word_count) VALUES (?, ?, ?, ?, ?)",
		node.UserID, node.ParentID, node.Kind, node.Name, node.WordCount)
	if err != nil {
		return fmt.Errorf("db.ExecContext(insert catalog_node) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId() > %w", err)
	}
	node.ID = id
	return nil
}

// SoftDeleteTree applies the same deletion timestamp to every node in the
// collected subtree and to the review items owned by its cards. The walk
// happens before this call; the write is one atomic unit.
func (r *DBRepository) SoftDeleteTree(ctx context.Context, nodeIDs, cardIDs []int64, deletedAt time.Time) error {
	if len(nodeIDs) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx() > %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query, args, err := sqlx.In(
		"UPDATE catalog_nodes SET deleted_at = ? WHERE id IN (?) AND deleted_at IS NULL",
		deletedAt, nodeIDs)
	if err != nil {
		return fmt.Errorf("sqlx.In(catalog_nodes) > %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("tx.ExecContext(soft delete catalog_nodes) > %w", err)
	}

	if len(cardIDs) > 0 {
		query, args, err = sqlx.In(
			"UPDATE review_items SET deleted_at = ? WHERE card_id IN (?) AND deleted_at IS NULL",
			deletedAt, cardIDs)
		if err != nil {
			return fmt.Errorf("sqlx.In(review_items) > %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("tx.ExecContext(soft delete review_items) > %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit() > %w", err)
	}
	return nil
}
