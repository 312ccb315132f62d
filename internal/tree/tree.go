package tree

import (
	"fmt"
	"time"

	"github.com/ForoVideo/comment-service/internal/model"
)

// Build transforms a flat list of comment records into a forest of view nodes.
//
// The construction is two-pass: first every record gets its own node in a map,
// then parent links are resolved through that map. A record whose parent is
// absent from the input becomes a root rather than being dropped, and a record
// whose parent link would close a cycle is promoted to a root as well, so every
// record appears in the output exactly once.
//
// Per-level order follows the input order (newest-first per the repository's
// ordering contract). The result is fully recomputed on every call.
func Build(records []*model.CommentRecord, now time.Time) []*model.CommentViewNode {
	if len(records) == 0 {
		return []*model.CommentViewNode{}
	}

	nodes := make(map[string]*model.CommentViewNode, len(records))
	for _, rec := range records {
		nodes[rec.ID] = &model.CommentViewNode{
			ID:                rec.ID,
			AuthorID:          rec.AuthorID,
			AuthorDisplayName: rec.AuthorDisplayName,
			Time:              FormatRelativeTime(rec.CreatedAt, now),
			Message:           rec.Content,
			Likes:             rec.LikeCount,
			ParentID:          rec.ParentID,
			IsOptimistic:      rec.IsOptimistic,
			Replies:           []*model.CommentViewNode{},
		}
	}

	roots := []*model.CommentViewNode{}
	for _, rec := range records {
		node := nodes[rec.ID]
		if rec.ParentID != nil {
			if parent, ok := nodes[*rec.ParentID]; ok && !closesCycle(nodes, rec.ID, parent) {
				parent.Replies = append(parent.Replies, node)
				continue
			}
		}
		roots = append(roots, node)
	}

	return roots
}

// closesCycle reports whether attaching childID under parent would make the
// child its own ancestor. The walk is bounded by the node count so a malformed
// parent chain elsewhere in the input cannot hang it.
func closesCycle(nodes map[string]*model.CommentViewNode, childID string, parent *model.CommentViewNode) bool {
	for cur, steps := parent, 0; cur != nil && steps <= len(nodes); steps++ {
		if cur.ID == childID {
			return true
		}
		if cur.ParentID == nil {
			return false
		}
		cur = nodes[*cur.ParentID]
	}

	return false
}

// FormatRelativeTime renders a creation timestamp as "Ahora" under a minute,
// then "{n}m", "{n}h" and "{n}d", truncating to whole units.
func FormatRelativeTime(createdAt time.Time, now time.Time) string {
	if createdAt.IsZero() {
		return "Ahora"
	}

	diff := now.Sub(createdAt)
	switch {
	case diff < time.Minute:
		return "Ahora"
	case diff < time.Hour:
		return fmt.Sprintf("%dm", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh", int(diff.Hours()))
	default:
		return fmt.Sprintf("%dd", int(diff.Hours()/24))
	}
}
