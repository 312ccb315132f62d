package tree

import (
	"fmt"
	"testing"
	"time"

	"github.com/ForoVideo/comment-service/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(id string, parentID *string) *model.CommentRecord {
	return &model.CommentRecord{
		ID:                id,
		PostID:            "post-1",
		ParentID:          parentID,
		Content:           "content of " + id,
		AuthorID:          "user-1",
		AuthorDisplayName: "Ana",
		CreatedAt:         time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
	}
}

func strPtr(s string) *string { return &s }

func countNodes(nodes []*model.CommentViewNode) int {
	total := 0
	for _, n := range nodes {
		total += 1 + countNodes(n.Replies)
	}
	return total
}

func TestBuild_NestsRepliesUnderParents(t *testing.T) {
	records := []*model.CommentRecord{
		rec("c", strPtr("a")),
		rec("b", nil),
		rec("a", nil),
		rec("d", strPtr("c")),
	}

	roots := Build(records, time.Now())

	require.Len(t, roots, 2)
	assert.Equal(t, "b", roots[0].ID)
	assert.Equal(t, "a", roots[1].ID)

	a := roots[1]
	require.Len(t, a.Replies, 1)
	assert.Equal(t, "c", a.Replies[0].ID)
	require.Len(t, a.Replies[0].Replies, 1)
	assert.Equal(t, "d", a.Replies[0].Replies[0].ID)
}

func TestBuild_ChildListedBeforeParent(t *testing.T) {
	// Newest-first ordering means replies usually precede their parents.
	records := []*model.CommentRecord{
		rec("reply", strPtr("parent")),
		rec("parent", nil),
	}

	roots := Build(records, time.Now())

	require.Len(t, roots, 1)
	assert.Equal(t, "parent", roots[0].ID)
	require.Len(t, roots[0].Replies, 1)
	assert.Equal(t, "reply", roots[0].Replies[0].ID)
}

func TestBuild_OrphanBecomesRoot(t *testing.T) {
	records := []*model.CommentRecord{
		rec("a", nil),
		rec("orphan", strPtr("ghost-id")),
	}

	roots := Build(records, time.Now())

	require.Len(t, roots, 2)
	assert.Equal(t, "a", roots[0].ID)
	assert.Equal(t, "orphan", roots[1].ID)
}

func TestBuild_EveryRecordAppearsExactlyOnce(t *testing.T) {
	var records []*model.CommentRecord
	records = append(records, rec("r0", nil))
	for i := 1; i < 20; i++ {
		var parent *string
		switch i % 3 {
		case 0:
			parent = strPtr(fmt.Sprintf("r%d", i-1))
		case 1:
			parent = strPtr("missing-" + fmt.Sprint(i)) // unresolvable
		}
		records = append(records, rec(fmt.Sprintf("r%d", i), parent))
	}

	roots := Build(records, time.Now())

	assert.Equal(t, len(records), countNodes(roots))
}

func TestBuild_MalformedParentChainStaysFinite(t *testing.T) {
	// a -> b -> a cannot nest without losing a record; both get promoted to
	// roots instead.
	records := []*model.CommentRecord{
		rec("a", strPtr("b")),
		rec("b", strPtr("a")),
	}

	roots := Build(records, time.Now())

	assert.Equal(t, 2, countNodes(roots))
}

func TestBuild_EmptyInput(t *testing.T) {
	assert.Empty(t, Build(nil, time.Now()))
	assert.Empty(t, Build([]*model.CommentRecord{}, time.Now()))
}

func TestBuild_PreservesPerLevelOrder(t *testing.T) {
	records := []*model.CommentRecord{
		rec("newest", nil),
		rec("middle", nil),
		rec("oldest", nil),
	}

	roots := Build(records, time.Now())

	require.Len(t, roots, 3)
	assert.Equal(t, "newest", roots[0].ID)
	assert.Equal(t, "middle", roots[1].ID)
	assert.Equal(t, "oldest", roots[2].ID)
}

func TestFormatRelativeTime(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		age  time.Duration
		want string
	}{
		{"just now", 45 * time.Second, "Ahora"},
		{"two minutes truncated", 125 * time.Second, "2m"},
		{"under an hour", 59*time.Minute + 59*time.Second, "59m"},
		{"three hours", 3 * time.Hour, "3h"},
		{"under a day", 23*time.Hour + 59*time.Minute, "23h"},
		{"two days", 48 * time.Hour, "2d"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRelativeTime(now.Add(-tt.age), now))
		})
	}
}

func TestFormatRelativeTime_ZeroTimestamp(t *testing.T) {
	assert.Equal(t, "Ahora", FormatRelativeTime(time.Time{}, time.Now()))
}
