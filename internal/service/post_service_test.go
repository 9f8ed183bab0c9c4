package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/timeline-service/internal/model"
)

func TestPostService_CreateValidation(t *testing.T) {
	f := newFixture(t, nil, 10)
	ctx := context.Background()
	alice := f.user(t, "alice")

	cases := []struct {
		name    string
		text    string
		slug    string
		wantErr error
	}{
		{"empty text", "", "", ErrValidation},
		{"whitespace only", "   \n\t", "", ErrValidation},
		{"too long", strings.Repeat("字", model.MaxPostTextLen+1), "", ErrValidation},
		{"unknown group", "hello", "no-such-group", ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.posts.Create(ctx, alice.ID, tc.text, tc.slug, "")
			require.ErrorIs(t, err, tc.wantErr)
		})
	}

	// 长度边界恰好通过
	post, err := f.posts.Create(ctx, alice.ID, strings.Repeat("字", model.MaxPostTextLen), "", "")
	require.NoError(t, err)
	require.NotZero(t, post.ID)
}

func TestPostService_EditPermission(t *testing.T) {
	f := newFixture(t, nil, 10)
	ctx := context.Background()
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")

	post, err := f.posts.Create(ctx, alice.ID, "original", "", "")
	require.NoError(t, err)

	_, err = f.posts.Edit(ctx, bob.ID, "alice", post.ID, "stolen", "")
	require.ErrorIs(t, err, ErrPermission)

	edited, err := f.posts.Edit(ctx, alice.ID, "alice", post.ID, "updated", "")
	require.NoError(t, err)
	require.Equal(t, "updated", edited.Text)
}

func TestPostService_EditPreservesCreatedAt(t *testing.T) {
	f := newFixture(t, nil, 10)
	ctx := context.Background()
	alice := f.user(t, "alice")

	createdAt := time.Now().Add(-2 * time.Hour).Truncate(time.Second)
	post := f.post(t, alice.ID, "old", createdAt)

	_, err := f.posts.Edit(ctx, alice.ID, "alice", post.ID, "new text", "")
	require.NoError(t, err)

	var got model.Post
	require.NoError(t, f.db.First(&got, post.ID).Error)
	require.True(t, got.CreatedAt.Equal(createdAt))
}

func TestPostService_EditCanMoveAndClearGroup(t *testing.T) {
	f := newFixture(t, nil, 10)
	ctx := context.Background()
	alice := f.user(t, "alice")
	_, err := f.groups.Create(ctx, "G", "g", "")
	require.NoError(t, err)

	post, err := f.posts.Create(ctx, alice.ID, "text", "g", "")
	require.NoError(t, err)
	require.NotNil(t, post.GroupID)

	// 空 slug = 移出组
	edited, err := f.posts.Edit(ctx, alice.ID, "alice", post.ID, "text", "")
	require.NoError(t, err)
	require.Nil(t, edited.GroupID)
}

func TestPostService_GetDetail(t *testing.T) {
	f := newFixture(t, nil, 10)
	ctx := context.Background()
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")

	post, err := f.posts.Create(ctx, alice.ID, "text", "", "")
	require.NoError(t, err)
	f.post(t, alice.ID, "another", time.Now())

	require.NoError(t, f.engage.Like(ctx, bob.ID, post.ID))
	_, err = f.posts.AddComment(ctx, bob.ID, "alice", post.ID, "nice")
	require.NoError(t, err)

	detail, err := f.posts.Get(ctx, "alice", post.ID)
	require.NoError(t, err)
	require.Equal(t, post.ID, detail.Post.ID)
	require.EqualValues(t, 2, detail.AuthorPostCount)
	require.EqualValues(t, 1, detail.LikeCount)
	require.Len(t, detail.Comments, 1)

	// 错作者取帖等同不存在
	_, err = f.posts.Get(ctx, "bob", post.ID)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = f.posts.Get(ctx, "ghost", post.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPostService_CommentValidation(t *testing.T) {
	f := newFixture(t, nil, 10)
	ctx := context.Background()
	alice := f.user(t, "alice")
	post, err := f.posts.Create(ctx, alice.ID, "text", "", "")
	require.NoError(t, err)

	_, err = f.posts.AddComment(ctx, alice.ID, "alice", post.ID, "  ")
	require.ErrorIs(t, err, ErrValidation)

	// 对无效帖评论等同不存在
	require.NoError(t, f.posts.SetValid(ctx, post.ID, false))
	_, err = f.posts.AddComment(ctx, alice.ID, "alice", post.ID, "hello")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGroupService_SlugUniqueness(t *testing.T) {
	f := newFixture(t, nil, 10)
	ctx := context.Background()

	_, err := f.groups.Create(ctx, "First", "shared-slug", "")
	require.NoError(t, err)

	_, err = f.groups.Create(ctx, "Second", "shared-slug", "")
	require.ErrorIs(t, err, ErrValidation)

	_, err = f.groups.Create(ctx, "Bad", "Not A Slug!", "")
	require.ErrorIs(t, err, ErrValidation)

	_, err = f.groups.Create(ctx, "", "empty-title", "")
	require.ErrorIs(t, err, ErrValidation)
}
