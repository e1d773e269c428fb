package repository

import (
	"blog-system/app/server/errs"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentsCreate(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()
	alice := createAuthor(t, repos, "alice")
	bob := createAuthor(t, repos, "bob")

	article, err := repos.Articles.Create(ctx, NewArticle{Title: "Post", AuthorID: alice.ID})
	require.NoError(t, err)

	comment, err := repos.Comments.Create(ctx, article.ID, bob.ID, "great post")
	require.NoError(t, err)
	assert.NotZero(t, comment.ID)
	require.NotNil(t, comment.User)
	assert.Equal(t, "bob", comment.User.Username)

	_, err = repos.Comments.Create(ctx, 999, bob.ID, "into the void")
	assert.ErrorIs(t, err, errs.ErrNotFound)

	_, err = repos.Comments.Create(ctx, article.ID, bob.ID, "   ")
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestCommentsListJoinsUsername(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()
	alice := createAuthor(t, repos, "alice")
	bob := createAuthor(t, repos, "bob")

	first, err := repos.Articles.Create(ctx, NewArticle{Title: "first", AuthorID: alice.ID})
	require.NoError(t, err)
	second, err := repos.Articles.Create(ctx, NewArticle{Title: "second", AuthorID: alice.ID})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := repos.Comments.Create(ctx, first.ID, bob.ID, fmt.Sprintf("comment %d", i))
		require.NoError(t, err)
	}
	_, err = repos.Comments.Create(ctx, second.ID, alice.ID, "elsewhere")
	require.NoError(t, err)

	comments, total, err := repos.Comments.List(ctx, &first.ID, NewPage(1, 2, 20))
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, comments, 2)
	assert.Equal(t, "comment 2", comments[0].Content)
	assert.Equal(t, "comment 1", comments[1].Content)
	for _, c := range comments {
		require.NotNil(t, c.User)
		assert.Equal(t, "bob", c.User.Username)
	}

	// 用户改名后读取到的是新用户名
	_, err = repos.Users.Update(ctx, bob.ID, UserPatch{Username: &[]string{"robert"}[0]})
	require.NoError(t, err)
	comments, _, err = repos.Comments.List(ctx, &first.ID, NewPage(1, 1, 20))
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "robert", comments[0].User.Username)

	// 不按文章过滤
	comments, total, err = repos.Comments.List(ctx, nil, NewPage(1, 20, 20))
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.Len(t, comments, 4)
	assert.Equal(t, "elsewhere", comments[0].Content)
}

func TestCommentsDelete(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()
	alice := createAuthor(t, repos, "alice")

	article, err := repos.Articles.Create(ctx, NewArticle{Title: "Post", AuthorID: alice.ID})
	require.NoError(t, err)
	comment, err := repos.Comments.Create(ctx, article.ID, alice.ID, "hi")
	require.NoError(t, err)

	require.NoError(t, repos.Comments.Delete(ctx, comment.ID))
	_, err = repos.Comments.Get(ctx, comment.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.ErrorIs(t, repos.Comments.Delete(ctx, comment.ID), errs.ErrNotFound)
}
