package repositories_test

import (
	"testing"

	"wacblog/app/models"
	"wacblog/app/repositories"
	"wacblog/app/repositories/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type backend struct {
	name     string
	posts    repositories.PostRepository
	comments repositories.CommentRepository
}

func backends(t *testing.T) []backend {
	db, err := repositories.Open("")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return []backend{
		{
			name:     "memory",
			posts:    memory.NewPostRepository(),
			comments: memory.NewCommentRepository(),
		},
		{
			name:     "badger",
			posts:    repositories.NewBadgerPostRepository(db),
			comments: repositories.NewBadgerCommentRepository(db),
		},
	}
}

func TestPostRepository(t *testing.T) {
	for _, b := range backends(t) {
		t.Run(b.name, func(t *testing.T) {
			repo := b.posts
			for _, id := range []int{1, 2, 10} {
				require.NoError(t, repo.Save(&models.Post{ID: id, Title: "Post", Tags: []string{"go"}}))
			}

			t.Run("list keeps id order", func(t *testing.T) {
				posts, err := repo.List()
				require.NoError(t, err)
				require.Len(t, posts, 3)
				assert.Equal(t, 1, posts[0].ID)
				assert.Equal(t, 2, posts[1].ID)
				assert.Equal(t, 10, posts[2].ID)
			})

			t.Run("get by id", func(t *testing.T) {
				post, err := repo.GetByID(2)
				require.NoError(t, err)
				assert.Equal(t, "Post", post.Title)
				assert.Equal(t, []string{"go"}, post.Tags)
			})

			t.Run("get missing", func(t *testing.T) {
				_, err := repo.GetByID(99)
				assert.ErrorIs(t, err, repositories.ErrNotFound)
			})

			t.Run("returned values are detached", func(t *testing.T) {
				post, err := repo.GetByID(1)
				require.NoError(t, err)
				post.Likes = 500

				again, err := repo.GetByID(1)
				require.NoError(t, err)
				assert.Equal(t, 0, again.Likes)
			})

			t.Run("update", func(t *testing.T) {
				post, err := repo.GetByID(1)
				require.NoError(t, err)
				post.Likes = 3
				require.NoError(t, repo.Update(post))

				again, err := repo.GetByID(1)
				require.NoError(t, err)
				assert.Equal(t, 3, again.Likes)
			})

			t.Run("update missing", func(t *testing.T) {
				err := repo.Update(&models.Post{ID: 404})
				assert.ErrorIs(t, err, repositories.ErrNotFound)
			})

			t.Run("save replaces", func(t *testing.T) {
				require.NoError(t, repo.Save(&models.Post{ID: 2, Title: "Replaced"}))
				posts, err := repo.List()
				require.NoError(t, err)
				require.Len(t, posts, 3)
				assert.Equal(t, "Replaced", posts[1].Title)
			})

			t.Run("clear", func(t *testing.T) {
				require.NoError(t, repo.Clear())
				posts, err := repo.List()
				require.NoError(t, err)
				assert.Empty(t, posts)
			})
		})
	}
}

func TestCommentRepository(t *testing.T) {
	for _, b := range backends(t) {
		t.Run(b.name, func(t *testing.T) {
			repo := b.comments

			t.Run("first id is 1", func(t *testing.T) {
				c := &models.Comment{PostID: 1, Content: "first"}
				require.NoError(t, repo.Create(c))
				assert.Equal(t, 1, c.ID)
			})

			t.Run("explicit id is kept", func(t *testing.T) {
				c := &models.Comment{ID: 7, PostID: 2, Content: "seeded"}
				require.NoError(t, repo.Create(c))
				assert.Equal(t, 7, c.ID)
			})

			t.Run("next id follows the maximum", func(t *testing.T) {
				c := &models.Comment{PostID: 1, Content: "third"}
				require.NoError(t, repo.Create(c))
				assert.Equal(t, 8, c.ID)
			})

			t.Run("list and list by post", func(t *testing.T) {
				all, err := repo.List()
				require.NoError(t, err)
				require.Len(t, all, 3)
				assert.Equal(t, []int{1, 7, 8}, []int{all[0].ID, all[1].ID, all[2].ID})

				byPost, err := repo.ListByPost(1)
				require.NoError(t, err)
				require.Len(t, byPost, 2)
				assert.Equal(t, 1, byPost[0].ID)
				assert.Equal(t, 8, byPost[1].ID)

				none, err := repo.ListByPost(99)
				require.NoError(t, err)
				assert.Empty(t, none)
			})

			t.Run("update", func(t *testing.T) {
				c, err := repo.GetByID(7)
				require.NoError(t, err)
				c.Likes++
				require.NoError(t, repo.Update(c))

				again, err := repo.GetByID(7)
				require.NoError(t, err)
				assert.Equal(t, 1, again.Likes)
			})

			t.Run("missing", func(t *testing.T) {
				_, err := repo.GetByID(99)
				assert.ErrorIs(t, err, repositories.ErrNotFound)
				assert.ErrorIs(t, repo.Update(&models.Comment{ID: 99}), repositories.ErrNotFound)
			})

			t.Run("clear resets id allocation", func(t *testing.T) {
				require.NoError(t, repo.Clear())
				all, err := repo.List()
				require.NoError(t, err)
				assert.Empty(t, all)

				c := &models.Comment{PostID: 1}
				require.NoError(t, repo.Create(c))
				assert.Equal(t, 1, c.ID)
			})
		})
	}
}
