package repositories

import (
	"testing"

	"wacblog/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityKey(t *testing.T) {
	assert.Equal(t, "post:0000000007", string(entityKey(PostKeyPrefix, 7)))
	assert.Equal(t, "comment:0000000123", string(entityKey(CommentKeyPrefix, 123)))

	// Padded keys sort numerically.
	assert.Less(t, string(entityKey(PostKeyPrefix, 9)), string(entityKey(PostKeyPrefix, 10)))

	id, err := idFromKey(CommentKeyPrefix, entityKey(CommentKeyPrefix, 42))
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	_, err = idFromKey(CommentKeyPrefix, []byte("comment:abc"))
	assert.Error(t, err)
}

func TestMarshalEntity(t *testing.T) {
	t.Run("post keeps camelCase field names", func(t *testing.T) {
		post := &models.Post{ID: 1, Title: "Test Post", PublishDate: "2024-12-15", ReadTime: 8}

		data, err := marshalEntity(post)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"publishDate":"2024-12-15"`)
		assert.Contains(t, string(data), `"readTime":8`)

		var decoded models.Post
		require.NoError(t, unmarshalEntity(data, &decoded))
		assert.Equal(t, *post, decoded)
	})

	t.Run("marshal invalid entity", func(t *testing.T) {
		invalidEntity := struct {
			Ch chan int
		}{
			Ch: make(chan int),
		}

		_, err := marshalEntity(invalidEntity)
		assert.Error(t, err)
	})
}

func TestUnmarshalEntity(t *testing.T) {
	t.Run("unmarshal comment", func(t *testing.T) {
		data := []byte(`{"id":1,"postId":2,"author":"Test Author","content":"Test Content","likes":4}`)
		var comment models.Comment
		require.NoError(t, unmarshalEntity(data, &comment))
		assert.Equal(t, 1, comment.ID)
		assert.Equal(t, 2, comment.PostID)
		assert.Equal(t, "Test Author", comment.Author)
		assert.Equal(t, 4, comment.Likes)
	})

	t.Run("unmarshal invalid JSON", func(t *testing.T) {
		var post models.Post
		assert.Error(t, unmarshalEntity([]byte(`{"id":1,invalid json}`), &post))
	})

	t.Run("unmarshal into nil", func(t *testing.T) {
		assert.Error(t, unmarshalEntity([]byte(`{"id":1}`), nil))
	})
}

func TestOpenInMemory(t *testing.T) {
	db, err := Open("")
	require.NoError(t, err)
	defer db.Close()
	assert.True(t, db.Opts().InMemory)
}

func TestOpenOnDisk(t *testing.T) {
	db, err := Open(t.TempDir())
	require.NoError(t, err)
	defer db.Close()
	assert.False(t, db.Opts().InMemory)
}
