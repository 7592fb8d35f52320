package websocket

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlayerMessage(t *testing.T) {
	t.Run("Parses a message with string content", func(t *testing.T) {
		// Given: a create payload
		payload := []byte(`{"message": "Create", "content": "my room"}`)

		// When: parsing it
		message, err := ParsePlayerMessage(payload)

		// Then: kind and content come through
		require.NoError(t, err)
		assert.Equal(t, KindCreate, message.Kind)

		content, err := message.ContentString()
		require.NoError(t, err)
		assert.Equal(t, "my room", content)
	})

	t.Run("Parses a message without content", func(t *testing.T) {
		message, err := ParsePlayerMessage([]byte(`{"message": "List"}`))

		require.NoError(t, err)
		assert.Equal(t, KindList, message.Kind)
		assert.Nil(t, message.Content)
	})

	t.Run("Rejects malformed payloads", func(t *testing.T) {
		for _, payload := range []string{``, `not json`, `{"message": 42}`} {
			_, err := ParsePlayerMessage([]byte(payload))

			assert.Error(t, err, "payload %q", payload)
		}
	})
}

func TestPlayerMessage_ContentUUID(t *testing.T) {
	t.Run("Parses a room id", func(t *testing.T) {
		roomID := uuid.New()
		message, err := ParsePlayerMessage([]byte(`{"message": "Join", "content": "` + roomID.String() + `"}`))
		require.NoError(t, err)

		id, err := message.ContentUUID()

		require.NoError(t, err)
		assert.Equal(t, roomID, id)
	})

	t.Run("Rejects content that is not a uuid", func(t *testing.T) {
		message, err := ParsePlayerMessage([]byte(`{"message": "Join", "content": "not-a-uuid"}`))
		require.NoError(t, err)

		_, err = message.ContentUUID()

		assert.Error(t, err)
	})
}

func TestTruncateUsername(t *testing.T) {
	t.Run("Short names pass through", func(t *testing.T) {
		assert.Equal(t, "alice", TruncateUsername("alice"))
	})

	t.Run("Long names are capped at the limit", func(t *testing.T) {
		long := strings.Repeat("a", maxUsernameLength+10)

		truncated := TruncateUsername(long)

		assert.Len(t, []rune(truncated), maxUsernameLength)
	})

	t.Run("Multi-byte runes are not split", func(t *testing.T) {
		long := strings.Repeat("ñ", maxUsernameLength+5)

		truncated := TruncateUsername(long)

		assert.Len(t, []rune(truncated), maxUsernameLength)
		assert.True(t, strings.HasPrefix(long, truncated))
	})
}
