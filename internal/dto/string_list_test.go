package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringList_AcceptsBothShapes(t *testing.T) {
	var single DirectSendRequest
	require.NoError(t, json.Unmarshal([]byte(`{"to":"one@example.com","subject":"s","body":"b"}`), &single))
	assert.Equal(t, StringList{"one@example.com"}, single.To)

	var many DirectSendRequest
	require.NoError(t, json.Unmarshal([]byte(`{"to":["a@example.com","b@example.com"],"subject":"s","body":"b"}`), &many))
	assert.Equal(t, StringList{"a@example.com", "b@example.com"}, many.To)

	var bad DirectSendRequest
	assert.Error(t, json.Unmarshal([]byte(`{"to":42,"subject":"s","body":"b"}`), &bad))
}
