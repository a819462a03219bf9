package beacon

import (
	"net/url"
	"strings"
	"testing"

	"github.com/statbeam/beacon-go/adapters"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWireContract locks the on-the-wire shape of event beacons: the
// exact field keys, their fixed order, and the encoding rules. Changing
// any of these breaks the collection endpoint.
func TestWireContract(t *testing.T) {
	builder := newTestBuilder(adapters.StaticAppInfo{
		Name:    "MyApp",
		Bundle:  "com.example.app",
		Company: "Example Inc",
	})

	defaultPayload, err := builder.BuildDefaultPayload("UA-1", "1.2.3", nil)
	require.NoError(t, err)
	payload := BuildEventPayload(defaultPayload, "Editor", "opened", Int(7))

	t.Run("required keys always present", func(t *testing.T) {
		values, err := url.ParseQuery(payload)
		require.NoError(t, err)

		for _, key := range []string{"v", "t", "tid", "cid", "ua", "av", "ds", "ec", "ea"} {
			assert.Len(t, values[key], 1, "key %q must appear exactly once", key)
		}
		assert.Equal(t, "1", values.Get("v"), "protocol version is constant")
		assert.Equal(t, "event", values.Get("t"), "hit type is constant")
	})

	t.Run("field order is fixed and append-only", func(t *testing.T) {
		var keys []string
		for _, pair := range strings.Split(payload, "&") {
			key, _, found := strings.Cut(pair, "=")
			require.True(t, found, "malformed pair %q", pair)
			keys = append(keys, key)
		}
		assert.Equal(t,
			[]string{"v", "t", "tid", "cid", "ua", "av", "ds", "an", "aid", "aiid", "ec", "ea", "ev"},
			keys)
	})

	t.Run("payload is a valid query string", func(t *testing.T) {
		_, err := url.ParseQuery(payload)
		assert.NoError(t, err)
	})

	t.Run("runtime mode values", func(t *testing.T) {
		assert.Equal(t, "editor", string(RuntimeModeEditor))
		assert.Equal(t, "player", string(RuntimeModePlayer))
	})

	t.Run("event payload seeds from the default payload verbatim", func(t *testing.T) {
		assert.True(t, strings.HasPrefix(payload, defaultPayload))
	})
}
