package mqtt_test

import (
	"testing"

	"github.com/srand/tagjson/stream"
	"github.com/srand/tagjson/stream/mqtt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialRequiresAddress(t *testing.T) {
	conn, err := mqtt.Dial()
	assert.Nil(t, conn)
	assert.ErrorIs(t, err, mqtt.ErrNoAddress)
}

func TestDialDoesNotConnect(t *testing.T) {
	// Dial only prepares the client; no broker needs to be running.
	conn, err := mqtt.Dial(
		stream.WithAddress("tcp://localhost:1883"),
		stream.WithClientID("unit-test"),
	)
	require.NoError(t, err)
	require.NotNil(t, conn)
	assert.NoError(t, conn.Close())
}
