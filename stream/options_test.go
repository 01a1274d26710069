package stream_test

import (
	"crypto/tls"
	"testing"
	"time"

	"github.com/srand/tagjson/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions(t *testing.T) {
	config := &tls.Config{}
	opts := &stream.Options{}

	apply := []stream.Option{
		stream.WithAddress("tcp://localhost:1883"),
		stream.WithAddress("tcp://fallback:1883"),
		stream.WithClientID("test-client"),
		stream.WithConnectTimeout(10 * time.Second),
		stream.WithQoS(1),
		stream.WithTlsConfig(config),
	}
	for _, opt := range apply {
		require.NoError(t, opt(opts))
	}

	assert.Equal(t, []string{"tcp://localhost:1883", "tcp://fallback:1883"}, opts.Addrs)
	assert.Equal(t, "test-client", opts.ClientID)
	assert.Equal(t, 10*time.Second, opts.ConnectTimeout)
	assert.Equal(t, byte(1), opts.QoS)
	assert.Same(t, config, opts.TlsConfig)
}

func TestWithSelfSignedCert(t *testing.T) {
	opts := &stream.Options{}
	require.NoError(t, stream.WithSelfSignedCert()(opts))

	require.NotNil(t, opts.TlsConfig)
	assert.True(t, opts.TlsConfig.InsecureSkipVerify)
	require.Len(t, opts.TlsConfig.Certificates, 1)
	assert.NotNil(t, opts.TlsConfig.Certificates[0].Leaf)
}

func TestSelfSignedCertificate(t *testing.T) {
	cert, err := stream.SelfSignedCertificate(time.Hour)
	require.NoError(t, err)
	require.NotNil(t, cert.Leaf)

	assert.True(t, cert.Leaf.NotAfter.After(time.Now()))
	assert.Contains(t, cert.Leaf.Subject.Organization, "tagjson stream")
}
