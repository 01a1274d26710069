package stream

import (
	"crypto/tls"
	"fmt"
	"time"
)

// Options configures a stream adapter connection.
type Options struct {
	Addrs []string

	// Client identifier presented to the broker. A random one is
	// generated when empty.
	ClientID string

	// Timeout for the connect operation.
	ConnectTimeout time.Duration

	// Delivery quality of service for published objects.
	QoS byte

	// TLS configuration for secure connections.
	TlsConfig *tls.Config
}

type Option func(*Options) error

func WithAddress(addr string) Option {
	return func(opts *Options) error {
		opts.Addrs = append(opts.Addrs, addr)
		return nil
	}
}

func WithClientID(id string) Option {
	return func(opts *Options) error {
		opts.ClientID = id
		return nil
	}
}

func WithConnectTimeout(d time.Duration) Option {
	return func(opts *Options) error {
		opts.ConnectTimeout = d
		return nil
	}
}

func WithQoS(qos byte) Option {
	return func(opts *Options) error {
		opts.QoS = qos
		return nil
	}
}

func WithTlsConfig(config *tls.Config) Option {
	return func(opts *Options) error {
		opts.TlsConfig = config
		return nil
	}
}

func WithSelfSignedCert() Option {
	return func(opts *Options) error {
		if opts.TlsConfig == nil {
			opts.TlsConfig = &tls.Config{}
		}

		// Generate a self-signed certificate that expires in 30 days
		cert, err := SelfSignedCertificate(30 * 24 * time.Hour)
		if err != nil {
			return fmt.Errorf("failed to generate self-signed certificate: %v", err)
		}

		opts.TlsConfig.InsecureSkipVerify = true
		opts.TlsConfig.Certificates = []tls.Certificate{cert}

		return nil
	}
}
