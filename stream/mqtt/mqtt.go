// Package mqtt publishes and consumes tagged JSON objects over MQTT
// topics. Each MQTT message carries exactly one encoded object.
package mqtt

import (
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/srand/tagjson"
	"github.com/srand/tagjson/stream"
)

var (
	// ErrNoAddress indicates that no broker address was provided.
	ErrNoAddress = &tagjson.Error{Message: "no address provided"}
)

// Handler receives one decoded object per incoming message. A decode
// failure is delivered through err with v nil; the subscription stays
// active.
type Handler func(v any, err error)

// Conn is a connection to an MQTT broker carrying tagged objects.
type Conn struct {
	client  mqtt.Client
	options *stream.Options
}

// Dial prepares a connection to the broker. The connection itself is
// established lazily on first publish or subscribe.
func Dial(options ...stream.Option) (*Conn, error) {
	opts := &stream.Options{
		ConnectTimeout: time.Second * 5,
	}

	for _, opt := range options {
		if err := opt(opts); err != nil {
			return nil, err
		}
	}

	if len(opts.Addrs) == 0 {
		return nil, ErrNoAddress
	}
	if opts.ClientID == "" {
		opts.ClientID = "tagjson-" + uuid.New().String()
	}

	mqttOptions := mqtt.NewClientOptions()
	mqttOptions.SetClientID(opts.ClientID)
	mqttOptions.SetConnectTimeout(opts.ConnectTimeout)

	for _, addr := range opts.Addrs {
		mqttOptions.AddBroker(addr)
	}

	if opts.TlsConfig != nil {
		mqttOptions.SetTLSConfig(opts.TlsConfig)
	}

	return &Conn{
		client:  mqtt.NewClient(mqttOptions),
		options: opts,
	}, nil
}

func (c *Conn) ensureConnected() error {
	if c.client.IsConnected() {
		return nil
	}

	if token := c.client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}

	return nil
}

// Publish encodes v and publishes it to the topic.
func (c *Conn) Publish(topic string, v any) error {
	data, err := tagjson.Marshal(v)
	if err != nil {
		return err
	}

	if err := c.ensureConnected(); err != nil {
		return err
	}

	token := c.client.Publish(topic, c.options.QoS, false, data)
	token.Wait()
	return token.Error()
}

// Subscribe decodes every message arriving on the topic and hands the
// result to the handler.
func (c *Conn) Subscribe(topic string, handler Handler) error {
	if err := c.ensureConnected(); err != nil {
		return err
	}

	token := c.client.Subscribe(topic, c.options.QoS, func(_ mqtt.Client, msg mqtt.Message) {
		handler(tagjson.Unmarshal(msg.Payload()))
	})
	token.Wait()
	return token.Error()
}

// Unsubscribe stops delivery for the topic.
func (c *Conn) Unsubscribe(topic string) error {
	token := c.client.Unsubscribe(topic)
	token.Wait()
	return token.Error()
}

// Close disconnects from the broker.
func (c *Conn) Close() error {
	c.client.Disconnect(0)
	return nil
}
