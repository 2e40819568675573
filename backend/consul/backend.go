package consul

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/hashicorp/consul/api"
	"github.com/mwantia/walker/data"
)

// ConsulBackend lists the Consul KV store as a directory tree.
//
// Keys are split on "/". Folders are virtual: any key prefix ending in "/" is a directory,
// every other key is a file whose size is the length of its value.
type ConsulBackend struct {
	client *api.Client
	kv     *api.KV

	config *ConsulBackendConfig
}

// ConsulBackendConfig contains configuration options for the Consul backend
type ConsulBackendConfig struct {
	// Address of the Consul server (default: "127.0.0.1:8500")
	Address string

	// Token for Consul ACL authentication (optional)
	Token string

	// Datacenter to use (optional)
	Datacenter string

	// Prefix under which the walker root "/" is located (default: none)
	Prefix string
}

// NewConsulBackend creates a new Consul KV file system
func NewConsulBackend(config *ConsulBackendConfig) (*ConsulBackend, error) {
	if config == nil {
		config = &ConsulBackendConfig{}
	}

	if config.Address == "" {
		config.Address = "127.0.0.1:8500"
	}

	clientConfig := api.DefaultConfig()
	clientConfig.Address = config.Address
	if config.Token != "" {
		clientConfig.Token = config.Token
	}
	if config.Datacenter != "" {
		clientConfig.Datacenter = config.Datacenter
	}

	client, err := api.NewClient(clientConfig)
	if err != nil {
		return nil, err
	}

	return &ConsulBackend{
		client: client,
		kv:     client.KV(),
		config: config,
	}, nil
}

// Name returns the identifier name defined for this backend
func (*ConsulBackend) Name() string {
	return "consul"
}

// Open verifies that the agent answers.
func (cb *ConsulBackend) Open(ctx context.Context) error {
	if _, err := cb.client.Status().Leader(); err != nil {
		return fmt.Errorf("%w: %w", data.ErrBackendOpenFailed, err)
	}

	return nil
}

// Close is part of the lifecycle behaviour; the Consul client is stateless.
func (cb *ConsulBackend) Close(ctx context.Context) error {
	return nil
}

// basePrefix returns the configured prefix normalized to "" or "some/prefix/".
func (cb *ConsulBackend) basePrefix() string {
	prefix := strings.Trim(cb.config.Prefix, "/")
	if prefix == "" {
		return ""
	}

	return prefix + "/"
}

// buildKey converts a walker path into the Consul key without trailing slash.
func (cb *ConsulBackend) buildKey(path string) (string, error) {
	key, err := data.CleanPath(path)
	if err != nil {
		return "", err
	}

	return cb.basePrefix() + strings.TrimPrefix(key, "/"), nil
}

// toPath converts a Consul key or folder back into a walker path.
func (cb *ConsulBackend) toPath(consulKey string) string {
	rel := strings.TrimPrefix(consulKey, cb.basePrefix())
	return "/" + strings.TrimSuffix(rel, "/")
}

func mapError(err error) error {
	var statusErr api.StatusError
	if errors.As(err, &statusErr) {
		switch statusErr.Code {
		case http.StatusForbidden, http.StatusUnauthorized:
			return fmt.Errorf("%w: %w", data.ErrPermission, err)
		case http.StatusNotFound:
			return fmt.Errorf("%w: %w", data.ErrNotExist, err)
		}
	}

	return err
}
