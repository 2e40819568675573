package address

import (
	"errors"
	"testing"

	"github.com/mwantia/walker/data"
)

func TestParse(t *testing.T) {
	tests := []struct {
		address string
		name    string
	}{
		{":memory:", "memory"},
		{"memory://", "memory"},
		{"local://" + t.TempDir(), "local"},
		{"sqlite://:memory:", "sqlite"},
		{"s3://access:secret@localhost:9000/bucket?ssl=false", "s3"},
		{"minio://localhost:9000/bucket", "s3"},
		{"consul://127.0.0.1:8500/walker?token=abc&dc=dc1", "consul"},
	}

	for _, tt := range tests {
		t.Run(tt.address, func(tst *testing.T) {
			b, err := Parse(tst.Context(), tt.address)
			if err != nil {
				tst.Fatalf("Parse failed: %v", err)
			}
			defer b.Close(tst.Context())

			if b.Name() != tt.name {
				tst.Errorf("Expected backend '%s', got '%s'", tt.name, b.Name())
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := map[string]error{
		"memory":                     data.ErrMalformedAddress,
		"ftp://example.com":          data.ErrUnknownProtocol,
		"s3://localhost:9000":        data.ErrMalformedAddress,
		"s3://host/bucket?ssl=maybe": data.ErrMalformedAddress,
	}

	for address, want := range tests {
		if _, err := Parse(t.Context(), address); !errors.Is(err, want) {
			t.Errorf("Parse(%q): expected %v, got %v", address, want, err)
		}
	}
}
