package zkc

import (
	"errors"
	"testing"
)

func TestParseConnectString(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantAddress string
		wantPath    string
		wantErr     bool
	}{
		{
			name:        "host port and nested path",
			input:       "zk1:2181/x/y",
			wantAddress: "zk1:2181",
			wantPath:    "/x/y",
		},
		{
			name:        "root path",
			input:       "zookeeper.foo.com:2181/",
			wantAddress: "zookeeper.foo.com:2181",
			wantPath:    "/",
		},
		{
			name:        "multi-server ensemble address",
			input:       "zk1:2181,zk2:2181/config",
			wantAddress: "zk1:2181,zk2:2181",
			wantPath:    "/config",
		},
		{
			name:    "no path component",
			input:   "zk1:2181",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:        "leading slash puts everything in the path",
			input:       "/just/a/path",
			wantAddress: "",
			wantPath:    "/just/a/path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, err := ParseConnectString(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", target)
				}
				if !errors.Is(err, ErrConnectString) {
					t.Errorf("expected ErrConnectString, got: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if target.Address != tt.wantAddress {
				t.Errorf("Address = %q, want %q", target.Address, tt.wantAddress)
			}
			if target.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", target.Path, tt.wantPath)
			}
		})
	}
}
