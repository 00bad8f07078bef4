package domain

import (
	"errors"
	"testing"
)

func TestNewHubEndpoint_LowercasesHub(t *testing.T) {
	a := NewHubEndpoint("https://svc.example.com", "Chat")
	b := NewHubEndpoint("https://svc.example.com", "chat")

	if a.Hub != "chat" {
		t.Errorf("Hub = %q, want %q", a.Hub, "chat")
	}
	if a.BasePath() != b.BasePath() {
		t.Errorf("BasePath differs by hub casing: %q vs %q", a.BasePath(), b.BasePath())
	}
}

func TestHubEndpoint_BasePath(t *testing.T) {
	e := NewHubEndpoint("https://svc.example.com", "chat")
	want := "https://svc.example.com/api/v1/hubs/chat"
	if got := e.BasePath(); got != want {
		t.Errorf("BasePath() = %q, want %q", got, want)
	}
}

func TestNewHubEndpoint_TrimsTrailingSlash(t *testing.T) {
	e := NewHubEndpoint("https://svc.example.com/", "chat")
	want := "https://svc.example.com/api/v1/hubs/chat"
	if got := e.BasePath(); got != want {
		t.Errorf("BasePath() = %q, want %q", got, want)
	}
}

func TestParseConnectionString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ConnectionInfo
		wantErr bool
	}{
		{
			name:  "full",
			input: "Endpoint=https://svc.example.com;AccessKey=abc123;Version=1.0;",
			want:  ConnectionInfo{Endpoint: "https://svc.example.com", AccessKey: "abc123", Version: "1.0"},
		},
		{
			name:  "no trailing semicolon",
			input: "Endpoint=https://svc.example.com;AccessKey=abc123",
			want:  ConnectionInfo{Endpoint: "https://svc.example.com", AccessKey: "abc123"},
		},
		{
			name:  "case-insensitive keys",
			input: "endpoint=https://svc.example.com;accesskey=abc123;",
			want:  ConnectionInfo{Endpoint: "https://svc.example.com", AccessKey: "abc123"},
		},
		{
			name:  "trailing slash on endpoint",
			input: "Endpoint=https://svc.example.com/;AccessKey=abc123;",
			want:  ConnectionInfo{Endpoint: "https://svc.example.com", AccessKey: "abc123"},
		},
		{
			name:  "unknown keys ignored",
			input: "Endpoint=https://svc.example.com;AccessKey=abc123;AuthType=aad;",
			want:  ConnectionInfo{Endpoint: "https://svc.example.com", AccessKey: "abc123"},
		},
		{
			name:    "missing endpoint",
			input:   "AccessKey=abc123;",
			wantErr: true,
		},
		{
			name:    "missing access key",
			input:   "Endpoint=https://svc.example.com;",
			wantErr: true,
		},
		{
			name:    "garbage segment",
			input:   "Endpoint=https://svc.example.com;garbage",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseConnectionString(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrBadConnectionString) {
					t.Errorf("error = %v, want ErrBadConnectionString", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
