package main

import (
	"testing"
	"time"

	"github.com/vovakirdan/credit-balloons/internal/storage"
)

func TestConnectCommand(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":23234", "ssh localhost -p 23234"},
		{"0.0.0.0:2222", "ssh localhost -p 2222"},
		{"arcade.example.com:22", "ssh arcade.example.com"},
		{"10.0.0.5:4000", "ssh 10.0.0.5 -p 4000"},
		{"not-an-address", "ssh localhost -p 23234"},
	}

	for _, tt := range tests {
		if got := connectCommand(tt.addr); got != tt.want {
			t.Errorf("connectCommand(%q) = %q, want %q", tt.addr, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{59 * time.Second, "0:59"},
		{61500 * time.Millisecond, "1:02"},
		{12 * time.Minute, "12:00"},
	}

	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestServerConfigOverlaysFlags(t *testing.T) {
	saved := []any{flagSSHAddr, flagHostKey, flagDBPath, flagIdleTimeout, flagFPS}
	t.Cleanup(func() {
		flagSSHAddr = saved[0].(string)
		flagHostKey = saved[1].(string)
		flagDBPath = saved[2].(string)
		flagIdleTimeout = saved[3].(int)
		flagFPS = saved[4].(int)
	})

	tests := []struct {
		name        string
		addr        string
		db          string
		idle        int
		fps         int
		wantAddr    string
		wantDB      string
		wantIdle    time.Duration
		wantTick    int
		wantHostKey string
	}{
		{"unset flags keep defaults", "", "", 0, 0, ":23234", storage.DefaultPath, 30 * time.Minute, 60, ""},
		{"flags win", ":2222", "/tmp/runs.db", 5, 30, ":2222", "/tmp/runs.db", 5 * time.Minute, 30, "/tmp/key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flagSSHAddr, flagDBPath, flagIdleTimeout, flagFPS = tt.addr, tt.db, tt.idle, tt.fps
			flagHostKey = tt.wantHostKey

			cfg := serverConfig()
			if cfg.Address != tt.wantAddr || cfg.IdleTimeout != tt.wantIdle || cfg.TickRate != tt.wantTick {
				t.Errorf("serverConfig() = %+v", cfg)
			}
			if cfg.DBPath != tt.wantDB {
				t.Errorf("DBPath = %q, want %q", cfg.DBPath, tt.wantDB)
			}
			if cfg.HostKeyPath != tt.wantHostKey {
				t.Errorf("HostKeyPath = %q, want %q", cfg.HostKeyPath, tt.wantHostKey)
			}
		})
	}
}
