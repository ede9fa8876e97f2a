package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestRootCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		env     map[string]string
		want    *Config
		wantErr bool
	}{
		{
			name: "defaults",
			args: []string{},
			want: &Config{LogLevel: "warn"},
		},
		{
			name: "flags",
			args: []string{"--log-level", "debug", "--log-file", "/tmp/csh.log"},
			want: &Config{LogLevel: "debug", LogFile: "/tmp/csh.log"},
		},
		{
			name: "environment defaults",
			args: []string{},
			env:  map[string]string{"CSH_LOG_LEVEL": "info", "CSH_LOG_FILE": "/var/log/csh.log"},
			want: &Config{LogLevel: "info", LogFile: "/var/log/csh.log"},
		},
		{
			name: "flag overrides environment",
			args: []string{"--log-level", "error"},
			env:  map[string]string{"CSH_LOG_LEVEL": "info"},
			want: &Config{LogLevel: "error"},
		},
		{
			name:    "invalid level",
			args:    []string{"--log-level", "loud"},
			wantErr: true,
		},
		{
			name:    "positional arguments rejected",
			args:    []string{"script.csh"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CSH_LOG_LEVEL", "")
			t.Setenv("CSH_LOG_FILE", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			var got *Config
			cmd := NewRootCommand(func(_ context.Context, config *Config) error {
				got = config
				return nil
			})
			cmd.SetArgs(tt.args)
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})

			err := cmd.ExecuteContext(context.Background())
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if got != nil {
					t.Errorf("run should not be called on error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if *got != *tt.want {
				t.Errorf("config = %+v, want %+v", *got, *tt.want)
			}
		})
	}
}

func TestRootCommandVersion(t *testing.T) {
	var out bytes.Buffer
	called := false

	cmd := NewRootCommand(func(context.Context, *Config) error {
		called = true
		return nil
	})
	cmd.SetArgs([]string{"--version"})
	cmd.SetOut(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if called {
		t.Errorf("--version should not start the shell")
	}
	if !strings.Contains(out.String(), Version) {
		t.Errorf("version output %q does not contain %q", out.String(), Version)
	}
}

func TestRootCommandPropagatesRunError(t *testing.T) {
	boom := errors.New("boom")
	cmd := NewRootCommand(func(context.Context, *Config) error { return boom })
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		level   string
		wantErr bool
	}{
		{level: "debug"},
		{level: "INFO"},
		{level: "warning"},
		{level: "error"},
		{level: "", wantErr: true},
		{level: "trace", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			err := (&Config{LogLevel: tt.level}).Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%q) error = %v, wantErr %v", tt.level, err, tt.wantErr)
			}
		})
	}
}
