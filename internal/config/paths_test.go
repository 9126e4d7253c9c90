package config

import (
	"errors"
	"testing"
)

func TestExpandUser(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "~", want: "/home/me"},
		{in: "~/code/web", want: "/home/me/code/web"},
		{in: "/abs/path", want: "/abs/path"},
		{in: "rel/path", want: "rel/path"},
		{in: "~other/code", want: "~other/code"},
		{in: "", want: ""},
	}
	for _, tt := range cases {
		if got := ExpandUser(tt.in, "/home/me"); got != tt.want {
			t.Errorf("ExpandUser(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestShortenUser(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "/home/me", want: "~"},
		{in: "/home/me/code", want: "~/code"},
		{in: "/home/meow", want: "/home/meow"},
		{in: "/srv", want: "/srv"},
	}
	for _, tt := range cases {
		if got := ShortenUser(tt.in, "/home/me"); got != tt.want {
			t.Errorf("ShortenUser(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHomeDirUnset(t *testing.T) {
	t.Setenv("HOME", "")
	_, err := HomeDir()
	if !errors.Is(err, ErrHomeUnset) {
		t.Fatalf("HomeDir() error = %v, want ErrHomeUnset", err)
	}
	if _, err := DefaultStore(); !errors.Is(err, ErrHomeUnset) {
		t.Fatalf("DefaultStore() error = %v, want ErrHomeUnset", err)
	}
}
