// Copyright (c) 2026 MVN Server Project
//
// This file is part of mvn-identity, the identity and credential core of
// the MVN media library server.
//
// Licensed under the MIT License. See the LICENSE file for details.

package base64url

import (
	"bytes"
	"testing"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{"empty", nil, ""},
		{"simple", []byte("hello"), "aGVsbG8"},
		{"url safe alphabet", []byte{0xfb, 0xff, 0xbf}, "-_-_"},
		{"single byte", []byte{0}, "AA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Encode(tt.input); got != tt.want {
				t.Errorf("Encode(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []byte
		wantErr bool
	}{
		{"empty", "", nil, false},
		{"unpadded", "aGVsbG8", []byte("hello"), false},
		{"padded input tolerated", "aGVsbG8=", []byte("hello"), false},
		{"double padding tolerated", "aGk=", []byte("hi"), false},
		{"url safe alphabet", "-_-_", []byte{0xfb, 0xff, 0xbf}, false},
		{"standard alphabet rejected", "+/+/", nil, true},
		{"invalid characters", "!!!", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Decode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && !bytes.Equal(got, tt.want) {
				t.Errorf("Decode(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	input := []byte{0x00, 0x01, 0xfe, 0xff, 0x7f, 0x80}
	got, err := Decode(Encode(input))
	if err != nil {
		t.Fatalf("Decode(Encode()) error = %v", err)
	}
	if !bytes.Equal(got, input) {
		t.Errorf("round trip = %v, want %v", got, input)
	}
}
