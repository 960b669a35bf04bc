package hashinfo_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/hasbyte1/go-stretch/hashinfo"
	"github.com/hasbyte1/go-stretch/stretch"
)

// fastScheme returns a low-round scheme for unit tests.
// Production callers should use far higher round counts.
func fastScheme() hashinfo.Scheme {
	return hashinfo.Scheme{
		Algorithm:  stretch.AlgorithmSHA256,
		Rounds:     3,
		Format:     stretch.FormatBase64,
		Identifier: "v1",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Generate / Verify
// ──────────────────────────────────────────────────────────────────────────────

func TestScheme_GenerateWithSalt_Deterministic(t *testing.T) {
	stored, err := fastScheme().GenerateWithSalt([]byte("password"), []byte("salt"))
	if err != nil {
		t.Fatalf("GenerateWithSalt: %v", err)
	}
	const want = "$v1$c2FsdA==$yITCHbKoPinMrsbzd+071trBn02wTDxkr6pi/OJD7qg="
	if stored != want {
		t.Errorf("stored = %q, want %q", stored, want)
	}
}

func TestScheme_Generate_RoundTrip(t *testing.T) {
	s := fastScheme()
	stored, err := s.Generate([]byte("my-secret"))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	ok, err := s.Verify([]byte("my-secret"), stored)
	if err != nil || !ok {
		t.Fatalf("Verify round-trip: ok=%v err=%v", ok, err)
	}
	ok, err = s.Verify([]byte("wrong"), stored)
	if err != nil || ok {
		t.Fatalf("Verify wrong password: ok=%v err=%v", ok, err)
	}
}

func TestScheme_Generate_UniqueSalts(t *testing.T) {
	s := fastScheme()
	a, _ := s.Generate([]byte("same"))
	b, _ := s.Generate([]byte("same"))
	if a == b {
		t.Error("two Generate calls must produce different stored strings (different salts)")
	}
}

func TestScheme_Generate_HexFormat(t *testing.T) {
	s := fastScheme()
	s.Format = stretch.FormatHex
	stored, err := s.GenerateWithSalt([]byte("password"), []byte("salt"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(stored, "$c884c21db2a83e29ccaec6f377ed3bd6dac19f4db04c3c64afaa62fce243eea8") {
		t.Errorf("unexpected hex hash segment in %q", stored)
	}
	ok, err := s.Verify([]byte("password"), stored)
	if err != nil || !ok {
		t.Fatalf("hex Verify: ok=%v err=%v", ok, err)
	}
}

func TestScheme_CustomDelimiter(t *testing.T) {
	s := fastScheme()
	s.Delimiter = ":"
	stored, err := s.GenerateWithSalt([]byte("pw"), []byte("fixedsalt"))
	if err != nil {
		t.Fatalf("GenerateWithSalt: %v", err)
	}
	if !strings.HasPrefix(stored, ":v1:") {
		t.Errorf("stored = %q, want leading :v1:", stored)
	}
	ok, err := s.Verify([]byte("pw"), stored)
	if err != nil || !ok {
		t.Fatalf("Verify with custom delimiter: ok=%v err=%v", ok, err)
	}
}

func TestScheme_Generate_NilPassword(t *testing.T) {
	_, err := fastScheme().Generate(nil)
	if !errors.Is(err, stretch.ErrMissingPassword) {
		t.Errorf("expected ErrMissingPassword, got %v", err)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Parse
// ──────────────────────────────────────────────────────────────────────────────

func TestScheme_Parse(t *testing.T) {
	s := fastScheme()
	p, err := s.Parse("$v1$c2FsdA==$yITCHbKoPinMrsbzd+071trBn02wTDxkr6pi/OJD7qg=")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Identifier != "v1" {
		t.Errorf("Identifier = %q, want v1", p.Identifier)
	}
	if !bytes.Equal(p.Salt, []byte("salt")) {
		t.Errorf("Salt = %q, want salt", p.Salt)
	}
	if p.Hash != "yITCHbKoPinMrsbzd+071trBn02wTDxkr6pi/OJD7qg=" {
		t.Errorf("unexpected Hash segment %q", p.Hash)
	}
}

func TestScheme_Parse_Malformed(t *testing.T) {
	s := fastScheme()
	tests := []struct {
		name   string
		stored string
	}{
		{"empty", ""},
		{"no leading delimiter", "v1$c2FsdA==$aGFzaA=="},
		{"too few segments", "$v1$c2FsdA=="},
		{"too many segments", "$v1$c2FsdA==$aGFzaA==$extra"},
		{"invalid salt base64", "$v1$!!!$aGFzaA=="},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Parse(tt.stored)
			if !errors.Is(err, hashinfo.ErrMalformedHash) {
				t.Errorf("expected ErrMalformedHash, got %v", err)
			}
		})
	}
}

func TestScheme_Parse_IdentifierMismatch(t *testing.T) {
	s := fastScheme()
	_, err := s.Parse("$v2$c2FsdA==$aGFzaA==")
	if !errors.Is(err, hashinfo.ErrIdentifierMismatch) {
		t.Errorf("expected ErrIdentifierMismatch, got %v", err)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Scheme validation
// ──────────────────────────────────────────────────────────────────────────────

func TestScheme_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*hashinfo.Scheme)
	}{
		{"empty identifier", func(s *hashinfo.Scheme) { s.Identifier = "" }},
		{"rounds zero", func(s *hashinfo.Scheme) { s.Rounds = 0 }},
		{"binary format", func(s *hashinfo.Scheme) { s.Format = stretch.FormatBinary }},
		{"unknown format", func(s *hashinfo.Scheme) { s.Format = "base32" }},
		{"unknown algorithm", func(s *hashinfo.Scheme) { s.Algorithm = "md5" }},
		{"delimiter in hash alphabet", func(s *hashinfo.Scheme) { s.Delimiter = "a" }},
		{"multi-byte delimiter", func(s *hashinfo.Scheme) { s.Delimiter = "$$" }},
		{"identifier contains delimiter", func(s *hashinfo.Scheme) { s.Identifier = "v$1" }},
		{"salt_len too short", func(s *hashinfo.Scheme) { s.SaltLen = 4 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := fastScheme()
			tt.mutate(&s)
			_, err := s.Generate([]byte("pw"))
			if !errors.Is(err, hashinfo.ErrInvalidScheme) {
				t.Errorf("expected ErrInvalidScheme, got %v", err)
			}
		})
	}
}

func TestDefaultScheme(t *testing.T) {
	s := hashinfo.DefaultScheme("app-v1")
	if s.Algorithm != stretch.AlgorithmSHA256 {
		t.Errorf("Algorithm = %q, want sha-256", s.Algorithm)
	}
	if s.Rounds != hashinfo.DefaultRounds {
		t.Errorf("Rounds = %d, want %d", s.Rounds, hashinfo.DefaultRounds)
	}
	if s.Format != stretch.FormatBase64 {
		t.Errorf("Format = %q, want base64", s.Format)
	}

	stored, err := s.Generate([]byte("pw"))
	if err != nil {
		t.Fatalf("Generate with defaults: %v", err)
	}
	ok, err := s.Verify([]byte("pw"), stored)
	if err != nil || !ok {
		t.Fatalf("Verify with defaults: ok=%v err=%v", ok, err)
	}
}

// Two schemes that differ only by identifier cannot verify each other's
// hashes — the label is part of the stored string's contract.
func TestScheme_CrossSchemeVerify(t *testing.T) {
	a := fastScheme()
	b := fastScheme()
	b.Identifier = "v2"

	stored, _ := a.GenerateWithSalt([]byte("pw"), []byte("fixedsalt"))
	_, err := b.Verify([]byte("pw"), stored)
	if !errors.Is(err, hashinfo.ErrIdentifierMismatch) {
		t.Errorf("expected ErrIdentifierMismatch, got %v", err)
	}
}
