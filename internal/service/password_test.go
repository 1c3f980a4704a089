package service

import "testing"

func TestPasswordRoundTrip(t *testing.T) {
	digest, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if digest == "correct horse" {
		t.Fatal("digest must not be the plaintext")
	}
	if !CheckPassword("correct horse", digest) {
		t.Fatal("expected matching password to verify")
	}
	if CheckPassword("wrong horse", digest) {
		t.Fatal("expected mismatching password to fail")
	}
}

func TestPasswordSaltRandomness(t *testing.T) {
	first, err := HashPassword("same input")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	second, err := HashPassword("same input")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if first == second {
		t.Fatal("two digests of the same password must differ")
	}
	if !CheckPassword("same input", first) || !CheckPassword("same input", second) {
		t.Fatal("both digests must verify against the original password")
	}
}

func TestCheckPasswordMalformedDigest(t *testing.T) {
	if CheckPassword("anything", "not-a-bcrypt-digest") {
		t.Fatal("malformed digest must fail like a wrong password")
	}
	if CheckPassword("anything", "") {
		t.Fatal("empty digest must fail")
	}
}
