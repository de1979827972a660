package bcrypt

import "testing"

func TestHashAndCompare(t *testing.T) {
	hash, err := HashPassword("12345678")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "12345678" {
		t.Fatal("hash equals plain text")
	}
	if !VerifyHash(hash) {
		t.Errorf("VerifyHash(%q) = false", hash)
	}
	if err := ComparePassword(hash, "12345678"); err != nil {
		t.Errorf("ComparePassword: %v", err)
	}
	if err := ComparePassword(hash, "87654321"); err == nil {
		t.Error("expected mismatch error")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	a, err := HashPassword("12345678")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	b, err := HashPassword("12345678")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if a == b {
		t.Error("two hashes of the same password are identical")
	}
}

func TestVerifyHash(t *testing.T) {
	if VerifyHash("plain") {
		t.Error("VerifyHash accepted a non-bcrypt string")
	}
}
