package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "s3cret" {
		t.Fatalf("expected password to be hashed")
	}

	if !Verify("s3cret", hash) {
		t.Fatalf("expected correct password to verify")
	}
	if Verify("wrong", hash) {
		t.Fatalf("expected wrong password to fail")
	}
}

func TestHash_Salted(t *testing.T) {
	a, err := Hash("same")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	b, err := Hash("same")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if a == b {
		t.Fatalf("expected distinct salts to produce distinct hashes")
	}
}

func TestVerify_FailsClosedOnMalformedHash(t *testing.T) {
	for _, hash := range []string{"", "not-a-bcrypt-hash", "$2a$xx$broken"} {
		if Verify("anything", hash) {
			t.Fatalf("expected malformed hash %q to fail verification", hash)
		}
	}
}
