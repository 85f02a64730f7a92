package bookings

import "testing"

func TestVoucherSignature(t *testing.T) {
	sig := SignVoucher("BK12345678")
	if sig == "" {
		t.Fatal("Expected non-empty signature")
	}

	if !VerifyVoucher("BK12345678", sig) {
		t.Error("Signature must verify for the same booking id")
	}
	if VerifyVoucher("BK87654321", sig) {
		t.Error("Signature must not verify for a different booking id")
	}
	if VerifyVoucher("BK12345678", "tampered") {
		t.Error("Tampered signature must not verify")
	}
}

func TestVoucherSignatureDeterministic(t *testing.T) {
	if SignVoucher("BK1") != SignVoucher("BK1") {
		t.Error("Same booking id must produce the same signature")
	}
	if SignVoucher("BK1") == SignVoucher("BK2") {
		t.Error("Different booking ids must produce different signatures")
	}
}
