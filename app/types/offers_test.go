package types

import "testing"

func TestNewDescribeOfferRequestNormalizes(t *testing.T) {
	req := NewDescribeOfferRequest("  Globe ", 299, 2, true, " UNLI ")
	if req.GetTelcoName() != "Globe" || req.GetKind() != "unli" {
		t.Fatalf("unexpected normalized request: %+v", req)
	}
	if req.GetPromoPrice() != 299 || req.GetDataAllowance() != 2 || !req.GetUnliCallText() {
		t.Fatalf("unexpected plan fields: %+v", req)
	}
}

func TestDescribeOfferRequestValidate(t *testing.T) {
	req := NewDescribeOfferRequest("Globe", 0, 0, false, "")
	if err := req.Validate(); err == nil {
		t.Fatal("expected missing kind validation error")
	}

	req = NewDescribeOfferRequest("Globe", 0, 0, false, "roaming")
	if err := req.Validate(); err == nil {
		t.Fatal("expected unknown kind validation error")
	}

	req = NewDescribeOfferRequest("Sun", 0, 0, false, "usage")
	if err := req.Validate(); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
}
