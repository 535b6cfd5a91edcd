package lifecycle

import "testing"

func TestItemCanTransition(t *testing.T) {
	cases := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"available to claimed", ItemAvailable, ItemClaimed, true},
		{"claimed to returned", ItemClaimed, ItemReturned, true},
		{"claimed back to available", ItemClaimed, ItemAvailable, true},
		{"available to returned skips claimed", ItemAvailable, ItemReturned, false},
		{"returned is terminal", ItemReturned, ItemAvailable, false},
		{"same status is idempotent", ItemReturned, ItemReturned, true},
		{"unknown from", "lost", ItemAvailable, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ItemCanTransition(tc.from, tc.to); got != tc.want {
				t.Fatalf("ItemCanTransition(%q, %q) = %v, want %v", tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestClaimCanTransition(t *testing.T) {
	cases := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"pending to approved", ClaimPending, ClaimApproved, true},
		{"pending to rejected", ClaimPending, ClaimRejected, true},
		{"approved is terminal", ClaimApproved, ClaimRejected, false},
		{"rejected is terminal", ClaimRejected, ClaimApproved, false},
		{"same status is idempotent", ClaimApproved, ClaimApproved, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClaimCanTransition(tc.from, tc.to); got != tc.want {
				t.Fatalf("ClaimCanTransition(%q, %q) = %v, want %v", tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestValidStatuses(t *testing.T) {
	for _, s := range ItemStatuses() {
		if !ValidItemStatus(s) {
			t.Fatalf("expected %q to be a valid item status", s)
		}
	}
	for _, s := range ClaimStatuses() {
		if !ValidClaimStatus(s) {
			t.Fatalf("expected %q to be a valid claim status", s)
		}
	}
	if ValidItemStatus("pending") {
		t.Fatal("claim status accepted as item status")
	}
	if ValidClaimStatus("available") {
		t.Fatal("item status accepted as claim status")
	}
}
