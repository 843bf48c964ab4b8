package catalog

import "testing"

func TestSubServiceIDsUniqueAcrossCatalog(t *testing.T) {
	seen := map[string]string{}
	for _, s := range Services() {
		for _, sub := range append(s.SubServices, s.Parts...) {
			if owner, dup := seen[sub.ID]; dup {
				t.Errorf("sub-service id %q appears in both %q and %q", sub.ID, owner, s.ID)
			}
			seen[sub.ID] = s.ID
		}
	}
}

func TestPricesNonNegative(t *testing.T) {
	for _, s := range Services() {
		for _, sub := range s.SubServices {
			if sub.Price < 0 {
				t.Errorf("%s has negative price %d", sub.ID, sub.Price)
			}
		}
	}
}

func TestFindBySlug(t *testing.T) {
	cases := map[string]string{
		"ac":              "ac",
		"ac-repair":       "ac",
		"/ac-repair":      "ac",
		"minor-work":      "minor_work",
		"lighting":        "lighting",
		"large-appliance": "large-appliance",
	}
	for slug, want := range cases {
		svc, ok := FindBySlug(slug)
		if !ok || svc.ID != want {
			t.Errorf("FindBySlug(%q) = %q ok=%v, want %q", slug, svc.ID, ok, want)
		}
	}

	if _, ok := FindBySlug("plumbing"); ok {
		t.Error("unknown slug should not resolve")
	}
	if _, ok := FindBySlug(""); ok {
		t.Error("empty slug should not resolve")
	}
}

func TestFindSubService(t *testing.T) {
	sub, parent, ok := FindSubService("ac-gas")
	if !ok {
		t.Fatal("ac-gas should exist")
	}
	if sub.Price != 2499 {
		t.Errorf("expected price 2499, got %d", sub.Price)
	}
	if parent.ID != "ac" {
		t.Errorf("expected parent ac, got %q", parent.ID)
	}

	if _, _, ok := FindSubService("missing"); ok {
		t.Error("unknown sub-service should not resolve")
	}
}

func TestSearchMatchesAndCaps(t *testing.T) {
	results := Search("repair")
	if len(results) == 0 {
		t.Fatal("search for 'repair' should match")
	}
	if len(results) > 5 {
		t.Errorf("search must cap at 5 results, got %d", len(results))
	}
	for _, r := range results {
		if r.ParentName == "" || r.ParentID == "" {
			t.Errorf("result missing parent denormalization: %+v", r)
		}
	}

	if got := Search("   "); got != nil {
		t.Errorf("blank query should return nothing, got %v", got)
	}
}
