package navigation

import "testing"

func TestResolveHomeAndSections(t *testing.T) {
	cases := map[string]View{
		"/":           {Section: SectionHome},
		"":            {Section: SectionHome},
		"/service":    {Section: SectionServices},
		"/reviews":    {Section: SectionReviews},
		"/contact-us": {Panel: PanelContact, Section: SectionHome},
		"/nonsense":   {Section: SectionHome},
	}
	for path, want := range cases {
		if got := Resolve(path); got != want {
			t.Errorf("Resolve(%q) = %+v, want %+v", path, got, want)
		}
	}
}

func TestResolveServiceDeepLink(t *testing.T) {
	view := Resolve("/ac-repair")
	if view.Panel != PanelServiceDetail {
		t.Fatalf("service slug should open the detail panel, got %+v", view)
	}
	if view.ServiceID != "ac" {
		t.Errorf("wrong service resolved: %q", view.ServiceID)
	}

	// Underscored ids resolve through their hyphenated slugs.
	if view := Resolve("/minor-work"); view.ServiceID != "minor_work" {
		t.Errorf("minor-work slug should resolve minor_work, got %+v", view)
	}
}

func TestDeepLinkOpensExactlyOnePanel(t *testing.T) {
	c := NewController()
	c.OpenPanel(PanelHistory, "")

	view := c.Navigate("/ac-repair")
	if view.Panel != PanelServiceDetail || view.ServiceID != "ac" {
		t.Errorf("navigation should replace the open panel, got %+v", view)
	}
}

func TestBackClosesPanelBeforePoppingPath(t *testing.T) {
	c := NewController()
	c.Navigate("/reviews")
	c.OpenPanel(PanelBookingForm, "")

	// First back only dismisses the panel; the path holds.
	view := c.Back()
	if view.Panel != PanelNone {
		t.Fatalf("back should close the panel, got %+v", view)
	}
	if c.Path() != "/reviews" {
		t.Errorf("path moved while closing the panel: %q", c.Path())
	}

	// Second back, with no panel open, pops the history.
	view = c.Back()
	if c.Path() != "/" {
		t.Errorf("expected to return to /, got %q", c.Path())
	}
	if view.Section != SectionHome {
		t.Errorf("expected home view, got %+v", view)
	}
}

func TestBackOnEmptyHistoryStays(t *testing.T) {
	c := NewController()
	view := c.Back()
	if c.Path() != "/" || view.Section != SectionHome {
		t.Errorf("back at the root should stay put: path=%q view=%+v", c.Path(), view)
	}
}

func TestOpenPanelDoesNotChangePath(t *testing.T) {
	c := NewController()
	c.Navigate("/service")
	c.OpenPanel(PanelAdmin, "")

	if c.Path() != "/service" {
		t.Errorf("opening a panel must not navigate, path=%q", c.Path())
	}
	if c.Current().Panel != PanelAdmin {
		t.Errorf("admin panel not open: %+v", c.Current())
	}
}

func TestNavigateRecordsHistory(t *testing.T) {
	c := NewController()
	c.Navigate("/reviews")
	c.Navigate("/contact-us")

	c.Back() // closes contact panel
	c.Back() // pops to /reviews
	if c.Path() != "/reviews" {
		t.Errorf("expected /reviews after back, got %q", c.Path())
	}
	c.Back()
	if c.Path() != "/" {
		t.Errorf("expected / after second back, got %q", c.Path())
	}
}
