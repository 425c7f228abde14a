package presenter

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"visa-route-checker/internal/domain"
)

// TextPresenter renders search results for a terminal.
type TextPresenter struct {
	w io.Writer
}

func NewTextPresenter(w io.Writer) *TextPresenter {
	return &TextPresenter{w: w}
}

// Render writes one block per offer: the route of every itinerary followed by
// a success line or one warning line per reason.
func (p *TextPresenter) Render(res *domain.CheckResult) error {
	var b strings.Builder

	q := res.Query
	visa := "n/a"
	if !q.Passport.IsUnitedStates() {
		visa = yesNo(q.HasUSVisa)
	}
	fmt.Fprintf(&b, "🌐 %s → %s on %s (passport: %s, US visa: %s)\n",
		q.Origin, q.Destination, q.DepartureDate.Format("2006-01-02"), q.Passport.Name(), visa)

	if len(res.Offers) == 0 && res.Skipped == 0 {
		b.WriteString("\nNo flights found.\n")
	}

	for _, o := range res.Offers {
		fmt.Fprintf(&b, "\n✈️ Option %d\n", o.Option)
		for _, rc := range o.Routes {
			b.WriteString(rc.Route.String())
			b.WriteString("\n")
			if rc.Verdict.Safe() {
				b.WriteString("✅ Visa-safe route\n")
				continue
			}
			for _, reason := range rc.Verdict.Reasons {
				fmt.Fprintf(&b, "⚠️ %s\n", reason)
			}
		}
	}

	if res.Skipped > 0 {
		fmt.Fprintf(&b, "\nℹ️ %d offer(s) skipped: itinerary could not be read\n", res.Skipped)
	}

	_, err := io.WriteString(p.w, b.String())
	return err
}

// RenderError writes a failed search. The raw API response of a search
// error is printed for diagnosis.
func (p *TextPresenter) RenderError(err error) error {
	var b strings.Builder

	var authErr *domain.AuthError
	var searchErr *domain.SearchError
	switch {
	case errors.As(err, &authErr):
		b.WriteString("❌ Failed to get Amadeus access token. Check credentials.\n")
	case errors.As(err, &searchErr):
		b.WriteString("❌ No flights found or API error.\n")
		if body := strings.TrimSpace(searchErr.Body); body != "" {
			b.WriteString(body)
			b.WriteString("\n")
		}
	default:
		fmt.Fprintf(&b, "❌ %v\n", err)
	}

	_, werr := io.WriteString(p.w, b.String())
	return werr
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
