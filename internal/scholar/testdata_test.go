// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"
)

// sampleRow mirrors one result row of a live profile page.
const sampleRow = `<tr class="gsc_a_tr">
  <td class="gsc_a_t">
    <a href="/citations?view_op=view_citation&amp;hl=en&amp;user=lAS1T9BopYMC&amp;citation_for_view=lAS1T9BopYMC:u5HHmVD_uO8C" class="gsc_a_at">Parametric inference in the large data limit using maximally informative models</a>
    <div class="gs_gray">JB Kinney, GS Atwal</div>
    <div class="gs_gray">Neural computation 26 (4), 637-660<span class="gs_oph">, 2014</span></div>
  </td>
  <td class="gsc_a_c"><a href="https://scholar.google.com/scholar?oi=bibs&amp;hl=en&amp;cites=123" class="gsc_a_ac gs_ibl">42</a></td>
  <td class="gsc_a_y"><span class="gsc_a_h gsc_a_hc gs_ibl">2014</span></td>
</tr>`

// pageHTML wraps rows in the table markup of a profile page.
func pageHTML(rows ...string) string {
	return `<!doctype html><html><head><title>Profile</title></head><body>
<div id="gsc_a_b"><table id="gsc_a_t"><tbody id="gsc_a_b">` +
		strings.Join(rows, "\n") +
		`</tbody></table></div></body></html>`
}

// numberedRow returns a minimal well-formed row for publication n.
func numberedRow(n int, year string) string {
	return fmt.Sprintf(`<tr class="gsc_a_tr"><td class="gsc_a_t">
<a href="/citations?view_op=view_citation&amp;citation_for_view=u:%d" class="gsc_a_at">Paper %d</a>
<div class="gs_gray">Author %d</div><div class="gs_gray">Venue %d</div></td>
<td class="gsc_a_c"><a class="gsc_a_ac gs_ibl">%d</a></td>
<td class="gsc_a_y"><span class="gsc_a_h gsc_a_hc gs_ibl">%s</span></td></tr>`, n, n, n, n, n, year)
}

// recordSleeps replaces sleepFunc for the duration of the test and returns
// the delays requested.
func recordSleeps(t *testing.T) *[]time.Duration {
	t.Helper()
	var got []time.Duration
	orig := sleepFunc
	sleepFunc = func(ctx context.Context, d time.Duration) error {
		got = append(got, d)
		return ctx.Err()
	}
	t.Cleanup(func() { sleepFunc = orig })
	return &got
}
