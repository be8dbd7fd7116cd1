package main_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	main "github.com/mlipska/farmsub/cmd/farmsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// summaryPage is a cut-down region summary page: the content cell holds
// the mapping library include and the inline data script with two
// counties.
const summaryPage = `<!DOCTYPE html>
<html>
<body>
<table>
<tr>
<td class="cont">
<script type="text/javascript" src="/js/ammap/ammap.js"></script>
<script type="text/javascript">
var map;
var mapData = {map: "usaCounties", areas: [
{id:"C53001",value:1234.00,description:"<b>$1,234.00</b><br><table><tr><td>Commodity:</td><td>$500.00</td></tr><tr><td>Conservation:</td><td>$0.00</td></tr><tr><td>Disaster:</td><td>$0.00</td></tr><tr><td>Insurance:</td><td>$734.00</td></tr></table>"},
{id:"C53003",value:98765.43,description:"<b>$98,765.43</b><br><table><tr><td>Commodity:</td><td>$12,000.00</td></tr><tr><td>Conservation:</td><td>$1,500.50</td></tr><tr><td>Disaster:</td><td>$0.00</td></tr><tr><td>Insurance:</td><td>$85,264.93</td></tr></table>"}
]};
</script>
</td>
</tr>
</table>
</body>
</html>`

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("returns error when no command given", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		err := m.Run(context.Background(), []string{}, &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command")
	})

	t.Run("prints help without error", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		m := main.NewMain()
		err := m.Run(context.Background(), []string{"--help"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "farmsub")
	})

	t.Run("runs the states command end to end", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		m := main.NewMain()
		err := m.Run(context.Background(), []string{"states"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "53000  WA  Washington")
	})

	t.Run("scrapes a local server end to end", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "53000", r.URL.Query().Get("fips"))
			assert.Equal(t, "total", r.URL.Query().Get("progcode"))
			assert.Equal(t, "2017", r.URL.Query().Get("yr"))
			_, _ = w.Write([]byte(summaryPage))
		}))
		defer server.Close()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		m := main.NewMain()
		m.BaseURL = server.URL

		err := m.Run(context.Background(), []string{"scrape", "-s", "WA", "--from", "2017", "--to", "2017", "--records"}, stdout, stderr)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "Decoded 2 records from 1 pages")
		assert.Contains(t, output, "53001 2017 1234.00 500.00 0.00 0.00 734.00")
		assert.Contains(t, output, "53003 2017 98765.43 12000.00 1500.50 0.00 85264.93")
	})

	t.Run("probes a local server end to end", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(summaryPage))
		}))
		defer server.Close()

		stdout := &bytes.Buffer{}
		m := main.NewMain()
		m.BaseURL = server.URL

		err := m.Run(context.Background(), []string{"probe", "WA", "2017"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "Washington 2017")
		assert.Contains(t, output, "records: 2 decoded, 0 failed")
	})

	t.Run("verbose scrape logs fetches to stderr", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(summaryPage))
		}))
		defer server.Close()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		m := main.NewMain()
		m.BaseURL = server.URL

		err := m.Run(context.Background(), []string{"--verbose", "scrape", "-s", "WA", "--from", "2017", "--to", "2017"}, stdout, stderr)

		require.NoError(t, err)
		logged := stderr.String()
		assert.Contains(t, logged, "msg=fetch")
		assert.Contains(t, logged, "msg=extract")
	})
}
