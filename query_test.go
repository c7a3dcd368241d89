package urlify_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ismailceylan/urlify"
)

func TestParseQuery(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
		want []urlify.QueryEntry
	}{
		{"empty", "", nil},
		{"single pair", "a=1", []urlify.QueryEntry{urlify.KeyValue("a", "1")}},
		{
			"pairs and flag", "a=1&debug&b=2",
			[]urlify.QueryEntry{
				urlify.KeyValue("a", "1"),
				urlify.Flag("debug"),
				urlify.KeyValue("b", "2"),
			},
		},
		{
			"empty value is not a flag", "a=",
			[]urlify.QueryEntry{urlify.KeyValue("a", "")},
		},
		{
			"cut on first equals", "a=b=c",
			[]urlify.QueryEntry{urlify.KeyValue("a", "b=c")},
		},
		{
			"duplicate keys preserved", "k=1&k=2",
			[]urlify.QueryEntry{urlify.KeyValue("k", "1"), urlify.KeyValue("k", "2")},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got := urlify.ParseQuery(c.raw).Entries()
			var gotAny []urlify.QueryEntry
			if len(got) > 0 {
				gotAny = got
			}
			if diff := cmp.Diff(gotAny, c.want); diff != "" {
				t.Errorf("ParseQuery(%q) diff (-got +want):\n%v", c.raw, diff)
			}
		})
	}
}

func TestQuery_Lookups(t *testing.T) {
	t.Parallel()

	q := urlify.ParseQuery("k=1&debug&k=2&x=9")

	if got := q.Get("k"); got != "2" {
		t.Errorf(`Get("k") = %q, want %q`, got, "2")
	}
	if got := q.Get("missing"); got != "" {
		t.Errorf(`Get("missing") = %q, want ""`, got)
	}
	if _, ok := q.Lookup("missing"); ok {
		t.Error(`Lookup("missing") ok = true, want false`)
	}
	if !q.Has("debug") {
		t.Error(`Has("debug") = false, want true`)
	}
	if diff := cmp.Diff(q.GetAll("k"), []string{"1", "2"}); diff != "" {
		t.Errorf("GetAll(%q) diff (-got +want):\n%v", "k", diff)
	}
	if diff := cmp.Diff(q.Keys(), []string{"k", "debug", "x"}); diff != "" {
		t.Errorf("Keys() diff (-got +want):\n%v", diff)
	}
	if diff := cmp.Diff(q.AllKeys(), []string{"k", "debug", "k", "x"}); diff != "" {
		t.Errorf("AllKeys() diff (-got +want):\n%v", diff)
	}
	if diff := cmp.Diff(q.All(), map[string][]string{
		"k":     {"1", "2"},
		"debug": {""},
		"x":     {"9"},
	}); diff != "" {
		t.Errorf("All() diff (-got +want):\n%v", diff)
	}
}

func TestQuery_SetMovesKeyToEnd(t *testing.T) {
	t.Parallel()

	q := urlify.ParseQuery("a=1&b=2&a=3")
	q.Set("a", "9")

	if got := q.String(); got != "?b=2&a=9" {
		t.Errorf("q.String() = %q, want %q", got, "?b=2&a=9")
	}
}

func TestQuery_Mutations(t *testing.T) {
	t.Parallel()

	q := urlify.NewQuery().Add("a", "1").AddFlag("debug").Add("a", "2")
	if got := q.String(); got != "?a=1&debug&a=2" {
		t.Errorf("q.String() = %q, want %q", got, "?a=1&debug&a=2")
	}

	q.Remove("a")
	if got := q.String(); got != "?debug" {
		t.Errorf("after Remove, q.String() = %q, want %q", got, "?debug")
	}

	q.Merge(urlify.ParseQuery("x=1&debug"))
	if got := q.String(); got != "?debug&x=1&debug" {
		t.Errorf("after Merge, q.String() = %q, want %q", got, "?debug&x=1&debug")
	}
}

func TestQuery_FilterMap(t *testing.T) {
	t.Parallel()

	q := urlify.ParseQuery("a=1&debug&b=2")

	flags := q.Filter(func(e urlify.QueryEntry, _ int) bool { return e.IsFlag })
	if got := flags.String(); got != "?debug" {
		t.Errorf("flags.String() = %q, want %q", got, "?debug")
	}

	upper := q.Map(func(e urlify.QueryEntry, _ int) urlify.QueryEntry {
		e.Key = strings.ToUpper(e.Key)
		return e
	})
	if got := upper.String(); got != "?A=1&DEBUG&B=2" {
		t.Errorf("upper.String() = %q, want %q", got, "?A=1&DEBUG&B=2")
	}
	if got := q.String(); got != "?a=1&debug&b=2" {
		t.Errorf("original mutated: %q", got)
	}
}

func TestQuery_CustomSeparators(t *testing.T) {
	t.Parallel()

	q := urlify.ParseQuery("sort:purchases|dir:desc",
		urlify.WithSeparator('|'), urlify.WithEquals(':'))

	if got := q.Get("sort"); got != "purchases" {
		t.Errorf(`Get("sort") = %q, want %q`, got, "purchases")
	}
	if got := q.String(); got != "?sort:purchases|dir:desc" {
		t.Errorf("q.String() = %q, want %q", got, "?sort:purchases|dir:desc")
	}
}

func TestQuery_GetAsQuery(t *testing.T) {
	t.Parallel()

	q := urlify.ParseQuery("ref=utm_medium:social|utm_source:github&x=1")

	nested, ok := q.GetAsQuery("ref", urlify.WithSeparator('|'), urlify.WithEquals(':'))
	if !ok {
		t.Fatal(`GetAsQuery("ref") ok = false, want true`)
	}
	if got := nested.Get("utm_source"); got != "github" {
		t.Errorf(`nested.Get("utm_source") = %q, want %q`, got, "github")
	}

	if _, ok := q.GetAsQuery("missing"); ok {
		t.Error(`GetAsQuery("missing") ok = true, want false`)
	}
}

func TestQuery_Equal(t *testing.T) {
	t.Parallel()

	a := urlify.ParseQuery("a=1&b=2")
	if !a.Equal(urlify.ParseQuery("a=1&b=2")) {
		t.Error("Equal(same entries) = false, want true")
	}
	if a.Equal(urlify.ParseQuery("b=2&a=1")) {
		t.Error("Equal(reordered entries) = true, want false")
	}
	if a.Equal("a=1&b=2") {
		t.Error("Equal(string) = true, want false")
	}
}

func TestQuery_MarshalJSON(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(urlify.ParseQuery("k=1&k=2&x=9"))
	if err != nil {
		t.Fatalf("json.Marshal error = %v", err)
	}

	var data map[string][]string
	if err := json.Unmarshal(b, &data); err != nil {
		t.Fatalf("json.Unmarshal error = %v", err)
	}
	if diff := cmp.Diff(data, map[string][]string{"k": {"1", "2"}, "x": {"9"}}); diff != "" {
		t.Errorf("query JSON diff (-got +want):\n%v", diff)
	}
}
