package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/BrandonKowalski/marquee/pkg/marquee/optional"
)

func avatarCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := New([]Movie{{ID: "tt1", Title: "Avatar", Images: []string{"a.jpg"}}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c
}

func TestFindByIDScenario(t *testing.T) {
	c := avatarCatalog(t)

	got, ok := c.FindByID(optional.Some("tt1")).Get()
	if !ok {
		t.Fatal("FindByID(tt1) is absent, want Avatar")
	}
	want := Movie{ID: "tt1", Title: "Avatar", Images: []string{"a.jpg"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindByID(tt1) = %+v, want %+v", got, want)
	}

	if c.FindByID(optional.Some("missing")).IsPresent() {
		t.Error("FindByID(missing) is present, want absent")
	}
}

func TestFindByIDIsTotal(t *testing.T) {
	c := avatarCatalog(t)
	var nilCatalog *Catalog

	testCases := []struct {
		name    string
		catalog *Catalog
		id      optional.Value[string]
	}{
		{"absent id", c, optional.None[string]()},
		{"empty id", c, optional.Some("")},
		{"unknown id", c, optional.Some("tt999")},
		{"id with slash", c, optional.Some("tt1/extra")},
		{"nil catalog", nilCatalog, optional.Some("tt1")},
	}

	for _, tc := range testCases {
		if tc.catalog.FindByID(tc.id).IsPresent() {
			t.Errorf("%s: FindByID(%v) is present, want absent", tc.name, tc.id)
		}
	}
}

func TestListRoundTrip(t *testing.T) {
	c := Default()

	movies := c.List()
	if len(movies) == 0 {
		t.Fatal("Default().List() is empty")
	}
	if len(movies) != c.Len() {
		t.Errorf("len(List()) = %d, Len() = %d", len(movies), c.Len())
	}

	for _, m := range movies {
		found, ok := c.FindByID(optional.Some(m.ID)).Get()
		if !ok {
			t.Errorf("FindByID(%s) is absent", m.ID)
			continue
		}
		if !reflect.DeepEqual(found, m) {
			t.Errorf("FindByID(%s) = %+v, want %+v", m.ID, found, m)
		}
	}
}

func TestListPreservesOrder(t *testing.T) {
	c, err := New([]Movie{
		{ID: "b", Images: []string{"b.jpg"}},
		{ID: "a", Images: []string{"a.jpg"}},
		{ID: "c", Images: []string{"c.jpg"}},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	var ids []string
	for _, m := range c.List() {
		ids = append(ids, m.ID)
	}
	if want := []string{"b", "a", "c"}; !reflect.DeepEqual(ids, want) {
		t.Errorf("List() ids = %v, want %v", ids, want)
	}
}

func TestCatalogIsImmutable(t *testing.T) {
	source := []Movie{{ID: "tt1", Title: "Avatar", Images: []string{"a.jpg", "b.jpg"}}}
	c, err := New(source)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	source[0].Title = "changed"
	source[0].Images[0] = "changed.jpg"

	listed := c.List()
	listed[0].Images[1] = "changed.jpg"

	got, _ := c.FindByID(optional.Some("tt1")).Get()
	if got.Title != "Avatar" || got.Images[0] != "a.jpg" || got.Images[1] != "b.jpg" {
		t.Errorf("catalog entry was mutated through a caller's copy: %+v", got)
	}
}

func TestNewRejectsInvalidMovies(t *testing.T) {
	testCases := []struct {
		name    string
		movies  []Movie
		wantErr error
	}{
		{"empty id", []Movie{{Title: "x", Images: []string{"x.jpg"}}}, ErrEmptyID},
		{"duplicate id", []Movie{
			{ID: "tt1", Images: []string{"a.jpg"}},
			{ID: "tt1", Images: []string{"b.jpg"}},
		}, ErrDuplicateID},
		{"no images", []Movie{{ID: "tt1"}}, ErrNoImages},
	}

	for _, tc := range testCases {
		_, err := New(tc.movies)
		if !errors.Is(err, tc.wantErr) {
			t.Errorf("%s: New() error = %v, want %v", tc.name, err, tc.wantErr)
		}
	}
}

func TestPoster(t *testing.T) {
	if got := (Movie{Images: []string{"p.jpg", "q.jpg"}}).Poster(); got != "p.jpg" {
		t.Errorf("Poster() = %q, want p.jpg", got)
	}
	if got := (Movie{}).Poster(); got != "" {
		t.Errorf("Poster() on no images = %q, want empty", got)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.toml")
	data := []byte(`
[[movie]]
id = "tt1"
title = "Avatar"
director = "James Cameron"
year = "2009"
images = ["a.jpg"]

[[movie]]
id = "tt2"
title = "300"
images = ["b.jpg", "c.jpg"]
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	m, _ := c.FindByID(optional.Some("tt1")).Get()
	if m.Director != "James Cameron" || m.Year != "2009" {
		t.Errorf("FindByID(tt1) = %+v", m)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load(missing) error = nil, want error")
	}
	if _, err := Parse([]byte("[[movie]\nid =")); err == nil {
		t.Error("Parse(malformed) error = nil, want error")
	}
	if _, err := Parse([]byte("[[movie]]\nid = \"tt1\"\n")); !errors.Is(err, ErrNoImages) {
		t.Errorf("Parse(no images) error = %v, want ErrNoImages", err)
	}
}
