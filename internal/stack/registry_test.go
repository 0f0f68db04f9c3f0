package stack

import (
	"path/filepath"
	"reflect"
	"sort"
	"testing"
)

func TestSearch_MatchesNameDescriptionAndTags(t *testing.T) {
	byName := testStack("blog-web", 5, "web")
	byDesc := testStack("api", 5, "web")
	byDesc.Description = "The WEB gateway"
	byTag := testStack("metrics", 5, "infra")
	byTag.Tags = []string{"webby"}
	miss := testStack("db", 5, "data")
	reg := testRegistry(byName, byDesc, byTag, miss)

	got := reg.Search("web")
	found := names(got)
	sort.Strings(found)
	want := []string{"api", "blog-web", "metrics"}
	if !reflect.DeepEqual(found, want) {
		t.Fatalf("search=%v want %v", found, want)
	}
}

func TestAllTagsAndCategoriesSorted(t *testing.T) {
	a := testStack("a", 5, "web")
	a.Tags = []string{"z", "b"}
	b := testStack("b", 5, "data")
	b.Subcategory = "sql"
	b.Tags = []string{"b", "m"}
	reg := testRegistry(a, b)

	tags := reg.AllTags()
	if !reflect.DeepEqual(tags, []string{"b", "m", "z"}) {
		t.Fatalf("tags=%v", tags)
	}

	cats := reg.AllCategories()
	if len(cats) != 2 || cats[0].Display() != "data/sql" || cats[1].Display() != "web" {
		t.Fatalf("categories=%v", cats)
	}
}

func TestAutostartSet_InStartOrder(t *testing.T) {
	a := testStack("a", 5, "web")
	a.AutoStart = true
	b := testStack("b", 1, "web")
	b.AutoStart = true
	c := testStack("c", 3, "web")
	reg := testRegistry(a, b, c)

	got := reg.AutostartSet()
	if !sameNames(got, "b", "a") {
		t.Fatalf("autostart=%v want [b a]", names(got))
	}
}

func TestRenameTag_NeverDuplicates(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, filepath.Join(root, "both"))
	writeFile(t, filepath.Join(root, "both", MetaFileName), "tags: [old, new]\n")
	writeManifest(t, filepath.Join(root, "only-old"))
	writeFile(t, filepath.Join(root, "only-old", MetaFileName), "tags: [old]\n")
	writeManifest(t, filepath.Join(root, "untouched"))
	writeFile(t, filepath.Join(root, "untouched", MetaFileName), "tags: [other]\n")

	reg := discover(t, root)
	count, err := reg.RenameTag("old", "new")
	if err != nil {
		t.Fatalf("rename: %v", err)
	}
	if count != 2 {
		t.Fatalf("count=%d want 2", count)
	}

	fresh := discover(t, root)
	if tags := fresh.ByName("both").Tags; !reflect.DeepEqual(tags, []string{"new"}) {
		t.Fatalf("both tags=%v, rename must not duplicate", tags)
	}
	if tags := fresh.ByName("only-old").Tags; !reflect.DeepEqual(tags, []string{"new"}) {
		t.Fatalf("only-old tags=%v", tags)
	}
	if tags := fresh.ByName("untouched").Tags; !reflect.DeepEqual(tags, []string{"other"}) {
		t.Fatalf("untouched tags=%v", tags)
	}
}

func TestRenameCategory_TouchesExactMatchesOnly(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, filepath.Join(root, "a"))
	writeFile(t, filepath.Join(root, "a", MetaFileName), "category: web\n")
	writeManifest(t, filepath.Join(root, "b"))
	writeFile(t, filepath.Join(root, "b", MetaFileName), "category: web\nsubcategory: blog\n")
	writeManifest(t, filepath.Join(root, "c"))
	writeFile(t, filepath.Join(root, "c", MetaFileName), "category: webby\n")

	reg := discover(t, root)
	count, err := reg.RenameCategory("web", "frontend")
	if err != nil {
		t.Fatalf("rename: %v", err)
	}
	if count != 2 {
		t.Fatalf("count=%d want 2", count)
	}

	fresh := discover(t, root)
	if got := fresh.ByName("a").Category; got != "frontend" {
		t.Fatalf("a category=%q", got)
	}
	if s := fresh.ByName("b"); s.Category != "frontend" || s.Subcategory != "blog" {
		t.Fatalf("b category=%q/%q, subcategory must survive", s.Category, s.Subcategory)
	}
	if got := fresh.ByName("c").Category; got != "webby" {
		t.Fatalf("c category=%q, prefix matches must not rename", got)
	}
}
