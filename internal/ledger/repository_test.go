package ledger

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timeAgo(t *testing.T) time.Time {
	t.Helper()
	return time.Now().Add(-time.Hour)
}

func writeDoc(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestScanClassifiesByStemSuffix(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "2025/acme/HI20250301-01_main-st.typ", "a")
	writeDoc(t, root, "2025/acme/HI20250301-02_main-st_PAID.typ", "b")
	writeDoc(t, root, "2025/globex/HI20250215-01_elm-ave_VOID.typ", "c")
	// PDF siblings and stray files are not ledger records.
	writeDoc(t, root, "2025/acme/HI20250301-01_main-st.pdf", "binary")
	writeDoc(t, root, "2025/notes.txt", "notes")

	repo := NewRepository(root)
	docs, err := repo.Scan(nil)
	require.NoError(t, err)
	require.Len(t, docs, 3)

	statuses := make(map[string]Status)
	for _, d := range docs {
		statuses[d.Stem] = d.Status
	}
	assert.Equal(t, Unpaid, statuses["HI20250301-01_main-st"])
	assert.Equal(t, Paid, statuses["HI20250301-02_main-st_PAID"])
	assert.Equal(t, Void, statuses["HI20250215-01_elm-ave_VOID"])
}

func TestScanFilters(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "2025/acme/HI20250301-01_main-st.typ", "a")
	writeDoc(t, root, "2025/acme/HI20250301-02_main-st_PAID.typ", "b")
	writeDoc(t, root, "2025/acme/HI20250301-03_main-st_VOID.typ", "c")

	repo := NewRepository(root)

	tests := []struct {
		name   string
		filter func(Document) bool
		stems  []string
	}{
		{"pay candidates", PayCandidates, []string{"HI20250301-01_main-st"}},
		{"unpay candidates", UnpayCandidates, []string{"HI20250301-02_main-st_PAID"}},
		{"void candidates exclude paid", VoidCandidates(false), []string{"HI20250301-01_main-st"}},
		{"void candidates include paid", VoidCandidates(true), []string{"HI20250301-01_main-st", "HI20250301-02_main-st_PAID"}},
		{"listed paid", ListedAs(true), []string{"HI20250301-02_main-st_PAID"}},
		{"listed unpaid", ListedAs(false), []string{"HI20250301-01_main-st"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs, err := repo.Scan(tt.filter)
			require.NoError(t, err)
			var stems []string
			for _, d := range docs {
				stems = append(stems, d.Stem)
			}
			assert.ElementsMatch(t, tt.stems, stems)
		})
	}
}

func TestScanMissingOutputDir(t *testing.T) {
	repo := NewRepository(filepath.Join(t.TempDir(), "missing"))
	_, err := repo.Scan(nil)
	assert.ErrorIs(t, err, ErrNoOutputDir)
}

func TestCommitRenamesSourceAndBinaryTogether(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "2025/acme/HI20250301-01_main-st.typ", "source")
	writeDoc(t, root, "2025/acme/HI20250301-01_main-st.pdf", "binary")

	repo := NewRepository(root)
	docs, err := repo.Scan(nil)
	require.NoError(t, err)
	require.Len(t, docs, 1)

	committed, err := repo.Commit(docs[0], "HI20250301-01_main-st_PAID", []byte("updated"))
	require.NoError(t, err)
	assert.Equal(t, "2025/acme/HI20250301-01_main-st_PAID.typ", committed.RelPath)
	assert.Equal(t, Paid, committed.Status)

	content, err := os.ReadFile(filepath.Join(root, "2025/acme/HI20250301-01_main-st_PAID.typ"))
	require.NoError(t, err)
	assert.Equal(t, "updated", string(content))

	// Both old forms are gone.
	_, err = os.Stat(filepath.Join(root, "2025/acme/HI20250301-01_main-st.typ"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(root, "2025/acme/HI20250301-01_main-st.pdf"))
	assert.True(t, os.IsNotExist(err))
}

func TestCommitSameStemOverwritesInPlace(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "2025/acme/HI20250301-01_main-st.typ", "source")
	writeDoc(t, root, "2025/acme/HI20250301-01_main-st.pdf", "binary")

	repo := NewRepository(root)
	docs, err := repo.Scan(nil)
	require.NoError(t, err)

	committed, err := repo.Commit(docs[0], docs[0].Stem, []byte("updated"))
	require.NoError(t, err)
	assert.Equal(t, docs[0].RelPath, committed.RelPath)

	// Binary sibling untouched when the stem is unchanged.
	_, err = os.Stat(filepath.Join(root, "2025/acme/HI20250301-01_main-st.pdf"))
	assert.NoError(t, err)
}

func TestBinaryRelPath(t *testing.T) {
	doc := Document{RelPath: "2025/acme/HI20250301-01_main-st_PAID.typ"}
	assert.Equal(t, "2025/acme/HI20250301-01_main-st_PAID.pdf", doc.BinaryRelPath())
}

func TestSortNewestFirst(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "2025/acme/HI20250301-01_a.typ", "a")
	writeDoc(t, root, "2025/acme/HI20250301-02_b.typ", "b")

	old := filepath.Join(root, "2025/acme/HI20250301-01_a.typ")
	past := timeAgo(t)
	require.NoError(t, os.Chtimes(old, past, past))

	repo := NewRepository(root)
	docs, err := repo.Scan(nil)
	require.NoError(t, err)

	SortNewestFirst(docs)
	require.Len(t, docs, 2)
	assert.Equal(t, "HI20250301-02_b", docs[0].Stem)
	assert.Equal(t, "HI20250301-01_a", docs[1].Stem)
}
