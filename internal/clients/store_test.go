package clients

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicemaker/pkg/models"
)

func TestCreateAndLoad(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	client := &models.Client{
		Name:  "Acme Corp",
		Attn:  "Jane Smith",
		Email: "jane@acme.test",
		BillingAddress: &models.Address{
			Street: "1 Main St", City: "Springfield", State: "NY", Zip: "10001",
		},
	}

	id, err := store.Create("Acme Corp", client)
	require.NoError(t, err)
	assert.Equal(t, "acme-corp", id)

	loaded, err := store.Load(id)
	require.NoError(t, err)
	assert.Equal(t, client.Name, loaded.Name)
	assert.Equal(t, client.Attn, loaded.Attn)
	require.NotNil(t, loaded.BillingAddress)
	assert.Equal(t, "1 Main St", loaded.BillingAddress.Street)
}

func TestLoadMissingClient(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Load("nobody")
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestIDs(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	_, err = store.Create("Acme Corp", &models.Client{Name: "Acme Corp"})
	require.NoError(t, err)
	_, err = store.Create("Globex", &models.Client{Name: "Globex"})
	require.NoError(t, err)
	// Stray files are not client records.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README"), []byte("x"), 0644))

	ids, err := store.IDs()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"acme-corp", "globex"}, ids)
}

func TestAddProject(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	id, err := store.Create("Acme Corp", &models.Client{Name: "Acme Corp"})
	require.NoError(t, err)

	project := models.Project{
		ID:   SlugID("42 Elm Ave"),
		Name: "Roof Repair",
		Address: models.Address{
			Street: "42 Elm Ave", City: "Springfield", State: "NY", Zip: "10002",
		},
	}
	client, err := store.AddProject(id, project)
	require.NoError(t, err)
	require.Len(t, client.Projects, 1)
	assert.Equal(t, "42-elm-ave", client.Projects[0].ID)

	reloaded, err := store.Load(id)
	require.NoError(t, err)
	assert.Len(t, reloaded.Projects, 1)
}

func TestSlugID(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"spaces", "Acme Corp", "acme-corp"},
		{"punctuation", "O'Brien & Sons, LLC", "obrien-and-sons-llc"},
		{"street", "42 Elm Ave", "42-elm-ave"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SlugID(tt.in))
		})
	}
}

func TestLoadSenderMaterializesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sender.yaml")

	sender, err := LoadSender(path)
	require.NoError(t, err)
	assert.NotEmpty(t, sender.Name)

	// The default profile now exists on disk for the operator to edit.
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestLoadSenderReadsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sender.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: Hammer & Sons\nemail: hi@hammer.test\n"), 0644))

	sender, err := LoadSender(path)
	require.NoError(t, err)
	assert.Equal(t, "Hammer & Sons", sender.Name)
	assert.Equal(t, "hi@hammer.test", sender.Email)
}
