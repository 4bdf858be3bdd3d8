package repository

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type indexField struct {
	FieldPath string `json:"fieldPath"`
	Order     string `json:"order"`
}

type compositeIndex struct {
	CollectionGroup string       `json:"collectionGroup"`
	QueryScope      string       `json:"queryScope"`
	Fields          []indexField `json:"fields"`
}

// Every filtered list query orders by createdAt desc and needs a composite
// index on (filter field, createdAt).
func TestFirestoreIndexes_CoverFilteredLists(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("..", "..", "..", "firestore.indexes.json"))
	require.NoError(t, err)

	var file struct {
		Indexes []compositeIndex `json:"indexes"`
	}
	require.NoError(t, json.Unmarshal(raw, &file))

	want := []struct{ collection, field string }{
		{productsCollection, "status"},
		{productsCollection, "vendorUid"},
		{advertisementsCollection, "status"},
		{ordersCollection, "userUid"},
		{watchlistCollection, "userUid"},
	}
	for _, w := range want {
		found := false
		for _, idx := range file.Indexes {
			if idx.CollectionGroup != w.collection || len(idx.Fields) != 2 {
				continue
			}
			if idx.Fields[0] == (indexField{w.field, "ASCENDING"}) &&
				idx.Fields[1] == (indexField{"createdAt", "DESCENDING"}) {
				assert.Equal(t, "COLLECTION", idx.QueryScope)
				found = true
			}
		}
		assert.True(t, found, "missing index %s(%s, createdAt)", w.collection, w.field)
	}
}
