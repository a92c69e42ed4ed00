package memory

import (
	"testing"

	"github.com/stablevault/vault-server/pkg/vault/data/asset/tests"
)

func TestAssetMemoryStore(t *testing.T) {
	testStore := New()
	teardown := func() {
		testStore.(*store).reset()
	}

	tests.RunTests(t, testStore, teardown)
}
