package memory

import (
	"testing"

	"github.com/stablevault/vault-server/pkg/vault/data/admin/tests"
)

func TestAdminMemoryStore(t *testing.T) {
	testStore := New()
	teardown := func() {
		testStore.(*store).reset()
	}

	tests.RunTests(t, testStore, teardown)
}
