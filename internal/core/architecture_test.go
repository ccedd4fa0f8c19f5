package core

import (
	"testing"

	"edugestao/testutil"
)

func TestCoreUsesKVFacadeOnly(t *testing.T) {
	testutil.AssertNoDirectImports(t, ".", testutil.InfraImportForbidden, "the store reaches backends through internal/kv")
}
