package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nupin/internal/core/domain"
)

func TestFindManifest(t *testing.T) {
	t.Run("root manifest", func(t *testing.T) {
		name, err := domain.FindManifest([]string{"_rels/.rels", "Foo.nuspec", "lib/net8.0/Foo.dll"})
		require.NoError(t, err)
		assert.Equal(t, "Foo.nuspec", name)
	})

	t.Run("nested manifest", func(t *testing.T) {
		name, err := domain.FindManifest([]string{"package/Foo.nuspec", "lib/net8.0/Foo.dll"})
		require.NoError(t, err)
		assert.Equal(t, "package/Foo.nuspec", name)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := domain.FindManifest([]string{"lib/net8.0/Foo.dll"})
		require.ErrorIs(t, err, domain.ErrManifestNotFound)
	})

	t.Run("ambiguous", func(t *testing.T) {
		_, err := domain.FindManifest([]string{"Foo.nuspec", "nested/Bar.nuspec"})
		require.ErrorIs(t, err, domain.ErrManifestAmbiguous)
		assert.Contains(t, err.Error(), domain.ErrManifestAmbiguous.Error())
	})

	t.Run("case sensitive marker", func(t *testing.T) {
		_, err := domain.FindManifest([]string{"Foo.NUSPEC"})
		require.ErrorIs(t, err, domain.ErrManifestNotFound)
	})
}

func TestIsSigned(t *testing.T) {
	assert.True(t, domain.IsSigned([]string{"Foo.nuspec", ".signature.p7s"}))
	assert.False(t, domain.IsSigned([]string{"Foo.nuspec"}))
}

func TestIsNuspecNamespace(t *testing.T) {
	assert.True(t, domain.IsNuspecNamespace(domain.NuspecNamespace))
	assert.True(t, domain.IsNuspecNamespace("http://schemas.microsoft.com/packaging/2010/07/nuspec.xsd"))
	assert.False(t, domain.IsNuspecNamespace(""))
	assert.False(t, domain.IsNuspecNamespace("http://example.com/other"))
}

func TestPinResult_HasChanges(t *testing.T) {
	unchanged := &domain.PinResult{Dependencies: []domain.PinnedDependency{
		{ID: "A", Previous: "[1.0.0]", Pinned: "[1.0.0]"},
	}}
	assert.False(t, unchanged.HasChanges())

	changed := &domain.PinResult{Dependencies: []domain.PinnedDependency{
		{ID: "A", Previous: "[1.0.0]", Pinned: "[1.0.0]"},
		{ID: "A", TargetFramework: "net8.0", Previous: "2.0.0", Pinned: "[2.0.0]"},
	}}
	assert.True(t, changed.HasChanges())

	assert.False(t, (&domain.PinResult{}).HasChanges())
}
