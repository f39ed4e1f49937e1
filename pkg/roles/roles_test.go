package roles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ommnia/permtree/pkg/roles"
)

const policyYAML = `
viewer:
  permissions:
    - reports.read
    - dashboards.read
editor:
  inherits: [viewer]
  permissions:
    - reports.write
admin:
  inherits: [editor]
  permissions:
    - users
billing:
  permissions:
    - billing.invoices.read
    - billing.plans
`

func TestParseYAML(t *testing.T) {
	t.Parallel()

	registry, err := roles.ParseYAML([]byte(policyYAML))
	require.NoError(t, err)

	assert.Equal(t, 4, registry.Count())
	assert.Equal(t, []string{"admin", "billing", "editor", "viewer"}, registry.Names())

	t.Run("flat role", func(t *testing.T) {
		t.Parallel()
		tree, ok := registry.Tree("viewer")
		require.True(t, ok)

		assert.True(t, tree.Check("reports.read"))
		assert.False(t, tree.Check("reports.write"))
	})

	t.Run("inherited grants", func(t *testing.T) {
		t.Parallel()
		tree, ok := registry.Tree("editor")
		require.True(t, ok)

		assert.True(t, tree.Check("reports.write"))
		assert.True(t, tree.Check("reports.read"), "inherited from viewer")
		assert.True(t, tree.Check("dashboards.read"), "inherited from viewer")
		assert.False(t, tree.Check("users.create"))
	})

	t.Run("transitive inheritance", func(t *testing.T) {
		t.Parallel()
		tree, ok := registry.Tree("admin")
		require.True(t, ok)

		assert.True(t, tree.Check("users.anything"), "own wildcard grant")
		assert.True(t, tree.Check("reports.write"), "via editor")
		assert.True(t, tree.Check("dashboards.read"), "via editor via viewer")
	})

	t.Run("unknown role", func(t *testing.T) {
		t.Parallel()
		_, ok := registry.Tree("nobody")
		assert.False(t, ok)
	})
}

func TestParseYAMLErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		yaml     string
		expected error
	}{
		{
			name:     "not yaml",
			yaml:     "{{{",
			expected: roles.ErrInvalidDefinition,
		},
		{
			name: "inheriting an unknown role",
			yaml: `
editor:
  inherits: [ghost]
  permissions: [reports.write]
`,
			expected: roles.ErrRoleNotFound,
		},
		{
			name: "inheritance cycle",
			yaml: `
a:
  inherits: [b]
  permissions: [x]
b:
  inherits: [a]
  permissions: [y]
`,
			expected: roles.ErrInheritanceCycle,
		},
		{
			name: "self inheritance",
			yaml: `
a:
  inherits: [a]
  permissions: [x]
`,
			expected: roles.ErrInheritanceCycle,
		},
		{
			name: "role granting nothing",
			yaml: `
empty:
  permissions: []
`,
			expected: roles.ErrInvalidDefinition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := roles.ParseYAML([]byte(tt.yaml))
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestRegister(t *testing.T) {
	t.Parallel()

	t.Run("registers and compiles", func(t *testing.T) {
		t.Parallel()
		registry := roles.NewRegistry()
		require.NoError(t, registry.Register("support", "tickets", "users.read"))

		tree, ok := registry.Tree("support")
		require.True(t, ok)
		assert.True(t, tree.Check("tickets.assign"))
		assert.True(t, tree.Check("users.read"))
		assert.False(t, tree.Check("users.write"))
	})

	t.Run("duplicate name", func(t *testing.T) {
		t.Parallel()
		registry := roles.NewRegistry()
		require.NoError(t, registry.Register("a", "x"))
		assert.ErrorIs(t, registry.Register("a", "y"), roles.ErrRoleExists)
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, roles.NewRegistry().Register("", "x"), roles.ErrEmptyRoleName)
	})

	t.Run("no permissions", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, roles.NewRegistry().Register("x"), roles.ErrInvalidDefinition)
	})
}

func TestResolve(t *testing.T) {
	t.Parallel()

	registry, err := roles.ParseYAML([]byte(policyYAML))
	require.NoError(t, err)

	t.Run("single role", func(t *testing.T) {
		t.Parallel()
		tree, err := registry.Resolve("viewer")
		require.NoError(t, err)

		expected, ok := registry.Tree("viewer")
		require.True(t, ok)
		assert.True(t, tree.Equal(expected))
	})

	t.Run("union of roles", func(t *testing.T) {
		t.Parallel()
		tree, err := registry.Resolve("viewer", "billing")
		require.NoError(t, err)

		assert.True(t, tree.Check("reports.read"))
		assert.True(t, tree.Check("billing.plans.change"))
		assert.False(t, tree.Check("reports.write"))
	})

	t.Run("unknown role", func(t *testing.T) {
		t.Parallel()
		_, err := registry.Resolve("viewer", "ghost")
		assert.ErrorIs(t, err, roles.ErrRoleNotFound)
	})

	t.Run("no roles", func(t *testing.T) {
		t.Parallel()
		_, err := registry.Resolve()
		assert.ErrorIs(t, err, roles.ErrNoRoles)
	})
}

func TestTreeReturnsIndependentCopy(t *testing.T) {
	t.Parallel()

	registry := roles.NewRegistry()
	require.NoError(t, registry.Register("viewer", "reports.read"))

	tree, ok := registry.Tree("viewer")
	require.True(t, ok)
	tree.GrantString("users")

	fresh, ok := registry.Tree("viewer")
	require.True(t, ok)
	assert.False(t, fresh.Check("users"), "registry tree must not be affected by caller mutation")
}
