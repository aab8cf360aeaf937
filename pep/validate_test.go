package pep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDocument(t *testing.T) {
	doc, err := Parse(Raw())
	require.NoError(t, err)

	assert.Empty(t, doc.Validate())
}

func TestValidateFaults(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		problem string
	}{
		{
			name: "unresolved marker",
			src: `First
=====

See [2]_.

.. [1] only entry
`,
			problem: "footnote marker [2]_ has no references entry",
		},
		{
			name: "unused footnote",
			src: `First
=====

No markers here.

.. [1] lonely entry
`,
			problem: "footnote [1] is never referenced",
		},
		{
			name: "unbalanced literal",
			src: `First
=====

An ` + "``unclosed literal" + ` in text.
`,
			problem: "unbalanced inline literal markers",
		},
		{
			name: "undefined production",
			src: `First
=====

Grammar::

    annotation: type_expr
    type_expr: atom ('|' atom)*
`,
			problem: `grammar rule "type_expr" references undefined production atom`,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			doc, err := Parse(c.src)
			require.NoError(t, err)

			faults := doc.Validate()
			require.NotEmpty(t, faults)

			var found bool
			for _, f := range faults {
				if f.Problem == c.problem {
					found = true
				}
			}
			assert.True(t, found, "faults: %v", faults)
		})
	}
}

func TestFaultError(t *testing.T) {
	f := Fault{Section: "Motivation", Problem: "broken"}
	assert.Equal(t, "Motivation: broken", f.Error())

	f = Fault{Problem: "broken"}
	assert.Equal(t, "broken", f.Error())
}
