package ingest

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"appealsapi/internal/model"
)

func doc(docType, name string) model.RawSubmissionDocument {
	return model.RawSubmissionDocument{DocumentType: docType, OriginalFilename: name, Filename: name}
}

func names(docs []model.RawSubmissionDocument) []string {
	out := make([]string, len(docs))
	for i, d := range docs {
		out[i] = d.OriginalFilename
	}
	return out
}

func TestDeduplicate(t *testing.T) {
	tests := []struct {
		name string
		in   []model.RawSubmissionDocument
		want []string
	}{
		{
			name: "repeated name gets numbered suffixes",
			in:   []model.RawSubmissionDocument{doc("A", "name.pdf"), doc("A", "name.pdf"), doc("A", "name.pdf")},
			want: []string{"name.pdf", "name_1.pdf", "name_2.pdf"},
		},
		{
			name: "same name under different types is not a collision",
			in:   []model.RawSubmissionDocument{doc("A", "plan.pdf"), doc("B", "plan.pdf")},
			want: []string{"plan.pdf", "plan.pdf"},
		},
		{
			name: "probe skips names already present in the batch",
			in:   []model.RawSubmissionDocument{doc("A", "x_1.pdf"), doc("A", "x.pdf"), doc("A", "x.pdf")},
			want: []string{"x_1.pdf", "x.pdf", "x_2.pdf"},
		},
		{
			name: "no extension",
			in:   []model.RawSubmissionDocument{doc("A", "README"), doc("A", "README")},
			want: []string{"README", "README_1"},
		},
		{
			name: "dotfile keeps its name as stem",
			in:   []model.RawSubmissionDocument{doc("A", ".env"), doc("A", ".env")},
			want: []string{".env", ".env_1"},
		},
		{
			name: "only last extension is split",
			in:   []model.RawSubmissionDocument{doc("A", "site.tar.gz"), doc("A", "site.tar.gz")},
			want: []string{"site.tar.gz", "site.tar_1.gz"},
		},
		{
			name: "empty batch",
			in:   []model.RawSubmissionDocument{},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Deduplicate(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestDeduplicate_DoesNotMutateInput(t *testing.T) {
	in := []model.RawSubmissionDocument{doc("A", "a.pdf"), doc("A", "a.pdf")}

	_, err := Deduplicate(in)
	require.NoError(t, err)

	assert.Equal(t, "a.pdf", in[1].OriginalFilename)
}

func TestDeduplicate_Properties(t *testing.T) {
	batches := [][]model.RawSubmissionDocument{
		{doc("A", "a.pdf"), doc("A", "a.pdf"), doc("B", "a.pdf"), doc("A", "a_1.pdf"), doc("A", "a.pdf")},
		{doc("", "x"), doc("", "x"), doc("", "x_1"), doc("", "x_1")},
		{doc("A", "one.docx")},
	}

	for i, in := range batches {
		t.Run(fmt.Sprintf("batch %d", i), func(t *testing.T) {
			once, err := Deduplicate(in)
			require.NoError(t, err)

			// order and length
			require.Len(t, once, len(in))
			for j := range in {
				assert.Equal(t, in[j].DocumentType, once[j].DocumentType)
				assert.Equal(t, in[j].Filename, once[j].Filename)
			}

			// uniqueness
			seen := map[string]bool{}
			for _, d := range once {
				key := d.DocumentType + "|" + d.OriginalFilename
				assert.False(t, seen[key], "duplicate %s", key)
				seen[key] = true
			}

			// idempotence
			twice, err := Deduplicate(once)
			require.NoError(t, err)
			assert.Equal(t, once, twice)
		})
	}
}

func TestDeduplicate_TooManyCollisions(t *testing.T) {
	t.Run("small cap", func(t *testing.T) {
		in := []model.RawSubmissionDocument{doc("A", "a.pdf"), doc("A", "a.pdf"), doc("A", "a.pdf"), doc("A", "a.pdf")}

		_, renamed, err := deduplicate(in, 2)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTooManyCollisions)
		var tmc *TooManyCollisionsError
		require.ErrorAs(t, err, &tmc)
		assert.Equal(t, "A", tmc.DocumentType)
		assert.Equal(t, "a.pdf", tmc.Filename)
		assert.Equal(t, 2, tmc.Probes)
		assert.Equal(t, 2, renamed)
	})

	t.Run("default cap", func(t *testing.T) {
		in := make([]model.RawSubmissionDocument, MaxCollisionProbes+2)
		for i := range in {
			in[i] = doc("A", "same.pdf")
		}

		_, err := Deduplicate(in)
		assert.ErrorIs(t, err, ErrTooManyCollisions)

		_, err = Deduplicate(in[:MaxCollisionProbes+1])
		assert.NoError(t, err)
	})
}
