package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"appealsapi/internal/model"
)

func TestClassifyFolder(t *testing.T) {
	folders := []model.Folder{
		{ID: 1, Path: "appellant_case/plans_drawings"},
		{ID: 2, Path: "lpa_questionnaire/plans_drawings"},
		{ID: 3, Path: "statements/appellantStatement"},
		{ID: 4, Path: "internal/uncategorised"},
		{ID: 5, Path: "statements/rule_6_statement"},
	}

	tests := []struct {
		name         string
		folders      []model.Folder
		documentType string
		stage        string
		want         int64
	}{
		{"exact stage and type", folders, "plans_drawings", "appellant_case", 1},
		{"exact match beats earlier suffix match", folders, "plans_drawings", "lpa_questionnaire", 2},
		{"no stage falls back to type segment", folders, "rule_6_statement", "", 5},
		{"stage without typed folder falls back to type segment", folders, "rule_6_statement", "representation", 5},
		{"type that is only a textual suffix does not match", folders, "Statement", "", 4},
		{"unknown type goes to uncategorised", folders, "mystery", "appellant_case", 4},
		{"empty type goes to uncategorised", folders, "", "", 4},
		{"no fallback folder yields zero", []model.Folder{{ID: 1, Path: "appellant_case/plans_drawings"}}, "mystery", "", 0},
		{"no folders at all", nil, "plans_drawings", "appellant_case", 0},
		{"bare type path is not a stage folder", []model.Folder{{ID: 9, Path: "/mystery"}, {ID: 8, Path: "mystery"}}, "mystery", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyFolder(tt.folders, tt.documentType, tt.stage))
		})
	}
}

func TestClassifyFolder_SingleFolderExample(t *testing.T) {
	folders := []model.Folder{{ID: 1, Path: "appellant_case/plans_drawings"}}
	assert.Equal(t, int64(1), ClassifyFolder(folders, "plans_drawings", "appellant_case"))
}

func TestFileDocuments(t *testing.T) {
	folders := []model.Folder{
		{ID: 10, Path: "representation/representationAttachments"},
		{ID: 11, Path: "internal/uncategorised"},
	}
	versions := []model.DocumentVersion{
		{DocumentGUID: "a", DocumentType: "representationAttachments", Stage: "representation"},
		{DocumentGUID: "b", DocumentType: "unknown", Stage: "appellant_case"},
	}

	got := FileDocuments(folders, versions)

	assert.Equal(t, int64(10), got[0].FolderID)
	assert.Equal(t, int64(11), got[1].FolderID)
	assert.Zero(t, versions[0].FolderID, "input must not be modified")
	assert.Equal(t, 0, Unfiled(got))
	assert.Equal(t, 2, Unfiled(versions))
}
