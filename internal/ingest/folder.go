package ingest

import (
	"strings"

	"appealsapi/internal/model"
)

// ClassifyFolder picks the folder a document is filed under. It tries the exact
// "stage/documentType" path, then any stage folder whose last segment is the
// document type, then the uncategorised folder. It returns 0 when none exist.
func ClassifyFolder(folders []model.Folder, documentType, stage string) int64 {
	if stage != "" {
		exact := stage + "/" + documentType
		for _, f := range folders {
			if f.Path == exact {
				return f.ID
			}
		}
	}

	if documentType != "" {
		for _, f := range folders {
			i := strings.LastIndex(f.Path, "/")
			if i > 0 && f.Path[i+1:] == documentType {
				return f.ID
			}
		}
	}

	for _, f := range folders {
		if f.Path == model.FolderUncategorised {
			return f.ID
		}
	}
	return 0
}

// FileDocuments returns a copy of versions with FolderID set from folders.
func FileDocuments(folders []model.Folder, versions []model.DocumentVersion) []model.DocumentVersion {
	out := make([]model.DocumentVersion, len(versions))
	for i, v := range versions {
		v.FolderID = ClassifyFolder(folders, v.DocumentType, v.Stage)
		out[i] = v
	}
	return out
}

// Unfiled counts versions that ended up without a folder.
func Unfiled(versions []model.DocumentVersion) int {
	n := 0
	for _, v := range versions {
		if v.FolderID == 0 {
			n++
		}
	}
	return n
}
