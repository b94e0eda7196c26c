// Package ingest turns inbound case submissions into normalized, ready-to-persist aggregates.
// Everything here is a pure transformation of its input; nothing performs I/O.
package ingest

import (
	"errors"
	"fmt"
	"path"

	"appealsapi/internal/model"
)

// MaxCollisionProbes caps the number of alternative names tried for one document.
const MaxCollisionProbes = 1000

// ErrTooManyCollisions matches any *TooManyCollisionsError.
var ErrTooManyCollisions = errors.New("too many filename collisions")

// TooManyCollisionsError reports a document whose name could not be made unique.
type TooManyCollisionsError struct {
	DocumentType string
	Filename     string
	Probes       int
}

func (e *TooManyCollisionsError) Error() string {
	return fmt.Sprintf("no free filename for %q (type %q) after %d attempts", e.Filename, e.DocumentType, e.Probes)
}

// Is lets errors.Is(err, ErrTooManyCollisions) match.
func (e *TooManyCollisionsError) Is(target error) bool {
	return target == ErrTooManyCollisions
}

// Deduplicate returns a copy of docs in which every (documentType, originalFilename)
// pair is unique. The first occurrence of a name keeps it; later ones become
// stem_1.ext, stem_2.ext and so on.
func Deduplicate(docs []model.RawSubmissionDocument) ([]model.RawSubmissionDocument, error) {
	out, _, err := deduplicate(docs, MaxCollisionProbes)
	return out, err
}

func deduplicate(docs []model.RawSubmissionDocument, maxProbes int) ([]model.RawSubmissionDocument, int, error) {
	out := make([]model.RawSubmissionDocument, len(docs))
	seen := make(map[string]struct{}, len(docs))
	renamed := 0

	for i, doc := range docs {
		key := dedupKey(doc.DocumentType, doc.OriginalFilename)
		if _, taken := seen[key]; !taken {
			seen[key] = struct{}{}
			out[i] = doc
			continue
		}

		stem, ext := splitFilename(doc.OriginalFilename)
		found := false
		for n := 1; n <= maxProbes; n++ {
			candidate := fmt.Sprintf("%s_%d%s", stem, n, ext)
			key = dedupKey(doc.DocumentType, candidate)
			if _, taken := seen[key]; taken {
				continue
			}
			seen[key] = struct{}{}
			doc.OriginalFilename = candidate
			found = true
			break
		}
		if !found {
			return nil, renamed, &TooManyCollisionsError{
				DocumentType: doc.DocumentType,
				Filename:     doc.OriginalFilename,
				Probes:       maxProbes,
			}
		}
		renamed++
		out[i] = doc
	}
	return out, renamed, nil
}

func dedupKey(documentType, filename string) string {
	return documentType + "_" + filename
}

// splitFilename splits "name.pdf" into "name" and ".pdf". Dotfiles such as
// ".env" are treated as having no extension.
func splitFilename(name string) (string, string) {
	ext := path.Ext(name)
	if ext == name {
		return name, ""
	}
	return name[:len(name)-len(ext)], ext
}
