// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	"github.com/MKhiriev/pos-sync/models"
)

// mergeIDs returns stored followed by every id of added that is neither empty
// nor already present.
func mergeIDs(stored, added models.RecordIDs) models.RecordIDs {
	seen := make(map[models.RecordID]struct{}, len(stored)+len(added))
	out := make(models.RecordIDs, 0, len(stored)+len(added))

	for _, list := range []models.RecordIDs{stored, added} {
		for _, id := range list {
			if id == "" {
				continue
			}
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}

	return out
}

// subtractIDs returns stored without the acknowledged ids, keeping order.
func subtractIDs(stored, acknowledged models.RecordIDs) models.RecordIDs {
	drop := make(map[models.RecordID]struct{}, len(acknowledged))
	for _, id := range acknowledged {
		drop[id] = struct{}{}
	}

	out := make(models.RecordIDs, 0, len(stored))
	for _, id := range stored {
		if _, ok := drop[id]; !ok {
			out = append(out, id)
		}
	}

	return out
}

// takeIDs returns the first limit ids; limit <= 0 returns all of them.
func takeIDs(ids models.RecordIDs, limit int) models.RecordIDs {
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}

	out := make(models.RecordIDs, len(ids))
	copy(out, ids)
	return out
}

func checkKind(kind models.IDKind) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %q", models.ErrUnknownIDKind, kind)
	}
	return nil
}
