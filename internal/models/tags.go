// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// TagList is a post's set of free-text tags, stored as a JSONB array.
// It implements sql.Scanner and driver.Valuer so it can be read and
// written through database/sql directly.
type TagList []string

// Scan implements sql.Scanner. A NULL column yields an empty list.
func (t *TagList) Scan(src any) error {
	if src == nil {
		*t = nil
		return nil
	}

	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("tags scan: unsupported type %T", src)
	}

	if err := json.Unmarshal(raw, t); err != nil {
		return fmt.Errorf("tags scan: %w", err)
	}
	return nil
}

// Value implements driver.Valuer. A nil list is stored as an empty array
// rather than NULL so downstream consumers never see a null tag set.
func (t TagList) Value() (driver.Value, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	raw, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("tags value: %w", err)
	}
	return raw, nil
}

// Contains reports whether the tag set includes the given tag.
func (t TagList) Contains(tag string) bool {
	for _, v := range t {
		if v == tag {
			return true
		}
	}
	return false
}
