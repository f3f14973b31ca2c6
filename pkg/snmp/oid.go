// Copyright 2022 Praetorian Security, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package snmp

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseOID validates a dotted OID and returns it without a leading dot.
// Example: .1.3.6.1.2.1.1.5.0 -> 1.3.6.1.2.1.1.5.0
func ParseOID(oid string) (string, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(oid), ".")
	if trimmed == "" {
		return "", fmt.Errorf("invalid OID %q: empty", oid)
	}
	for _, part := range strings.Split(trimmed, ".") {
		if _, err := strconv.ParseUint(part, 10, 32); err != nil {
			return "", fmt.Errorf("invalid OID %q: component %q is not a non-negative integer", oid, part)
		}
	}
	return trimmed, nil
}

// JoinOID appends sub-identifiers to a base OID.
func JoinOID(base string, parts ...int) string {
	var b strings.Builder
	b.WriteString(strings.TrimSuffix(base, "."))
	for _, p := range parts {
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(p))
	}
	return b.String()
}

// HasOIDPrefix reports whether oid lies in the subtree rooted at prefix.
// The comparison is per component, so 1.3.6.1.10 is not under 1.3.6.1.1.
func HasOIDPrefix(oid, prefix string) bool {
	oid = strings.TrimPrefix(oid, ".")
	prefix = strings.TrimPrefix(prefix, ".")
	if !strings.HasPrefix(oid, prefix) {
		return false
	}
	return len(oid) == len(prefix) || oid[len(prefix)] == '.'
}

// RowIndex returns the trailing sub-identifier of a table cell OID.
func RowIndex(oid string) (int, bool) {
	i := strings.LastIndexByte(oid, '.')
	idx, err := strconv.Atoi(oid[i+1:])
	if err != nil || idx < 0 {
		return 0, false
	}
	return idx, true
}

// CompareOIDs orders two OIDs numerically, component by component.
// Components that fail to parse compare as strings.
func CompareOIDs(a, b string) int {
	pa := strings.Split(strings.TrimPrefix(a, "."), ".")
	pb := strings.Split(strings.TrimPrefix(b, "."), ".")
	for i := 0; i < len(pa) && i < len(pb); i++ {
		na, errA := strconv.ParseUint(pa[i], 10, 64)
		nb, errB := strconv.ParseUint(pb[i], 10, 64)
		if errA != nil || errB != nil {
			if c := strings.Compare(pa[i], pb[i]); c != 0 {
				return c
			}
			continue
		}
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		}
	}
	switch {
	case len(pa) < len(pb):
		return -1
	case len(pa) > len(pb):
		return 1
	}
	return 0
}
