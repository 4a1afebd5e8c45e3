// SPDX-License-Identifier: Apache-2.0

package amf3

import (
	"fmt"
	"sort"
)

// sortStrings sorts string keys in place so Object-from-map encoding is
// deterministic despite Go's randomized map iteration order.
func sortStrings(keys []string) {
	sort.Strings(keys)
}

// sortAnyKeys sorts Dictionary-from-map keys by their formatted text, a
// total order for arbitrary comparable values that doesn't require each
// key's concrete type to implement sort.Interface itself.
func sortAnyKeys(keys []any) {
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprint(keys[i]) < fmt.Sprint(keys[j])
	})
}
