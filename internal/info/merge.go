package info

// deepMerge merges src into dst recursively. Nested objects merge key by
// key; any non-object value (including arrays) replaces the destination
// wholesale, so list fields can be reordered or shrunk by the admin UI.
// An explicit null in src clears the key.
func deepMerge(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = map[string]any{}
	}
	for k, v := range src {
		srcMap, srcIsMap := v.(map[string]any)
		if !srcIsMap {
			dst[k] = v
			continue
		}
		dstMap, dstIsMap := dst[k].(map[string]any)
		if !dstIsMap {
			dstMap = map[string]any{}
		}
		dst[k] = deepMerge(dstMap, srcMap)
	}
	return dst
}
