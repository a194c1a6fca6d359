package utl

import "strings"

// QueryMap 按照点分路径读取嵌套map中的值
func QueryMap(data map[string]any, path string) any {
	arr := strings.SplitN(path, ".", 2)
	if len(arr) <= 1 {
		return data[path]
	}
	if val, ok := AsMap(data[arr[0]]); ok {
		return QueryMap(val, arr[1])
	}
	return nil
}

// AsMap 将JSON解码得到的值转换为对象
func AsMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok && m != nil
}

// AsSlice 将JSON解码得到的值转换为数组，支持对象数组
func AsSlice(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case []map[string]any:
		list := make([]any, len(s))
		for i, e := range s {
			list[i] = e
		}
		return list, true
	}
	return nil, false
}
